package training

import (
	"fmt"
	"sort"

	"shopbot-be/pkg/intent"
)

// Metrics are per-intent evaluation numbers.
type Metrics struct {
	Precision float64
	Recall    float64
	Support   int
}

// Report summarizes a retraining run. Metrics are computed on the training
// set itself, not a held-out split, so they overstate real accuracy; they
// exist to catch gross regressions, not to benchmark.
type Report struct {
	TotalExamples int
	Intents       []string
	PerIntent     map[string]Metrics
}

// Retrain fits a fresh model on the full corpus and saves it atomically.
// An empty corpus still produces a valid (untrained) model artifact.
func Retrain(corpus Corpus, modelPath string) (*intent.Model, Report, error) {
	examples := corpus.Flatten()
	model := intent.Train(examples)

	if err := model.Save(modelPath); err != nil {
		return nil, Report{}, fmt.Errorf("save model: %w", err)
	}

	return model, evaluate(model, examples), nil
}

// evaluate computes per-intent precision and recall of the model's own
// predictions over the given examples.
func evaluate(model *intent.Model, examples []intent.Example) Report {
	type counts struct {
		truePos, falsePos, falseNeg int
	}
	byIntent := map[string]*counts{}
	get := func(label string) *counts {
		c, ok := byIntent[label]
		if !ok {
			c = &counts{}
			byIntent[label] = c
		}
		return c
	}

	for _, ex := range examples {
		predicted, ok := model.Predict(ex.Text)
		if !ok {
			predicted = ""
		}
		if predicted == ex.Label {
			get(ex.Label).truePos++
		} else {
			get(ex.Label).falseNeg++
			if predicted != "" {
				get(predicted).falsePos++
			}
		}
	}

	report := Report{
		TotalExamples: len(examples),
		PerIntent:     map[string]Metrics{},
	}
	for label, c := range byIntent {
		m := Metrics{Support: c.truePos + c.falseNeg}
		if c.truePos+c.falsePos > 0 {
			m.Precision = float64(c.truePos) / float64(c.truePos+c.falsePos)
		}
		if c.truePos+c.falseNeg > 0 {
			m.Recall = float64(c.truePos) / float64(c.truePos+c.falseNeg)
		}
		report.PerIntent[label] = m
		report.Intents = append(report.Intents, label)
	}
	sort.Strings(report.Intents)
	return report
}
