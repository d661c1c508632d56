package training

import (
	"path/filepath"
	"testing"

	"shopbot-be/pkg/intent"
)

func separableCorpus() Corpus {
	return Corpus{
		{Intent: "search_product", Examples: []string{
			"show me tiles",
			"do you have blue tiles",
			"looking for terracotta tiles",
		}},
		{Intent: "shipping", Examples: []string{
			"how much is shipping",
			"when will my order ship",
			"do you ship worldwide",
		}},
		{Intent: "faqs", Examples: []string{
			"how do i install these",
			"what grout should i use",
			"are the tiles sealed",
		}},
	}
}

func TestRetrainProducesUsableModel(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "intent_model.json")

	model, report, err := Retrain(separableCorpus(), modelPath)
	if err != nil {
		t.Fatalf("Retrain: %v", err)
	}
	if report.TotalExamples != 9 {
		t.Errorf("TotalExamples = %d", report.TotalExamples)
	}
	if len(report.Intents) != 3 {
		t.Errorf("Intents = %v", report.Intents)
	}

	// On a cleanly separable corpus, training-set recall should be perfect.
	for _, label := range report.Intents {
		m := report.PerIntent[label]
		if m.Recall < 1.0 {
			t.Errorf("recall for %q = %v", label, m.Recall)
		}
		if m.Support != 3 {
			t.Errorf("support for %q = %d", label, m.Support)
		}
	}

	if got, ok := model.Predict("do you ship worldwide"); !ok || got != "shipping" {
		t.Errorf("Predict = %q, %v", got, ok)
	}

	// The saved artifact must round-trip into an equivalent classifier.
	loaded, err := intent.LoadModel(modelPath)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if got, ok := loaded.Predict("show me tiles"); !ok || got != "search_product" {
		t.Errorf("loaded Predict = %q, %v", got, ok)
	}
}

func TestRetrainEmptyCorpus(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "intent_model.json")

	model, report, err := Retrain(Corpus{}, modelPath)
	if err != nil {
		t.Fatalf("Retrain: %v", err)
	}
	if report.TotalExamples != 0 {
		t.Errorf("TotalExamples = %d", report.TotalExamples)
	}
	if _, ok := model.Predict("anything"); ok {
		t.Error("untrained model should not claim a prediction")
	}
}
