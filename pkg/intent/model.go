package intent

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"

	"shopbot-be/pkg/textutil"
)

const smoothingAlpha = 1.0

// Model is a multi-class text classifier: TF-IDF features over a bag of
// words feeding a multinomial naive Bayes. It is trained offline by the
// feedback loop and serialized as a JSON artifact.
type Model struct {
	TotalDocs int                           `json:"total_docs"`
	DocFreq   map[string]int                `json:"doc_freq"`
	ClassDocs map[string]int                `json:"class_docs"`
	ClassTerm map[string]map[string]float64 `json:"class_term"` // label -> term -> accumulated tf-idf weight
	ClassMass map[string]float64            `json:"class_mass"` // label -> sum of term weights
}

// NewModel returns an empty, untrained model. An untrained model never
// errors or panics; Predict simply reports no label.
func NewModel() *Model {
	return &Model{
		DocFreq:   map[string]int{},
		ClassDocs: map[string]int{},
		ClassTerm: map[string]map[string]float64{},
		ClassMass: map[string]float64{},
	}
}

// Example is a single labeled training utterance.
type Example struct {
	Text  string
	Label string
}

// Train fits the model on the full example set, replacing any prior fit.
func Train(examples []Example) *Model {
	m := NewModel()
	if len(examples) == 0 {
		return m
	}

	docs := make([][]string, len(examples))
	for i, ex := range examples {
		tokens := textutil.Keywords(ex.Text)
		docs[i] = tokens

		seen := map[string]bool{}
		for _, tok := range tokens {
			if !seen[tok] {
				seen[tok] = true
				m.DocFreq[tok]++
			}
		}
	}
	m.TotalDocs = len(examples)

	for i, ex := range examples {
		tokens := docs[i]
		if len(tokens) == 0 {
			continue
		}
		m.ClassDocs[ex.Label]++
		terms := m.ClassTerm[ex.Label]
		if terms == nil {
			terms = map[string]float64{}
			m.ClassTerm[ex.Label] = terms
		}

		counts := map[string]int{}
		for _, tok := range tokens {
			counts[tok]++
		}
		for tok, n := range counts {
			tf := float64(n) / float64(len(tokens))
			weight := tf * m.idf(tok)
			terms[tok] += weight
			m.ClassMass[ex.Label] += weight
		}
	}
	return m
}

func (m *Model) idf(term string) float64 {
	// Smoothed IDF so unseen terms never divide by zero.
	return math.Log(float64(1+m.TotalDocs)/float64(1+m.DocFreq[term])) + 1
}

// Trained reports whether the model has seen any examples.
func (m *Model) Trained() bool {
	return m != nil && m.TotalDocs > 0
}

// Labels returns the known class labels in sorted order.
func (m *Model) Labels() []string {
	labels := make([]string, 0, len(m.ClassDocs))
	for l := range m.ClassDocs {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Predict returns the highest-scoring label for the message. The boolean is
// false when the model is untrained, in which case the caller should fall
// back to a generic response path.
func (m *Model) Predict(message string) (string, bool) {
	if !m.Trained() {
		return "", false
	}

	tokens := textutil.Keywords(message)
	vocabSize := float64(len(m.DocFreq))

	best := ""
	bestScore := math.Inf(-1)
	for _, label := range m.Labels() {
		score := math.Log(float64(m.ClassDocs[label]) / float64(m.TotalDocs))
		terms := m.ClassTerm[label]
		mass := m.ClassMass[label]
		for _, tok := range tokens {
			score += math.Log((terms[tok] + smoothingAlpha) / (mass + smoothingAlpha*vocabSize))
		}
		if score > bestScore {
			best, bestScore = label, score
		}
	}
	return best, best != ""
}

// Save writes the model artifact atomically: the JSON is written to a temp
// file and renamed into place so a concurrent LoadModel never observes a
// half-written artifact.
func (m *Model) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".model-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadModel reads a model artifact. A missing or corrupt artifact yields an
// error; callers substitute NewModel() so classification fails open.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := NewModel()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}
