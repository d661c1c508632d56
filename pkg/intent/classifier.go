package intent

import (
	"sync/atomic"

	"shopbot-be/pkg/textutil"
)

// Classifier resolves a user utterance to an Intent. The trained model is
// held behind an atomic pointer and swapped only on deliberate Reload, so
// in-flight Classify calls never observe a partial model.
type Classifier struct {
	model atomic.Pointer[Model]
}

// NewClassifier wraps a model. Pass NewModel() when no trained artifact is
// available; the classifier then degrades to the Unknown label instead of
// failing.
func NewClassifier(m *Model) *Classifier {
	c := &Classifier{}
	if m == nil {
		m = NewModel()
	}
	c.model.Store(m)
	return c
}

// Classify resolves the message's intent. The irrelevant-domain check has
// absolute priority and bypasses the trained model.
func (c *Classifier) Classify(message string) Intent {
	normalized := textutil.Normalize(message)
	if IsIrrelevant(normalized) {
		return NotSupported
	}

	label, ok := c.model.Load().Predict(normalized)
	if !ok {
		return Unknown
	}
	return Intent(label)
}

// Reload loads a freshly trained artifact and swaps it in atomically.
// On error the previous model stays live.
func (c *Classifier) Reload(path string) error {
	m, err := LoadModel(path)
	if err != nil {
		return err
	}
	c.model.Store(m)
	return nil
}

// Swap replaces the live model directly (used after an in-process retrain).
func (c *Classifier) Swap(m *Model) {
	if m == nil {
		m = NewModel()
	}
	c.model.Store(m)
}
