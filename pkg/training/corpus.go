// Package training maintains the intent training corpus and the offline
// feedback loop: harvesting new phrases from interaction logs, retraining
// the classifier, and auditing the corpus for conflicting examples.
package training

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"shopbot-be/pkg/intent"
)

// Group holds every training phrase for one intent label.
type Group struct {
	Intent   string   `json:"intent"`
	Examples []string `json:"examples"`
}

// Corpus is the grouped training set. Save always writes it in canonical
// order, so saving an unchanged corpus reproduces the file byte for byte.
type Corpus []Group

// LoadCorpus reads the corpus file. A missing file is an empty corpus, not
// an error.
func LoadCorpus(path string) (Corpus, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Corpus{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var c Corpus
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	return c, nil
}

// canonical returns the corpus sorted by intent with examples sorted and
// deduplicated case-insensitively. The same phrase may still appear under
// two different intents; that conflict is reported by the duplicate audit,
// never auto-resolved.
func (c Corpus) canonical() Corpus {
	byIntent := map[string][]string{}
	for _, g := range c {
		byIntent[g.Intent] = append(byIntent[g.Intent], g.Examples...)
	}

	intents := make([]string, 0, len(byIntent))
	for in := range byIntent {
		intents = append(intents, in)
	}
	sort.Strings(intents)

	out := make(Corpus, 0, len(intents))
	for _, in := range intents {
		examples := byIntent[in]
		sort.SliceStable(examples, func(i, j int) bool {
			a := strings.ToLower(strings.TrimSpace(examples[i]))
			b := strings.ToLower(strings.TrimSpace(examples[j]))
			if a != b {
				return a < b
			}
			return examples[i] < examples[j]
		})

		deduped := examples[:0]
		prev := ""
		for i, ex := range examples {
			key := strings.ToLower(strings.TrimSpace(ex))
			if i > 0 && key == prev {
				continue
			}
			deduped = append(deduped, ex)
			prev = key
		}
		out = append(out, Group{Intent: in, Examples: deduped})
	}
	return out
}

// Save writes the canonical corpus atomically.
func (c Corpus) Save(path string) error {
	out, err := json.MarshalIndent(c.canonical(), "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// KnownPhrases returns the normalized set of every phrase in the corpus.
func (c Corpus) KnownPhrases() map[string]bool {
	known := map[string]bool{}
	for _, g := range c {
		for _, ex := range g.Examples {
			known[strings.ToLower(strings.TrimSpace(ex))] = true
		}
	}
	return known
}

// Merge adds (message, intent) pairs to the corpus, creating groups as
// needed. Deduplication happens on Save.
func (c Corpus) Merge(pairs []Pair) Corpus {
	out := append(Corpus{}, c...)
	index := map[string]int{}
	for i, g := range out {
		index[g.Intent] = i
	}
	for _, p := range pairs {
		if i, ok := index[p.Intent]; ok {
			out[i].Examples = append(out[i].Examples, p.Message)
		} else {
			index[p.Intent] = len(out)
			out = append(out, Group{Intent: p.Intent, Examples: []string{p.Message}})
		}
	}
	return out
}

// Flatten converts the corpus into classifier training examples.
func (c Corpus) Flatten() []intent.Example {
	var examples []intent.Example
	for _, g := range c {
		for _, ex := range g.Examples {
			examples = append(examples, intent.Example{Text: ex, Label: g.Intent})
		}
	}
	return examples
}

// Size reports the total number of examples.
func (c Corpus) Size() int {
	n := 0
	for _, g := range c {
		n += len(g.Examples)
	}
	return n
}
