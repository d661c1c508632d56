package training

import (
	"sort"
	"strings"

	"shopbot-be/pkg/similarity"
)

// FuzzyThreshold is the ratio at which two phrases under different intents
// count as a conflict.
const FuzzyThreshold = 0.85

// ExactDuplicate is one phrase appearing verbatim under several intents.
type ExactDuplicate struct {
	Phrase  string
	Intents []string
}

// FuzzyConflict is a near-duplicate phrase pair straddling two intents.
type FuzzyConflict struct {
	PhraseA string
	IntentA string
	PhraseB string
	IntentB string
	Ratio   float64
}

// FindExactDuplicates reports phrases that appear under more than one
// intent. The audit only reports; resolving the conflict is a human call.
func FindExactDuplicates(c Corpus) []ExactDuplicate {
	phraseIntents := map[string]map[string]bool{}
	for _, g := range c {
		for _, phrase := range g.Examples {
			clean := strings.ToLower(strings.TrimSpace(phrase))
			if phraseIntents[clean] == nil {
				phraseIntents[clean] = map[string]bool{}
			}
			phraseIntents[clean][g.Intent] = true
		}
	}

	var dups []ExactDuplicate
	for phrase, intents := range phraseIntents {
		if len(intents) < 2 {
			continue
		}
		labels := make([]string, 0, len(intents))
		for in := range intents {
			labels = append(labels, in)
		}
		sort.Strings(labels)
		dups = append(dups, ExactDuplicate{Phrase: phrase, Intents: labels})
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Phrase < dups[j].Phrase })
	return dups
}

// FindFuzzyConflicts reports phrase pairs under different intents whose
// similarity ratio reaches the threshold. Quadratic over the corpus, which
// stays small enough for an offline audit.
func FindFuzzyConflicts(c Corpus, threshold float64) []FuzzyConflict {
	type labeled struct {
		phrase string
		intent string
	}
	var all []labeled
	for _, g := range c {
		for _, phrase := range g.Examples {
			all = append(all, labeled{strings.ToLower(strings.TrimSpace(phrase)), g.Intent})
		}
	}

	var conflicts []FuzzyConflict
	for i, a := range all {
		for _, b := range all[i+1:] {
			if a.intent == b.intent {
				continue
			}
			ratio := similarity.Ratio(a.phrase, b.phrase)
			if ratio >= threshold {
				conflicts = append(conflicts, FuzzyConflict{
					PhraseA: a.phrase,
					IntentA: a.intent,
					PhraseB: b.phrase,
					IntentB: b.intent,
					Ratio:   ratio,
				})
			}
		}
	}
	return conflicts
}
