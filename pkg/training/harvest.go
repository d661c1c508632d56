package training

import "strings"

// LogRow is one interaction pulled from the logging sheet.
type LogRow struct {
	Timestamp string
	Message   string
	Intent    string
	Response  string
}

// Pair is a candidate training example harvested from the logs.
type Pair struct {
	Message string
	Intent  string
}

// Harvest returns the logged (message, intent) pairs not yet present in the
// corpus. Rows with an empty message or intent are skipped, as are repeats
// within the same batch.
func Harvest(rows []LogRow, corpus Corpus) []Pair {
	known := corpus.KnownPhrases()

	var pairs []Pair
	for _, row := range rows {
		msg := strings.TrimSpace(row.Message)
		in := strings.TrimSpace(row.Intent)
		if msg == "" || in == "" {
			continue
		}
		key := strings.ToLower(msg)
		if known[key] {
			continue
		}
		known[key] = true
		pairs = append(pairs, Pair{Message: msg, Intent: in})
	}
	return pairs
}
