// Package scoring ranks catalog items against a user query by additive
// keyword signals plus a fuzzy similarity tie-break. Each item kind carries
// its own weight table; the tables are tuned independently and deliberately
// not merged.
//
// Rankers are pure: they never mutate session state. Callers record what
// was actually presented.
package scoring

// Candidate pairs an item handle with its request-scoped scores. Rankers
// embed it in kind-specific result types.
type Candidate struct {
	MatchScore int
	Similarity float64
}
