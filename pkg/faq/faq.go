// Package faq answers support questions by semantic search over a curated
// FAQ list. Entries and their precomputed embedding vectors are loaded from
// JSON artifacts on disk; the query is embedded at request time and matched
// by cosine similarity.
package faq

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"shopbot-be/pkg/embedding"
)

// Entry is one curated FAQ item.
type Entry struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Answer   string   `json:"answer"`
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

// EmbedText is the string embedded for an entry. The same composition is
// used when building the vector artifact and must not change without
// regenerating it.
func (e Entry) EmbedText() string {
	return fmt.Sprintf("%s %s %s", e.Title, e.Subtitle, strings.Join(e.Keywords, " "))
}

// vectorFile is the on-disk shape of the embeddings artifact. Vectors are
// positionally aligned with the FAQ entries file.
type vectorFile struct {
	Vectors [][]float32 `json:"vectors"`
}

// matchThreshold is the minimum cosine score for a hit to count.
const matchThreshold = 0.5

// Match is a successful FAQ lookup.
type Match struct {
	Entry Entry
	Score float64
}

// Index holds the entries and their vectors for in-memory search.
type Index struct {
	entries  []Entry
	vectors  [][]float32
	provider embedding.EmbeddingProvider
}

// LoadIndex reads the FAQ entries and embedding vectors from disk. The two
// files must have the same length or the index is rejected.
func LoadIndex(entriesPath, vectorsPath string, provider embedding.EmbeddingProvider) (*Index, error) {
	entriesRaw, err := os.ReadFile(entriesPath)
	if err != nil {
		return nil, fmt.Errorf("read faq entries: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(entriesRaw, &entries); err != nil {
		return nil, fmt.Errorf("parse faq entries: %w", err)
	}

	vectorsRaw, err := os.ReadFile(vectorsPath)
	if err != nil {
		return nil, fmt.Errorf("read faq vectors: %w", err)
	}
	var vf vectorFile
	if err := json.Unmarshal(vectorsRaw, &vf); err != nil {
		return nil, fmt.Errorf("parse faq vectors: %w", err)
	}

	if len(entries) != len(vf.Vectors) {
		return nil, fmt.Errorf("faq artifacts out of sync: %d entries, %d vectors", len(entries), len(vf.Vectors))
	}

	return &Index{entries: entries, vectors: vf.Vectors, provider: provider}, nil
}

// NewIndex builds an index from in-memory data, used in tests and by the
// embedding generator.
func NewIndex(entries []Entry, vectors [][]float32, provider embedding.EmbeddingProvider) *Index {
	return &Index{entries: entries, vectors: vectors, provider: provider}
}

// Len reports the number of indexed entries.
func (ix *Index) Len() int { return len(ix.entries) }

// Search embeds the query and returns the single best entry when its cosine
// score clears the threshold, or nil when nothing is close enough.
func (ix *Index) Search(query string) (*Match, error) {
	if len(ix.entries) == 0 {
		return nil, nil
	}

	resp, err := ix.provider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	bestIdx := -1
	bestScore := 0.0
	for i, vec := range ix.vectors {
		score := embedding.CosineSimilarity(resp.Embedding.Values, vec)
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	if bestScore > matchThreshold {
		return &Match{Entry: ix.entries[bestIdx], Score: bestScore}, nil
	}
	return nil, nil
}

// BuildVectors embeds every entry and writes the vector artifact atomically.
// Run offline whenever the entries file changes.
func BuildVectors(entriesPath, vectorsPath string, provider embedding.EmbeddingProvider) (int, error) {
	entriesRaw, err := os.ReadFile(entriesPath)
	if err != nil {
		return 0, fmt.Errorf("read faq entries: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(entriesRaw, &entries); err != nil {
		return 0, fmt.Errorf("parse faq entries: %w", err)
	}

	vectors := make([][]float32, 0, len(entries))
	for _, e := range entries {
		resp, err := provider.Generate(e.EmbedText(), "RETRIEVAL_DOCUMENT")
		if err != nil {
			return 0, fmt.Errorf("embed faq %q: %w", e.Title, err)
		}
		vectors = append(vectors, resp.Embedding.Values)
	}

	out, err := json.Marshal(vectorFile{Vectors: vectors})
	if err != nil {
		return 0, err
	}
	tmp := vectorsPath + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp, vectorsPath); err != nil {
		return 0, err
	}
	return len(vectors), nil
}
