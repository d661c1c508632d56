package embedding

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProviderHasClientTimeout(t *testing.T) {
	p := NewOllamaProvider("", "").(*OllamaProvider)
	if p.Client == nil || p.Client.Timeout == 0 {
		t.Error("embedding requests must run on a client with an explicit timeout")
	}
	g := NewGeminiProvider("key").(*GeminiProvider)
	if g.Client == nil || g.Client.Timeout == 0 {
		t.Error("gemini client missing a timeout")
	}
}

func TestOllamaGenerateNormalizesVector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"embedding":[3,4]}`)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "nomic-embed-text")
	resp, err := p.Generate("blue tiles", "RETRIEVAL_QUERY")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	values := resp.Embedding.Values
	if len(values) != 2 {
		t.Fatalf("values = %v", values)
	}
	var norm float64
	for _, v := range values {
		norm += float64(v) * float64(v)
	}
	if math.Abs(norm-1.0) > 1e-6 {
		t.Errorf("vector not unit length: %v (norm^2 = %v)", values, norm)
	}
}

func TestOllamaGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "missing-model")
	if _, err := p.Generate("anything", ""); err == nil {
		t.Error("non-200 response should error")
	}
}
