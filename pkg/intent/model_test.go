package intent

import (
	"path/filepath"
	"testing"
)

func trainingExamples() []Example {
	return []Example{
		{Text: "show me some tiles", Label: "search_product"},
		{Text: "do you have blue tiles", Label: "search_product"},
		{Text: "looking for kitchen backsplash tiles", Label: "search_product"},
		{Text: "any blog about installation", Label: "search_blog"},
		{Text: "show me your blog articles", Label: "search_blog"},
		{Text: "read the blog on grout", Label: "search_blog"},
		{Text: "what is your shipping policy", Label: "shipping"},
		{Text: "how long does shipping take", Label: "shipping"},
		{Text: "when will my shipping arrive", Label: "shipping"},
	}
}

func TestTrainAndPredict(t *testing.T) {
	model := Train(trainingExamples())
	if !model.Trained() {
		t.Fatal("model should be trained")
	}

	tests := []struct {
		message string
		want    string
	}{
		{"show me blue tiles", "search_product"},
		{"any blog on grout", "search_blog"},
		{"shipping question", "shipping"},
	}
	for _, tt := range tests {
		got, ok := model.Predict(tt.message)
		if !ok {
			t.Fatalf("Predict(%q) not ok", tt.message)
		}
		if got != tt.want {
			t.Errorf("Predict(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestPredictUntrained(t *testing.T) {
	model := NewModel()
	if _, ok := model.Predict("anything"); ok {
		t.Error("untrained model must not claim a prediction")
	}
}

func TestPredictDeterministic(t *testing.T) {
	model := Train(trainingExamples())
	first, _ := model.Predict("tiles for my kitchen")
	for i := 0; i < 10; i++ {
		got, _ := model.Predict("tiles for my kitchen")
		if got != first {
			t.Fatalf("prediction changed across calls: %q vs %q", first, got)
		}
	}
}

func TestModelSaveLoad(t *testing.T) {
	model := Train(trainingExamples())
	path := filepath.Join(t.TempDir(), "model.json")
	if err := model.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if !loaded.Trained() {
		t.Fatal("loaded model should be trained")
	}

	for _, msg := range []string{"show me blue tiles", "any blog on grout", "shipping question"} {
		a, _ := model.Predict(msg)
		b, _ := loaded.Predict(msg)
		if a != b {
			t.Errorf("Predict(%q) differs after reload: %q vs %q", msg, a, b)
		}
	}
}

func TestLoadModelMissing(t *testing.T) {
	if _, err := LoadModel(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing model file")
	}
}
