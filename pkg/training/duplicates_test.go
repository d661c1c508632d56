package training

import "testing"

func TestFindExactDuplicates(t *testing.T) {
	c := Corpus{
		{Intent: "shipping", Examples: []string{"where is my order", "Shipping Cost?"}},
		{Intent: "returns_info", Examples: []string{"Where is my order", "can i return this"}},
		{Intent: "trade", Examples: []string{"trade pricing please"}},
	}

	dups := FindExactDuplicates(c)
	if len(dups) != 1 {
		t.Fatalf("want 1 duplicate, got %d: %+v", len(dups), dups)
	}
	if dups[0].Phrase != "where is my order" {
		t.Errorf("Phrase = %q", dups[0].Phrase)
	}
	if len(dups[0].Intents) != 2 || dups[0].Intents[0] != "returns_info" || dups[0].Intents[1] != "shipping" {
		t.Errorf("Intents = %v, want sorted [returns_info shipping]", dups[0].Intents)
	}
}

func TestFindExactDuplicatesSameIntentIsFine(t *testing.T) {
	c := Corpus{
		{Intent: "shipping", Examples: []string{"where is my order", "WHERE IS MY ORDER"}},
	}
	if dups := FindExactDuplicates(c); len(dups) != 0 {
		t.Errorf("repeat within one intent is not a conflict, got %+v", dups)
	}
}

func TestFindFuzzyConflicts(t *testing.T) {
	c := Corpus{
		{Intent: "shipping", Examples: []string{"how much is shipping"}},
		{Intent: "returns_info", Examples: []string{"how much is shippin"}},
		{Intent: "search_product", Examples: []string{"show me blue tiles"}},
	}

	conflicts := FindFuzzyConflicts(c, FuzzyThreshold)
	if len(conflicts) != 1 {
		t.Fatalf("want 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}
	got := conflicts[0]
	if got.IntentA == got.IntentB {
		t.Error("conflict within a single intent reported")
	}
	if got.Ratio < FuzzyThreshold {
		t.Errorf("Ratio = %v below threshold", got.Ratio)
	}
}

func TestFindFuzzyConflictsRespectsThreshold(t *testing.T) {
	c := Corpus{
		{Intent: "shipping", Examples: []string{"how much is shipping"}},
		{Intent: "search_product", Examples: []string{"show me blue tiles"}},
	}
	if got := FindFuzzyConflicts(c, FuzzyThreshold); len(got) != 0 {
		t.Errorf("unrelated phrases flagged: %+v", got)
	}
}
