package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"

	"shopbot-be/internal/config"
	"shopbot-be/pkg/training"
)

// Audits the training corpus for phrases filed under more than one intent,
// exactly and by fuzzy similarity. Reports only; conflicts are resolved by
// hand.
func main() {
	cfg := config.Load()

	corpus, err := training.LoadCorpus(cfg.Data.TrainingPath)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	fmt.Println("🔎 Checking for exact duplicates across intents...")
	exact := training.FindExactDuplicates(corpus)
	if len(exact) > 0 {
		color.Yellow("⚠ Exact duplicates found:")
		for _, d := range exact {
			fmt.Printf(" - %q in intents: %s\n", d.Phrase, strings.Join(d.Intents, ", "))
		}
	} else {
		color.Green("✅ No exact duplicates.")
	}

	fmt.Println("\n🔍 Checking for similar phrases across intents...")
	fuzzy := training.FindFuzzyConflicts(corpus, training.FuzzyThreshold)
	if len(fuzzy) > 0 {
		color.Yellow("⚠ Found %d fuzzy conflicts:", len(fuzzy))
		for _, c := range fuzzy {
			fmt.Printf(" - %q (%s) vs %q (%s) → similarity: %.2f\n",
				c.PhraseA, c.IntentA, c.PhraseB, c.IntentB, c.Ratio)
		}
	} else {
		color.Green("✅ No fuzzy duplicates detected.")
	}
}
