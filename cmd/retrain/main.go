package main

import (
	"context"
	"fmt"
	"log"

	"github.com/fatih/color"

	"shopbot-be/internal/config"
	"shopbot-be/pkg/sheets"
	"shopbot-be/pkg/training"
)

// Offline feedback loop: pull logged interactions, merge the phrases the
// corpus has not seen, retrain the intent model and report training-set
// metrics. Safe to run with nothing new to learn.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	corpus, err := training.LoadCorpus(cfg.Data.TrainingPath)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}
	fmt.Printf("📚 Corpus loaded: %d examples across %d intents\n", corpus.Size(), len(corpus))

	var pairs []training.Pair
	if cfg.Sheets.SpreadsheetID != "" {
		sink, err := sheets.NewSink(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
		if err != nil {
			log.Fatalf("sheets: %v", err)
		}
		rows, err := sink.ReadInteractions(ctx)
		if err != nil {
			log.Fatalf("read interaction log: %v", err)
		}
		logRows := make([]training.LogRow, len(rows))
		for i, r := range rows {
			logRows[i] = training.LogRow{
				Timestamp: r.Timestamp.Format("2006-01-02 15:04:05"),
				Message:   r.Message,
				Intent:    r.Intent,
				Response:  r.Response,
			}
		}
		pairs = training.Harvest(logRows, corpus)
	} else {
		color.Yellow("⚠ No spreadsheet configured; retraining on the existing corpus only.")
	}

	if len(pairs) > 0 {
		color.Green("🆕 New examples harvested: %d", len(pairs))
		for _, p := range pairs {
			fmt.Printf("  + %q → %s\n", p.Message, p.Intent)
		}
		corpus = corpus.Merge(pairs)
		if err := corpus.Save(cfg.Data.TrainingPath); err != nil {
			log.Fatalf("save corpus: %v", err)
		}
	} else {
		fmt.Println("📭 No new examples found.")
	}

	_, report, err := training.Retrain(corpus, cfg.Data.ModelPath)
	if err != nil {
		log.Fatalf("retrain: %v", err)
	}

	color.Green("🎉 Model retrained and saved to %s", cfg.Data.ModelPath)
	fmt.Printf("\n%-20s %10s %10s %10s\n", "intent", "precision", "recall", "support")
	for _, in := range report.Intents {
		m := report.PerIntent[in]
		line := fmt.Sprintf("%-20s %10.2f %10.2f %10d", in, m.Precision, m.Recall, m.Support)
		if m.Recall < 0.8 {
			color.Red(line)
		} else {
			fmt.Println(line)
		}
	}
	fmt.Printf("\nTotal examples: %d\n", report.TotalExamples)
}
