// Package sheets logs chat interactions to a Google spreadsheet. Answered
// interactions land on the first worksheet, questions nothing could answer
// on the second; the retraining job later reads the first sheet back as its
// feedback source.
package sheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	interactionsRange = "Sheet1!A:D"
	unansweredRange   = "Sheet2!A:D"
	timeLayout        = "2006-01-02 15:04:05"
)

// Row is one logged interaction: timestamp, user message, detected intent
// and the served response.
type Row struct {
	Timestamp time.Time
	Message   string
	Intent    string
	Response  string
}

// Sink appends interaction rows to the configured spreadsheet. Logging is
// best-effort; callers swallow returned errors so a sheet outage never
// breaks chat.
type Sink struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSink builds a sink from a service-account credentials file.
func NewSink(ctx context.Context, credentialsFile, spreadsheetID string) (*Sink, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Sink{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// AppendInteraction logs a served chat turn.
func (s *Sink) AppendInteraction(ctx context.Context, row Row) error {
	return s.append(ctx, interactionsRange, row)
}

// AppendUnanswered logs a question no route could answer, for later triage.
func (s *Sink) AppendUnanswered(ctx context.Context, row Row) error {
	if row.Intent == "" {
		row.Intent = "unknown"
	}
	return s.append(ctx, unansweredRange, row)
}

func (s *Sink) append(ctx context.Context, writeRange string, row Row) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{{
			row.Timestamp.Format(timeLayout),
			row.Message,
			row.Intent,
			row.Response,
		}},
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, writeRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// ReadInteractions pulls every logged interaction row, skipping the header
// row when present. Used by the retraining job.
func (s *Sink) ReadInteractions(ctx context.Context) ([]Row, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, interactionsRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	var rows []Row
	for i, raw := range resp.Values {
		row := Row{}
		if len(raw) > 0 {
			ts, _ := raw[0].(string)
			if i == 0 && ts == "Timestamp" {
				continue
			}
			row.Timestamp, _ = time.Parse(timeLayout, ts)
		}
		if len(raw) > 1 {
			row.Message, _ = raw[1].(string)
		}
		if len(raw) > 2 {
			row.Intent, _ = raw[2].(string)
		}
		if len(raw) > 3 {
			row.Response, _ = raw[3].(string)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
