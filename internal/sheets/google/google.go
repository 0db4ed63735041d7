// Package google exports the ledger to a Google Sheet using service-account
// credentials.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	ports "spendbook/internal/sheets"

	"spendbook/internal/core"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// Ensure interface conformance
var _ ports.LedgerExporter = (*Client)(nil)

// Config carries the export destination and credentials. Exactly one of
// ServiceAccountJSON or ServiceAccountFile must be set.
type Config struct {
	SpreadsheetID      string
	SheetName          string
	ServiceAccountJSON string
	ServiceAccountFile string
}

// New creates a Sheets exporter from explicit configuration.
func New(ctx context.Context, cfg Config) (*Client, error) {
	spreadsheetID := strings.TrimSpace(cfg.SpreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	sheetName := strings.TrimSpace(cfg.SheetName)
	if sheetName == "" {
		sheetName = "Transactions"
	}

	credentialsJSON, err := loadCredentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func loadCredentials(cfg Config) ([]byte, error) {
	switch {
	case strings.TrimSpace(cfg.ServiceAccountJSON) != "":
		return []byte(cfg.ServiceAccountJSON), nil
	case strings.TrimSpace(cfg.ServiceAccountFile) != "":
		credentialsJSON, err := os.ReadFile(strings.TrimSpace(cfg.ServiceAccountFile))
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return credentialsJSON, nil
	default:
		return nil, errors.New("missing service account credentials")
	}
}

// Export replaces the destination sheet with the full ledger: a header row
// followed by one row per transaction.
func (c *Client) Export(ctx context.Context, transactions []core.Transaction) error {
	values := make([][]interface{}, 0, len(transactions)+1)
	values = append(values, []interface{}{"ID", "Amount", "Description", "Category", "Date", "Timestamp"})
	for _, t := range transactions {
		values = append(values, []interface{}{
			t.ID,
			t.Amount.InexactFloat64(),
			t.Description,
			string(t.Category),
			t.Date,
			t.Timestamp,
		})
	}

	if _, err := c.svc.Spreadsheets.Values.
		Clear(c.spreadsheetID, c.sheetName, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet %s: %w", c.sheetName, err)
	}

	valueRange := &gsheet.ValueRange{Values: values}
	if _, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, c.sheetName+"!A1", valueRange).
		ValueInputOption("RAW").
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("write sheet %s: %w", c.sheetName, err)
	}

	slog.InfoContext(ctx, "Exported ledger to Google Sheets",
		"sheet", c.sheetName,
		"rows", len(transactions))
	return nil
}
