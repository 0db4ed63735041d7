// Package services orchestrates the core pipeline for the presentation
// layer: entry validation and inference, aggregate views, range filters, the
// persistence lifecycle, and the optional spreadsheet export.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendbook/internal/clock"
	"spendbook/internal/core"
	"spendbook/internal/log"
	"spendbook/internal/sheets"
	"spendbook/internal/store"
)

var (
	ErrInvalidDateInput    = errors.New("invalid date format")
	ErrStartAfterEnd       = errors.New("start date must be before end date")
	ErrExportNotConfigured = errors.New("spreadsheet export is not configured")
)

// LedgerService owns one session's ledger. The exporter is optional.
type LedgerService struct {
	clk      clock.Clock
	store    *store.Store
	exporter sheets.LedgerExporter
	logger   *log.Logger
}

// NewEntry is a submission from the entry flow. Category and DateInput are
// raw user text: an empty category means "suggest one from the description",
// an empty date input means "infer from the description, else today".
type NewEntry struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	DateInput   string
}

// RangeReport is the result of a date-range filter.
type RangeReport struct {
	Start        string // YYYY-MM-DD
	End          string // YYYY-MM-DD
	Transactions []core.Transaction // display order
	Total        decimal.Decimal
	Average      decimal.Decimal
}

// CategoryReport is the result of a category filter.
type CategoryReport struct {
	Category     core.Category
	Transactions []core.Transaction // display order
	Total        decimal.Decimal
}

func NewLedgerService(clk clock.Clock, st *store.Store, exporter sheets.LedgerExporter, logger *log.Logger) *LedgerService {
	return &LedgerService{clk: clk, store: st, exporter: exporter, logger: logger}
}

// AddEntry validates a submission, infers the missing metadata, and appends
// the transaction. Validation failures reject the submission without touching
// the store; a save failure keeps the appended transaction in memory and
// surfaces the error as a notice.
func (s *LedgerService) AddEntry(ctx context.Context, in NewEntry) (core.Transaction, error) {
	if !in.Amount.IsPositive() {
		return core.Transaction{}, core.ErrInvalidAmount
	}
	if len(strings.TrimSpace(in.Description)) == 0 {
		return core.Transaction{}, core.ErrEmptyDescription
	}

	now := s.clk.Now()

	category, err := core.ParseCategory(in.Category)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("category %q: %w", in.Category, err)
	}
	if in.Category == "" {
		category = core.GuessCategory(in.Description)
	}

	var date string
	if in.DateInput == "" {
		if inferred, ok := core.InferDateFromText(now, in.Description); ok {
			date = inferred
		} else {
			date = now.Format(core.DateLayout)
		}
	} else {
		date = core.ResolveDateInput(now, in.DateInput)
	}

	t := core.NewTransaction(now, in.Amount, in.Description, category, date)
	added, err := s.store.Add(ctx, t)
	if err != nil {
		s.logger.Warn("Transaction added but save failed",
			log.FieldTransactionID, added.ID,
			log.FieldError, err)
		return added, err
	}

	s.logger.Info("Transaction added",
		log.FieldTransactionID, added.ID,
		log.FieldAmount, added.Amount.String(),
		log.FieldCategory, string(added.Category),
		log.FieldDate, added.Date)
	return added, nil
}

// SuggestCategory previews the keyword classification for the entry form.
func (s *LedgerService) SuggestCategory(description string) core.Category {
	return core.GuessCategory(description)
}

// SuggestDate previews the date inferred from free text, if any.
func (s *LedgerService) SuggestDate(description string) (string, bool) {
	return core.InferDateFromText(s.clk.Now(), description)
}

// ListTransactions returns the ledger in display order.
func (s *LedgerService) ListTransactions() []core.Transaction {
	return s.store.List()
}

// Stats returns the record-view headline numbers.
func (s *LedgerService) Stats() (store.Stats, bool) {
	return s.store.Stats()
}

// DateRange returns the earliest and latest stored dates.
func (s *LedgerService) DateRange() (earliest, latest string, ok bool) {
	return s.store.DateRange()
}

// Summary computes the aggregate analysis view. core.ErrNoTransactions marks
// the empty-ledger case.
func (s *LedgerService) Summary() (core.Summary, error) {
	return core.Summarize(s.store.All())
}

// Advice returns the heuristic advice messages for the current ledger.
func (s *LedgerService) Advice() []string {
	summary, err := s.Summary()
	if err != nil {
		return core.Advise(core.Summary{})
	}
	return core.Advise(summary)
}

// FilterRange filters the ledger by literal date bounds. Both bounds must
// parse as YYYY-MM-DD or DD/MM/YYYY and start must not be after end.
func (s *LedgerService) FilterRange(startInput, endInput string) (RangeReport, error) {
	start, ok := core.ParseFilterDate(strings.TrimSpace(startInput))
	if !ok {
		return RangeReport{}, fmt.Errorf("start %q: %w", startInput, ErrInvalidDateInput)
	}
	end, ok := core.ParseFilterDate(strings.TrimSpace(endInput))
	if !ok {
		return RangeReport{}, fmt.Errorf("end %q: %w", endInput, ErrInvalidDateInput)
	}
	if start.After(end) {
		return RangeReport{}, ErrStartAfterEnd
	}
	return s.rangeReport(start, end), nil
}

// QuickReport filters the ledger by a convenience window anchored at today.
func (s *LedgerService) QuickReport(w core.Window) RangeReport {
	start, end := core.QuickRange(s.clk.Now(), w)
	return s.rangeReport(start, end)
}

func (s *LedgerService) rangeReport(start, end time.Time) RangeReport {
	filtered := s.store.FilterRange(start, end)
	core.SortForDisplay(filtered)

	total := core.SumAmounts(filtered)
	average := decimal.Zero
	if len(filtered) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(filtered)))).Round(2)
	}
	return RangeReport{
		Start:        start.Format(core.DateLayout),
		End:          end.Format(core.DateLayout),
		Transactions: filtered,
		Total:        total,
		Average:      average,
	}
}

// CategoryReport filters the ledger by exact category.
func (s *LedgerService) CategoryReport(name string) (CategoryReport, error) {
	category, err := core.ParseCategory(name)
	if err != nil {
		return CategoryReport{}, fmt.Errorf("category %q: %w", name, err)
	}
	filtered := s.store.ByCategory(category)
	core.SortForDisplay(filtered)
	return CategoryReport{
		Category:     category,
		Transactions: filtered,
		Total:        core.SumAmounts(filtered),
	}, nil
}

// Save persists the ledger.
func (s *LedgerService) Save(ctx context.Context) error {
	if err := s.store.Save(ctx); err != nil {
		s.logger.Error("Save failed", log.FieldError, err)
		return err
	}
	s.logger.Info("Ledger saved", log.FieldCount, s.store.Len())
	return nil
}

// Reload replaces the in-memory ledger with the persisted one. On failure the
// session continues with an empty ledger and the error becomes a notice.
func (s *LedgerService) Reload(ctx context.Context) error {
	if err := s.store.Reload(ctx); err != nil {
		s.logger.Warn("Load failed, starting with an empty ledger", log.FieldError, err)
		return err
	}
	s.logger.Info("Ledger loaded", log.FieldCount, s.store.Len())
	return nil
}

// ClearAll deletes every transaction and persists the empty ledger.
func (s *LedgerService) ClearAll(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		s.logger.Error("Clear failed", log.FieldError, err)
		return err
	}
	s.logger.Info("Ledger cleared")
	return nil
}

// Export pushes the full ledger to the configured spreadsheet.
func (s *LedgerService) Export(ctx context.Context) error {
	if s.exporter == nil {
		return ErrExportNotConfigured
	}
	transactions := s.store.List()
	if err := s.exporter.Export(ctx, transactions); err != nil {
		s.logger.Error("Export failed", log.FieldError, err)
		return fmt.Errorf("export ledger: %w", err)
	}
	s.logger.Info("Ledger exported", log.FieldCount, len(transactions))
	return nil
}
