package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"spendbook/internal/backend"
	"spendbook/internal/clock"
	"spendbook/internal/config"
	"spendbook/internal/core"
	"spendbook/internal/log"
	"spendbook/internal/services"
	gsheet "spendbook/internal/sheets/google"
	"spendbook/internal/store"
)

const usage = `Usage: spendbook <command> [flags]

Commands:
  add        record a transaction (-amount, -desc, [-category], [-date])
  list       show all transactions, newest first
  stats      show ledger totals
  summary    show spending breakdown by category
  advice     show spending advice
  filter     show transactions in a date range (-start, -end)
  quick      show a convenience window (-window 7d|30d|mtd)
  category   show transactions for one category (-name)
  export     push the ledger to the configured Google Sheet
  save       persist the ledger through the configured backend
  reload     replace the in-memory ledger with the persisted one
  clear      delete all transactions
  examples   show accepted date input formats
`

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.New(log.ParseLevel(cfg.LogLevel), log.ComponentApp)
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", log.FieldError, err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	clk, err := clock.NewSydney()
	if err != nil {
		logger.Error("Failed to load timezone", log.FieldError, err)
		os.Exit(1)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err)
		os.Exit(1)
	}
	factory := backend.NewFactory(clk, logger.WithComponent(log.ComponentStorage))
	result, err := factory.CreatePersister(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend", log.FieldBackend, cfg.DataBackend, log.FieldError, err)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	var exporter *gsheet.Client
	if cfg.ExportConfigured() {
		exporter, err = gsheet.New(ctx, gsheet.Config{
			SpreadsheetID:      cfg.GoogleSpreadsheetID,
			SheetName:          cfg.GoogleSheetName,
			ServiceAccountJSON: cfg.GoogleServiceAccountJSON,
			ServiceAccountFile: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			logger.Error("Failed to initialize Google Sheets export", log.FieldError, err)
			os.Exit(1)
		}
	}

	st := store.New(clk, result.Persister)
	svc := newService(clk, st, exporter, logger)

	// A broken data file should not brick the tool; the session continues
	// empty and the error has already been logged as a notice.
	_ = svc.Reload(ctx)

	if err := run(ctx, svc, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("Command failed", log.FieldOperation, os.Args[1], log.FieldError, err)
		os.Exit(1)
	}
}

// newService keeps the untyped-nil-interface trap out of main: a nil *Client
// must become a nil LedgerExporter, not a non-nil interface holding nil.
func newService(clk clock.Clock, st *store.Store, exporter *gsheet.Client, logger *log.Logger) *services.LedgerService {
	ledgerLog := logger.WithComponent(log.ComponentLedger)
	if exporter == nil {
		return services.NewLedgerService(clk, st, nil, ledgerLog)
	}
	return services.NewLedgerService(clk, st, exporter, ledgerLog)
}

func run(ctx context.Context, svc *services.LedgerService, command string, args []string) error {
	switch command {
	case "add":
		return runAdd(ctx, svc, args)
	case "list":
		return runList(svc)
	case "stats":
		return runStats(svc)
	case "summary":
		return runSummary(svc)
	case "advice":
		return runAdvice(svc)
	case "filter":
		return runFilter(svc, args)
	case "quick":
		return runQuick(svc, args)
	case "category":
		return runCategory(svc, args)
	case "export":
		return svc.Export(ctx)
	case "save":
		return svc.Save(ctx)
	case "reload":
		return svc.Reload(ctx)
	case "clear":
		return svc.ClearAll(ctx)
	case "examples":
		return runExamples()
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runAdd(ctx context.Context, svc *services.LedgerService, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	amount := fs.String("amount", "", "amount spent (required)")
	description := fs.String("desc", "", "what the money went on (required)")
	category := fs.String("category", "", "category; guessed from the description when omitted")
	date := fs.String("date", "", "date input; inferred from the description when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	value, err := decimal.NewFromString(strings.TrimSpace(*amount))
	if err != nil {
		return fmt.Errorf("amount %q: %w", *amount, err)
	}

	added, err := svc.AddEntry(ctx, services.NewEntry{
		Amount:      value,
		Description: *description,
		Category:    *category,
		DateInput:   *date,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added %s: $%s %s (%s) on %s\n",
		added.ID, added.Amount.String(), added.Description, added.Category, added.Date)
	return nil
}

func runList(svc *services.LedgerService) error {
	transactions := svc.ListTransactions()
	if len(transactions) == 0 {
		fmt.Println("No transactions recorded yet.")
		return nil
	}
	printTransactions(transactions)
	return nil
}

func runStats(svc *services.LedgerService) error {
	stats, ok := svc.Stats()
	if !ok {
		fmt.Println("No transactions recorded yet.")
		return nil
	}
	fmt.Printf("Total: $%s over %d transactions (avg $%s, %d categories)\n",
		stats.Total.String(), stats.Count, stats.Average.String(), stats.Categories)
	if earliest, latest, ok := svc.DateRange(); ok {
		fmt.Printf("From %s to %s\n", earliest, latest)
	}
	return nil
}

func runSummary(svc *services.LedgerService) error {
	summary, err := svc.Summary()
	if errors.Is(err, core.ErrNoTransactions) {
		fmt.Println("No transactions recorded yet.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Total: $%s over %d transactions (avg $%s)\n",
		summary.Total.String(), summary.Count, summary.Average.String())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, category := range core.Categories() {
		share, ok := summary.Breakdown[category]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t$%s\t%s%%\n", category, share.Amount.String(), share.Percentage.String())
	}
	return w.Flush()
}

func runAdvice(svc *services.LedgerService) error {
	for _, line := range svc.Advice() {
		fmt.Println(line)
	}
	return nil
}

func runFilter(svc *services.LedgerService, args []string) error {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	start := fs.String("start", "", "range start, YYYY-MM-DD or DD/MM/YYYY (required)")
	end := fs.String("end", "", "range end, YYYY-MM-DD or DD/MM/YYYY (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := svc.FilterRange(*start, *end)
	if err != nil {
		return err
	}
	printRangeReport(report)
	return nil
}

func runQuick(svc *services.LedgerService, args []string) error {
	fs := flag.NewFlagSet("quick", flag.ContinueOnError)
	window := fs.String("window", "7d", "convenience window: 7d, 30d or mtd")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var w core.Window
	switch strings.ToLower(*window) {
	case "7d":
		w = core.Last7Days
	case "30d":
		w = core.Last30Days
	case "mtd":
		w = core.MonthToDate
	default:
		return fmt.Errorf("unknown window %q: use 7d, 30d or mtd", *window)
	}
	printRangeReport(svc.QuickReport(w))
	return nil
}

func runCategory(svc *services.LedgerService, args []string) error {
	fs := flag.NewFlagSet("category", flag.ContinueOnError)
	name := fs.String("name", "", "category name (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := svc.CategoryReport(*name)
	if err != nil {
		if errors.Is(err, core.ErrUnknownCategory) {
			names := make([]string, 0, len(core.Categories()))
			for _, c := range core.Categories() {
				names = append(names, string(c))
			}
			return fmt.Errorf("%w: valid categories are %s", err, strings.Join(names, ", "))
		}
		return err
	}
	if len(report.Transactions) == 0 {
		fmt.Printf("No %s transactions.\n", report.Category)
		return nil
	}
	printTransactions(report.Transactions)
	fmt.Printf("Total %s: $%s\n", report.Category, report.Total.String())
	return nil
}

func runExamples() error {
	fmt.Println("Accepted date inputs:")
	for _, example := range core.DateExamples() {
		fmt.Printf("  %s\n", example)
	}
	return nil
}

func printRangeReport(report services.RangeReport) {
	fmt.Printf("%s to %s: %d transactions\n", report.Start, report.End, len(report.Transactions))
	if len(report.Transactions) == 0 {
		return
	}
	printTransactions(report.Transactions)
	fmt.Printf("Total: $%s (avg $%s)\n", report.Total.String(), report.Average.String())
}

func printTransactions(transactions []core.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION")
	for _, t := range transactions {
		fmt.Fprintf(w, "%s\t$%s\t%s\t%s\n", t.Date, t.Amount.String(), t.Category, t.Description)
	}
	w.Flush()
}
