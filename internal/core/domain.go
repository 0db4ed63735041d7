package core

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Spending categories. The declared order matters: it is the tie-break order
// for keyword classification and the display order for pickers.
const (
	CategoryFoodDrinks     Category = "Food&Drinks"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryMedical        Category = "Medical"
	CategoryEducation      Category = "Education"
	CategoryLifeExpense    Category = "Life Expense"
	CategoryOther          Category = "Other"
)

type (
	// Category is one of the fixed spending categories.
	Category string

	// Transaction is a single recorded expense. Date is the logical calendar
	// date of the spend; Timestamp is the creation instant and never changes
	// after construction.
	Transaction struct {
		ID          string
		Amount      decimal.Decimal
		Description string
		Category    Category
		Date        string // YYYY-MM-DD
		Timestamp   string // YYYY-MM-DD HH:MM:SS
	}
)

// Field layouts shared across the module.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"

	idLayout = "T20060102150405"
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrEmptyDescription = errors.New("empty description")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrNoTransactions   = errors.New("no transactions")
)

// Categories returns all categories in declared order.
func Categories() []Category {
	return []Category{
		CategoryFoodDrinks,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryMedical,
		CategoryEducation,
		CategoryLifeExpense,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory validates a category name. The empty string maps to Other,
// matching the construction default.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryOther, nil
	}
	c := Category(s)
	if !c.IsValid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// NewTransaction builds a fresh transaction at the given instant. The id is
// derived from the instant at second resolution; category defaults to Other
// and date to the instant's calendar day. Amount validation is the caller's
// responsibility (see Validate).
func NewTransaction(now time.Time, amount decimal.Decimal, description string, category Category, date string) Transaction {
	if category == "" {
		category = CategoryOther
	}
	if date == "" {
		date = now.Format(DateLayout)
	}
	return Transaction{
		ID:          now.Format(idLayout),
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		Timestamp:   now.Format(TimestampLayout),
	}
}

// Rehydrate rebuilds a transaction from persisted fields. Missing category and
// date are coerced the same way NewTransaction defaults them, but id and
// timestamp are preserved verbatim so round-trips are lossless.
func Rehydrate(now time.Time, id string, amount decimal.Decimal, description, category, date, timestamp string) Transaction {
	c := Category(category)
	if c == "" {
		c = CategoryOther
	}
	if date == "" {
		date = now.Format(DateLayout)
	}
	return Transaction{
		ID:          id,
		Amount:      amount,
		Description: description,
		Category:    c,
		Date:        date,
		Timestamp:   timestamp,
	}
}

// Validate enforces the entry-flow invariants: positive amount, non-empty
// description, known category. Dates are resolved before construction and are
// not re-checked here; legacy records may carry unparseable dates and are
// filtered out at query time instead.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if !t.Category.IsValid() {
		return ErrUnknownCategory
	}
	return nil
}

// SumAmounts returns the exact sum of the transactions' amounts.
func SumAmounts(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// SortForDisplay orders transactions in place, descending by (date,
// timestamp). Both fields sort correctly as strings in their stored layouts.
func SortForDisplay(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		if transactions[i].Date != transactions[j].Date {
			return transactions[i].Date > transactions[j].Date
		}
		return transactions[i].Timestamp > transactions[j].Timestamp
	})
}

// DateBounds returns the earliest and latest stored date strings. The stored
// YYYY-MM-DD form orders lexicographically, so no parsing is needed. ok is
// false for an empty slice.
func DateBounds(transactions []Transaction) (earliest, latest string, ok bool) {
	if len(transactions) == 0 {
		return "", "", false
	}
	earliest, latest = transactions[0].Date, transactions[0].Date
	for _, t := range transactions[1:] {
		if t.Date < earliest {
			earliest = t.Date
		}
		if t.Date > latest {
			latest = t.Date
		}
	}
	return earliest, latest, true
}
