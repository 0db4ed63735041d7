package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type (
	// CategoryShare is one category's slice of the total spend. Percentage is
	// pre-rounded to one decimal place.
	CategoryShare struct {
		Amount     decimal.Decimal
		Percentage decimal.Decimal
	}

	// Summary is the aggregate view over a set of transactions. Breakdown
	// holds only the categories actually present in the input.
	Summary struct {
		Total     decimal.Decimal
		Count     int
		Average   decimal.Decimal // rounded to 2 decimal places
		Breakdown map[Category]CategoryShare
	}
)

var oneHundred = decimal.NewFromInt(100)

// Summarize computes the aggregate view. An empty input yields
// ErrNoTransactions; callers render that as the "no data" case rather than a
// fault.
func Summarize(transactions []Transaction) (Summary, error) {
	if len(transactions) == 0 {
		return Summary{}, ErrNoTransactions
	}

	totals := make(map[Category]decimal.Decimal)
	total := decimal.Zero
	for _, t := range transactions {
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	breakdown := make(map[Category]CategoryShare, len(totals))
	for category, amount := range totals {
		percentage := decimal.Zero
		if total.IsPositive() {
			percentage = amount.Div(total).Mul(oneHundred).Round(1)
		}
		breakdown[category] = CategoryShare{Amount: amount, Percentage: percentage}
	}

	count := len(transactions)
	return Summary{
		Total:     total,
		Count:     count,
		Average:   total.Div(decimal.NewFromInt(int64(count))).Round(2),
		Breakdown: breakdown,
	}, nil
}

// Advice thresholds, in percent of total spend except avgThreshold (dollars).
var (
	foodThreshold      = decimal.NewFromInt(35)
	entertainThreshold = decimal.NewFromInt(25)
	shoppingThreshold  = decimal.NewFromInt(30)
	transportThreshold = decimal.NewFromInt(20)
	avgThreshold       = decimal.NewFromInt(100)
)

// Advise evaluates the fixed advice rules over a summary. Rules are
// independent and evaluated in a fixed order; every matching rule contributes
// one message. A zero summary (the no-data case) yields a single notice, and
// a summary that trips no rule yields the balanced-spending message.
func Advise(s Summary) []string {
	if s.Count == 0 {
		return []string{"No data available for advice"}
	}

	var advice []string
	if share, ok := s.Breakdown[CategoryFoodDrinks]; ok && share.Percentage.GreaterThan(foodThreshold) {
		advice = append(advice, fmt.Sprintf("Food & Drinks spending is %s%%. Maybe cook more at home?", share.Percentage.StringFixed(1)))
	}
	if share, ok := s.Breakdown[CategoryEntertainment]; ok && share.Percentage.GreaterThan(entertainThreshold) {
		advice = append(advice, fmt.Sprintf("Entertainment is %s%% of total. Try some free activities.", share.Percentage.StringFixed(1)))
	}
	if share, ok := s.Breakdown[CategoryShopping]; ok && share.Percentage.GreaterThan(shoppingThreshold) {
		advice = append(advice, fmt.Sprintf("Shopping is %s%%. Consider making a list before shopping.", share.Percentage.StringFixed(1)))
	}
	if share, ok := s.Breakdown[CategoryTransportation]; ok && share.Percentage.GreaterThan(transportThreshold) {
		advice = append(advice, fmt.Sprintf("Transportation is %s%%. Maybe walk more or use student discounts.", share.Percentage.StringFixed(1)))
	}
	if s.Average.GreaterThan(avgThreshold) {
		advice = append(advice, fmt.Sprintf("Average transaction is $%s - quite high. Budget for big purchases.", s.Average.StringFixed(2)))
	}

	if len(advice) == 0 {
		advice = append(advice, "Your spending looks balanced! Good job.")
	}
	return advice
}
