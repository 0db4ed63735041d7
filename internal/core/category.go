package core

import "strings"

// keywordEntry maps a category to the phrases that suggest it. Order matters:
// on a tied score the first-declared category wins.
type keywordEntry struct {
	category Category
	phrases  []string
}

// keywordTable is a fixed heuristic, not a learned model. Scores are two
// points per matching phrase; Other has no phrases and is the zero-score
// fallback.
var keywordTable = []keywordEntry{
	{CategoryFoodDrinks, []string{
		"coffee", "milk tea", "breakfast", "lunch", "dinner", "canteen",
		"mcdonalds", "starbucks", "uber eats", "deliveroo", "food",
		"restaurant", "cafe", "drink",
	}},
	{CategoryTransportation, []string{
		"subway", "bus", "taxi", "gas cost", "parking", "train ticket",
		"air ticket", "transport", "opal", "metro", "uber", "fuel",
	}},
	{CategoryShopping, []string{
		"supermarket", "shoes", "clothing", "skin care products",
		"electronic products", "amazon", "woolworths", "coles", "target",
		"kmart", "shop",
	}},
	{CategoryEntertainment, []string{
		"movies", "games", "ktv", "travel", "gym", "bookstore", "concert",
		"cinema", "netflix", "spotify", "gaming",
	}},
	{CategoryMedical, []string{
		"hospital", "pharmacy", "physical examination", "dentist", "medicine",
		"doctor", "clinic", "health",
	}},
	{CategoryEducation, []string{
		"tuition", "tutoring", "exam fees", "textbooks", "uts", "university",
		"course", "book", "study",
	}},
	{CategoryLifeExpense, []string{
		"rent", "utilities", "internet", "furniture", "electricity", "water",
		"gas", "phone", "home",
	}},
}

// GuessCategory classifies a description by case-insensitive substring
// matching against the keyword table. The strictly highest score wins; when
// nothing matches it returns Other.
func GuessCategory(description string) Category {
	desc := strings.ToLower(description)

	best := CategoryOther
	bestScore := 0
	for _, entry := range keywordTable {
		score := 0
		for _, phrase := range entry.phrases {
			if strings.Contains(desc, phrase) {
				score += 2
			}
		}
		if score > bestScore {
			best = entry.category
			bestScore = score
		}
	}
	return best
}
