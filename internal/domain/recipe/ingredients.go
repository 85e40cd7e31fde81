package recipe

import (
	"fmt"

	"github.com/BruksfildServices01/foodgram/internal/httperr"
)

// IngredientInput is one submitted ingredient row. Fields are pointers so a
// missing key can be told apart from a zero.
type IngredientInput struct {
	ID     *uint `json:"id"`
	Amount *int  `json:"amount"`
}

type IngredientLine struct {
	IngredientID uint
	Amount       int
}

// ValidateIngredients checks the submitted rows and returns them as lines.
// The list must be non-empty, every row needs an id and an amount >= 1, and
// an ingredient may appear once.
func ValidateIngredients(in []IngredientInput) ([]IngredientLine, error) {
	if len(in) == 0 {
		return nil, httperr.Validation("ingredients_required", "At least one ingredient is required.")
	}

	lines := make([]IngredientLine, 0, len(in))
	seen := make(map[uint]bool, len(in))

	for i, row := range in {
		if row.ID == nil || row.Amount == nil {
			return nil, httperr.Validation(
				"invalid_ingredient",
				fmt.Sprintf("Ingredient #%d needs both id and amount.", i+1),
			)
		}
		if *row.Amount < 1 {
			return nil, httperr.Validation(
				"invalid_amount",
				fmt.Sprintf("Ingredient #%d: amount must be at least 1.", i+1),
			)
		}
		if seen[*row.ID] {
			return nil, httperr.Validation(
				"duplicate_ingredient",
				fmt.Sprintf("Ingredient %d is listed more than once.", *row.ID),
			)
		}
		seen[*row.ID] = true
		lines = append(lines, IngredientLine{IngredientID: *row.ID, Amount: *row.Amount})
	}

	return lines, nil
}

// DedupeIDs drops repeated ids keeping first-seen order.
func DedupeIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
