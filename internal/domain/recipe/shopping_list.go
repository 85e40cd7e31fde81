package recipe

import (
	"fmt"
	"strings"
)

const ShoppingListFilename = "shopping_list.txt"

// ShoppingListLine is one aggregated (ingredient, unit) total.
type ShoppingListLine struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}

// RenderShoppingList formats the lines as a numbered plain-text list.
func RenderShoppingList(lines []ShoppingListLine) string {
	var b strings.Builder
	b.WriteString("Shopping list:\n\n")
	for i, l := range lines {
		fmt.Fprintf(&b, "%d) %s - %d %s\n", i+1, l.Name, l.Amount, l.MeasurementUnit)
	}
	return b.String()
}
