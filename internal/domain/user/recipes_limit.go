package user

import "strconv"

// ParseRecipesLimit reads the recipes_limit query value. Anything that is
// not a non-negative integer means no cap and yields -1.
func ParseRecipesLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return -1
	}
	return n
}
