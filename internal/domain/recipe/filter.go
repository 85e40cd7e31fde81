package recipe

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/foodgram/internal/permissions"
)

// ListFilter narrows the recipe list. Nil pointers mean "not filtered".
type ListFilter struct {
	// TagSlugs keeps recipes carrying every listed slug.
	TagSlugs    []string
	AuthorID    *uint
	FavoritedBy *uint
	InCartOf    *uint
}

// ParseListFilter reads tags, author, is_favorited and is_in_shopping_cart.
// The two mark filters only apply to authenticated requesters and an
// unparsable author is ignored.
func ParseListFilter(q url.Values, r permissions.Requester) ListFilter {
	var f ListFilter

	seen := map[string]bool{}
	for _, raw := range q["tags"] {
		for _, slug := range strings.Split(raw, ",") {
			slug = strings.TrimSpace(slug)
			if slug == "" || seen[slug] {
				continue
			}
			seen[slug] = true
			f.TagSlugs = append(f.TagSlugs, slug)
		}
	}

	if v, err := strconv.ParseUint(q.Get("author"), 10, 64); err == nil && v > 0 {
		id := uint(v)
		f.AuthorID = &id
	}

	if r.Authenticated() {
		uid := r.UserID
		if truthy(q.Get("is_favorited")) {
			f.FavoritedBy = &uid
		}
		if truthy(q.Get("is_in_shopping_cart")) {
			f.InCartOf = &uid
		}
	}

	return f
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true":
		return true
	}
	return false
}
