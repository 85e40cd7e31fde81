package httpresp

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page is the paginated envelope used by every paginated collection.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// PageParams are the page number (1-based) and page size of a request.
type PageParams struct {
	Page  int
	Limit int
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

const maxLimit = 100

// ParsePage reads `page` and `limit` from the query string. Invalid values
// fall back to the first page and the default size.
func ParsePage(c *gin.Context, defaultLimit int) PageParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return PageParams{Page: page, Limit: limit}
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, data)
}

// Paginated writes a Page, building next/previous links from the request URL.
func Paginated[T any](c *gin.Context, baseURL string, p PageParams, total int64, results []T) {
	if results == nil {
		results = []T{}
	}

	out := Page[T]{Count: total, Results: results}
	if int64(p.Page*p.Limit) < total {
		out.Next = pageLink(c, baseURL, p.Page+1, p.Limit)
	}
	if p.Page > 1 {
		out.Previous = pageLink(c, baseURL, p.Page-1, p.Limit)
	}

	c.JSON(http.StatusOK, out)
}

func pageLink(c *gin.Context, baseURL string, page, limit int) *string {
	q := url.Values{}
	for k, v := range c.Request.URL.Query() {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	link := baseURL + c.Request.URL.Path + "?" + q.Encode()
	return &link
}
