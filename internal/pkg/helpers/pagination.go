package helpers

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // page numbers are 1-based
)

// ParsePageParams extracts the page and page_size query parameters, falling
// back to defaults for missing or invalid values.
func ParsePageParams(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

// PageBounds converts a 1-based page number into SQL limit and offset.
func PageBounds(page, pageSize int) (limit int, offset uint64) {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return pageSize, uint64((page - 1) * pageSize)
}

// PageLinks builds the absolute next and previous page URLs for a paginated
// response. Either link is nil when the corresponding page does not exist.
// baseURL is the externally visible scheme://host prefix; reqURL is the
// incoming request URL whose path and remaining query parameters are kept.
func PageLinks(baseURL string, reqURL *url.URL, page, pageSize int, total int64) (next, previous *string) {
	if int64(page*pageSize) < total {
		u := pageURL(baseURL, reqURL, page+1)
		next = &u
	}
	if page > 1 {
		u := pageURL(baseURL, reqURL, page-1)
		previous = &u
	}
	return next, previous
}

func pageURL(baseURL string, reqURL *url.URL, page int) string {
	q := reqURL.Query()
	q.Set("page", strconv.Itoa(page))
	return baseURL + reqURL.Path + "?" + q.Encode()
}
