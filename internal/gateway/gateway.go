// Package gateway holds the typed per-entity calls to the remote
// dashboard API. Each operation issues exactly one HTTP request and
// normalizes the response; there is no caching and no retry here.
package gateway

import (
	"net/url"
	"strconv"
)

// ListQuery is the pagination and filter state a list fetch carries.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	// Status filters on entity status; "" and "ALL" mean no filter.
	// The logbook gateway sends it as the "type" parameter instead.
	Status string
}

// Values encodes the query for a list endpoint. statusKey is "status"
// for most entities and "type" for the logbook.
func (q ListQuery) Values(statusKey string) url.Values {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Status != "" && q.Status != "ALL" {
		values.Set(statusKey, q.Status)
	}
	return values
}

// ListResult is the normalized outcome of a list fetch. Total is the
// server-side count across all pages, independent of len(Items).
type ListResult[T any] struct {
	Items []T
	Total int
}
