// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows in a paged list.
const PageSize = 50

// MaxPageSize caps the "limit" query parameter.
const MaxPageSize = 200

// ParseStart extracts the human-friendly "start" query parameter (1-based index).
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	return parsePositive(query.Get(r, "start"), 1)
}

// ParseLimit extracts the "limit" query parameter, defaulting to PageSize
// and clamped to MaxPageSize.
func ParseLimit(r *http.Request) int {
	n := parsePositive(query.Get(r, "limit"), PageSize)
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

func parsePositive(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Range describes the page that was returned.
type Range struct {
	Start     int  `json:"start"` // 1-based start index (0 if no results)
	End       int  `json:"end"`   // 1-based end index (0 if no results)
	Total     int  `json:"total"`
	PrevStart int  `json:"prev_start"`
	NextStart int  `json:"next_start"`
	HasPrev   bool `json:"has_prev"`
	HasNext   bool `json:"has_next"`
}

// ComputeRange calculates display range values given the current start
// index, the number of rows shown and the page size.
func ComputeRange(start, shown, total, pageSize int) Range {
	if shown == 0 {
		return Range{Total: total, PrevStart: 1, NextStart: 1, HasPrev: start > 1}
	}

	prevStart := start - pageSize
	if prevStart < 1 {
		prevStart = 1
	}
	end := start + shown - 1

	return Range{
		Start:     start,
		End:       end,
		Total:     total,
		PrevStart: prevStart,
		NextStart: end + 1,
		HasPrev:   start > 1,
		HasNext:   end < total,
	}
}

// Window returns the page of rows beginning at the 1-based start index.
// The result shares rows' backing array.
func Window[T any](rows []T, start, pageSize int) ([]T, Range) {
	if start < 1 {
		start = 1
	}
	if pageSize < 1 {
		pageSize = PageSize
	}
	total := len(rows)
	if start > total {
		return rows[:0], ComputeRange(start, 0, total, pageSize)
	}
	end := start - 1 + pageSize
	if end > total {
		end = total
	}
	page := rows[start-1 : end]
	return page, ComputeRange(start, len(page), total, pageSize)
}

// FromRequest is Window driven by the request's start and limit parameters.
func FromRequest[T any](r *http.Request, rows []T) ([]T, Range) {
	return Window(rows, ParseStart(r), ParseLimit(r))
}
