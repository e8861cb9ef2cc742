// Package recordsearch filters submission records the way the records view
// does: a case-insensitive substring match over a flattened view of every
// section/field value, plus inclusive day-granular creation-date bounds.
package recordsearch

import (
	"strings"
	"time"

	"powerdesk.app/pkg/formschema"
)

// Filter is the records-view filter set. Zero values mean "no constraint".
type Filter struct {
	Search    string
	StartDate string // YYYY-MM-DD, inclusive from 00:00:00.000
	EndDate   string // YYYY-MM-DD, inclusive to 23:59:59.999
}

// IsZero reports whether the filter constrains anything.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.StartDate == "" && f.EndDate == ""
}

// Flatten collapses a record's two-level data map into the list of string
// values the text search runs over.
func Flatten(data formschema.SubmissionData) []string {
	var out []string
	for _, inner := range data {
		for _, v := range inner {
			out = append(out, v.Strings()...)
		}
	}
	return out
}

// MatchText reports whether any flattened value contains query
// (case-insensitive). An empty query matches everything.
func MatchText(flattened []string, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, v := range flattened {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// dateLayout is the filter input format.
const dateLayout = "2006-01-02"

// StartBound parses a YYYY-MM-DD string into the inclusive lower bound
// (00:00:00.000 of that day, UTC). Returns ok=false for empty or malformed
// input, which callers treat as "unbounded".
func StartBound(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EndBound parses the inclusive upper bound (23:59:59.999 of that day, UTC).
func EndBound(date string) (time.Time, bool) {
	t, ok := StartBound(date)
	if !ok {
		return time.Time{}, false
	}
	return t.Add(24*time.Hour - time.Millisecond), true
}

// MatchDate reports whether createdAt falls inside the filter's inclusive
// date window.
func (f Filter) MatchDate(createdAt time.Time) bool {
	if start, ok := StartBound(f.StartDate); ok && createdAt.Before(start) {
		return false
	}
	if end, ok := EndBound(f.EndDate); ok && createdAt.After(end) {
		return false
	}
	return true
}

// Match applies the full filter to one record.
func (f Filter) Match(data formschema.SubmissionData, createdAt time.Time) bool {
	if !f.MatchDate(createdAt) {
		return false
	}
	return MatchText(Flatten(data), f.Search)
}

// Page slices one page out of a filtered set. Pages are 1-based; an
// out-of-range page yields an empty slice.
func Page[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
