// Package query holds the pure filtering, sorting and pagination primitives
// shared by the in-memory store and the aggregation services.
package query

import (
	"sort"
	"strings"
	"time"

	"task-tracker-api/internal/models"
)

// Paginate slices items into a page descriptor. Pages are 0-based; size must
// be positive (callers normalize it first). Slicing beyond the end yields an
// empty content slice, never an error.
func Paginate[T any](items []T, page, size int) models.Page[T] {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	// Copy so callers cannot mutate the underlying collection through the page.
	content := make([]T, end-start)
	copy(content, items[start:end])

	return models.Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: int64(total),
		TotalPages:    totalPages,
	}
}

// Filter returns the items matching pred, preserving collection order.
func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// MatchTask applies the combined task filters: exact status, case-insensitive
// substring over title OR description, exact assignee. Zero-value filters
// match everything; filters combine with AND.
func MatchTask(t models.Task, f models.TaskFilter) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Search != "" && !MatchText(f.Search, t.Title, t.Description) {
		return false
	}
	if f.AssigneeID != nil {
		if t.AssigneeID == nil || *t.AssigneeID != *f.AssigneeID {
			return false
		}
	}
	return true
}

// MatchText reports whether the lowercased term is a substring of any of the
// fields. Locale-naive on purpose: no tokenization, stemming or ranking.
func MatchText(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchActivityLog applies the reporting filters: typed action, user, task
// and inclusive date-range bounds on the timestamp.
func MatchActivityLog(l models.ActivityLog, f models.ActivityLogFilter) bool {
	if f.Type != "" && l.Type != f.Type {
		return false
	}
	if f.UserID != nil && l.UserID != *f.UserID {
		return false
	}
	if f.TaskID != nil {
		if l.TaskID == nil || *l.TaskID != *f.TaskID {
			return false
		}
	}
	if f.StartDate != "" {
		if start, ok := ParseDateFlexible(f.StartDate); ok && l.CreatedAt.Before(start) {
			return false
		}
	}
	if f.EndDate != "" {
		if end, ok := ParseDateFlexible(f.EndDate); ok {
			// Date-only bounds are inclusive of the whole end day.
			if !l.CreatedAt.Before(end.AddDate(0, 0, 1)) {
				return false
			}
		}
	}
	return true
}

// ParseDateFlexible accepts the date formats clients actually send.
func ParseDateFlexible(dateStr string) (time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, false
	}
	layouts := []string{
		"2006-01-02", // ISO date
		time.RFC3339, // full RFC3339
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortNewestFirst orders items by descending timestamp before pagination.
// The sort is stable so equal timestamps keep collection order.
func SortNewestFirst[T any](items []T, at func(T) time.Time) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return at(out[i]).After(at(out[j]))
	})
	return out
}

// SortOldestFirst is the ascending counterpart of SortNewestFirst.
func SortOldestFirst[T any](items []T, at func(T) time.Time) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return at(out[i]).Before(at(out[j]))
	})
	return out
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
