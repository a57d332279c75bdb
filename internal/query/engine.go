// Package query derives the visible subset of the employee collection from
// the current criteria. Everything here is a pure function of its inputs.
package query

import (
	"strconv"
	"strings"

	"github.com/locvowork/hr_dashboard_sample/internal/domain"
)

// DefaultPageSize matches the dashboard's 3x3 card grid.
const DefaultPageSize = 9

// PageView is one page window over the matched employees.
type PageView struct {
	Items        []domain.Employee
	TotalMatches int
	Page         int
	PageCount    int
	// StartIndex is the zero-based offset of Items[0] within the matched
	// sequence, for "Showing X-Y of Z" style captions.
	StartIndex int
}

// Matches reports whether e satisfies every criteria predicate: the search
// term is empty or a case-insensitive substring of first name, last name or
// email, AND the department filter is "All" or equal, AND the rating filter
// is "All" or equal to the rating rendered as a string.
func Matches(e domain.Employee, c domain.Criteria) bool {
	if c.Search != "" {
		term := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(e.FirstName), term) &&
			!strings.Contains(strings.ToLower(e.LastName), term) &&
			!strings.Contains(strings.ToLower(e.Email), term) {
			return false
		}
	}
	if c.Department != domain.FilterAll && string(e.Department) != c.Department {
		return false
	}
	if c.Rating != domain.FilterAll && strconv.Itoa(e.PerformanceRating) != c.Rating {
		return false
	}
	return true
}

// Filter returns the employees matching c, preserving collection order.
func Filter(employees []domain.Employee, c domain.Criteria) []domain.Employee {
	matched := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if Matches(e, c) {
			matched = append(matched, e)
		}
	}
	return matched
}

// View filters employees by c and slices out the requested page. A page
// beyond the valid range is clamped into [1, pageCount]; with zero matches
// the view is page 1 of 0 with no items. pageSize values below 1 fall back
// to DefaultPageSize.
func View(employees []domain.Employee, c domain.Criteria, pageSize int) PageView {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	matched := Filter(employees, c)
	pageCount := (len(matched) + pageSize - 1) / pageSize

	page := c.Page
	if page < 1 || pageCount == 0 {
		page = 1
	} else if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return PageView{
		Items:        matched[start:end],
		TotalMatches: len(matched),
		Page:         page,
		PageCount:    pageCount,
		StartIndex:   start,
	}
}
