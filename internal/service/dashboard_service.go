package service

import (
	"context"

	"github.com/locvowork/hr_dashboard_sample/internal/analytics"
	"github.com/locvowork/hr_dashboard_sample/internal/domain"
	"github.com/locvowork/hr_dashboard_sample/internal/export"
	"github.com/locvowork/hr_dashboard_sample/internal/query"
	"github.com/locvowork/hr_dashboard_sample/internal/store"
)

// DashboardService is the facade the presentation layer talks to. It
// composes the employee and bookmark stores with the pure view and
// analytics derivations.
type DashboardService struct {
	employees *store.EmployeeStore
	bookmarks *store.BookmarkStore
	pageSize  int
}

// NewDashboardService wires a service over the two stores.
func NewDashboardService(employees *store.EmployeeStore, bookmarks *store.BookmarkStore, pageSize int) *DashboardService {
	if pageSize < 1 {
		pageSize = query.DefaultPageSize
	}
	return &DashboardService{
		employees: employees,
		bookmarks: bookmarks,
		pageSize:  pageSize,
	}
}

// Load performs the one remote fetch of the session.
func (s *DashboardService) Load(ctx context.Context) error {
	return s.employees.Load(ctx)
}

// ListView derives the page of employees matching the criteria.
func (s *DashboardService) ListView(criteria domain.Criteria) query.PageView {
	return query.View(s.employees.Employees(), criteria, s.pageSize)
}

// Employee looks up a single record for the detail view. A missing id is an
// absence, not an error; the caller decides how to present it.
func (s *DashboardService) Employee(id int) (domain.Employee, bool) {
	return s.employees.FindByID(id)
}

// CreateEmployee validates and adds a client-created record.
func (s *DashboardService) CreateEmployee(candidate domain.EmployeeCandidate) (domain.Employee, error) {
	return s.employees.Create(candidate)
}

// ToggleBookmark flips the bookmark state of id and returns the new state.
func (s *DashboardService) ToggleBookmark(id int) bool {
	if s.bookmarks.IsBookmarked(id) {
		s.bookmarks.Remove(id)
		return false
	}
	s.bookmarks.Add(id)
	return true
}

// IsBookmarked reports whether id is bookmarked.
func (s *DashboardService) IsBookmarked(id int) bool {
	return s.bookmarks.IsBookmarked(id)
}

// BookmarkedEmployees returns the currently loaded employees whose id is
// bookmarked, in collection order. Stale bookmarks are skipped, not purged.
func (s *DashboardService) BookmarkedEmployees() []domain.Employee {
	out := []domain.Employee{}
	for _, e := range s.employees.Employees() {
		if s.bookmarks.IsBookmarked(e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// Analytics recomputes the aggregate report over the whole collection.
func (s *DashboardService) Analytics() analytics.Report {
	return analytics.Summarize(s.employees.Employees())
}

// ExportWorkbook renders the roster and analytics report as xlsx bytes.
func (s *DashboardService) ExportWorkbook() ([]byte, error) {
	employees := s.employees.Employees()
	return export.Workbook(employees, analytics.Summarize(employees))
}
