package main

import (
	"context"
	"os"

	"github.com/locvowork/hr_dashboard_sample/internal/config"
	"github.com/locvowork/hr_dashboard_sample/internal/domain"
	"github.com/locvowork/hr_dashboard_sample/internal/logger"
	"github.com/locvowork/hr_dashboard_sample/internal/remote"
	"github.com/locvowork/hr_dashboard_sample/internal/service"
	"github.com/locvowork/hr_dashboard_sample/internal/storage"
	"github.com/locvowork/hr_dashboard_sample/internal/store"
)

func main() {
	ctx := context.Background()

	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		panic(err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Wire the stores
	source := remote.NewClient(config.DefaultEnvConfig.EMPLOYEE_API_URL, config.DefaultEnvConfig.EMPLOYEE_API_TIMEOUT)
	employees := store.NewEmployeeStore(source, config.DefaultEnvConfig.EMPLOYEE_API_LIMIT, nil)
	bookmarks := store.NewBookmarkStore(storage.NewFileStorage(config.DefaultEnvConfig.BOOKMARK_FILE_PATH))
	svc := service.NewDashboardService(employees, bookmarks, config.DefaultEnvConfig.PAGE_SIZE)

	if err := svc.Load(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to load employees: %v", err)
		panic(err)
	}

	// Walk the first page of the unfiltered view
	view := svc.ListView(domain.DefaultCriteria())
	logger.InfoLog(ctx, "Showing %d of %d employees (page %d/%d)",
		len(view.Items), view.TotalMatches, view.Page, view.PageCount)
	for _, e := range view.Items {
		marked := ""
		if svc.IsBookmarked(e.ID) {
			marked = " [bookmarked]"
		}
		logger.InfoLog(ctx, "Employee %d: %s (%s, rating %d)%s",
			e.ID, e.FullName(), e.Department, e.PerformanceRating, marked)
	}

	// Aggregate report
	report := svc.Analytics()
	logger.InfoLog(ctx, "Analytics: %d employees across %d departments, avg rating %.1f, %d top performers",
		report.TotalEmployees, report.Departments, report.AverageRating, report.TopPerformers)
	for _, stat := range report.DepartmentPerformance {
		logger.InfoLog(ctx, "Department %s: avg %.1f over %d employees",
			stat.Department, stat.AverageRating, stat.EmployeeCount)
	}

	// Drop an xlsx snapshot next to the binary
	workbook, err := svc.ExportWorkbook()
	if err != nil {
		logger.ErrorLog(ctx, "Failed to export workbook: %v", err)
		panic(err)
	}
	if err := os.WriteFile("roster.xlsx", workbook, 0644); err != nil {
		logger.ErrorLog(ctx, "Failed to write roster.xlsx: %v", err)
		panic(err)
	}
	logger.InfoLog(ctx, "Wrote roster.xlsx (%d bytes)", len(workbook))
}
