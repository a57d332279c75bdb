// Package export renders the employee roster and analytics report as an
// Excel workbook.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/locvowork/hr_dashboard_sample/internal/analytics"
	"github.com/locvowork/hr_dashboard_sample/internal/domain"
)

const (
	rosterSheet    = "Employees"
	analyticsSheet = "Analytics"
)

var rosterHeader = []string{"ID", "First Name", "Last Name", "Email", "Phone", "Age", "Department", "Rating"}

// Workbook builds an xlsx file with a roster sheet and an analytics sheet
// and returns its bytes.
func Workbook(employees []domain.Employee, report analytics.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), rosterSheet)
	if err := writeRoster(f, employees); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(analyticsSheet); err != nil {
		return nil, fmt.Errorf("failed to add analytics sheet: %w", err)
	}
	if err := writeAnalytics(f, report); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRoster(f *excelize.File, employees []domain.Employee) error {
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := setRow(f, rosterSheet, 1, toCells(rosterHeader)); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(rosterHeader), 1)
	if err := f.SetCellStyle(rosterSheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style roster header: %w", err)
	}

	for i, e := range employees {
		row := []interface{}{
			e.ID, e.FirstName, e.LastName, e.Email, e.Phone,
			e.Age, string(e.Department), e.PerformanceRating,
		}
		if err := setRow(f, rosterSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(rosterSheet, "B", "E", 22); err != nil {
		return fmt.Errorf("failed to size roster columns: %w", err)
	}
	return f.SetColWidth(rosterSheet, "G", "G", 14)
}

func writeAnalytics(f *excelize.File, report analytics.Report) error {
	row := 1

	if err := setRow(f, analyticsSheet, row, []interface{}{"Department Performance"}); err != nil {
		return err
	}
	row++
	if err := setRow(f, analyticsSheet, row, []interface{}{"Department", "Average Rating", "Employees"}); err != nil {
		return err
	}
	row++
	for _, stat := range report.DepartmentPerformance {
		if err := setRow(f, analyticsSheet, row, []interface{}{string(stat.Department), stat.AverageRating, stat.EmployeeCount}); err != nil {
			return err
		}
		row++
	}

	row++
	if err := setRow(f, analyticsSheet, row, []interface{}{"Rating Distribution"}); err != nil {
		return err
	}
	row++
	for rating := domain.RatingMin; rating <= domain.RatingMax; rating++ {
		count, ok := report.RatingHistogram[rating]
		if !ok {
			continue
		}
		if err := setRow(f, analyticsSheet, row, []interface{}{fmt.Sprintf("%d Stars", rating), count}); err != nil {
			return err
		}
		row++
	}

	row++
	summary := [][]interface{}{
		{"Total Employees", report.TotalEmployees},
		{"Average Rating", report.AverageRating},
		{"Top Performers", report.TopPerformers},
		{"Departments", report.Departments},
	}
	for _, line := range summary {
		if err := setRow(f, analyticsSheet, row, line); err != nil {
			return err
		}
		row++
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
