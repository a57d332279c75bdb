package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/hr_dashboard_sample/internal/analytics"
	"github.com/locvowork/hr_dashboard_sample/internal/domain"
)

func TestWorkbook(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@corp.com", Phone: "555-0100", Age: 29, Department: domain.DeptEngineering, PerformanceRating: 4},
		{ID: 2, FirstName: "Ben", LastName: "Cho", Email: "ben@corp.com", Phone: "555-0101", Age: 35, Department: domain.DeptSales, PerformanceRating: 2},
	}
	report := analytics.Summarize(employees)

	data, err := Workbook(employees, report)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Employees", "Analytics"}, f.GetSheetList())

	// Roster header and first data row.
	header, err := f.GetCellValue("Employees", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)
	name, err := f.GetCellValue("Employees", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)
	dept, err := f.GetCellValue("Employees", "G3")
	require.NoError(t, err)
	assert.Equal(t, "Sales", dept)

	// Department performance block starts under its two-line heading.
	firstDept, err := f.GetCellValue("Analytics", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", firstDept)
	firstAvg, err := f.GetCellValue("Analytics", "B3")
	require.NoError(t, err)
	assert.Equal(t, "4", firstAvg)
}

func TestWorkbookEmptyCollection(t *testing.T) {
	data, err := Workbook(nil, analytics.Summarize(nil))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "only the header row is expected")
}
