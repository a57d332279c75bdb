// Package analytics computes aggregate projections over the employee
// collection. Derivations are recomputed from scratch on every call; the
// collection is tens of records, so incremental maintenance is not worth it.
package analytics

import (
	"math"

	"github.com/locvowork/hr_dashboard_sample/internal/domain"
)

// DepartmentStat is the performance summary of one department.
type DepartmentStat struct {
	Department    domain.Department `json:"department"`
	AverageRating float64           `json:"averageRating"`
	EmployeeCount int               `json:"employeeCount"`
}

// Report holds every projection the analytics view renders.
type Report struct {
	// DepartmentPerformance covers only departments actually present, in
	// order of first appearance in the collection.
	DepartmentPerformance []DepartmentStat `json:"departmentPerformance"`
	// RatingHistogram counts employees per rating value present.
	RatingHistogram map[int]int `json:"ratingHistogram"`

	TotalEmployees int     `json:"totalEmployees"`
	AverageRating  float64 `json:"averageRating"`
	// TopPerformers counts employees rated 4 or above.
	TopPerformers int `json:"topPerformers"`
	Departments   int `json:"departments"`
}

// Summarize aggregates the collection into a Report. Averages are rounded to
// one decimal for display.
func Summarize(employees []domain.Employee) Report {
	type acc struct {
		total int
		count int
	}

	perDept := make(map[domain.Department]*acc)
	var deptOrder []domain.Department
	histogram := make(map[int]int)

	ratingSum := 0
	topPerformers := 0

	for _, e := range employees {
		a, ok := perDept[e.Department]
		if !ok {
			a = &acc{}
			perDept[e.Department] = a
			deptOrder = append(deptOrder, e.Department)
		}
		a.total += e.PerformanceRating
		a.count++

		histogram[e.PerformanceRating]++
		ratingSum += e.PerformanceRating
		if e.PerformanceRating >= 4 {
			topPerformers++
		}
	}

	stats := make([]DepartmentStat, 0, len(deptOrder))
	for _, dept := range deptOrder {
		a := perDept[dept]
		stats = append(stats, DepartmentStat{
			Department:    dept,
			AverageRating: round1(float64(a.total) / float64(a.count)),
			EmployeeCount: a.count,
		})
	}

	overall := 0.0
	if len(employees) > 0 {
		overall = round1(float64(ratingSum) / float64(len(employees)))
	}

	return Report{
		DepartmentPerformance: stats,
		RatingHistogram:       histogram,
		TotalEmployees:        len(employees),
		AverageRating:         overall,
		TopPerformers:         topPerformers,
		Departments:           len(deptOrder),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
