package domain

import "fmt"

// Department is one of the fixed set of departments an employee belongs to.
type Department string

const (
	DeptEngineering Department = "Engineering"
	DeptMarketing   Department = "Marketing"
	DeptSales       Department = "Sales"
	DeptHR          Department = "HR"
	DeptFinance     Department = "Finance"
	DeptOperations  Department = "Operations"
)

// Departments lists every valid department, in display order.
var Departments = []Department{
	DeptEngineering,
	DeptMarketing,
	DeptSales,
	DeptHR,
	DeptFinance,
	DeptOperations,
}

// ValidDepartment reports whether d is a member of the fixed set.
func ValidDepartment(d Department) bool {
	for _, dept := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

const (
	RatingMin = 1
	RatingMax = 5

	AgeMin = 18
	AgeMax = 100
)

// Address is the structured address of an employee. All fields are optional
// for client-created records.
type Address struct {
	Street     string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Employee is one person record managed by the dashboard.
type Employee struct {
	ID                int        `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email"`
	Age               int        `json:"age"`
	Phone             string     `json:"phone"`
	Department        Department `json:"department"`
	PerformanceRating int        `json:"performanceRating"`
	Address           Address    `json:"address"`
	Image             string     `json:"image"`
	Bio               string     `json:"bio,omitempty"`
}

// FullName returns the display name of the employee.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeCandidate holds the user-supplied fields for a create operation.
// ID, rating and avatar are synthesized by the store on success.
type EmployeeCandidate struct {
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Age        int        `json:"age"`
	Department Department `json:"department"`
	Address    Address    `json:"address"`
	Bio        string     `json:"bio"`
}

// ValidationErrors maps a field name to the rule it violated.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(v))
}

// FilterAll is the criteria value meaning "no filter" for department and rating.
const FilterAll = "All"

// Criteria holds the current search/filter/page selections.
type Criteria struct {
	Search     string
	Department string
	Rating     string
	Page       int
}

// DefaultCriteria returns criteria with no filters applied, on page 1.
func DefaultCriteria() Criteria {
	return Criteria{Department: FilterAll, Rating: FilterAll, Page: 1}
}

// WithSearch returns the criteria with a new search term. Changing any filter
// resets the page so a narrowed result set never lands out of range.
func (c Criteria) WithSearch(term string) Criteria {
	c.Search = term
	c.Page = 1
	return c
}

// WithDepartment returns the criteria with a new department filter.
func (c Criteria) WithDepartment(dept string) Criteria {
	c.Department = dept
	c.Page = 1
	return c
}

// WithRating returns the criteria with a new rating filter.
func (c Criteria) WithRating(rating string) Criteria {
	c.Rating = rating
	c.Page = 1
	return c
}

// WithPage returns the criteria on a different page, filters unchanged.
func (c Criteria) WithPage(page int) Criteria {
	c.Page = page
	return c
}
