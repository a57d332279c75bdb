// Package store holds the in-memory state of the dashboard: the employee
// collection and the bookmark set.
package store

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/locvowork/hr_dashboard_sample/internal/domain"
	"github.com/locvowork/hr_dashboard_sample/internal/logger"
)

// LoadState is the lifecycle state of the employee collection.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

const (
	// createdIDFloor keeps synthesized ids clear of the small ids the remote
	// source assigns to fetched records.
	createdIDFloor = 1000

	bioTemplate    = "Experienced professional in %s with %d years of experience. Passionate about innovation and team collaboration."
	avatarTemplate = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s%s"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// EmployeeStore owns the employee collection for the lifetime of a session.
// It fetches once from the remote source, transforms raw users into domain
// Employees and accepts client-created records. Loaded and Failed are
// terminal; there is no refresh operation.
type EmployeeStore struct {
	source    domain.EmployeeSource
	batchSize int
	rng       *rand.Rand

	mu        sync.Mutex
	state     LoadState
	loadErr   error
	employees []domain.Employee
}

// NewEmployeeStore creates a store reading up to batchSize records from
// source. rng drives the random department/rating/bio assignment; pass a
// seeded generator in tests, or nil for a time-seeded one.
func NewEmployeeStore(source domain.EmployeeSource, batchSize int, rng *rand.Rand) *EmployeeStore {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &EmployeeStore{
		source:    source,
		batchSize: batchSize,
		rng:       rng,
		state:     StateIdle,
	}
}

// Load issues the one fetch of the store's lifetime. Calls after the first
// are no-ops regardless of outcome, so repeated mounting never duplicates
// the request. On failure the collection stays empty, the error is recorded
// as store state and also returned.
func (s *EmployeeStore) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		logger.DebugLog(ctx, "employee load skipped, store is %s", s.state)
		s.mu.Unlock()
		return nil
	}
	s.state = StateLoading
	s.mu.Unlock()

	users, err := s.source.Fetch(ctx, s.batchSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateFailed
		s.loadErr = fmt.Errorf("failed to fetch employees: %w", err)
		logger.ErrorLog(ctx, "Failed to fetch employees: %v", err)
		return s.loadErr
	}

	transformed := make([]domain.Employee, 0, len(users))
	for _, u := range users {
		transformed = append(transformed, s.transform(u))
	}
	// Created records are prepended, so any existing ones stay in front of
	// the fetched batch.
	s.employees = append(s.employees, transformed...)
	s.state = StateLoaded
	logger.InfoLog(ctx, "Loaded %d employees from remote source", len(transformed))
	return nil
}

// transform turns a raw user into a domain Employee. Identity and contact
// fields are copied verbatim; department, rating and bio are synthesized.
// Callers must hold s.mu.
func (s *EmployeeStore) transform(u domain.RawUser) domain.Employee {
	dept := domain.Departments[s.rng.Intn(len(domain.Departments))]
	rating := domain.RatingMin + s.rng.Intn(domain.RatingMax-domain.RatingMin+1)
	bioDept := domain.Departments[s.rng.Intn(len(domain.Departments))]
	years := 1 + s.rng.Intn(10)

	return domain.Employee{
		ID:                u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Email:             u.Email,
		Age:               u.Age,
		Phone:             u.Phone,
		Department:        dept,
		PerformanceRating: rating,
		Address: domain.Address{
			Street:     u.Address.Address,
			City:       u.Address.City,
			State:      u.Address.State,
			PostalCode: u.Address.PostalCode,
		},
		Image: u.Image,
		Bio:   fmt.Sprintf(bioTemplate, bioDept, years),
	}
}

// Create validates the candidate and, on success, prepends a new Employee
// with a synthesized id, random rating and generated avatar. On validation
// failure it returns a field-keyed error map and mutates nothing.
func (s *EmployeeStore) Create(candidate domain.EmployeeCandidate) (domain.Employee, error) {
	if errs := validate(candidate); len(errs) > 0 {
		return domain.Employee{}, errs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	emp := domain.Employee{
		ID:                s.nextID(),
		FirstName:         candidate.FirstName,
		LastName:          candidate.LastName,
		Email:             candidate.Email,
		Age:               candidate.Age,
		Phone:             candidate.Phone,
		Department:        candidate.Department,
		PerformanceRating: domain.RatingMin + s.rng.Intn(domain.RatingMax-domain.RatingMin+1),
		Address:           candidate.Address,
		Image:             fmt.Sprintf(avatarTemplate, candidate.FirstName, candidate.LastName),
		Bio:               candidate.Bio,
	}

	s.employees = append([]domain.Employee{emp}, s.employees...)
	return emp, nil
}

// nextID returns an id distinct from every id currently in the collection.
// Callers must hold s.mu.
func (s *EmployeeStore) nextID() int {
	next := createdIDFloor
	for _, e := range s.employees {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return next
}

func validate(c domain.EmployeeCandidate) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	if strings.TrimSpace(c.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(c.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(c.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(c.Email) {
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if c.Age < domain.AgeMin || c.Age > domain.AgeMax {
		errs["age"] = fmt.Sprintf("Age must be between %d and %d", domain.AgeMin, domain.AgeMax)
	}
	if c.Department == "" {
		errs["department"] = "Department is required"
	} else if !domain.ValidDepartment(c.Department) {
		errs["department"] = "Department is not recognized"
	}

	return errs
}

// Employees returns a copy of the collection: created records first, then
// fetched records in remote order.
func (s *EmployeeStore) Employees() []domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// FindByID looks up an employee by id. A miss is an absence, not an error.
func (s *EmployeeStore) FindByID(id int) (domain.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Employee{}, false
}

// State returns the lifecycle state of the collection.
func (s *EmployeeStore) State() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether the one fetch is currently in flight.
func (s *EmployeeStore) Loading() bool {
	return s.State() == StateLoading
}

// Err returns the terminal load error, or nil.
func (s *EmployeeStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}
