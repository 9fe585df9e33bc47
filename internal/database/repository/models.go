package repository

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a row lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// JobApplication represents a job_applications row.
type JobApplication struct {
	ID             string
	Company        string
	PrimaryContact *string
	Status         string
	PositionTitle  string
	SalaryCents    *int64
	SalaryType     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
