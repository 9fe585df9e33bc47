package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jask/jobpay/internal/database/repository"
	"github.com/jask/jobpay/internal/recordmeta"
)

// ErrValidation wraps every field-level rejection from Create.
var ErrValidation = errors.New("validation failed")

// FieldError names the field a validation failure belongs to.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Msg }

func (e *FieldError) Unwrap() error { return ErrValidation }

// JobApplicationService creates and reads job application records.
type JobApplicationService struct {
	Applications *repository.JobApplicationRepo
	Meta         recordmeta.Object
	Log          *zap.Logger
}

func (s *JobApplicationService) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// Create validates values, keyed by field API name, and inserts a new record.
// It returns the new record's id.
func (s *JobApplicationService) Create(ctx context.Context, values map[string]string) (string, error) {
	app, err := s.build(values)
	if err != nil {
		s.logger().Debug("job application rejected", zap.Error(err))
		return "", err
	}
	app.ID = uuid.NewString()
	if err := s.Applications.Insert(ctx, app); err != nil {
		return "", fmt.Errorf("insert job application: %w", err)
	}
	s.logger().Info("job application created",
		zap.String("id", app.ID),
		zap.String("company", app.Company),
		zap.String("status", app.Status))
	return app.ID, nil
}

func (s *JobApplicationService) build(values map[string]string) (repository.JobApplication, error) {
	for _, f := range s.Meta.Fields {
		v := strings.TrimSpace(values[f.APIName])
		if f.Required && v == "" {
			return repository.JobApplication{}, &FieldError{Field: f.Label, Msg: "required"}
		}
		if f.Type == recordmeta.TypePicklist && v != "" && !f.HasOption(v) {
			return repository.JobApplication{}, &FieldError{Field: f.Label, Msg: fmt.Sprintf("%q is not an allowed value", v)}
		}
	}

	app := repository.JobApplication{
		Company:        strings.TrimSpace(values[recordmeta.FieldCompany]),
		PrimaryContact: nullableStr(values[recordmeta.FieldPrimaryContact]),
		Status:         strings.TrimSpace(values[recordmeta.FieldStatus]),
		PositionTitle:  strings.TrimSpace(values[recordmeta.FieldPositionTitle]),
		SalaryType:     nullableStr(values[recordmeta.FieldSalaryType]),
	}
	if raw := strings.TrimSpace(values[recordmeta.FieldSalary]); raw != "" {
		cents, err := dollarsToCents(raw)
		if err != nil {
			return repository.JobApplication{}, &FieldError{Field: "Salary", Msg: err.Error()}
		}
		app.SalaryCents = &cents
	}
	return app, nil
}

// Restore inserts a record under a known id, such as one read back from an
// export. It validates like Create and reports false when the id already exists.
func (s *JobApplicationService) Restore(ctx context.Context, id string, values map[string]string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, &FieldError{Field: "ID", Msg: "required"}
	}
	if _, err := s.Applications.Get(ctx, id); err == nil {
		return false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	app, err := s.build(values)
	if err != nil {
		return false, err
	}
	app.ID = id
	if err := s.Applications.Insert(ctx, app); err != nil {
		return false, fmt.Errorf("insert job application: %w", err)
	}
	s.logger().Info("job application restored", zap.String("id", id))
	return true, nil
}

// Delete removes one record.
func (s *JobApplicationService) Delete(ctx context.Context, id string) error {
	if err := s.Applications.Delete(ctx, id); err != nil {
		return err
	}
	s.logger().Info("job application deleted", zap.String("id", id))
	return nil
}

// Get loads one record.
func (s *JobApplicationService) Get(ctx context.Context, id string) (*repository.JobApplication, error) {
	return s.Applications.Get(ctx, id)
}

// List returns every record, newest first.
func (s *JobApplicationService) List(ctx context.Context) ([]repository.JobApplication, error) {
	return s.Applications.List(ctx)
}

var maxCents = decimal.NewFromInt(math.MaxInt64)

// dollarsToCents accepts "85000", "85,000.50" or "$85000".
func dollarsToCents(s string) (int64, error) {
	s = strings.TrimPrefix(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), "$")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("must not be negative")
	}
	cents := d.Shift(2).Round(0)
	if cents.GreaterThan(maxCents) {
		return 0, errors.New("too large")
	}
	return cents.IntPart(), nil
}

func nullableStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
