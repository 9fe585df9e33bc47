package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// JobApplicationRepo handles job applications.
type JobApplicationRepo struct {
	db *sql.DB
}

func NewJobApplicationRepo(db *sql.DB) *JobApplicationRepo {
	return &JobApplicationRepo{db: db}
}

const jobApplicationColumns = "id, company, primary_contact, status, position_title, salary_cents, salary_type, created_at, updated_at"

func (r *JobApplicationRepo) Insert(ctx context.Context, a JobApplication) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO job_applications(
	 id, company, primary_contact, status, position_title, salary_cents, salary_type, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, a.ID, a.Company, a.PrimaryContact, a.Status, a.PositionTitle, a.SalaryCents, a.SalaryType)
	return err
}

func (r *JobApplicationRepo) Get(ctx context.Context, id string) (*JobApplication, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+jobApplicationColumns+" FROM job_applications WHERE id = ?", id)
	a, err := scanJobApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("job application %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns every application, newest first.
func (r *JobApplicationRepo) List(ctx context.Context) ([]JobApplication, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+jobApplicationColumns+" FROM job_applications ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobApplication
	for rows.Next() {
		a, err := scanJobApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *JobApplicationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("job application %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJobApplication(s scanner) (JobApplication, error) {
	var a JobApplication
	err := s.Scan(&a.ID, &a.Company, &a.PrimaryContact, &a.Status, &a.PositionTitle,
		&a.SalaryCents, &a.SalaryType, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
