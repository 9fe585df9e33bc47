// Package export writes job applications to a JSON file in the user's config directory.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jask/jobpay/internal/database/repository"
	"github.com/jask/jobpay/internal/recordmeta"
)

const applicationsFile = "applications.json"

// Record is the exported shape of one application. Salary is in dollars.
type Record struct {
	ID             string    `json:"id"`
	Company        string    `json:"company"`
	PrimaryContact string    `json:"primary_contact,omitempty"`
	Status         string    `json:"status"`
	PositionTitle  string    `json:"position_title"`
	Salary         *float64  `json:"salary,omitempty"`
	SalaryType     string    `json:"salary_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Values returns the record as form values keyed by field API name, ready for
// service.JobApplicationService.Restore.
func (r Record) Values() map[string]string {
	v := map[string]string{
		recordmeta.FieldCompany:        r.Company,
		recordmeta.FieldPrimaryContact: r.PrimaryContact,
		recordmeta.FieldStatus:         r.Status,
		recordmeta.FieldPositionTitle:  r.PositionTitle,
		recordmeta.FieldSalaryType:     r.SalaryType,
	}
	if r.Salary != nil {
		v[recordmeta.FieldSalary] = decimal.NewFromFloat(*r.Salary).StringFixed(2)
	}
	return v
}

func applicationsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "jobpay")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, applicationsFile), nil
}

func toRecord(a repository.JobApplication) Record {
	r := Record{
		ID:            a.ID,
		Company:       a.Company,
		Status:        a.Status,
		PositionTitle: a.PositionTitle,
		CreatedAt:     a.CreatedAt.UTC(),
	}
	if a.PrimaryContact != nil {
		r.PrimaryContact = *a.PrimaryContact
	}
	if a.SalaryType != nil {
		r.SalaryType = *a.SalaryType
	}
	if a.SalaryCents != nil {
		v := float64(*a.SalaryCents) / 100
		r.Salary = &v
	}
	return r
}

// SaveApplications replaces the export file and returns its path.
func SaveApplications(apps []repository.JobApplication) (string, error) {
	path, err := applicationsPath()
	if err != nil {
		return "", err
	}
	recs := make([]Record, 0, len(apps))
	for _, a := range apps {
		recs = append(recs, toRecord(a))
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return "", err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// LoadApplications reads the last export. A missing file yields no records.
func LoadApplications() ([]Record, error) {
	path, err := applicationsPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
