// Package testdata fills a database with sample job applications for demos and tests.
package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/jask/jobpay/internal/recordmeta"
	"github.com/jask/jobpay/internal/service"
)

var (
	companies = []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli", "Stark Industries", "Wayne Enterprises", "Soylent"}
	titles    = []string{"Backend Engineer", "Platform Engineer", "Engineering Manager", "SRE", "Data Engineer", "Staff Engineer"}
	contacts  = []string{"", "Road Runner", "Peter Gibbons", "Gavin Belson", "Pepper Potts"}
)

// Seed creates n sample applications through svc, so every record passes the
// same validation the form applies. The same seed gives the same records.
func Seed(ctx context.Context, svc *service.JobApplicationService, n int, seed int64) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("seed: count must not be negative, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	status, _ := svc.Meta.Field(recordmeta.FieldStatus)
	salaryType, _ := svc.Meta.Field(recordmeta.FieldSalaryType)

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		values := map[string]string{
			recordmeta.FieldCompany:        companies[rng.Intn(len(companies))],
			recordmeta.FieldPrimaryContact: contacts[rng.Intn(len(contacts))],
			recordmeta.FieldStatus:         status.Options[rng.Intn(len(status.Options))],
			recordmeta.FieldPositionTitle:  titles[rng.Intn(len(titles))],
		}
		if rng.Intn(4) > 0 {
			st := salaryType.Options[rng.Intn(len(salaryType.Options))]
			pay := 60000 + rng.Intn(140)*1000
			if st == "Hourly" {
				pay = 30 + rng.Intn(90)
			}
			values[recordmeta.FieldSalary] = strconv.Itoa(pay)
			values[recordmeta.FieldSalaryType] = st
		}
		id, err := svc.Create(ctx, values)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
