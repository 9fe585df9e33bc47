package service

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/jobpay/internal/database/repository"
)

// maxCompanyDistance is the edit distance still treated as a typo.
const maxCompanyDistance = 2

// FilterByCompany keeps applications whose company contains query, or is
// within a couple of edits of it. Matching ignores case. An empty query keeps
// everything.
func FilterByCompany(apps []repository.JobApplication, query string) []repository.JobApplication {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return apps
	}
	var out []repository.JobApplication
	for _, a := range apps {
		if matchCompany(strings.ToUpper(a.Company), q) {
			out = append(out, a)
		}
	}
	return out
}

func matchCompany(company, q string) bool {
	if strings.Contains(company, q) {
		return true
	}
	// short queries would match almost anything by distance alone
	if len(q) <= maxCompanyDistance {
		return false
	}
	return levenshtein.ComputeDistance(company, q) <= maxCompanyDistance
}
