package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/jask/jobpay/internal/database/repository"
	"github.com/jask/jobpay/internal/nav"
	"github.com/jask/jobpay/internal/recordmeta"
)

// detailScreen is the record view page for one job application.
type detailScreen struct {
	id         string
	meta       recordmeta.Object
	keys       keyMap
	currency   string
	dateFormat string
	record     *repository.JobApplication
	err        error

	confirmDelete bool
}

func newDetailScreen(id string, meta recordmeta.Object, keys keyMap, currency, dateFormat string) *detailScreen {
	return &detailScreen{id: id, meta: meta, keys: keys, currency: currency, dateFormat: dateFormat}
}

func (s *detailScreen) Title() string {
	if s.record != nil {
		return s.record.Company + " - " + s.record.PositionTitle
	}
	return s.meta.Label
}

func (s *detailScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd, bool) {
	switch m := msg.(type) {
	case recordLoadedMsg:
		if m.ID == s.id {
			s.record, s.err = m.Record, m.Err
		}
	case tea.KeyMsg:
		if s.confirmDelete {
			switch {
			case key.Matches(m, s.keys.Confirm):
				s.confirmDelete = false
				id := s.id
				return s, func() tea.Msg { return deleteRecordMsg{ID: id} }, false
			case key.Matches(m, s.keys.Deny):
				s.confirmDelete = false
			}
			return s, nil, false
		}
		switch {
		case key.Matches(m, s.keys.Back):
			return s, nil, true
		case key.Matches(m, s.keys.Delete):
			if s.record != nil {
				s.confirmDelete = true
			}
		}
	}
	return s, nil, false
}

func (s *detailScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.meta.Label))
	b.WriteString("\n\n")
	switch {
	case s.err != nil:
		b.WriteString(errStyle.Render("Could not load record: " + s.err.Error()))
	case s.record == nil:
		b.WriteString(labelStyle.Render("Loading..."))
	default:
		rows := make([]string, 0, len(s.meta.Fields)+2)
		for _, f := range s.meta.Fields {
			rows = append(rows, fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-16s", f.Label)), valueStyle.Render(s.fieldValue(f.APIName))))
		}
		rows = append(rows,
			fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-16s", "Created")), valueStyle.Render(s.record.CreatedAt.Local().Format(s.dateFormat))),
			fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-16s", "Record ID")), valueStyle.Render(s.record.ID)),
		)
		b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
	}
	b.WriteString("\n\n")
	if s.confirmDelete {
		b.WriteString(errStyle.Render("Delete this application? [y] Yes  [n] No"))
		return b.String()
	}
	b.WriteString(renderHelp([]key.Binding{s.keys.Back, s.keys.Delete}))
	return b.String()
}

func (s *detailScreen) fieldValue(apiName string) string {
	r := s.record
	switch apiName {
	case recordmeta.FieldCompany:
		return r.Company
	case recordmeta.FieldPrimaryContact:
		return deref(r.PrimaryContact)
	case recordmeta.FieldStatus:
		return r.Status
	case recordmeta.FieldPositionTitle:
		return r.PositionTitle
	case recordmeta.FieldSalary:
		return salaryText(*r, s.currency)
	case recordmeta.FieldSalaryType:
		return deref(r.SalaryType)
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// salaryText renders cents with thousands separators, e.g. $85,000.00.
func salaryText(a repository.JobApplication, currency string) string {
	if a.SalaryCents == nil {
		return "-"
	}
	return currency + humanize.FormatFloat("#,###.##", float64(*a.SalaryCents)/100)
}
