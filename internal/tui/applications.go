package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jobpay/internal/database/repository"
	"github.com/jask/jobpay/internal/service"
)

// applications lists saved records with a company filter.
type applications struct {
	all          []repository.JobApplication
	visible      []repository.JobApplication
	filter       textinput.Model
	cursor       int
	confirmReset bool
}

func newApplications() applications {
	f := newTextInput("Filter company", "")
	f.Focus()
	return applications{filter: f}
}

func (l *applications) setRecords(apps []repository.JobApplication) {
	l.all = apps
	l.refilter()
}

func (l *applications) refilter() {
	l.visible = service.FilterByCompany(l.all, l.filter.Value())
	if l.cursor >= len(l.visible) {
		l.cursor = max(0, len(l.visible)-1)
	}
}

func (l applications) selected() (repository.JobApplication, bool) {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return repository.JobApplication{}, false
	}
	return l.visible[l.cursor], true
}

// listAction is what the app should do after a key in the list.
type listAction int

const (
	listNone listAction = iota
	listOpen
	listReset
	listExport
)

func (l *applications) update(msg tea.KeyMsg, keys keyMap) (tea.Cmd, listAction) {
	if l.confirmReset {
		switch {
		case key.Matches(msg, keys.Confirm):
			l.confirmReset = false
			return nil, listReset
		case key.Matches(msg, keys.Deny):
			l.confirmReset = false
		}
		return nil, listNone
	}

	switch {
	case key.Matches(msg, keys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
		return nil, listNone
	case key.Matches(msg, keys.Down):
		if l.cursor < len(l.visible)-1 {
			l.cursor++
		}
		return nil, listNone
	case key.Matches(msg, keys.Open):
		if _, ok := l.selected(); ok {
			return nil, listOpen
		}
		return nil, listNone
	case key.Matches(msg, keys.Reset):
		l.confirmReset = true
		return nil, listNone
	case key.Matches(msg, keys.Export):
		return nil, listExport
	case key.Matches(msg, keys.Cancel):
		l.filter.SetValue("")
		l.refilter()
		return nil, listNone
	}

	var cmd tea.Cmd
	l.filter, cmd = l.filter.Update(msg)
	l.refilter()
	return cmd, listNone
}

func (l applications) view(currency string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Job Applications"))
	b.WriteString("\n")
	b.WriteString(l.filter.View())
	b.WriteString("\n\n")
	if len(l.visible) == 0 {
		if len(l.all) == 0 {
			b.WriteString(labelStyle.Render("No applications yet. Press f2 to create one."))
		} else {
			b.WriteString(labelStyle.Render("No applications match."))
		}
	}
	for i, a := range l.visible {
		marker := "  "
		if i == l.cursor {
			marker = cursorStyle.Render("▶ ")
		}
		b.WriteString(fmt.Sprintf("%s%-24s %-28s %-12s %s\n", marker, a.Company, a.PositionTitle, a.Status, salaryText(a, currency)))
	}
	if l.confirmReset {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Delete every application? [y] Yes  [n] No"))
	}
	return b.String()
}

func (l applications) help(keys keyMap) []key.Binding {
	if l.confirmReset {
		return []key.Binding{keys.Confirm, keys.Deny}
	}
	return []key.Binding{keys.Up, keys.Open, keys.Export, keys.Reset}
}
