package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/jobpay/internal/config"
	"github.com/jask/jobpay/internal/export"
	"github.com/jask/jobpay/internal/nav"
	"github.com/jask/jobpay/internal/paycalc"
	"github.com/jask/jobpay/internal/recordmeta"
	"github.com/jask/jobpay/internal/service"
)

// App ties together views.
type App struct {
	ctx      context.Context
	cfg      config.Config
	log      *zap.Logger
	services Services
	meta     recordmeta.Object
	keys     keyMap

	state    appState
	calc     calculator
	creator  creator
	list     applications
	screens  nav.Stack
	resolver *nav.Resolver

	status    string
	statusErr bool
	width     int
	height    int
}

type Services struct {
	Applications *service.JobApplicationService
	Maintenance  *service.MaintenanceService
}

type appState int

const (
	viewCalculator appState = iota
	viewNewRecord
	viewApplications
)

var tabTitles = []string{"Pay Calculator", "New Application", "Applications"}

func New(ctx context.Context, cfg config.Config, services Services, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	meta := services.Applications.Meta
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		log:      log,
		services: services,
		meta:     meta,
		keys:     newKeyMap(),
		calc:     newCalculator(cfg.Calculator.Rates()),
		creator:  newCreator(meta),
		list:     newApplications(),
		resolver: nav.NewResolver(),
		status:   "Ready",
	}
	a.resolver.Handle(nav.TypeRecordPage, meta.APIName, a.recordPage)
	return a
}

func (a *App) Init() tea.Cmd {
	return a.loadApplications()
}

// recordPage builds the detail view for a record page reference.
func (a *App) recordPage(ref nav.PageReference) (nav.Screen, tea.Cmd, error) {
	id := ref.Attributes.RecordID
	s := newDetailScreen(id, a.meta, a.keys, a.cfg.UI.CurrencySymbol, a.cfg.UI.DateFormat)
	return s, a.loadRecord(id), nil
}

// onCreateSuccess sends the user to the new record's view page.
func (a *App) onCreateSuccess(recordID string) tea.Cmd {
	return nav.Navigate(nav.RecordPage(recordID, a.meta.APIName))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case nav.NavigateMsg:
		screen, cmd, err := a.resolver.Resolve(m.Ref)
		if err != nil {
			a.log.Warn("navigation failed", zap.Stringer("ref", m.Ref), zap.Error(err))
			a.setError(err)
			return a, nil
		}
		a.log.Debug("navigate", zap.Stringer("ref", m.Ref))
		a.screens.Push(screen)
		return a, cmd
	case createdMsg:
		a.creator.reset()
		a.setStatus(a.meta.Label + " created")
		return a, tea.Batch(a.onCreateSuccess(m.ID), a.loadApplications())
	case applicationsMsg:
		a.list.setRecords(m)
		return a, nil
	case deleteRecordMsg:
		return a, a.deleteCmd(m.ID)
	case recordDeletedMsg:
		if d, ok := a.screens.Top().(*detailScreen); ok && d.id == m.ID {
			a.screens.Pop()
		}
		a.setStatus(a.meta.Label + " deleted")
		return a, a.loadApplications()
	case ratesSavedMsg:
		a.cfg.Calculator = m.Calculator
		a.setStatus("rates saved as defaults")
		return a, nil
	case resetDoneMsg:
		a.log.Info("all applications deleted")
		a.setStatus("all applications deleted")
		return a, a.loadApplications()
	case statusMsg:
		a.setStatus(string(m))
		return a, nil
	case errMsg:
		a.log.Error("ui error", zap.Error(m.error))
		a.setError(m.error)
		return a, nil
	}

	if top := a.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			a.screens.Pop()
		} else {
			a.screens.Replace(next)
		}
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Quit) {
		return a, tea.Quit
	}

	if top := a.screens.Top(); top != nil {
		next, cmd, pop := top.Update(m)
		if pop {
			a.screens.Pop()
		} else {
			a.screens.Replace(next)
		}
		return a, cmd
	}

	switch {
	case key.Matches(m, a.keys.Calculator):
		a.state = viewCalculator
		return a, nil
	case key.Matches(m, a.keys.NewRecord):
		a.state = viewNewRecord
		return a, nil
	case key.Matches(m, a.keys.Applications):
		a.state = viewApplications
		return a, a.loadApplications()
	case key.Matches(m, a.keys.NextTab):
		a.state = (a.state + 1) % appState(len(tabTitles))
		return a, nil
	case key.Matches(m, a.keys.PrevTab):
		a.state = (a.state + appState(len(tabTitles)) - 1) % appState(len(tabTitles))
		return a, nil
	}

	switch a.state {
	case viewCalculator:
		if key.Matches(m, a.keys.SaveRates) {
			return a, a.saveRatesCmd()
		}
		return a, a.calc.update(m, a.keys)
	case viewNewRecord:
		cmd, submit := a.creator.update(m, a.keys)
		if submit {
			a.setStatus("saving...")
			return a, a.createCmd(a.creator.values())
		}
		return a, cmd
	case viewApplications:
		cmd, action := a.list.update(m, a.keys)
		switch action {
		case listOpen:
			sel, _ := a.list.selected()
			return a, nav.Navigate(nav.RecordPage(sel.ID, a.meta.APIName))
		case listReset:
			return a, a.resetCmd()
		case listExport:
			return a, a.exportCmd()
		}
		return a, cmd
	}
	return a, nil
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = "error: " + err.Error()
	a.statusErr = true
}

// commands

func (a *App) loadApplications() tea.Cmd {
	return func() tea.Msg {
		list, err := a.services.Applications.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return applicationsMsg(list)
	}
}

func (a *App) loadRecord(id string) tea.Cmd {
	return func() tea.Msg {
		rec, err := a.services.Applications.Get(a.ctx, id)
		return recordLoadedMsg{ID: id, Record: rec, Err: err}
	}
}

func (a *App) createCmd(values map[string]string) tea.Cmd {
	return func() tea.Msg {
		id, err := a.services.Applications.Create(a.ctx, values)
		if err != nil {
			return errMsg{err}
		}
		return createdMsg{ID: id}
	}
}

func (a *App) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.services.Applications.Delete(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return recordDeletedMsg{ID: id}
	}
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if a.services.Maintenance == nil {
			return errMsg{errors.New("maintenance not configured")}
		}
		if err := a.services.Maintenance.Reset(a.ctx); err != nil {
			return errMsg{err}
		}
		return resetDoneMsg{}
	}
}

func (a *App) exportCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := a.services.Applications.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		path, err := export.SaveApplications(list)
		if err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("exported %d applications to %s", len(list), path))
	}
}

// saveRatesCmd persists the calculator's current rates as the new defaults.
func (a *App) saveRatesCmd() tea.Cmd {
	st := a.calc.state
	return func() tea.Msg {
		rates := paycalc.Rates{
			FederalTax:     paycalc.ParseFloat(st.FederalTax),
			SocialSecurity: paycalc.ParseFloat(st.SocialSecurity),
			Medicare:       paycalc.ParseFloat(st.Medicare),
		}
		for name, v := range map[string]float64{
			"federal tax":     rates.FederalTax,
			"social security": rates.SocialSecurity,
			"medicare":        rates.Medicare,
		} {
			if math.IsNaN(v) || v < 0 || v > 1 {
				return errMsg{fmt.Errorf("%s rate must be between 0 and 1", name)}
			}
		}
		calc := config.CalculatorConfig{
			FederalTax:     rates.FederalTax,
			SocialSecurity: rates.SocialSecurity,
			Medicare:       rates.Medicare,
		}
		if err := config.SaveCalculator(calc); err != nil {
			return errMsg{err}
		}
		return ratesSavedMsg{Calculator: calc}
	}
}

func (a *App) View() string {
	var body string
	var help []key.Binding
	if top := a.screens.Top(); top != nil {
		body = top.View(a.width, a.height)
	} else {
		switch a.state {
		case viewNewRecord:
			body, help = a.creator.view(), a.creator.help(a.keys)
		case viewApplications:
			body, help = a.list.view(a.cfg.UI.CurrencySymbol), a.list.help(a.keys)
		default:
			body, help = a.calc.view(), a.calc.help(a.keys)
		}
	}

	status := renderBar(statusBarStyle, a.width, a.status)
	if a.statusErr {
		status = renderBar(statusErrBarStyle, a.width, a.status)
	}
	footer := renderBar(footerStyle, a.width, renderHelp(append(help, a.keys.tabBindings()...)))
	return lipgloss.JoinVertical(lipgloss.Left, a.renderTabs(), "", body, "", status, footer)
}

func (a *App) renderTabs() string {
	parts := make([]string, 0, len(tabTitles))
	for i, t := range tabTitles {
		label := fmt.Sprintf("F%d %s", i+1, t)
		if appState(i) == a.state && a.screens.Len() == 0 {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	if top := a.screens.Top(); top != nil {
		parts = append(parts, activeTabStyle.Render(top.Title()))
	}
	return strings.Join(parts, " ")
}
