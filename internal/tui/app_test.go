package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/jobpay/internal/config"
	"github.com/jask/jobpay/internal/database"
	"github.com/jask/jobpay/internal/database/repository"
	"github.com/jask/jobpay/internal/export"
	"github.com/jask/jobpay/internal/nav"
	"github.com/jask/jobpay/internal/paycalc"
	"github.com/jask/jobpay/internal/recordmeta"
	"github.com/jask/jobpay/internal/service"
)

func testConfig() config.Config {
	return config.Config{
		UI: config.UIConfig{CurrencySymbol: "$", DateFormat: "2006-01-02"},
		Calculator: config.CalculatorConfig{
			FederalTax:     paycalc.DefaultFederalTax,
			SocialSecurity: paycalc.DefaultSocialSecurity,
			Medicare:       paycalc.DefaultMedicare,
		},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("JOBPAY_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := Services{
		Applications: &service.JobApplicationService{
			Applications: repository.NewJobApplicationRepo(db),
			Meta:         recordmeta.JobApplication(),
		},
		Maintenance: &service.MaintenanceService{DB: db},
	}
	a := New(context.Background(), testConfig(), svc, nil)
	a.width, a.height = 120, 40
	drain(t, a, a.Init())
	return a
}

// drain runs cmd and every command it produces, feeding messages back into
// the app the way the bubbletea runtime would.
func drain(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 64, "command chain exceeded max depth")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, next := a.Update(msg)
			queue = append(queue, next)
		}
	}
}

func send(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	_, cmd := a.Update(msg)
	drain(t, a, cmd)
}

func press(t *testing.T, a *App, k tea.KeyType) {
	t.Helper()
	send(t, a, tea.KeyMsg{Type: k})
}

func typeText(t *testing.T, a *App, s string) {
	t.Helper()
	for _, r := range s {
		send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func createRecord(t *testing.T, a *App, company, title string) string {
	t.Helper()
	id, err := a.services.Applications.Create(context.Background(), map[string]string{
		recordmeta.FieldCompany:       company,
		recordmeta.FieldStatus:        "Applied",
		recordmeta.FieldPositionTitle: title,
	})
	require.NoError(t, err)
	return id
}

func TestCalculatorTypingThenEnter(t *testing.T) {
	a := newTestApp(t)
	require.Equal(t, viewCalculator, a.state)

	press(t, a, tea.KeyBackspace)
	typeText(t, a, "50000")
	require.Equal(t, "50000", a.calc.state.Income)
	require.Empty(t, a.calc.state.ResultText, "editing must not recompute")

	press(t, a, tea.KeyEnter)
	require.Equal(t, strings.Join([]string{
		"Your Annual Take Home Pay is $40175.00",
		"Your Monthly Take Home Pay is $3347.92",
		"Your Bi-Weekly Take Home Pay is $1545.19",
		"Your Weekly Take Home Pay is $772.60",
	}, "\n"), a.calc.state.ResultText)
	require.Contains(t, a.View(), "$40175.00")

	// a later edit keeps the old summary until the next calculate
	typeText(t, a, "0")
	require.Equal(t, "500000", a.calc.state.Income)
	require.Contains(t, a.calc.state.ResultText, "$40175.00")
}

func TestCalculatorCtrlR(t *testing.T) {
	a := newTestApp(t)

	typeText(t, a, "1000")
	require.Equal(t, "01000", a.calc.state.Income)
	press(t, a, tea.KeyCtrlR)
	require.Contains(t, a.calc.state.ResultText, "Your Annual Take Home Pay is $803.50")
}

func TestCalculatorRateFieldEdit(t *testing.T) {
	a := newTestApp(t)

	press(t, a, tea.KeyTab)
	require.Equal(t, 1, a.calc.focus)
	press(t, a, tea.KeyBackspace)
	require.Equal(t, "0.1", a.calc.state.FederalTax)
	require.Equal(t, "0", a.calc.state.Income)
}

func TestCalculatorSaveRates(t *testing.T) {
	a := newTestApp(t)
	t.Setenv("JOBPAY_DATABASE_PATH", "/tmp/from-env.db")

	press(t, a, tea.KeyTab)
	press(t, a, tea.KeyBackspace)
	press(t, a, tea.KeyCtrlS)
	require.False(t, a.statusErr, a.status)
	require.Equal(t, "rates saved as defaults", a.status)
	require.InDelta(t, 0.1, a.cfg.Calculator.FederalTax, 1e-9)

	data, err := os.ReadFile(config.Path())
	require.NoError(t, err)
	require.NotContains(t, string(data), "from-env.db")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.InDelta(t, 0.1, cfg.Calculator.FederalTax, 1e-9)
	require.InDelta(t, paycalc.DefaultMedicare, cfg.Calculator.Medicare, 1e-9)
}

func TestCalculatorSaveRatesRejectsGarbage(t *testing.T) {
	a := newTestApp(t)

	press(t, a, tea.KeyTab)
	typeText(t, a, "x")
	press(t, a, tea.KeyHome)
	typeText(t, a, "x")
	press(t, a, tea.KeyCtrlS)
	require.True(t, a.statusErr)
	require.Contains(t, a.status, "federal tax")
}

func TestOnCreateSuccessNavigatesToRecordView(t *testing.T) {
	a := newTestApp(t)

	msg := a.onCreateSuccess("a0B5e000001XyZ")()
	nm, ok := msg.(nav.NavigateMsg)
	require.True(t, ok, "got %T", msg)
	require.Equal(t, nav.PageReference{
		Type: nav.TypeRecordPage,
		Attributes: nav.Attributes{
			RecordID:      "a0B5e000001XyZ",
			ObjectAPIName: "Job_Application__c",
			ActionName:    "view",
		},
	}, nm.Ref)
}

func TestCreateFlowLandsOnDetail(t *testing.T) {
	a := newTestApp(t)

	press(t, a, tea.KeyF2)
	require.Equal(t, viewNewRecord, a.state)

	typeText(t, a, "Acme")
	press(t, a, tea.KeyTab)
	typeText(t, a, "Wile E")
	press(t, a, tea.KeyTab)
	press(t, a, tea.KeyRight)
	press(t, a, tea.KeyTab)
	typeText(t, a, "Engineer")
	press(t, a, tea.KeyTab)
	typeText(t, a, "85000")
	press(t, a, tea.KeyEnter)

	require.False(t, a.statusErr, a.status)
	require.Equal(t, 1, a.screens.Len())
	top, ok := a.screens.Top().(*detailScreen)
	require.True(t, ok)
	require.NotNil(t, top.record)
	require.Equal(t, "Acme", top.record.Company)
	require.Equal(t, "Applying", top.record.Status)
	require.Equal(t, "Engineer", top.record.PositionTitle)
	require.NotNil(t, top.record.SalaryCents)
	require.Equal(t, int64(8500000), *top.record.SalaryCents)
	require.Nil(t, top.record.SalaryType, "optional picklist left on --None--")

	view := a.View()
	require.Contains(t, view, "Acme - Engineer")
	require.Contains(t, view, "$85,000.00")

	// the form starts over and the list picked up the new record
	require.Empty(t, a.creator.values()[recordmeta.FieldCompany])
	require.Len(t, a.list.all, 1)

	press(t, a, tea.KeyEsc)
	require.Equal(t, 0, a.screens.Len())
	require.Equal(t, viewNewRecord, a.state)
}

func TestCreateFlowValidationErrorStaysOnForm(t *testing.T) {
	a := newTestApp(t)

	press(t, a, tea.KeyF2)
	press(t, a, tea.KeyTab)
	typeText(t, a, "Nobody")
	press(t, a, tea.KeyEnter)

	require.True(t, a.statusErr)
	require.Contains(t, a.status, "Company: required")
	require.Equal(t, 0, a.screens.Len())
	require.Equal(t, "Nobody", a.creator.values()[recordmeta.FieldPrimaryContact])
}

func TestNavigateUnknownDestination(t *testing.T) {
	a := newTestApp(t)

	send(t, a, nav.NavigateMsg{Ref: nav.RecordPage("x", "Account")})
	require.True(t, a.statusErr)
	require.Equal(t, 0, a.screens.Len())
}

func TestApplicationsFilterAndOpen(t *testing.T) {
	a := newTestApp(t)
	createRecord(t, a, "Acme", "Engineer")
	globex := createRecord(t, a, "Globex", "Manager")

	press(t, a, tea.KeyF3)
	require.Equal(t, viewApplications, a.state)
	require.Len(t, a.list.visible, 2)

	typeText(t, a, "glob")
	require.Len(t, a.list.visible, 1)
	press(t, a, tea.KeyEnter)

	top, ok := a.screens.Top().(*detailScreen)
	require.True(t, ok)
	require.Equal(t, globex, top.id)
	require.NotNil(t, top.record)
	require.Equal(t, "Globex", top.record.Company)

	press(t, a, tea.KeyEsc)
	require.Equal(t, 0, a.screens.Len())
	press(t, a, tea.KeyEsc)
	require.Len(t, a.list.visible, 2)
}

func TestApplicationsResetConfirm(t *testing.T) {
	a := newTestApp(t)
	createRecord(t, a, "Acme", "Engineer")

	press(t, a, tea.KeyF3)
	require.Len(t, a.list.all, 1)

	press(t, a, tea.KeyCtrlX)
	require.Contains(t, a.View(), "Delete every application?")
	typeText(t, a, "n")
	require.Len(t, a.list.all, 1)

	press(t, a, tea.KeyCtrlX)
	typeText(t, a, "y")
	require.Empty(t, a.list.all)
	require.Equal(t, "all applications deleted", a.status)
}

func TestApplicationsExport(t *testing.T) {
	a := newTestApp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	createRecord(t, a, "Acme", "Engineer")

	press(t, a, tea.KeyF3)
	press(t, a, tea.KeyCtrlE)
	require.False(t, a.statusErr, a.status)
	require.Contains(t, a.status, "exported 1 applications")

	recs, err := export.LoadApplications()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "Acme", recs[0].Company)
}

func TestDetailDeleteConfirm(t *testing.T) {
	a := newTestApp(t)
	id := createRecord(t, a, "Acme", "Engineer")
	createRecord(t, a, "Globex", "Manager")

	send(t, a, nav.NavigateMsg{Ref: nav.RecordPage(id, recordmeta.JobApplicationObject)})
	require.Equal(t, 1, a.screens.Len())

	press(t, a, tea.KeyCtrlD)
	require.Contains(t, a.View(), "Delete this application?")
	typeText(t, a, "n")
	require.Equal(t, 1, a.screens.Len())
	require.NotContains(t, a.View(), "Delete this application?")

	press(t, a, tea.KeyCtrlD)
	typeText(t, a, "y")
	require.False(t, a.statusErr, a.status)
	require.Equal(t, 0, a.screens.Len())
	require.Equal(t, "Job Application deleted", a.status)
	require.Len(t, a.list.all, 1)
	require.Equal(t, "Globex", a.list.all[0].Company)

	_, err := a.services.Applications.Get(context.Background(), id)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTabCycling(t *testing.T) {
	a := newTestApp(t)

	press(t, a, tea.KeyCtrlN)
	require.Equal(t, viewNewRecord, a.state)
	press(t, a, tea.KeyCtrlN)
	require.Equal(t, viewApplications, a.state)
	press(t, a, tea.KeyCtrlN)
	require.Equal(t, viewCalculator, a.state)
	press(t, a, tea.KeyCtrlP)
	require.Equal(t, viewApplications, a.state)
}
