package tui

import (
	"github.com/jask/jobpay/internal/config"
	"github.com/jask/jobpay/internal/database/repository"
)

type applicationsMsg []repository.JobApplication

// createdMsg is the form's success signal.
type createdMsg struct {
	ID string
}

type recordLoadedMsg struct {
	ID     string
	Record *repository.JobApplication
	Err    error
}

// deleteRecordMsg is a confirmed delete request from the detail screen.
type deleteRecordMsg struct {
	ID string
}

type recordDeletedMsg struct {
	ID string
}

type ratesSavedMsg struct {
	Calculator config.CalculatorConfig
}

type resetDoneMsg struct{}

type statusMsg string

type errMsg struct{ error }
