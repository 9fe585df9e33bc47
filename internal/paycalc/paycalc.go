// Package paycalc projects take-home pay from gross income and deduction rates.
//
// State is a value. Every handler returns a new State instead of mutating the
// old one, so the arithmetic can be exercised without a terminal.
package paycalc

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names an editable calculator input.
type Field string

const (
	FieldIncome         Field = "income"
	FieldFederalTax     Field = "federalTax"
	FieldSocialSecurity Field = "socialSecurity"
	FieldMedicare       Field = "medicare"
)

// Fields lists the inputs in display order.
var Fields = []Field{FieldIncome, FieldFederalTax, FieldSocialSecurity, FieldMedicare}

// Default deduction rates, as decimal fractions.
const (
	DefaultFederalTax     = 0.12
	DefaultSocialSecurity = 0.062
	DefaultMedicare       = 0.0145
)

// Rates holds the three deduction rates.
type Rates struct {
	FederalTax     float64
	SocialSecurity float64
	Medicare       float64
}

// DefaultRates returns the built-in deduction rates.
func DefaultRates() Rates {
	return Rates{
		FederalTax:     DefaultFederalTax,
		SocialSecurity: DefaultSocialSecurity,
		Medicare:       DefaultMedicare,
	}
}

// State is the calculator's inputs, stored exactly as typed, plus the last
// rendered summary.
type State struct {
	Income         string
	FederalTax     string
	SocialSecurity string
	Medicare       string
	ResultText     string
}

// Defaults returns a fresh State with zero income and the built-in rates.
func Defaults() State {
	return DefaultsFrom(DefaultRates())
}

// DefaultsFrom returns a fresh State with zero income and the given rates.
func DefaultsFrom(r Rates) State {
	return State{
		Income:         "0",
		FederalTax:     formatRate(r.FederalTax),
		SocialSecurity: formatRate(r.SocialSecurity),
		Medicare:       formatRate(r.Medicare),
	}
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Value returns the raw value stored for f.
func (s State) Value(f Field) string {
	switch f {
	case FieldIncome:
		return s.Income
	case FieldFederalTax:
		return s.FederalTax
	case FieldSocialSecurity:
		return s.SocialSecurity
	case FieldMedicare:
		return s.Medicare
	}
	return ""
}

// WithInput stores raw verbatim into the field named name. Unknown names
// leave the state unchanged. The summary is not recomputed.
func (s State) WithInput(name, raw string) State {
	switch Field(name) {
	case FieldIncome:
		s.Income = raw
	case FieldFederalTax:
		s.FederalTax = raw
	case FieldSocialSecurity:
		s.SocialSecurity = raw
	case FieldMedicare:
		s.Medicare = raw
	}
	return s
}

// Projection is net pay over four pay periods.
type Projection struct {
	Annual   float64
	Monthly  float64
	BiWeekly float64
	Weekly   float64
}

// Project computes net pay from income and the three rates. NaN inputs
// propagate into every period.
func Project(income, federalTax, socialSecurity, medicare float64) Projection {
	net := income - (federalTax * income) - (socialSecurity * income) - (medicare * income)
	return Projection{
		Annual:   net,
		Monthly:  net / 12,
		BiWeekly: net / 26,
		Weekly:   net / 52,
	}
}

// Calculate parses the stored inputs, projects net pay and returns the new
// state carrying the rendered summary. It never fails.
func Calculate(s State) (State, string) {
	p := Project(
		ParseFloat(s.Income),
		ParseFloat(s.FederalTax),
		ParseFloat(s.SocialSecurity),
		ParseFloat(s.Medicare),
	)
	s.ResultText = Summary(p)
	return s, s.ResultText
}

// Summary renders p as four lines, one per period.
func Summary(p Projection) string {
	lines := []string{
		fmt.Sprintf("Your Annual Take Home Pay is $%s", FormatAmount(p.Annual)),
		fmt.Sprintf("Your Monthly Take Home Pay is $%s", FormatAmount(p.Monthly)),
		fmt.Sprintf("Your Bi-Weekly Take Home Pay is $%s", FormatAmount(p.BiWeekly)),
		fmt.Sprintf("Your Weekly Take Home Pay is $%s", FormatAmount(p.Weekly)),
	}
	return strings.Join(lines, "\n")
}
