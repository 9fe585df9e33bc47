package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/jask/jobpay/internal/paycalc"
)

// runCalc is the headless calculator: jobpay calc -income 50000 [-federal 0.12 -ss 0.062 -medicare 0.0145].
// Values are taken raw, so non-numeric input shows up as NaN the same way it does in the TUI.
func runCalc(args []string, rates paycalc.Rates, out io.Writer) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(out)
	income := fs.String("income", "0", "annual gross income")
	federal := fs.String("federal", rate(rates.FederalTax), "federal tax rate as a decimal fraction")
	ss := fs.String("ss", rate(rates.SocialSecurity), "social security rate as a decimal fraction")
	medicare := fs.String("medicare", rate(rates.Medicare), "medicare rate as a decimal fraction")
	plain := fs.Bool("plain", false, "print the summary sentences instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := paycalc.Defaults().
		WithInput(string(paycalc.FieldIncome), *income).
		WithInput(string(paycalc.FieldFederalTax), *federal).
		WithInput(string(paycalc.FieldSocialSecurity), *ss).
		WithInput(string(paycalc.FieldMedicare), *medicare)

	if *plain {
		_, text := paycalc.Calculate(st)
		_, err := fmt.Fprintln(out, text)
		return err
	}

	p := paycalc.Project(
		paycalc.ParseFloat(st.Income),
		paycalc.ParseFloat(st.FederalTax),
		paycalc.ParseFloat(st.SocialSecurity),
		paycalc.ParseFloat(st.Medicare),
	)
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Period", "Take Home Pay"},
		{"Annual", amount(p.Annual)},
		{"Monthly", amount(p.Monthly)},
		{"Bi-Weekly", amount(p.BiWeekly)},
		{"Weekly", amount(p.Weekly)},
	}).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err = fmt.Fprintln(out, table)
	return err
}

func rate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func amount(v float64) string {
	s := "$" + paycalc.FormatAmount(v)
	if v < 0 || math.IsNaN(v) {
		return pterm.Red(s)
	}
	return pterm.Green(s)
}
