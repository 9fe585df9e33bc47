package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"

	"github.com/jask/jobpay/internal/paycalc"
)

func TestRunCalcPlain(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCalc([]string{"-income", "50000", "-plain"}, paycalc.DefaultRates(), &out))
	require.Equal(t, strings.Join([]string{
		"Your Annual Take Home Pay is $40175.00",
		"Your Monthly Take Home Pay is $3347.92",
		"Your Bi-Weekly Take Home Pay is $1545.19",
		"Your Weekly Take Home Pay is $772.60",
	}, "\n")+"\n", out.String())
}

func TestRunCalcRatesFromConfig(t *testing.T) {
	var out bytes.Buffer
	rates := paycalc.Rates{FederalTax: 0.5}
	require.NoError(t, runCalc([]string{"-income=1000", "-plain"}, rates, &out))
	require.Contains(t, out.String(), "Your Annual Take Home Pay is $500.00")
}

func TestRunCalcNonNumeric(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCalc([]string{"-income", "lots", "-plain"}, paycalc.DefaultRates(), &out))
	require.Equal(t, 4, strings.Count(out.String(), "$NaN"))
}

func TestRunCalcTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var out bytes.Buffer
	require.NoError(t, runCalc([]string{"-income", "50000"}, paycalc.DefaultRates(), &out))
	s := out.String()
	require.Contains(t, s, "Bi-Weekly")
	require.Contains(t, s, "$40175.00")
	require.Contains(t, s, "$772.60")
}

func TestRunCalcBadFlag(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, runCalc([]string{"-salary", "1"}, paycalc.DefaultRates(), &out))
}
