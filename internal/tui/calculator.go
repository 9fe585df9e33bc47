package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jobpay/internal/paycalc"
)

var calculatorLabels = map[paycalc.Field]string{
	paycalc.FieldIncome:         "Income",
	paycalc.FieldFederalTax:     "Federal Tax",
	paycalc.FieldSocialSecurity: "Social Security",
	paycalc.FieldMedicare:       "Medicare",
}

// calculator is the take-home pay tab. The inputs are only an editing
// surface; state is the source of truth and View renders from it.
type calculator struct {
	state  paycalc.State
	inputs []textinput.Model
	focus  int
}

func newTextInput(label, value string) textinput.Model {
	inp := textinput.New()
	inp.Prompt = label + ": "
	inp.Cursor.SetMode(cursor.CursorStatic)
	inp.SetValue(value)
	return inp
}

func newCalculator(rates paycalc.Rates) calculator {
	c := calculator{state: paycalc.DefaultsFrom(rates)}
	for _, f := range paycalc.Fields {
		c.inputs = append(c.inputs, newTextInput(calculatorLabels[f], c.state.Value(f)))
	}
	c.inputs[0].Focus()
	return c
}

// onInputChange records a raw edit. The summary is left as is.
func (c *calculator) onInputChange(name, raw string) {
	c.state = c.state.WithInput(name, raw)
}

// calculate recomputes the summary from the stored inputs.
func (c *calculator) calculate() {
	c.state, _ = paycalc.Calculate(c.state)
}

func (c *calculator) moveFocus(dir int) {
	c.inputs[c.focus].Blur()
	c.focus = (c.focus + dir + len(c.inputs)) % len(c.inputs)
	c.inputs[c.focus].Focus()
}

func (c *calculator) update(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.NextField):
		c.moveFocus(1)
		return nil
	case key.Matches(msg, keys.PrevField):
		c.moveFocus(-1)
		return nil
	case key.Matches(msg, keys.Calculate):
		c.calculate()
		return nil
	}

	before := c.inputs[c.focus].Value()
	var cmd tea.Cmd
	c.inputs[c.focus], cmd = c.inputs[c.focus].Update(msg)
	if after := c.inputs[c.focus].Value(); after != before {
		c.onInputChange(string(paycalc.Fields[c.focus]), after)
	}
	return cmd
}

func (c calculator) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Take Home Pay Calculator"))
	b.WriteString("\n\n")
	for _, inp := range c.inputs {
		b.WriteString(inp.View())
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("Rates are decimal fractions, 0.12 = 12%"))
	b.WriteString("\n\n")
	if c.state.ResultText != "" {
		b.WriteString(boxStyle.Render(valueStyle.Render(c.state.ResultText)))
	} else {
		b.WriteString(labelStyle.Render("Press enter to calculate."))
	}
	return b.String()
}

func (c calculator) help(keys keyMap) []key.Binding {
	return []key.Binding{keys.NextField, keys.Calculate, keys.SaveRates}
}
