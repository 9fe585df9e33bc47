package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jobpay/internal/recordmeta"
)

type formField struct {
	meta   recordmeta.Field
	input  textinput.Model
	option int
}

const noneLabel = "--None--"

// choices lists a picklist's options. Optional picklists start with a blank
// choice, which is also their default.
func (f formField) choices() []string {
	if f.meta.Required {
		return f.meta.Options
	}
	return append([]string{""}, f.meta.Options...)
}

func (f formField) value() string {
	if f.meta.Type == recordmeta.TypePicklist {
		return f.choices()[f.option]
	}
	return f.input.Value()
}

func (f formField) display() string {
	if v := f.value(); v != "" {
		return v
	}
	return noneLabel
}

// creator is the new-record form for one record type. It renders the
// metadata's fields in order and hands the values to the app on submit.
type creator struct {
	meta   recordmeta.Object
	fields []formField
	focus  int
}

func newCreator(meta recordmeta.Object) creator {
	c := creator{meta: meta}
	c.reset()
	return c
}

func (c *creator) reset() {
	c.fields = c.fields[:0]
	for _, f := range c.meta.Fields {
		label := f.Label
		if f.Required {
			label += "*"
		}
		c.fields = append(c.fields, formField{meta: f, input: newTextInput(label, "")})
	}
	c.focus = 0
	c.fields[0].input.Focus()
}

func (c *creator) moveFocus(dir int) {
	c.fields[c.focus].input.Blur()
	c.focus = (c.focus + dir + len(c.fields)) % len(c.fields)
	c.fields[c.focus].input.Focus()
}

// values returns the form contents keyed by field API name.
func (c creator) values() map[string]string {
	out := make(map[string]string, len(c.fields))
	for _, f := range c.fields {
		out[f.meta.APIName] = f.value()
	}
	return out
}

// update handles a key. submit reports that the user asked to save.
func (c *creator) update(msg tea.KeyMsg, keys keyMap) (cmd tea.Cmd, submit bool) {
	switch {
	case key.Matches(msg, keys.Submit):
		return nil, true
	case key.Matches(msg, keys.Cancel):
		c.reset()
		return nil, false
	case key.Matches(msg, keys.NextField):
		c.moveFocus(1)
		return nil, false
	case key.Matches(msg, keys.PrevField):
		c.moveFocus(-1)
		return nil, false
	}

	f := &c.fields[c.focus]
	if f.meta.Type == recordmeta.TypePicklist {
		n := len(f.choices())
		switch {
		case key.Matches(msg, keys.Left):
			f.option = (f.option - 1 + n) % n
		case key.Matches(msg, keys.Right):
			f.option = (f.option + 1) % n
		}
		return nil, false
	}
	f.input, cmd = f.input.Update(msg)
	return cmd, false
}

func (c creator) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New " + c.meta.Label))
	b.WriteString("\n\n")
	for i, f := range c.fields {
		if f.meta.Type == recordmeta.TypePicklist {
			marker := "  "
			if i == c.focus {
				marker = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", f.input.Prompt, marker, valueStyle.Render("‹ "+f.display()+" ›")))
			continue
		}
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("* required"))
	return b.String()
}

func (c creator) help(keys keyMap) []key.Binding {
	return []key.Binding{keys.NextField, keys.Left, keys.Submit, keys.Cancel}
}
