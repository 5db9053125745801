package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "0"
	in.Prompt = "> "
	in.CharLimit = 32
	in.Width = 24
	return in
}

// pickUnit keeps want when it belongs to units, otherwise falls back to the
// unit at index i (or the last one).
func pickUnit(units []domain.Unit, want domain.Unit, i int) domain.Unit {
	for _, u := range units {
		if u == want {
			return want
		}
	}
	if len(units) == 0 {
		return want
	}
	if i >= len(units) {
		i = len(units) - 1
	}
	return units[i]
}

func describeUnits(conv *domain.Converter, cat domain.Category) string {
	units := conv.Units(cat)
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, string(u))
	}
	desc := clampString(strings.Join(names, ", "), 48)
	if cat == domain.CategoryTemperature {
		desc += " (formula)"
	}
	return desc
}

func (m model) converterView() string {
	ui := m.deps.Config.UI
	v := m.pair.Value()

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(string(m.category)))
	b.WriteString("\n\n")
	b.WriteString(m.fieldView(sideFrom, ui.FromLabel, v.From.Unit))
	b.WriteString("\n\n")
	b.WriteString(m.fieldView(sideTo, ui.ToLabel, v.To.Unit))

	if m.changes != nil && m.changes.count > 0 {
		last := m.changes.last
		b.WriteString("\n\n")
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("Last change: %s %s → %s %s",
			formatNumber(last.From.Value), last.From.Unit,
			formatNumber(last.To.Value), last.To.Unit,
		)))
	}
	return b.String()
}

func (m model) fieldView(s side, label string, unit domain.Unit) string {
	in := m.inputs[s]

	var field string
	if m.enabled(s) {
		field = in.View()
	} else {
		text := in.Value()
		if text == "" {
			text = in.Placeholder
		}
		field = in.Prompt + m.theme.Disabled.Render(text)
	}
	field += "  " + m.theme.Unit.Render(string(unit))

	if m.deps.Config.UI.HideLabels {
		return field
	}
	return m.theme.Label.Render(clampString(label, 32)) + "\n" + field
}
