package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenConverter
)

type side int

const (
	sideNone side = -1
	sideFrom side = 0
	sideTo   side = 1
)

type menuItem struct {
	title string
	desc  string
	cat   domain.Category // empty for Quit
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

// changeLog is shared with the pair's change handler.
type changeLog struct {
	last  domain.Conversion
	count int
}

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model
	conv *domain.Converter

	category domain.Category
	pair     *domain.Pair
	changes  *changeLog
	inputs   [2]textinput.Model
	focus    side

	toast string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	conv := deps.Config.NewConverter()

	var items []list.Item
	for _, cat := range conv.Categories() {
		items = append(items, menuItem{title: string(cat), desc: describeUnits(conv, cat), cat: cat})
	}
	items = append(items, menuItem{title: "Quit", desc: "Exit unitconv"})

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Categories"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		conv:  conv,
		focus: sideNone,
	}

	if cat := deps.Config.Category; cat != "" {
		m = m.openCategory(cat)
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.focus != sideNone {
		return textinput.Blink
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome {
			return m.updateHome(msg)
		}
		return m.updateConverter(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.scr == screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case m.focus != sideNone:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.menu.FilterState() != list.Filtering {
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "enter":
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			if it.cat == "" {
				return m, tea.Quit
			}
			m = m.openCategory(it.cat)
			return m, m.Init()
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateConverter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		return m.back(), nil

	case "b", "q":
		// Typed into the focused field otherwise.
		if m.focus == sideNone {
			return m.back(), nil
		}

	case "enter":
		return m.commit(m.focus), nil

	case "tab":
		return m.moveFocus(1)

	case "shift+tab":
		return m.moveFocus(-1)

	case "ctrl+n":
		return m.commit(m.focus).cycleUnit(1), nil

	case "ctrl+p":
		return m.commit(m.focus).cycleUnit(-1), nil
	}

	if m.focus == sideNone {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// openCategory starts a fresh session for cat. Configured units that do not
// belong to cat are replaced by the first units of its table.
func (m model) openCategory(cat domain.Category) model {
	if !m.conv.HasCategory(cat) {
		m.scr = screenHome
		m.toast = userMessage(&domain.OpError{
			Op:   "tui.category",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("category %q: %w", cat, domain.ErrNotFound),
		})
		return m
	}

	cfg := m.deps.Config
	cfg.Category = cat
	units := m.conv.Units(cat)
	cfg.FromUnit = pickUnit(units, cfg.FromUnit, 0)
	cfg.ToUnit = pickUnit(units, cfg.ToUnit, 1)

	changes := &changeLog{}
	pair := usecase.NewSession(cfg, m.deps.Logger)
	pair.Subscribe(func(c domain.Conversion) {
		changes.last = c
		changes.count++
	})

	m.scr = screenConverter
	m.category = cat
	m.pair = pair
	m.changes = changes
	m.inputs = [2]textinput.Model{newInput(), newInput()}
	m.toast = ""

	m, _ = m.setFocus(m.nextFocus(sideNone, 1))
	return m
}

func (m model) back() model {
	m, _ = m.setFocus(sideNone)
	m.scr = screenHome
	m.pair = nil
	m.changes = nil
	m.toast = ""
	return m
}

func (m model) enabled(s side) bool {
	switch s {
	case sideFrom:
		return !m.deps.Config.UI.FromDisabled()
	case sideTo:
		return !m.deps.Config.UI.ToDisabled()
	default:
		return false
	}
}

// nextFocus walks from cur in step direction and returns the first enabled
// field, possibly cur itself.
func (m model) nextFocus(cur side, step int) side {
	for i := 1; i <= 2; i++ {
		s := side(((int(cur)+step*i)%2 + 2) % 2)
		if m.enabled(s) {
			return s
		}
	}
	return sideNone
}

func (m model) setFocus(s side) (model, tea.Cmd) {
	m.inputs[sideFrom].Blur()
	m.inputs[sideTo].Blur()
	m.focus = s
	if s == sideNone {
		return m, nil
	}
	return m, m.inputs[s].Focus()
}

func (m model) moveFocus(step int) (tea.Model, tea.Cmd) {
	m = m.commit(m.focus)
	m, cmd := m.setFocus(m.nextFocus(m.focus, step))
	return m, cmd
}

// commit hands the field's text to the pair. The change handler records the
// notification, whose to side is the value for the other field.
func (m model) commit(s side) model {
	if s == sideNone || !m.enabled(s) || m.pair == nil {
		return m
	}

	raw := m.inputs[s].Value()
	var changed bool
	if s == sideFrom {
		changed = m.pair.EditFrom(raw)
	} else {
		changed = m.pair.EditTo(raw)
	}
	if changed {
		m.inputs[1-s].SetValue(formatNumber(m.changes.last.To.Value))
	}
	return m
}

// cycleUnit moves the focused side to the next unit of the category and
// recomputes the to side.
func (m model) cycleUnit(step int) model {
	if !m.deps.Config.UI.AllowUnitSelection || m.focus == sideNone || m.pair == nil {
		return m
	}

	units := m.pair.Converter().Units(m.category)
	if len(units) == 0 {
		return m
	}

	v := m.pair.Value()
	cur := v.From.Unit
	if m.focus == sideTo {
		cur = v.To.Unit
	}

	next := units[0]
	for i, u := range units {
		if u == cur {
			next = units[((i+step)%len(units)+len(units))%len(units)]
			break
		}
	}

	if m.focus == sideFrom {
		m.pair.SetUnits(next, "")
	} else {
		m.pair.SetUnits("", next)
	}
	if m.pair.Refresh() {
		m.inputs[sideTo].SetValue(formatNumber(m.changes.last.To.Value))
	}
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("unitconv") + "\n" +
		m.theme.Subtitle.Render("Paired unit converter: edit either side") + "\n"

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + toast)

	case screenConverter:
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.converterView()) + "\n" + m.helpLine() + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) helpLine() string {
	parts := []string{"tab switch", "enter convert"}
	if m.deps.Config.UI.AllowUnitSelection {
		parts = append(parts, "ctrl+n/ctrl+p unit")
	}
	parts = append(parts, "esc back", "ctrl+c quit")
	return m.theme.Help.Render(strings.Join(parts, " • "))
}
