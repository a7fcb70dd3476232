// Package picker implements the interactive commit picker TUI: a lazily
// growing commit list with vim-style navigation, per-commit message
// expansion, and hidden-content indicator rows.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/smileynet/fixpick/internal/gitlog"
	"github.com/smileynet/fixpick/internal/history"
)

// headerHeight is the number of screen rows consumed by the title line and
// the blank line under it.
const headerHeight = 2

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// phase is the session state machine: the picker runs until the user
// confirms a commit or cancels.
type phase int

const (
	phaseRunning phase = iota
	phaseConfirmed
	phaseCancelled
)

// intent is an abstract navigation action decoded from one key event.
type intent int

const (
	intentNone intent = iota
	intentMoveUp
	intentMoveDown
	intentExpand
	intentCollapse
	intentConfirm
	intentQuit
)

// Model drives the interactive commit picker.
type Model struct {
	list      *history.List
	expansion *history.Expansion

	keys pickKeys
	help help.Model

	selected int
	scroll   int
	width    int
	height   int

	phase phase
}

// NewModel creates a picker over a non-empty commit list.
func NewModel(list *history.List, expansion *history.Expansion) Model {
	return Model{
		list:      list,
		expansion: expansion,
		keys:      PickKeyMap(),
		help:      help.New(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.step(m.decode(msg))
	}

	return m, nil
}

// decode translates a key event into a navigation intent. Unrecognized keys
// map to intentNone and leave the model untouched.
func (m Model) decode(msg tea.KeyMsg) intent {
	switch {
	case key.Matches(msg, m.keys.Up):
		return intentMoveUp
	case key.Matches(msg, m.keys.Down):
		return intentMoveDown
	case key.Matches(msg, m.keys.Expand):
		return intentExpand
	case key.Matches(msg, m.keys.Collapse):
		return intentCollapse
	case key.Matches(msg, m.keys.Confirm):
		return intentConfirm
	case key.Matches(msg, m.keys.Quit):
		return intentQuit
	}
	return intentNone
}

// step applies one intent to the model. Rendering and terminal I/O stay in
// View and the Bubble Tea runtime; this is the pure transition.
func (m Model) step(it intent) (tea.Model, tea.Cmd) {
	switch it {
	case intentMoveUp:
		return m.moveSelection(-1), nil
	case intentMoveDown:
		return m.moveSelection(1), nil
	case intentExpand:
		if m.selected < m.list.Len() {
			m.expansion.Toggle(m.selected, m.list.At(m.selected).SHA)
		}
		return m, nil
	case intentCollapse:
		m.expansion.Collapse(m.selected)
		return m, nil
	case intentConfirm:
		m.phase = phaseConfirmed
		return m, tea.Quit
	case intentQuit:
		m.phase = phaseCancelled
		return m, tea.Quit
	}
	return m, nil
}

// moveSelection moves the selection by delta, keeps the scroll offset
// consistent with the window that was on screen before the move, and grows
// the list when the selection nears its end.
func (m Model) moveSelection(delta int) Model {
	next := m.selected + delta
	if next < 0 || next >= m.list.Len() {
		return m
	}
	onScreen := Fit(m.list.Len(), m.expansion.Height, m.rowBudget(), m.scroll)
	m.selected = next
	m.scroll = AdjustScroll(onScreen, m.selected, m.scroll)
	m.list.EnsureCapacity(m.selected, m.rowBudget())
	return m
}

// Result returns the confirmed commit after the program has finished, or
// false when the session was cancelled.
func (m Model) Result() (gitlog.Commit, bool) {
	if m.phase != phaseConfirmed || m.list.Len() == 0 {
		return gitlog.Commit{}, false
	}
	return m.list.At(m.selected), true
}

// rowBudget is the number of screen rows available to the commit list,
// after the header and the help bar. Indicator rows come out of this budget.
func (m Model) rowBudget() int {
	b := m.height - headerHeight - helpBarHeight
	if b < 0 {
		return 0
	}
	return b
}

// View renders the header, the visible slice of the commit list with
// indicator rows, and the help bar pinned to the bottom.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	lines := []string{
		titleStyle.Render("Select a commit to fix up"),
		"",
	}

	window := Fit(m.list.Len(), m.expansion.Height, m.rowBudget(), m.scroll)
	if window.MoreAbove {
		lines = append(lines, indicatorStyle.Render("  ↑ more commits above..."))
	}
	for _, idx := range window.Indices {
		lines = append(lines, m.renderCommit(idx)...)
	}
	if window.MoreBelow {
		lines = append(lines, indicatorStyle.Render("  ↓ more commits below..."))
	}

	body := strings.Join(lines, "\n")
	helpView := m.help.View(m.keys)
	if gap := m.height - len(lines) - helpBarHeight; gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + helpView
}

// renderCommit renders the summary row for idx, plus indented body lines
// when the commit is expanded.
func (m Model) renderCommit(idx int) []string {
	c := m.list.At(idx)

	marker := "  "
	rowStyle := plainStyle
	shaSty := shaStyle
	if idx == m.selected {
		marker = CursorMarker
		rowStyle = selectedStyle
		shaSty = shaStyle.Reverse(true)
	}

	// Truncate so the row never wraps: marker + sha + space + summary.
	avail := m.width - len(marker) - len(c.SHA) - 1
	if avail < 0 {
		avail = 0
	}
	summary := ansi.Truncate(c.Summary, avail, "…")
	out := []string{rowStyle.Render(marker) + shaSty.Render(c.SHA) + rowStyle.Render(" "+summary)}

	for _, line := range m.expansion.Body(idx) {
		out = append(out, bodyStyle.Render(bodyIndent+ansi.Truncate(line, m.width-len(bodyIndent), "…")))
	}
	return out
}
