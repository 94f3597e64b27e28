// Package tui is the interactive list over the app command surface. Every
// command runs inside Update, then the list is re-pulled from app.View.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/mindtips/internal/app"
)

// Options tune the TUI.
type Options struct {
	StatusTimeout time.Duration // how long a status stays on screen
	DailyTip      bool          // show a random tip notice at startup
}

// listItem adapts app.Entry to bubbles/list.Item
type listItem struct {
	app.Entry
	Marked bool
}

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// clearStatusMsg clears the status line only if seq is still the latest.
type clearStatusMsg struct{ seq int }

type keyMap struct {
	Add, Remove, Mark, Undo, Sort, Favorite, Filter key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Remove:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
		Mark:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Undo:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Filter:   key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "favorites only")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Mark, k.Undo, k.Sort, k.Favorite, k.Filter}
}

// Model is the Bubble Tea model for the tip list.
type Model struct {
	app  *app.App
	list list.Model
	keys keyMap

	// Inline add
	adding bool
	ti     textinput.Model

	marked map[string]bool // stored representation -> selected

	status        app.Status
	statusSeq     int
	statusTimeout time.Duration

	notice  string  // daily tip, dismissed by any key
	initCmd tea.Cmd // status from loading, if any

	width, height int
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	mark := markOff
	if it.Marked {
		mark = accentStyle.Render(markOn)
	}
	text := it.Text
	if it.Favorite {
		text = favoriteStyle.Render(starMark + " " + it.Text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+mark+" "+text)
}

// New builds the model. loadStatus is the warning, if any, returned by app.Open.
func New(a *app.App, loadStatus app.Status, opt Options) Model {
	if opt.StatusTimeout <= 0 {
		opt.StatusTimeout = 4 * time.Second
	}

	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("tip", "tips")
	// u, f, d and b page by default; u, f and d are taken by commands below
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown")
	l.KeyMap.PrevPage.SetKeys("left", "h", "pgup", "b")

	keys := newKeyMap()
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	m := Model{
		app:           a,
		list:          l,
		keys:          keys,
		marked:        map[string]bool{},
		statusTimeout: opt.StatusTimeout,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "Type a new tip here..."
	m.ti.CharLimit = 200

	if opt.DailyTip {
		if tip, ok := a.RandomTip(); ok {
			m.notice = tip
		}
	}
	m.refresh()
	m.initCmd = m.setStatus(loadStatus)
	return m
}

// Run starts the Bubble Tea program. State is saved on every command, not on quit.
func Run(a *app.App, loadStatus app.Status, opt Options) error {
	_, err := tea.NewProgram(New(a, loadStatus, opt), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return m.initCmd }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = app.Status{}
		}
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)

	if isKey && m.notice != "" {
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.notice = ""
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if isKey {
		switch {
		case keyMsg.Type == tea.KeyCtrlC || keyMsg.String() == "q" || keyMsg.String() == "esc":
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Add):
			m.adding = true
			m.ti.SetValue("")
			m.resize()
			return m, m.ti.Focus()
		case key.Matches(keyMsg, m.keys.Mark):
			if it, ok := m.current(); ok {
				if m.marked[it.Stored] {
					delete(m.marked, it.Stored)
				} else {
					m.marked[it.Stored] = true
				}
				m.refresh()
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Remove):
			return m, m.run(m.app.RemoveSelected(m.selection()))
		case key.Matches(keyMsg, m.keys.Undo):
			return m, m.run(m.app.Undo())
		case key.Matches(keyMsg, m.keys.Sort):
			return m, m.run(m.app.Sort())
		case key.Matches(keyMsg, m.keys.Favorite):
			var stored string
			if it, ok := m.current(); ok {
				stored = it.Stored
			}
			return m, m.run(m.app.ToggleFavorite(stored))
		case key.Matches(keyMsg, m.keys.Filter):
			m.app.SetFavoritesFilter(!m.app.FavoritesOnly())
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			st := m.app.AddTip(m.ti.Value())
			if st.Kind() == app.KindEmptyInput || st.Kind() == app.KindDuplicateTip {
				return m, m.setStatus(st)
			}
			m.stopAdding()
			m.refresh()
			if n := len(m.list.Items()); n > 0 && !m.app.FavoritesOnly() {
				m.list.Select(n - 1)
			}
			return m, m.setStatus(st)
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

// run applies the outcome of a mutating command.
func (m *Model) run(st app.Status) tea.Cmd {
	if st.OK() || st.Kind() == app.KindIOError {
		clear(m.marked)
	}
	m.refresh()
	return m.setStatus(st)
}

// setStatus shows st and schedules its clear. A newer status bumps seq, so
// the older pending clear becomes a no-op.
func (m *Model) setStatus(st app.Status) tea.Cmd {
	if st.Message == "" {
		return nil
	}
	m.statusSeq++
	m.status = st
	seq := m.statusSeq
	return tea.Tick(m.statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// refresh re-pulls the view from the app, dropping marks on vanished tips.
func (m *Model) refresh() {
	entries := m.app.View()
	items := make([]list.Item, 0, len(entries))
	present := make(map[string]bool, len(entries))
	favorites := 0
	for _, e := range entries {
		present[e.Stored] = true
		if e.Favorite {
			favorites++
		}
		items = append(items, listItem{Entry: e, Marked: m.marked[e.Stored]})
	}
	for s := range m.marked {
		if !present[s] {
			delete(m.marked, s)
		}
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}

	title := fmt.Sprintf("%s   %s %d  %s %d",
		titleStyle.Render("Mental Health Tips"),
		favoriteStyle.Render(starMark), favorites,
		accentStyle.Render("Total"), len(items),
	)
	if m.app.FavoritesOnly() {
		title += "  " + mutedStyle.Render("(favorites only)")
	}
	m.list.Title = title
}

func (m Model) current() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

// selection returns the marked tips in view order, or the highlighted one.
func (m Model) selection() []string {
	var out []string
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok && li.Marked {
			out = append(out, li.Stored)
		}
	}
	if len(out) == 0 {
		if it, ok := m.current(); ok {
			out = append(out, it.Stored)
		}
	}
	return out
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 5
	if m.adding {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	var parts []string
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(
			titleStyle.Render("Daily Mental Health Tip")+"\n"+m.notice+"\n"+mutedStyle.Render("press any key"),
		))
	}
	parts = append(parts, m.list.View())
	if m.adding {
		parts = append(parts, boxStyle.Render("Add new tip\n"+m.ti.View()))
	}
	parts = append(parts, m.statusLine())
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) statusLine() string {
	if m.status.Message == "" {
		return " "
	}
	style := successStyle
	if !m.status.OK() {
		style = errorStyle
	}
	return statusStyle.Inherit(style).Render(m.status.Message)
}

// Accessors used by tests and callers that embed the model.

func (m Model) Status() app.Status { return m.status }
func (m Model) Notice() string     { return m.notice }
func (m Model) Adding() bool       { return m.adding }

// Rows returns the display text of the visible rows, favorites starred.
func (m Model) Rows() []string {
	out := make([]string, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		li, _ := it.(listItem)
		s := li.Text
		if li.Favorite {
			s = starMark + " " + s
		}
		if li.Marked {
			s = markOn + " " + s
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
