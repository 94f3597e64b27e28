package tui_test

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/mindtips/internal/app"
	"github.com/idilsaglam/mindtips/internal/store/textstore"
	"github.com/idilsaglam/mindtips/internal/tui"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func newModel(t *testing.T, opt tui.Options) tui.Model {
	t.Helper()
	a, st := app.Open(app.Options{Store: textstore.New(filepath.Join(t.TempDir(), "tips.txt"))})
	require.True(t, st.OK())
	return tui.New(a, st, opt)
}

func send(t *testing.T, m tui.Model, msgs ...tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		var ok bool
		m, ok = updated.(tui.Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestNew_ShowsDefaults(t *testing.T) {
	m := newModel(t, tui.Options{})
	assert.Equal(t, textstore.Defaults, m.Rows())
	assert.Nil(t, m.Init())
	assert.Empty(t, m.Notice())
}

func TestDailyTip_DismissedByAnyKey(t *testing.T) {
	m := newModel(t, tui.Options{DailyTip: true})
	assert.Contains(t, textstore.Defaults, m.Notice())
	assert.Contains(t, m.View(), "Daily Mental Health Tip")

	// the key is swallowed by the notice, not treated as a command
	m, _ = send(t, m, runes("s"))
	assert.Empty(t, m.Notice())
	assert.Equal(t, textstore.Defaults, m.Rows())
}

func TestAdd(t *testing.T) {
	m := newModel(t, tui.Options{})

	m, _ = send(t, m, runes("a"))
	require.True(t, m.Adding())

	m, cmd := send(t, m, runes("Drink water"), enter)
	assert.False(t, m.Adding())
	assert.NotNil(t, cmd, "status clear should be scheduled")
	assert.Equal(t, "Tip added successfully!", m.Status().Message)
	rows := m.Rows()
	require.Len(t, rows, 8)
	assert.Equal(t, "Drink water", rows[7])
}

func TestAdd_DuplicateStaysInInput(t *testing.T) {
	m := newModel(t, tui.Options{})
	m, _ = send(t, m, runes("a"), runes("maintain a healthy sleep schedule."), enter)

	assert.True(t, m.Adding())
	assert.Equal(t, app.KindDuplicateTip, m.Status().Kind())
	assert.Len(t, m.Rows(), 7)

	m, _ = send(t, m, esc)
	assert.False(t, m.Adding())
}

func TestAdd_Empty(t *testing.T) {
	m := newModel(t, tui.Options{})
	m, _ = send(t, m, runes("a"), enter)
	assert.True(t, m.Adding())
	assert.Equal(t, "Please enter a tip to add.", m.Status().Message)
}

func TestFavoriteAndFilter(t *testing.T) {
	m := newModel(t, tui.Options{})

	// cursor starts on the first tip; move to the third
	m, _ = send(t, m, down, down, runes("f"))
	assert.Equal(t, "Favorite toggled.", m.Status().Message)
	assert.Equal(t, "⭐ Exercise to boost your mood and energy.", m.Rows()[2])

	m, _ = send(t, m, runes("F"))
	assert.Equal(t, []string{"⭐ Exercise to boost your mood and energy."}, m.Rows())

	// toggling again inside the filtered view empties it
	m, _ = send(t, m, runes("f"))
	assert.Empty(t, m.Rows())

	m, _ = send(t, m, runes("F"))
	assert.Equal(t, textstore.Defaults, m.Rows())
}

func TestRemoveMarkedThenUndo(t *testing.T) {
	m := newModel(t, tui.Options{})

	m, _ = send(t, m, space, down, space)
	rows := m.Rows()
	assert.Equal(t, "● "+textstore.Defaults[0], rows[0])
	assert.Equal(t, "● "+textstore.Defaults[1], rows[1])

	m, _ = send(t, m, runes("d"))
	assert.Equal(t, "2 tip(s) removed.", m.Status().Message)
	assert.Equal(t, textstore.Defaults[2:], m.Rows())

	m, _ = send(t, m, runes("u"))
	assert.Equal(t, "Undo successful.", m.Status().Message)
	assert.Equal(t, textstore.Defaults, m.Rows())
}

func TestRemoveHighlighted(t *testing.T) {
	m := newModel(t, tui.Options{})
	m, _ = send(t, m, runes("d"))
	assert.Equal(t, "1 tip(s) removed.", m.Status().Message)
	assert.Equal(t, textstore.Defaults[1:], m.Rows())
}

func TestUndo_Nothing(t *testing.T) {
	m := newModel(t, tui.Options{})
	m, _ = send(t, m, runes("u"))
	assert.Equal(t, app.KindNothingToUndo, m.Status().Kind())
}

func TestSort(t *testing.T) {
	m := newModel(t, tui.Options{})
	m, _ = send(t, m, runes("s"))
	assert.Equal(t, "Tips sorted alphabetically.", m.Status().Message)
	assert.Equal(t, "Exercise to boost your mood and energy.", m.Rows()[0])
}

func TestStatusClear_OnlyLatest(t *testing.T) {
	m := newModel(t, tui.Options{StatusTimeout: time.Millisecond})

	m, first := send(t, m, runes("u"))
	require.NotNil(t, first)
	m, second := send(t, m, runes("s"))
	require.NotNil(t, second)

	// the stale clear from the first status must not wipe the second
	m, _ = send(t, m, first())
	assert.Equal(t, "Tips sorted alphabetically.", m.Status().Message)

	m, _ = send(t, m, second())
	assert.Empty(t, m.Status().Message)
}

func TestQuit(t *testing.T) {
	m := newModel(t, tui.Options{})
	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestLoadWarningShownAtStart(t *testing.T) {
	dir := t.TempDir()
	a, st := app.Open(app.Options{Store: textstore.New(dir)})
	require.False(t, st.OK())

	m := tui.New(a, st, tui.Options{})
	assert.NotNil(t, m.Init())
	assert.Equal(t, "Error loading tips from file.", m.Status().Message)
	assert.Empty(t, m.Rows())
}
