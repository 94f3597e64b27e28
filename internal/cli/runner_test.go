package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/mindtips/internal/model"
	"github.com/idilsaglam/mindtips/internal/store/textstore"
	"github.com/idilsaglam/mindtips/internal/ui"
)

type result struct {
	code        int
	out, errOut string
}

// run executes the CLI against a tips file in a fresh working directory.
func run(t *testing.T, file string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--file", file, "--no-color"}, args...)
	code := Run(full, &out, &errOut)
	return result{code: code, out: out.String(), errOut: errOut.String()}
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return filepath.Join(dir, "tips.txt")
}

func readLines(t *testing.T, p string) []string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

func TestLs_SeedsDefaults(t *testing.T) {
	p := setup(t)
	r := run(t, p, "ls")
	require.Equal(t, 0, r.code, r.errOut)

	for i, tip := range textstore.Defaults {
		assert.Contains(t, r.out, tip)
		assert.Contains(t, r.out, tipIndex(i))
	}
	assert.Equal(t, textstore.Defaults, readLines(t, p))
}

func tipIndex(i int) string { return " " + string(rune('1'+i)) + "." }

func TestAdd_ThenDuplicate(t *testing.T) {
	p := setup(t)

	r := run(t, p, "add", "Drink", "water")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, "Tip added successfully!")
	assert.Equal(t, "Drink water", readLines(t, p)[7])

	r = run(t, p, "add", "drink water")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.errOut, "This tip already exists.")
	assert.Len(t, readLines(t, p), 8)
}

func TestAdd_Blank(t *testing.T) {
	p := setup(t)
	r := run(t, p, "add", "   ")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.errOut, "Please enter a tip to add.")
}

func TestRm(t *testing.T) {
	p := setup(t)
	r := run(t, p, "rm", "1", "3")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, "2 tip(s) removed.")

	lines := readLines(t, p)
	assert.Len(t, lines, 5)
	assert.NotContains(t, lines, textstore.Defaults[0])
	assert.NotContains(t, lines, textstore.Defaults[2])
}

func TestRm_BadIndex(t *testing.T) {
	p := setup(t)
	r := run(t, p, "rm", "42")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.errOut, "index out of range: have 7, got 42")

	r = run(t, p, "rm", "one")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.errOut, "not a number: one")
}

func TestFav_AndFilteredList(t *testing.T) {
	p := setup(t)
	r := run(t, p, "fav", "3")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, model.FavoriteMark+textstore.Defaults[2], readLines(t, p)[2])

	r = run(t, p, "ls", "--favorites")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.out, textstore.Defaults[2])
	assert.NotContains(t, r.out, textstore.Defaults[0])

	r = run(t, p, "fav", "3")
	require.Equal(t, 0, r.code)
	assert.Equal(t, textstore.Defaults, readLines(t, p))
}

func TestLs_FavoritesKeepFullIndexes(t *testing.T) {
	p := setup(t)
	require.Equal(t, 0, run(t, p, "fav", "5").code)

	r := run(t, p, "ls", "-f")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.out, " 5. ")
	assert.NotContains(t, r.out, " 1. ")

	r = run(t, p, "rm", "5")
	require.Equal(t, 0, r.code, r.errOut)
	lines := readLines(t, p)
	assert.Len(t, lines, 6)
	assert.NotContains(t, lines, model.FavoriteMark+textstore.Defaults[4])
	assert.Contains(t, lines, textstore.Defaults[0])
}

func TestLs_Group(t *testing.T) {
	p := setup(t)
	require.Equal(t, 0, run(t, p, "fav", "2").code)

	r := run(t, p, "ls", "--group")
	require.Equal(t, 0, r.code)
	favAt := strings.Index(r.out, "Favorites")
	othersAt := strings.Index(r.out, "Others")
	tipAt := strings.Index(r.out, textstore.Defaults[1])
	require.True(t, favAt >= 0 && othersAt >= 0 && tipAt >= 0)
	assert.Less(t, favAt, tipAt)
	assert.Less(t, tipAt, othersAt)
	// numbering follows the flat listing
	assert.Contains(t, r.out, " 2. ")
}

func TestSort(t *testing.T) {
	p := setup(t)
	r := run(t, p, "sort")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, "Tips sorted alphabetically.")
	assert.Equal(t, "Exercise to boost your mood and energy.", readLines(t, p)[0])
}

func TestDaily(t *testing.T) {
	p := setup(t)
	r := run(t, p, "daily")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, "Daily Mental Health Tip")

	found := false
	for _, tip := range textstore.Defaults {
		if strings.Contains(r.out, tip) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDaily_EmptyFile(t *testing.T) {
	p := setup(t)
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	r := run(t, p, "daily")
	assert.Equal(t, 2, r.code)
}

func TestUnknownCommandIsUsage(t *testing.T) {
	p := setup(t)
	r := run(t, p, "frobnicate")
	assert.Equal(t, 2, r.code)
}

func TestInvalidTheme(t *testing.T) {
	p := setup(t)
	r := run(t, p, "--theme", "pink", "ls")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.errOut, "ui.theme must be one of")
}

func TestSaveFailureIsRuntimeError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := filepath.Join(dir, "missing-dir", "tips.txt")

	r := run(t, p, "add", "Drink water")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.errOut, "Error saving tips to file.")
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("disk gone") }

func TestCloseLog_ReportsError(t *testing.T) {
	var errOut bytes.Buffer
	prev := ui.Err
	ui.Err = &errOut
	defer func() { ui.Err = prev }()

	rt := &runtime{closer: failingCloser{}}
	rt.closeLog()
	assert.Contains(t, errOut.String(), "closing log file: disk gone")

	// no closer, nothing to report
	errOut.Reset()
	(&runtime{}).closeLog()
	assert.Empty(t, errOut.String())
}
