package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
}

func TestPanel_PadsToWidestLine(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "⭐ wide"})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "+---------+", lines[0])
	assert.Equal(t, "| ab      |", lines[1])
	assert.Equal(t, "| ⭐ wide |", lines[2])
	assert.Equal(t, "+---------+", lines[3])
}

func TestOKFail(t *testing.T) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	SetNoColor(true)

	var out, errOut bytes.Buffer
	Out, Err = &out, &errOut
	OK("added")
	Fail("nope")
	Warn("careful")

	assert.Equal(t, "✔ added\n", out.String())
	assert.Equal(t, "✖ nope\n! careful\n", errOut.String())
}

func TestC_NilColor(t *testing.T) {
	assert.Equal(t, "plain", C(nil, "plain"))
}
