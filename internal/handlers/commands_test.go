package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drelich/minefield-server/internal/minefield"
)

// fixedRand always picks the first remaining pool slot, so a 2x2 field
// with one mine gets it at (0, 0).
type fixedRand struct{}

func (fixedRand) IntN(n int) int { return 0 }

func testField(t *testing.T) *minefield.Minefield {
	t.Helper()
	return minefield.New(2, 2).WithMines(1, fixedRand{})
}

func TestExecuteCommand(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"g", ""},
		{"o 1 1", "phew"},
		{"f 0 0", "added"},
		{"f 0 0", "removed"},
		{"c 5 5", "invalid"},
		{"o 0 0", "boom"},
	}

	field := testField(t)
	for _, test := range tests {
		got, err := executeCommand(field, test.command)
		require.NoError(t, err, "command %q", test.command)
		assert.Equal(t, test.want, got, "command %q", test.command)
	}
}

func TestExecuteCommandChord(t *testing.T) {
	field := testField(t)
	_, err := executeCommand(field, "o 1 1")
	require.NoError(t, err)
	_, err = executeCommand(field, "f 0 0")
	require.NoError(t, err)

	got, err := executeCommand(field, "c 1 1")
	require.NoError(t, err)
	assert.Equal(t, "phew", got)
	assert.True(t, field.IsCleared())
}

func TestExecuteCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{"unknown command", "x 1 1"},
		{"missing args", "o 1"},
		{"extra args", "g 1"},
		{"non-numeric x", "o a 1"},
		{"non-numeric y", "o 1 b"},
		{"empty", "   "},
	}

	field := testField(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := executeCommand(field, test.command)
			assert.Error(t, err)
		})
	}
}

func TestReadCommands(t *testing.T) {
	commands, err := readCommands(strings.NewReader("o 1 1\n\n  f 0 0  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"o 1 1", "f 0 0"}, commands)

	_, err = readCommands(strings.NewReader("\n \n"))
	assert.Error(t, err)
}
