package console

import (
	"strings"
	"testing"

	"github.com/Kostjusz97/Task3/game"

	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T, input string) (*Selector, *strings.Builder) {
	t.Helper()
	ms, err := game.NewMoveSet([]string{"rock", "paper", "scissors"})
	require.NoError(t, err)
	rel := game.BuildRelation(ms)

	out := &strings.Builder{}
	return NewSelector(ms, rel, strings.NewReader(input), out), out
}

func TestSelectMove(t *testing.T) {
	t.Run("valid selection maps to zero-based index", func(t *testing.T) {
		s, out := newTestSelector(t, "2\n")

		index, quit := s.SelectMove()
		require.False(t, quit)
		require.Equal(t, 1, index)

		menu := out.String()
		require.Contains(t, menu, "Available moves:")
		require.Contains(t, menu, "1 - rock")
		require.Contains(t, menu, "2 - paper")
		require.Contains(t, menu, "3 - scissors")
		require.Contains(t, menu, "0 - exit")
		require.Contains(t, menu, "? - help")
		require.Contains(t, menu, "Enter your move: ")
	})

	t.Run("invalid input re-prompts until valid", func(t *testing.T) {
		s, out := newTestSelector(t, "abc\n7\n-1\n3\n")

		index, quit := s.SelectMove()
		require.False(t, quit)
		require.Equal(t, 2, index)

		require.Equal(t, 4, strings.Count(out.String(), "Available moves:"),
			"menu is printed again on every re-prompt")
	})

	t.Run("zero signals exit", func(t *testing.T) {
		s, _ := newTestSelector(t, "0\n")

		_, quit := s.SelectMove()
		require.True(t, quit)
	})

	t.Run("EOF counts as exit", func(t *testing.T) {
		s, _ := newTestSelector(t, "")

		_, quit := s.SelectMove()
		require.True(t, quit)
	})

	t.Run("help prints the table and re-prompts", func(t *testing.T) {
		s, out := newTestSelector(t, "?\n1\n")

		index, quit := s.SelectMove()
		require.False(t, quit)
		require.Equal(t, 0, index)

		text := out.String()
		require.Contains(t, text, "v You \\ PC >")
		require.Contains(t, text, "Rock", "header labels are capitalized")
		require.Contains(t, text, "Paper")
		require.Contains(t, text, "Scissors")
		require.Equal(t, 2, strings.Count(text, "Available moves:"),
			"menu is shown again after help")
	})
}

func TestHelpTableRows(t *testing.T) {
	s, out := newTestSelector(t, "?\n0\n")

	_, quit := s.SelectMove()
	require.True(t, quit)

	var rockRow string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "Rock") {
			rockRow = line
			break
		}
	}
	require.NotEmpty(t, rockRow, "table must have a row for rock")

	fields := strings.Fields(rockRow)
	require.Equal(t, []string{"Rock", "Draw", "Lose", "Win"}, fields,
		"rock draws itself, loses to paper, beats scissors")
}
