package console

import (
	"strings"
	"testing"

	"github.com/Kostjusz97/Task3/game"

	"github.com/stretchr/testify/require"
)

func TestPresenter(t *testing.T) {
	t.Run("commitment line", func(t *testing.T) {
		out := &strings.Builder{}
		NewPresenter(out).ShowCommitment("abc123")
		require.Equal(t, "HMAC: abc123\n", out.String())
	})

	t.Run("key line", func(t *testing.T) {
		out := &strings.Builder{}
		NewPresenter(out).ShowKey("deadbeef")
		require.Equal(t, "HMAC key: deadbeef\n", out.String())
	})

	t.Run("exit acknowledgment", func(t *testing.T) {
		out := &strings.Builder{}
		NewPresenter(out).ShowExit()
		require.Equal(t, "Bye!\n", out.String())
	})

	t.Run("result lines", func(t *testing.T) {
		cases := []struct {
			outcome game.Outcome
			line    string
		}{
			{game.Win, "You win!"},
			{game.Lose, "You lose!"},
			{game.Draw, "It's a draw!"},
		}

		for _, tc := range cases {
			out := &strings.Builder{}
			NewPresenter(out).ShowResult("rock", "paper", tc.outcome)

			require.Equal(t, "Your move: rock\nComputer move: paper\n"+tc.line+"\n", out.String())
		}
	})
}
