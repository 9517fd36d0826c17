package console

import (
	"fmt"
	"io"

	"github.com/Kostjusz97/Task3/game"
)

// Presenter writes the round's protocol lines: the commitment tag before the
// user moves, the result and the key after.
type Presenter struct {
	out io.Writer
}

// NewPresenter creates a Presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) ShowCommitment(tag string) {
	fmt.Fprintf(p.out, "HMAC: %s\n", tag)
}

func (p *Presenter) ShowResult(userMove, computerMove string, outcome game.Outcome) {
	fmt.Fprintf(p.out, "Your move: %s\n", userMove)
	fmt.Fprintf(p.out, "Computer move: %s\n", computerMove)

	switch outcome {
	case game.Win:
		fmt.Fprintln(p.out, "You win!")
	case game.Lose:
		fmt.Fprintln(p.out, "You lose!")
	default:
		fmt.Fprintln(p.out, "It's a draw!")
	}
}

func (p *Presenter) ShowKey(keyHex string) {
	fmt.Fprintf(p.out, "HMAC key: %s\n", keyHex)
}

func (p *Presenter) ShowExit() {
	fmt.Fprintln(p.out, "Bye!")
}
