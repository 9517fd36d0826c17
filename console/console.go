// Package console implements the interactive side of a round: the move menu,
// the help table and the result lines.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Kostjusz97/Task3/game"
)

// Selector reads the user's move from an interactive stream. It owns the
// retry loop, so the engine never sees invalid input or help requests.
type Selector struct {
	moves    game.MoveSet
	relation game.Relation
	in       *bufio.Scanner
	out      io.Writer
}

// NewSelector creates a Selector over the given streams.
func NewSelector(moves game.MoveSet, relation game.Relation, in io.Reader, out io.Writer) *Selector {
	return &Selector{
		moves:    moves,
		relation: relation,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// SelectMove prints the menu and reads until the user enters a valid move
// number, or 0 to exit. "?" prints the help table and re-prompts. EOF on the
// input counts as exit.
func (s *Selector) SelectMove() (int, bool) {
	for {
		s.printMenu()
		fmt.Fprint(s.out, "Enter your move: ")

		if !s.in.Scan() {
			return 0, true
		}
		input := strings.TrimSpace(s.in.Text())

		if input == "?" {
			s.printHelp()
			continue
		}

		choice, err := strconv.Atoi(input)
		if err != nil || choice < 0 || choice > s.moves.Len() {
			continue
		}
		if choice == 0 {
			return 0, true
		}
		return choice - 1, false
	}
}

func (s *Selector) printMenu() {
	fmt.Fprintln(s.out, "Available moves:")
	for i := 0; i < s.moves.Len(); i++ {
		fmt.Fprintf(s.out, "%d - %s\n", i+1, s.moves.Label(i))
	}
	fmt.Fprintln(s.out, "0 - exit")
	fmt.Fprintln(s.out, "? - help")
}
