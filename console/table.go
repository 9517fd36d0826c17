package console

import (
	"fmt"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// printHelp renders the full outcome table. Rows are the user's moves,
// columns the computer's, each cell read from the row player's perspective.
func (s *Selector) printHelp() {
	fmt.Fprintln(s.out, "The result is from your point of view: the row is your move, the column is the computer's.")

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	caser := cases.Title(language.Und)

	fmt.Fprint(w, "v You \\ PC >")
	for j := 0; j < s.moves.Len(); j++ {
		fmt.Fprintf(w, "\t%s", caser.String(s.moves.Label(j)))
	}
	fmt.Fprintln(w)

	for i := 0; i < s.moves.Len(); i++ {
		fmt.Fprint(w, caser.String(s.moves.Label(i)))
		for j := 0; j < s.moves.Len(); j++ {
			fmt.Fprintf(w, "\t%s", s.relation.Outcome(i, j))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
