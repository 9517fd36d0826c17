package game

// Outcome represents the result of one move played against another.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	default:
		return "Draw"
	}
}

// Relation is the complete win/lose/draw table for a move set, indexed by
// (own move position, other move position). Built once, never mutated.
type Relation [][]Outcome

// BuildRelation derives the relation from the circular order of the moves:
// each move beats the (N-1)/2 moves preceding it on the circle and loses to
// the (N-1)/2 following it. For rock, paper, scissors this reduces to the
// classic table: rock beats scissors and loses to paper.
func BuildRelation(moves MoveSet) Relation {
	n := moves.Len()
	rel := make(Relation, n)
	for i := range rel {
		rel[i] = make([]Outcome, n)
	}

	half := (n - 1) / 2
	for i := 0; i < n; i++ {
		for k := 1; k <= half; k++ {
			rel[i][(i-k+n)%n] = Win
			rel[i][(i+k)%n] = Lose
		}
	}
	return rel
}

// Outcome looks up the result of the own move against the other move.
func (r Relation) Outcome(own, other int) Outcome {
	return r[own][other]
}
