package engine

import "github.com/Kostjusz97/Task3/game"

// MoveSelector is an interface that abstracts how the user's move is
// obtained. Implementations own the retry loop: invalid input and help
// requests are handled internally, so the engine only ever sees a valid
// move index or a quit signal.
type MoveSelector interface {
	SelectMove() (index int, quit bool)
}

// Presenter abstracts the round's user-facing output so the round logic can
// be tested without a terminal.
type Presenter interface {
	ShowCommitment(tag string)
	ShowResult(userMove, computerMove string, outcome game.Outcome)
	ShowKey(keyHex string)
	ShowExit()
}
