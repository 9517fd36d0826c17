package game

import (
	"errors"
	"fmt"

	"github.com/Kostjusz97/Task3/utils"
)

var (
	ErrTooFewMoves   = errors.New("at least 3 moves are required")
	ErrEvenMoves     = errors.New("number of moves must be odd")
	ErrDuplicateMove = errors.New("duplicate move")
)

// MoveSet is an ordered list of distinct move labels. The order defines the
// circular adjacency the rule relation is derived from, so it never changes
// after construction.
type MoveSet struct {
	labels []string
}

// NewMoveSet validates the labels and builds an immutable move set.
// Labels are compared case-sensitively.
func NewMoveSet(labels []string) (MoveSet, error) {
	if len(labels) < 3 {
		return MoveSet{}, ErrTooFewMoves
	}
	if len(labels)%2 == 0 {
		return MoveSet{}, ErrEvenMoves
	}
	for i, label := range labels {
		if utils.FindIndex(labels[:i], label) != -1 {
			return MoveSet{}, fmt.Errorf("%w: %s", ErrDuplicateMove, label)
		}
	}

	ms := MoveSet{labels: make([]string, len(labels))}
	copy(ms.labels, labels)
	return ms, nil
}

// Len returns the number of moves.
func (ms MoveSet) Len() int {
	return len(ms.labels)
}

// Label returns the label at position i.
func (ms MoveSet) Label(i int) string {
	return ms.labels[i]
}

// Index resolves a label to its position, or -1 if the label is not in the set.
func (ms MoveSet) Index(label string) int {
	return utils.FindIndex(ms.labels, label)
}

// Labels returns a copy of the ordered labels.
func (ms MoveSet) Labels() []string {
	out := make([]string, len(ms.labels))
	copy(out, ms.labels)
	return out
}
