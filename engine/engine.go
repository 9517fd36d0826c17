package engine

import (
	"github.com/Kostjusz97/Task3/fairness"
	"github.com/Kostjusz97/Task3/game"
	"github.com/Kostjusz97/Task3/random"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type state int

const (
	stateStart state = iota
	stateCommitmentIssued
	stateAwaitingUserMove
	stateResolved
	stateAborted
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateCommitmentIssued:
		return "commitment_issued"
	case stateAwaitingUserMove:
		return "awaiting_user_move"
	case stateResolved:
		return "resolved"
	case stateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Round runs one commit-play-reveal cycle. The key is disclosed by the state
// machine only after the outcome is reported, never by caller discipline.
type Round struct {
	moves     game.MoveSet
	relation  game.Relation
	selector  MoveSelector
	presenter Presenter

	id    uuid.UUID
	state state
}

// NewRound initializes a round over the given move set and relation.
func NewRound(moves game.MoveSet, relation game.Relation, selector MoveSelector, presenter Presenter) *Round {
	return &Round{
		moves:     moves,
		relation:  relation,
		selector:  selector,
		presenter: presenter,
		id:        uuid.New(),
		state:     stateStart,
	}
}

// Play drives the round until it is resolved or aborted. The commitment tag
// is shown before the user is asked to move; the key only after the outcome.
// Only an entropy-source failure is returned as an error.
func (r *Round) Play() error {
	computer, err := random.Pick(r.moves.Len())
	if err != nil {
		return err
	}

	commitment, err := fairness.New(r.moves.Label(computer))
	if err != nil {
		return err
	}
	r.transition(stateCommitmentIssued)
	r.presenter.ShowCommitment(commitment.Tag())

	r.transition(stateAwaitingUserMove)
	user, quit := r.selector.SelectMove()
	if quit {
		r.transition(stateAborted)
		r.presenter.ShowExit()
		return nil
	}

	outcome := r.relation.Outcome(user, computer)
	r.transition(stateResolved)
	log.Debug().
		Stringer("round", r.id).
		Str("user", r.moves.Label(user)).
		Str("computer", r.moves.Label(computer)).
		Stringer("outcome", outcome).
		Msg("round resolved")

	r.presenter.ShowResult(r.moves.Label(user), r.moves.Label(computer), outcome)
	r.presenter.ShowKey(commitment.Reveal())
	return nil
}

func (r *Round) transition(next state) {
	log.Debug().Stringer("round", r.id).Stringer("from", r.state).Stringer("to", next).Msg("state transition")
	r.state = next
}
