// Package playout runs games to completion -- either by uniform-random move
// choice or by exhaustive enumeration -- for solver diagnostics and bulk
// self-play data generation.
package playout

import (
	"math/rand"

	"github.com/herohde/congkak/pkg/board"
)

// Outcome is the terminal result of a single playout.
type Outcome struct {
	Final   board.State
	P0Score int
	P1Score int
	Plies   int
}

// RandomPlayout plays start to completion, picking uniformly among the
// legal moves at every turn, and returns the terminal outcome.
func RandomPlayout(start board.State, rules board.RuleConfig, rng *rand.Rand) Outcome {
	s := start
	plies := 0

	for !board.IsTerminal(s) {
		moves := board.GetLegalMoves(s)
		move := moves[rng.Intn(len(moves))]

		res, err := board.ApplyMove(s, move, rules)
		if err != nil {
			// GetLegalMoves only returns pits ApplyMove accepts.
			panic(err)
		}
		s = res.State
		plies++
	}

	p0, p1 := board.GetFinalScores(s)
	return Outcome{Final: s, P0Score: p0, P1Score: p1, Plies: plies}
}
