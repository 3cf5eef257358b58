// Package eval contains static position evaluators for the Congkak board.
package eval

import (
	"context"

	"github.com/herohde/congkak/pkg/board"
)

// Evaluator is a static position evaluator: it scores a board from a given
// player's point of view without searching any further.
type Evaluator interface {
	// Evaluate returns the position score for player, in seeds.
	Evaluate(ctx context.Context, s board.State, player board.Player) Score
}

// Simple evaluates a position purely by store difference: seeds already
// banked can never be lost, so this is the only fully "safe" signal.
type Simple struct{}

func (Simple) Evaluate(_ context.Context, s board.State, player board.Player) Score {
	return Score(s.GetStore(player) - s.GetStore(player.Opponent()))
}

// pitWeight discounts seeds still on the board relative to seeds already
// banked, since pit seeds can still be captured or forfeited away.
const pitWeight = 0.5

// storeReachBonus is awarded per pit whose seed count equals PitsPerPlayer
// minus the pit's index within the player's row (see PlayerPits). That count
// is not the pit's actual distance to the store under the sowing order in
// package board, so the bonus does not track which pits end in the store.
const storeReachBonus = 0.5

// Weighted extends Simple with a discounted pit-seed difference and a small
// per-pit bonus, storeReachBonus, keyed on PitsPerPlayer minus the row index.
type Weighted struct{}

func (Weighted) Evaluate(_ context.Context, s board.State, player board.Player) Score {
	myStore := s.GetStore(player)
	oppStore := s.GetStore(player.Opponent())

	myPits := s.PlayerPits(player)
	oppPits := s.PlayerPits(player.Opponent())

	var myPitTotal, oppPitTotal int
	for _, c := range myPits {
		myPitTotal += c
	}
	for _, c := range oppPits {
		oppPitTotal += c
	}

	var reach Score
	for i, seeds := range myPits {
		distanceToStore := board.PitsPerPlayer - i
		if seeds == distanceToStore {
			reach += storeReachBonus
		}
	}

	return Crop(Score(myStore-oppStore) + pitWeight*Score(myPitTotal-oppPitTotal) + reach)
}
