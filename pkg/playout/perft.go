package playout

import "github.com/herohde/congkak/pkg/board"

// Perft counts the number of leaf positions reachable from s in exactly
// depth plies, the way a chess perft counts leaf positions reached at a
// fixed ply -- useful here as a move-generation/rules regression check
// rather than a performance benchmark, since Congkak's branching factor is
// tiny.
func Perft(s board.State, rules board.RuleConfig, depth int) int64 {
	if depth == 0 {
		return 1
	}
	if board.IsTerminal(s) {
		return 0 // the game ended before depth plies: no leaf at depth
	}

	var nodes int64
	for _, move := range board.GetLegalMoves(s) {
		res, err := board.ApplyMove(s, move, rules)
		if err != nil {
			continue
		}
		nodes += Perft(res.State, rules, depth-1)
	}
	return nodes
}
