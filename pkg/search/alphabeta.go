package search

import (
	"context"
	"time"

	"github.com/herohde/congkak/pkg/board"
	"github.com/herohde/congkak/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// terminalValue is the absolute magnitude used to scale a terminal outcome
// strictly beyond the range of any ordinary evaluation, with the final
// score difference folded in so that a bigger win still searches as better
// than a narrow one. Mirrors the "1000 + diff" scaling of the reference
// solver.
const terminalValue = 1000

// Solver runs a fixed-depth alpha-beta search with an optional
// transposition table. Unlike a negamax formulation, the tree is walked
// with a single fixed maximizing_player (the root's side to move) recorded
// up front: every node branches explicitly into a maximizing or minimizing
// step depending on whether the side to move at that node equals the root's
// side, rather than negating the score on every ply. This matches how a
// Congkak player would reason about the game (their own score vs. the
// opponent's), instead of the symmetric zero-sum framing chess search uses.
type Solver struct {
	Rules    board.RuleConfig
	MaxDepth int
	Eval     eval.Evaluator
	UseTT    bool

	tt    TranspositionTable
	nodes uint64
}

// GetBestMove returns the best move for state's side to move, or a Result
// with Move -1 if state is already terminal.
func (s *Solver) GetBestMove(ctx context.Context, state board.State) (Result, error) {
	start := time.Now()
	s.nodes = 0

	if s.tt == nil && s.UseTT {
		s.tt = NewTranspositionTable(ctx, DefaultTranspositionTableSize)
	}
	tt := s.tt
	if !s.UseTT || tt == nil {
		tt = NoTranspositionTable{}
	}

	if board.IsTerminal(state) {
		return Result{Move: -1, Time: time.Since(start)}, nil
	}

	r := &run{
		rules:  s.Rules,
		eval:   s.Eval,
		tt:     tt,
		maxing: state.Side(),
	}

	value, move := r.alphabeta(ctx, state, s.MaxDepth, eval.NegInf, eval.Inf)
	s.nodes = r.nodes

	elapsed := time.Since(start)
	logw.Debugf(ctx, "search: depth=%v nodes=%v time=%v", s.MaxDepth, s.nodes, elapsed)

	if move < 0 {
		return Result{Move: -1, Nodes: s.nodes, Time: elapsed}, nil
	}
	return Result{Move: move, Score: value, Nodes: s.nodes, Time: elapsed}, nil
}

// NodesSearched returns the node count from the most recent GetBestMove
// call.
func (s *Solver) NodesSearched() uint64 {
	return s.nodes
}

// ClearTT empties the solver's transposition table, if any.
func (s *Solver) ClearTT() {
	if s.tt != nil {
		s.tt.Clear()
	}
}

// run holds the mutable state of a single GetBestMove invocation.
type run struct {
	rules  board.RuleConfig
	eval   eval.Evaluator
	tt     TranspositionTable
	maxing board.Player // the root's side to move, fixed for the whole search

	nodes uint64
}

// alphabeta returns (value, best move) for state, where value is always
// from r.maxing's point of view regardless of whose turn it is at state.
func (r *run) alphabeta(ctx context.Context, state board.State, depth int, alpha, beta eval.Score) (eval.Score, int) {
	if contextx.IsCancelled(ctx) {
		return 0, -1
	}

	r.nodes++

	if board.IsTerminal(state) {
		return r.terminalValue(state), -1
	}
	if depth == 0 {
		return r.eval.Evaluate(ctx, state, r.maxing), -1
	}

	hash := state.Hash()
	score, usable, move, hasTTMove := r.tt.Lookup(hash, depth, alpha, beta)
	ttMove := move
	if usable {
		return score, ttMove
	}

	moves := board.GetLegalMoves(state)
	if hasTTMove {
		moves = moveToFront(moves, ttMove)
	}

	isMaximizing := state.Side() == r.maxing
	bestMove := moves[0]

	var value eval.Score
	var bound Bound

	if isMaximizing {
		value = eval.NegInf
		for _, move := range moves {
			res, err := board.ApplyMove(state, move, r.rules)
			if err != nil {
				continue
			}
			childValue, _ := r.alphabeta(ctx, res.State, depth-1, alpha, beta)
			if childValue > value {
				value = childValue
				bestMove = move
			}
			alpha = eval.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		if value >= beta {
			bound = LowerBound
		} else {
			bound = ExactBound
		}
	} else {
		value = eval.Inf
		for _, move := range moves {
			res, err := board.ApplyMove(state, move, r.rules)
			if err != nil {
				continue
			}
			childValue, _ := r.alphabeta(ctx, res.State, depth-1, alpha, beta)
			if childValue < value {
				value = childValue
				bestMove = move
			}
			beta = eval.Min(beta, value)
			if alpha >= beta {
				break
			}
		}
		if value <= alpha {
			bound = UpperBound
		} else {
			bound = ExactBound
		}
	}

	r.tt.Store(hash, bound, depth, value, bestMove)
	return value, bestMove
}

// terminalValue scores a terminal state from r.maxing's point of view,
// scaled well beyond any ordinary evaluation so a win always outsearches a
// merely good position.
func (r *run) terminalValue(state board.State) eval.Score {
	p0, p1 := board.GetFinalScores(state)
	diff := p0 - p1
	if r.maxing == board.Player1 {
		diff = p1 - p0
	}
	switch {
	case diff > 0:
		return eval.Score(terminalValue + diff)
	case diff < 0:
		return eval.Score(-terminalValue + diff)
	default:
		return 0
	}
}

// moveToFront reorders moves so that ttMove comes first, if present. A full
// priority-queue reordering (as the teacher's chess move list uses) is
// unwarranted here: a Congkak player has at most seven legal moves, so a
// single linear pass is both simpler and no slower.
func moveToFront(moves []int, ttMove int) []int {
	for i, m := range moves {
		if m == ttMove {
			if i == 0 {
				return moves
			}
			out := make([]int, len(moves))
			out[0] = m
			copy(out[1:], moves[:i])
			copy(out[1+i:], moves[i+1:])
			return out
		}
	}
	return moves
}
