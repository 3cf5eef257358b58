package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/congkak/pkg/board"
	"github.com/herohde/congkak/pkg/eval"
	"github.com/seekerror/logw"
)

// Bound represents the bound of a -- possibly inexact -- search score, as
// recorded by alpha-beta: LowerBound when a maximizing node's score reached
// beta (score >= beta, the true value may be higher), UpperBound when a
// minimizing node's score fell to alpha (score <= alpha, the true value may
// be lower), and Exact for every other result.
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// DefaultTranspositionTableSize is the default entry cap: the board is tiny
// (16 cells) so the table is sized for entry count, not bytes, unlike the
// teacher's bitboard-keyed table.
const DefaultTranspositionTableSize = 1_000_000

// entry is a single transposition table record.
type entry struct {
	bound    Bound
	depth    int
	score    eval.Score
	bestMove int
	hasMove  bool
}

// TranspositionTable caches alpha-beta results by position hash. Must be
// thread-safe: the same table can be shared across concurrent playouts.
type TranspositionTable interface {
	// Lookup returns a usable score for hash at depth given [alpha,beta],
	// plus the best move on record (if any), and whether either is usable.
	// A score is usable only when its bound is wide enough to resolve the
	// window outright; the best move is returned independently for move
	// ordering even when the score is not directly usable.
	Lookup(hash board.Hash, depth int, alpha, beta eval.Score) (score eval.Score, usable bool, bestMove int, hasMove bool)
	// Store records a search result, subject to the table's replacement
	// policy: an existing entry for hash with greater depth is kept.
	Store(hash board.Hash, bound Bound, depth int, score eval.Score, bestMove int)
	// Clear empties the table.
	Clear()
	// Len returns the number of entries currently stored.
	Len() int
}

// table is a bounded map-backed transposition table. Unlike the teacher's
// lock-free bitboard-indexed array (sized for a hash space far larger than
// any table could hold), a Congkak hash collides rarely enough, and the
// table small enough (<=1M entries), that a plain mutex-guarded map with
// depth-preferred replacement -- mirroring the original solver's dict-based
// table -- is simpler and plenty fast.
type table struct {
	mu      sync.Mutex
	entries map[board.Hash]entry
	maxSize int
}

// NewTranspositionTable creates a TranspositionTable holding up to maxSize
// entries. maxSize <= 0 defaults to DefaultTranspositionTableSize.
func NewTranspositionTable(ctx context.Context, maxSize int) TranspositionTable {
	if maxSize <= 0 {
		maxSize = DefaultTranspositionTableSize
	}
	logw.Infof(ctx, "Allocating TT with up to %v entries", maxSize)
	return &table{
		entries: make(map[board.Hash]entry),
		maxSize: maxSize,
	}
}

func (t *table) Lookup(hash board.Hash, depth int, alpha, beta eval.Score) (eval.Score, bool, int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[hash]
	if !ok {
		return 0, false, 0, false
	}

	bestMove, hasMove := e.bestMove, e.hasMove
	if e.depth < depth {
		return 0, false, bestMove, hasMove
	}

	switch e.bound {
	case ExactBound:
		return e.score, true, bestMove, hasMove
	case LowerBound:
		if e.score >= beta {
			return e.score, true, bestMove, hasMove
		}
	case UpperBound:
		if e.score <= alpha {
			return e.score, true, bestMove, hasMove
		}
	}
	return 0, false, bestMove, hasMove
}

func (t *table) Store(hash board.Hash, bound Bound, depth int, score eval.Score, bestMove int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.entries[hash]; ok && existing.depth > depth {
		return // keep the deeper, more informative entry
	}

	if len(t.entries) >= t.maxSize {
		if _, exists := t.entries[hash]; !exists {
			// Arbitrary eviction: Go map iteration order is randomized per
			// run, which is enough to avoid pathological always-evict-same
			// behavior without tracking recency explicitly.
			for k := range t.entries {
				delete(t.entries, k)
				break
			}
		}
	}

	t.entries[hash] = entry{
		bound:    bound,
		depth:    depth,
		score:    score,
		bestMove: bestMove,
		hasMove:  true,
	}
}

func (t *table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[board.Hash]entry)
}

func (t *table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v/%v entries]", t.Len(), t.maxSize)
}

// NoTranspositionTable is a Nop implementation, used when UseTT is false.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Lookup(board.Hash, int, eval.Score, eval.Score) (eval.Score, bool, int, bool) {
	return 0, false, 0, false
}

func (NoTranspositionTable) Store(board.Hash, Bound, int, eval.Score, int) {}
func (NoTranspositionTable) Clear()                                       {}
func (NoTranspositionTable) Len() int                                     { return 0 }
