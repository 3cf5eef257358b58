// Package search contains the fixed-depth alpha-beta solver, its
// transposition table, and the result types they share.
package search

import (
	"fmt"
	"time"

	"github.com/herohde/congkak/pkg/eval"
)

// Result is the outcome of a single GetBestMove call.
type Result struct {
	Move  int // -1 if the position was already terminal
	Score eval.Score
	Nodes uint64
	Time  time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("move=%v score=%v nodes=%v time=%v", r.Move, r.Score, r.Nodes, r.Time)
}
