package search_test

import (
	"context"
	"testing"

	"github.com/herohde/congkak/pkg/board"
	"github.com/herohde/congkak/pkg/eval"
	"github.com/herohde/congkak/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTableReadWrite(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTranspositionTable(ctx, 1024)

	var h board.Hash = 0xdeadbeef

	_, usable, _, hasMove := tt.Lookup(h, 2, eval.NegInf, eval.Inf)
	assert.False(t, usable)
	assert.False(t, hasMove)

	tt.Store(h, search.ExactBound, 4, eval.Score(12), 3)

	score, usable, move, hasMove := tt.Lookup(h, 2, eval.NegInf, eval.Inf)
	assert.True(t, usable)
	assert.True(t, hasMove)
	assert.Equal(t, eval.Score(12), score)
	assert.Equal(t, 3, move)

	// A lookup asking for more depth than was stored is not usable.
	_, usable, move, hasMove = tt.Lookup(h, 10, eval.NegInf, eval.Inf)
	assert.False(t, usable)
	assert.True(t, hasMove) // best move still reported for ordering
	assert.Equal(t, 3, move)
}

func TestTranspositionTableBoundSemantics(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTranspositionTable(ctx, 1024)
	var h board.Hash = 1

	tt.Store(h, search.LowerBound, 4, eval.Score(5), 0)

	_, usable, _, _ := tt.Lookup(h, 4, eval.Score(0), eval.Score(10))
	assert.False(t, usable) // score 5 < beta 10: not high enough to resolve the window

	_, usable, _, _ = tt.Lookup(h, 4, eval.Score(0), eval.Score(4))
	assert.True(t, usable) // score 5 >= beta 4: cutoff confirmed
}

func TestTranspositionTableReplacementPrefersDeeper(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTranspositionTable(ctx, 1024)
	var h board.Hash = 7

	tt.Store(h, search.ExactBound, 5, eval.Score(1), 1)
	tt.Store(h, search.ExactBound, 2, eval.Score(2), 2) // shallower: ignored

	score, usable, move, _ := tt.Lookup(h, 5, eval.NegInf, eval.Inf)
	assert.True(t, usable)
	assert.Equal(t, eval.Score(1), score)
	assert.Equal(t, 1, move)
}

func TestTranspositionTableClear(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTranspositionTable(ctx, 1024)
	tt.Store(board.Hash(1), search.ExactBound, 1, eval.Score(1), 0)
	assert.Equal(t, 1, tt.Len())

	tt.Clear()
	assert.Equal(t, 0, tt.Len())
}

func TestNoTranspositionTableIsNoop(t *testing.T) {
	var tt search.NoTranspositionTable
	tt.Store(board.Hash(1), search.ExactBound, 5, eval.Score(1), 0)
	_, usable, _, hasMove := tt.Lookup(board.Hash(1), 1, eval.NegInf, eval.Inf)
	assert.False(t, usable)
	assert.False(t, hasMove)
	assert.Equal(t, 0, tt.Len())
}
