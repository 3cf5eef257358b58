package search_test

import (
	"context"
	"testing"

	"github.com/herohde/congkak/pkg/board"
	"github.com/herohde/congkak/pkg/eval"
	"github.com/herohde/congkak/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverFindsWinningMove(t *testing.T) {
	ctx := context.Background()
	pits := make([]int, board.NumCells)
	pits[6] = 1
	pits[7] = 1
	pits[14] = 48
	pits[15] = 40
	s, err := board.FromPits(pits, board.Player0)
	require.NoError(t, err)

	solver := &search.Solver{Rules: board.DefaultRules(), MaxDepth: 4, Eval: eval.Weighted{}, UseTT: true}
	res, err := solver.GetBestMove(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Move)
}

func TestSolverAvoidsLosing(t *testing.T) {
	ctx := context.Background()
	pits := make([]int, board.NumCells)
	pits[0] = 1
	pits[6] = 1
	pits[7] = 1
	pits[14] = 45
	pits[15] = 40
	s, err := board.FromPits(pits, board.Player0)
	require.NoError(t, err)

	solver := &search.Solver{Rules: board.DefaultRules(), MaxDepth: 4, Eval: eval.Weighted{}, UseTT: true}
	res, err := solver.GetBestMove(ctx, s)
	require.NoError(t, err)
	assert.Contains(t, board.GetLegalMoves(s), res.Move)
}

func TestSolverReturnsNoneOnTerminal(t *testing.T) {
	ctx := context.Background()
	pits := make([]int, board.NumCells)
	pits[14] = 50
	pits[15] = 48
	s, err := board.FromPits(pits, board.Player0)
	require.NoError(t, err)
	require.True(t, board.IsTerminal(s))

	solver := &search.Solver{Rules: board.DefaultRules(), MaxDepth: 4, Eval: eval.Weighted{}, UseTT: true}
	res, err := solver.GetBestMove(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, -1, res.Move)
}

func TestSolverTranspositionTableReducesNodes(t *testing.T) {
	ctx := context.Background()
	s := board.Initial()

	solver := &search.Solver{Rules: board.DefaultRules(), MaxDepth: 4, Eval: eval.Weighted{}, UseTT: true}

	res1, err := solver.GetBestMove(ctx, s)
	require.NoError(t, err)
	nodes1 := solver.NodesSearched()

	res2, err := solver.GetBestMove(ctx, s)
	require.NoError(t, err)
	nodes2 := solver.NodesSearched()

	assert.Equal(t, res1.Move, res2.Move)
	assert.Less(t, nodes2, nodes1)
}

func TestSolverWithoutTranspositionTable(t *testing.T) {
	ctx := context.Background()
	s := board.Initial()

	solver := &search.Solver{Rules: board.DefaultRules(), MaxDepth: 3, Eval: eval.Weighted{}, UseTT: false}
	res, err := solver.GetBestMove(ctx, s)
	require.NoError(t, err)
	assert.Contains(t, board.GetLegalMoves(s), res.Move)
}

func TestSolverDepthAffectsNodeCount(t *testing.T) {
	ctx := context.Background()
	s := board.Initial()

	shallow := &search.Solver{Rules: board.DefaultRules(), MaxDepth: 2, Eval: eval.Weighted{}}
	deep := &search.Solver{Rules: board.DefaultRules(), MaxDepth: 6, Eval: eval.Weighted{}}

	_, err := shallow.GetBestMove(ctx, s)
	require.NoError(t, err)
	_, err = deep.GetBestMove(ctx, s)
	require.NoError(t, err)

	assert.Greater(t, deep.NodesSearched(), shallow.NodesSearched())
}
