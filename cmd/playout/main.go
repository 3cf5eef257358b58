// playout runs batches of self-play games against the solver, or uniform
// random playouts, and reports score and node-count statistics. It plays
// the role the teacher's morlock UCI binary plays for chess: a standalone
// driver exercising the search stack end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/herohde/congkak/pkg/board"
	"github.com/herohde/congkak/pkg/eval"
	"github.com/herohde/congkak/pkg/playout"
	"github.com/herohde/congkak/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	games               = flag.Int("games", 100, "Number of games to play")
	depth               = flag.Int("depth", 8, "Solver search depth")
	random              = flag.Bool("random", false, "Play uniform-random moves instead of using the solver")
	useTT               = flag.Bool("tt", true, "Use a transposition table")
	weighted            = flag.Bool("weighted", true, "Use the weighted evaluator instead of the simple one")
	noise               = flag.Int("noise", 0, "Evaluation noise in seeds (zero if deterministic)")
	captureRequiresLoop = flag.Bool("capture_requires_loop", false, "Require a full loop through the store before capture is allowed")
	seed                = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: playout [options]

playout runs batches of Congkak games and reports score statistics.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "playout %v", version)

	rules := board.DefaultRules()
	rules.CaptureRequiresLoop = *captureRequiresLoop
	start := board.Initial()

	if *random {
		runRandomBatch(ctx, start, rules)
		return
	}
	runSolverBatch(ctx, start, rules)
}

func runRandomBatch(ctx context.Context, start board.State, rules board.RuleConfig) {
	outcomes, err := playout.BatchRandomPlayouts(ctx, start, rules, *games, *seed)
	if err != nil {
		logw.Exitf(ctx, "batch playout failed: %v", err)
	}

	var p0Wins, p1Wins, ties int
	for _, o := range outcomes {
		switch {
		case o.P0Score > o.P1Score:
			p0Wins++
		case o.P1Score > o.P0Score:
			p1Wins++
		default:
			ties++
		}
	}
	fmt.Printf("games=%v p0_wins=%v p1_wins=%v ties=%v\n", len(outcomes), p0Wins, p1Wins, ties)
}

func runSolverBatch(ctx context.Context, start board.State, rules board.RuleConfig) {
	var e eval.Evaluator = eval.Simple{}
	if *weighted {
		e = eval.Weighted{}
	}
	if *noise > 0 {
		e = eval.NewRandom(e, *noise, *seed)
	}

	var p0Wins, p1Wins, ties int
	var totalNodes uint64

	for i := 0; i < *games; i++ {
		s := start
		solver := &search.Solver{Rules: rules, MaxDepth: *depth, Eval: e, UseTT: *useTT}

		for !board.IsTerminal(s) {
			best, err := solver.GetBestMove(ctx, s)
			if err != nil {
				logw.Exitf(ctx, "search failed: %v", err)
			}
			if best.Move < 0 {
				break
			}
			mr, err := board.ApplyMove(s, best.Move, rules)
			if err != nil {
				logw.Exitf(ctx, "apply move failed: %v", err)
			}
			s = mr.State
			totalNodes += solver.NodesSearched()
		}

		p0, p1 := board.GetFinalScores(s)
		switch {
		case p0 > p1:
			p0Wins++
		case p1 > p0:
			p1Wins++
		default:
			ties++
		}
	}

	fmt.Printf("games=%v p0_wins=%v p1_wins=%v ties=%v total_nodes=%v\n", *games, p0Wins, p1Wins, ties, totalNodes)
}
