// perft is a move-generation regression tool: it counts leaf positions
// reachable at increasing depths from a Congkak start position, the way a
// chess perft counts leaf nodes, in order to catch sowing/capture/forfeit
// regressions by node-count drift rather than by hand.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/herohde/congkak/pkg/board"
	"github.com/herohde/congkak/pkg/playout"
	"github.com/seekerror/logw"
)

var (
	depth               = flag.Int("depth", 6, "Search depth")
	captureRequiresLoop = flag.Bool("capture_requires_loop", false, "Require a full loop through the store before capture is allowed")
	forfeitEnabled      = flag.Bool("forfeit", true, "Enable forfeit of seeds sown into the opponent's empty pit")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	rules := board.DefaultRules()
	rules.CaptureRequiresLoop = *captureRequiresLoop
	rules.ForfeitEnabled = *forfeitEnabled

	start := board.Initial()

	for i := 1; i <= *depth; i++ {
		begin := time.Now()
		nodes := playout.Perft(start, rules, i)
		duration := time.Since(begin)

		fmt.Printf("perft,%v,%v,%v\n", i, nodes, duration.Microseconds())
	}

	logw.Infof(ctx, "perft done: depth=%v", *depth)
}
