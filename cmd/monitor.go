package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	"github.com/yzhou/ashare"
	"github.com/yzhou/ashare/renderer"
)

type monitorCmd struct {
	interval int
}

func (*monitorCmd) Name() string     { return "monitor" }
func (*monitorCmd) Synopsis() string { return "refresh the valuation table on a timer" }
func (*monitorCmd) Usage() string {
	return `monitor [-interval <seconds>]

  Redraws the valuation table every interval (default 20s) until
  interrupted. The portfolio file is re-read before every cycle, so edits
  made by another process are picked up on the next refresh. A cycle that
  runs long never overlaps the next one: a tick firing less than a second
  after the previous render is discarded.

Usage Examples:
$ agu monitor
$ agu monitor -interval 60

`
}

func (c *monitorCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.interval, "interval", 20, "Refresh interval in seconds")
}

// minimum spacing between two renders; ticks firing sooner are discarded.
const renderSpacing = time.Second

func (c *monitorCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.interval < 1 {
		fmt.Fprintln(os.Stderr, "Error: -interval must be at least 1 second.")
		return subcommands.ExitUsageError
	}

	cfg := DecodeConfig()
	quoter, err := NewQuoter(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var lastRender time.Time
	prevReturn := ashare.Percent(math.NaN())

	cycle := func() {
		// reload from disk so external edits are picked up; last writer wins
		p, err := DecodePortfolio()
		if err != nil {
			log.Printf("warning: skipping this cycle: %v", err)
			return
		}
		v := ashare.Valuate(p, quoter)
		fmt.Print("\033[H\033[2J")
		renderer.Valuation(os.Stdout, v)
		renderer.Summary(os.Stdout, v, prevReturn)
		fmt.Printf("Refreshing every %ds, interrupt to stop.\n", c.interval)
		prevReturn = v.TotalReturn
		lastRender = time.Now()
	}

	cycle()
	ticker := time.NewTicker(time.Duration(c.interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopped.")
			return subcommands.ExitSuccess
		case <-ticker.C:
			// a pass that ran long can leave a stale tick behind; skip it
			// instead of redrawing twice back to back.
			if time.Since(lastRender) < renderSpacing {
				continue
			}
			cycle()
		}
	}
}
