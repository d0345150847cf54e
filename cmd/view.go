package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"

	"github.com/yzhou/ashare"
	"github.com/yzhou/ashare/renderer"
)

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "run one valuation pass and print the table" }
func (*viewCmd) Usage() string {
	return `view

  Fetches the current quote for every held symbol, one request at a time,
  and prints the valuation table with the aggregate totals. A symbol the
  gateway cannot answer for is skipped with a warning and left out of the
  totals.

`
}

func (*viewCmd) SetFlags(*flag.FlagSet) {}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := DecodeConfig()
	quoter, err := NewQuoter(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.Len() == 0 {
		fmt.Println("The portfolio is empty. Use 'add' to record a purchase.")
		return subcommands.ExitSuccess
	}

	v := ashare.Valuate(p, quoter)
	renderer.Valuation(os.Stdout, v)
	renderer.Summary(os.Stdout, v, ashare.Percent(math.NaN()))
	return subcommands.ExitSuccess
}
