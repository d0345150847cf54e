package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/yzhou/ashare/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print the stored positions without fetching quotes" }
func (*listCmd) Usage() string {
	return `list

  Prints the portfolio as stored on disk: symbol, label, shares, average
  cost. No network access.

`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.Len() == 0 {
		fmt.Println("The portfolio is empty. Use 'add' to record a purchase.")
		return subcommands.ExitSuccess
	}
	renderer.Positions(os.Stdout, p.Positions())
	return subcommands.ExitSuccess
}
