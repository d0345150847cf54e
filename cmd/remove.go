package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct {
	symbol string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete a position from the portfolio" }
func (*removeCmd) Usage() string {
	return `remove -symbol <code>

  Deletes the whole position matching the given code, or its display name as
  a convenience. There is no partial-share removal. Removing a symbol that is
  not held prints a notice and succeeds.

Usage Examples:
$ agu remove -symbol 600000
$ agu remove -symbol 浦发银行

`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock code or display name (required)")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: the -symbol flag is required.")
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	pos := p.Remove(c.symbol)
	if pos == nil {
		fmt.Printf("Position %q not found.\n", c.symbol)
		return subcommands.ExitSuccess
	}

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Removed %s\n", pos.Symbol)
	return subcommands.ExitSuccess
}
