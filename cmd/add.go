package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	symbol string
	name   string
	shares float64
	price  float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add shares to the portfolio, merging on repeated buys" }
func (*addCmd) Usage() string {
	return `add -symbol <code> -shares <count> -price <cost> [-name <label>]

  Records a purchase. Buying a symbol already held merges into the existing
  position: the purchase price becomes the weighted average of both cost
  bases. The symbol may be bare ("600000"), dotted ("600000.SH") or already
  prefixed ("sh600000").

Usage Examples:
$ agu add -symbol 600000 -shares 100 -price 10.00 -name 浦发银行
$ agu add -symbol 600000 -shares 100 -price 12.00

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock code (required)")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares bought (required)")
	f.Float64Var(&c.price, "price", 0, "Price paid per share (required)")
	f.StringVar(&c.name, "name", "", "Display label for the position")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.shares <= 0 || c.price <= 0 {
		fmt.Fprintln(os.Stderr, "Error: the -symbol, -shares and -price flags are required.")
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	pos := p.Add(c.symbol, decimal.NewFromFloat(c.shares), decimal.NewFromFloat(c.price), c.name)

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Added %s: %s shares at %s average cost\n",
		pos.Symbol, pos.Shares, pos.PurchasePrice.StringFixed(2))
	return subcommands.ExitSuccess
}
