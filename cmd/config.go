package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/yzhou/ashare"
)

type configCmd struct {
	key      string
	provider string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "store the quote gateway credential and provider" }
func (*configCmd) Usage() string {
	return `config -key <token> [-provider sina|netease]

  Stores the static API token forwarded to the quote gateway, and optionally
  which gateway to use. The configuration file is rewritten wholesale.

Usage Examples:
$ agu config -key d41d8cd98f00b204
$ agu config -key d41d8cd98f00b204 -provider netease

`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "key", "", "API token for the quote gateway (required)")
	f.StringVar(&c.provider, "provider", "", "Quote provider: sina (default) or netease")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.key == "" && c.provider == "" {
		fmt.Fprintln(os.Stderr, "Error: the -key flag is required.")
		return subcommands.ExitUsageError
	}
	if err := ashare.ValidateProvider(c.provider); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	cfg := DecodeConfig()
	if c.key != "" {
		cfg.APIKey = c.key
	}
	if c.provider != "" {
		cfg.Provider = c.provider
	}
	if err := EncodeConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Configuration saved to %s\n", *storeDir)
	return subcommands.ExitSuccess
}
