// Package cmd implements the CLI application to track an A-share portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/google/subcommands"

	"github.com/yzhou/ashare"
	"github.com/yzhou/ashare/netease"
	"github.com/yzhou/ashare/sina"
)

// Commands lists every subcommand; a main package registers them in this
// order and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&configCmd{},
	&addCmd{},
	&removeCmd{},
	&listCmd{},
	&viewCmd{},
	&monitorCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("dir", ashare.DefaultDir(), "Folder holding config.json and portfolio.json")

// DecodeConfig loads config.json. A missing or unreadable file yields the
// default record with a warning, and the default is written back so the file
// exists on disk after a first run.
func DecodeConfig() ashare.Config {
	c, err := ashare.DecodeConfig(*storeDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("warning, no config file yet, creating one with defaults")
		} else {
			log.Printf("warning, cannot read config: %v, rewriting it with defaults", err)
		}
		c = ashare.DefaultConfig()
		if err := ashare.EncodeConfig(*storeDir, c); err != nil {
			log.Printf("warning, cannot write default config: %v", err)
		}
		return c
	}
	return c
}

// EncodeConfig stores the whole config document.
func EncodeConfig(c ashare.Config) error { return ashare.EncodeConfig(*storeDir, c) }

// DecodePortfolio loads portfolio.json. When the file does not exist yet an
// empty portfolio is substituted and written back. A corrupt portfolio stays
// an error: replacing it silently would destroy the holdings.
func DecodePortfolio() (*ashare.Portfolio, error) {
	p, err := ashare.DecodePortfolio(*storeDir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, no portfolio file yet, creating an empty one")
		p = ashare.NewPortfolio()
		if err := ashare.EncodePortfolio(*storeDir, p); err != nil {
			log.Printf("warning, cannot write empty portfolio: %v", err)
		}
		return p, nil
	}
	return p, err
}

// EncodePortfolio stores the whole portfolio document.
func EncodePortfolio(p *ashare.Portfolio) error { return ashare.EncodePortfolio(*storeDir, p) }

// NewQuoter builds the quote client selected in the config.
func NewQuoter(c ashare.Config) (ashare.Quoter, error) {
	switch c.Provider {
	case "", ashare.ProviderSina:
		return sina.New(c.APIKey), nil
	case ashare.ProviderNetease:
		return netease.New(c.APIKey), nil
	}
	return nil, fmt.Errorf("unknown provider %q in config, run 'config -provider' to fix it", c.Provider)
}
