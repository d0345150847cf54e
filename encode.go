package ashare

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// This file contains code to persist the two documents — config.json and
// portfolio.json — as human-editable JSON in a single folder. Each mutation
// rewrites the whole file. The process is assumed to be the sole writer
// while it runs; external edits are simply picked up the next time the file
// is decoded (last writer wins, no locking).

const (
	configFilename    = "config.json"
	portfolioFilename = "portfolio.json"
)

// DefaultDir returns the default storage folder, under the user's home.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// no resolvable home, fall back to the working directory
		return ".agu"
	}
	return filepath.Join(home, ".agu")
}

// DecodeConfig reads config.json from dir. A missing file surfaces as
// fs.ErrNotExist so the caller can substitute DefaultConfig.
func DecodeConfig(dir string) (Config, error) {
	filename := filepath.Join(dir, configFilename)
	var c Config
	data, err := os.ReadFile(filename)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("format error in %q: %w", filename, err)
	}
	return c, nil
}

// EncodeConfig writes the whole config document, creating dir if needed.
func EncodeConfig(dir string, c Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create storage folder %q: %w", dir, err)
	}
	filename := filepath.Join(dir, configFilename)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(data, '\n'), 0644)
}

// DecodePortfolio reads portfolio.json from dir. A missing file surfaces as
// fs.ErrNotExist so the caller can substitute an empty portfolio; a corrupt
// file is an error, silently replacing it would destroy the holdings.
//
// Symbols are re-formatted on the way in, so a hand-edited entry like
// "600000.SH" still lands on its canonical key.
func DecodePortfolio(dir string) (*Portfolio, error) {
	filename := filepath.Join(dir, portfolioFilename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	list := make([]*Position, 0)
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	p := NewPortfolio()
	for _, pos := range list {
		pos.Symbol = Format(string(pos.Symbol))
		if p.Has(pos.Symbol) {
			return nil, fmt.Errorf("format error in %q: symbol %q is defined twice", filename, pos.Symbol)
		}
		p.insert(pos)
	}
	return p, nil
}

// EncodePortfolio writes the whole portfolio document, creating dir if
// needed. Positions are written in insertion order.
func EncodePortfolio(dir string, p *Portfolio) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create storage folder %q: %w", dir, err)
	}
	filename := filepath.Join(dir, portfolioFilename)
	data, err := json.MarshalIndent(p.positions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(data, '\n'), 0644)
}
