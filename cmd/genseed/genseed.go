// Copyright (c) 2017-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/decred/drbg"
	flags "github.com/jessevdk/go-flags"
)

const (
	minSeedSize = 16
	maxSeedSize = 1024
)

type config struct {
	Size      int    `short:"s" long:"size" description:"Number of bytes per seed (16-1024)"`
	Count     int    `short:"n" long:"count" description:"Number of seeds to print"`
	From      string `long:"from" description:"Hex-encoded master seed to deterministically derive seeds from (default: random seeds)"`
	Generator string `short:"g" long:"generator" description:"Generator used to derive seeds from the master seed {ctr, hash, hmac}"`
}

// seedSource returns the reader seeds are drawn from.  Seeds are read from the
// process-wide cryptographically secure random source unless a master seed is
// configured, in which case they are derived from it by a deterministic
// generator of the configured kind.
func seedSource(cfg *config) (io.Reader, error) {
	if cfg.From == "" {
		return rand.Reader(), nil
	}

	master, err := hex.DecodeString(strings.TrimSpace(cfg.From))
	if err != nil {
		return nil, fmt.Errorf("master seed is not valid hex: %w", err)
	}
	kind, err := drbg.ParseKind(cfg.Generator)
	if err != nil {
		return nil, err
	}
	g, err := drbg.New(kind, master)
	if err != nil {
		return nil, err
	}
	return drbg.NewReader(g), nil
}

// generateSeeds returns the configured number of seeds of the configured size.
func generateSeeds(cfg *config) ([][]byte, error) {
	if cfg.Size < minSeedSize || cfg.Size > maxSeedSize {
		return nil, fmt.Errorf("seed size must be between %d and %d bytes "+
			"-- parsed [%d]", minSeedSize, maxSeedSize, cfg.Size)
	}
	if cfg.Count < 1 {
		return nil, errors.New("seed count must be positive")
	}

	src, err := seedSource(cfg)
	if err != nil {
		return nil, err
	}
	seeds := make([][]byte, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		seed := make([]byte, cfg.Size)
		if _, err := io.ReadFull(src, seed); err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

func main() {
	cfg := config{
		Size:      48,
		Count:     1,
		Generator: "hmac",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	seeds, err := generateSeeds(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, seed := range seeds {
		fmt.Println(hex.EncodeToString(seed))
	}
}
