// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/decred/dcrd/crypto/rand"
	"golang.org/x/term"
)

// decodeSeed decodes a hex-encoded seed.  Surrounding whitespace and an
// optional 0x prefix are ignored.
func decodeSeed(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, errors.New("the seed must not be empty")
	}
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("the seed is not valid hex: %w", err)
	}
	if len(seed) > maxSeedSize {
		str := "the seed must not exceed %d bytes -- parsed %d bytes"
		return nil, fmt.Errorf(str, maxSeedSize, len(seed))
	}
	return seed, nil
}

// randomSeed returns a new seed of the given size read from the process-wide
// cryptographically secure random source.
func randomSeed(size int) []byte {
	seed := make([]byte, size)
	rand.Read(seed)
	return seed
}

// promptSeed reads a hex-encoded seed from the terminal attached to standard
// input without echoing it.
func promptSeed() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("--promptseed requires standard input to " +
			"be a terminal")
	}

	fmt.Fprint(os.Stderr, "Seed (hex): ")
	input, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("unable to read seed: %w", err)
	}
	defer func() {
		for i := range input {
			input[i] = 0
		}
	}()
	return decodeSeed(string(input))
}

// acquireSeed returns the seed every generator is instantiated and reseeded
// with.  It is the seed provided on the command line or in the config file
// when there is one, the seed entered at the prompt when requested, and a
// freshly generated random seed otherwise.
func acquireSeed(cfg *config) ([]byte, error) {
	switch {
	case cfg.seed != nil:
		return cfg.seed, nil
	case cfg.PromptSeed:
		return promptSeed()
	}
	return randomSeed(cfg.SeedSize), nil
}
