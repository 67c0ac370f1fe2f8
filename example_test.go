// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drbg_test

import (
	"fmt"

	"github.com/decred/drbg"
)

// This example demonstrates creating each generator from the same seed and
// requesting output from it.
func Example_generators() {
	seed := []byte("example seed which should hold real entropy")
	for _, kind := range drbg.Kinds() {
		g, err := drbg.New(kind, seed)
		if err != nil {
			fmt.Println(err)
			return
		}
		out := g.Generate(100)
		fmt.Printf("%s: %d bytes, state %d bytes\n", g.Name(), len(out),
			g.StateSize())
	}

	// Output:
	// CTR-DRBG: 13 bytes, state 56 bytes
	// Hash-DRBG: 13 bytes, state 118 bytes
	// HMAC-DRBG: 13 bytes, state 72 bytes
}

// This example demonstrates selecting a generator by name.
func ExampleParseKind() {
	kind, err := drbg.ParseKind("hmac")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(kind)

	_, err = drbg.ParseKind("aes")
	fmt.Println(err)

	// Output:
	// HMAC-DRBG
	// unknown generator name "aes"
}
