// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drbg

import "io"

// reader adapts a Generator to the io.Reader interface.
type reader struct {
	g Generator
}

// NewReader returns an io.Reader that fills every buffer passed to Read with a
// single generate request of len(p)*8 bits.  Since each Read advances the
// generator state, the produced stream depends on the sizes of the reads.
//
// The returned reader never errors and, like the generator it wraps, is not
// safe for concurrent access.
func NewReader(g Generator) io.Reader {
	return &reader{g: g}
}

// Read fills p with generator output.  It always returns len(p) and a nil
// error.
func (r *reader) Read(p []byte) (int, error) {
	return copy(p, r.g.Generate(uint(len(p))*8)), nil
}
