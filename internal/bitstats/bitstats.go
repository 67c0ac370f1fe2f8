// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bitstats provides bit distribution statistics for generator output.
package bitstats

import (
	"math"
	"math/bits"
)

// Distribution describes how many zero and one bits were observed.
type Distribution struct {
	Zeros uint64
	Ones  uint64
}

// Count returns the distribution of the first numBits bits of data.  Bits are
// taken most significant first within each byte.  Counting stops at the end of
// data when numBits exceeds the available bits.
func Count(data []byte, numBits uint64) Distribution {
	if avail := uint64(len(data)) * 8; numBits > avail {
		numBits = avail
	}

	var ones uint64
	fullBytes := numBits / 8
	for _, b := range data[:fullBytes] {
		ones += uint64(bits.OnesCount8(b))
	}
	if rem := numBits % 8; rem != 0 {
		ones += uint64(bits.OnesCount8(data[fullBytes] >> (8 - rem)))
	}
	return Distribution{Zeros: numBits - ones, Ones: ones}
}

// Total returns the number of counted bits.
func (d Distribution) Total() uint64 {
	return d.Zeros + d.Ones
}

// Ratio returns the ratio of ones to zeros, or 0 when no zeros were counted.
func (d Distribution) Ratio() float64 {
	if d.Zeros == 0 {
		return 0
	}
	return float64(d.Ones) / float64(d.Zeros)
}

// Bias returns the absolute deviation of the fraction of ones from one half,
// or 0 when no bits were counted.
func (d Distribution) Bias() float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return math.Abs(0.5 - float64(d.Ones)/float64(total))
}
