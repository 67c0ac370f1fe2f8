// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/drbg"
	"github.com/decred/drbg/internal/bitstats"
	"github.com/decred/drbg/internal/progresslog"
	"github.com/decred/slog"
	"lukechampine.com/blake3"
)

// fingerprintFunc hashes generated output down to a short identifier that
// allows runs to be compared without storing their output.
type fingerprintFunc func(data []byte) [32]byte

// fingerprinters maps the supported fingerprint names to their hash functions.
var fingerprinters = map[string]fingerprintFunc{
	"blake256": blake256.Sum256,
	"blake3":   blake3.Sum256,
}

// lookupFingerprinter returns the fingerprint function with the given name.
func lookupFingerprinter(name string) (fingerprintFunc, error) {
	fn, ok := fingerprinters[name]
	if !ok {
		return nil, fmt.Errorf("unsupported fingerprint function %q", name)
	}
	return fn, nil
}

// result houses the measurements taken for a single generate request.
type result struct {
	name        string
	numBits     uint
	elapsed     time.Duration
	stateSize   int
	outputSize  int
	dist        bitstats.Distribution
	fingerprint [32]byte
}

// throughput returns the number of bits produced per microsecond.
func (r *result) throughput() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.numBits) / (float64(r.elapsed) / float64(time.Microsecond))
}

// summary aggregates the results of all runs of a single generator.
type summary struct {
	name      string
	runs      int
	totalBits uint64
	elapsed   time.Duration
	meanBias  float64
	maxBias   float64
}

// throughput returns the number of bits produced per microsecond across all
// runs of the generator.
func (s *summary) throughput() float64 {
	if s.elapsed <= 0 {
		return 0
	}
	return float64(s.totalBits) / (float64(s.elapsed) / float64(time.Microsecond))
}

// benchmark runs every requested output length against every requested
// generator.
type benchmark struct {
	kinds       []drbg.Kind
	bits        []uint
	seed        []byte
	fingerprint fingerprintFunc

	// progress is optional.
	progress *progresslog.Logger
}

// totalBits returns the total number of bits the benchmark requests across all
// generators.
func (b *benchmark) totalBits() uint64 {
	var perGenerator uint64
	for _, numBits := range b.bits {
		perGenerator += uint64(numBits)
	}
	return perGenerator * uint64(len(b.kinds))
}

// measure reseeds the generator with the benchmark seed and times a single
// request for numBits bits.
func (b *benchmark) measure(g drbg.Generator, numBits uint) result {
	g.Reseed(b.seed)

	start := time.Now()
	output := g.Generate(numBits)
	elapsed := time.Since(start)

	return result{
		name:        g.Name(),
		numBits:     numBits,
		elapsed:     elapsed,
		stateSize:   g.StateSize(),
		outputSize:  len(output),
		dist:        bitstats.Count(output, uint64(numBits)),
		fingerprint: b.fingerprint(output),
	}
}

// run executes the benchmark.  Shutdown requests are honored between generate
// requests, in which case the results gathered so far are returned along with
// the context error.
func (b *benchmark) run(ctx context.Context) ([]result, error) {
	total := b.totalBits()
	var done uint64
	progress := func() float64 {
		if total == 0 {
			return 1
		}
		return float64(done) / float64(total)
	}

	results := make([]result, 0, len(b.kinds)*len(b.bits))
	for _, kind := range b.kinds {
		g, err := drbg.New(kind, b.seed)
		if err != nil {
			return results, err
		}
		for _, numBits := range b.bits {
			if shutdownRequested(ctx) {
				return results, ctx.Err()
			}

			r := b.measure(g, numBits)
			results = append(results, r)
			done += uint64(numBits)
			if b.progress != nil {
				b.progress.LogProgress(r.name, uint64(numBits), false, progress)
			}
		}
	}
	return results, nil
}

// summarize aggregates the results per generator in the order the generators
// first appear.
func summarize(results []result) []summary {
	var summaries []summary
	index := make(map[string]int)
	for i := range results {
		r := &results[i]
		idx, ok := index[r.name]
		if !ok {
			idx = len(summaries)
			index[r.name] = idx
			summaries = append(summaries, summary{name: r.name})
		}

		s := &summaries[idx]
		bias := r.dist.Bias()
		s.runs++
		s.totalBits += uint64(r.numBits)
		s.elapsed += r.elapsed
		s.meanBias += bias
		if bias > s.maxBias {
			s.maxBias = bias
		}
	}
	for i := range summaries {
		summaries[i].meanBias /= float64(summaries[i].runs)
	}
	return summaries
}

// logResults logs every individual result followed by the per-generator
// summaries.
func logResults(log slog.Logger, results []result) {
	for i := range results {
		r := &results[i]
		log.Infof("%-9s %8d bits in %v (%.2f bits/us): state %d bytes, "+
			"output %d bytes, %d zeros, %d ones, ratio %.4f, bias %.4f, "+
			"fingerprint %x", r.name, r.numBits, r.elapsed, r.throughput(),
			r.stateSize, r.outputSize, r.dist.Zeros, r.dist.Ones,
			r.dist.Ratio(), r.dist.Bias(), r.fingerprint[:8])
	}
	for _, s := range summarize(results) {
		log.Infof("%s: %d %s, %d bits in %v (%.2f bits/us), mean bias "+
			"%.4f, max bias %.4f", s.name, s.runs, pickNoun(s.runs, "run",
			"runs"), s.totalBits, s.elapsed, s.throughput(), s.meanBias,
			s.maxBias)
	}
}

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
