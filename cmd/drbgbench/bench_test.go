// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/drbg"
	"github.com/decred/drbg/internal/bitstats"
	"github.com/decred/drbg/internal/progresslog"
	"github.com/decred/slog"
	"lukechampine.com/blake3"
)

// benchSeed is the seed used by the benchmark runner tests.
var benchSeed = []byte("drbgbench test seed with enough entropy bytes!!!")

// TestBenchmarkRun ensures the runner produces one result per generator and
// output length and that each result describes the output the generator
// produces for the same sequence of requests.
func TestBenchmarkRun(t *testing.T) {
	t.Parallel()

	bits := []uint{1, 8, 13, 1000}
	bench := &benchmark{
		kinds:       drbg.Kinds(),
		bits:        bits,
		seed:        benchSeed,
		fingerprint: blake256.Sum256,
		progress:    progresslog.New("Generated", slog.Disabled),
	}
	if got, want := bench.totalBits(), uint64(1022*len(drbg.Kinds())); got != want {
		t.Fatalf("mismatched total bits: got %d, want %d", got, want)
	}

	results, err := bench.run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(drbg.Kinds())*len(bits) {
		t.Fatalf("unexpected number of results: got %d, want %d",
			len(results), len(drbg.Kinds())*len(bits))
	}

	for i, kind := range drbg.Kinds() {
		g, err := drbg.New(kind, benchSeed)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", kind, err)
		}
		for j, numBits := range bits {
			g.Reseed(benchSeed)
			output := g.Generate(numBits)

			r := &results[i*len(bits)+j]
			if r.name != g.Name() {
				t.Errorf("%v/%d: mismatched name: got %q, want %q", kind,
					numBits, r.name, g.Name())
			}
			if r.numBits != numBits {
				t.Errorf("%v/%d: mismatched bits: got %d", kind, numBits,
					r.numBits)
			}
			if r.stateSize != g.StateSize() {
				t.Errorf("%v/%d: mismatched state size: got %d, want %d",
					kind, numBits, r.stateSize, g.StateSize())
			}
			if r.outputSize != len(output) {
				t.Errorf("%v/%d: mismatched output size: got %d, want %d",
					kind, numBits, r.outputSize, len(output))
			}
			wantDist := bitstats.Count(output, uint64(numBits))
			if r.dist != wantDist {
				t.Errorf("%v/%d: mismatched distribution: got %+v, want %+v",
					kind, numBits, r.dist, wantDist)
			}
			if r.dist.Total() != uint64(numBits) {
				t.Errorf("%v/%d: distribution covers %d bits", kind,
					numBits, r.dist.Total())
			}
			if r.fingerprint != blake256.Sum256(output) {
				t.Errorf("%v/%d: mismatched fingerprint", kind, numBits)
			}
		}
	}
}

// TestBenchmarkCanceled ensures the runner stops before issuing any further
// requests once the context is canceled.
func TestBenchmarkCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bench := &benchmark{
		kinds:       drbg.Kinds(),
		bits:        []uint{64},
		seed:        benchSeed,
		fingerprint: blake3.Sum256,
	}
	results, err := bench.run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("mismatched error: got %v, want %v", err, context.Canceled)
	}
	if len(results) != 0 {
		t.Fatalf("unexpected results after cancellation: %d", len(results))
	}
}

// TestLookupFingerprinter ensures the supported fingerprint functions are
// found and unknown names are rejected.
func TestLookupFingerprinter(t *testing.T) {
	t.Parallel()

	data := []byte("fingerprint")
	fn, err := lookupFingerprinter("blake256")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fn(data) != blake256.Sum256(data) {
		t.Fatal("blake256 fingerprint mismatch")
	}

	fn, err = lookupFingerprinter("blake3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fn(data) != blake3.Sum256(data) {
		t.Fatal("blake3 fingerprint mismatch")
	}

	if _, err := lookupFingerprinter("sha1"); err == nil {
		t.Fatal("did not receive expected error for unknown fingerprint")
	}
}

// TestThroughput ensures throughput is reported in bits per microsecond.
func TestThroughput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		numBits uint
		elapsed time.Duration
		want    float64
	}{{
		name:    "zero duration",
		numBits: 1000,
		want:    0,
	}, {
		name:    "one bit per microsecond",
		numBits: 1000,
		elapsed: time.Millisecond,
		want:    1,
	}, {
		name:    "fractional",
		numBits: 5,
		elapsed: 2 * time.Microsecond,
		want:    2.5,
	}}

	for _, test := range tests {
		r := result{numBits: test.numBits, elapsed: test.elapsed}
		if got := r.throughput(); got != test.want {
			t.Errorf("%q: mismatched throughput: got %v, want %v", test.name,
				got, test.want)
		}
	}
}

// TestSummarize ensures results are aggregated per generator in order of
// first appearance.
func TestSummarize(t *testing.T) {
	t.Parallel()

	results := []result{{
		name:    "CTR-DRBG",
		numBits: 10,
		elapsed: 2 * time.Microsecond,
		dist:    bitstats.Distribution{Zeros: 5, Ones: 5},
	}, {
		name:    "HMAC-DRBG",
		numBits: 4,
		elapsed: time.Microsecond,
		dist:    bitstats.Distribution{Zeros: 1, Ones: 3},
	}, {
		name:    "CTR-DRBG",
		numBits: 10,
		elapsed: 3 * time.Microsecond,
		dist:    bitstats.Distribution{Zeros: 3, Ones: 7},
	}}

	summaries := summarize(results)
	if len(summaries) != 2 {
		t.Fatalf("unexpected number of summaries: %d", len(summaries))
	}

	ctr := summaries[0]
	if ctr.name != "CTR-DRBG" || ctr.runs != 2 || ctr.totalBits != 20 ||
		ctr.elapsed != 5*time.Microsecond {

		t.Fatalf("mismatched CTR summary: %+v", ctr)
	}
	if math.Abs(ctr.meanBias-0.1) > 1e-12 || math.Abs(ctr.maxBias-0.2) > 1e-12 {
		t.Fatalf("mismatched CTR bias: mean %v, max %v", ctr.meanBias,
			ctr.maxBias)
	}
	if ctr.throughput() != 4 {
		t.Fatalf("mismatched CTR throughput: %v", ctr.throughput())
	}

	hmac := summaries[1]
	if hmac.name != "HMAC-DRBG" || hmac.runs != 1 || hmac.totalBits != 4 {
		t.Fatalf("mismatched HMAC summary: %+v", hmac)
	}
	if math.Abs(hmac.meanBias-0.25) > 1e-12 || hmac.maxBias != hmac.meanBias {
		t.Fatalf("mismatched HMAC bias: mean %v, max %v", hmac.meanBias,
			hmac.maxBias)
	}

	if got := summarize(nil); len(got) != 0 {
		t.Fatalf("unexpected summaries for no results: %v", got)
	}
}
