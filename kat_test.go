// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drbg

import (
	"encoding/hex"
	"testing"
)

// TestKnownAnswers ensures every variant reproduces pinned output for a fixed
// sequence of requests.  The vectors guard against any change to the
// algorithms or the primitives beneath them.
func TestKnownAnswers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind        Kind     // generator kind
		seed        []byte   // construction seed
		wantOutputs []string // hex output of generate, generate, reseed+generate
	}{{
		kind: KindCTR,
		seed: testSeed,
		wantOutputs: []string{
			"a6e07ee6414c28179fb2e60473a6e07ea6e07ee65d4c18cad4fba7abbda6e07e",
			"0cb9290c9ab626b6e11f7182b00cb9290cb9290c4bad44aa602af297090cb929",
			"11aa6469db9d679ba6c1db878811aa6411aa646980a58e9777c511480311aa64",
		},
	}, {
		kind: KindHash,
		seed: testSeed,
		wantOutputs: []string{
			"48f1bd755b6b0625155a440483340d86901795fb5f804e0e5e2720d8c1692912",
			"27a3342a35d4bbb8e1dcd8ec0fc1a0d1a25cf906f0445d3b974dbddf4a3ba34e",
			"1b507573366fa89c40f9376aa8303954e3adcf3a8bfc24545268bf698e744dd0",
		},
	}, {
		kind: KindHMAC,
		seed: testSeed,
		wantOutputs: []string{
			"0ffb80875a3e9022a4941a3fa1b0d3611df14e1cf651a73ce9229b9f3ad56887",
			"08767656d3e9669eb668d1e1f5b80d27bb1aee12ff719eeb83e3dce006718c16",
			"ffb50aa9a667fbe8beb73ae461f96266650672957c8ced0c64017686fdf70a2e",
		},
	}, {
		kind: KindCTR,
		seed: nil,
		wantOutputs: []string{
			"dddddddd4d1f46d724dc1ce72cdddddddddddddd9925514abbe8f35506dddddd",
		},
	}, {
		kind: KindHash,
		seed: nil,
		wantOutputs: []string{
			"5f301cc565acddc20b53fcba1a4bfc95134a8879dcdb6b98231bad0a859cc728",
		},
	}, {
		kind: KindHMAC,
		seed: nil,
		wantOutputs: []string{
			"b44299907e4e42aa4fded5d6153e8bac3f35987bbe5fa08865c45339214784a2",
		},
	}}

	for _, test := range tests {
		g := mustNew(t, test.kind, test.seed)
		for i, want := range test.wantOutputs {
			if i == 2 {
				g.Reseed([]byte("fresh entropy"))
			}
			got := hex.EncodeToString(g.Generate(256))
			if got != want {
				t.Errorf("%v (seed len %d) output #%d: got %s, want %s",
					test.kind, len(test.seed), i, got, want)
			}
		}
	}
}
