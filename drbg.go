// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drbg

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported generator algorithms.  The set of
// kinds is closed.
type Kind uint8

// These constants define the supported generator algorithms.
const (
	// KindCTR is the counter mode generator built on the block cipher.
	KindCTR Kind = iota

	// KindHash is the hash based generator built on SHA-256.
	KindHash

	// KindHMAC is the HMAC based generator built on HMAC-SHA256.
	KindHMAC

	// numKinds is the number of supported kinds.  This entry MUST be the
	// last entry in the enum.
	numKinds
)

// kindNames maps each kind to the name reported by its generators.
var kindNames = [numKinds]string{
	KindCTR:  "CTR-DRBG",
	KindHash: "Hash-DRBG",
	KindHMAC: "HMAC-DRBG",
}

// kindAliases maps the short, case-insensitive names accepted by ParseKind.
var kindAliases = map[string]Kind{
	"ctr":  KindCTR,
	"hash": KindHash,
	"hmac": KindHMAC,
}

// String returns the algorithm name for the kind.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Unknown Kind (%d)", uint8(k))
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the kind identified by name.  Both the algorithm names
// reported by String and the short aliases "ctr", "hash" and "hmac" are
// accepted without regard to case.
func ParseKind(name string) (Kind, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if kind, ok := kindAliases[lower]; ok {
		return kind, nil
	}
	for k := Kind(0); k < numKinds; k++ {
		if strings.ToLower(kindNames[k]) == lower {
			return k, nil
		}
	}
	str := fmt.Sprintf("unknown generator name %q", name)
	return 0, makeError(ErrUnknownKind, str)
}

// Generator is a deterministic random bit generator.
//
// The interface is implemented only by the generators in this package.
// Implementations are not safe for concurrent access.
type Generator interface {
	// Generate returns ceil(numBits/8) bytes of output and advances the
	// internal state.  A request for zero bits returns an empty slice and
	// still advances the state.
	Generate(numBits uint) []byte

	// Reseed mixes the provided seed into the internal state and resets the
	// reseed counter to 1.
	Reseed(seed []byte)

	// Name returns the algorithm name, which matches Kind().String().
	Name() string

	// StateSize returns the fixed size of the internal state in bytes.
	StateSize() int

	// Kind returns the algorithm implemented by the generator.
	Kind() Kind

	// reseedCount returns the number of generate requests since the last
	// seeding plus one.
	reseedCount() uint64
}

// Ensure every generator implements the interface.
var (
	_ Generator = (*CounterDRBG)(nil)
	_ Generator = (*HashDRBG)(nil)
	_ Generator = (*HMACDRBG)(nil)
)

// New returns a generator of the requested kind seeded with seed.  The seed
// may be any length, including empty, although the security of the output
// depends on the caller supplying at least the algorithm's seed length worth
// of entropy.
//
// An error of kind ErrUnknownKind is returned when kind is not one of the
// supported kinds.
func New(kind Kind, seed []byte) (Generator, error) {
	var g Generator
	switch kind {
	case KindCTR:
		g = NewCounterDRBG(seed)
	case KindHash:
		g = NewHashDRBG(seed)
	case KindHMAC:
		g = NewHMACDRBG(seed)
	default:
		str := fmt.Sprintf("unknown generator kind %d", uint8(kind))
		return nil, makeError(ErrUnknownKind, str)
	}
	log.Debugf("Created %s with %d byte seed", g.Name(), len(seed))
	return g, nil
}

// bytesForBits returns the number of bytes needed to hold numBits bits.
func bytesForBits(numBits uint) int {
	n := numBits / 8
	if numBits%8 != 0 {
		n++
	}
	return int(n)
}
