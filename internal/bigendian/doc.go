// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bigendian provides arithmetic on fixed-width unsigned integers that
// are stored as big-endian byte slices.
//
// All operations are performed in place and are modular in the width of the
// destination, so any overflow beyond the most significant byte is silently
// discarded.
package bigendian
