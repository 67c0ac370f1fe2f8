// Copyright (c) 2017-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sampleconfig provides the commented example configuration files for
// the drbg commands.
package sampleconfig

import (
	_ "embed"
)

// sampleDrbgbenchConf is a string containing the commented example config for
// drbgbench.
//
//go:embed sample-drbgbench.conf
var sampleDrbgbenchConf string

// Drbgbench returns a string containing the commented example config for
// drbgbench.
func Drbgbench() string {
	return sampleDrbgbenchConf
}
