// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/decred/drbg/internal/progresslog"
	"github.com/decred/drbg/internal/version"
	flags "github.com/jessevdk/go-flags"
)

// drbgbenchMain is the real main function for drbgbench.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func drbgbenchMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	cfg, _, err := loadConfig(appName, os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
		fmt.Fprintln(os.Stderr, err)
		var e errSuppressUsage
		if !errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return err
	}
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a context that will be canceled when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	ctx := shutdownListener()

	bnchLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if cfg.NoFileLogging {
		bnchLog.Info("File logging disabled")
	}

	seed, err := acquireSeed(cfg)
	if err != nil {
		bnchLog.Error(err)
		return err
	}
	fingerprint, err := lookupFingerprinter(cfg.Fingerprint)
	if err != nil {
		bnchLog.Error(err)
		return err
	}
	seedFingerprint := fingerprint(seed)
	bnchLog.Infof("Seed: %d bytes, fingerprint: %x", len(seed),
		seedFingerprint[:8])

	bench := &benchmark{
		kinds:       cfg.kinds,
		bits:        cfg.Bits,
		seed:        seed,
		fingerprint: fingerprint,
		progress:    progresslog.New("Generated", bnchLog),
	}
	results, err := bench.run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		bnchLog.Infof("Benchmark interrupted after %d %s", len(results),
			pickNoun(len(results), "run", "runs"))
	case err != nil:
		bnchLog.Errorf("Benchmark failed: %v", err)
		return err
	}
	logResults(bnchLog, results)
	return nil
}

func main() {
	if err := drbgbenchMain(); err != nil {
		os.Exit(1)
	}
}
