// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/drbg"
	"github.com/decred/drbg/sampleconfig"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "drbgbench.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "drbgbench.log"
	defaultLogLevel       = "info"
	defaultSeedSize       = 48
	defaultFingerprint    = "blake256"
	defaultMaxLogRolls    = 8
	maxSeedSize           = 1 << 20
)

var (
	defaultHomeDir    = appDataDir("drbgbench")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)

	// defaultBits are the output lengths, in bits, requested from every
	// generator when no lengths are specified.
	defaultBits = []uint{10, 100, 1000, 10000, 100000, 1000000, 10000000}
)

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// config defines the configuration options for drbgbench.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile    string   `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion   bool     `short:"V" long:"version" description:"Display version information and exit"`
	Generators    []string `short:"g" long:"generator" description:"Generator to benchmark {ctr, hash, hmac}; may be specified multiple times (default: all)"`
	Bits          []uint   `short:"b" long:"bits" description:"Number of bits to request per run; may be specified multiple times (default: 10 through 10000000 in powers of ten)"`
	Seed          string   `long:"seed" description:"Hex-encoded seed used to instantiate every generator (default: random)"`
	SeedSize      int      `long:"seedsize" description:"Number of bytes in a randomly generated seed"`
	PromptSeed    bool     `long:"promptseed" description:"Prompt for a hex-encoded seed without echoing it to the terminal"`
	Fingerprint   string   `long:"fingerprint" description:"Hash function used to fingerprint generated output" choice:"blake256" choice:"blake3"`
	LogDir        string   `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool     `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`

	// The following fields are derived from the above fields by loadConfig.
	kinds []drbg.Kind
	seed  []byte
}

// appDataDir returns the per-user directory drbgbench stores its default
// configuration file and logs in.  It falls back to the current directory
// when the user configuration directory can not be determined.
func appDataDir(appName string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appName)
}

// cleanAndExpandPath expands environment variables and leading ~ in the passed
// path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// createDefaultConfigFile creates a config file at the provided path with the
// commented sample configuration when it does not already exist.
func createDefaultConfigFile(destPath string) error {
	// Create the destination directory if it does not exist.
	err := os.MkdirAll(filepath.Dir(destPath), 0700)
	if err != nil {
		return err
	}

	return os.WriteFile(destPath, []byte(sampleconfig.Drbgbench()), 0600)
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Create the default config file from the sample when it does not exist
//  4. Load configuration file overwriting defaults with any specified options
//  5. Parse CLI options and overwrite/add any specified options
//
// The above results in drbgbench functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take precedence.
//
// The seed is only decoded here when it was provided via --seed.  Prompting
// for and randomly generating a seed both happen later in acquireSeed.
func loadConfig(appName string, args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile:  defaultConfigFile,
		SeedSize:    defaultSeedSize,
		Fingerprint: defaultFingerprint,
		LogDir:      defaultLogDir,
		DebugLevel:  defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the help
	// message error can be ignored here since they will be caught by the final
	// parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	// Create a default config file when one does not exist and the user did
	// not specify an override.
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	if preCfg.ConfigFile == defaultConfigFile && !fileExists(configFile) {
		err := createDefaultConfigFile(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a default config file: "+
				"%v\n", err)
		}
	}

	// Load additional config from file.  A missing file is only an error when
	// it was explicitly specified.
	parser := newConfigParser(&cfg, flags.Default)
	if fileExists(configFile) {
		err := flags.NewIniParser(parser).ParseFile(configFile)
		if err != nil {
			str := "%s: failed to parse config file %s: %w"
			return nil, nil, fmt.Errorf(str, appName, configFile, err)
		}
	} else if preCfg.ConfigFile != defaultConfigFile {
		str := "%s: the specified config file %s does not exist"
		return nil, nil, fmt.Errorf(str, appName, configFile)
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	if len(remainingArgs) > 0 {
		str := "%s: unexpected positional arguments %q"
		return nil, nil, fmt.Errorf(str, appName, remainingArgs)
	}

	// Resolve the generators to benchmark.  All of them are used when none are
	// specified and duplicates are ignored.
	if len(cfg.Generators) == 0 {
		cfg.kinds = drbg.Kinds()
	}
	seen := make(map[drbg.Kind]struct{}, len(cfg.Generators))
	for _, name := range cfg.Generators {
		kind, err := drbg.ParseKind(name)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", appName, err)
		}
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		cfg.kinds = append(cfg.kinds, kind)
	}

	// Validate the requested output lengths.
	if len(cfg.Bits) == 0 {
		cfg.Bits = append([]uint(nil), defaultBits...)
	}
	for _, numBits := range cfg.Bits {
		if numBits == 0 {
			str := "%s: the number of bits to request must be positive"
			return nil, nil, fmt.Errorf(str, appName)
		}
	}

	// Validate the seed options.
	if cfg.Seed != "" && cfg.PromptSeed {
		str := "%s: the --seed and --promptseed options may not be used " +
			"together"
		return nil, nil, fmt.Errorf(str, appName)
	}
	if cfg.SeedSize < 1 || cfg.SeedSize > maxSeedSize {
		str := "%s: the seed size must be between 1 and %d bytes -- " +
			"parsed [%d]"
		return nil, nil, fmt.Errorf(str, appName, maxSeedSize, cfg.SeedSize)
	}
	if cfg.Seed != "" {
		cfg.seed, err = decodeSeed(cfg.Seed)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", appName, err)
		}
	}

	// Initialize log rotation.  After the log rotation has been initialized,
	// the logger variables may be used.
	if !cfg.NoFileLogging {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile, defaultMaxLogRolls); err != nil {
			return nil, nil, errSuppressUsage(err.Error())
		}
	}

	// Parse, validate, and set debug log level(s).
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", appName, err)
	}

	return &cfg, remainingArgs, nil
}
