// Package config implements the CLI's flag/environment configuration
// layer, grounded on agbruneau-FibGo/internal/config/env.go: flags
// take precedence, then EnvPrefix-prefixed environment variables, then
// the compiled-in defaults below.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix namespaces every environment variable the CLI reads.
const EnvPrefix = "BIGNUM_"

// Config holds the calculator CLI's runtime settings.
type Config struct {
	// MillerRabinRounds is the default round count used when a
	// isprime command does not specify one explicitly.
	MillerRabinRounds int
	// PrimeBits is the default bit length used by the genprime
	// command when no length is given on the command line.
	PrimeBits int
	// Verbose sets the CLI logger to debug level.
	Verbose bool
	// Quiet suppresses the spinner and info-level logging.
	Quiet bool
}

// Defaults returns the CLI's compiled-in configuration.
func Defaults() Config {
	return Config{
		MillerRabinRounds: 20,
		PrimeBits:         256,
		Verbose:           false,
		Quiet:             false,
	}
}

// ParseConfig builds a Config from the program's defaults, overridden
// by environment variables, overridden in turn by explicitly-set
// command-line flags. fs must not have been parsed yet.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Defaults()

	fs.IntVar(&cfg.MillerRabinRounds, "rounds", cfg.MillerRabinRounds, "Miller-Rabin rounds for primality tests")
	fs.IntVar(&cfg.PrimeBits, "bits", cfg.PrimeBits, "bit length for random prime generation")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress progress output")

	applyEnvDefaults(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnvDefaults overwrites the flag defaults with environment
// variable values before fs.Parse runs, so that an explicit
// command-line flag still wins over the environment.
func applyEnvDefaults(fs *flag.FlagSet, cfg *Config) {
	if v, ok := getEnvInt("ROUNDS"); ok {
		cfg.MillerRabinRounds = v
		fs.Set("rounds", strconv.Itoa(v))
	}
	if v, ok := getEnvInt("BITS"); ok {
		cfg.PrimeBits = v
		fs.Set("bits", strconv.Itoa(v))
	}
	if v, ok := getEnvBool("VERBOSE"); ok {
		cfg.Verbose = v
		fs.Set("verbose", strconv.FormatBool(v))
	}
	if v, ok := getEnvBool("QUIET"); ok {
		cfg.Quiet = v
		fs.Set("quiet", strconv.FormatBool(v))
	}
}

func getEnvInt(key string) (int, bool) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func getEnvBool(key string) (bool, bool) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}
