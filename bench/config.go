package bench

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
)

// Configuration keys read by ConfigFrom.
const (
	KeySizes  = "bench.sizes"  // comma separated list of sequence lengths
	KeySeed   = "bench.seed"   // seed for workload generation
	KeyRounds = "bench.rounds" // timing rounds per size, best one counts
	KeyVerify = "bench.verify" // compare tree and slice after each size
)

// Config configures a benchmark run.
type Config struct {
	// Sizes lists the number of insertions for each measurement.
	Sizes []int
	// Seed makes workloads reproducible. The workload for a size s uses
	// Seed+s, so different sizes do not share a prefix.
	Seed int64
	// Rounds is the number of timed repetitions per size.
	Rounds int
	// Verify requests an element-wise comparison of tree and slice.
	Verify bool
}

// DefaultConfig returns the configuration used for unset keys.
func DefaultConfig() Config {
	return Config{
		Sizes:  []int{1000, 10000, 100000},
		Seed:   1,
		Rounds: 3,
		Verify: true,
	}
}

// ConfigFrom reads a harness configuration from an application
// configuration. Keys not set in conf keep their default values.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg, nil
	}
	if conf.IsSet(KeySizes) {
		sizes, err := ParseSizes(conf.GetString(KeySizes))
		if err != nil {
			return cfg, err
		}
		cfg.Sizes = sizes
	}
	if conf.IsSet(KeySeed) {
		cfg.Seed = int64(conf.GetInt(KeySeed))
	}
	if conf.IsSet(KeyRounds) {
		cfg.Rounds = conf.GetInt(KeyRounds)
	}
	if conf.IsSet(KeyVerify) {
		cfg.Verify = conf.GetBool(KeyVerify)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseSizes parses a comma separated list of non-negative sequence lengths,
// e.g. "1000,10000,100000".
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid size %q", ErrInvalidConfig, field)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no sizes in %q", ErrInvalidConfig, s)
	}
	return sizes, nil
}

func (cfg Config) validate() error {
	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("%w: sizes are required", ErrInvalidConfig)
	}
	for _, n := range cfg.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, n)
		}
	}
	if cfg.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, is %d", ErrInvalidConfig, cfg.Rounds)
	}
	return nil
}
