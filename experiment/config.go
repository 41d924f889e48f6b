package experiment

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"sortbench/arraygen"
	"sortbench/sorter"
	"sortbench/stage"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid experiment config")

// Config holds every experiment parameter. Names in Structures, DataTypes
// and Algorithms are checked when the run builds each configuration.
type Config struct {
	Sizes        []int    `toml:"sizes"`
	Structures   []string `toml:"structures"`
	DataTypes    []string `toml:"data_types"`
	Algorithms   []string `toml:"algorithms"`
	Trials       int      `toml:"trials"`        // per configuration, warm-up included
	WarmupTrials int      `toml:"warmup_trials"` // leading trials left out of the results
	OutputPath   string   `toml:"output"`
	Seed         int64    `toml:"seed"` // 0 picks a time-based seed
	Storage      string   `toml:"storage"`
	ScratchDir   string   `toml:"scratch_dir"` // empty means the OS temp dir
	Summary      bool     `toml:"summary"`
}

// DefaultConfig returns the full benchmark: 4 algorithms x 6 types x 3 sizes x 3 structures.
func DefaultConfig() *Config {
	return &Config{
		Sizes:        []int{100, 1000, 10000},
		Structures:   lo.Map(arraygen.Structures, func(s arraygen.Structure, _ int) string { return string(s) }),
		DataTypes:    lo.Map(arraygen.Kinds, func(k arraygen.Kind, _ int) string { return string(k) }),
		Algorithms:   lo.Map(sorter.Algorithms, func(a sorter.Algorithm, _ int) string { return a.String() }),
		Trials:       110,
		WarmupTrials: 10,
		OutputPath:   "results.csv",
		Storage:      string(stage.Memory),
		Summary:      true,
	}
}

// Option is a functional option for configuration
type Option func(*Config)

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSizes sets the array lengths to benchmark.
func WithSizes(sizes ...int) Option {
	return func(c *Config) { c.Sizes = sizes }
}

// WithStructures sets the structure names to generate.
func WithStructures(structures ...string) Option {
	return func(c *Config) { c.Structures = structures }
}

// WithDataTypes sets the element kind names to generate.
func WithDataTypes(types ...string) Option {
	return func(c *Config) { c.DataTypes = types }
}

// WithAlgorithms sets the sorter names to time.
func WithAlgorithms(algorithms ...string) Option {
	return func(c *Config) { c.Algorithms = algorithms }
}

// WithTrials sets the total and warm-up trial counts per configuration.
func WithTrials(trials, warmup int) Option {
	return func(c *Config) {
		c.Trials = trials
		c.WarmupTrials = warmup
	}
}

// WithOutputPath sets where the CSV is written.
func WithOutputPath(path string) Option {
	return func(c *Config) { c.OutputPath = path }
}

// WithSeed fixes the random source. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithStorage stages every array through the named backend before sorting it.
func WithStorage(kind stage.Kind, scratchDir string) Option {
	return func(c *Config) {
		c.Storage = string(kind)
		c.ScratchDir = scratchDir
	}
}

// LoadConfigFile reads a TOML file over the defaults. Keys missing from the
// file keep their default values.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Mark(errors.Newf("unknown config keys %v", undecoded), ErrInvalidConfig)
	}
	return cfg, nil
}

// Validate checks the shape of the configuration.
func (c *Config) Validate() error {
	switch {
	case len(c.Sizes) == 0, len(c.Structures) == 0, len(c.DataTypes) == 0, len(c.Algorithms) == 0:
		return errors.Wrap(ErrInvalidConfig, "sizes, structures, data types and algorithms must not be empty")
	case c.WarmupTrials < 0:
		return errors.Wrapf(ErrInvalidConfig, "negative warm-up trials %d", c.WarmupTrials)
	case c.Trials <= c.WarmupTrials:
		return errors.Wrapf(ErrInvalidConfig, "trials %d must exceed warm-up trials %d", c.Trials, c.WarmupTrials)
	case c.OutputPath == "":
		return errors.Wrap(ErrInvalidConfig, "empty output path")
	case !stage.Kind(c.Storage).Valid():
		return errors.Wrapf(ErrInvalidConfig, "storage %q, want one of %v", c.Storage, stage.Kinds)
	}
	return nil
}

// Configurations is the number of (algorithm, type, size, structure) tuples.
func (c *Config) Configurations() int {
	return len(c.Algorithms) * len(c.DataTypes) * len(c.Sizes) * len(c.Structures)
}

// RecordedTrials is the number of results kept per configuration.
func (c *Config) RecordedTrials() int {
	return c.Trials - c.WarmupTrials
}
