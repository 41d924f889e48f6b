package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/stage"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []int{100, 1000, 10000}, cfg.Sizes)
	assert.Equal(t, []string{"bestCase", "worstCase", "averageCase"}, cfg.Structures)
	assert.Equal(t, []string{"int", "long", "float", "double", "char", "string"}, cfg.DataTypes)
	assert.Equal(t, []string{"BubbleSortUntilNoChange", "BubbleSortWhileNeeded", "QuickSort", "SelectionSort"}, cfg.Algorithms)
	assert.Equal(t, 110, cfg.Trials)
	assert.Equal(t, 10, cfg.WarmupTrials)
	assert.Equal(t, 100, cfg.RecordedTrials())
	assert.Equal(t, 216, cfg.Configurations())
	assert.Equal(t, "results.csv", cfg.OutputPath)
	assert.Equal(t, "memory", cfg.Storage)
}

func TestValidateRejectsBadShapes(t *testing.T) {
	cases := map[string]*Config{
		"no sizes":         NewConfig(WithSizes()),
		"no algorithms":    NewConfig(WithAlgorithms()),
		"negative warm-up": NewConfig(WithTrials(5, -1)),
		"all warm-up":      NewConfig(WithTrials(10, 10)),
		"empty output":     NewConfig(WithOutputPath("")),
		"unknown storage":  NewConfig(WithStorage(stage.Kind("redis"), "")),
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortbench.toml")
	contents := `
sizes = [10, 20]
data_types = ["char"]
trials = 12
warmup_trials = 2
storage = "pebble"
seed = 42
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []int{10, 20}, cfg.Sizes)
	assert.Equal(t, []string{"char"}, cfg.DataTypes)
	assert.Equal(t, 12, cfg.Trials)
	assert.Equal(t, 2, cfg.WarmupTrials)
	assert.Equal(t, "pebble", cfg.Storage)
	assert.Equal(t, int64(42), cfg.Seed)
	// untouched keys keep their defaults
	assert.Equal(t, "results.csv", cfg.OutputPath)
	assert.Len(t, cfg.Algorithms, 4)
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortbench.toml")
	require.NoError(t, os.WriteFile(path, []byte("trails = 5\n"), 0o644))

	_, err := LoadConfigFile(path)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
