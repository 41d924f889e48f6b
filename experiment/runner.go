// Package experiment drives the sorting benchmark: it iterates every
// configuration, times the sorts and collects the results.
package experiment

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"sortbench/arraygen"
	"sortbench/sorter"
	"sortbench/stage"
)

// trialFunc runs one trial on a fresh array and returns the time spent sorting it.
type trialFunc func() (time.Duration, error)

// Runner executes the experiment described by a Config.
type Runner struct {
	cfg      *Config
	log      logrus.FieldLogger
	progress *Progress
	rng      *rand.Rand
	runID    string
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithLogger replaces the logrus standard logger.
func WithLogger(log logrus.FieldLogger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// WithProgressOutput redirects the progress bar, stdout by default.
func WithProgressOutput(w io.Writer) RunnerOption {
	return func(r *Runner) { r.progress = NewProgress(w) }
}

// NewRunner validates cfg and prepares a Runner.
func NewRunner(cfg *Config, opts ...RunnerOption) (*Runner, error) {
	if cfg == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:      cfg,
		log:      logrus.StandardLogger(),
		progress: NewProgress(os.Stdout),
		rng:      arraygen.NewRand(cfg.Seed),
		runID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RunID identifies this run in logs and scratch directory names.
func (r *Runner) RunID() string { return r.runID }

// Run executes every configuration in order algorithm, data type, size,
// structure. An invalid name in the config aborts the run with no results.
func (r *Runner) Run() ([]TrialResult, error) {
	algorithms := make([]sorter.Algorithm, len(r.cfg.Algorithms))
	for i, name := range r.cfg.Algorithms {
		alg, err := sorter.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algorithms[i] = alg
	}

	store, cleanup, err := r.openStore()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	total := r.cfg.Configurations()
	r.log.WithFields(logrus.Fields{
		"run":        r.runID,
		"configs":    total,
		"trials":     r.cfg.Trials,
		"warmup":     r.cfg.WarmupTrials,
		"storage":    r.cfg.Storage,
		"cpus":       runtime.NumCPU(),
		"gomaxprocs": runtime.GOMAXPROCS(0),
	}).Info("starting experiment")

	start := time.Now()
	results := make([]TrialResult, 0, total*r.cfg.RecordedTrials())
	index := 1
	for _, alg := range algorithms {
		for _, dataType := range r.cfg.DataTypes {
			for _, size := range r.cfg.Sizes {
				for _, structure := range r.cfg.Structures {
					spec, err := arraygen.ParseSpec(size, structure, dataType)
					if err != nil {
						return nil, errors.Wrapf(err, "configuration %d", index)
					}
					trial, err := r.newTrial(alg, spec, store)
					if err != nil {
						return nil, errors.Wrapf(err, "configuration %d", index)
					}
					times, err := r.timeTrials(trial)
					if err != nil {
						return nil, errors.Wrapf(err, "configuration %d", index)
					}

					for i, elapsed := range times[r.cfg.WarmupTrials:] {
						results = append(results, TrialResult{
							ExperimentIndex: index,
							Algorithm:       alg.String(),
							DataType:        dataType,
							Size:            size,
							Structure:       structure,
							Trial:           i + 1,
							Elapsed:         elapsed,
						})
					}

					r.progress.Update(index, total)
					r.logConfiguration(index, alg, spec, store)
					index++
				}
			}
		}
	}
	r.progress.Done()

	r.log.WithFields(logrus.Fields{
		"run":     r.runID,
		"results": humanize.Comma(int64(len(results))),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("experiment finished")
	return results, nil
}

// timeTrials runs all trials of one configuration, warm-up included.
func (r *Runner) timeTrials(trial trialFunc) ([]time.Duration, error) {
	times := make([]time.Duration, r.cfg.Trials)
	for i := range times {
		elapsed, err := trial()
		if err != nil {
			return nil, errors.Wrapf(err, "trial %d", i+1)
		}
		times[i] = elapsed
	}
	return times, nil
}

// openStore opens the staging backend, or returns a nil store for memory.
func (r *Runner) openStore() (stage.Store, func(), error) {
	kind := stage.Kind(r.cfg.Storage)
	if kind == stage.Memory {
		return nil, func() {}, nil
	}

	base := r.cfg.ScratchDir
	if base == "" {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "sortbench-"+r.runID)
	store, err := stage.Open(kind, dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, nil, err
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			r.log.WithError(err).Warn("closing staging store")
		}
		if err := os.RemoveAll(dir); err != nil {
			r.log.WithError(err).Warn("removing scratch dir")
		}
	}
	return store, cleanup, nil
}

func (r *Runner) logConfiguration(index int, alg sorter.Algorithm, spec arraygen.Spec, store stage.Store) {
	fields := logrus.Fields{
		"index":     index,
		"algorithm": alg.String(),
		"type":      spec.Kind(),
		"size":      spec.Size(),
		"structure": spec.Structure(),
	}
	if store != nil {
		if size, err := store.Footprint(); err == nil {
			fields["staged"] = humanize.Bytes(uint64(size))
		}
	}
	r.log.WithFields(fields).Debug("configuration done")
}

// newTrial resolves generator, sorter and codec for spec once, so trials do
// no per-element type dispatch.
func (r *Runner) newTrial(alg sorter.Algorithm, spec arraygen.Spec, store stage.Store) (trialFunc, error) {
	switch spec.Kind() {
	case arraygen.Int:
		return buildTrial[int32](alg, spec, r.rng, store)
	case arraygen.Long:
		return buildTrial[int64](alg, spec, r.rng, store)
	case arraygen.Float:
		return buildTrial[float32](alg, spec, r.rng, store)
	case arraygen.Double:
		return buildTrial[float64](alg, spec, r.rng, store)
	case arraygen.Char:
		return buildTrial[rune](alg, spec, r.rng, store)
	case arraygen.String:
		return buildTrial[string](alg, spec, r.rng, store)
	}
	return nil, errors.Wrapf(arraygen.ErrUnsupportedKind, "%s", spec.Kind())
}

func buildTrial[T constraints.Ordered](alg sorter.Algorithm, spec arraygen.Spec, rng *rand.Rand, store stage.Store) (trialFunc, error) {
	gen, err := arraygen.NewGenerator[T](spec, rng)
	if err != nil {
		return nil, err
	}
	s, err := sorter.New[T](alg)
	if err != nil {
		return nil, err
	}

	if store == nil {
		return func() (time.Duration, error) {
			data := gen.Generate()
			start := time.Now()
			s.Sort(data)
			return time.Since(start), nil
		}, nil
	}

	codec, err := stage.CodecFor[T](spec.Kind())
	if err != nil {
		return nil, err
	}
	return func() (time.Duration, error) {
		if err := stage.StageArray(store, codec, gen.Generate()); err != nil {
			return 0, err
		}
		data, err := stage.LoadArray(store, codec)
		if err != nil {
			return 0, err
		}
		start := time.Now()
		s.Sort(data)
		return time.Since(start), nil
	}, nil
}
