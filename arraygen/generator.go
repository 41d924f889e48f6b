package arraygen

import (
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// shuffleFraction is the number of random swaps per element for averageCase.
const shuffleFraction = 0.5

// NewRand returns a random source for generators. A zero seed uses the
// current time; any other seed gives reproducible arrays.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SequentialValue returns the index-to-value mapping of kind as a function
// producing T. It fails when T is not the Go type that kind maps to.
func SequentialValue[T constraints.Ordered](kind Kind) (func(i int) T, error) {
	var mapping any
	switch kind {
	case Int:
		mapping = func(i int) int32 { return int32(i) }
	case Long:
		mapping = func(i int) int64 { return int64(i) }
	case Float:
		mapping = func(i int) float32 { return float32(i) }
	case Double:
		mapping = func(i int) float64 { return float64(i) }
	case Char:
		mapping = charValue
	case String:
		mapping = func(i int) string { return string(charValue(i)) }
	default:
		return nil, errors.Mark(errors.Wrapf(ErrUnknownKind, "%q", string(kind)), ErrInvalidArgument)
	}

	fn, ok := mapping.(func(int) T)
	if !ok {
		var zero T
		return nil, errors.Wrapf(ErrUnsupportedKind, "%s values as %T", kind, zero)
	}
	return fn, nil
}

func charValue(i int) rune {
	return 'a' + rune(i%26)
}

// Generator produces fresh arrays for one Spec.
type Generator[T constraints.Ordered] struct {
	spec  Spec
	value func(int) T
	rng   *rand.Rand
}

// NewGenerator resolves the value mapping for spec once. rng may be nil.
func NewGenerator[T constraints.Ordered](spec Spec, rng *rand.Rand) (*Generator[T], error) {
	if spec.size <= 0 {
		return nil, errors.Mark(errors.Wrap(ErrInvalidSize, "spec was not built with NewSpec"), ErrInvalidArgument)
	}
	value, err := SequentialValue[T](spec.kind)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Generator[T]{spec: spec, value: value, rng: rng}, nil
}

// Generate returns a newly allocated array laid out according to the spec's structure.
func (g *Generator[T]) Generate() []T {
	switch g.spec.structure {
	case WorstCase:
		n := g.spec.size
		data := make([]T, n)
		for i := 0; i < n; i++ {
			data[i] = g.value(n - i - 1)
		}
		return data
	case AverageCase:
		data := g.Sequence()
		Shuffle(data, g.rng)
		return data
	default:
		return g.Sequence()
	}
}

// Sequence returns the ascending bestCase array.
func (g *Generator[T]) Sequence() []T {
	data := make([]T, g.spec.size)
	for i := range data {
		data[i] = g.value(i)
	}
	return data
}

// Shuffle swaps floor(len(data)*0.5) pairs of independently drawn indices
// and returns the number of swaps. The same index may be drawn twice, so the
// result is only roughly disordered, not a uniform permutation.
func Shuffle[T any](data []T, rng *rand.Rand) int {
	n := len(data)
	if n == 0 {
		return 0
	}
	swaps := int(float64(n) * shuffleFraction)
	for k := 0; k < swaps; k++ {
		i := rng.Intn(n)
		j := rng.Intn(n)
		data[i], data[j] = data[j], data[i]
	}
	return swaps
}
