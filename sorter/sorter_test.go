package sorter

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"sortbench/arraygen"
)

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range Algorithms {
		got, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}

	_, err := ParseAlgorithm("BogoSort")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))

	_, err = New[int](Algorithm("BogoSort"))
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestSorterNamesMatchAlgorithms(t *testing.T) {
	for _, alg := range Algorithms {
		s, err := New[int32](alg)
		require.NoError(t, err)
		named, ok := s.(interface{ Name() string })
		require.True(t, ok)
		assert.Equal(t, alg.String(), named.Name())
	}
}

func TestSortFiveInts(t *testing.T) {
	want := []int32{0, 1, 2, 3, 4}
	for _, alg := range Algorithms {
		s, err := New[int32](alg)
		require.NoError(t, err)

		best := []int32{0, 1, 2, 3, 4}
		s.Sort(best)
		assert.Equal(t, want, best, alg)

		worst := []int32{4, 3, 2, 1, 0}
		s.Sort(worst)
		assert.Equal(t, want, worst, alg)
	}
}

func TestSortEdgeInputs(t *testing.T) {
	inputs := [][]int{
		nil,
		{},
		{1},
		{2, 1},
		{3, 3, 3, 3},
		{5, 1, 5, 1, 5, 1, 5, 1, 5, 1, 5, 1, 5, 1, 5, 1, 5, 1, 5, 1},
	}
	for _, alg := range Algorithms {
		s, err := New[int](alg)
		require.NoError(t, err)
		for _, in := range inputs {
			got := slices.Clone(in)
			s.Sort(got)
			want := slices.Clone(in)
			slices.Sort(want)
			assert.Equal(t, want, got, "%s on %v", alg, in)
		}
	}
}

func TestSortRandomLargeInput(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	in := make([]int, 1000)
	for i := range in {
		in[i] = rng.Intn(200)
	}
	for _, alg := range Algorithms {
		s, err := New[int](alg)
		require.NoError(t, err)
		got := slices.Clone(in)
		s.Sort(got)
		assert.True(t, slices.IsSorted(got), alg)
		assert.ElementsMatch(t, in, got, alg)
	}
}

func TestSortGeneratedArrays(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, alg := range Algorithms {
		for _, size := range []int{1, 17, 64, 300} {
			for _, structure := range arraygen.Structures {
				t.Run(fmt.Sprintf("%s/%s/%d", alg, structure, size), func(t *testing.T) {
					sortGenerated[int32](t, rng, alg, size, structure, arraygen.Int)
					sortGenerated[int64](t, rng, alg, size, structure, arraygen.Long)
					sortGenerated[float32](t, rng, alg, size, structure, arraygen.Float)
					sortGenerated[float64](t, rng, alg, size, structure, arraygen.Double)
					sortGenerated[rune](t, rng, alg, size, structure, arraygen.Char)
					sortGenerated[string](t, rng, alg, size, structure, arraygen.String)
				})
			}
		}
	}
}

func sortGenerated[T constraints.Ordered](t *testing.T, rng *rand.Rand, alg Algorithm, size int, structure arraygen.Structure, kind arraygen.Kind) {
	t.Helper()

	spec, err := arraygen.NewSpec(size, structure, kind)
	require.NoError(t, err)
	g, err := arraygen.NewGenerator[T](spec, rng)
	require.NoError(t, err)
	s, err := New[T](alg)
	require.NoError(t, err)

	data := g.Generate()
	in := slices.Clone(data)
	s.Sort(data)

	assert.True(t, slices.IsSorted(data), "%s not sorted", kind)
	assert.ElementsMatch(t, in, data, "%s lost elements", kind)
}
