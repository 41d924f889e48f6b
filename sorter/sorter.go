// Package sorter holds the in-place sorting algorithms timed by the harness.
package sorter

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// ErrUnknownAlgorithm is returned for algorithm names the harness does not know.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Sorter sorts a slice in place into non-decreasing order.
type Sorter[T constraints.Ordered] interface {
	Sort(a []T)
}

// Algorithm identifies one of the sorters. Its string form is the name
// written to the results file.
type Algorithm string

const (
	BubbleSortUntilNoChangeName = "BubbleSortUntilNoChange"
	BubbleSortWhileNeededName   = "BubbleSortWhileNeeded"
	QuickSortName               = "QuickSort"
	SelectionSortName           = "SelectionSort"
)

const (
	BubbleUntilNoChange Algorithm = BubbleSortUntilNoChangeName
	BubbleWhileNeeded   Algorithm = BubbleSortWhileNeededName
	Quick               Algorithm = QuickSortName
	Selection           Algorithm = SelectionSortName
)

// Algorithms is the default set, in the order the harness runs them.
var Algorithms = []Algorithm{BubbleUntilNoChange, BubbleWhileNeeded, Quick, Selection}

func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm maps a name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch alg := Algorithm(name); alg {
	case BubbleUntilNoChange, BubbleWhileNeeded, Quick, Selection:
		return alg, nil
	}
	return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// New returns the sorter for alg over element type T.
func New[T constraints.Ordered](alg Algorithm) (Sorter[T], error) {
	switch alg {
	case BubbleUntilNoChange:
		return BubbleSortUntilNoChange[T]{}, nil
	case BubbleWhileNeeded:
		return BubbleSortWhileNeeded[T]{}, nil
	case Quick:
		return QuickSort[T]{}, nil
	case Selection:
		return SelectionSort[T]{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", string(alg))
}
