package sorter

import "golang.org/x/exp/constraints"

// SelectionSort moves the minimum of the unsorted suffix to its front on every pass.
type SelectionSort[T constraints.Ordered] struct{}

func (SelectionSort[T]) Name() string { return SelectionSortName }

func (SelectionSort[T]) Sort(a []T) {
	for i := 0; i < len(a)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
		}
	}
}
