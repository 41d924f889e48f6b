package sorter

import "golang.org/x/exp/constraints"

// insertionCutoff is the range length at or below which quicksort switches to insertion sort.
const insertionCutoff = 16

// QuickSort is a hybrid quicksort: median-of-three pivot, 3-way partitioning
// and insertion sort for short ranges.
type QuickSort[T constraints.Ordered] struct{}

func (QuickSort[T]) Name() string { return QuickSortName }

func (QuickSort[T]) Sort(a []T) {
	if len(a) < 2 {
		return
	}
	quickSort(a, 0, len(a)-1)
}

func quickSort[T constraints.Ordered](a []T, low, high int) {
	for low < high {
		if high-low+1 <= insertionCutoff {
			insertionSort(a, low, high)
			return
		}

		lt, gt := partition3Way(a, low, high)

		// recurse into the smaller side, loop on the larger one
		if lt-low < high-gt {
			quickSort(a, low, lt-1)
			low = gt + 1
		} else {
			quickSort(a, gt+1, high)
			high = lt - 1
		}
	}
}

// partition3Way splits a[low..high] into < pivot, == pivot, > pivot and
// returns the bounds of the middle block.
func partition3Way[T constraints.Ordered](a []T, low, high int) (int, int) {
	medianOfThree(a, low, low+(high-low)/2, high)
	pivot := a[low]

	lt := low      // a[low..lt-1] < pivot
	i := low + 1   // a[lt..i-1] == pivot
	gt := high + 1 // a[gt..high] > pivot

	for i < gt {
		switch {
		case a[i] < pivot:
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		case a[i] > pivot:
			gt--
			a[i], a[gt] = a[gt], a[i]
		default:
			i++
		}
	}

	return lt, gt - 1
}

// medianOfThree orders a[x], a[y], a[z] and moves the median to a[x].
func medianOfThree[T constraints.Ordered](a []T, x, y, z int) {
	if a[x] > a[y] {
		a[x], a[y] = a[y], a[x]
	}
	if a[y] > a[z] {
		a[y], a[z] = a[z], a[y]
	}
	if a[x] > a[y] {
		a[x], a[y] = a[y], a[x]
	}
	a[x], a[y] = a[y], a[x]
}

func insertionSort[T constraints.Ordered](a []T, low, high int) {
	for i := low + 1; i <= high; i++ {
		key := a[i]
		j := i - 1
		for j >= low && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
