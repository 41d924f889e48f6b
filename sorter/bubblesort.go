package sorter

import "golang.org/x/exp/constraints"

// BubbleSortUntilNoChange repeats full passes over the array until a pass makes no swap.
type BubbleSortUntilNoChange[T constraints.Ordered] struct{}

func (BubbleSortUntilNoChange[T]) Name() string { return BubbleSortUntilNoChangeName }

func (BubbleSortUntilNoChange[T]) Sort(a []T) {
	for swapped := true; swapped; {
		swapped = false
		for i := 1; i < len(a); i++ {
			if a[i-1] > a[i] {
				a[i-1], a[i] = a[i], a[i-1]
				swapped = true
			}
		}
	}
}

// BubbleSortWhileNeeded only scans up to the last swap of the previous pass,
// since everything after it is already in place.
type BubbleSortWhileNeeded[T constraints.Ordered] struct{}

func (BubbleSortWhileNeeded[T]) Name() string { return BubbleSortWhileNeededName }

func (BubbleSortWhileNeeded[T]) Sort(a []T) {
	n := len(a)
	for n > 1 {
		last := 0
		for i := 1; i < n; i++ {
			if a[i-1] > a[i] {
				a[i-1], a[i] = a[i], a[i-1]
				last = i
			}
		}
		n = last
	}
}
