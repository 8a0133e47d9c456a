package binaryheap

import "golang.org/x/exp/constraints"

// Min returns a comparator that dequeues the smallest element first. It is a
// convenience for heaps over plainly ordered types; anything richer supplies
// its own comparator to [New].
func Min[T constraints.Ordered]() func(a, b T) int {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// Max returns a comparator that dequeues the largest element first.
func Max[T constraints.Ordered]() func(a, b T) int {
	return func(a, b T) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	}
}
