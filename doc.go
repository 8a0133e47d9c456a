// Package binaryheap implements an indirect binary min-heap: an array-backed
// priority queue that hands out a [Ticket] for every inserted element, so the
// element's priority can later be changed or the element removed in O(log n)
// without a linear search.
//
// Ordering is supplied by the caller as a three-way comparator: a negative
// result places the first argument nearer the root, positive places it
// farther, and zero means either order is acceptable. The comparator must be
// a consistent total preorder for the lifetime of the heap; when the state it
// reads changes for an element, the caller must immediately call
// [Heap.Update] with that element's ticket, otherwise the heap's ordering is
// silently broken. No ordering is guaranteed among elements that compare
// equal.
//
// Tickets are generation-counted references into a stable indirection table.
// They survive internal growth of the backing array, and a ticket whose
// element has been dequeued, removed, or cleared is detected and rejected
// rather than aliasing a reused slot. A ticket is only meaningful with the
// heap that issued it.
//
// A [Heap] performs no internal locking; callers mutating it from multiple
// goroutines must provide their own mutual exclusion.
package binaryheap
