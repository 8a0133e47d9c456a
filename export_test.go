package binaryheap

import "fmt"

// CheckInvariants audits the structural invariants: every cell's table entry
// records its current offset, and no element outranks its parent. Exposed
// only to the package tests.
func CheckInvariants[T any](h *Heap[T]) error {
	for i := range h.slots {
		ref := h.slots[i].ref
		if ref < 0 || ref >= len(h.table) {
			return fmt.Errorf("slot %d references entry %d outside table of %d", i, ref, len(h.table))
		}
		if pos := h.table[ref].pos; pos != i {
			return fmt.Errorf("slot %d: table entry %d records position %d", i, ref, pos)
		}
		if i > 0 {
			parent := (i - 1) / 2
			if h.cmp(h.slots[i].item, h.slots[parent].item) < 0 {
				return fmt.Errorf("slot %d outranks its parent %d", i, parent)
			}
		}
	}
	return nil
}
