// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import "iter"

// Iter iterates over all possible indices of the given shape, with axis 0 changing fastest.
//
// It yields the flat index (counter) and a slice of indices for each axis.
//
// To avoid allocating the slice of indices, the yielded indices is owned by the Iter() method:
// don't change it inside the loop.
func (s Shape) Iter() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		if !s.Ok() {
			return
		}
		rank := s.Rank()
		indices := make([]int, rank)
		if rank == 0 {
			_ = yield(0, indices)
			return
		}
		for _, dim := range s.Dimensions {
			if dim <= 0 {
				return
			}
		}

		flatIdx := 0
		for {
			if !yield(flatIdx, indices) {
				return
			}
			flatIdx++

			// Increment indices, carrying over to the next (slower) axis.
			axis := 0
			for ; axis < rank; axis++ {
				indices[axis]++
				if indices[axis] < s.Dimensions[axis] {
					break
				}
				indices[axis] = 0
			}
			if axis == rank {
				return
			}
		}
	}
}
