// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"encoding/binary"
	"math"

	"github.com/gomlx/convtranspose/pkg/core/shapes"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// byteOffset returns the offset in bytes of the element at the given indices. Missing indices are 0.
func (t *Tensor) byteOffset(indices []int) int {
	if len(indices) > shapes.MaxRank {
		exceptions.Panicf("Tensor(%s): %d indices given for a tensor of max rank %d", t.shape, len(indices), shapes.MaxRank)
	}
	pos := t.offset
	for axis, idx := range indices {
		if idx < 0 || idx >= t.dims[axis] {
			exceptions.Panicf("Tensor(%s): index %v out-of-bounds", t.shape, indices)
		}
		pos += idx * t.strides[axis]
	}
	return pos
}

// byteOffset4 is the fast path of byteOffset for exactly 4 indices.
func (t *Tensor) byteOffset4(i0, i1, i2, i3 int) int {
	if uint(i0) >= uint(t.dims[0]) || uint(i1) >= uint(t.dims[1]) ||
		uint(i2) >= uint(t.dims[2]) || uint(i3) >= uint(t.dims[3]) {
		exceptions.Panicf("Tensor(%s): index [%d %d %d %d] out-of-bounds", t.shape, i0, i1, i2, i3)
	}
	return t.offset + i0*t.strides[0] + i1*t.strides[1] + i2*t.strides[2] + i3*t.strides[3]
}

// load decodes the element stored at the given byte position.
func (t *Tensor) load(pos int) float32 {
	switch t.shape.DType {
	case dtypes.Float32:
		return math.Float32frombits(binary.LittleEndian.Uint32(t.data[pos:]))
	case dtypes.Float16:
		return float16.Frombits(binary.LittleEndian.Uint16(t.data[pos:])).Float32()
	case dtypes.BFloat16:
		return bfloat16.BFloat16(binary.LittleEndian.Uint16(t.data[pos:])).Float32()
	}
	exceptions.Panicf("Tensor(%s): dtype not supported", t.shape)
	return 0
}

// store encodes value at the given byte position, rounding it to the storage dtype.
func (t *Tensor) store(pos int, value float32) {
	switch t.shape.DType {
	case dtypes.Float32:
		binary.LittleEndian.PutUint32(t.data[pos:], math.Float32bits(value))
	case dtypes.Float16:
		binary.LittleEndian.PutUint16(t.data[pos:], float16.Fromfloat32(value).Bits())
	case dtypes.BFloat16:
		binary.LittleEndian.PutUint16(t.data[pos:], uint16(bfloat16.FromFloat32(value)))
	default:
		exceptions.Panicf("Tensor(%s): dtype not supported", t.shape)
	}
}

// At returns the element at the given indices, converted to float32.
//
// Fewer indices than the rank can be given, in which case the missing trailing ones are 0.
// It panics if an index is out-of-bounds.
func (t *Tensor) At(indices ...int) float32 {
	return t.load(t.byteOffset(indices))
}

// Set the element at the given indices, converting value to the tensor's dtype.
// It panics if an index is out-of-bounds.
func (t *Tensor) Set(value float32, indices ...int) {
	t.store(t.byteOffset(indices), value)
}

// At4 is the fast path of At, taking always 4 indices (use 0 for the axes beyond the rank).
func (t *Tensor) At4(i0, i1, i2, i3 int) float32 {
	return t.load(t.byteOffset4(i0, i1, i2, i3))
}

// Set4 is the fast path of Set, taking always 4 indices (use 0 for the axes beyond the rank).
func (t *Tensor) Set4(value float32, i0, i1, i2, i3 int) {
	t.store(t.byteOffset4(i0, i1, i2, i3), value)
}

// Float32s returns a copy of the tensor values converted to float32, in logical order (axis 0 fastest),
// independent of the strides of the tensor.
func (t *Tensor) Float32s() []float32 {
	values := make([]float32, t.Size())
	for flatIdx, indices := range t.shape.Iter() {
		values[flatIdx] = t.At(indices...)
	}
	return values
}
