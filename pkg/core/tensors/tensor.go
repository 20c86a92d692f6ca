// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tensors implement a `Tensor`, a strided view over a multidimensional array with up to 4 axes.
//
// A Tensor is defined by its shape (a data type and its axes' dimensions), a byte buffer, and the byte
// strides of each axis. Strides can be anything -- in particular the ones induced by an axes permutation --
// so the kernels never assume the data is packed (contiguous): all element accesses go through
// Tensor.At / Tensor.Set (or the At4 / Set4 fast paths), that compute the byte offset of the element
// as `offset + Σ indices[k] * strides[k]`.
//
// Values are always read and written as float32 (the accumulator type) and converted on the fly from/to
// the storage dtype. The supported storage dtypes are Float32, Float16 and BFloat16.
//
// There are various ways to construct a Tensor:
//
//   - New(shape shapes.Shape): creates a packed tensor with the given shape, and zero values.
//
//   - FromFlatData[T Supported](flat []T, dimensions ...int): creates a packed tensor with a copy of the
//     given flat values. Axis 0 is the fastest varying one. Example:
//
//     t, err := FromFlatData([]float32{0, 1, 2, 3, 4, 5}, 3, 2) // Length 3 with 2 channels.
//
//   - FromBytes(data []byte, shape shapes.Shape, strides []int, offset int): a view over a buffer owned by
//     someone else, with arbitrary strides.
//
//   - Tensor.Permute(axes ...int): a view of the same data with the axes permuted, without copying.
package tensors

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/gomlx/convtranspose/pkg/core/shapes"
	"github.com/gomlx/convtranspose/pkg/support/xslices"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Supported enumerates the Go types that can be used to create tensors from flat data.
type Supported interface {
	float32 | float16.Float16 | bfloat16.BFloat16
}

// IsSupportedDType returns whether a Tensor can be stored with the given dtype.
func IsSupportedDType(dtype dtypes.DType) bool {
	return dtype == dtypes.Float32 || dtype == dtypes.Float16 || dtype == dtypes.BFloat16
}

// Tensor is a strided view over a byte buffer: see package documentation.
//
// The shape of a Tensor is immutable. The contents can be changed with Set, but a Tensor doesn't do any
// synchronization: concurrent writers must write to different elements.
type Tensor struct {
	shape shapes.Shape

	// dims and strides are padded to MaxRank: missing axes have dimension 1 and stride 0.
	dims    [shapes.MaxRank]int
	strides [shapes.MaxRank]int

	// offset in bytes of the element at index (0, 0, 0, 0).
	offset int
	data   []byte
}

// New creates a packed Tensor with the given shape, filled with zeros.
//
// It panics if the dtype is not supported, see IsSupportedDType.
func New(shape shapes.Shape) *Tensor {
	if !IsSupportedDType(shape.DType) {
		exceptions.Panicf("tensors.New(%s): dtype %s not supported", shape, shape.DType)
	}
	data := make([]byte, shape.Memory())
	t, err := FromBytes(data, shape, shape.ByteStrides(), 0)
	if err != nil {
		panic(err)
	}
	return t
}

// FromFlatData creates a packed Tensor with the given dimensions, and a copy of the flat values given.
//
// The flat values are laid out with axis 0 varying fastest. If len(flat) doesn't match the product of
// the dimensions it returns an error (shapes.ErrInvalidShape).
func FromFlatData[T Supported](flat []T, dimensions ...int) (*Tensor, error) {
	if len(dimensions) > shapes.MaxRank {
		return nil, errors.Wrapf(shapes.ErrInvalidShape, "tensors.FromFlatData: rank %d > max rank %d", len(dimensions), shapes.MaxRank)
	}
	for _, dim := range dimensions {
		if dim <= 0 {
			return nil, errors.Wrapf(shapes.ErrInvalidShape, "tensors.FromFlatData: invalid dimensions %v", dimensions)
		}
	}
	if size := xslices.Product(dimensions); size != len(flat) {
		return nil, errors.Wrapf(shapes.ErrInvalidShape, "tensors.FromFlatData: dimensions %v require %d values, got %d",
			dimensions, size, len(flat))
	}
	var dtype dtypes.DType
	var encode func(buf []byte, idx int)
	switch values := any(flat).(type) {
	case []float32:
		dtype = dtypes.Float32
		encode = func(buf []byte, idx int) {
			binary.LittleEndian.PutUint32(buf[idx*4:], math.Float32bits(values[idx]))
		}
	case []float16.Float16:
		dtype = dtypes.Float16
		encode = func(buf []byte, idx int) { binary.LittleEndian.PutUint16(buf[idx*2:], values[idx].Bits()) }
	case []bfloat16.BFloat16:
		dtype = dtypes.BFloat16
		encode = func(buf []byte, idx int) { binary.LittleEndian.PutUint16(buf[idx*2:], uint16(values[idx])) }
	}
	t := New(shapes.Make(dtype, dimensions...))
	for idx := range flat {
		encode(t.data, idx)
	}
	return t, nil
}

// FromBytes creates a Tensor view over data, with the given shape, byte strides and byte offset of the
// first element.
//
// Strides can be any value (including negative or zero), but every addressable element must lie within
// data, otherwise it returns an error (shapes.ErrInvalidShape).
// It returns shapes.ErrTypeMismatch if the dtype is not supported.
//
// The data is not copied: the Tensor is a view of it.
func FromBytes(data []byte, shape shapes.Shape, strides []int, offset int) (*Tensor, error) {
	if !IsSupportedDType(shape.DType) {
		return nil, errors.Wrapf(shapes.ErrTypeMismatch, "tensors.FromBytes(%s): dtype not supported", shape)
	}
	if shape.Rank() > shapes.MaxRank {
		return nil, errors.Wrapf(shapes.ErrInvalidShape, "tensors.FromBytes(%s): rank > max rank %d", shape, shapes.MaxRank)
	}
	if len(strides) != shape.Rank() {
		return nil, errors.Wrapf(shapes.ErrInvalidShape, "tensors.FromBytes(%s): %d strides given, one per axis required",
			shape, len(strides))
	}
	t := &Tensor{shape: shape.Clone(), offset: offset, data: data}
	for axis := range shapes.MaxRank {
		t.dims[axis] = shape.DimOr1(axis)
		if axis < shape.Rank() {
			t.strides[axis] = strides[axis]
		}
		if t.dims[axis] <= 0 {
			return nil, errors.Wrapf(shapes.ErrInvalidShape, "tensors.FromBytes(%s): invalid dimensions", shape)
		}
	}
	lowest, highest, ok := t.addressRange()
	if !ok {
		return nil, errors.Wrapf(shapes.ErrInvalidShape,
			"tensors.FromBytes(%s): strides %v and offset %d overflow the addressable range", shape, strides, offset)
	}
	if lowest < 0 || highest > len(data)-int(shape.DType.Memory()) {
		return nil, errors.Wrapf(shapes.ErrInvalidShape,
			"tensors.FromBytes(%s): strides %v and offset %d address bytes [%d, %d], but buffer has only %d bytes",
			shape, strides, offset, lowest, highest, len(data))
	}
	return t, nil
}

// addressRange returns the byte offsets of the lowest and highest addressed elements.
// It returns ok=false if they don't fit an int.
func (t *Tensor) addressRange() (lowest, highest int, ok bool) {
	lowest, highest = t.offset, t.offset
	for axis := range shapes.MaxRank {
		steps, stride := t.dims[axis]-1, t.strides[axis]
		span := steps * stride
		if stride != 0 && span/stride != steps {
			return 0, 0, false
		}
		if span < 0 {
			if lowest < math.MinInt-span {
				return 0, 0, false
			}
			lowest += span
		} else {
			if highest > math.MaxInt-span {
				return 0, 0, false
			}
			highest += span
		}
	}
	return lowest, highest, true
}

// Shape of the tensor.
func (t *Tensor) Shape() shapes.Shape { return t.shape }

// DType of the tensor's storage.
func (t *Tensor) DType() dtypes.DType { return t.shape.DType }

// Rank of the tensor.
func (t *Tensor) Rank() int { return t.shape.Rank() }

// Dim returns the dimension of the given axis, or 1 if axis >= Rank().
func (t *Tensor) Dim(axis int) int {
	if axis < 0 || axis >= shapes.MaxRank {
		exceptions.Panicf("Tensor.Dim(%d): axis out-of-bounds for max rank %d", axis, shapes.MaxRank)
	}
	return t.dims[axis]
}

// Strides returns a copy of the byte strides of each axis.
func (t *Tensor) Strides() []int {
	return slices.Clone(t.strides[:t.shape.Rank()])
}

// Size returns the number of elements of the tensor.
func (t *Tensor) Size() int { return t.shape.Size() }

// IsContiguous returns whether the tensor is packed, with axis 0 varying fastest and no gaps.
func (t *Tensor) IsContiguous() bool {
	return t.offset == 0 && slices.Equal(t.Strides(), t.shape.ByteStrides())
}

// Bytes returns the underlying buffer, not a copy. Notice a view may address only part of it.
func (t *Tensor) Bytes() []byte { return t.data }
