// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape and associated tools for the transposed convolution kernels.
//
// Shape represents the shape (rank, dimensions and DType) of a Tensor. DType indicates the type of
// the unit element of a Tensor, and it uses the enum from github.com/gomlx/gopjrt/dtypes.
//
// Axes follow the layout convention of the kernels: axis 0 is the fastest varying one, so a packed
// (contiguous) tensor of shape [4 3 2] has byte strides [e, 4e, 12e] for an element of e bytes.
// Shapes are limited to MaxRank axes.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a Tensor.
//   - Axis: is the index of a dimension on a multidimensional Tensor.
//   - Dimension: the size of a multi-dimensions Tensor in one of its axes (also called extent).
//   - Stride: the number of bytes to move in memory to advance one position in an axis.
//
// Example: a 1-D activation with length 3 and 2 input channels has shape `(Float32)[3 2]`, and it
// can be created with `shapes.Make(dtypes.Float32, 3, 2)`.
package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// MaxRank is the maximum number of axes supported by the kernels.
const MaxRank = 4

// Shape represents the shape of a Tensor: its DType and the dimension of each axis.
//
// Use Make to create a new shape. See example in package shapes documentation.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make returns a Shape structure filled with the values given.
//
// It panics if any dimension is <= 0 or if there are more than MaxRank dimensions.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{Dimensions: slices.Clone(dimensions), DType: dtype}
	if len(dimensions) > MaxRank {
		exceptions.Panicf("shapes.Make(%s): rank %d is larger than the maximum supported rank %d", s, len(dimensions), MaxRank)
	}
	for _, dim := range dimensions {
		if dim <= 0 {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with an axis with dimension <= 0", s)
		}
	}
	return s
}

// Invalid returns an invalid shape.
//
// Invalid().Ok() == false.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{} will be invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape, that is, the number of dimensions.
func (s Shape) Rank() int { return len(s.Dimensions) }

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// DimOr1 returns the dimension of the given axis, or 1 if the axis is beyond the rank of the shape.
//
// The kernels treat missing trailing axes (e.g.: the batch axis) as axes of dimension 1.
func (s Shape) DimOr1(axis int) int {
	if axis >= s.Rank() {
		return 1
	}
	return s.Dimensions[axis]
}

// Shape returns a shallow copy of itself.
func (s Shape) Shape() Shape { return s }

// String implements stringer, pretty-prints the shape.
func (s Shape) String() string {
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}

// Size returns the number of elements of DType needed for this shape. It's the product of all dimensions.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// Memory returns the number of bytes used by a packed tensor of this shape.
func (s Shape) Memory() uintptr {
	return s.DType.Memory() * uintptr(s.Size())
}

// Equal compares two shapes for equality: dtype and dimensions are compared.
func (s Shape) Equal(s2 Shape) bool {
	return s.DType == s2.DType && slices.Equal(s.Dimensions, s2.Dimensions)
}

// EqualDimensions compares two shapes for equality of dimensions. Dtypes can be different.
func (s Shape) EqualDimensions(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// ByteStrides returns the strides, in bytes, of a packed tensor with this shape.
//
// Axis 0 is the fastest varying axis, so ByteStrides()[0] is the size of one element.
func (s Shape) ByteStrides() []int {
	strides := make([]int, s.Rank())
	current := int(s.DType.Memory())
	for axis, dim := range s.Dimensions {
		strides[axis] = current
		current *= dim
	}
	return strides
}

// WithDType returns a copy of the shape with a different DType.
func (s Shape) WithDType(dtype dtypes.DType) Shape {
	s2 := s.Clone()
	s2.DType = dtype
	return s2
}
