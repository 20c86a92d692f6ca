// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"slices"

	"github.com/gomlx/convtranspose/pkg/core/shapes"
	"github.com/gomlx/convtranspose/pkg/support/xslices"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Permute returns a view of the tensor with its axes permuted. No data is copied.
//
// The source axis i is moved to the position axes[i], so the resulting dimensions satisfy
// `result.Dim(axes[i]) == t.Dim(i)`. Exactly one value per axis of the tensor must be given,
// and they must form a permutation, otherwise it returns an error (shapes.ErrInvalidShape).
//
// See InversePermutation to undo a permutation.
func (t *Tensor) Permute(axes ...int) (*Tensor, error) {
	rank := t.shape.Rank()
	if len(axes) != rank || !xslices.IsPermutation(axes) {
		return nil, errors.Wrapf(shapes.ErrInvalidShape, "Tensor(%s).Permute(%v): axes must be a permutation of the %d axes",
			t.shape, axes, rank)
	}
	dims := make([]int, rank)
	strides := make([]int, rank)
	for from, to := range axes {
		dims[to] = t.dims[from]
		strides[to] = t.strides[from]
	}
	return FromBytes(t.data, shapes.Make(t.shape.DType, dims...), strides, t.offset)
}

// InversePermutation returns the axes that undo Permute(axes...).
func InversePermutation(axes []int) []int {
	return xslices.InversePermutation(axes)
}

// Contiguous returns a packed copy of the tensor, with the same shape and dtype, and the values laid out in
// logical order (axis 0 fastest).
func (t *Tensor) Contiguous() *Tensor {
	result := New(t.shape)
	for i3 := range t.dims[3] {
		for i2 := range t.dims[2] {
			for i1 := range t.dims[1] {
				for i0 := range t.dims[0] {
					srcPos := t.byteOffset4(i0, i1, i2, i3)
					dstPos := result.byteOffset4(i0, i1, i2, i3)
					size := int(t.shape.DType.Memory())
					copy(result.data[dstPos:dstPos+size], t.data[srcPos:srcPos+size])
				}
			}
		}
	}
	return result
}

// Reshape returns a view of the same data with new dimensions, and the same number of elements.
//
// Only contiguous tensors can be reshaped, otherwise it returns an error (shapes.ErrInvalidShape):
// use Contiguous first.
func (t *Tensor) Reshape(dimensions ...int) (*Tensor, error) {
	if !t.IsContiguous() {
		return nil, errors.Wrapf(shapes.ErrInvalidShape, "Tensor(%s).Reshape(%v): tensor is not contiguous", t.shape, dimensions)
	}
	if len(dimensions) > shapes.MaxRank || slices.ContainsFunc(dimensions, func(dim int) bool { return dim <= 0 }) ||
		xslices.Product(dimensions) != t.Size() {
		return nil, errors.Wrapf(shapes.ErrInvalidShape, "Tensor(%s).Reshape(%v): incompatible dimensions", t.shape, dimensions)
	}
	newShape := shapes.Make(t.shape.DType, dimensions...)
	return FromBytes(t.data, newShape, newShape.ByteStrides(), 0)
}

// ConvertDType returns a packed copy of the tensor converted to the given dtype.
//
// Values are converted through float32, so converting to a reduced precision dtype rounds them.
// It returns an error (shapes.ErrTypeMismatch) if dtype is not supported.
func (t *Tensor) ConvertDType(dtype dtypes.DType) (*Tensor, error) {
	if !IsSupportedDType(dtype) {
		return nil, errors.Wrapf(shapes.ErrTypeMismatch, "Tensor(%s).ConvertDType(%s): dtype not supported", t.shape, dtype)
	}
	klog.V(2).Infof("Tensor(%s).ConvertDType(%s)", t.shape, dtype)
	result := New(t.shape.WithDType(dtype))
	for _, indices := range t.shape.Iter() {
		result.Set(t.At(indices...), indices...)
	}
	return result, nil
}
