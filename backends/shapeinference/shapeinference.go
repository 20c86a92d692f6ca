// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapeinference calculates the shape resulting from the transposed convolution operations and
// validates its inputs.
//
// These are pure functions: they are used by the backends to allocate the output buffers before any
// computation starts, so any invalid combination of shapes or parameters is reported upfront.
//
// Errors wrap one of the sentinels in package shapes (ErrShapeMismatch, ErrInvalidShape or ErrTypeMismatch),
// and can be tested with errors.Is.
//
// The extent of each output spatial axis follows the transposed convolution law:
//
//	O = (I-1)*stride - 2*padding + dilation*(K-1) + 1
//
// Where I is the input extent and K the kernel extent on that axis.
package shapeinference

import (
	"fmt"

	"github.com/gomlx/convtranspose/pkg/core/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// ConvAxis holds the parameters of a transposed convolution on one spatial axis.
type ConvAxis struct {
	// Stride must be >= 1.
	Stride int

	// Padding must be >= 0. It is removed from both ends of the axis.
	Padding int

	// Dilation must be >= 1.
	Dilation int
}

// UnitAxis is the ConvAxis with stride 1, no padding and dilation 1.
var UnitAxis = ConvAxis{Stride: 1, Padding: 0, Dilation: 1}

// String implements fmt.Stringer.
func (a ConvAxis) String() string {
	return fmt.Sprintf("{stride=%d, padding=%d, dilation=%d}", a.Stride, a.Padding, a.Dilation)
}

// Validate returns an error (shapes.ErrInvalidShape) if any of the parameters is out of its domain.
func (a ConvAxis) Validate() error {
	if a.Stride < 1 || a.Dilation < 1 || a.Padding < 0 {
		return errors.Wrapf(shapes.ErrInvalidShape, "invalid axis parameters %s: stride and dilation must be >= 1, padding >= 0", a)
	}
	return nil
}

// OutputDim returns the extent of an output axis of the transposed convolution, given the input
// and kernel extents of that axis.
//
// It returns an error (shapes.ErrInvalidShape) if the parameters are invalid or if the resulting
// extent would be <= 0.
func OutputDim(input, kernel int, axis ConvAxis) (int, error) {
	if err := axis.Validate(); err != nil {
		return 0, err
	}
	if input <= 0 || kernel <= 0 {
		return 0, errors.Wrapf(shapes.ErrInvalidShape, "input extent (%d) and kernel extent (%d) must be > 0", input, kernel)
	}
	output := (input-1)*axis.Stride - 2*axis.Padding + axis.Dilation*(kernel-1) + 1
	if output <= 0 {
		return 0, errors.Wrapf(shapes.ErrInvalidShape,
			"output extent %d <= 0 for input extent %d, kernel extent %d and axis parameters %s",
			output, input, kernel, axis)
	}
	return output, nil
}

// IsSupportedKernelDType returns whether the kernel (weights) of a transposed convolution can be stored with dtype.
//
// Reduced precision kernels are converted to float32 during the computation.
func IsSupportedKernelDType(dtype dtypes.DType) bool {
	return dtype == dtypes.Float32 || dtype == dtypes.Float16 || dtype == dtypes.BFloat16
}
