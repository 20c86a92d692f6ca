// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapeinference

import (
	"github.com/gomlx/convtranspose/pkg/core/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// checkConvDTypes validates the dtypes of the kernel and of the activation of a transposed convolution.
func checkConvDTypes(opName string, kernel, activation shapes.Shape) error {
	if !kernel.Ok() || !activation.Ok() {
		return errors.Wrapf(shapes.ErrInvalidShape, "%s: invalid kernel (%s) or activation (%s) shapes", opName, kernel, activation)
	}
	if activation.DType != dtypes.Float32 {
		return errors.Wrapf(shapes.ErrTypeMismatch, "%s: activation must be Float32, got %s", opName, activation)
	}
	if !IsSupportedKernelDType(kernel.DType) {
		return errors.Wrapf(shapes.ErrTypeMismatch, "%s: kernel must be Float32, Float16 or BFloat16, got %s", opName, kernel)
	}
	return nil
}

// ConvTranspose1DOp returns the output shape of a 1-D transposed convolution.
//
// The kernel has shape (K, Cout, Cin) and the activation (L, Cin) or (L, Cin, N). The output has shape
// (OL, Cout), or (OL, Cout, N) for a batched activation, and it is always Float32. OL is given by OutputDim.
//
// It returns an error wrapping shapes.ErrShapeMismatch if the number of input channels of the kernel and
// activation differ, shapes.ErrTypeMismatch for unsupported dtypes and shapes.ErrInvalidShape for the
// remaining invalid cases.
func ConvTranspose1DOp(kernel, activation shapes.Shape, axis ConvAxis) (shapes.Shape, error) {
	errorf := func(sentinel error, format string, args ...any) (shapes.Shape, error) {
		return shapes.Invalid(), errors.Wrapf(sentinel, "ConvTranspose1DOp: "+format, args...)
	}
	if err := checkConvDTypes("ConvTranspose1DOp", kernel, activation); err != nil {
		return shapes.Invalid(), err
	}
	if kernel.Rank() != 3 {
		return errorf(shapes.ErrInvalidShape, "kernel must have shape (K, Cout, Cin), got %s", kernel)
	}
	if activation.Rank() != 2 && activation.Rank() != 3 {
		return errorf(shapes.ErrInvalidShape, "activation must have shape (L, Cin) or (L, Cin, N), got %s", activation)
	}
	if kernel.Dim(2) != activation.Dim(1) {
		return errorf(shapes.ErrShapeMismatch, "kernel %s has %d input channels, but activation %s has %d",
			kernel, kernel.Dim(2), activation, activation.Dim(1))
	}
	outputLength, err := OutputDim(activation.Dim(0), kernel.Dim(0), axis)
	if err != nil {
		return shapes.Invalid(), errors.WithMessage(err, "ConvTranspose1DOp")
	}
	dims := []int{outputLength, kernel.Dim(1)}
	if activation.Rank() == 3 {
		dims = append(dims, activation.Dim(2))
	}
	return shapes.Make(dtypes.Float32, dims...), nil
}

// ConvTranspose2DOp returns the output shape of a 2-D transposed convolution.
//
// The kernel has shape (KW, KH, Cout, Cin) and the activation (W, H, Cin) or (W, H, Cin, N). The output
// has shape (OW, OH, Cout), or (OW, OH, Cout, N) for a batched activation, and it is always Float32.
// OW and OH are given by OutputDim with the width and height parameters respectively.
//
// Errors are reported as in ConvTranspose1DOp.
func ConvTranspose2DOp(kernel, activation shapes.Shape, width, height ConvAxis) (shapes.Shape, error) {
	errorf := func(sentinel error, format string, args ...any) (shapes.Shape, error) {
		return shapes.Invalid(), errors.Wrapf(sentinel, "ConvTranspose2DOp: "+format, args...)
	}
	if err := checkConvDTypes("ConvTranspose2DOp", kernel, activation); err != nil {
		return shapes.Invalid(), err
	}
	if kernel.Rank() != 4 {
		return errorf(shapes.ErrInvalidShape, "kernel must have shape (KW, KH, Cout, Cin), got %s", kernel)
	}
	if activation.Rank() != 3 && activation.Rank() != 4 {
		return errorf(shapes.ErrInvalidShape, "activation must have shape (W, H, Cin) or (W, H, Cin, N), got %s", activation)
	}
	if kernel.Dim(3) != activation.Dim(2) {
		return errorf(shapes.ErrShapeMismatch, "kernel %s has %d input channels, but activation %s has %d",
			kernel, kernel.Dim(3), activation, activation.Dim(2))
	}
	outputWidth, err := OutputDim(activation.Dim(0), kernel.Dim(0), width)
	if err != nil {
		return shapes.Invalid(), errors.WithMessage(err, "ConvTranspose2DOp width")
	}
	outputHeight, err := OutputDim(activation.Dim(1), kernel.Dim(1), height)
	if err != nil {
		return shapes.Invalid(), errors.WithMessage(err, "ConvTranspose2DOp height")
	}
	dims := []int{outputWidth, outputHeight, kernel.Dim(2)}
	if activation.Rank() == 4 {
		dims = append(dims, activation.Dim(3))
	}
	return shapes.Make(dtypes.Float32, dims...), nil
}
