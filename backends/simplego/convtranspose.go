// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package simplego

import (
	"github.com/gomlx/convtranspose/backends/shapeinference"
	"github.com/gomlx/convtranspose/pkg/core/tensors"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ConvTranspose1D computes the 1-D transposed convolution of activation by kernel, with stride s0,
// padding p0 and dilation d0.
//
// The kernel has shape (K, Cout, Cin) and can be Float32, Float16 or BFloat16. The activation has shape
// (L, Cin) or (L, Cin, N) and must be Float32. The output is a new Float32 tensor with shape (OL, Cout) or
// (OL, Cout, N), where OL = (L-1)*s0 - 2*p0 + d0*(K-1) + 1.
//
// Inputs can have any strides. Errors (wrapping shapes.ErrShapeMismatch, shapes.ErrInvalidShape or
// shapes.ErrTypeMismatch) are returned before any computation starts.
func (b *Backend) ConvTranspose1D(kernel, activation *tensors.Tensor, s0, p0, d0 int) (*tensors.Tensor, error) {
	axis := shapeinference.ConvAxis{Stride: s0, Padding: p0, Dilation: d0}
	outputShape, err := shapeinference.ConvTranspose1DOp(kernel.Shape(), activation.Shape(), axis)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("ConvTranspose1D(kernel=%s, activation=%s, %s) -> %s", kernel.Shape(), activation.Shape(), axis, outputShape)

	patch := b.channelMix(mixOperands{
		positions:   activation.Dim(0),
		taps:        kernel.Dim(0),
		outChannels: kernel.Dim(1),
		inChannels:  kernel.Dim(2),
		batch:       activation.Dim(2),
		activationAt: func(position, inChannel, n int) float32 {
			return activation.At4(position, inChannel, n, 0)
		},
		kernelAt: func(tap, outChannel, inChannel int) float32 {
			return kernel.At4(tap, outChannel, inChannel, 0)
		},
	})
	output, err := b.Fold(patch, s0, p0, d0)
	if err != nil {
		return nil, errors.WithMessage(err, "ConvTranspose1D")
	}
	return output.Reshape(outputShape.Dimensions...)
}

// ConvTranspose2D computes the 2-D transposed convolution of activation by kernel, with strides s0 and s1,
// paddings p0 and p1 and dilations d0 and d1 for the width and height axes respectively.
//
// The kernel has shape (KW, KH, Cout, Cin) and can be Float32, Float16 or BFloat16. The activation has shape
// (W, H, Cin) or (W, H, Cin, N) and must be Float32. The output is a new Float32 tensor with shape
// (OW, OH, Cout) or (OW, OH, Cout, N), with each extent given by shapeinference.OutputDim.
//
// Errors are reported as in ConvTranspose1D.
func (b *Backend) ConvTranspose2D(kernel, activation *tensors.Tensor, s0, s1, p0, p1, d0, d1 int) (*tensors.Tensor, error) {
	width := shapeinference.ConvAxis{Stride: s0, Padding: p0, Dilation: d0}
	height := shapeinference.ConvAxis{Stride: s1, Padding: p1, Dilation: d1}
	outputShape, err := shapeinference.ConvTranspose2DOp(kernel.Shape(), activation.Shape(), width, height)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("ConvTranspose2D(kernel=%s, activation=%s, width=%s, height=%s) -> %s",
		kernel.Shape(), activation.Shape(), width, height, outputShape)

	inputWidth, inputHeight := activation.Dim(0), activation.Dim(1)
	kernelWidth, kernelHeight := kernel.Dim(0), kernel.Dim(1)
	patch := b.channelMix(mixOperands{
		positions:   inputWidth * inputHeight,
		taps:        kernelWidth * kernelHeight,
		outChannels: kernel.Dim(2),
		inChannels:  kernel.Dim(3),
		batch:       activation.Dim(3),
		activationAt: func(position, inChannel, n int) float32 {
			return activation.At4(position%inputWidth, position/inputWidth, inChannel, n)
		},
		kernelAt: func(tap, outChannel, inChannel int) float32 {
			return kernel.At4(tap%kernelWidth, tap/kernelWidth, outChannel, inChannel)
		},
	})
	output, err := b.Fold2D(patch, s0, s1, p0, p1, d0, d1, kernelHeight, inputHeight)
	if err != nil {
		return nil, errors.WithMessage(err, "ConvTranspose2D")
	}
	// A single row of input and kernel folds to (OW, Cout, N): restore the height axis.
	return output.Reshape(outputShape.Dimensions...)
}

// ConvTranspose2DP0 is ConvTranspose2D with the same stride on both axes, no padding and no dilation.
func (b *Backend) ConvTranspose2DP0(kernel, activation *tensors.Tensor, stride int) (*tensors.Tensor, error) {
	return b.ConvTranspose2D(kernel, activation, stride, stride, 0, 0, 1, 1)
}
