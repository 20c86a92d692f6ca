// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package simplego

import (
	"github.com/gomlx/convtranspose/pkg/core/shapes"
	"github.com/gomlx/convtranspose/pkg/core/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// mixOperands describes the channel-mixing product of a transposed convolution, independent of the
// number of spatial axes: the input positions and the kernel taps are flattened.
type mixOperands struct {
	positions, taps, inChannels, outChannels, batch int

	// activationAt returns activation[position, inChannel, batch] as float32.
	activationAt func(position, inChannel, n int) float32

	// kernelAt returns kernel[tap, outChannel, inChannel] upconverted to float32.
	kernelAt func(tap, outChannel, inChannel int) float32
}

// channelMix computes the patch tensor of a transposed convolution:
//
//	patch[position, tap, oc, n] = Σ_cin activation[position, cin, n] * kernel[tap, oc, cin]
//
// The returned patch is a packed Float32 tensor with shape (positions, taps, outChannels, batch),
// ready to be folded.
//
// For each batch element this is a matrix multiplication [positions, Cin] x [Cin, taps*Cout], done with
// a float32 GEMM. Batch elements are independent and run in parallel.
func (b *Backend) channelMix(ops mixOperands) *tensors.Tensor {
	patch := tensors.New(shapes.Make(dtypes.Float32, ops.positions, ops.taps, ops.outChannels, ops.batch))
	columns := ops.taps * ops.outChannels

	// Kernel matrix: weights[cin, tap + taps*oc], shared by all batch elements.
	weights := blas32.General{Rows: ops.inChannels, Cols: columns, Stride: columns,
		Data: make([]float32, ops.inChannels*columns)}
	for cin := range ops.inChannels {
		row := weights.Data[cin*columns : (cin+1)*columns]
		for oc := range ops.outChannels {
			for tap := range ops.taps {
				row[tap+ops.taps*oc] = ops.kernelAt(tap, oc, cin)
			}
		}
	}

	b.workers.ParallelFor(ops.batch, func(n int) {
		input := blas32.General{Rows: ops.positions, Cols: ops.inChannels, Stride: ops.inChannels,
			Data: make([]float32, ops.positions*ops.inChannels)}
		for position := range ops.positions {
			for cin := range ops.inChannels {
				input.Data[position*ops.inChannels+cin] = ops.activationAt(position, cin, n)
			}
		}
		mixed := blas32.General{Rows: ops.positions, Cols: columns, Stride: columns,
			Data: make([]float32, ops.positions*columns)}
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, input, weights, 0, mixed)
		for position := range ops.positions {
			row := mixed.Data[position*columns : (position+1)*columns]
			for oc := range ops.outChannels {
				for tap := range ops.taps {
					patch.Set4(row[tap+ops.taps*oc], position, tap, oc, n)
				}
			}
		}
	})
	return patch
}
