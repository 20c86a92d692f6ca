// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package simplego

import (
	"github.com/gomlx/convtranspose/backends/shapeinference"
	"github.com/gomlx/convtranspose/pkg/core/tensors"
	"k8s.io/klog/v2"
)

// Fold is the 1-D column-to-image fold (col2im): it scatters-and-sums the patch columns into a zero
// initialized output, with the given stride, padding and dilation.
//
// The patch has shape (IW, KW, OC, N) -- missing trailing axes are taken as 1 -- and the output has shape
// (OW, OC, N), with OW given by shapeinference.OutputDim. The patch can have any strides.
//
// Element patch[iw, kw, oc, n] is added to output[ow, oc, n] with `ow = iw*s0 - p0 + kw*d0`. Targets
// outside [0, OW) are dropped.
func (b *Backend) Fold(patch *tensors.Tensor, s0, p0, d0 int) (*tensors.Tensor, error) {
	return b.FoldGeneral(patch, shapeinference.Fold1DConfig(s0, p0, d0))
}

// Fold2D is the 2-D column-to-image fold (col2im).
//
// The patch axis 0 packs the input positions (`iw + ih*IW`), and the axis 1 packs the kernel taps
// (`kw + kh*KW`): kh and ih give the kernel and input heights needed to unpack them. The output has
// shape (OW, OH, OC, N), unless kh = ih = 1, in which case it is the same as Fold.
//
// Element patch[iw + ih*IW, kw + kh*KW, oc, n] is added to output[ow, oh, oc, n] with
// `ow = iw*s0 - p0 + kw*d0` and `oh = ih*s1 - p1 + kh*d1`. Out-of-range targets are dropped.
func (b *Backend) Fold2D(patch *tensors.Tensor, s0, s1, p0, p1, d0, d1, kh, ih int) (*tensors.Tensor, error) {
	return b.FoldGeneral(patch, shapeinference.FoldConfig{
		Width:        shapeinference.ConvAxis{Stride: s0, Padding: p0, Dilation: d0},
		Height:       shapeinference.ConvAxis{Stride: s1, Padding: p1, Dilation: d1},
		KernelHeight: kh,
		InputHeight:  ih,
	})
}

// FoldGeneral implements Fold and Fold2D, taking the parameters as a shapeinference.FoldConfig.
//
// All errors are reported before any computation starts.
func (b *Backend) FoldGeneral(patch *tensors.Tensor, cfg shapeinference.FoldConfig) (*tensors.Tensor, error) {
	geometry, outputShape, err := shapeinference.FoldOp(patch.Shape(), cfg)
	if err != nil {
		return nil, err
	}
	if klog.V(1).Enabled() {
		klog.Infof("Fold(patch=%s, width=%s, height=%s, KH=%d, IH=%d) -> %s",
			patch.Shape(), cfg.Width, cfg.Height, cfg.KernelHeight, cfg.InputHeight, outputShape)
	}
	output := tensors.New(outputShape)
	b.fold(patch, output, geometry, cfg)
	return output, nil
}

// fold executes the fold into output, which must be zero-initialized and have the shape resolved by
// shapeinference.FoldOp.
//
// Each (oc, n) slice of the output is independent, and they are processed in parallel.
func (b *Backend) fold(patch, output *tensors.Tensor, g shapeinference.FoldGeometry, cfg shapeinference.FoldConfig) {
	// store writes to output with the 2-D indices: 1-D outputs have no OH axis.
	store := func(value float32, ow, oh, oc, n int) { output.Set4(value, ow, oh, oc, n) }
	if output.Rank() == 3 {
		store = func(value float32, ow, _, oc, n int) { output.Set4(value, ow, oc, n, 0) }
	}
	width, height := cfg.Width, cfg.Height
	numCells := g.OutputWidth * g.OutputHeight
	b.workers.ParallelFor(g.Channels*g.Batch, func(sliceIdx int) {
		oc, n := sliceIdx%g.Channels, sliceIdx/g.Channels
		accumulator := make([]float32, numCells)
		for position := range g.Positions() {
			iw, ih := position%g.InputWidth, position/g.InputWidth
			for tap := range g.Taps() {
				kw, kh := tap%g.KernelWidth, tap/g.KernelWidth
				ow := iw*width.Stride - width.Padding + kw*width.Dilation
				oh := ih*height.Stride - height.Padding + kh*height.Dilation
				if ow < 0 || ow >= g.OutputWidth || oh < 0 || oh >= g.OutputHeight {
					// Dropped: contributions that fall in the padding.
					continue
				}
				accumulator[ow+oh*g.OutputWidth] += patch.At4(position, tap, oc, n)
			}
		}
		for oh := range g.OutputHeight {
			for ow := range g.OutputWidth {
				store(accumulator[ow+oh*g.OutputWidth], ow, oh, oc, n)
			}
		}
	})
}
