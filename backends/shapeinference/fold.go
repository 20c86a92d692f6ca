// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapeinference

import (
	"github.com/gomlx/convtranspose/pkg/core/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// FoldConfig holds the parameters of a column-to-image fold.
//
// A 1-D fold uses KernelHeight = InputHeight = 1 and Height = UnitAxis.
type FoldConfig struct {
	Width, Height ConvAxis

	// KernelHeight (KH) and InputHeight (IH) are needed to unpack the patch axes, since they pack
	// two spatial axes each: the patch axis 0 packs `iw + ih*IW`, and the axis 1 packs `kw + kh*KW`.
	KernelHeight, InputHeight int
}

// Fold1DConfig returns the FoldConfig of a 1-D fold.
func Fold1DConfig(stride, padding, dilation int) FoldConfig {
	return FoldConfig{
		Width:        ConvAxis{Stride: stride, Padding: padding, Dilation: dilation},
		Height:       UnitAxis,
		KernelHeight: 1,
		InputHeight:  1,
	}
}

// Is1D returns whether the fold has a single row of input and kernel.
func (cfg FoldConfig) Is1D() bool {
	return cfg.KernelHeight == 1 && cfg.InputHeight == 1
}

// FoldGeometry are the extents resolved by FoldOp.
type FoldGeometry struct {
	InputWidth, InputHeight   int // IW, IH
	KernelWidth, KernelHeight int // KW, KH
	OutputWidth, OutputHeight int // OW, OH
	Channels, Batch           int // OC, N
}

// Positions returns the number of input positions (IW*IH), the extent of the patch axis 0.
func (g FoldGeometry) Positions() int { return g.InputWidth * g.InputHeight }

// Taps returns the number of kernel taps (KW*KH), the extent of the patch axis 1.
func (g FoldGeometry) Taps() int { return g.KernelWidth * g.KernelHeight }

// FoldOp validates the patch shape and fold configuration, and returns the resolved geometry and
// the output shape.
//
// The patch has shape (IW*IH, KW*KH, OC, N): missing trailing axes are taken as 1, so the rank can be
// 2 to 4. The output shape is (OW, OC, N) for 1-D folds (see FoldConfig.Is1D), or (OW, OH, OC, N)
// otherwise. Only Float32 patches are supported.
func FoldOp(patch shapes.Shape, cfg FoldConfig) (geometry FoldGeometry, output shapes.Shape, err error) {
	errorf := func(sentinel error, format string, args ...any) (FoldGeometry, shapes.Shape, error) {
		return FoldGeometry{}, shapes.Invalid(), errors.Wrapf(sentinel, "FoldOp: "+format, args...)
	}
	if !patch.Ok() {
		return errorf(shapes.ErrInvalidShape, "invalid patch shape %s", patch)
	}
	if patch.DType != dtypes.Float32 {
		return errorf(shapes.ErrTypeMismatch, "patch must be Float32, got %s", patch)
	}
	if patch.Rank() < 2 || patch.Rank() > shapes.MaxRank {
		return errorf(shapes.ErrInvalidShape, "patch must have rank 2 to %d, got %s", shapes.MaxRank, patch)
	}
	if err := cfg.Width.Validate(); err != nil {
		return FoldGeometry{}, shapes.Invalid(), errors.WithMessage(err, "FoldOp width")
	}
	if err := cfg.Height.Validate(); err != nil {
		return FoldGeometry{}, shapes.Invalid(), errors.WithMessage(err, "FoldOp height")
	}
	if cfg.KernelHeight < 1 || cfg.InputHeight < 1 {
		return errorf(shapes.ErrInvalidShape, "kernel height (%d) and input height (%d) must be >= 1", cfg.KernelHeight, cfg.InputHeight)
	}
	positions, taps := patch.Dim(0), patch.Dim(1)
	if positions%cfg.InputHeight != 0 {
		return errorf(shapes.ErrInvalidShape, "patch axis 0 (%d) is not a multiple of the input height %d", positions, cfg.InputHeight)
	}
	if taps%cfg.KernelHeight != 0 {
		return errorf(shapes.ErrInvalidShape, "patch axis 1 (%d) is not a multiple of the kernel height %d", taps, cfg.KernelHeight)
	}

	geometry = FoldGeometry{
		InputWidth:   positions / cfg.InputHeight,
		InputHeight:  cfg.InputHeight,
		KernelWidth:  taps / cfg.KernelHeight,
		KernelHeight: cfg.KernelHeight,
		Channels:     patch.DimOr1(2),
		Batch:        patch.DimOr1(3),
	}
	geometry.OutputWidth, err = OutputDim(geometry.InputWidth, geometry.KernelWidth, cfg.Width)
	if err != nil {
		return FoldGeometry{}, shapes.Invalid(), errors.WithMessage(err, "FoldOp width")
	}
	geometry.OutputHeight, err = OutputDim(geometry.InputHeight, geometry.KernelHeight, cfg.Height)
	if err != nil {
		return FoldGeometry{}, shapes.Invalid(), errors.WithMessage(err, "FoldOp height")
	}
	if cfg.Is1D() {
		output = shapes.Make(dtypes.Float32, geometry.OutputWidth, geometry.Channels, geometry.Batch)
	} else {
		output = shapes.Make(dtypes.Float32, geometry.OutputWidth, geometry.OutputHeight, geometry.Channels, geometry.Batch)
	}
	return geometry, output, nil
}
