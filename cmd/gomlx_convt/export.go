// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/gomlx/convtranspose/pkg/core/tensors"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// pngMinSize is the minimum size of the larger side of the saved image: small outputs are scaled up.
const pngMinSize = 256

// savePNG saves output[:, :, 0, 0] as a grayscale image, normalized to the range of its values.
// The output must have rank >= 2.
func savePNG(output *tensors.Tensor, filePath string) error {
	if output.Rank() < 2 {
		return errors.Errorf("-png requires an output with at least 2 axes, got %s", output.Shape())
	}
	width, height := output.Dim(0), output.Dim(1)
	low, high := output.At4(0, 0, 0, 0), output.At4(0, 0, 0, 0)
	for y := range height {
		for x := range width {
			v := output.At4(x, y, 0, 0)
			low, high = min(low, v), max(high, v)
		}
	}
	img := imaging.New(width, height, color.Black)
	for y := range height {
		for x := range width {
			var level uint8
			if high > low {
				level = uint8(255 * (output.At4(x, y, 0, 0) - low) / (high - low))
			}
			img.Set(x, y, color.Gray{Y: level})
		}
	}
	if scale := pngMinSize / max(width, height); scale > 1 {
		img = imaging.Resize(img, width*scale, height*scale, imaging.NearestNeighbor)
	}
	return errors.Wrapf(imaging.Save(img, filePath), "failed to save image to %q", filePath)
}

// maxPlotLines limits the number of channels plotted.
const maxPlotLines = 8

// savePlot plots the values along axis 0 for the first channels (indexed by channelAxis), with the first
// index of the remaining axes.
func savePlot(output *tensors.Tensor, title string, channelAxis int, filePath string) error {
	if channelAxis >= output.Rank() {
		return errors.Errorf("-plot requires an output with a channels axis %d, got %s", channelAxis, output.Shape())
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "position (axis 0)"
	p.Y.Label.Text = "value"

	var lines []any
	for channel := range min(output.Dim(channelAxis), maxPlotLines) {
		points := make(plotter.XYs, output.Dim(0))
		for x := range points {
			indices := [4]int{x, 0, 0, 0}
			indices[channelAxis] = channel
			points[x].X = float64(x)
			points[x].Y = float64(output.At4(indices[0], indices[1], indices[2], indices[3]))
		}
		lines = append(lines, fmt.Sprintf("channel %d", channel), points)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return errors.Wrap(err, "failed to create plot")
	}
	return errors.Wrapf(p.Save(10*vg.Inch, 5*vg.Inch, filePath), "failed to save plot to %q", filePath)
}
