// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// gomlx_convt runs one of the transposed convolution kernels on ramp tensors (values 0, 1, 2, ...) and
// reports the shapes and results.
//
// Examples:
//
//	gomlx_convt -op=conv1d -input=3,2 -kernel=2,3,2 -stride=2
//	gomlx_convt -op=conv2d -input=3,2,2 -kernel=2,2,3,2 -stride=3 -png=/tmp/out.png
//	gomlx_convt -op=fold -input=7,5,3,2 -stride=2 -padding=1 -dilation=2 -plot=/tmp/fold.png
//	gomlx_convt -op=conv1d -input=256,64,8 -kernel=4,32,64 -repeat=100 -config=parallelism=4
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/convtranspose/backends/simplego"
	"github.com/gomlx/convtranspose/pkg/core/tensors"
	"github.com/gomlx/convtranspose/pkg/support/xslices"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

var (
	flagOp     = flag.String("op", "conv1d", "Operation to run: \"fold\", \"fold2d\", \"conv1d\" or \"conv2d\".")
	flagConfig = flag.String("config", "", "Backend configuration, e.g. \"parallelism=4\" or \"sequential\". "+
		"If empty, $"+simplego.GOMLX_CONVT+" is used.")

	flagInput       = xslices.Flag("input", []int{3, 2}, "Dimensions of the activation (or of the patch for fold ops).", strconv.Atoi)
	flagKernel      = xslices.Flag("kernel", []int{2, 3, 2}, "Dimensions of the kernel, ignored for fold ops.", strconv.Atoi)
	flagKernelDType = flag.String("kernel_dtype", "Float16", "DType of the kernel: Float32, Float16 or BFloat16.")

	flagStride   = xslices.Flag("stride", []int{1}, "Stride per spatial axis. A single value is used for all axes.", strconv.Atoi)
	flagPadding  = xslices.Flag("padding", []int{0}, "Padding per spatial axis. A single value is used for all axes.", strconv.Atoi)
	flagDilation = xslices.Flag("dilation", []int{1}, "Dilation per spatial axis. A single value is used for all axes.", strconv.Atoi)
	flagKH       = flag.Int("kh", 1, "Kernel height, for \"fold2d\".")
	flagIH       = flag.Int("ih", 1, "Input height, for \"fold2d\".")

	flagPrecision = flag.Int("precision", 4, "Number of significant digits when printing values.")
	flagQuiet     = flag.Bool("quiet", false, "Don't print the values of the tensors, only the shapes.")
	flagRepeat    = flag.Int("repeat", 0, "If > 0, run the operation this many times and report the throughput.")
	flagPNG       = flag.String("png", "", "If set, save the first output channel of 2-D results as a grayscale PNG image.")
	flagPlot      = flag.String("plot", "", "If set, plot the output channels of the first example along axis 0 to this file.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("Unknown arguments %q. See 'gomlx_convt -help'.", flag.Args())
		os.Exit(1)
	}
	err := exceptions.TryCatch[error](run)
	if err != nil {
		klog.Errorf("Failed: %+v", err)
		os.Exit(1)
	}
}

// operation holds the inputs of the selected operation, ready to run.
type operation struct {
	name            string
	kernel, input   *tensors.Tensor
	run             func() (*tensors.Tensor, error)
	spatialAxisName []string
}

func run() {
	backend := must.M1(newBackend())
	op := must.M1(buildOperation(backend))

	report := newPlainTable(false)
	report.Row("backend", backend.Description())
	report.Row("operation", op.name)
	if op.kernel != nil {
		report.Row("kernel", op.kernel.Shape().String())
	}
	report.Row("input", op.input.Shape().String())
	for ii, axisName := range op.spatialAxisName {
		report.Row(axisName, fmt.Sprintf("stride=%d, padding=%d, dilation=%d",
			axisParam(*flagStride, ii), axisParam(*flagPadding, ii), axisParam(*flagDilation, ii)))
	}

	start := time.Now()
	output := must.M1(op.run())
	elapsed := time.Since(start)
	report.Row("output", output.Shape().String())
	report.Row("# elements", humanize.Comma(int64(output.Size())))
	report.Row("# bytes", humanize.Bytes(uint64(output.Shape().Memory())))
	report.Row("elapsed", elapsed.String())
	fmt.Println(titleStyle.Render("Transposed Convolution"))
	fmt.Println(report.Render())

	if !*flagQuiet {
		if op.kernel != nil {
			fmt.Printf("kernel: %s\n\n", op.kernel.Summary(*flagPrecision))
		}
		fmt.Printf("input: %s\n\n", op.input.Summary(*flagPrecision))
		fmt.Printf("output: %s\n\n", output.Summary(*flagPrecision))
		fmt.Println(channelsTable(output).Render())
	}

	if *flagRepeat > 0 {
		benchmark(op, *flagRepeat)
	}
	if *flagPNG != "" {
		must.M(savePNG(output, *flagPNG))
		fmt.Printf("Saved first output channel to %q\n", *flagPNG)
	}
	if *flagPlot != "" {
		// Channels follow the spatial axes, except for 1-D folds of 2-D patches.
		channelAxis := min(len(op.spatialAxisName), output.Rank()-1)
		if op.name == "fold2d" && output.Rank() == 3 {
			channelAxis = 1
		}
		must.M(savePlot(output, op.name, channelAxis, *flagPlot))
		fmt.Printf("Saved plot of output channels to %q\n", *flagPlot)
	}
}

func newBackend() (*simplego.Backend, error) {
	if *flagConfig == "" {
		return simplego.Default()
	}
	return simplego.New(*flagConfig)
}

// axisParam returns the parameter of the given spatial axis: a single value is used for all axes.
func axisParam(values []int, axis int) int {
	if len(values) == 0 {
		exceptions.Panicf("empty list of values for spatial axis parameters")
	}
	if axis >= len(values) {
		return values[len(values)-1]
	}
	return values[axis]
}

func parseDType(name string) (dtypes.DType, error) {
	for _, dtype := range []dtypes.DType{dtypes.Float32, dtypes.Float16, dtypes.BFloat16} {
		if strings.EqualFold(dtype.String(), name) {
			return dtype, nil
		}
	}
	return dtypes.InvalidDType, errors.Errorf("unsupported dtype %q, use Float32, Float16 or BFloat16", name)
}

// ramp returns a tensor with the given dimensions and the values 0, 1, 2, ...
func ramp(dtype dtypes.DType, dimensions []int) (*tensors.Tensor, error) {
	t, err := tensors.FromFlatData(xslices.Iota[float32](0, xslices.Product(dimensions)), dimensions...)
	if err != nil {
		return nil, err
	}
	if dtype == dtypes.Float32 {
		return t, nil
	}
	return t.ConvertDType(dtype)
}

func buildOperation(backend *simplego.Backend) (*operation, error) {
	s0, s1 := axisParam(*flagStride, 0), axisParam(*flagStride, 1)
	p0, p1 := axisParam(*flagPadding, 0), axisParam(*flagPadding, 1)
	d0, d1 := axisParam(*flagDilation, 0), axisParam(*flagDilation, 1)
	input, err := ramp(dtypes.Float32, *flagInput)
	if err != nil {
		return nil, errors.WithMessage(err, "-input")
	}
	op := &operation{name: *flagOp, input: input}
	if *flagOp == "fold" || *flagOp == "fold2d" {
		op.spatialAxisName = []string{"width"}
		if *flagOp == "fold" {
			op.run = func() (*tensors.Tensor, error) { return backend.Fold(input, s0, p0, d0) }
		} else {
			op.spatialAxisName = append(op.spatialAxisName, "height")
			op.run = func() (*tensors.Tensor, error) {
				return backend.Fold2D(input, s0, s1, p0, p1, d0, d1, *flagKH, *flagIH)
			}
		}
		return op, nil
	}

	kernelDType, err := parseDType(*flagKernelDType)
	if err != nil {
		return nil, err
	}
	op.kernel, err = ramp(kernelDType, *flagKernel)
	if err != nil {
		return nil, errors.WithMessage(err, "-kernel")
	}
	switch *flagOp {
	case "conv1d":
		op.spatialAxisName = []string{"length"}
		op.run = func() (*tensors.Tensor, error) { return backend.ConvTranspose1D(op.kernel, input, s0, p0, d0) }
	case "conv2d":
		op.spatialAxisName = []string{"width", "height"}
		op.run = func() (*tensors.Tensor, error) {
			return backend.ConvTranspose2D(op.kernel, input, s0, s1, p0, p1, d0, d1)
		}
	default:
		return nil, errors.Errorf("unknown -op=%q", *flagOp)
	}
	return op, nil
}

// benchmark runs the operation numRepeats times, displaying a progress bar.
func benchmark(op *operation, numRepeats int) {
	bar := progressbar.NewOptions(numRepeats,
		progressbar.OptionSetDescription(op.name),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("runs"),
		progressbar.OptionSetTheme(progressbar.ThemeUnicode),
	)
	start := time.Now()
	for range numRepeats {
		_ = must.M1(op.run())
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	elapsed := time.Since(start)
	fmt.Println()

	table := newPlainTable(false)
	table.Row("runs", humanize.Comma(int64(numRepeats)))
	table.Row("total time", elapsed.String())
	table.Row("time per run", (elapsed / time.Duration(numRepeats)).String())
	table.Row("runs per second", humanize.FormatFloat("#,###.##", float64(numRepeats)/elapsed.Seconds()))
	fmt.Println(titleStyle.Render("Benchmark"))
	fmt.Println(table.Render())
}
