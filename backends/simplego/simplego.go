// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package simplego implements the transposed convolution kernels in pure Go: the column-to-image fold
// (Backend.Fold and Backend.Fold2D), and the 1-D and 2-D transposed convolutions built on top of it.
//
// The kernels are stateless: a Backend only holds the configuration and the pool of workers used to run
// independent output slices in parallel. A Backend can be used concurrently.
//
// All computations accumulate in float32. Kernels (weights) can be stored as Float32, Float16 or BFloat16,
// in which case they are converted to float32 on the fly.
package simplego

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gomlx/convtranspose/internal/workerspool"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// BackendName is the prefix accepted in the GOMLX_CONVT configuration, as in "go:parallelism=4".
const BackendName = "go"

// GOMLX_CONVT is the environment variable with the configuration of the default backend, see Default.
//
// The format of config is "[go:]<backend_configuration>", see New for the options.
const GOMLX_CONVT = "GOMLX_CONVT"

// Backend holds the configuration and the workers used by the transposed convolution kernels.
type Backend struct {
	config  string
	workers *workerspool.Pool
}

// New constructs a new Backend.
//
// The config string is a comma-separated list of options:
//
//   - "parallelism=N": maximum number of output slices processed in parallel. 0 disables parallelism,
//     and -1 makes it unlimited. The default is runtime.NumCPU().
//   - "sequential": same as "parallelism=0".
//
// Unknown options return an error.
func New(config string) (*Backend, error) {
	b := &Backend{
		config:  config,
		workers: workerspool.New(),
	}
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		switch strings.TrimSpace(key) {
		case "parallelism":
			if !found {
				return nil, errors.Errorf("backend configuration %q: missing value for \"parallelism\"", config)
			}
			parallelism, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, errors.Wrapf(err, "backend configuration %q: invalid parallelism value %q", config, value)
			}
			b.workers.SetMaxParallelism(max(parallelism, -1))
		case "sequential":
			b.workers.SetMaxParallelism(0)
		default:
			return nil, errors.Errorf("unknown configuration option %q for %s backend", part, b.Name())
		}
	}
	klog.V(1).Infof("%s backend: config=%q, max parallelism=%d", b.Name(), config, b.workers.MaxParallelism())
	return b, nil
}

var (
	defaultBackend     *Backend
	defaultBackendErr  error
	defaultBackendOnce sync.Once
)

// Default returns the default Backend, configured with the environment variable GOMLX_CONVT if set.
//
// It is created on the first call, and the same Backend (or error) is returned afterward.
func Default() (*Backend, error) {
	defaultBackendOnce.Do(func() {
		config := os.Getenv(GOMLX_CONVT)
		config = strings.TrimPrefix(config, BackendName+":")
		defaultBackend, defaultBackendErr = New(config)
		if defaultBackendErr != nil {
			defaultBackendErr = errors.WithMessagef(defaultBackendErr, "invalid $%s", GOMLX_CONVT)
		}
	})
	return defaultBackend, defaultBackendErr
}

// Name returns the short name of the backend.
func (b *Backend) Name() string {
	return "SimpleGo (go)"
}

// String implements fmt.Stringer.
func (b *Backend) String() string {
	return fmt.Sprintf("%s:%s", BackendName, b.config)
}

// Description is a longer description of the Backend that can be used to pretty-print.
func (b *Backend) Description() string {
	switch {
	case !b.workers.IsEnabled():
		return "Simple Go Portable Backend (sequential)"
	case b.workers.IsUnlimited():
		return "Simple Go Portable Backend (unlimited parallelism)"
	}
	return fmt.Sprintf("Simple Go Portable Backend (parallelism=%d)", b.workers.MaxParallelism())
}

// MaxParallelism returns the maximum number of output slices processed in parallel: 0 if parallelism is
// disabled, or -1 if it is unlimited.
func (b *Backend) MaxParallelism() int {
	return b.workers.MaxParallelism()
}
