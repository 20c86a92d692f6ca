// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import "github.com/pkg/errors"

// Error kinds returned by the shape inference and by the kernels.
//
// They are always wrapped with a description of the offending shapes or parameters, use errors.Is to
// check for them.
var (
	// ErrShapeMismatch is returned when the input channels of the kernel and the activation disagree.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidShape is returned when a computed output dimension is <= 0, when a parameter is out
	// of its domain, or when a tensor view doesn't fit its buffer.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrTypeMismatch is returned for unsupported dtypes or dtype combinations.
	ErrTypeMismatch = errors.New("type mismatch")
)
