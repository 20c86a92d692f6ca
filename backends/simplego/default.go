// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package simplego

import "github.com/gomlx/convtranspose/pkg/core/tensors"

// Fold calls Backend.Fold on the Default backend.
func Fold(patch *tensors.Tensor, s0, p0, d0 int) (*tensors.Tensor, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}
	return b.Fold(patch, s0, p0, d0)
}

// Fold2D calls Backend.Fold2D on the Default backend.
func Fold2D(patch *tensors.Tensor, s0, s1, p0, p1, d0, d1, kh, ih int) (*tensors.Tensor, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}
	return b.Fold2D(patch, s0, s1, p0, p1, d0, d1, kh, ih)
}

// ConvTranspose1D calls Backend.ConvTranspose1D on the Default backend.
func ConvTranspose1D(kernel, activation *tensors.Tensor, s0, p0, d0 int) (*tensors.Tensor, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}
	return b.ConvTranspose1D(kernel, activation, s0, p0, d0)
}

// ConvTranspose2D calls Backend.ConvTranspose2D on the Default backend.
func ConvTranspose2D(kernel, activation *tensors.Tensor, s0, s1, p0, p1, d0, d1 int) (*tensors.Tensor, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}
	return b.ConvTranspose2D(kernel, activation, s0, s1, p0, p1, d0, d1)
}

// ConvTranspose2DP0 calls Backend.ConvTranspose2DP0 on the Default backend.
func ConvTranspose2DP0(kernel, activation *tensors.Tensor, stride int) (*tensors.Tensor, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}
	return b.ConvTranspose2DP0(kernel, activation, stride)
}
