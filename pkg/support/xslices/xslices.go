// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provide missing functionality to the slices package, used by the
// kernels to handle dimensions and axes permutations, and by the command-line tools for list flags.
package xslices

import (
	"flag"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Iota returns a slice of incremental values, starting with start and of length len.
// Eg: Iota(3, 2) -> []int{3, 4}
func Iota[T constraints.Integer | constraints.Float](start T, len int) (slice []T) {
	slice = make([]T, len)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}

// Product returns the product of all elements of the slice. The product of an empty slice is 1.
func Product[T constraints.Integer](slice []T) T {
	var p T = 1
	for _, v := range slice {
		p *= v
	}
	return p
}

// IsPermutation returns whether perm holds each of the values 0 to len(perm)-1 exactly once.
func IsPermutation[T constraints.Integer](perm []T) bool {
	seen := make([]bool, len(perm))
	for _, v := range perm {
		if v < 0 || int(v) >= len(perm) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// InversePermutation returns inv such that inv[perm[i]] = i.
//
// It assumes perm is a valid permutation, see IsPermutation.
func InversePermutation[T constraints.Integer](perm []T) []T {
	inv := make([]T, len(perm))
	for ii, v := range perm {
		inv[v] = T(ii)
	}
	return inv
}

// Flag creates a flag for []T with the given name, description and default value.
// It takes as input a parser for an individual T value.
//
// The flag is given as a comma-separated list of values.
func Flag[T any](name string, defaultValue []T, usage string,
	parserFn func(valueStr string) (T, error)) *[]T {
	f := &genericSliceFlagImpl[T]{
		parsedSlice: defaultValue,
		parserFn:    parserFn,
	}
	flag.Var(f, name, usage)
	return &f.parsedSlice
}

// genericSliceFlagImpl implements flag.Value for a generic type.
type genericSliceFlagImpl[T any] struct {
	parsedSlice []T
	parserFn    func(valueStr string) (T, error)
}

func (f *genericSliceFlagImpl[T]) String() string {
	if f == nil || len(f.parsedSlice) == 0 {
		return ""
	}
	parts := make([]string, len(f.parsedSlice))
	for ii, elem := range f.parsedSlice {
		parts[ii] = fmt.Sprintf("%v", elem)
	}
	return strings.Join(parts, ",")
}

func (f *genericSliceFlagImpl[T]) Set(listStr string) error {
	if listStr == "" {
		f.parsedSlice = make([]T, 0)
		return nil
	}
	parts := strings.Split(listStr, ",")
	f.parsedSlice = make([]T, len(parts))
	var err error
	for ii, part := range parts {
		f.parsedSlice[ii], err = f.parserFn(strings.TrimSpace(part))
		if err != nil {
			return err
		}
	}
	return nil
}
