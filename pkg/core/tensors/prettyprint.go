// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"bytes"
	"fmt"
	"strings"
)

// maxRowElements is the number of elements in a row above which Summary uses an ellipsis.
const maxRowElements = 6

// Summary returns a multi-line summary of the Tensor's content. Inspired by numpy output.
//
// Since axis 0 is the fastest varying axis, each printed row holds the values of axis 0, rows
// iterate over axis 1, and the outer axes 2 and 3 are printed as nested blocks.
func (t *Tensor) Summary(precision int) string {
	var buf bytes.Buffer
	w := func(format string, args ...any) { _, _ = fmt.Fprintf(&buf, format, args...) }
	wValue := func(v float32) { w("%.*g", precision, v) }

	w("%s", t.shape)
	rank := t.Rank()
	if rank == 0 {
		w("(")
		wValue(t.At())
		w(")")
		return buf.String()
	}

	printRow := func(i1, i2, i3 int) {
		numElements := t.dims[0]
		w("{")
		for i0 := range numElements {
			if numElements > maxRowElements && i0 >= 3 && i0 < numElements-3 {
				if i0 == 3 {
					w(", ...")
				}
				continue
			}
			if i0 > 0 {
				w(", ")
			}
			wValue(t.At4(i0, i1, i2, i3))
		}
		w("}")
	}

	// printBlock prints all rows (axis 1) for the given outer indices.
	printBlock := func(indent, i2, i3 int) {
		if rank == 1 {
			printRow(0, i2, i3)
			return
		}
		indentStr := strings.Repeat(" ", indent+1)
		w("{")
		for i1 := range t.dims[1] {
			if i1 > 0 {
				w(",\n%s", indentStr)
			}
			printRow(i1, i2, i3)
		}
		w("}")
	}

	switch rank {
	case 1, 2:
		printBlock(0, 0, 0)
	case 3:
		w("{\n ")
		for i2 := range t.dims[2] {
			if i2 > 0 {
				w(",\n ")
			}
			printBlock(1, i2, 0)
		}
		w("}")
	case 4:
		w("{\n ")
		for i3 := range t.dims[3] {
			if i3 > 0 {
				w(",\n ")
			}
			w("{")
			for i2 := range t.dims[2] {
				if i2 > 0 {
					w(",\n  ")
				}
				printBlock(2, i2, i3)
			}
			w("}")
		}
		w("}")
	}
	return buf.String()
}

// String returns a summary of the tensor with up to 4 digits of precision.
func (t *Tensor) String() string {
	return t.Summary(4)
}
