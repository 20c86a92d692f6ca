// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/gomlx/convtranspose/pkg/core/tensors"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
)

func newPlainTable(withHeader bool) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if withHeader && row == lgtable.HeaderRow {
				return headerRowStyle
			}
			if row%2 == 0 {
				s = evenRowStyle
			} else {
				s = oddRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
}

// maxTableColumns limits the number of positions (axis 0) shown in the channels table.
const maxTableColumns = 16

// channelsTable lists the output values with one row per slice of the axes 1 and above, and one column
// per position along the axis 0.
func channelsTable(output *tensors.Tensor) *lgtable.Table {
	numColumns := min(output.Dim(0), maxTableColumns)
	header := make([]string, 0, numColumns+1)
	header = append(header, "index")
	for i0 := range numColumns {
		header = append(header, strconv.Itoa(i0))
	}
	if numColumns < output.Dim(0) {
		header = append(header, "...")
	}
	table := newPlainTable(true).Headers(header...)
	for i3 := range output.Dim(3) {
		for i2 := range output.Dim(2) {
			for i1 := range output.Dim(1) {
				row := make([]string, 0, len(header))
				row = append(row, sliceName(output.Rank(), i1, i2, i3))
				for i0 := range numColumns {
					row = append(row, fmt.Sprintf("%g", output.At4(i0, i1, i2, i3)))
				}
				if numColumns < output.Dim(0) {
					row = append(row, "")
				}
				table.Row(row...)
			}
		}
	}
	return table
}

// sliceName formats the indices of the axes 1 and above.
func sliceName(rank, i1, i2, i3 int) string {
	switch rank {
	case 0, 1:
		return "[*]"
	case 2:
		return fmt.Sprintf("[*, %d]", i1)
	case 3:
		return fmt.Sprintf("[*, %d, %d]", i1, i2)
	}
	return fmt.Sprintf("[*, %d, %d, %d]", i1, i2, i3)
}
