// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slicer

import (
	"io"
	"strings"

	"github.com/tfctl/slice/internal/filters"
)

// Rows keeps whole lines by line number. Kept lines are written exactly as
// read, terminator included.
type Rows struct{}

func (Rows) Name() string { return "rows" }

func (Rows) ByLine() bool { return true }

func (Rows) Emit(w io.Writer, line string, index uint, set filters.Set) (bool, error) {
	if !set.Matches(index) {
		return false, nil
	}
	_, err := io.WriteString(w, line)
	return true, err
}

// Columns keeps whitespace separated tokens by their 1-based position in the
// line. With no filters the line is written verbatim. Otherwise the kept
// tokens are joined by a single space and terminated by "\n", which
// normalizes spacing and line endings even when nothing is dropped. A line
// where no token is kept still produces an empty line.
type Columns struct{}

func (Columns) Name() string { return "columns" }

// ByLine is false: positions index tokens within each line.
func (Columns) ByLine() bool { return false }

func (Columns) Emit(w io.Writer, line string, _ uint, set filters.Set) (bool, error) {
	if set.IsEmpty() {
		_, err := io.WriteString(w, line)
		return true, err
	}

	var kept []string
	for i, token := range strings.Fields(line) {
		if set.Apply(uint(i + 1)) {
			kept = append(kept, token)
		}
	}

	_, err := io.WriteString(w, strings.Join(kept, " ")+"\n")
	return true, err
}
