// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package slicer streams lines from a reader to a writer, keeping only what a
// filters.Set selects. A Mode decides what a position means: Rows indexes whole
// lines, Columns indexes whitespace separated tokens within each line.
package slicer
