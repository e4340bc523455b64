// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slicer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/slice/internal/filters"
	"github.com/tfctl/slice/internal/log"
)

// Mode emits the retained part of one line. line still carries its
// terminator, if it had one. index is the 1-based line number.
//
// ByLine reports whether filter positions count lines. Only then can a set
// run out of matches before the input ends.
type Mode interface {
	Name() string
	ByLine() bool
	Emit(w io.Writer, line string, index uint, set filters.Set) (bool, error)
}

// Stats summarizes a completed or aborted run.
type Stats struct {
	Lines    uint
	Emitted  uint
	BytesIn  uint64
	BytesOut uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("lines=%s emitted=%s in=%s out=%s",
		humanize.Comma(int64(s.Lines)),
		humanize.Comma(int64(s.Emitted)),
		humanize.Bytes(s.BytesIn),
		humanize.Bytes(s.BytesOut))
}

// Slicer owns the read/filter/write loop for one run.
type Slicer struct {
	mode    Mode
	filters filters.Set
}

// New returns a Slicer applying set through mode.
func New(mode Mode, set filters.Set) *Slicer {
	return &Slicer{mode: mode, filters: set}
}

// Slice reads r to the end, one line at a time, and writes what the mode
// keeps to w. Output is buffered and flushed once after the input is
// exhausted. The first read or write error stops the run; whatever was
// already flushed stays written.
func (s *Slicer) Slice(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	reader := bufio.NewReader(r)
	counter := &countingWriter{w: w}
	writer := bufio.NewWriter(counter)

	exhaustedLogged := false

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			stats.BytesOut = counter.n
			return stats, fmt.Errorf("failed to read line %d: %w", stats.Lines+1, readErr)
		}

		// A final line without a terminator arrives together with io.EOF.
		if line != "" {
			stats.Lines++
			stats.BytesIn += uint64(len(line))

			kept, err := s.mode.Emit(writer, line, stats.Lines, s.filters)
			if err != nil {
				stats.BytesOut = counter.n
				return stats, fmt.Errorf("failed to write line %d: %w", stats.Lines, err)
			}
			if kept {
				stats.Emitted++
			}

			if s.mode.ByLine() && !exhaustedLogged && s.filters.Exhausted(stats.Lines+1) {
				log.Tracef("%s: no filter can match past line %d", s.mode.Name(), stats.Lines)
				exhaustedLogged = true
			}
		}

		if readErr != nil {
			break
		}
	}

	if err := writer.Flush(); err != nil {
		stats.BytesOut = counter.n
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}
	stats.BytesOut = counter.n

	log.Debugf("%s: %s", s.mode.Name(), stats)
	return stats, nil
}

// countingWriter tallies bytes that reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)
	return n, err
}

// ForName returns the Mode registered under name. Both the mode names and
// the binary names are accepted.
func ForName(name string) (Mode, error) {
	switch name {
	case "rows", "row", "rowslc":
		return Rows{}, nil
	case "columns", "column", "cols", "colslc":
		return Columns{}, nil
	}
	return nil, fmt.Errorf("unknown slice mode: %s", name)
}
