// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/apex/log"
)

var (
	// ErrParseInt is wrapped by every error caused by a start or end token that
	// is not an unsigned decimal integer. The underlying *strconv.NumError is
	// wrapped as well.
	ErrParseInt = errors.New("failed to parse filter")

	// ErrInvalidFilter is wrapped by every error caused by a well-formed number
	// that does not make a valid filter, such as an inverted range.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Kind identifies the shape of a Filter's bounds.
type Kind int

const (
	// Exact matches Start only.
	Exact Kind = iota
	// Range matches Start through End inclusive.
	Range
	// RangeFrom matches Start and every later position.
	RangeFrom
	// RangeTo matches 1 through End inclusive.
	RangeTo
	// Full matches every position.
	Full
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Range:
		return "range"
	case RangeFrom:
		return "range-from"
	case RangeTo:
		return "range-to"
	case Full:
		return "full"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Filter is a single parsed --filters expression. Start is always >= 1. End is
// only meaningful for Range and RangeTo, where End >= Start.
type Filter struct {
	Kind  Kind `yaml:"kind" json:"Kind"`
	Start uint `yaml:"start" json:"Start"`
	End   uint `yaml:"end" json:"End"`
}

// Parse parses a single filter expression. An empty expression selects
// position 1.
func Parse(text string) (Filter, error) {
	text = strings.TrimSpace(text)

	left, right, ranged := strings.Cut(text, ":")
	if ranged && strings.Contains(right, ":") {
		return Filter{}, fmt.Errorf("%w: too many ':' in %q", ErrInvalidFilter, text)
	}

	start := uint(1)
	if left != "" {
		n, err := parsePosition(left)
		if err != nil {
			return Filter{}, err
		}
		start = n
	}

	// No colon means a single position.
	if !ranged {
		return Filter{Kind: Exact, Start: start}, nil
	}

	// A trailing colon leaves the range open.
	if right == "" {
		if left == "" {
			return Filter{Kind: Full, Start: 1}, nil
		}
		return Filter{Kind: RangeFrom, Start: start}, nil
	}

	end, err := parsePosition(right)
	if err != nil {
		return Filter{}, err
	}
	if end < start {
		return Filter{}, fmt.Errorf("%w: end [%d] cannot be before start [%d]", ErrInvalidFilter, end, start)
	}

	if left == "" {
		return Filter{Kind: RangeTo, Start: 1, End: end}, nil
	}
	return Filter{Kind: Range, Start: start, End: end}, nil
}

// parsePosition parses a 1-based position. Signs are rejected by
// strconv.ParseUint, zero is rejected here.
func parsePosition(token string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(token), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParseInt, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: positions start at 1, got 0", ErrInvalidFilter)
	}
	return uint(n), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(text string) Filter {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

// Contains reports whether pos falls within the filter.
func (f Filter) Contains(pos uint) bool {
	if pos < f.Start {
		return false
	}

	switch f.Kind {
	case Exact:
		return pos == f.Start
	case Range, RangeTo:
		return pos <= f.End
	case RangeFrom, Full:
		return true
	}
	return false
}

// Bounds returns the filter as a start/end pair. open is true when the filter
// has no upper bound. For Exact filters end equals start.
func (f Filter) Bounds() (start, end uint, open bool) {
	switch f.Kind {
	case RangeFrom, Full:
		return f.Start, 0, true
	case Range, RangeTo:
		return f.Start, f.End, false
	}
	return f.Start, f.Start, false
}

// String renders the filter in its canonical expression form, such that
// Parse(f.String()) yields f.
func (f Filter) String() string {
	switch f.Kind {
	case Range:
		return fmt.Sprintf("%d:%d", f.Start, f.End)
	case RangeFrom:
		return fmt.Sprintf("%d:", f.Start)
	case RangeTo:
		return fmt.Sprintf(":%d", f.End)
	case Full:
		return ":"
	}
	return strconv.FormatUint(uint64(f.Start), 10)
}

// BuildFilters parses each spec in order into a Set. The first invalid spec
// aborts the build and is named in the returned error.
func BuildFilters(specs []string) (Set, error) {
	filters := make([]Filter, 0, len(specs))

	for _, spec := range specs {
		f, err := Parse(spec)
		if err != nil {
			log.Debugf("rejected filter %q: %v", spec, err)
			return Set{}, fmt.Errorf("bad filter %q: %w", spec, err)
		}
		filters = append(filters, f)
	}

	return NewSet(filters...), nil
}
