// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"strings"
)

// Set is the union of the filters supplied for one run. The zero value is an
// empty, unfiltered Set. A Set is immutable once built.
type Set struct {
	filters []Filter
}

// NewSet builds a Set from filters. The order is kept so evaluation is
// deterministic, but it has no effect on the result.
func NewSet(filters ...Filter) Set {
	if len(filters) == 0 {
		return Set{}
	}
	return Set{filters: append([]Filter(nil), filters...)}
}

// Apply reports whether pos is contained in any filter of the set. Filters
// are checked in order and the first match wins. An empty set contains
// nothing, so callers that want "no filters means keep everything" must use
// Matches or check IsEmpty first.
func (s Set) Apply(pos uint) bool {
	for _, f := range s.filters {
		if f.Contains(pos) {
			return true
		}
	}
	return false
}

// Matches is Apply with the unfiltered case made explicit: every position
// matches an empty set.
func (s Set) Matches(pos uint) bool {
	if s.IsEmpty() {
		return true
	}
	return s.Apply(pos)
}

// IsEmpty reports whether the set holds no filters.
func (s Set) IsEmpty() bool {
	return len(s.filters) == 0
}

// Len returns the number of filters in the set.
func (s Set) Len() int {
	return len(s.filters)
}

// Filters returns a copy of the filters in their original order.
func (s Set) Filters() []Filter {
	return append([]Filter(nil), s.filters...)
}

// Exhausted reports whether neither pos nor any later position can match.
// It is always false for an empty set.
func (s Set) Exhausted(pos uint) bool {
	if s.IsEmpty() {
		return false
	}
	for _, f := range s.filters {
		_, end, open := f.Bounds()
		if open || pos <= end {
			return false
		}
	}
	return true
}

// String renders the set as a comma separated list of filter expressions.
func (s Set) String() string {
	parts := make([]string, len(s.filters))
	for i, f := range s.filters {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}
