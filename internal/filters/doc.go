// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters parses position filters and evaluates 1-based positions
// against them.
//
// A filter selects a single position or an inclusive range of positions. The
// grammar is `[start][:[end]]`:
//
//   - "3"   : exactly position 3
//   - "3:5" : positions 3 through 5
//   - "3:"  : position 3 and everything after it
//   - ":5"  : positions 1 through 5
//   - ":"   : every position
//
// Start and end are unsigned decimal integers. Signs, zero, inverted ranges and
// more than one ':' are rejected.
//
// Filter Sets:
//
// A Set is the union of the filters supplied for one run. A position is kept if
// any filter in the set contains it. An empty Set means no filtering was
// requested; Matches reports true for every position in that case while Apply
// keeps the raw union semantics and reports false.
package filters
