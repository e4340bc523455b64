// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI shared by rowslc and colslc. It wires the
// --filters flag, @set expansion from config, input selection and the slice
// action, and maps failures to exit codes.
package command
