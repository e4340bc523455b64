// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command colslc selects whitespace separated columns by position.
//
//	colslc [path] [-f|--filters FILTER ...]
package main

import (
	"context"
	"os"

	"github.com/tfctl/slice/internal/command"
	"github.com/tfctl/slice/internal/meta"
)

var ctx = context.Background()

func main() {
	os.Exit(command.Execute(ctx, "colslc", os.Args, meta.Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}))
}
