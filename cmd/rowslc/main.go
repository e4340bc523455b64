// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command rowslc selects input lines by position.
//
//	rowslc [path] [-f|--filters FILTER ...]
package main

import (
	"context"
	"os"

	"github.com/tfctl/slice/internal/command"
	"github.com/tfctl/slice/internal/meta"
)

var ctx = context.Background()

func main() {
	os.Exit(command.Execute(ctx, "rowslc", os.Args, meta.Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}))
}
