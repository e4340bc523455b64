// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/tfctl/slice/internal/config"
	"github.com/tfctl/slice/internal/slicer"
)

// Streams are the process boundaries a run reads from and writes to.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Meta contains runtime metadata shared by the command action. It carries
// CLI arguments, loaded configuration, context, the tool name, the slicing
// mode and the standard streams.
type Meta struct {
	Tool    string
	Args    []string
	Config  config.Type
	Context context.Context
	Mode    slicer.Mode
	Streams
}
