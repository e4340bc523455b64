// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tfctl/slice/internal/config"
	"github.com/tfctl/slice/internal/log"
	"github.com/tfctl/slice/internal/meta"
	"github.com/tfctl/slice/internal/slicer"
	"github.com/tfctl/slice/internal/version"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitUsage   = 1 // bad arguments, unknown set, unopenable input
	ExitRuntime = 2 // read or write failure while slicing
)

// Execute runs tool with args (args[0] is the binary) and returns the process
// exit code. Errors are reported on streams.Stderr prefixed with "error: ".
func Execute(ctx context.Context, tool string, args []string, streams meta.Streams) int {
	log.InitLoggerTo(streams.Stderr)
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		fmt.Fprintln(streams.Stdout, version.For(tool))
		return ExitOK
	}

	mode, err := slicer.ForName(tool)
	if err != nil {
		printError(streams.Stderr, err)
		return ExitUsage
	}

	cfg := loadConfig(tool)

	args, err = expandSets(tool, args)
	if err != nil {
		printError(streams.Stderr, err)
		return ExitUsage
	}
	args = movePositionals(args)
	log.Debugf("args after set processing: args=%v", args)

	app, err := InitApp(ctx, meta.Meta{
		Tool:    tool,
		Args:    args,
		Config:  cfg,
		Mode:    mode,
		Streams: streams,
	})
	if err != nil {
		printError(streams.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return ExitUsage
	}

	if err := app.Run(ctx, args); err != nil {
		printError(streams.Stderr, err)
		log.Debugf("app run err: err=%v", err)

		var rt *runtimeError
		if errors.As(err, &rt) {
			return ExitRuntime
		}
		return ExitUsage
	}

	return ExitOK
}

// loadConfig loads the optional config file namespaced to tool. A missing
// file is normal; an unreadable one is only worth a warning.
func loadConfig(tool string) config.Type {
	config.Config = config.Type{Namespace: tool}

	cfg, err := config.Load()
	switch {
	case errors.Is(err, config.ErrNotFound):
		log.Debugf("no config file")
	case err != nil:
		log.Warnf("ignoring config: %v", err)
	}

	return cfg
}

// handleVersion checks for --version/-v and returns whether it was handled.
// Anything after "--" is an argument, not a flag.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "--version" || a == "-v" {
			return true
		}
	}
	return false
}

// printError writes err prefixed with "error: ". The prefix is styled only
// when w is a terminal.
func printError(w io.Writer, err error) {
	prefix := "error:"
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		prefix = lipgloss.NewRenderer(w).NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")).
			Render(prefix)
	}
	fmt.Fprintf(w, "%s %s\n", prefix, err)
}
