// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/slice/internal/config"
	"github.com/tfctl/slice/internal/meta"
)

// usages holds the one-line description of each tool.
var usages = map[string]string{
	"rows":    "select lines by position",
	"columns": "select whitespace separated columns by position",
}

// setsHelp explains @SET arguments in --help.
func setsHelp(tool string) string {
	return fmt.Sprintf("@SET expands to the filters listed under %s.sets.SET in %s.\n"+
		"With a config file loaded, pass an input file starting with @ as ./@file.",
		tool, config.FileName)
}

// InitApp builds the root command for the tool described by m. m.Mode and
// m.Tool must be set.
func InitApp(ctx context.Context, m meta.Meta) (*cli.Command, error) {
	if m.Mode == nil {
		return nil, fmt.Errorf("no slice mode for %s", m.Tool)
	}
	m.Context = ctx

	app := &cli.Command{
		Name:            m.Tool,
		Usage:           usages[m.Mode.Name()],
		UsageText:       m.Tool + " [path] [-f|--filters FILTER ...] [@SET ...]",
		Description:     setsHelp(m.Tool),
		ArgsUsage:       "[path]",
		HideHelpCommand: true,
		Metadata: map[string]any{
			"meta": m,
		},
		Reader:    m.Stdin,
		Writer:    m.Stdout,
		ErrWriter: m.Stderr,
		Flags: []cli.Flag{
			versionFlag,
			NewFiltersFlag(m.Tool, m.Config.Source),
		},
		// Report usage errors through Execute instead of dumping help.
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
		Action: sliceCommandAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
