// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/slice/internal/filters"
	"github.com/tfctl/slice/internal/slicer"
)

// sliceCommandAction is the action handler for both tools. Filters are parsed
// before the input is opened so a bad filter never starts a run.
func sliceCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing %s with args=%v", m.Tool, m.Args)

	if cmd.Args().Len() > 1 {
		return fmt.Errorf("too many arguments: %v", cmd.Args().Slice())
	}

	set, err := filters.BuildFilters(cmd.StringSlice("filters"))
	if err != nil {
		return err
	}
	if set.IsEmpty() {
		log.Debug("no filters, keeping everything")
	} else {
		log.Debugf("filters: %s", set)
	}

	input, err := openInput(cmd.Args().First(), m.Stdin)
	if err != nil {
		return err
	}
	defer input.Close()

	stats, err := slicer.New(m.Mode, set).Slice(input, m.Stdout)
	if err != nil {
		return &runtimeError{err: fmt.Errorf("slice operation failed: %w", err)}
	}
	log.Infof("%s done: %s", m.Tool, stats)

	return nil
}
