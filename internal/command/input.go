// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/tfctl/slice/internal/log"
	"github.com/tfctl/slice/internal/util"
)

// openInput opens the named file, or stdin for "" and "-". The caller closes
// the result; closing stdin is a no-op.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	resolved, useStdin, err := util.ParseInputPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	if useStdin {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			log.Infof("reading from terminal, end input with Ctrl-D")
		}
		log.Debugf("input: stdin")
		return io.NopCloser(stdin), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	log.Debugf("input: %s", resolved)
	return file, nil
}
