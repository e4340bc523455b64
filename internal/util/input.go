// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Stdin is the path spelling that selects standard input.
const Stdin = "-"

// ParseInputPath resolves the optional input path argument. An empty path or
// "-" selects stdin and returns ("", true, nil). Any other path is made
// absolute and must name an existing entry that is not a directory.
func ParseInputPath(path string) (string, bool, error) {
	if path == "" || path == Stdin {
		return "", true, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", false, err
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("%s: %w", path, errIsDir)
	}

	return abs, false, nil
}

var errIsDir = errors.New("is a directory")
