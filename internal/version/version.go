// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other slice packages to avoid import cycles.

package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the module version stamped by the Go toolchain, or "dev" for
// local builds.
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// For returns the version line printed by a tool.
func For(tool string) string {
	return fmt.Sprintf("%s %s", tool, Version)
}
