// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for the optional user
// configuration shared by rowslc and colslc. The configuration is a YAML
// document located by SLC_CFG_FILE or in the user's configuration directory:
//   - Linux/macOS: $XDG_CONFIG_HOME/slice.yaml or $HOME/.config/slice.yaml
//   - Windows: %APPDATA%/slice.yaml
//
// Keys are namespaced by tool name:
//
//	rowslc:
//	  filters: ["1"]          # used when no --filters are given
//	  sets:
//	    head: ["1:10"]        # expanded by `rowslc @head`
//	colslc:
//	  sets:
//	    names: ["1"]
//
// A missing file is not an error for the tools; they simply run unconfigured.
package config
