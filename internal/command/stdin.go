// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	"github.com/tfctl/slice/internal/util"
)

// movePositionals moves positional arguments behind "--", in order. The flag
// parser stops at a lone "-" and drops the flags after it, so "rowslc - -f 2"
// would otherwise run unfiltered. Values of -f/--filters stay with their flag
// and anything already after "--" keeps its place. args[0] is the binary.
func movePositionals(args []string) []string {
	if len(args) == 0 {
		return args
	}

	flags := []string{args[0]}
	var positionals []string
	for i := 1; i < len(args); i++ {
		arg := args[i]

		if isFiltersFlag(arg) && i+1 < len(args) {
			flags = append(flags, arg, args[i+1])
			i++
			continue
		}

		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}

		if arg == util.Stdin || !strings.HasPrefix(arg, "-") {
			positionals = append(positionals, arg)
			continue
		}

		flags = append(flags, arg)
	}

	if len(positionals) == 0 {
		return flags
	}

	return append(append(flags, "--"), positionals...)
}
