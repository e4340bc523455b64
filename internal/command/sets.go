// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/slice/internal/config"
	"github.com/tfctl/slice/internal/log"
)

// expandSets replaces every @name argument with the filters configured under
// <tool>.sets.<name>, each as its own --filters flag. args[0] is the binary
// and is never expanded. An argument directly following -f/--filters is a
// filter value and is left alone. Nothing is expanded without a loaded config
// file, and an unknown @name that names an existing file is kept as a path.
func expandSets(tool string, args []string) ([]string, error) {
	if len(args) == 0 || config.Config.Source == "" {
		return args, nil
	}

	expanded := []string{args[0]}
	for i := 1; i < len(args); i++ {
		arg := args[i]

		if isFiltersFlag(arg) && i+1 < len(args) {
			expanded = append(expanded, arg, args[i+1])
			i++
			continue
		}

		if arg == "--" {
			expanded = append(expanded, args[i:]...)
			break
		}

		if !strings.HasPrefix(arg, "@") || len(arg) == 1 {
			expanded = append(expanded, arg)
			continue
		}

		name := arg[1:]
		key := tool + ".sets." + name
		values, err := config.GetStringSlice(key)
		if err != nil {
			if isFile(arg) {
				log.Debugf("%s is not a set, using it as input path", arg)
				expanded = append(expanded, arg)
				continue
			}
			if available := config.Keys(tool + ".sets"); len(available) > 0 {
				return nil, fmt.Errorf("unknown filter set %s (available: %s)", arg, strings.Join(available, ", "))
			}
			return nil, fmt.Errorf("unknown filter set %s", arg)
		}

		for _, v := range values {
			expanded = append(expanded, "--filters", v)
		}
		log.Debugf("expanded %s to %v", arg, values)
	}

	return expanded, nil
}

func isFiltersFlag(arg string) bool {
	return arg == "-f" || arg == "--filters"
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
