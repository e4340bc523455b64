// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// versionFlag is handled by Execute before the app runs. It is declared so the
// flag parser accepts it and --help lists it.
var versionFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "version",
	Aliases:     []string{"v"},
	Usage:       "print the version",
	HideDefault: true,
}

// NewFiltersFlag constructs the repeatable --filters flag. Each value is a
// filter expression; a comma separated list in one value is also accepted.
// When cfgPath names a config file, <ns>.filters and then filters from that
// file are used if the flag is not given on the command line.
func NewFiltersFlag(ns string, cfgPath string) (flag *cli.StringSliceFlag) {
	flag = &cli.StringSliceFlag{
		Name:    "filters",
		Aliases: []string{"f"},
		Usage:   "positions to keep: N, N:M, N:, :M or : (repeatable)",
	}

	if cfgPath != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(ns, cfgPath, flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringSliceFlag) *cli.StringSliceFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
