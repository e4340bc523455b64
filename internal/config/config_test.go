// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets SLC_CFG_FILE to point to a test config file and resets
// the global Config.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv(EnvFile, absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

// withConfig sets up a test config, loads it and executes fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	setupTestConfig(t, testFile)
	_, err := Load()
	require.NoError(t, err)
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "sets",
			testFile: "sets.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.True(t, filepath.IsAbs(cfg.Source))
				assert.Contains(t, cfg.Data, "rowslc")
				assert.Contains(t, cfg.Data, "colslc")
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
		{
			name:     "invalid yaml",
			testFile: "invalid.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	t.Setenv(EnvFile, "/nonexistent/path/slice.yaml")
	Config = Type{}

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadConfigFileIsDirectory(t *testing.T) {
	t.Setenv(EnvFile, "testdata")
	Config = Type{}

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestPathStandardLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvFile, "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	_, err := Path()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetStringSlice(t *testing.T) {
	tests := []struct {
		name         string
		namespace    string
		key          string
		defaultValue [][]string
		want         []string
		wantErr      bool
	}{
		{name: "flow list", key: "rowslc.sets.head", want: []string{"1:10"}},
		{name: "scalar string", key: "rowslc.sets.tail", want: []string{"5:"}},
		{name: "unquoted ints", key: "rowslc.sets.numbers", want: []string{"1", "3"}},
		{name: "namespace preferred", namespace: "rowslc", key: "filters", want: []string{"1", "3:4"}},
		{name: "falls back to global", namespace: "colslc", key: "filters", want: []string{"1"}},
		{name: "missing with default", key: "rowslc.sets.nope", defaultValue: [][]string{{"2"}}, want: []string{"2"}},
		{name: "missing without default", key: "rowslc.sets.nope", wantErr: true},
		{name: "nested list", key: "colslc.sets.broken", wantErr: true},
		{name: "map is not a slice", key: "rowslc.sets", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, "sets.yaml", func(t *testing.T) {
				Config.Namespace = tt.namespace

				got, err := GetStringSlice(tt.key, tt.defaultValue...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}

				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestKeys(t *testing.T) {
	withConfig(t, "sets.yaml", func(t *testing.T) {
		assert.Equal(t, []string{"head", "numbers", "tail"}, Keys("rowslc.sets"))
		assert.Nil(t, Keys("rowslc.filters"))
		assert.Nil(t, Keys("missing"))
	})
}

func TestUnloadedConfigIsEmpty(t *testing.T) {
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := GetStringSlice("rowslc.filters")
	assert.Error(t, err)
	assert.Nil(t, Keys("rowslc"))
}
