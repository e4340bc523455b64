// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/slice/internal/config"
)

func TestExpandSets(t *testing.T) {
	writeConfig(t, `
rowslc:
  sets:
    head: ["1:10"]
    pair: ["1", "3"]
`)
	_, err := config.Load()
	require.NoError(t, err)

	tests := []struct {
		name     string
		args     []string
		expected []string
		wantErr  string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "nothing to expand",
			args:     []string{"rowslc", "in.txt", "-f", "2"},
			expected: []string{"rowslc", "in.txt", "-f", "2"},
		},
		{
			name:     "single entry",
			args:     []string{"rowslc", "@head"},
			expected: []string{"rowslc", "--filters", "1:10"},
		},
		{
			name:     "multiple entries keep position",
			args:     []string{"rowslc", "in.txt", "@pair", "-f", "9"},
			expected: []string{"rowslc", "in.txt", "--filters", "1", "--filters", "3", "-f", "9"},
		},
		{
			name:     "filter value is not a set",
			args:     []string{"rowslc", "-f", "@head"},
			expected: []string{"rowslc", "-f", "@head"},
		},
		{
			name:     "after double dash",
			args:     []string{"rowslc", "--", "@head"},
			expected: []string{"rowslc", "--", "@head"},
		},
		{
			name:     "bare at sign",
			args:     []string{"rowslc", "@"},
			expected: []string{"rowslc", "@"},
		},
		{
			name:    "unknown set lists available",
			args:    []string{"rowslc", "@tail"},
			wantErr: "unknown filter set @tail (available: head, pair)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandSets("rowslc", tt.args)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpandSetsNeedsConfig(t *testing.T) {
	isolateConfig(t)
	config.Config = config.Type{Namespace: "rowslc"}

	args := []string{"rowslc", "@head", "-f", "1"}
	got, err := expandSets("rowslc", args)
	require.NoError(t, err)
	assert.Equal(t, args, got)
}

func TestExpandSetsKeepsExistingFile(t *testing.T) {
	writeConfig(t, "rowslc:\n  sets:\n    head: [\"1\"]\n")
	_, err := config.Load()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "@data.txt"), nil, 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "@dir"), 0o700))
	t.Chdir(dir)

	got, err := expandSets("rowslc", []string{"rowslc", "@data.txt", "@head"})
	require.NoError(t, err)
	assert.Equal(t, []string{"rowslc", "@data.txt", "--filters", "1"}, got)

	_, err = expandSets("rowslc", []string{"rowslc", "@dir"})
	assert.EqualError(t, err, "unknown filter set @dir (available: head)")
}

func TestHandleVersion(t *testing.T) {
	assert.True(t, handleVersion([]string{"rowslc", "--version"}))
	assert.True(t, handleVersion([]string{"rowslc", "in.txt", "-v"}))
	assert.False(t, handleVersion([]string{"rowslc", "-f", "1"}))
	assert.False(t, handleVersion([]string{"rowslc", "--", "-v"}))
}
