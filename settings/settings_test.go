// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestSaveThenLoadSettingsRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	want := AppSettings{Theme: "light", FontSize: 15, RemSize: 18, ScrollSpeed: 2}

	require.NoError(t, SaveSettings(path, want))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadKeymapMissingFileReturnsEmptyKeymap(t *testing.T) {
	km, err := LoadKeymap(filepath.Join(t.TempDir(), "keymap.json"))
	require.NoError(t, err)
	_, ok := km.Resolve("Meta+W", nil, nil)
	assert.False(t, ok)
}

func TestLoadKeymapStripsLineComments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.json")
	data := `[
		// close the active item
		{"key": "Meta+W", "command": "CloseItem", "when": "Pane"},
		{"key": "Meta+P", "command": "CommandPalette"} // no context restriction
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	km, err := LoadKeymap(path)
	require.NoError(t, err)

	b, ok := km.Resolve("Meta+W", map[string]bool{"Pane": true}, nil)
	require.True(t, ok)
	assert.Equal(t, "CloseItem", b.Action)

	b, ok = km.Resolve("Meta+P", nil, nil)
	require.True(t, ok)
	assert.Equal(t, "CommandPalette", b.Action)
}

func TestStripLineCommentPreservesSlashesInStrings(t *testing.T) {
	assert.Equal(t, `"a//b"`, stripLineComment(`"a//b"`))
	assert.Equal(t, `"a"`, stripLineComment(`"a" // trailing`))
}
