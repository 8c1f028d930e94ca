// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings loads the app's persistent settings and keymap
// files and republishes updates as they're edited externally, the
// settings-loader collaborator described alongside the core runtime:
// a TOML settings document plus a JSON-with-comments keymap document,
// both watched for external edits, grounded on the teacher's
// core/settings.go (tomls.Open/tomls.Save round-tripping a Settings
// struct) and driver/desktop/theme_darwin.go (an fsnotify.Watcher
// republishing a parsed value whenever its backing file changes).
package settings

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/reactivecore/core/coreerr"
	"github.com/reactivecore/core/keymap"
)

// AppSettings is the decoded shape of settings.toml: the persistent,
// user-editable preferences the app loads at startup and reloads on
// external edits.
type AppSettings struct {
	Theme       string  `toml:"theme"`
	FontSize    float32 `toml:"font_size"`
	RemSize     float32 `toml:"rem_size"`
	ScrollSpeed float32 `toml:"scroll_speed"`
}

// Defaults returns the built-in defaults applied before a settings file
// is read, and used as-is if no settings file exists yet.
func Defaults() AppSettings {
	return AppSettings{
		Theme:       "dark",
		FontSize:    13,
		RemSize:     16,
		ScrollSpeed: 1,
	}
}

// LoadSettings decodes path (a TOML document) over Defaults, returning
// the defaults unchanged if the file does not yet exist.
func LoadSettings(path string) (AppSettings, error) {
	s := Defaults()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("settings: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings: decoding %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings encodes s as TOML and writes it to path, creating parent
// directories as needed, matching the teacher's SaveSettings idiom of
// always writing the full struct back out rather than patching.
func SaveSettings(path string, s AppSettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: encoding: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// keymapEntry is one JSON-with-comments keymap.json entry, the
// VS-Code-style shape the spec's external-interfaces section names.
type keymapEntry struct {
	Key     string `json:"key"`
	Command string `json:"command"`
	When    string `json:"when,omitempty"`
}

// LoadKeymap decodes path (a JSON-with-comments document, `//` line
// comments stripped before parsing) into a keymap.Keymap, binding each
// entry's "when" clause through keymap.ParsePredicate.
func LoadKeymap(path string) (*keymap.Keymap, error) {
	km := keymap.New()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return km, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: reading %s: %w", path, err)
	}

	var entries []keymapEntry
	if err := json.Unmarshal(stripLineComments(data), &entries); err != nil {
		return nil, coreerr.Wrap(coreerr.KeymapParse, "decoding %s: %v", path, err)
	}
	for _, e := range entries {
		var pred keymap.Predicate
		if e.When != "" {
			p, err := keymap.ParsePredicate(e.When)
			if err != nil {
				return nil, coreerr.Wrap(coreerr.KeymapParse, "%s: when %q: %v", path, e.When, err)
			}
			pred = p
		}
		km.Bind(keymap.Chord(e.Key), pred, e.Command)
	}
	return km, nil
}

// stripLineComments removes "//"-prefixed line comments from data,
// tolerant of // appearing inside a quoted JSON string (tracked via a
// simple in-string flag), the small format-agnostic decode step the
// teacher's base/iox-style readers perform ahead of encoding/json.
func stripLineComments(data []byte) []byte {
	var out bytes.Buffer
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		out.WriteString(stripLineComment(line))
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func stripLineComment(line string) string {
	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '/' && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		}
	}
	return line
}

// Watcher watches a settings.toml and keymap.json file pair for
// external edits, reloading and republishing each via its callback
// whenever fsnotify reports a write or create, the same pattern the
// teacher's theme_darwin.go dark-mode watcher uses for a single file.
type Watcher struct {
	watcher *fsnotify.Watcher

	mu           sync.Mutex
	settingsPath string
	keymapPath   string
	onSettings   func(AppSettings)
	onKeymap     func(*keymap.Keymap)

	done chan struct{}
}

// NewWatcher starts watching settingsPath and keymapPath, calling
// onSettings/onKeymap (either may be nil to ignore that file) once
// immediately with the current contents and again after every external
// change.
func NewWatcher(settingsPath, keymapPath string, onSettings func(AppSettings), onKeymap func(*keymap.Keymap)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings: creating watcher: %w", err)
	}
	w := &Watcher{
		watcher:      fw,
		settingsPath: settingsPath,
		keymapPath:   keymapPath,
		onSettings:   onSettings,
		onKeymap:     onKeymap,
		done:         make(chan struct{}),
	}

	for _, p := range []string{settingsPath, keymapPath} {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if err := fw.Add(dir); err != nil {
			slog.Warn("settings: watch directory failed", slog.String("dir", dir), slog.Any("err", err))
		}
	}

	w.reloadSettings()
	w.reloadKeymap()
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.handleChange(ev.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("settings: watcher error", slog.Any("err", err))
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleChange(name string) {
	w.mu.Lock()
	sp, kp := w.settingsPath, w.keymapPath
	w.mu.Unlock()
	switch {
	case sp != "" && sameFile(name, sp):
		w.reloadSettings()
	case kp != "" && sameFile(name, kp):
		w.reloadKeymap()
	}
}

func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b) || filepath.Base(a) == filepath.Base(b)
}

func (w *Watcher) reloadSettings() {
	if w.settingsPath == "" || w.onSettings == nil {
		return
	}
	s, err := LoadSettings(w.settingsPath)
	if err != nil {
		slog.Warn("settings: reload failed", slog.Any("err", err))
		return
	}
	w.onSettings(s)
}

func (w *Watcher) reloadKeymap() {
	if w.keymapPath == "" || w.onKeymap == nil {
		return
	}
	km, err := LoadKeymap(w.keymapPath)
	if err != nil {
		slog.Warn("keymap: reload failed", slog.Any("err", err))
		return
	}
	w.onKeymap(km)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	return w.watcher.Close()
}
