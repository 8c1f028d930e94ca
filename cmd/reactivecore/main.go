// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command reactivecore is the runtime's own host process: it loads
// settings and keymap files, opens a window against the offscreen
// backend, starts the devtools inspector, and runs the frame pipeline
// until the window is closed. Bootstrap shape grounded on the
// teacher's cmd/core/core.go entrypoint and core/app.go's TheApp
// singleton startup.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/muesli/termenv"

	"github.com/reactivecore/core/colors"
	"github.com/reactivecore/core/core"
	"github.com/reactivecore/core/devtools"
	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/keymap"
	"github.com/reactivecore/core/settings"
	"github.com/reactivecore/core/styles"
	"github.com/reactivecore/core/system"
	"github.com/reactivecore/core/system/offscreen"
)

func main() {
	devtoolsAddr := flag.String("devtools", "", "address to serve the devtools inspector on, e.g. :6060 (disabled if empty)")
	flag.Parse()

	printBanner()

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	configDir = filepath.Join(configDir, "reactivecore")

	appSettings, err := settings.LoadSettings(filepath.Join(configDir, "settings.toml"))
	if err != nil {
		slog.Warn("failed to load settings, using defaults", slog.Any("err", err))
		appSettings = settings.Defaults()
	}

	plat := offscreen.NewPlatform(1920, 1080)
	app := core.NewApp(plat, 256, runtime.NumCPU())

	if km, err := settings.LoadKeymap(filepath.Join(configDir, "keymap.json")); err != nil {
		slog.Warn("failed to load keymap, continuing with no bindings", slog.Any("err", err))
	} else {
		app.Context.Keymap = km
	}

	registry := core.NewActionRegistry()
	win, err := core.NewWindow(app.Context, plat, system.WindowOptions{
		Title: "reactivecore",
		Bounds: geom.Bounds[geom.Pixels]{
			Size: geom.Sz[geom.Pixels](1024, 768),
		},
	}, registry)
	if err != nil {
		slog.Error("failed to open window", slog.Any("err", err))
		os.Exit(1)
	}
	win.Platform.SetRemSize(geom.Pixels(appSettings.RemSize))

	app.SetRoot(win, func(cx *core.WindowContext) core.Element {
		s := styles.Default()
		s.Background = colors.FromRGB(24, 24, 28)
		return core.NewDiv(s)
	})

	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	if _, err := settings.NewWatcher(
		filepath.Join(configDir, "settings.toml"),
		filepath.Join(configDir, "keymap.json"),
		func(s settings.AppSettings) { appSettings = s },
		func(k *keymap.Keymap) {
			app.Context.Keymap = k
			win.SetKeymap(app.Context, k)
		},
	); err != nil {
		slog.Warn("settings watcher disabled", slog.Any("err", err))
	}

	if *devtoolsAddr != "" {
		srv := devtools.NewServer(app, 0)
		go srv.Run(watchCtx)
		mux := http.NewServeMux()
		mux.Handle("/inspect", srv)
		go func() {
			if err := http.ListenAndServe(*devtoolsAddr, mux); err != nil {
				slog.Warn("devtools server stopped", slog.Any("err", err))
			}
		}()
	}

	win.Invalidate(app.Context)
	app.Run([]*core.Window{win})
}

func printBanner() {
	out := termenv.NewOutput(os.Stderr)
	fmt.Fprintln(os.Stderr, out.String("reactivecore").Bold().Foreground(termenv.ANSIBrightBlue).String())
}
