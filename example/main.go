// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Command example shows a web page in a resizable window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	ultralightview "github.com/YindSoft/ultralight-view"
	"github.com/pkg/profile"
)

func main() {
	var (
		url        = flag.String("url", "https://madebyevan.com/webgl-water/", "page to load")
		file       = flag.String("file", "", "load a local HTML file instead of -url")
		width      = flag.Int("width", 800, "initial window width")
		height     = flag.Int("height", 600, "initial window height")
		baseDir    = flag.String("base-dir", "", "directory containing the bridge library and Ultralight SDK")
		debug      = flag.Bool("debug", false, "enable bridge debug logs (bridge.log, ultralight.log)")
		noVSync    = flag.Bool("no-vsync", false, "present without waiting for vertical sync")
		fixed      = flag.Bool("fixed", false, "disallow resizing the window")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
		logFile    = flag.String("log-file", "logs.log", "log file; empty logs to stderr")
		cpuProfile = flag.String("cpuprofile", "", "write a CPU profile into this directory")
	)
	flag.Parse()

	if err := run(*url, *file, *logLevel, *logFile, *cpuProfile, &ultralightview.Options{
		BaseDir:      *baseDir,
		Debug:        *debug,
		Width:        *width,
		Height:       *height,
		Title:        "ultralightview - " + pageName(*url, *file),
		DisableVSync: *noVSync,
		FixedSize:    *fixed,
	}); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(url, file, logLevel, logFile, cpuProfile string, opts *ultralightview.Options) error {
	logger, closeLog, err := newLogger(logLevel, logFile)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog()
	ultralightview.SetLogger(logger)
	slog.SetDefault(logger)

	if cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfile), profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt, err := ultralightview.Open(opts)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	view, err := rt.NewView(opts.Width, opts.Height)
	if err != nil {
		rt.Close()
		return fmt.Errorf("init: %w", err)
	}

	if file != "" {
		if err := view.LoadFile(file); err != nil {
			view.Close()
			rt.Close()
			return fmt.Errorf("load: %w", err)
		}
	} else {
		view.LoadURL(url)
	}

	if err := ultralightview.Run(ctx, rt, view, opts); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func newLogger(level, path string) (*slog.Logger, func(), error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	out, closeFn := os.Stderr, func() {}
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, err
		}
		out, closeFn = f, func() {
			log.SetOutput(os.Stderr)
			f.Close()
		}
	}
	log.SetOutput(out)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lv})), closeFn, nil
}

func pageName(url, file string) string {
	if file != "" {
		return file
	}
	return strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
}
