// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Example of LoadFS: loads HTML/CSS/JS from embed.FS (no files on disk).
package main

import (
	"context"
	"embed"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	ultralightview "github.com/YindSoft/ultralight-view"
)

//go:embed ui
var uiFiles embed.FS

func main() {
	logFile, err := os.Create("logs.log")
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
		ultralightview.SetLogger(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := &ultralightview.Options{Title: "ultralightview - embed.FS example", Debug: true}
	if err := run(ctx, opts); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, opts *ultralightview.Options) error {
	rt, err := ultralightview.Open(opts)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	view, err := rt.NewView(800, 600)
	if err != nil {
		rt.Close()
		return fmt.Errorf("init: %w", err)
	}
	if err := view.LoadFS(uiFiles, "ui/index.html"); err != nil {
		view.Close()
		rt.Close()
		return fmt.Errorf("LoadFS: %w", err)
	}
	log.Printf("VFS files: %d", rt.FileCount())

	return ultralightview.Run(ctx, rt, view, opts)
}
