// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"os"
	"path/filepath"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTitle  = "Ultralight View"
)

// Options for opening the engine and running the window. All fields are optional.
type Options struct {
	BaseDir string // Directory containing the bridge shared library and Ultralight SDK libraries. Defaults to working directory, then the executable's directory.
	Debug   bool   // Enable bridge debug logging (creates bridge.log and ultralight.log).

	Width  int    // Initial window and view width in pixels. Default 800.
	Height int    // Initial window and view height in pixels. Default 600.
	Title  string // Window title.

	DisableVSync bool // Present without waiting for vertical sync.
	FixedSize    bool // Disallow resizing the window.
}

func resolveOptions(opts *Options) Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Title == "" {
		o.Title = defaultTitle
	}
	if o.BaseDir == "" {
		o.BaseDir = findBaseDir()
	}
	return o
}

func findBaseDir() string {
	baseDir, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(baseDir, bridgeLibName())); err != nil {
		if exe, _ := os.Executable(); exe != "" {
			baseDir = filepath.Dir(exe)
		}
	}
	return baseDir
}
