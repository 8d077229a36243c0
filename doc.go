// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package ultralightview shows a headless Ultralight 1.4 web view in an
// Ebitengine window by streaming its pixels into a GPU texture drawn on a
// full-screen quad.
//
// Basic usage:
//
//	import ultralightview "github.com/YindSoft/ultralight-view"
//
//	rt, err := ultralightview.Open(nil)
//	if err != nil { ... }
//	view, err := rt.NewView(800, 600)
//	if err != nil { ... }
//	view.LoadURL("https://example.com")
//	// or: view.LoadFile("ui/index.html")
//	// or: view.LoadFS(uiFiles, "ui/index.html")
//
//	// Run blocks until the window is closed, then releases the GPU
//	// resources, the view and the runtime, in that order.
//	err = ultralightview.Run(ctx, rt, view, &ultralightview.Options{Title: "demo"})
//
// Every frame the latest rendered page is copied into the texture with no
// pixel conversion; the fragment shader reads the BGRA bytes directly.
// When the window is resized, the texture is reallocated and the view is
// resized to the same framebuffer size before the next frame is drawn.
//
// The GPU and the content engine are reached through the [Device],
// [ContentSurface] and [Engine] interfaces, so [Session] and [Driver] can
// be driven by other backends and by tests.
//
// Logging is silent by default; see [SetLogger].
//
// Requirements: the bridge shared library (ul_bridge.dll on Windows,
// libul_bridge.so on Linux, libul_bridge.dylib on macOS) and the Ultralight 1.4
// SDK libraries must be present next to the executable or in the directory
// specified by [Options.BaseDir].
package ultralightview
