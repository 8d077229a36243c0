// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"fmt"
	"log/slog"
	"os"
	"unsafe"
)

// ContentSurface is the off-screen surface a page is rendered into.
type ContentSurface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Resize changes the surface dimensions. The next frame reports the new size.
	Resize(width, height int) error

	// LockPixels returns the most recent fully rendered frame. ok is false
	// when nothing has been rendered yet. A successful lock must be paired
	// with UnlockPixels before the next engine tick.
	LockPixels() (f Frame, ok bool)
	UnlockPixels()

	Close() error
}

// Engine is the content engine's event pump.
type Engine interface {
	// Tick processes the work queued so far and returns without waiting
	// for more.
	Tick()

	Close() error
}

// Runtime is the loaded Ultralight bridge. It implements Engine.
type Runtime struct {
	views  map[int32]*View
	closed bool
}

// Open loads the bridge library and initializes Ultralight.
func Open(opts *Options) (*Runtime, error) {
	o := resolveOptions(opts)
	if err := initBridge(o.BaseDir); err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	if err := ensureULInit(o.BaseDir, o.Debug); err != nil {
		return nil, err
	}
	return &Runtime{views: make(map[int32]*View)}, nil
}

// NewView creates a headless view of the given size.
func (rt *Runtime) NewView(width, height int) (*View, error) {
	if rt.closed {
		return nil, fmt.Errorf("runtime closed")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	viewID := ulCreateView(int32(width), int32(height))
	if viewID < 0 {
		return nil, fmt.Errorf("ul_create_view failed with code %d", viewID)
	}
	v := &View{rt: rt, viewID: viewID}
	rt.views[viewID] = v
	Logger().Debug("view created",
		slog.Int("view", int(viewID)),
		slog.Int("width", width),
		slog.Int("height", height),
	)
	return v, nil
}

// Tick advances Ultralight: timers, network, layout and painting. The
// console output of every view is drained into the logger.
func (rt *Runtime) Tick() {
	if rt.closed {
		return
	}
	ulTick()
	for id := range rt.views {
		for {
			msg, ok := pollConsoleMessage(id)
			if !ok {
				break
			}
			Logger().Debug("console", slog.Int("view", int(id)), slog.String("msg", msg))
		}
	}
}

// Close destroys any view still open and shuts Ultralight down.
func (rt *Runtime) Close() error {
	if rt.closed {
		return nil
	}
	for _, v := range rt.views {
		v.Close()
	}
	rt.closed = true
	ulDestroy()
	return nil
}

// View is one Ultralight view. It implements ContentSurface.
type View struct {
	rt     *Runtime
	viewID int32
	locked bool
	closed bool
}

// LoadURL navigates the view to url.
func (v *View) LoadURL(url string) {
	if v.closed {
		return
	}
	ulViewLoadURL(v.viewID, url)
}

// LoadHTML replaces the page with html.
func (v *View) LoadHTML(html []byte) {
	if v.closed || len(html) == 0 {
		return
	}
	ulViewLoadHTML(v.viewID, string(html))
}

// LoadFile loads the HTML file at filePath.
func (v *View) LoadFile(filePath string) error {
	htmlBytes, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading HTML file %s: %w", filePath, err)
	}
	v.LoadHTML(htmlBytes)
	return nil
}

// Eval runs JavaScript in the page. Fire-and-forget (no return value).
func (v *View) Eval(script string) {
	if v.closed {
		return
	}
	ulViewEvalJS(v.viewID, script)
}

func (v *View) Size() (int, int) {
	if v.closed {
		return 0, 0
	}
	return int(ulViewGetWidth(v.viewID)), int(ulViewGetHeight(v.viewID))
}

func (v *View) Resize(width, height int) error {
	if v.closed {
		return fmt.Errorf("view %d closed", v.viewID)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	ulViewResize(v.viewID, uint32(width), uint32(height))
	return nil
}

func (v *View) LockPixels() (Frame, bool) {
	if v.closed {
		return Frame{}, false
	}
	ptr := ulViewGetPixels(v.viewID)
	if ptr == 0 {
		return Frame{}, false
	}

	w := ulViewGetWidth(v.viewID)
	h := ulViewGetHeight(v.viewID)
	rowBytes := ulViewGetRowBytes(v.viewID)

	if w == 0 || h == 0 {
		ulViewUnlockPixels(v.viewID)
		return Frame{}, false
	}
	v.locked = true

	totalBytes := uintptr(rowBytes) * uintptr(h)
	return Frame{
		Pix:    unsafe.Slice((*byte)(unsafe.Pointer(ptr)), totalBytes),
		Width:  int(w),
		Height: int(h),
		Stride: int(rowBytes),
		Format: FormatBGRA8,
	}, true
}

func (v *View) UnlockPixels() {
	if !v.locked {
		return
	}
	v.locked = false
	ulViewUnlockPixels(v.viewID)
}

// Close destroys the view. Calling it again does nothing.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.UnlockPixels()
	v.closed = true
	ulDestroyView(v.viewID)
	delete(v.rt.views, v.viewID)
	return nil
}
