// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

func init() {
	// Ultralight and the display system both require all calls on the same OS thread.
	runtime.LockOSThread()
}

var (
	ulInit                  func(baseDir string, debug int32) int32
	ulCreateView            func(width, height int32) int32
	ulDestroyView           func(viewID int32)
	ulViewResize            func(viewID int32, width, height uint32)
	ulViewLoadHTML          func(viewID int32, html string)
	ulViewLoadURL           func(viewID int32, url string)
	ulTick                  func()
	ulViewGetPixels         func(viewID int32) uintptr
	ulViewUnlockPixels      func(viewID int32)
	ulViewGetWidth          func(viewID int32) uint32
	ulViewGetHeight         func(viewID int32) uint32
	ulViewGetRowBytes       func(viewID int32) uint32
	ulViewEvalJS            func(viewID int32, js string)
	ulViewGetConsoleMessage func(viewID int32, buf uintptr, bufSize int32) int32
	ulVfsRegister           func(path string, data uintptr, size int64) int32
	ulVfsClear              func()
	ulVfsCount              func() int32
	ulDestroy               func()
)

var (
	bridgeOnce sync.Once
	initErr    error
	ulInitOnce sync.Once
	ulInitErr  error
)

func initBridge(baseDir string) error {
	bridgeOnce.Do(func() {
		initErr = doInitBridge(baseDir)
	})
	return initErr
}

// ensureULInit calls ul_init(baseDir, debug) once. Must be called after initBridge.
func ensureULInit(baseDir string, debug bool) error {
	ulInitOnce.Do(func() {
		d := int32(0)
		if debug {
			d = 1
		}
		if rc := ulInit(baseDir, d); rc != 0 {
			ulInitErr = fmt.Errorf("ul_init failed with code %d", rc)
		}
	})
	return ulInitErr
}

func doInitBridge(baseDir string) error {
	libPath := filepath.Join(baseDir, bridgeLibName())
	absPath, err := filepath.Abs(libPath)
	if err != nil {
		absPath = libPath
	}
	handle, err := openBridge(absPath)
	if err != nil {
		return fmt.Errorf("failed to load %s from %s: %w", bridgeLibName(), absPath, err)
	}
	return resolveAllSymbols(handle)
}

func resolveAllSymbols(handle uintptr) error {
	for _, reg := range []struct {
		fptr interface{}
		name string
	}{
		{&ulInit, "ul_init"},
		{&ulCreateView, "ul_create_view"},
		{&ulDestroyView, "ul_destroy_view"},
		{&ulViewResize, "ul_view_resize"},
		{&ulViewLoadHTML, "ul_view_load_html"},
		{&ulViewLoadURL, "ul_view_load_url"},
		{&ulTick, "ul_tick"},
		{&ulViewGetPixels, "ul_view_get_pixels"},
		{&ulViewUnlockPixels, "ul_view_unlock_pixels"},
		{&ulViewGetWidth, "ul_view_get_width"},
		{&ulViewGetHeight, "ul_view_get_height"},
		{&ulViewGetRowBytes, "ul_view_get_row_bytes"},
		{&ulViewEvalJS, "ul_view_eval_js"},
		{&ulViewGetConsoleMessage, "ul_view_get_console_message"},
		{&ulVfsRegister, "ul_vfs_register"},
		{&ulVfsClear, "ul_vfs_clear"},
		{&ulVfsCount, "ul_vfs_count"},
		{&ulDestroy, "ul_destroy"},
	} {
		sym, err := getSymbolAddr(handle, reg.name)
		if err != nil {
			return fmt.Errorf("%s: %w (recompile %s)", reg.name, err, bridgeLibName())
		}
		purego.RegisterFunc(reg.fptr, sym)
	}
	return nil
}

func pollConsoleMessage(viewID int32) (string, bool) {
	var buf [2048]byte
	n := ulViewGetConsoleMessage(viewID, uintptr(unsafe.Pointer(&buf[0])), int32(len(buf)))
	if n <= 0 {
		return "", false
	}
	return string(buf[:n]), true
}
