// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unsafe"
)

// RegisterFile registers a file in Ultralight's VFS.
// filePath is the virtual path (e.g., "ui/style.css"). data is the content.
// Registered files take priority over disk files.
func (rt *Runtime) RegisterFile(filePath string, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	norm := vfsPath(filePath)
	rc := ulVfsRegister(norm, uintptr(unsafe.Pointer(&data[0])), int64(len(data)))
	if rc != 0 {
		return fmt.Errorf("ul_vfs_register failed for %q: code %d", norm, rc)
	}
	return nil
}

// RegisterFS registers every file of fsys in the VFS so that pages can
// reference them with relative paths.
func (rt *Runtime) RegisterFS(fsys fs.FS) error {
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, readErr := fs.ReadFile(fsys, p)
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", p, readErr)
		}
		return rt.RegisterFile(p, data)
	})
	if err != nil {
		return fmt.Errorf("walking FS: %w", err)
	}
	return nil
}

// ClearFiles frees all files registered in the VFS.
func (rt *Runtime) ClearFiles() {
	ulVfsClear()
}

// FileCount returns the number of files registered in the VFS.
func (rt *Runtime) FileCount() int {
	return int(ulVfsCount())
}

// LoadFS registers all files of fsys and navigates the view to mainFile,
// which is relative to the FS root (e.g., "ui/index.html").
//
// Example with embed.FS:
//
//	//go:embed ui
//	var uiFiles embed.FS
//	err := view.LoadFS(uiFiles, "ui/index.html")
func (v *View) LoadFS(fsys fs.FS, mainFile string) error {
	if err := v.rt.RegisterFS(fsys); err != nil {
		return err
	}
	v.LoadURL(vfsURL(mainFile))
	return nil
}

func vfsPath(p string) string {
	norm := strings.ReplaceAll(p, "\\", "/")
	return strings.TrimLeft(norm, "/")
}

func vfsURL(mainFile string) string {
	return "file:///" + vfsPath(path.Clean(strings.ReplaceAll(mainFile, "\\", "/")))
}
