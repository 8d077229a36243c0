// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package ultralightview

import (
	"fmt"
	"syscall"
)

func openBridge(absPath string) (uintptr, error) {
	lib, err := syscall.LoadLibrary(absPath)
	if err != nil {
		return 0, err
	}
	return uintptr(lib), nil
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := syscall.GetProcAddress(syscall.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found in DLL", name)
	}
	return sym, nil
}

func bridgeLibName() string {
	return "ul_bridge.dll"
}
