// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package ultralightview

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func openBridge(absPath string) (uintptr, error) {
	return purego.Dlopen(absPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func bridgeLibName() string {
	if runtime.GOOS == "darwin" {
		return "libul_bridge.dylib"
	}
	return "libul_bridge.so"
}
