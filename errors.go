// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import "errors"

var (
	// ErrShader is returned when the built-in program fails to compile or link.
	// There is no recovery: without it nothing can be drawn.
	ErrShader = errors.New("ultralightview: shader compilation failed")

	// ErrSizeMismatch reports a frame whose dimensions differ from the
	// texture allocation. The upload is skipped and retried next frame.
	ErrSizeMismatch = errors.New("ultralightview: frame size does not match texture")

	// ErrPixelFormat reports a frame in a layout other than BGRA8.
	ErrPixelFormat = errors.New("ultralightview: unsupported pixel format")

	// ErrShortBuffer reports a frame whose pixel slice or stride cannot hold
	// its declared dimensions.
	ErrShortBuffer = errors.New("ultralightview: pixel buffer too short")

	// ErrInvalidSize reports a non-positive width or height.
	ErrInvalidSize = errors.New("ultralightview: invalid size")

	// ErrClosed is returned by Session methods after Close.
	ErrClosed = errors.New("ultralightview: session closed")

	// ErrStopped is returned by the Driver once a close request was seen.
	ErrStopped = errors.New("ultralightview: driver stopped")
)
