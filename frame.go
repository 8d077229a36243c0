// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import "fmt"

// PixelFormat identifies the byte layout of a Frame.
type PixelFormat int

const (
	// FormatBGRA8 is 8 bits per channel, premultiplied, stored B, G, R, A.
	// It is the native output of the content engine and the only format
	// the texture accepts.
	FormatBGRA8 PixelFormat = iota + 1
)

func (f PixelFormat) String() string {
	switch f {
	case FormatBGRA8:
		return "BGRA8"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
}

// Frame is a view of the most recently rendered content: Height rows of
// Width pixels, each row starting Stride bytes after the previous one.
// Pix is only valid until the surface is unlocked.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
	Format PixelFormat
}

// RowBytes is the number of bytes of pixel data in one row, without padding.
func (f Frame) RowBytes() int {
	return f.Width * 4
}

// Tight reports whether rows are packed with no padding between them.
func (f Frame) Tight() bool {
	return f.Stride == f.RowBytes()
}
