// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import "fmt"

// Uploader copies frames into a texture. The zero value is ready to use.
type Uploader struct {
	// rows of padded frames are packed here before the write
	scratch []byte
}

// Upload writes the whole frame into tex. The texture is never
// reallocated: a frame of a different size yields ErrSizeMismatch and
// nothing is written. Padded rows are packed so only pixel data reaches
// the texture.
func (u *Uploader) Upload(tex Texture, f Frame) error {
	if f.Format != FormatBGRA8 {
		return fmt.Errorf("%w: %s", ErrPixelFormat, f.Format)
	}
	tw, th := tex.Size()
	if f.Width != tw || f.Height != th {
		return fmt.Errorf("%w: frame %dx%d, texture %dx%d", ErrSizeMismatch, f.Width, f.Height, tw, th)
	}
	row := f.RowBytes()
	if f.Stride < row || len(f.Pix) < f.Stride*(f.Height-1)+row {
		return fmt.Errorf("%w: %d bytes, stride %d, for %dx%d", ErrShortBuffer, len(f.Pix), f.Stride, f.Width, f.Height)
	}

	if f.Tight() {
		tex.WritePixels(f.Pix[:row*f.Height])
		return nil
	}

	n := row * f.Height
	if cap(u.scratch) < n {
		u.scratch = make([]byte, n)
	}
	dst := u.scratch[:n]
	for y := 0; y < f.Height; y++ {
		src := y * f.Stride
		copy(dst[y*row:(y+1)*row], f.Pix[src:src+row])
	}
	tex.WritePixels(dst)
	return nil
}
