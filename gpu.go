// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"fmt"
)

// Texture is a GPU image holding the content surface's pixels.
type Texture interface {
	// Size returns the allocated dimensions.
	Size() (width, height int)

	// WritePixels replaces the whole image with pix, which must be exactly
	// 4*width*height bytes of BGRA8. The allocation is not changed.
	WritePixels(pix []byte)

	// Release frees the GPU storage. The texture must not be used afterwards.
	Release()
}

// Program is a compiled vertex/fragment pair.
type Program interface {
	Release()
}

// Device is the GPU side of the bridge: it creates the resources and
// draws the quad into the current output.
type Device interface {
	NewTexture(width, height int) (Texture, error)
	CompileProgram(src []byte) (Program, error)

	// SetViewport sets the output area normalized device coordinates map onto.
	SetViewport(width, height int)

	// Clear clears the output color buffer.
	Clear()

	// DrawQuad issues one indexed draw of q, sampling tex with p.
	DrawQuad(q *Quad, p Program, tex Texture)
}

// quadShader samples the texture and writes it unmodified. Texels hold
// BGRA bytes; the swizzle restores channel order the way declaring a BGRA
// upload format does, so no CPU conversion is needed.
const quadShader = `//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return imageSrc0At(srcPos).bgra
}
`

// QuadVertex is a position in normalized device coordinates and its
// texture coordinate in [0,1].
type QuadVertex struct {
	X, Y float32
	U, V float32
}

// Quad is the full-screen rectangle the texture is drawn on.
type Quad struct {
	Vertices [4]QuadVertex
	Indices  [6]uint16
}

// newQuad spans [-1,1]x[-1,1]. V=0 sits at Y=+1 so that row 0 of the
// content buffer, which is stored top-down, lands on the top edge.
func newQuad() *Quad {
	return &Quad{
		Vertices: [4]QuadVertex{
			{X: -1, Y: -1, U: 0, V: 1},
			{X: 1, Y: -1, U: 1, V: 1},
			{X: -1, Y: 1, U: 0, V: 0},
			{X: 1, Y: 1, U: 1, V: 0},
		},
		Indices: [6]uint16{0, 1, 3, 0, 3, 2},
	}
}

// Project maps vertex i into a viewport of vw x vh pixels with a top-left
// origin and scales its texture coordinate to a tw x th texture.
func (q *Quad) Project(i, vw, vh, tw, th int) (dx, dy, sx, sy float32) {
	v := q.Vertices[i]
	dx = (v.X + 1) / 2 * float32(vw)
	dy = (1 - v.Y) / 2 * float32(vh)
	sx = v.U * float32(tw)
	sy = v.V * float32(th)
	return
}

// Resources is the set of GPU objects needed to display the content.
type Resources struct {
	Texture Texture
	Program Program
	Quad    *Quad
}

// NewResources compiles the program, allocates the texture and builds the
// quad. A shader failure is reported wrapped in ErrShader.
func NewResources(dev Device, width, height int) (*Resources, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	prog, err := dev.CompileProgram([]byte(quadShader))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShader, err)
	}
	tex, err := dev.NewTexture(width, height)
	if err != nil {
		prog.Release()
		return nil, fmt.Errorf("allocate texture: %w", err)
	}
	return &Resources{
		Texture: tex,
		Program: prog,
		Quad:    newQuad(),
	}, nil
}

// Release frees the texture and program. Calling it again does nothing.
func (r *Resources) Release() {
	if r.Texture != nil {
		r.Texture.Release()
		r.Texture = nil
	}
	if r.Program != nil {
		r.Program.Release()
		r.Program = nil
	}
	r.Quad = nil
}
