// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenDevice implements Device on top of Ebitengine. The output is the
// screen image handed to Game.Draw, bound with Bind before each frame.
type EbitenDevice struct {
	target *ebiten.Image
	vw, vh int

	verts [4]ebiten.Vertex
	opts  ebiten.DrawTrianglesShaderOptions
}

// NewEbitenDevice returns a device with no output bound.
func NewEbitenDevice() *EbitenDevice {
	d := &EbitenDevice{}
	d.opts.Blend = ebiten.BlendCopy
	for i := range d.verts {
		d.verts[i].ColorR = 1
		d.verts[i].ColorG = 1
		d.verts[i].ColorB = 1
		d.verts[i].ColorA = 1
	}
	return d
}

// Bind makes screen the output of subsequent Clear and DrawQuad calls.
func (d *EbitenDevice) Bind(screen *ebiten.Image) {
	d.target = screen
}

type ebitenTexture struct {
	img  *ebiten.Image
	w, h int
}

func (t *ebitenTexture) Size() (int, int) { return t.w, t.h }

func (t *ebitenTexture) WritePixels(pix []byte) {
	t.img.WritePixels(pix)
}

func (t *ebitenTexture) Release() {
	t.img.Deallocate()
}

type ebitenProgram struct {
	shader *ebiten.Shader
}

func (p *ebitenProgram) Release() {
	p.shader.Deallocate()
}

func (d *EbitenDevice) NewTexture(width, height int) (Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	// Unmanaged: the content is rewritten every frame, so Ebitengine need
	// not keep a CPU copy to restore it.
	img := ebiten.NewImageWithOptions(image.Rect(0, 0, width, height), &ebiten.NewImageOptions{
		Unmanaged: true,
	})
	return &ebitenTexture{img: img, w: width, h: height}, nil
}

func (d *EbitenDevice) CompileProgram(src []byte) (Program, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, err
	}
	return &ebitenProgram{shader: s}, nil
}

func (d *EbitenDevice) SetViewport(width, height int) {
	d.vw, d.vh = width, height
}

func (d *EbitenDevice) Clear() {
	if d.target != nil {
		d.target.Clear()
	}
}

func (d *EbitenDevice) DrawQuad(q *Quad, p Program, tex Texture) {
	if d.target == nil {
		return
	}
	t := tex.(*ebitenTexture)
	for i := range d.verts {
		dx, dy, sx, sy := q.Project(i, d.vw, d.vh, t.w, t.h)
		d.verts[i].DstX, d.verts[i].DstY = dx, dy
		d.verts[i].SrcX, d.verts[i].SrcY = sx, sy
	}
	d.opts.Images[0] = t.img
	d.target.DrawTrianglesShader(d.verts[:], q.Indices[:], p.(*ebitenProgram).shader, &d.opts)
	d.opts.Images[0] = nil
}
