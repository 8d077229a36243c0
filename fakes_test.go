// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// events records calls across the fakes in the order they happen.
type events []string

func (e *events) add(format string, args ...any) {
	if e != nil {
		*e = append(*e, fmt.Sprintf(format, args...))
	}
}

// softDevice is a CPU Device: textures are byte slices and DrawQuad
// rasterizes the two triangles with nearest sampling, applying the same
// swizzle as quadShader.
type softDevice struct {
	ev *events

	vw, vh int
	out    []byte // RGBA, vw*vh*4

	textures   []*softTexture
	programs   []*softProgram
	compileErr error
	textureErr error
	// NewTexture fails once this many textures exist, when set
	textureLimit int

	clears int
	draws  int

	// checked on every draw when set
	surface    *fakeSurface
	violations []string
}

type softTexture struct {
	ev       *events
	w, h     int
	pix      []byte
	writes   int
	released int
}

func (t *softTexture) Size() (int, int) { return t.w, t.h }

func (t *softTexture) WritePixels(pix []byte) {
	if t.released > 0 {
		panic("write to released texture")
	}
	if len(pix) != 4*t.w*t.h {
		panic(fmt.Sprintf("WritePixels: got %d bytes, want %d", len(pix), 4*t.w*t.h))
	}
	copy(t.pix, pix)
	t.writes++
	if t.ev != nil {
		t.ev.add("texture.write %dx%d", t.w, t.h)
	}
}

func (t *softTexture) Release() {
	t.released++
	t.ev.add("texture.release %dx%d", t.w, t.h)
}

type softProgram struct {
	ev       *events
	released int
}

func (p *softProgram) Release() {
	p.released++
	p.ev.add("program.release")
}

func (d *softDevice) NewTexture(width, height int) (Texture, error) {
	if d.textureErr != nil {
		return nil, d.textureErr
	}
	if d.textureLimit > 0 && len(d.textures) >= d.textureLimit {
		return nil, fmt.Errorf("texture limit %d reached", d.textureLimit)
	}
	t := &softTexture{ev: d.ev, w: width, h: height, pix: make([]byte, 4*width*height)}
	d.textures = append(d.textures, t)
	d.ev.add("texture.new %dx%d", width, height)
	return t, nil
}

func (d *softDevice) CompileProgram(src []byte) (Program, error) {
	if d.compileErr != nil {
		return nil, d.compileErr
	}
	p := &softProgram{ev: d.ev}
	d.programs = append(d.programs, p)
	return p, nil
}

func (d *softDevice) SetViewport(width, height int) {
	d.vw, d.vh = width, height
	d.out = make([]byte, 4*width*height)
	d.ev.add("viewport %dx%d", width, height)
}

func (d *softDevice) Clear() {
	clear(d.out)
	d.clears++
	d.ev.add("clear")
}

func (d *softDevice) DrawQuad(q *Quad, p Program, tex Texture) {
	t := tex.(*softTexture)
	if t.released > 0 || p.(*softProgram).released > 0 {
		panic("draw with released resources")
	}
	d.draws++
	d.ev.add("draw")

	if d.surface != nil {
		sw, sh := d.surface.Size()
		if t.w != d.vw || t.h != d.vh || t.w != sw || t.h != sh {
			d.violations = append(d.violations, fmt.Sprintf(
				"draw %d: texture %dx%d, viewport %dx%d, surface %dx%d", d.draws, t.w, t.h, d.vw, d.vh, sw, sh))
		}
	}

	var pv [4][4]float32
	for i := range pv {
		pv[i][0], pv[i][1], pv[i][2], pv[i][3] = q.Project(i, d.vw, d.vh, t.w, t.h)
	}
	for tri := 0; tri < len(q.Indices); tri += 3 {
		a, b, c := pv[q.Indices[tri]], pv[q.Indices[tri+1]], pv[q.Indices[tri+2]]
		area := (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
		if area == 0 {
			continue
		}
		for y := 0; y < d.vh; y++ {
			for x := 0; x < d.vw; x++ {
				px, py := float32(x)+0.5, float32(y)+0.5
				w1 := ((px-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(py-a[1])) / area
				w2 := ((b[0]-a[0])*(py-a[1]) - (px-a[0])*(b[1]-a[1])) / area
				w0 := 1 - w1 - w2
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
				sx := w0*a[2] + w1*b[2] + w2*c[2]
				sy := w0*a[3] + w1*b[3] + w2*c[3]
				tx := min(max(int(sx), 0), t.w-1)
				ty := min(max(int(sy), 0), t.h-1)
				src := t.pix[(ty*t.w+tx)*4:]
				dst := d.out[(y*d.vw+x)*4:]
				dst[0], dst[1], dst[2], dst[3] = src[2], src[1], src[0], src[3]
			}
		}
	}
}

// outAt returns the RGBA output pixel at (x, y).
func (d *softDevice) outAt(x, y int) [4]byte {
	o := (y*d.vw + x) * 4
	return [4]byte{d.out[o], d.out[o+1], d.out[o+2], d.out[o+3]}
}

// fakeSurface renders frames with fill. Frames follow Resize unless lag is
// set, in which case they keep the old size until catchUp is called.
// Resize caps the size at maxW x maxH when those are set.
type fakeSurface struct {
	ev *events

	w, h           int
	frameW, frameH int
	pad            int
	lag            bool
	maxW, maxH     int
	fill           func(x, y int) [4]byte // BGRA
	resizeErr      error
	closeErr       error

	pix     []byte
	locked  bool
	locks   int
	closed  int
	resizes int
}

func newFakeSurface(ev *events, w, h int) *fakeSurface {
	return &fakeSurface{
		ev: ev,
		w:  w, h: h,
		frameW: w, frameH: h,
		fill: func(x, y int) [4]byte { return [4]byte{byte(x), byte(y), 0x80, 0xFF} },
	}
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) Resize(width, height int) error {
	if s.resizeErr != nil {
		return s.resizeErr
	}
	s.resizes++
	if s.maxW > 0 {
		width = min(width, s.maxW)
	}
	if s.maxH > 0 {
		height = min(height, s.maxH)
	}
	s.w, s.h = width, height
	if !s.lag {
		s.frameW, s.frameH = width, height
	}
	s.ev.add("surface.resize %dx%d", width, height)
	return nil
}

func (s *fakeSurface) catchUp() {
	s.frameW, s.frameH = s.w, s.h
}

func (s *fakeSurface) LockPixels() (Frame, bool) {
	if s.locked {
		panic("surface locked twice")
	}
	if s.frameW == 0 || s.frameH == 0 {
		return Frame{}, false
	}
	stride := s.frameW*4 + s.pad
	if len(s.pix) != stride*s.frameH {
		s.pix = make([]byte, stride*s.frameH)
	}
	for y := 0; y < s.frameH; y++ {
		for x := 0; x < s.frameW; x++ {
			c := s.fill(x, y)
			copy(s.pix[y*stride+x*4:], c[:])
		}
		for i := s.frameW * 4; i < stride; i++ {
			s.pix[y*stride+i] = 0xEE
		}
	}
	s.locked = true
	s.locks++
	s.ev.add("surface.lock %dx%d", s.frameW, s.frameH)
	return Frame{Pix: s.pix, Width: s.frameW, Height: s.frameH, Stride: stride, Format: FormatBGRA8}, true
}

func (s *fakeSurface) UnlockPixels() {
	s.locked = false
}

func (s *fakeSurface) Close() error {
	s.closed++
	s.ev.add("surface.close")
	return s.closeErr
}

type fakeEngine struct {
	ev       *events
	ticks    int
	closed   int
	closeErr error
}

func (e *fakeEngine) Tick() {
	e.ticks++
	e.ev.add("engine.tick")
}

func (e *fakeEngine) Close() error {
	e.closed++
	e.ev.add("engine.close")
	return e.closeErr
}

type fixture struct {
	ev      *events
	dev     *softDevice
	surface *fakeSurface
	engine  *fakeEngine
	s       *Session
}

func newFixture(t *testing.T, w, h int) *fixture {
	t.Helper()
	ev := &events{}
	f := &fixture{
		ev:      ev,
		dev:     &softDevice{ev: ev},
		surface: newFakeSurface(ev, w, h),
		engine:  &fakeEngine{ev: ev},
	}
	f.dev.surface = f.surface
	s, err := NewSession(f.dev, f.surface, f.engine)
	require.NoError(t, err)
	f.s = s
	*ev = (*ev)[:0]
	return f
}

// texture returns the session's current texture.
func (f *fixture) texture() *softTexture {
	return f.s.res.Texture.(*softTexture)
}
