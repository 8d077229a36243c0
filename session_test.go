// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	f := newFixture(t, 800, 600)

	w, h := f.s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, 800, f.dev.vw)
	assert.Equal(t, 600, f.dev.vh)
	assert.Len(t, f.dev.textures, 1)
	assert.Len(t, f.dev.programs, 1)
}

func TestNewSessionShaderFailure(t *testing.T) {
	dev := &softDevice{compileErr: errors.New("bad shader")}
	surface := newFakeSurface(nil, 800, 600)
	engine := &fakeEngine{}

	_, err := NewSession(dev, surface, engine)
	require.ErrorIs(t, err, ErrShader)
	assert.Zero(t, surface.closed, "the caller still owns the surface")
	assert.Zero(t, engine.closed)
}

func TestNewSessionEmptySurface(t *testing.T) {
	_, err := NewSession(&softDevice{}, newFakeSurface(nil, 0, 0), &fakeEngine{})
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestRenderFrame(t *testing.T) {
	f := newFixture(t, 4, 3)

	require.NoError(t, f.s.RenderFrame())

	assert.Equal(t, []string{
		"clear",
		"surface.lock 4x3",
		"texture.write 4x3",
		"draw",
	}, []string(*f.ev))
	assert.Equal(t, Stats{Frames: 1, Uploads: 1}, f.s.Stats())
	assert.False(t, f.surface.locked, "surface is unlocked after the upload")

	tex := f.texture()
	assert.Equal(t, []byte{1, 2, 0x80, 0xFF}, tex.pix[(2*4+1)*4:(2*4+1)*4+4])
}

func TestRenderFrameNothingRendered(t *testing.T) {
	f := newFixture(t, 4, 3)
	f.surface.frameW, f.surface.frameH = 0, 0

	require.NoError(t, f.s.RenderFrame())
	assert.Equal(t, Stats{Frames: 1}, f.s.Stats())
	assert.Equal(t, 1, f.dev.draws)
}

func TestRenderFrameDefersMismatchedFrame(t *testing.T) {
	f := newFixture(t, 4, 3)
	f.surface.frameW = 5

	require.NoError(t, f.s.RenderFrame())
	assert.Equal(t, Stats{Frames: 1, Deferred: 1}, f.s.Stats())
	assert.Zero(t, f.texture().writes)
	assert.False(t, f.surface.locked)
}

func TestRenderFramePaddedStride(t *testing.T) {
	f := newFixture(t, 5, 2)
	f.surface.pad = 12

	require.NoError(t, f.s.RenderFrame())
	assert.NotContains(t, string(f.texture().pix), "\xEE")
	assert.Equal(t, uint64(1), f.s.Stats().Uploads)
}

func TestCloseOrder(t *testing.T) {
	f := newFixture(t, 8, 8)
	require.NoError(t, f.s.RenderFrame())
	*f.ev = (*f.ev)[:0]

	require.NoError(t, f.s.Close())
	assert.Equal(t, []string{
		"texture.release 8x8",
		"program.release",
		"surface.close",
		"engine.close",
	}, []string(*f.ev))

	require.NoError(t, f.s.Close())
	assert.Equal(t, 1, f.texture0().released)
	assert.Equal(t, 1, f.dev.programs[0].released)
	assert.Equal(t, 1, f.surface.closed)
	assert.Equal(t, 1, f.engine.closed)
}

func TestUseAfterClose(t *testing.T) {
	f := newFixture(t, 8, 8)
	require.NoError(t, f.s.Close())

	require.ErrorIs(t, f.s.RenderFrame(), ErrClosed)
	require.ErrorIs(t, f.s.Resize(16, 16), ErrClosed)
	f.s.Pump()

	assert.Zero(t, f.dev.draws)
	assert.Zero(t, f.engine.ticks)
	assert.Zero(t, f.surface.resizes)
}

func TestCloseJoinsErrors(t *testing.T) {
	f := newFixture(t, 8, 8)
	surfaceErr := errors.New("surface busy")
	engineErr := errors.New("engine busy")
	f.surface.closeErr = surfaceErr
	f.engine.closeErr = engineErr

	err := f.s.Close()
	require.ErrorIs(t, err, surfaceErr)
	require.ErrorIs(t, err, engineErr)
	assert.Equal(t, 1, f.engine.closed, "engine is closed even when the surface fails")
}

// texture0 returns the first texture the device allocated.
func (f *fixture) texture0() *softTexture {
	return f.dev.textures[0]
}
