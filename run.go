// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts a Driver to Ebitengine. Ebitengine polls window events and
// calls Layout before Update and Draw, then presents.
type game struct {
	d   *Driver
	dev *EbitenDevice

	// Draw and Layout cannot return errors; the first one is reported by
	// the next Update.
	err error
}

func (g *game) Update() error {
	if g.err != nil {
		g.d.Stop()
		return g.err
	}
	if err := g.d.Update(); err != nil {
		if errors.Is(err, ErrStopped) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.dev.Bind(screen)
	if err := g.d.Draw(); err != nil && g.err == nil {
		g.err = err
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := framebufferSize(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
	if err := g.d.Resized(w, h); err != nil && g.err == nil {
		g.err = err
	}
	if sw, sh := g.d.s.Size(); sw > 0 && sh > 0 {
		return sw, sh
	}
	return w, h
}

func framebufferSize(outsideWidth, outsideHeight int, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(float64(outsideWidth) * scale))
	h := int(math.Ceil(float64(outsideHeight) * scale))
	return w, h
}

// Run opens a window, draws surface into it every frame and pumps engine
// until the window is closed or ctx is done. Run takes ownership of
// surface and engine: both are closed, after the GPU resources, before
// Run returns.
func Run(ctx context.Context, engine Engine, surface ContentSurface, opts *Options) (err error) {
	o := resolveOptions(opts)

	dev := NewEbitenDevice()
	s, err := NewSession(dev, surface, engine)
	if err != nil {
		return errors.Join(err, surface.Close(), engine.Close())
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	d := NewDriver(s, func() bool {
		return ebiten.IsWindowBeingClosed() || ctx.Err() != nil
	})

	ebiten.SetWindowSize(o.Width, o.Height)
	ebiten.SetWindowTitle(o.Title)
	ebiten.SetVsyncEnabled(!o.DisableVSync)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowClosingHandled(true)
	if o.FixedSize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(&game{d: d, dev: dev}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
