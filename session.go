// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"errors"
	"fmt"
	"log/slog"
)

// Stats counts what the session did since it was created.
type Stats struct {
	Frames   uint64 // draw calls issued
	Uploads  uint64 // frames copied into the texture
	Deferred uint64 // frames skipped because their size did not match the texture
}

// Session ties one content surface to one texture drawn on a full-screen
// quad. It owns the surface and the engine from NewSession until Close.
//
// A Session is not safe for concurrent use; the resize notification and
// the frame loop must run on the same goroutine.
type Session struct {
	dev     Device
	surface ContentSurface
	engine  Engine
	res     *Resources
	up      Uploader

	width, height int

	stats Stats
}

// NewSession builds the GPU resources at the surface's current size.
// A shader failure is returned wrapped in ErrShader.
func NewSession(dev Device, surface ContentSurface, engine Engine) (*Session, error) {
	w, h := surface.Size()
	res, err := NewResources(dev, w, h)
	if err != nil {
		return nil, err
	}
	dev.SetViewport(w, h)

	Logger().Info("session created", slog.Int("width", w), slog.Int("height", h))
	return &Session{
		dev:     dev,
		surface: surface,
		engine:  engine,
		res:     res,
		width:   w,
		height:  h,
	}, nil
}

// Size returns the size texture, surface and viewport currently agree on.
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// RenderFrame clears the output, uploads the latest frame and draws it.
// A frame whose size disagrees with the texture is not uploaded; the quad
// is drawn with the previous contents.
func (s *Session) RenderFrame() error {
	if s.res == nil {
		return ErrClosed
	}
	s.dev.Clear()

	if f, ok := s.surface.LockPixels(); ok {
		err := s.up.Upload(s.res.Texture, f)
		s.surface.UnlockPixels()
		switch {
		case err == nil:
			s.stats.Uploads++
		case errors.Is(err, ErrSizeMismatch):
			s.stats.Deferred++
			Logger().Debug("upload deferred", slog.String("reason", err.Error()))
		default:
			return fmt.Errorf("upload frame: %w", err)
		}
	}

	s.dev.DrawQuad(s.res.Quad, s.res.Program, s.res.Texture)
	s.stats.Frames++
	return nil
}

// Pump runs the content engine once without blocking.
func (s *Session) Pump() {
	if s.res == nil {
		return
	}
	s.engine.Tick()
}

// Close releases the GPU resources, then the content surface, then the
// engine. Calling it again does nothing.
func (s *Session) Close() error {
	if s.res == nil {
		return nil
	}
	s.res.Release()
	s.res = nil

	var errs []error
	if err := s.surface.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close content surface: %w", err))
	}
	if err := s.engine.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close engine: %w", err))
	}
	err := errors.Join(errs...)
	if err != nil {
		Logger().Warn("session closed with errors", slog.Any("err", err))
	} else {
		Logger().Info("session closed", slog.Uint64("frames", s.stats.Frames))
	}
	return err
}
