// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"errors"
	"fmt"
	"log/slog"
)

// Resize handles a change of the output size. When it returns nil the
// texture, the content surface and the viewport all have the size the
// surface reports after the change, normally width x height, so the next
// RenderFrame can upload and draw immediately.
//
// A zero or negative dimension, as reported for a minimized window, is
// ignored. On error the previous size stays in force.
func (s *Session) Resize(width, height int) error {
	if s.res == nil {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		Logger().Debug("resize ignored", slog.Int("width", width), slog.Int("height", height))
		return nil
	}
	if width == s.width && height == s.height {
		return nil
	}

	// The new texture is allocated before the surface changes size so that
	// a failure on either side leaves texture and surface equal.
	tex, err := s.dev.NewTexture(width, height)
	if err != nil {
		return fmt.Errorf("reallocate texture: %w", err)
	}
	if err := s.surface.Resize(width, height); err != nil {
		tex.Release()
		return fmt.Errorf("resize content surface: %w", err)
	}

	// The surface may settle on another size than the one requested.
	if sw, sh := s.surface.Size(); sw != width || sh != height {
		tex.Release()
		Logger().Debug("surface resized to a different size",
			slog.Int("width", sw), slog.Int("height", sh),
			slog.Int("requestedWidth", width), slog.Int("requestedHeight", height),
		)
		if sw == s.width && sh == s.height {
			return nil
		}
		if sw <= 0 || sh <= 0 {
			return s.restoreSurface(fmt.Errorf("resize content surface: %w: %dx%d", ErrInvalidSize, sw, sh))
		}
		if tex, err = s.dev.NewTexture(sw, sh); err != nil {
			return s.restoreSurface(fmt.Errorf("reallocate texture: %w", err))
		}
		width, height = sw, sh
	}

	s.res.Texture.Release()
	s.res.Texture = tex

	s.width, s.height = width, height
	s.dev.SetViewport(width, height)

	Logger().Info("session resized", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// restoreSurface puts the content surface back at the session size after
// a failed resize and returns cause joined with any error doing so.
func (s *Session) restoreSurface(cause error) error {
	if err := s.surface.Resize(s.width, s.height); err != nil {
		return errors.Join(cause, fmt.Errorf("restore content surface: %w", err))
	}
	return cause
}
