// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightview

import (
	"fmt"
	"log/slog"
)

// State of a Driver.
type State int

const (
	// Running is the state of a new driver: each iteration pumps the
	// engine and draws a frame.
	Running State = iota
	// Stopped is terminal: no further GPU or engine calls are made.
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Driver sequences one Session through the frame loop. Each iteration:
//
//  1. Draw: clear, read the latest frame, upload it, draw the quad
//  2. the display system presents and polls its events, which may call Resized
//  3. Update: stop on a close request, otherwise pump the content engine once
//
// Once Stopped, no further GPU or engine calls are made.
type Driver struct {
	s              *Session
	closeRequested func() bool
	state          State
}

// NewDriver returns a running driver. closeRequested is polled once per
// iteration; nil means only Stop ends the loop.
func NewDriver(s *Session, closeRequested func() bool) *Driver {
	if closeRequested == nil {
		closeRequested = func() bool { return false }
	}
	return &Driver{s: s, closeRequested: closeRequested}
}

// State returns the current state of the driver.
func (d *Driver) State() State {
	return d.state
}

// Stop moves the driver to Stopped.
func (d *Driver) Stop() {
	if d.state == Stopped {
		return
	}
	d.state = Stopped
	st := d.s.Stats()
	Logger().Info("driver stopped",
		slog.Uint64("frames", st.Frames),
		slog.Uint64("uploads", st.Uploads),
		slog.Uint64("deferred", st.Deferred),
	)
}

// Update checks for a close request and pumps the content engine. It
// returns ErrStopped once the driver has stopped.
func (d *Driver) Update() error {
	if d.state == Stopped {
		return ErrStopped
	}
	if d.closeRequested() {
		d.Stop()
		return ErrStopped
	}
	d.s.Pump()
	return nil
}

// Draw renders one frame.
func (d *Driver) Draw() error {
	if d.state == Stopped {
		return nil
	}
	return d.s.RenderFrame()
}

// Resized is the display's framebuffer-size notification.
func (d *Driver) Resized(width, height int) error {
	if d.state == Stopped {
		return nil
	}
	return d.s.Resize(width, height)
}
