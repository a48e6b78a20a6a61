// seehuhn.de/go/fractal - escape-time rendering of the Mandelbrot set
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"strings"
	"time"

	"github.com/coder/websocket"

	"seehuhn.de/go/fractal"
)

type runState int

const (
	stateRunning runState = iota
	statePaused
	stateStepOnce
)

// session holds the simulation for one connected viewer.
type session struct {
	sim      *fractal.Sim
	palette  fractal.Palette
	state    runState
	budget   time.Duration
	maxSteps int

	dirty bool // a frame must be sent even if no update ran
}

// status is sent as a text message after every frame.
type status struct {
	Steps   int    `json:"steps"`
	Escaped int    `json:"escaped"`
	Cells   int    `json:"cells"`
	Palette string `json:"palette"`
	Paused  bool   `json:"paused"`
}

func newSession(cfg fractal.Config, pal fractal.Palette, budget time.Duration, maxSteps int) *session {
	sim, err := fractal.NewSim(cfg)
	if err != nil {
		// cfg was validated at startup
		panic(err)
	}
	return &session{
		sim:      sim,
		palette:  pal,
		budget:   budget,
		maxSteps: maxSteps,
		dirty:    true,
	}
}

// serve runs the frame loop until the connection is closed.
func (s *session) serve(ctx context.Context, c *websocket.Conn) error {
	defer c.CloseNow()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmds := make(chan string, 8)
	readErr := make(chan error, 1)
	go func() {
		for {
			typ, data, err := c.Read(ctx)
			if err != nil {
				readErr <- err
				return
			}
			if typ != websocket.MessageText {
				continue
			}
			select {
			case cmds <- string(data):
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(s.budget)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case cmd := <-cmds:
			if err := s.handle(cmd); err != nil {
				msg := fmt.Sprintf(`{"error":%q}`, err.Error())
				if err := c.Write(ctx, websocket.MessageText, []byte(msg)); err != nil {
					return err
				}
			}
		case <-ticker.C:
		}

		if !s.advance() && !s.dirty {
			continue
		}
		s.dirty = false
		if err := s.sendFrame(ctx, c); err != nil {
			return err
		}
	}
}

// handle applies one control message from the viewer.
func (s *session) handle(cmd string) error {
	switch {
	case strings.HasPrefix(cmd, "palette:"):
		pal, err := fractal.ParsePalette(strings.TrimPrefix(cmd, "palette:"))
		if err != nil {
			return err
		}
		s.palette = pal
	case cmd == "reset":
		s.sim.Reset()
	case cmd == "pause":
		s.state = statePaused
	case cmd == "resume":
		s.state = stateRunning
	case cmd == "step":
		s.state = stateStepOnce
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	s.dirty = true
	return nil
}

// advance updates the simulation for at most one frame budget and reports
// whether any update was performed.
func (s *session) advance() bool {
	if s.state == statePaused || s.sim.Steps() >= s.maxSteps {
		return false
	}
	if s.state == stateStepOnce {
		s.sim.Update()
		s.state = statePaused
		return true
	}

	// Keep updating while the average step still fits into the remaining
	// budget.
	start := time.Now()
	n := 0
	for s.sim.Steps() < s.maxSteps {
		s.sim.Update()
		n++
		elapsed := time.Since(start)
		avg := elapsed / time.Duration(n)
		if elapsed+avg > s.budget {
			break
		}
	}
	return true
}

func (s *session) sendFrame(ctx context.Context, c *websocket.Conn) error {
	img := s.sim.DrawImage(s.palette.Func())

	buf := &bytes.Buffer{}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(buf, img); err != nil {
		return err
	}
	if err := c.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
		return err
	}

	st, err := json.Marshal(status{
		Steps:   s.sim.Steps(),
		Escaped: s.sim.Escaped(),
		Cells:   s.sim.Len(),
		Palette: s.palette.String(),
		Paused:  s.state != stateRunning,
	})
	if err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageText, st)
}
