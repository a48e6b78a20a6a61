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
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"seehuhn.de/go/fractal"
)

var testConfig = fractal.Config{Width: 24, Height: 16, Frame: fractal.DefaultFrame()}

func TestSessionCommands(t *testing.T) {
	s := newSession(testConfig, fractal.PalettePlain, time.Second, 10)

	if !s.advance() {
		t.Fatal("running session did not advance")
	}
	if s.sim.Steps() != 10 {
		t.Errorf("got %d steps, want the limit of 10", s.sim.Steps())
	}
	if s.advance() {
		t.Error("session advanced beyond the step limit")
	}

	for _, cmd := range []string{"palette:stripes", "reset", "pause"} {
		if err := s.handle(cmd); err != nil {
			t.Fatalf("%s: %v", cmd, err)
		}
	}
	if s.palette != fractal.PaletteStripes {
		t.Errorf("palette is %s", s.palette)
	}
	if s.sim.Steps() != 0 {
		t.Errorf("reset left %d steps", s.sim.Steps())
	}
	if s.advance() {
		t.Error("paused session advanced")
	}

	if err := s.handle("step"); err != nil {
		t.Fatal(err)
	}
	if !s.advance() || s.sim.Steps() != 1 {
		t.Errorf("single step gave %d steps", s.sim.Steps())
	}
	if s.state != statePaused {
		t.Error("session did not pause after a single step")
	}

	if err := s.handle("resume"); err != nil {
		t.Fatal(err)
	}
	if s.state != stateRunning {
		t.Error("session did not resume")
	}

	for _, bad := range []string{"palette:rainbow", "jump", ""} {
		if err := s.handle(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

type message struct {
	status
	Error string `json:"error"`
}

func TestViewerStream(t *testing.T) {
	srv := httptest.NewServer(newHandler(testConfig, fractal.PalettePlain, 10*time.Millisecond, 20))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	page, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(page), "/ws") {
		t.Fatalf("unexpected index page (status %d)", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close(websocket.StatusNormalClosure, "")

	// next returns the next status or error message, checking the frame
	// which precedes every status message.
	var gotFrame bool
	next := func() message {
		t.Helper()
		for {
			typ, data, err := c.Read(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if typ == websocket.MessageBinary {
				img, err := png.Decode(bytes.NewReader(data))
				if err != nil {
					t.Fatalf("bad frame: %v", err)
				}
				b := img.Bounds()
				if b.Dx() != testConfig.Width || b.Dy() != testConfig.Height {
					t.Fatalf("frame has size %dx%d", b.Dx(), b.Dy())
				}
				gotFrame = true
				continue
			}
			var msg message
			if err := json.Unmarshal(data, &msg); err != nil {
				t.Fatal(err)
			}
			return msg
		}
	}

	// run until the step limit is reached
	for {
		msg := next()
		if !gotFrame {
			t.Fatal("status without frame")
		}
		if msg.Cells != testConfig.Len() || msg.Palette != "plain" {
			t.Fatalf("unexpected status %+v", msg)
		}
		if msg.Steps == 20 {
			break
		}
	}

	if err := c.Write(ctx, websocket.MessageText, []byte("palette:lambert")); err != nil {
		t.Fatal(err)
	}
	if msg := next(); msg.Palette != "lambert" || msg.Steps != 20 {
		t.Errorf("after palette change: %+v", msg)
	}

	if err := c.Write(ctx, websocket.MessageText, []byte("nonsense")); err != nil {
		t.Fatal(err)
	}
	if msg := next(); msg.Error == "" {
		t.Errorf("no error for unknown command: %+v", msg)
	}

	if err := c.Write(ctx, websocket.MessageText, []byte("pause")); err != nil {
		t.Fatal(err)
	}
	if msg := next(); !msg.Paused {
		t.Errorf("after pause: %+v", msg)
	}
	if err := c.Write(ctx, websocket.MessageText, []byte("reset")); err != nil {
		t.Fatal(err)
	}
	if msg := next(); msg.Steps != 0 || !msg.Paused {
		t.Errorf("after reset: %+v", msg)
	}
}
