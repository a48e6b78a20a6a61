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

// Command mandelserve shows the Mandelbrot set converging in a web browser.
//
// Every websocket connection gets its own simulation.  The server updates
// it for as long as the frame budget allows, then sends the current image
// as a PNG frame.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/coder/websocket"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/testcases"
)

func main() {
	var cfg serverConfig
	flag.StringVar(&cfg.addr, "addr", ":8080", "listen address")
	flag.IntVar(&cfg.width, "width", 800, "maximum image width")
	flag.IntVar(&cfg.height, "height", 600, "maximum image height")
	flag.StringVar(&cfg.scene, "scene", "", "start with the frame of a named scene")
	flag.StringVar(&cfg.palette, "palette", "plain", "initial palette")
	flag.DurationVar(&cfg.budget, "budget", 16600*time.Microsecond, "time budget per frame")
	flag.IntVar(&cfg.maxSteps, "max-steps", 5000, "stop updating after this many steps")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("mandelserve: %v", err)
	}
}

type serverConfig struct {
	addr          string
	width, height int
	scene         string
	palette       string
	budget        time.Duration
	maxSteps      int
}

func run(cfg serverConfig) error {
	frame := fractal.DefaultFrame()
	if cfg.scene != "" {
		sc, ok := testcases.Find(cfg.scene)
		if !ok {
			return fmt.Errorf("unknown scene %q", cfg.scene)
		}
		frame = sc.Frame
	}
	pal, err := fractal.ParsePalette(cfg.palette)
	if err != nil {
		return err
	}
	if cfg.budget <= 0 {
		return fmt.Errorf("invalid frame budget %s", cfg.budget)
	}

	w, h := fractal.FitDims(frame, float64(cfg.width), float64(cfg.height))
	simCfg := fractal.Config{Width: w, Height: h, Frame: frame}
	if err := simCfg.Validate(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           newHandler(simCfg, pal, cfg.budget, cfg.maxSteps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("serving %dx%d view on http://localhost%s", w, h, cfg.addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newHandler serves the viewer page on "/" and the frame stream on "/ws".
func newHandler(simCfg fractal.Config, pal fractal.Palette, budget time.Duration, maxSteps int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexHTML)
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}
		log.Printf("viewer connected: %s", r.RemoteAddr)

		s := newSession(simCfg, pal, budget, maxSteps)
		err = s.serve(r.Context(), c)
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			err = nil
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("viewer %s: %v", r.RemoteAddr, err)
		}
		log.Printf("viewer disconnected: %s", r.RemoteAddr)
	})
	return mux
}
