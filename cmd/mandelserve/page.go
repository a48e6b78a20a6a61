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

// indexHTML is the viewer page.  Keys 1 to 5 select the palette, space
// toggles pause, the right arrow performs one step and r restarts.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Mandelbrot</title>
<style>
body { background: #222; color: #ddd; font-family: monospace; margin: 1em; }
img { image-rendering: pixelated; display: block; }
</style>
</head>
<body>
<img id="view" alt="">
<p id="status">connecting...</p>
<p>1-5: palette &middot; space: pause &middot; &rarr;: step &middot; r: reset</p>
<script>
const palettes = ["plain", "stripes", "lambert", "white-lambert", "derivative"];
const view = document.getElementById("view");
const statusLine = document.getElementById("status");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.binaryType = "blob";
let paused = false;

ws.onmessage = (ev) => {
	if (ev.data instanceof Blob) {
		const url = URL.createObjectURL(ev.data);
		view.onload = () => URL.revokeObjectURL(url);
		view.src = url;
		return;
	}
	const msg = JSON.parse(ev.data);
	if (msg.error) {
		statusLine.textContent = "error: " + msg.error;
		return;
	}
	paused = msg.paused;
	statusLine.textContent = msg.palette + ", " + msg.steps + " steps, " +
		msg.escaped + "/" + msg.cells + " escaped" + (paused ? " (paused)" : "");
};
ws.onclose = () => { statusLine.textContent = "disconnected"; };

document.addEventListener("keydown", (ev) => {
	if (ws.readyState !== WebSocket.OPEN) return;
	const n = parseInt(ev.key, 10);
	if (n >= 1 && n <= palettes.length) {
		ws.send("palette:" + palettes[n - 1]);
	} else if (ev.key === " ") {
		ws.send(paused ? "resume" : "pause");
		ev.preventDefault();
	} else if (ev.key === "ArrowRight") {
		ws.send("step");
	} else if (ev.key === "r") {
		ws.send("reset");
	}
});
</script>
</body>
</html>
`
