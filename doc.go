// Package fractal computes escape-time images of the Mandelbrot set.
//
// A [Sim] holds one [Cell] per pixel of a [Config].  Each call to
// [Sim.Update] advances the orbit of every cell which has not yet escaped
// by one step, so that images drawn between updates show the set
// converging.  [Sim.Draw] maps the cell states to packed RGB pixels using a
// [ColorFunc]; the built-in color functions are listed in [Palettes].
package fractal
