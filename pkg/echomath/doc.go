// Package echomath provides the vector kernel for the Echo engine.
//
// All angles are in degrees. Rotations go through a cosine lookup table with
// one-degree resolution, so fractional angles are truncated toward zero before
// lookup. This quantization is part of the contract: both backends produce
// the same staircase.
//
// Numeric backend:
//
// The default backend fills a 360-entry float32 table. The build tag
// `echo_fixed` (implied on `tinygo && baremetal` targets) selects the console
// backend, which reads a 512-entry fixed-point table with 12 fractional bits
// in the layout the console firmware ships.
package echomath
