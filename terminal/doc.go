// Package terminal provides low-level terminal access: raw-mode session
// lifecycle, escape-sequence input parsing, SGR mouse decoding, and a
// double-buffered diff flush that emits the minimal ANSI byte stream to
// bring the physical terminal in line with a cell grid.
//
// The Screen interface is the only surface the rest of the framework
// touches. The default implementation drives a Unix tty directly; the
// tcellscreen subpackage provides a portable alternative.
package terminal
