// Package ui provides the shared terminal styling for netmon's CLI output.
//
// # Components Overview
//
//	Colors     - ANSI palette plus status colors for metric classification
//	Symbols    - Glyphs for within/below/above acceptable
//	Tables     - Bubbles table wrapper for non-interactive output
//	Sparkline  - Block-character trend line for a series of values
//	Header     - Title block printed above table output
//	Verdict    - One-line within/outside count under a table
//
// Colors are defined as ANSI codes for broad terminal compatibility. Use
// SetColorMode to honor --no-color and the output.color config key.
package ui
