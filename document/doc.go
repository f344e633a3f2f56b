// Package document defines the value types the seek engine operates on:
// positions, directional selections, and the read-only Document view a
// host exposes its buffer through.
//
// Positions address characters, with the column equal to the line length
// standing for the implicit line-break slot at the end of each line.
// Comparisons are lexicographic on (line, character). All types here are
// plain values with no lifecycle; the Document is borrowed for the
// duration of a single seek call and never mutated by the engine.
package document
