// Package fixedstring provides String, a fixed-capacity string value that
// never allocates, never grows and never writes past its backing array.
//
// A String[B] stores its bytes inline in B, a byte array of Capacity+1
// elements, followed by a length. It contains no pointers, so values can be
// copied freely, compared with ==, used as map keys and overlaid on shared
// or memory-mapped regions (see pkg/shm).
//
// Entry points differ in how they treat a source longer than Capacity:
//
//   - From, Set and AssignArray take a value of the backing array type.
//     An oversized composite literal does not compile.
//   - FromString, FromCString and FromN require the Truncate marker as their
//     first argument and cut oversized sources to exactly Capacity bytes.
//   - UnsafeAssign, UnsafeAssignCString and UnsafeAssignBytes report false
//     and leave the receiver untouched when the source does not fit.
//
// Capacities are fixed by the Buffer constraint, since Go has no constant
// type parameters: every capacity from 1 to 32, then 40, 48, 56, 64, 80, 96,
// 100, 128, 192, 255, 256, 384, 512, 768, 1024, 2048 and 4096. Each has a
// named buffer type (Cap1 .. Cap4096). A named array type of one of these
// sizes, such as type Name [25]byte, may be used as B as well.
//
// Content is raw bytes. Comparison is lexicographic over bytes with no
// Unicode or locale handling.
package fixedstring
