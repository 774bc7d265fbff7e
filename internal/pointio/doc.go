// Package pointio reads Cartesian points for conversion and writes the
// results.
//
// Input comes either from an interactive token stream (Scanner) or from a
// JSON/YAML batch file (LoadBatch). Output is plain text at a fixed number of
// significant digits (Printer) or JSON (WriteJSON). Everything here validates
// through internal/geometry; this package adds no geometry of its own.
package pointio
