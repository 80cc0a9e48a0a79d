// Package codepoint defines the core data model of the explorer: code
// point validation, the static category table, the type predicates, and
// the display record factory.
//
// Everything in this package is a pure function of a rune. Records are
// value types regenerated on demand; two records built from the same code
// point are equal. Nothing here touches I/O or global mutable state.
package codepoint
