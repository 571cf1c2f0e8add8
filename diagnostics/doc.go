// Package diagnostics defines the fixed taxonomy of recoverable parse
// problems the loader can record, plus the sentinel errors that terminate
// parsing outright.
//
// A Diagnostic never carries a formatted message: it is a (Kind, Location)
// pair. Kind is a closed enumeration (see kinds.go); Location pinpoints
// where in the source document the problem was found. Callers that want a
// human-readable report format the pair themselves — this keeps the
// taxonomy stable and comparable with ==, and keeps List cheap to build
// while a document is still being read.
package diagnostics
