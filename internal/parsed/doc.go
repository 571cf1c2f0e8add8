// Package parsed holds the raw, pre-normalization shape of a puzzle as the
// loader reads it off the wire: attribute presence, un-cross-validated
// color names, un-resolved clue color references, and image cells still
// in glyph/bracket-group form. It has no dependents of its own so both
// internal/loader (the producer) and internal/normalize (the consumer)
// can import it without creating a cycle between them.
package parsed
