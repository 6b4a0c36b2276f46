// Package export renders a generated Layout into the two forms spec.md
// §4.7 names: a structured JSON document for downstream tooling, and a
// compact "slug" string used only for test comparison and quick manual
// diffing between two generations of the same seed.
package export
