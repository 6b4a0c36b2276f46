// Package caveinfo defines the read-only CaveInfo value the generator
// consumes: the set of counts, object pools, and cave-unit definitions
// the game's own CaveInfo text files encode for a single sublevel.
// Parsing the game's native text format, RARC archives, or any other
// on-disk representation is out of scope here — see JSON-loading via
// LoadJSON for the one on-ramp this package provides, or bring your own
// loader and construct a CaveInfo value directly.
package caveinfo
