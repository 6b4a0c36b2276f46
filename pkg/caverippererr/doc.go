// Package caverippererr defines the error and panic shapes the rest of
// the module uses, per the failure model in spec.md §7: pre-engine
// concerns (seed format, CaveInfo loading) are ordinary returned errors
// the caller can recover from; post-engine contract violations are
// fatal, because they indicate a bug in the generator or its input data
// rather than a runtime condition the caller could reasonably handle.
package caverippererr
