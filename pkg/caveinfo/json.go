package caveinfo

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads a CaveInfo value from a JSON file. This is the thin
// on-ramp spec.md §6 describes: the generator itself only ever consumes
// a *CaveInfo value, however one was produced. Parsing the game's
// native CaveInfo text format is a separate, out-of-scope concern (see
// spec.md §1's Non-goals); this loader exists for CaveInfo values that
// have already been converted to JSON by some other tool.
func LoadJSON(path string) (*CaveInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading caveinfo file: %w", err)
	}
	return ParseJSON(data)
}

// ParseJSON decodes a CaveInfo value from JSON bytes and validates it.
func ParseJSON(data []byte) (*CaveInfo, error) {
	var ci CaveInfo
	if err := json.Unmarshal(data, &ci); err != nil {
		return nil, fmt.Errorf("parsing caveinfo JSON: %w", err)
	}
	if err := ci.Validate(); err != nil {
		return nil, fmt.Errorf("invalid caveinfo: %w", err)
	}
	return &ci, nil
}
