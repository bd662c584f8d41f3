// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"encoding/json"
	"fmt"
)

// PrettyJSON renders any Go value as indented JSON.
//
// Values json cannot encode (channels, funcs) come back as a short
// placeholder so callers that only log the result never have to branch.
func PrettyJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<unserializable: %v>", err)
	}

	return string(out)
}
