package utils

import (
	"encoding/json"
)

// Remarshal converts between JSON-compatible shapes (typically a
// struct and a map) with a marshal/unmarshal round trip.
func Remarshal(input interface{}, output interface{}) error {
	b, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, output)
}
