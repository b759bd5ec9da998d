package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"wacomsync/internal/domain"
)

// JSONCodec handles the same document layout as the profile store
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports profiles from JSON
func (c *JSONCodec) Parse(r io.Reader) (domain.ProfileSet, error) {
	profiles := domain.ProfileSet{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&profiles); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	for name, p := range profiles {
		profiles[name] = p.Normalize()
	}
	return profiles, nil
}

// Export exports profiles to JSON
func (c *JSONCodec) Export(profiles domain.ProfileSet, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(profiles); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
