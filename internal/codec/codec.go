// Package codec converts profile sets to and from exchange formats.
package codec

import (
	"fmt"
	"io"
	"strings"

	"wacomsync/internal/domain"
)

// Importer reads a profile set from an exchange format
type Importer interface {
	Parse(r io.Reader) (domain.ProfileSet, error)
	Format() string
}

// Exporter writes a profile set in an exchange format
type Exporter interface {
	Export(profiles domain.ProfileSet, w io.Writer) error
	Format() string
}

// Codec both imports and exports
type Codec interface {
	Importer
	Exporter
}

// ForFormat returns the codec for "json" or "yaml" ("yml" is accepted)
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
