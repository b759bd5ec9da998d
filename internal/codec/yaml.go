package codec

import (
	"fmt"
	"io"

	"wacomsync/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles a hand-editable YAML list of profiles
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlDocument represents the YAML structure for profile data
type yamlDocument struct {
	Profiles []yamlProfile `yaml:"profiles"`
}

type yamlProfile struct {
	Name      string `yaml:"name"`
	Target    string `yaml:"target"`
	Mode      string `yaml:"mode"`
	KeepRatio bool   `yaml:"keep_ratio"`
}

// Parse imports profiles from YAML
func (c *YAMLCodec) Parse(r io.Reader) (domain.ProfileSet, error) {
	var doc yamlDocument
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	profiles := make(domain.ProfileSet, len(doc.Profiles))
	for i, yp := range doc.Profiles {
		if yp.Name == "" {
			return nil, fmt.Errorf("profile %d: %w", i+1, domain.ErrEmptyName)
		}
		profiles[yp.Name] = domain.Profile{
			Target:    yp.Target,
			Mode:      domain.Mode(yp.Mode),
			KeepRatio: yp.KeepRatio,
		}.Normalize()
	}

	return profiles, nil
}

// Export exports profiles to YAML, sorted by name
func (c *YAMLCodec) Export(profiles domain.ProfileSet, w io.Writer) error {
	doc := yamlDocument{
		Profiles: make([]yamlProfile, 0, len(profiles)),
	}

	for _, name := range profiles.Names() {
		p := profiles[name]
		doc.Profiles = append(doc.Profiles, yamlProfile{
			Name:      name,
			Target:    p.Target,
			Mode:      string(p.Mode),
			KeepRatio: p.KeepRatio,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
