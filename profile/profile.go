package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFormat is the output format used when neither profile nor flags set one.
const DefaultFormat = "text"

// Profile holds the optional settings read from a YAML file.
type Profile struct {
	Device string `yaml:"device"` // target device, reported in structured output
	Format string `yaml:"format"` // default output format
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{Format: DefaultFormat}
}

// LoadProfile loads a profile from a YAML file.
func LoadProfile(filename string) (*Profile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	profile := Default()
	// an empty file leaves the defaults in place
	if err := yaml.NewDecoder(file).Decode(profile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if profile.Format == "" {
		profile.Format = DefaultFormat
	}
	return profile, nil
}
