package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tair/storefront/internal/storefront"
)

// DefaultAPI is used when neither the flag nor the profile names an API
const DefaultAPI = "http://localhost:8080"

// Profile is the persisted CLI state
type Profile struct {
	API     string             `yaml:"api,omitempty"`
	Email   string             `yaml:"email,omitempty"`
	Session storefront.Session `yaml:"session,omitempty"`
}

// DefaultProfilePath returns the profile location under the user config dir
func DefaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "shopper.yaml"
	}
	return filepath.Join(dir, "storefront", "shopper.yaml")
}

// LoadProfile reads the profile at path. A missing file yields an empty profile.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &profile, nil
}

// Save writes the profile to path; the file holds a bearer token so only the owner may read it
func (p *Profile) Save(path string) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}
