package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// Parse decodes and validates a content document.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding content: empty document")
		}
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Load reads the content file at path. An empty path selects the content
// compiled into the binary.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Default returns the embedded content.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Validate checks the fields every page needs. Optional fields are never
// validated here; the renderer omits what is missing.
func (s *Site) Validate() error {
	if s.Profile.Name == "" {
		return fmt.Errorf("profile: name is required")
	}
	for i, p := range s.Projects {
		if p.Title == "" {
			return fmt.Errorf("project %d: title is required", i)
		}
	}
	return nil
}
