package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultDocument []byte

// Default returns the embedded content document.
func Default() (*Site, error) {
	s, err := Parse(defaultDocument)
	if err != nil {
		return nil, fmt.Errorf("content: embedded document: %w", err)
	}
	return s, nil
}

// Load reads a document from path. An empty path selects the embedded document.
func Load(path string) (*Site, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes, normalizes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Site
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content: empty document")
		}
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	s.normalize()
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
