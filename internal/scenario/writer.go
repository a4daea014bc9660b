package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteDocument stamps the current format version on doc and writes it as
// YAML with two-space indentation.
func WriteDocument(doc *Document, path string) error {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ReadDocument loads a YAML document. Unknown fields are rejected, and so is
// a major version this build does not understand. A missing version is
// read as the current one.
func ReadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if doc.Version == "" {
		doc.Version = CurrentVersion
	}
	if major(doc.Version) != major(CurrentVersion) {
		return nil, fmt.Errorf("%s: unsupported document version %q", path, doc.Version)
	}

	return &doc, nil
}

func major(version string) string {
	m, _, _ := strings.Cut(version, ".")
	return m
}
