// Package taxio reads taxonomy documents and writes exports to disk.
package taxio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

// Document is a taxonomy file. On disk it is either a bare taxonomy mapping
// or a mapping with title, description and taxonomy keys.
type Document struct {
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Taxonomy    taxonomy.Taxonomy `json:"taxonomy" yaml:"taxonomy"`
}

// resolveFormat maps format ("json", "yaml", "auto" or empty) to a concrete
// format, using the file extension in auto mode. Unknown extensions are
// read as YAML, which also accepts JSON.
func resolveFormat(path, format string) (string, error) {
	actual := strings.ToLower(strings.TrimSpace(format))
	switch actual {
	case "", "auto":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			return "json", nil
		default:
			return "yaml", nil
		}
	case "json", "yaml":
		return actual, nil
	case "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("unsupported taxonomy format: %q", format)
	}
}

// ReadDocument reads a taxonomy document from path.
func ReadDocument(path, format string) (Document, error) {
	actual, err := resolveFormat(path, format)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	doc, err := DecodeDocument(data, actual)
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// DecodeDocument decodes data in the given format ("json" or "yaml").
// Unknown keys are rejected so that misspelled dimensions surface.
func DecodeDocument(data []byte, format string) (Document, error) {
	switch format {
	case "json":
		return decodeJSON(data)
	case "yaml":
		return decodeYAML(data)
	default:
		return Document{}, fmt.Errorf("unsupported taxonomy format: %q", format)
	}
}

func decodeJSON(data []byte) (Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return Document{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if _, wrapped := top["taxonomy"]; wrapped {
		err := dec.Decode(&doc)
		return normalized(doc), err
	}
	err := dec.Decode(&doc.Taxonomy)
	return normalized(doc), err
}

func decodeYAML(data []byte) (Document, error) {
	var top map[string]any
	if err := yaml.Unmarshal(data, &top); err != nil {
		return Document{}, err
	}
	if top == nil {
		return Document{}, errors.New("document is empty")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	var err error
	if _, wrapped := top["taxonomy"]; wrapped {
		err = dec.Decode(&doc)
	} else {
		err = dec.Decode(&doc.Taxonomy)
	}
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return normalized(doc), err
}

func normalized(doc Document) Document {
	doc.Title = strings.TrimSpace(doc.Title)
	doc.Description = strings.TrimSpace(doc.Description)
	doc.Taxonomy = doc.Taxonomy.Normalize()
	return doc
}

// WriteDocument writes doc to path as JSON or YAML. In auto mode the
// format follows the extension.
func WriteDocument(doc Document, path, format string) error {
	actual, err := resolveFormat(path, format)
	if err != nil {
		return err
	}
	var data []byte
	if actual == "json" {
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return writeFile(path, data)
}

// DefaultExportName is the file name used when no export path is given.
func DefaultExportName(now time.Time) string {
	return fmt.Sprintf("taxonomy-export-%s.json", now.Format("2006-01-02"))
}

// WriteExport writes an exported collection to path, which must end in
// .json.
func WriteExport(data []byte, path string) error {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".json") {
		return fmt.Errorf("output path extension %q does not match format %q", ext, "json")
	}
	return writeFile(path, data)
}

// ReadExport reads an exported collection from path.
func ReadExport(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
