package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// decodeImport parses an exported collection. It returns the records that
// pass validation and the number discarded. err is set only when data is
// not a JSON array.
func decodeImport(data []byte) (valid []SavedTaxonomy, rejected int, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("parse import: %w", err)
	}
	if raw == nil {
		return nil, 0, fmt.Errorf("parse import: top level is not an array")
	}
	for i, msg := range raw {
		rec, err := decodeRecord(msg)
		if err != nil {
			logf("", "import record %d discarded: %v", i, err)
			rejected++
			continue
		}
		valid = append(valid, rec)
	}
	return valid, rejected, nil
}

// decodeRecord checks the required fields of one record before decoding it
// fully: string id and title, an object taxonomy and two timestamps.
func decodeRecord(msg json.RawMessage) (SavedTaxonomy, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg, &fields); err != nil || fields == nil {
		return SavedTaxonomy{}, fmt.Errorf("record is not an object")
	}

	var id, title string
	if err := requireString(fields, "id", &id); err != nil {
		return SavedTaxonomy{}, err
	}
	if strings.TrimSpace(id) == "" {
		return SavedTaxonomy{}, fmt.Errorf("id is empty")
	}
	if err := requireString(fields, "title", &title); err != nil {
		return SavedTaxonomy{}, err
	}
	if tax := bytes.TrimSpace(fields["taxonomy"]); len(tax) == 0 || tax[0] != '{' {
		return SavedTaxonomy{}, fmt.Errorf("taxonomy is not an object")
	}
	for _, key := range []string{"savedAt", "updatedAt"} {
		var ts string
		if err := requireString(fields, key, &ts); err != nil {
			return SavedTaxonomy{}, err
		}
		if _, err := time.Parse(time.RFC3339Nano, ts); err != nil {
			return SavedTaxonomy{}, fmt.Errorf("%s is not a timestamp: %q", key, ts)
		}
	}

	var rec SavedTaxonomy
	if err := json.Unmarshal(msg, &rec); err != nil {
		return SavedTaxonomy{}, fmt.Errorf("decode record %s: %w", id, err)
	}
	rec.Taxonomy = rec.Taxonomy.Normalize()
	return rec, nil
}

func requireString(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("%s is missing", key)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, dst) != nil {
		return fmt.Errorf("%s is not a string", key)
	}
	return nil
}
