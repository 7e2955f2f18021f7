package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Hom is a homonym index as written in a resource file. Authors write the
// scalar bare (hom: 2) or quoted (hom: "2"); both decode to the same
// value, and an absent field stays "".
type Hom string

// UnmarshalYAML captures the scalar's raw text regardless of its YAML
// type.
func (h *Hom) UnmarshalYAML(value *yaml.Node) error {
	*h = Hom(value.Value)
	return nil
}

// decodeFile reads a single-document YAML file into T.
func decodeFile[T any](path string) (T, error) {
	var out T
	raw, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// decodeDocuments reads every document of a YAML stream into T, in file
// order.
func decodeDocuments[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	var docs []T
	for {
		var doc T
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// readRecords reads a header-row CSV file into one map per data row,
// keyed by column name. Rows shorter than the header fill the missing
// trailing columns with "", so lookups never distinguish a short row
// from an empty field.
func readRecords(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []map[string]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
