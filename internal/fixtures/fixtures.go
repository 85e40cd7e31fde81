// Package fixtures reads catalog seed files and loads them into the store.
// Files may be JSON, YAML or CSV; the format follows the extension.
package fixtures

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("fixtures: unsupported file extension")

type IngredientRow struct {
	Name            string `json:"name" yaml:"name"`
	MeasurementUnit string `json:"measurement_unit" yaml:"measurement_unit"`
}

type TagRow struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

func ReadIngredients(path string) ([]IngredientRow, error) {
	var rows []IngredientRow
	err := read(path, &rows, func(rec []string) {
		rows = append(rows, IngredientRow{Name: rec[0], MeasurementUnit: rec[1]})
	}, "name", "measurement_unit")
	if err != nil {
		return nil, err
	}

	out := rows[:0]
	for _, r := range rows {
		r.Name = strings.TrimSpace(r.Name)
		r.MeasurementUnit = strings.TrimSpace(r.MeasurementUnit)
		if r.Name == "" || r.MeasurementUnit == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func ReadTags(path string) ([]TagRow, error) {
	var rows []TagRow
	err := read(path, &rows, func(rec []string) {
		rows = append(rows, TagRow{Name: rec[0], Slug: rec[1]})
	}, "name", "slug")
	if err != nil {
		return nil, err
	}

	out := rows[:0]
	for _, r := range rows {
		r.Name = strings.TrimSpace(r.Name)
		r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
		if r.Name == "" || r.Slug == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// read decodes structured formats into dst and feeds CSV records with at
// least two columns to addCSV. A first CSV row equal to header is skipped.
func read(path string, dst any, addCSV func([]string), header ...string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.NewDecoder(f).Decode(dst)
	case ".yaml", ".yml":
		return yaml.NewDecoder(f).Decode(dst)
	case ".csv":
		return readCSV(f, addCSV, header)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

func readCSV(r io.Reader, add func([]string), header []string) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(rec) < 2 {
			return fmt.Errorf("fixtures: line %d: expected 2 columns, got %d", line, len(rec))
		}
		if line == 1 && strings.EqualFold(rec[0], header[0]) && strings.EqualFold(rec[1], header[1]) {
			continue
		}
		add(rec)
	}
}
