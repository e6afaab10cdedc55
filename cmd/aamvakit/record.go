// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"aamvakit/internal/issue"

	"github.com/pelletier/go-toml/v2"
)

// loadRecord reads a license record from a TOML or JSON file. Keys may be
// AAMVA element codes or friendly names; scalar values are coerced to the
// string form the validator expects.
func loadRecord(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load record file").
			WithResource(path).
			WithSuggestion("Check that the file exists and is readable").
			Wrap(err).
			BuildError()
	}

	raw := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return nil, issue.NewErrorContext().
			WithOperation("load record file").
			WithResource(path).
			WithSuggestion("Use a .toml or .json record file").
			BuildError()
	}
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse record file").
			WithResource(path).
			WithSuggestion("Check the file syntax").
			Wrap(err).
			BuildError()
	}

	record := make(map[string]string, len(raw))
	for key, value := range raw {
		s, err := coerceScalar(value)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("parse record file").
				WithResource(path).
				WithSuggestion(fmt.Sprintf("Field %q must be a string, number, or date", key)).
				Wrap(err).
				BuildError()
		}
		record[key] = s
	}
	return record, nil
}

// coerceScalar renders TOML/JSON scalar types as record values. TOML dates
// become ISO strings so the validator's date normalization applies; go-toml
// decodes a bare date literal as toml.LocalDate, not time.Time.
func coerceScalar(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), nil
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case toml.LocalDate:
		return v.String(), nil
	case toml.LocalDateTime:
		return v.LocalDate.String(), nil
	case time.Time:
		return v.Format("2006-01-02"), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}
