// Package export writes a DailyRecord to a portable file and reads it back.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/models"
	"github.com/julianstephens/imaan/internal/tracker"
)

// Format is an export file format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml in any case
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json or yaml)", s)
	}
}

// FormatForPath guesses the format from a file extension, defaulting to JSON
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Write encodes record to w
func Write(w io.Writer, record models.DailyRecord, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// persistedEnvelope is the layout browser dashboards persist their state in:
// {"state":{"dailyState":{...}},"version":0}
type persistedEnvelope struct {
	State struct {
		DailyState json.RawMessage `json:"dailyState"`
	} `json:"state"`
	Version *int `json:"version"`
}

// Read decodes a record exported by Write. JSON input may also be a bare
// storage file ({"divine-dashboard": {...}}) or a persisted dashboard envelope.
func Read(data []byte, format Format) (models.DailyRecord, error) {
	if format == FormatYAML {
		var record models.DailyRecord
		if err := yaml.Unmarshal(data, &record); err != nil {
			return models.DailyRecord{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
		if record.Date == "" {
			return models.DailyRecord{}, fmt.Errorf("failed to parse yaml: missing date")
		}
		return record.Normalize(), nil
	}

	return tracker.Decode(unwrap(data))
}

// unwrap strips known wrappers around a serialized record
func unwrap(data []byte) []byte {
	var env persistedEnvelope
	if err := json.Unmarshal(data, &env); err == nil && len(env.State.DailyState) > 0 && !bytes.Equal(env.State.DailyState, []byte("null")) {
		return env.State.DailyState
	}

	var namespaced map[string]json.RawMessage
	if err := json.Unmarshal(data, &namespaced); err == nil {
		if inner, ok := namespaced[constants.StorageNamespace]; ok {
			return inner
		}
	}
	return data
}
