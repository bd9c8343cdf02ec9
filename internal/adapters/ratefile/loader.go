package ratefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a rate file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the rate file at path and builds the rate table from it.
// Every failure is wrapped with apperrors.ErrConfigLoad.
func Load(path string) (*domain.RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read rate file %s: %w", apperrors.ErrConfigLoad, path, err)
	}

	table, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse decodes data as a currency -> currency -> rate document.
func Parse(data []byte, format Format) (*domain.RateTable, error) {
	var raw map[string]map[string]float64

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: parse yaml: %w", apperrors.ErrConfigLoad, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: parse json: %w", apperrors.ErrConfigLoad, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("%w: parse json: trailing data after document", apperrors.ErrConfigLoad)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported rate file format %q", apperrors.ErrConfigLoad, format)
	}

	table, err := domain.NewRateTable(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConfigLoad, err)
	}
	return table, nil
}
