package production

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format names an export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want yaml or json)", s)
	}
}

// Export encodes v, typically an object snapshot or a change event, for
// display.
func Export(f Format, v any) ([]byte, error) {
	switch f {
	case FormatYAML:
		return ExportYAML(v)
	case FormatJSON:
		return ExportJSON(v)
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// ExportYAML encodes v as YAML.
func ExportYAML(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// ExportJSON encodes v as indented JSON.
func ExportJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}
