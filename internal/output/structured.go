package output

import (
	"encoding/json"

	"github.com/rgehrsitz/finsim/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter renders the report as indented JSON with camelCase keys.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter renders the report as YAML with snake_case keys.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return yaml.Marshal(report)
}
