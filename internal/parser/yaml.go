package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sagemon/monitor-cli/internal/models"
)

func ParseYAMLStageConfig(reader io.Reader) (*models.StageConfig, error) {
	var data models.StageConfig
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse YAML stage config: %w", err)
	}

	return &data, nil
}
