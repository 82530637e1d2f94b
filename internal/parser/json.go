package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sagemon/monitor-cli/internal/models"
)

func ParseJSONStageConfig(reader io.Reader) (*models.StageConfig, error) {
	var data models.StageConfig
	decoder := json.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON stage config: %w", err)
	}

	return &data, nil
}
