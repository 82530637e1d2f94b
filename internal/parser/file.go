package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sagemon/monitor-cli/internal/models"
)

// ReadStageConfig loads a stage config from a JSON or YAML file,
// selected by extension.
func ReadStageConfig(path string) (*models.StageConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return ParseJSONStageConfig(file)
	case ".yaml", ".yml":
		return ParseYAMLStageConfig(file)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .json, .yaml, .yml)", ext)
	}
}

// MarshalStageConfig renders a stage config the way the deployment step
// expects it: 4-space indented JSON with a trailing newline. Map keys
// come out sorted, so rendering the same config twice is byte-stable.
func MarshalStageConfig(cfg *models.StageConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stage config: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteStageConfig writes the config to path atomically: the content
// goes to a temp file in the same directory first and is renamed over
// the target, so a failure never leaves a partial file behind.
func WriteStageConfig(path string, cfg *models.StageConfig) error {
	data, err := MarshalStageConfig(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tmp.Name(), path, err)
	}
	return nil
}
