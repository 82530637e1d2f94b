package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	ProjectName   string
	ProjectID     string
	ProjectARN    string
	RoleARN       string
	OutputsBucket string
}

func New() *Config {
	return &Config{
		ProjectName:   viper.GetString("project_name"),
		ProjectID:     viper.GetString("project_id"),
		ProjectARN:    viper.GetString("project_arn"),
		RoleARN:       viper.GetString("monitor_role"),
		OutputsBucket: viper.GetString("outputs_bucket"),
	}
}

// Validate checks the settings the merge operation cannot run without.
// The project ARN is optional: without it project tags are skipped.
func (c *Config) Validate() error {
	if c.ProjectName == "" {
		return fmt.Errorf("project name is required (--project-name or SAGEMAKER_PROJECT_NAME)")
	}
	if c.ProjectID == "" {
		return fmt.Errorf("project id is required (--project-id or SAGEMAKER_PROJECT_ID)")
	}
	if c.RoleARN == "" {
		return fmt.Errorf("model monitor role ARN is required (--monitor-role or MONITOR_ROLE)")
	}
	if c.OutputsBucket == "" {
		return fmt.Errorf("monitor outputs bucket is required (--outputs-bucket or MONITOR_OUTPUTS_BUCKET)")
	}
	return nil
}
