package merge

import (
	"fmt"

	"github.com/sagemon/monitor-cli/internal/models"
)

// ExtendOptions carries the deployment-wide values injected into every
// stage config alongside the merged baselines.
type ExtendOptions struct {
	ProjectName     string
	ProjectID       string
	RoleARN         string
	OutputsBucket   string
	MonitorImageURI string
	ClarifyImageURI string
	ProjectTags     map[string]string
}

// Extend produces the final deployable config for one stage: baseline
// URI fields merged via Apply, derived names and output locations
// added, and resource tags combined with the project's own tags.
// The input config is not modified.
func Extend(cfg *models.StageConfig, baselines *models.DriftCheckBaselines, opts ExtendOptions) (*models.StageConfig, error) {
	if cfg == nil || cfg.Parameters == nil {
		return nil, fmt.Errorf("configuration file must include a Parameters section")
	}
	stage := cfg.StageName()
	if stage == "" {
		return nil, fmt.Errorf("configuration file must include the StageName parameter")
	}

	params, err := Apply(cfg.Parameters, baselines)
	if err != nil {
		return nil, err
	}

	endpointName := fmt.Sprintf("%s-%s", opts.ProjectName, stage)

	params["SageMakerProjectName"] = opts.ProjectName
	params["ModelMonitorRoleArn"] = opts.RoleARN
	params["EndpointName"] = endpointName
	params["MonitoringScheduleName"] = endpointName
	params["ModelMonitorImageUri"] = opts.MonitorImageURI
	params["ClarifyImageUri"] = opts.ClarifyImageURI
	params["DataQualityMonitoringOutputS3Uri"] = monitorOutputURI(opts.OutputsBucket, "data-quality")
	params["ModelQualityMonitoringOutputS3Uri"] = monitorOutputURI(opts.OutputsBucket, "model-quality")
	params["ModelBiasMonitoringOutputS3Uri"] = monitorOutputURI(opts.OutputsBucket, "model-bias")
	params["ModelExplainabilityMonitoringOutputS3Uri"] = monitorOutputURI(opts.OutputsBucket, "model-explainability")

	tags := make(map[string]string, len(cfg.Tags)+len(opts.ProjectTags)+3)
	for k, v := range cfg.Tags {
		tags[k] = v
	}
	tags["sagemaker:deployment-stage"] = stage
	tags["sagemaker:project-id"] = opts.ProjectID
	tags["sagemaker:project-name"] = opts.ProjectName
	for k, v := range opts.ProjectTags {
		tags[k] = v
	}

	return &models.StageConfig{Parameters: params, Tags: tags}, nil
}

func monitorOutputURI(bucket, kind string) string {
	return fmt.Sprintf("s3://%s/monitor-output/%s", bucket, kind)
}
