package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagemon/monitor-cli/internal/models"
)

func sampleBaselines() *models.DriftCheckBaselines {
	return &models.DriftCheckBaselines{
		ModelName: "my-model",
		ModelDataQuality: models.ArtifactURIs{
			models.ArtifactConstraints: "s3://bucket/dq-constraints.json",
			models.ArtifactStatistics:  "s3://bucket/dq-statistics.json",
		},
		ModelQuality: models.ArtifactURIs{
			models.ArtifactConstraints: "s3://bucket/mq-constraints.json",
			models.ArtifactStatistics:  "s3://bucket/mq-statistics.json",
		},
		Bias: models.ArtifactURIs{
			models.ArtifactConstraints: "s3://bucket/bias-constraints.json",
			models.ArtifactConfigFile:  "s3://bucket/bias-config.json",
		},
		Explainability: models.ArtifactURIs{
			models.ArtifactConstraints: "s3://bucket/expl-constraints.json",
			models.ArtifactConfigFile:  "s3://bucket/expl-config.json",
		},
	}
}

func TestApplyDisabledMonitorSkipped(t *testing.T) {
	params := map[string]string{
		"EnableDataQualityMonitor":    "no",
		"DataQualityConstraintsS3Uri": "",
	}

	// nil baselines: a disabled monitor must not consult the registry
	out, err := Apply(params, nil)
	require.NoError(t, err)
	assert.Equal(t, params, out)
}

func TestApplyFillsFromBaselines(t *testing.T) {
	params := map[string]string{
		"EnableDataQualityMonitor":    "yes",
		"DataQualityConstraintsS3Uri": "",
	}

	out, err := Apply(params, sampleBaselines())
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/dq-constraints.json", out["DataQualityConstraintsS3Uri"])
	assert.Equal(t, "s3://bucket/dq-statistics.json", out["DataQualityStatisticsS3Uri"])
}

func TestApplyOverrideWins(t *testing.T) {
	params := map[string]string{
		"EnableDataQualityMonitor":    "yes",
		"DataQualityConstraintsS3Uri": "s3://mine/constraints.json",
	}

	out, err := Apply(params, sampleBaselines())
	require.NoError(t, err)
	assert.Equal(t, "s3://mine/constraints.json", out["DataQualityConstraintsS3Uri"])
	assert.Equal(t, "s3://bucket/dq-statistics.json", out["DataQualityStatisticsS3Uri"])
}

func TestApplyGroundTruthGate(t *testing.T) {
	params := map[string]string{
		"EnableModelBiasMonitor":    "yes",
		models.ParamGroundTruth:     "",
		"ModelBiasConstraintsS3Uri": "",
	}

	// Registry content must be irrelevant without ground truth
	out, err := Apply(params, sampleBaselines())
	require.NoError(t, err)
	assert.Equal(t, "", out["ModelBiasConstraintsS3Uri"])
	assert.Equal(t, "", out["ModelBiasConfigS3Uri"])
}

func TestApplyGroundTruthGateClearsOverride(t *testing.T) {
	params := map[string]string{
		"EnableModelQualityMonitor":    "yes",
		models.ParamGroundTruth:        "",
		"ModelQualityConstraintsS3Uri": "s3://mine/constraints.json",
	}

	// A monitor that cannot join ground truth must not deploy, even
	// with an explicit override in the file.
	out, err := Apply(params, sampleBaselines())
	require.NoError(t, err)
	assert.Equal(t, "", out["ModelQualityConstraintsS3Uri"])
	assert.Equal(t, "", out["ModelQualityStatisticsS3Uri"])
}

func TestApplyGroundTruthPresent(t *testing.T) {
	params := map[string]string{
		"EnableModelQualityMonitor": "yes",
		models.ParamGroundTruth:     "s3://bucket/ground-truth/",
	}

	out, err := Apply(params, sampleBaselines())
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/mq-constraints.json", out["ModelQualityConstraintsS3Uri"])
	assert.Equal(t, "s3://bucket/mq-statistics.json", out["ModelQualityStatisticsS3Uri"])
}

func TestApplyMissingBaselineFails(t *testing.T) {
	params := map[string]string{
		"EnableDataQualityMonitor":         "yes",
		"EnableModelExplainabilityMonitor": "yes",
	}

	_, err := Apply(params, &models.DriftCheckBaselines{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DataQualityConstraintsS3Uri")
	assert.Contains(t, err.Error(), "DataQualityStatisticsS3Uri")
	assert.Contains(t, err.Error(), "ModelExplainabilityConstraintsS3Uri")
	assert.Contains(t, err.Error(), "ModelExplainabilityConfigS3Uri")
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	params := map[string]string{
		"EnableDataQualityMonitor":    "yes",
		"DataQualityConstraintsS3Uri": "",
	}

	_, err := Apply(params, sampleBaselines())
	require.NoError(t, err)
	assert.Equal(t, "", params["DataQualityConstraintsS3Uri"])
}

func TestApplyUnrelatedKeysPreserved(t *testing.T) {
	params := map[string]string{
		"EnableDataQualityMonitor": "yes",
		"StageName":                "staging",
		"ScheduleExpression":       "cron(0 * ? * * *)",
	}

	out, err := Apply(params, sampleBaselines())
	require.NoError(t, err)
	assert.Equal(t, "staging", out["StageName"])
	assert.Equal(t, "cron(0 * ? * * *)", out["ScheduleExpression"])
}

func TestNeeded(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
		want   []models.MonitorType
	}{
		{
			name:   "nothing enabled",
			params: map[string]string{},
			want:   nil,
		},
		{
			name: "enabled and unfilled",
			params: map[string]string{
				"EnableDataQualityMonitor": "yes",
			},
			want: []models.MonitorType{models.MonitorDataQuality},
		},
		{
			name: "enabled but fully overridden",
			params: map[string]string{
				"EnableDataQualityMonitor":    "yes",
				"DataQualityConstraintsS3Uri": "s3://mine/c.json",
				"DataQualityStatisticsS3Uri":  "s3://mine/s.json",
			},
			want: nil,
		},
		{
			name: "bias without ground truth needs nothing",
			params: map[string]string{
				"EnableModelBiasMonitor": "yes",
			},
			want: nil,
		},
		{
			name: "bias with ground truth",
			params: map[string]string{
				"EnableModelBiasMonitor": "yes",
				models.ParamGroundTruth:  "s3://bucket/gt/",
			},
			want: []models.MonitorType{models.MonitorModelBias},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Needed(tt.params))
		})
	}
}

func TestNeededUnionAcrossStages(t *testing.T) {
	staging := map[string]string{
		"EnableDataQualityMonitor": "yes",
	}
	prod := map[string]string{
		"EnableModelExplainabilityMonitor": "yes",
	}

	got := Needed(staging, prod)
	assert.Equal(t, []models.MonitorType{models.MonitorDataQuality, models.MonitorModelExplainability}, got)
}
