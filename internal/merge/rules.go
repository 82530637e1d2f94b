package merge

import "github.com/sagemon/monitor-cli/internal/models"

// FieldSource ties one template parameter to the baseline artifact that
// fills it when the parameter file carries no override.
type FieldSource struct {
	ParamKey string
	Artifact string
}

// Rule describes how one monitor type's parameters are merged: the flag
// that switches the monitor on, an optional companion parameter the
// monitor cannot run without, and the URI fields it owns.
type Rule struct {
	Monitor      models.MonitorType
	EnableKey    string
	CompanionKey string
	Fields       []FieldSource
}

var rules = []Rule{
	{
		Monitor:   models.MonitorDataQuality,
		EnableKey: "EnableDataQualityMonitor",
		Fields: []FieldSource{
			{ParamKey: "DataQualityConstraintsS3Uri", Artifact: models.ArtifactConstraints},
			{ParamKey: "DataQualityStatisticsS3Uri", Artifact: models.ArtifactStatistics},
		},
	},
	{
		Monitor:      models.MonitorModelQuality,
		EnableKey:    "EnableModelQualityMonitor",
		CompanionKey: models.ParamGroundTruth,
		Fields: []FieldSource{
			{ParamKey: "ModelQualityConstraintsS3Uri", Artifact: models.ArtifactConstraints},
			{ParamKey: "ModelQualityStatisticsS3Uri", Artifact: models.ArtifactStatistics},
		},
	},
	{
		Monitor:      models.MonitorModelBias,
		EnableKey:    "EnableModelBiasMonitor",
		CompanionKey: models.ParamGroundTruth,
		Fields: []FieldSource{
			{ParamKey: "ModelBiasConstraintsS3Uri", Artifact: models.ArtifactConstraints},
			{ParamKey: "ModelBiasConfigS3Uri", Artifact: models.ArtifactConfigFile},
		},
	},
	{
		Monitor:   models.MonitorModelExplainability,
		EnableKey: "EnableModelExplainabilityMonitor",
		Fields: []FieldSource{
			{ParamKey: "ModelExplainabilityConstraintsS3Uri", Artifact: models.ArtifactConstraints},
			{ParamKey: "ModelExplainabilityConfigS3Uri", Artifact: models.ArtifactConfigFile},
		},
	},
}

// Rules returns the merge rules for all four monitor types.
func Rules() []Rule {
	return rules
}

// Enabled reports whether the monitor's enable flag is set to "yes".
func (r Rule) Enabled(params map[string]string) bool {
	return params[r.EnableKey] == "yes"
}

// Deployable reports whether the monitor can actually run: enabled and,
// when a companion parameter is required, that parameter is non-empty.
func (r Rule) Deployable(params map[string]string) bool {
	if !r.Enabled(params) {
		return false
	}
	if r.CompanionKey != "" && params[r.CompanionKey] == "" {
		return false
	}
	return true
}
