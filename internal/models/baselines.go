package models

// MonitorType identifies one of the four Model Monitor job kinds.
type MonitorType string

const (
	MonitorDataQuality         MonitorType = "DataQuality"
	MonitorModelQuality        MonitorType = "ModelQuality"
	MonitorModelBias           MonitorType = "ModelBias"
	MonitorModelExplainability MonitorType = "ModelExplainability"
)

// Artifact names used inside a drift-check baseline section.
const (
	ArtifactConstraints             = "Constraints"
	ArtifactStatistics              = "Statistics"
	ArtifactConfigFile              = "ConfigFile"
	ArtifactPreTrainingConstraints  = "PreTrainingConstraints"
	ArtifactPostTrainingConstraints = "PostTrainingConstraints"
)

// ArtifactURIs maps an artifact name to its S3 URI.
type ArtifactURIs map[string]string

// Get returns the URI for name, or "" when the set has no such artifact.
func (a ArtifactURIs) Get(name string) string {
	if a == nil {
		return ""
	}
	return a[name]
}

// DriftCheckBaselines holds the baseline artifact locations registered
// with a model package, flattened to S3 URIs, plus the model the
// monitored endpoint is serving.
type DriftCheckBaselines struct {
	ModelName        string       `json:"ModelName"`
	ModelDataQuality ArtifactURIs `json:"ModelDataQuality,omitempty"`
	ModelQuality     ArtifactURIs `json:"ModelQuality,omitempty"`
	Bias             ArtifactURIs `json:"Bias,omitempty"`
	Explainability   ArtifactURIs `json:"Explainability,omitempty"`
}

// Section returns the baseline section feeding the given monitor type.
func (b *DriftCheckBaselines) Section(m MonitorType) ArtifactURIs {
	if b == nil {
		return nil
	}
	switch m {
	case MonitorDataQuality:
		return b.ModelDataQuality
	case MonitorModelQuality:
		return b.ModelQuality
	case MonitorModelBias:
		return b.Bias
	case MonitorModelExplainability:
		return b.Explainability
	}
	return nil
}
