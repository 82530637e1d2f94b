package models

// Well-known parameter names shared across packages.
const (
	ParamStageName   = "StageName"
	ParamGroundTruth = "GroundTruthInput"
)

// StageConfig is one environment's CloudFormation parameter file:
// a flat Parameters map plus optional resource Tags.
type StageConfig struct {
	Parameters map[string]string `json:"Parameters" yaml:"Parameters"`
	Tags       map[string]string `json:"Tags,omitempty" yaml:"Tags,omitempty"`
}

// Clone returns a deep copy so merges never touch the caller's maps.
func (c *StageConfig) Clone() *StageConfig {
	out := &StageConfig{}
	if c.Parameters != nil {
		out.Parameters = make(map[string]string, len(c.Parameters))
		for k, v := range c.Parameters {
			out.Parameters[k] = v
		}
	}
	if c.Tags != nil {
		out.Tags = make(map[string]string, len(c.Tags))
		for k, v := range c.Tags {
			out.Tags[k] = v
		}
	}
	return out
}

// StageName returns the StageName parameter, or "" if absent.
func (c *StageConfig) StageName() string {
	if c.Parameters == nil {
		return ""
	}
	return c.Parameters[ParamStageName]
}
