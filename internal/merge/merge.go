// Package merge computes the final parameter set for a deployment
// stage from the checked-in parameter file and the baselines registered
// with the model package. Values already present in the file win over
// registry values.
package merge

import (
	"fmt"
	"strings"

	"github.com/sagemon/monitor-cli/internal/models"
)

// Needed returns the monitor types that require registry baselines in
// any of the given parameter sets: deployable and with at least one of
// their URI fields still empty. Callers use it to skip registry and S3
// round trips entirely when every enabled monitor is already fully
// specified.
func Needed(paramSets ...map[string]string) []models.MonitorType {
	var needed []models.MonitorType
	for _, rule := range rules {
		for _, params := range paramSets {
			if rule.Deployable(params) && rule.needsBaselines(params) {
				needed = append(needed, rule.Monitor)
				break
			}
		}
	}
	return needed
}

func (r Rule) needsBaselines(params map[string]string) bool {
	for _, field := range r.Fields {
		if params[field.ParamKey] == "" {
			return true
		}
	}
	return false
}

// Apply fills the baseline URI fields of params according to the
// monitor rules. The input map is not modified.
//
// Disabled monitors are skipped without consulting baselines. An
// enabled monitor missing its companion parameter must not deploy, so
// its URI fields are forced empty regardless of overrides or registry
// content. Everywhere else a non-empty value in params wins; empty
// fields are filled from baselines, and an enabled field that cannot be
// filled is an error (all such fields are reported together).
func Apply(params map[string]string, baselines *models.DriftCheckBaselines) (map[string]string, error) {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}

	var missing []string
	for _, rule := range rules {
		if !rule.Enabled(params) {
			continue
		}
		if rule.CompanionKey != "" && params[rule.CompanionKey] == "" {
			for _, field := range rule.Fields {
				out[field.ParamKey] = ""
			}
			continue
		}
		section := baselines.Section(rule.Monitor)
		for _, field := range rule.Fields {
			if params[field.ParamKey] != "" {
				continue
			}
			uri := section.Get(field.Artifact)
			if uri == "" {
				missing = append(missing, field.ParamKey)
				continue
			}
			out[field.ParamKey] = uri
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("no baseline available for: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
