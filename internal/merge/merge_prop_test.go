package merge

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/sagemon/monitor-cli/internal/models"
)

// genFlag generates enable-flag values.
func genFlag() gopter.Gen {
	return gen.OneConstOf("yes", "no", "")
}

// genOverride generates a URI field value: empty or a user override.
func genOverride() gopter.Gen {
	return gen.OneConstOf("", "s3://override/artifact.json")
}

// genParams generates parameter maps over the full rule surface:
// random enable flags, random overrides per URI field, and a random
// ground-truth setting.
func genParams() gopter.Gen {
	flagGens := make([]gopter.Gen, 0)
	var keys []string
	for _, rule := range Rules() {
		keys = append(keys, rule.EnableKey)
		flagGens = append(flagGens, genFlag())
		for _, field := range rule.Fields {
			keys = append(keys, field.ParamKey)
			flagGens = append(flagGens, genOverride())
		}
	}
	keys = append(keys, models.ParamGroundTruth)
	flagGens = append(flagGens, gen.OneConstOf("", "s3://bucket/ground-truth/"))

	return gopter.CombineGens(flagGens...).Map(func(vals []interface{}) map[string]string {
		params := make(map[string]string, len(keys))
		for i, key := range keys {
			params[key] = vals[i].(string)
		}
		return params
	})
}

// TestApplyIdempotent checks that merging an already-merged parameter
// set is a no-op: rerunning the build step on its own output must not
// change anything.
func TestApplyIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("Apply(Apply(p)) == Apply(p)", prop.ForAll(
		func(params map[string]string) bool {
			baselines := sampleBaselines()
			once, err := Apply(params, baselines)
			if err != nil {
				return false
			}
			twice, err := Apply(once, baselines)
			if err != nil {
				return false
			}
			if len(once) != len(twice) {
				return false
			}
			for k, v := range once {
				if twice[k] != v {
					return false
				}
			}
			return true
		},
		genParams(),
	))

	properties.TestingRun(t)
}

// TestApplyPrecedence checks the override rule: a non-empty field in a
// deployable monitor always survives the merge unchanged.
func TestApplyPrecedence(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("overrides survive for deployable monitors", prop.ForAll(
		func(params map[string]string) bool {
			out, err := Apply(params, sampleBaselines())
			if err != nil {
				return false
			}
			for _, rule := range Rules() {
				for _, field := range rule.Fields {
					override := params[field.ParamKey]
					if override == "" {
						continue
					}
					switch {
					case !rule.Enabled(params):
						if out[field.ParamKey] != override {
							return false
						}
					case !rule.Deployable(params):
						if out[field.ParamKey] != "" {
							return false
						}
					default:
						if out[field.ParamKey] != override {
							return false
						}
					}
				}
			}
			return true
		},
		genParams(),
	))

	properties.TestingRun(t)
}
