// Package baselines post-processes the raw registry baselines into the
// artifacts the monitoring schedules actually consume.
package baselines

import (
	"context"
	"fmt"
	"path"

	"github.com/sagemon/monitor-cli/internal/models"
	"github.com/sagemon/monitor-cli/internal/storage"
)

const (
	combinedBiasConstraintsKey = "combined_bias_constraints.json"
	monitorAnalysisConfigKey   = "monitor_analysis_config.json"
)

// Process rewrites the sections listed in needed and passes the rest
// through untouched. Only the bias and explainability sections carry
// derived artifacts; a monitor nobody enabled costs no S3 traffic.
func Process(ctx context.Context, store *storage.Client, b *models.DriftCheckBaselines, needed []models.MonitorType) (*models.DriftCheckBaselines, error) {
	out := &models.DriftCheckBaselines{
		ModelName:        b.ModelName,
		ModelDataQuality: b.ModelDataQuality,
		ModelQuality:     b.ModelQuality,
		Bias:             b.Bias,
		Explainability:   b.Explainability,
	}

	for _, monitor := range needed {
		switch monitor {
		case models.MonitorModelBias:
			bias, err := CombineBiasConstraints(ctx, store, b.Bias)
			if err != nil {
				return nil, err
			}
			out.Bias = bias
		case models.MonitorModelExplainability:
			expl, err := RewriteExplainabilityConfig(ctx, store, b.Explainability, b.ModelName)
			if err != nil {
				return nil, err
			}
			out.Explainability = expl
		}
	}
	return out, nil
}

// CombineBiasConstraints merges the pre- and post-training bias
// constraint files into a single document, uploads it next to the
// post-training file, and returns a section whose Constraints URI
// points at the combined file. Post-training values win on collision.
func CombineBiasConstraints(ctx context.Context, store *storage.Client, bias models.ArtifactURIs) (models.ArtifactURIs, error) {
	preURI := bias.Get(models.ArtifactPreTrainingConstraints)
	postURI := bias.Get(models.ArtifactPostTrainingConstraints)
	if preURI == "" || postURI == "" {
		// Nothing to combine; the merge layer decides whether the
		// missing constraints are fatal.
		return bias, nil
	}

	pre, err := store.GetJSON(ctx, preURI)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pre-training bias constraints: %w", err)
	}
	post, err := store.GetJSON(ctx, postURI)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post-training bias constraints: %w", err)
	}

	for k, v := range post {
		pre[k] = v
	}

	bucket, postKey, err := storage.ParseURI(postURI)
	if err != nil {
		return nil, err
	}
	combinedKey := path.Join(path.Dir(postKey), combinedBiasConstraintsKey)
	if err := store.PutJSON(ctx, bucket, combinedKey, pre); err != nil {
		return nil, fmt.Errorf("failed to upload combined bias constraints: %w", err)
	}

	return models.ArtifactURIs{
		models.ArtifactConfigFile:  bias.Get(models.ArtifactConfigFile),
		models.ArtifactConstraints: storage.JoinURI(bucket, combinedKey),
	}, nil
}

// RewriteExplainabilityConfig stamps the resolved model name into the
// clarify analysis config's predictor section and uploads the result
// next to the original. The returned section's ConfigFile URI points at
// the rewritten copy.
func RewriteExplainabilityConfig(ctx context.Context, store *storage.Client, expl models.ArtifactURIs, modelName string) (models.ArtifactURIs, error) {
	configURI := expl.Get(models.ArtifactConfigFile)
	if configURI == "" {
		return expl, nil
	}

	doc, err := store.GetJSON(ctx, configURI)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch explainability config: %w", err)
	}

	predictor, ok := doc["predictor"].(map[string]any)
	if !ok {
		predictor = map[string]any{}
	}
	predictor["model_name"] = modelName
	doc["predictor"] = predictor

	bucket, configKey, err := storage.ParseURI(configURI)
	if err != nil {
		return nil, err
	}
	rewrittenKey := path.Join(path.Dir(configKey), monitorAnalysisConfigKey)
	if err := store.PutJSON(ctx, bucket, rewrittenKey, doc); err != nil {
		return nil, fmt.Errorf("failed to upload rewritten explainability config: %w", err)
	}

	return models.ArtifactURIs{
		models.ArtifactConfigFile:  storage.JoinURI(bucket, rewrittenKey),
		models.ArtifactConstraints: expl.Get(models.ArtifactConstraints),
	}, nil
}
