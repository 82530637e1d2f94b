package registry

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"

	"github.com/sagemon/monitor-cli/internal/models"
)

// ResolveBaselines walks from the deployed endpoint to its registered
// model package and returns the drift-check baselines recorded there:
// endpoint -> endpoint config -> model -> model package. Any broken
// link in the chain is an error since the deployment cannot proceed
// without known baselines.
func (c *Client) ResolveBaselines(ctx context.Context, endpointName string) (*models.DriftCheckBaselines, error) {
	endpoint, err := c.api.DescribeEndpoint(ctx, &sagemaker.DescribeEndpointInput{
		EndpointName: aws.String(endpointName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe endpoint %s: %w", endpointName, err)
	}

	configName := aws.ToString(endpoint.EndpointConfigName)
	endpointConfig, err := c.api.DescribeEndpointConfig(ctx, &sagemaker.DescribeEndpointConfigInput{
		EndpointConfigName: aws.String(configName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe endpoint config %s: %w", configName, err)
	}
	if len(endpointConfig.ProductionVariants) == 0 {
		return nil, fmt.Errorf("endpoint config %s has no production variants", configName)
	}

	modelName := aws.ToString(endpointConfig.ProductionVariants[0].ModelName)
	model, err := c.api.DescribeModel(ctx, &sagemaker.DescribeModelInput{
		ModelName: aws.String(modelName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe model %s: %w", modelName, err)
	}

	packageName := modelPackageName(model)
	if packageName == "" {
		return nil, fmt.Errorf("model %s has no model package reference", modelName)
	}

	pkg, err := c.api.DescribeModelPackage(ctx, &sagemaker.DescribeModelPackageInput{
		ModelPackageName: aws.String(packageName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe model package %s: %w", packageName, err)
	}

	baselines := flattenBaselines(pkg.DriftCheckBaselines)
	baselines.ModelName = modelName
	return baselines, nil
}

func modelPackageName(model *sagemaker.DescribeModelOutput) string {
	if len(model.Containers) > 0 {
		return aws.ToString(model.Containers[0].ModelPackageName)
	}
	if model.PrimaryContainer != nil {
		return aws.ToString(model.PrimaryContainer.ModelPackageName)
	}
	return ""
}

// flattenBaselines reduces the registry's nested baseline sources to
// plain artifact-name -> S3 URI maps, one per monitor section.
func flattenBaselines(b *types.DriftCheckBaselines) *models.DriftCheckBaselines {
	out := &models.DriftCheckBaselines{}
	if b == nil {
		return out
	}

	if b.ModelDataQuality != nil {
		out.ModelDataQuality = artifactURIs(map[string]*string{
			models.ArtifactConstraints: metricsURI(b.ModelDataQuality.Constraints),
			models.ArtifactStatistics:  metricsURI(b.ModelDataQuality.Statistics),
		})
	}
	if b.ModelQuality != nil {
		out.ModelQuality = artifactURIs(map[string]*string{
			models.ArtifactConstraints: metricsURI(b.ModelQuality.Constraints),
			models.ArtifactStatistics:  metricsURI(b.ModelQuality.Statistics),
		})
	}
	if b.Bias != nil {
		out.Bias = artifactURIs(map[string]*string{
			models.ArtifactConfigFile:              fileURI(b.Bias.ConfigFile),
			models.ArtifactPreTrainingConstraints:  metricsURI(b.Bias.PreTrainingConstraints),
			models.ArtifactPostTrainingConstraints: metricsURI(b.Bias.PostTrainingConstraints),
		})
	}
	if b.Explainability != nil {
		out.Explainability = artifactURIs(map[string]*string{
			models.ArtifactConstraints: metricsURI(b.Explainability.Constraints),
			models.ArtifactConfigFile:  fileURI(b.Explainability.ConfigFile),
		})
	}
	return out
}

func artifactURIs(sources map[string]*string) models.ArtifactURIs {
	uris := models.ArtifactURIs{}
	for name, uri := range sources {
		if v := aws.ToString(uri); v != "" {
			uris[name] = v
		}
	}
	return uris
}

func metricsURI(s *types.MetricsSource) *string {
	if s == nil {
		return nil
	}
	return s.S3Uri
}

func fileURI(s *types.FileSource) *string {
	if s == nil {
		return nil
	}
	return s.S3Uri
}
