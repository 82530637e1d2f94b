// Package registry resolves the drift-check baselines registered with
// the model package behind a deployed SageMaker endpoint.
package registry

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
)

// SageMakerAPI is the subset of the SageMaker client this tool needs.
type SageMakerAPI interface {
	DescribeEndpoint(ctx context.Context, params *sagemaker.DescribeEndpointInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeEndpointOutput, error)
	DescribeEndpointConfig(ctx context.Context, params *sagemaker.DescribeEndpointConfigInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeEndpointConfigOutput, error)
	DescribeModel(ctx context.Context, params *sagemaker.DescribeModelInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeModelOutput, error)
	DescribeModelPackage(ctx context.Context, params *sagemaker.DescribeModelPackageInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeModelPackageOutput, error)
	ListTags(ctx context.Context, params *sagemaker.ListTagsInput, optFns ...func(*sagemaker.Options)) (*sagemaker.ListTagsOutput, error)
}

var _ SageMakerAPI = (*sagemaker.Client)(nil)

type Client struct {
	api SageMakerAPI
}

func NewClient(api SageMakerAPI) *Client {
	return &Client{api: api}
}

func NewFromConfig(cfg aws.Config) *Client {
	return NewClient(sagemaker.NewFromConfig(cfg))
}

// ProjectTags returns the SageMaker project's tags as a plain map. A
// lookup failure degrades to no tags: tagging must never fail a build.
func (c *Client) ProjectTags(ctx context.Context, projectARN string) map[string]string {
	resp, err := c.api.ListTags(ctx, &sagemaker.ListTagsInput{
		ResourceArn: aws.String(projectARN),
	})
	if err != nil {
		return nil
	}

	tags := make(map[string]string, len(resp.Tags))
	for _, tag := range resp.Tags {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return tags
}
