package baselines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelMonitorImageURI(t *testing.T) {
	uri, err := ModelMonitorImageURI("us-east-1")
	require.NoError(t, err)
	assert.Equal(t, "156813124566.dkr.ecr.us-east-1.amazonaws.com/sagemaker-model-monitor-analyzer", uri)
}

func TestClarifyImageURI(t *testing.T) {
	uri, err := ClarifyImageURI("eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "131013547314.dkr.ecr.eu-west-1.amazonaws.com/sagemaker-clarify-processing:1.0", uri)
}

func TestImageURIUnknownRegion(t *testing.T) {
	_, err := ModelMonitorImageURI("mars-north-1")
	require.Error(t, err)

	_, err = ClarifyImageURI("mars-north-1")
	require.Error(t, err)
}
