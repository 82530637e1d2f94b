package baselines

import "fmt"

// Accounts hosting the prebuilt analyzer images, per region. Same data
// the SageMaker SDK resolves from its bundled registry config.
var modelMonitorAccounts = map[string]string{
	"us-east-1":      "156813124566",
	"us-east-2":      "777275614652",
	"us-west-1":      "890145073186",
	"us-west-2":      "159807026194",
	"eu-west-1":      "468650794304",
	"eu-west-2":      "749857270468",
	"eu-central-1":   "048819808253",
	"ap-northeast-1": "574779866223",
	"ap-northeast-2": "709848358524",
	"ap-southeast-1": "245545462676",
	"ap-southeast-2": "563025443158",
	"ap-south-1":     "126357580389",
	"ca-central-1":   "536280801234",
	"sa-east-1":      "539772159869",
}

var clarifyAccounts = map[string]string{
	"us-east-1":      "205585389593",
	"us-east-2":      "211330385671",
	"us-west-1":      "740489534195",
	"us-west-2":      "306415355426",
	"eu-west-1":      "131013547314",
	"eu-west-2":      "440796970383",
	"eu-central-1":   "017069133835",
	"ap-northeast-1": "377024640650",
	"ap-northeast-2": "263625296855",
	"ap-southeast-1": "834264404009",
	"ap-southeast-2": "007051062584",
	"ap-south-1":     "452307495513",
	"ca-central-1":   "675030665977",
	"sa-east-1":      "520018980103",
}

// ModelMonitorImageURI returns the built-in model-monitor analyzer
// image for the region.
func ModelMonitorImageURI(region string) (string, error) {
	account, ok := modelMonitorAccounts[region]
	if !ok {
		return "", fmt.Errorf("no model-monitor image registered for region %s", region)
	}
	return fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com/sagemaker-model-monitor-analyzer", account, region), nil
}

// ClarifyImageURI returns the built-in clarify processing image for the
// region.
func ClarifyImageURI(region string) (string, error) {
	account, ok := clarifyAccounts[region]
	if !ok {
		return "", fmt.Errorf("no clarify image registered for region %s", region)
	}
	return fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com/sagemaker-clarify-processing:1.0", account, region), nil
}
