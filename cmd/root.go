package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "monitor-cli",
	Short: "SageMaker Model Monitor deployment config tool",
	Long: `A command line tool for preparing SageMaker Model Monitor deployments.
Resolves drift-check baselines from the model registry and merges them
into the CloudFormation parameter files the deployment step consumes.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("project-name", "", "SageMaker project name (overrides SAGEMAKER_PROJECT_NAME)")
	rootCmd.PersistentFlags().String("project-id", "", "SageMaker project id (overrides SAGEMAKER_PROJECT_ID)")
	rootCmd.PersistentFlags().String("project-arn", "", "SageMaker project ARN (overrides SAGEMAKER_PROJECT_ARN)")
	rootCmd.PersistentFlags().String("monitor-role", "", "IAM execution role ARN used by the model monitor")
	rootCmd.PersistentFlags().String("outputs-bucket", "", "S3 bucket for monitoring job outputs")
	viper.BindPFlag("project_name", rootCmd.PersistentFlags().Lookup("project-name"))
	viper.BindPFlag("project_id", rootCmd.PersistentFlags().Lookup("project-id"))
	viper.BindPFlag("project_arn", rootCmd.PersistentFlags().Lookup("project-arn"))
	viper.BindPFlag("monitor_role", rootCmd.PersistentFlags().Lookup("monitor-role"))
	viper.BindPFlag("outputs_bucket", rootCmd.PersistentFlags().Lookup("outputs-bucket"))
}

func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("MONITOR")
	viper.AutomaticEnv()

	// Also bind the variables the SageMaker project pipeline exports
	viper.BindEnv("project_name", "SAGEMAKER_PROJECT_NAME")
	viper.BindEnv("project_id", "SAGEMAKER_PROJECT_ID")
	viper.BindEnv("project_arn", "SAGEMAKER_PROJECT_ARN")

	// Set defaults
	viper.SetDefault("import_staging_config", "staging-monitoring-schedule-config.json")
	viper.SetDefault("import_prod_config", "prod-monitoring-schedule-config.json")
	viper.SetDefault("export_staging_config", "staging-monitoring-schedule-config-export.json")
	viper.SetDefault("export_prod_config", "prod-monitoring-schedule-config-export.json")
}
