package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sagemon/monitor-cli/internal/baselines"
	"github.com/sagemon/monitor-cli/internal/config"
	"github.com/sagemon/monitor-cli/internal/merge"
	"github.com/sagemon/monitor-cli/internal/models"
	"github.com/sagemon/monitor-cli/internal/parser"
	"github.com/sagemon/monitor-cli/internal/registry"
	"github.com/sagemon/monitor-cli/internal/storage"
)

var baselinesCmd = &cobra.Command{
	Use:   "baselines",
	Short: "Work with model registry baselines",
	Long:  "Resolve and merge drift-check baselines from the model registry",
}

var baselinesMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge registry baselines into the stage parameter files",
	Long: `Resolve the drift-check baselines registered with the model behind the
staging endpoint and merge them into the staging and prod parameter
files. Values already present in a file win over registry values.`,
	RunE: runMerge,
}

var baselinesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the registry baselines for an endpoint",
	Long:  "Resolve and print the drift-check baselines as JSON, without merging",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(baselinesCmd)
	baselinesCmd.AddCommand(baselinesMergeCmd)
	baselinesCmd.AddCommand(baselinesShowCmd)

	// Merge command flags
	baselinesMergeCmd.Flags().String("import-staging-config", "", "Staging parameter file to read")
	baselinesMergeCmd.Flags().String("import-prod-config", "", "Prod parameter file to read")
	baselinesMergeCmd.Flags().String("export-staging-config", "", "Staging parameter file to write")
	baselinesMergeCmd.Flags().String("export-prod-config", "", "Prod parameter file to write")

	// Show command flags
	baselinesShowCmd.Flags().String("endpoint", "", "Endpoint name (default: derived from the staging config)")
	baselinesShowCmd.Flags().String("import-staging-config", "", "Staging parameter file used to derive the endpoint name")
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	importStaging := flagOrDefault(cmd, "import-staging-config", "import_staging_config")
	importProd := flagOrDefault(cmd, "import-prod-config", "import_prod_config")
	exportStaging := flagOrDefault(cmd, "export-staging-config", "export_staging_config")
	exportProd := flagOrDefault(cmd, "export-prod-config", "export_prod_config")

	staging, err := parser.ReadStageConfig(importStaging)
	if err != nil {
		return fmt.Errorf("failed to read staging config: %w", err)
	}
	prod, err := parser.ReadStageConfig(importProd)
	if err != nil {
		return fmt.Errorf("failed to read prod config: %w", err)
	}
	if staging.StageName() == "" {
		return fmt.Errorf("staging config must include the StageName parameter")
	}

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	if awsCfg.Region == "" {
		return fmt.Errorf("AWS region is not configured")
	}

	monitorImage, err := baselines.ModelMonitorImageURI(awsCfg.Region)
	if err != nil {
		return err
	}
	clarifyImage, err := baselines.ClarifyImageURI(awsCfg.Region)
	if err != nil {
		return err
	}

	sm := registry.NewFromConfig(awsCfg)

	// Hit the registry only for monitors that are enabled, deployable,
	// and not fully specified by overrides.
	needed := merge.Needed(staging.Parameters, prod.Parameters)

	var resolved *models.DriftCheckBaselines
	if len(needed) > 0 {
		endpointName := fmt.Sprintf("%s-%s", cfg.ProjectName, staging.StageName())
		resolved, err = sm.ResolveBaselines(ctx, endpointName)
		if err != nil {
			return err
		}
		resolved, err = baselines.Process(ctx, storage.NewFromConfig(awsCfg), resolved, needed)
		if err != nil {
			return err
		}
	}

	var projectTags map[string]string
	if cfg.ProjectARN != "" {
		projectTags = sm.ProjectTags(ctx, cfg.ProjectARN)
	}

	opts := merge.ExtendOptions{
		ProjectName:     cfg.ProjectName,
		ProjectID:       cfg.ProjectID,
		RoleARN:         cfg.RoleARN,
		OutputsBucket:   cfg.OutputsBucket,
		MonitorImageURI: monitorImage,
		ClarifyImageURI: clarifyImage,
		ProjectTags:     projectTags,
	}

	stagingOut, err := merge.Extend(staging, resolved, opts)
	if err != nil {
		return fmt.Errorf("failed to merge staging config: %w", err)
	}
	prodOut, err := merge.Extend(prod, resolved, opts)
	if err != nil {
		return fmt.Errorf("failed to merge prod config: %w", err)
	}

	if err := parser.WriteStageConfig(exportStaging, stagingOut); err != nil {
		return err
	}
	if err := parser.WriteStageConfig(exportProd, prodOut); err != nil {
		return err
	}

	fmt.Printf("Exported monitoring schedule configs\n")
	fmt.Printf("  staging: %s\n", exportStaging)
	fmt.Printf("  prod:    %s\n", exportProd)

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	endpointName, _ := cmd.Flags().GetString("endpoint")
	if endpointName == "" {
		if cfg.ProjectName == "" {
			return fmt.Errorf("either --endpoint or a project name must be specified")
		}
		importStaging := flagOrDefault(cmd, "import-staging-config", "import_staging_config")
		staging, err := parser.ReadStageConfig(importStaging)
		if err != nil {
			return fmt.Errorf("failed to read staging config: %w", err)
		}
		if staging.StageName() == "" {
			return fmt.Errorf("staging config must include the StageName parameter")
		}
		endpointName = fmt.Sprintf("%s-%s", cfg.ProjectName, staging.StageName())
	}

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	resolved, err := registry.NewFromConfig(awsCfg).ResolveBaselines(ctx, endpointName)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(resolved, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal baselines: %w", err)
	}
	fmt.Println(string(data))

	return nil
}

// flagOrDefault returns the flag's value, falling back to the viper
// default when the flag was not set.
func flagOrDefault(cmd *cobra.Command, flag, key string) string {
	value, _ := cmd.Flags().GetString(flag)
	if value == "" {
		value = viper.GetString(key)
	}
	return value
}
