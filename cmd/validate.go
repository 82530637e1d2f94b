package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagemon/monitor-cli/internal/merge"
	"github.com/sagemon/monitor-cli/internal/parser"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Work with stage parameter files",
	Long:  "Inspect and validate the stage parameter files before deployment",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a stage parameter file",
	Long: `Check a stage parameter file offline: enable flags must be yes or no,
and monitors that need ground truth are reported when they would be
skipped. No AWS calls are made.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configValidateCmd)

	// Validate command flags
	configValidateCmd.Flags().String("file", "", "Parameter file to validate (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	cfg, err := parser.ReadStageConfig(file)
	if err != nil {
		return err
	}
	if cfg.Parameters == nil {
		return fmt.Errorf("%s: missing Parameters section", file)
	}
	if cfg.StageName() == "" {
		return fmt.Errorf("%s: missing StageName parameter", file)
	}

	var problems []string
	for _, rule := range merge.Rules() {
		flag := cfg.Parameters[rule.EnableKey]
		if flag != "" && flag != "yes" && flag != "no" {
			problems = append(problems, fmt.Sprintf("%s must be \"yes\" or \"no\", got %q", rule.EnableKey, flag))
			continue
		}

		switch {
		case !rule.Enabled(cfg.Parameters):
			fmt.Printf("  %s: disabled\n", rule.Monitor)
		case !rule.Deployable(cfg.Parameters):
			fmt.Printf("  %s: enabled but %s is empty; monitor will not be deployed\n", rule.Monitor, rule.CompanionKey)
		default:
			fmt.Printf("  %s: enabled\n", rule.Monitor)
			for _, field := range rule.Fields {
				if cfg.Parameters[field.ParamKey] != "" {
					fmt.Printf("    %s: override\n", field.ParamKey)
				} else {
					fmt.Printf("    %s: from registry\n", field.ParamKey)
				}
			}
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Printf("  error: %s\n", p)
		}
		return fmt.Errorf("%s: %d problem(s) found", file, len(problems))
	}

	fmt.Printf("%s: OK\n", file)
	return nil
}
