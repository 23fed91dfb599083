package cmd

import (
	"fmt"
	"os"
	"time"

	"whitecore/feature/inject"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every mod item after a dry injection pass",
	Long:  `Runs a dry injection pass and reports, per mod item, whether it is registered in templates, handbook and every locale. Outputs metrics by default or detailed JSON with --json flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		e, err := newEnv(false)
		if err != nil {
			return err
		}
		logg := e.logger

		svc := e.injectService()
		report, _ := svc.PostDBLoad(cmd.Context())
		if report.Status != inject.RunOK {
			return fmt.Errorf("injection pass aborted: %s", report.Error)
		}

		v, err := svc.Verify()
		if err != nil {
			return err
		}

		// Only items with problems go to the JSON file.
		var issues []inject.ItemCheck
		for _, c := range v.Items {
			if c.Status != inject.CheckPass {
				issues = append(issues, c)
			}
		}

		filename := ""
		if jsonOutput {
			filename = fmt.Sprintf("verify_items_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(issues, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
		}

		executionTime := time.Since(startTime)

		fmt.Println("\n=== WhiteCore Verification Metrics ===")
		fmt.Printf("Total Items: %d\n", v.Summary.Total)
		fmt.Printf("Pass: %d\n", v.Summary.Pass)
		fmt.Printf("Warnings: %d\n", v.Summary.Warnings)
		fmt.Printf("Failures: %d\n", v.Summary.Failures)
		fmt.Printf("Execution Time: %s\n", executionTime.String())
		for _, c := range issues {
			fmt.Printf("%s%-8s%s %s %v\n", statusColor(c.Status), c.Status, colorReset, c.ID, c.Mismatches)
		}
		if jsonOutput {
			fmt.Printf("\nDetailed JSON saved to: %s (%d items with issues)\n", filename, len(issues))
		}

		logg.Info("Verification completed",
			zap.Int("total", v.Summary.Total),
			zap.Int("warnings", v.Summary.Warnings),
			zap.Int("failures", v.Summary.Failures),
			zap.Duration("execution_time", executionTime),
		)

		if v.Summary.Failures > 0 {
			return fmt.Errorf("%d items failed verification", v.Summary.Failures)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Bool("json", false, "Output detailed JSON format")
}
