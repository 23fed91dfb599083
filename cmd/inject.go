package cmd

import (
	"fmt"
	"os"
	"time"

	"whitecore/core/gamedata"
	"whitecore/feature/inject"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// injectCmd represents the inject command
var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Apply the mod to the host database",
	Long: `Loads the host and the mod database, clones every enabled mod item, merges the trader
assorts and writes the patched tables. Use --dry-run to only print the report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		publish, _ := cmd.Flags().GetBool("publish")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		out, _ := cmd.Flags().GetString("out")

		e, err := newEnv(true)
		if err != nil {
			return err
		}
		defer e.logger.Sync()
		e.openLedger()

		report, tables := e.injectService().PostDBLoad(ctx)
		printReport(report)

		if jsonOutput {
			filename := fmt.Sprintf("inject_report_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			e.logger.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		if report.Status != inject.RunOK {
			return fmt.Errorf("injection aborted: %s", report.Error)
		}
		if dryRun {
			e.logger.Info("Dry run, nothing written")
			return nil
		}

		if out == "" {
			out = e.cfg.Mod.OutputPath
		}
		traderIDs, err := e.traderIDs()
		if err != nil {
			return err
		}

		var sink gamedata.Sink
		if publish {
			sink = gamedata.NewBucketSink(e.store, e.cfg.Storage.Bucket, out)
		} else {
			sink = gamedata.NewDirSink(out)
		}

		written, err := gamedata.NewWriter(sink, e.logger).Write(ctx, tables, traderIDs)
		if err != nil {
			return fmt.Errorf("failed to write tables: %w", err)
		}
		e.logger.Info("Patched tables written", zap.String("out", out), zap.Int("files", len(written)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(injectCmd)

	injectCmd.Flags().Bool("dry-run", false, "Print the report without writing any file")
	injectCmd.Flags().Bool("publish", false, "Write the patched tables to the storage bucket")
	injectCmd.Flags().Bool("json", false, "Save the detailed report as JSON")
	injectCmd.Flags().String("out", "", "Output directory or bucket prefix (defaults to mod.output_path)")
}

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

func statusColor(status string) string {
	switch status {
	case string(inject.StatusFailed), inject.RunAborted, inject.CheckFail:
		return colorRed
	case string(inject.StatusSkipped), inject.CheckWarning:
		return colorYellow
	default:
		return colorGreen
	}
}

func printReport(report *inject.Report) {
	fmt.Println("\n=== WhiteCore Injection Report ===")
	fmt.Printf("Run:            %s\n", report.RunID)
	fmt.Printf("Status:         %s%s%s\n", statusColor(report.Status), report.Status, colorReset)
	if report.Error != "" {
		fmt.Printf("Error:          %s\n", report.Error)
	}
	fmt.Println("----------------------------------")
	for _, o := range report.Outcomes {
		fmt.Printf("%-7s %-26s %s%-8s%s", o.Kind, o.ID, statusColor(string(o.Status)), o.Status, colorReset)
		if o.Error != "" {
			fmt.Printf(" %s", o.Error)
		}
		fmt.Println()
		for _, issue := range o.Issues {
			fmt.Printf("        - %s\n", issue)
		}
	}
	fmt.Println("----------------------------------")
	fmt.Printf("Applied: %d  Skipped: %d  Failed: %d  Issues: %d\n",
		report.Summary.Applied, report.Summary.Skipped, report.Summary.Failed, report.Summary.Issues)
	fmt.Printf("Execution Time: %s\n", report.Duration().String())
}
