package cmd

import (
	"context"
	"fmt"
	"os"

	"whitecore/feature/inject"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// itemCmd represents the item command
var itemCmd = &cobra.Command{
	Use:   "item [id]",
	Short: "View the injection result of a mod item",
	Long:  `Runs a dry injection pass and checks one mod item across templates, handbook and locales.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runItemCheck(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(itemCmd)
}

func runItemCheck(ctx context.Context, id string) {
	e, err := newEnv(false)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	logg := e.logger

	svc := e.injectService()
	logg.Info("Checking mod item...", zap.String("item_id", id))
	report, _ := svc.PostDBLoad(ctx)
	if report.Status != inject.RunOK {
		logg.Fatal("Injection pass aborted", zap.String("error", report.Error))
	}

	check, err := svc.VerifyItem(id)
	if err != nil {
		logg.Fatal("Item check failed", zap.Error(err))
	}

	fmt.Println("\n--- Item Detail View ---")
	fmt.Printf("ID:             %s\n", check.ID)
	fmt.Printf("Name:           %s\n", check.Name)
	fmt.Printf("Clone Of:       %s\n", check.Clone)
	fmt.Printf("Enabled:        %v\n", check.Enabled)
	fmt.Println("------------------------")
	fmt.Printf("In Templates:   %v\n", check.InTemplates)
	fmt.Printf("In Handbook:    %v (%d)\n", check.InHandbook, check.HandbookEntries)
	if outcome, ok := report.Outcome(inject.KindItem, id); ok {
		fmt.Printf("Outcome:        %s%s%s\n", statusColor(string(outcome.Status)), outcome.Status, colorReset)
		for _, issue := range outcome.Issues {
			fmt.Printf("  - %s\n", issue)
		}
	}
	fmt.Printf("Integrity:      %s%s%s\n", statusColor(check.Status), check.Status, colorReset)

	if len(check.MissingLocales) > 0 {
		fmt.Printf("\nMissing locales: %v\n", check.MissingLocales)
	}
	if len(check.Mismatches) > 0 {
		fmt.Println("\nMismatches/Errors:")
		for _, m := range check.Mismatches {
			fmt.Printf("- %s\n", m)
		}
	}
	fmt.Println("------------------------")
}
