package cmd

import (
	"context"
	"fmt"
	"os"

	"whitecore/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the host and mod databases",
	Long:  `Checks that the host and mod databases have the layout the injection pass reads, and that the run ledger schema matches.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// hostCmd represents the integrity host command
var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Check the host database layout",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// modCmd represents the integrity mod command
var modCmd = &cobra.Command{
	Use:   "mod",
	Short: "Check the mod database layout",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// ledgerCmd represents the integrity ledger command
var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Check the run ledger schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(hostCmd, modCmd, ledgerCmd)
}

func runIntegrityChecks(ctx context.Context, runHost, runMod, runLedger bool) {
	e, err := newEnv(runLedger)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	logg := e.logger

	svc := integrity.NewService(e.cfg.Mod, e.source, e.store, e.cfg.Storage.Bucket, e.db, logg)

	if runHost {
		logg.Info("Checking host database...", zap.String("path", e.cfg.Mod.HostPath))
		missing, err := svc.CheckHost(ctx)
		if err != nil {
			logg.Fatal("Host check failed", zap.Error(err))
		}
		if len(missing) == 0 {
			logg.Info("Host database is intact.")
		} else {
			logg.Warn("Missing host entries detected", zap.Strings("missing", missing))
		}
	}

	if runMod {
		logg.Info("Checking mod database...", zap.String("path", e.cfg.Mod.DatabasePath()))
		missing, err := svc.CheckMod(ctx)
		if err != nil {
			logg.Fatal("Mod check failed", zap.Error(err))
		}
		if len(missing) == 0 {
			logg.Info("Mod database is intact.")
		} else {
			logg.Warn("Missing mod entries detected", zap.Strings("missing", missing))
		}
	}

	if runLedger {
		logg.Info("Checking run ledger schema...")
		report, err := svc.CheckLedger()
		if err != nil {
			logg.Error("Ledger schema check failed", zap.Error(err))
			return
		}
		if report.Matched {
			logg.Info("Ledger schema matches expected definition.", zap.String("driver", report.Driver))
			return
		}
		logg.Warn("Ledger schema mismatches found", zap.String("driver", report.Driver))
		for table, tbl := range report.Tables {
			if tbl.Status == "ok" {
				continue
			}
			if len(tbl.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			}
			if len(tbl.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}
}
