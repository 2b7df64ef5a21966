package cmd

import (
	"context"
	"fmt"
	"os"

	"player-enricher/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and the sink",
	Long:  `Checks the bucket folder layout, the ranking uploads, the player registry and the sink schema.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), checkAll)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkStructure)
	},
}

// uploadsCmd represents the integrity uploads command
var uploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "Check that every ranking format has an upload",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkUploads)
	},
}

// registryCmd represents the integrity registry command
var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Check the player registry object",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkRegistry)
	},
}

// sinkCmd represents the integrity sink command
var sinkCmd = &cobra.Command{
	Use:   "sink",
	Short: "Check the sink database schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkSink)
	},
}

type integrityCheck int

const (
	checkAll integrityCheck = iota
	checkStructure
	checkUploads
	checkRegistry
	checkSink
)

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, uploadsCmd, registryCmd, sinkCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, only integrityCheck) {
	e, err := bootstrap(false)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	logg := e.logg
	defer logg.Sync()

	svc := integrity.NewService(e.store, e.cfg.Storage.Bucket, logg, e.db, e.cfg.Pipeline.RegistryObject)
	run := func(c integrityCheck) bool { return only == checkAll || only == c }

	if run(checkStructure) {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			logg.Fatal("Structure check failed", zap.Error(err))
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if only == checkStructure && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					logg.Fatal("Failed to fix structure", zap.Error(err))
				}
				logg.Info("Structure fixed successfully.")
			} else if only == checkStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if run(checkUploads) {
		logg.Info("Checking ranking uploads...")
		for _, u := range svc.CheckUploads(ctx) {
			switch u.Status {
			case "ok":
				logg.Info("Upload found",
					zap.String("format", u.Format),
					zap.String("key", u.Key),
					zap.Time("last_modified", u.LastModified),
				)
			case "missing":
				logg.Warn("No upload for format", zap.String("format", u.Format), zap.String("prefix", u.Prefix))
			default:
				logg.Error("Upload check failed", zap.String("format", u.Format), zap.String("error", u.Error))
			}
		}
	}

	if run(checkRegistry) {
		logg.Info("Checking player registry...")
		report := svc.CheckRegistry(ctx)
		switch report.Status {
		case "ok":
			logg.Info("Registry is readable",
				zap.String("key", report.Key),
				zap.Int("players", report.Players.Players),
				zap.Int("missing_id", report.Players.MissingID),
				zap.Int("duplicates", report.Players.Duplicates),
			)
		case "missing":
			logg.Warn("Registry object not found", zap.String("key", report.Key))
		default:
			logg.Error("Registry check failed", zap.String("key", report.Key), zap.String("error", report.Error))
		}
	}

	if run(checkSink) {
		logg.Info("Checking sink schema integrity...")
		report, err := svc.CheckSink()
		if err != nil {
			logg.Error("Sink schema check failed", zap.Error(err))
			return
		}
		if report.Matched {
			logg.Info("Sink schema matches expected definition.", zap.String("driver", report.Driver))
			return
		}

		logg.Warn("Sink schema mismatches found", zap.String("driver", report.Driver))
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
		for _, msg := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", msg))
		}
	}
}
