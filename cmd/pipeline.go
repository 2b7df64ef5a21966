package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"player-enricher/feature/players"
	"player-enricher/feature/players/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pipelineCmd groups the enrichment run commands
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the player enrichment pipeline",
}

// pipelineRunCmd represents the pipeline run command
var pipelineRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Merge rankings, registry and valuations and write the master table",
	Long: `Fetches current trade values, loads the player registry and the latest
ranking uploads, reconciles them into one record per player and upserts the
result into the sink. Use --dry-run to stop before writing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		mode, _ := cmd.Flags().GetString("mode")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		batchSize, _ := cmd.Flags().GetInt("batch-size")
		formats, _ := cmd.Flags().GetStringSlice("formats")
		registryFile, _ := cmd.Flags().GetString("registry-file")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		e, err := bootstrap(!dryRun)
		if err != nil {
			return err
		}
		defer e.logg.Sync()

		svc := e.playersService(nil)
		if !dryRun {
			if err := svc.Migrate(); err != nil {
				return fmt.Errorf("failed to migrate sink: %w", err)
			}
		}

		opts := players.RunOptions{
			Mode:      mode,
			DryRun:    dryRun,
			BatchSize: batchSize,
			Formats:   formats,
		}
		if registryFile != "" {
			opts.Registry = registry.FileSource{Path: registryFile}
		}

		result, runErr := svc.Run(cmd.Context(), opts)
		if result == nil {
			return runErr
		}

		if jsonOutput {
			filename := fmt.Sprintf("pipeline_run_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			e.logg.Info("Run report saved", zap.String("file", filename))
		}

		printRun(result)
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

		if errors.Is(runErr, players.ErrPartialWrite) {
			return fmt.Errorf("%d chunk(s) failed: %w", len(result.Write.Failed), runErr)
		}
		return runErr
	},
}

func printRun(r *players.RunResult) {
	fmt.Println("\n=== Pipeline Run ===")
	fmt.Printf("Mode: %s\n", r.Mode)
	fmt.Printf("Dry Run: %t\n", r.DryRun)
	fmt.Printf("Registry: %s (%d players)\n", r.Registry, r.Players.Players)
	fmt.Printf("Valuations: %d\n", r.Valuation.Players)

	for _, u := range r.Uploads {
		switch {
		case u.Error != "":
			fmt.Printf("Upload %s: %s\n", u.Format, u.Error)
		default:
			fmt.Printf("Upload %s: %s\n", u.Format, u.Key)
		}
	}

	if r.Plan != nil {
		for _, m := range r.Plan.Matches {
			fmt.Printf("Source %s: %d rows, %d matched, %d collisions\n", m.Source, m.Rows, m.Matched, m.Collisions)
		}
		fmt.Printf("Skipped Sources: %d\n", r.Plan.Summary.SkippedSources)
		fmt.Printf("Master Rows: %d\n", r.Plan.Summary.MasterRows)
	}

	if r.Write != nil {
		fmt.Printf("Written: %d/%d rows in %d chunks\n", r.Write.Written, r.Write.Rows, r.Write.Chunks)
		for _, f := range r.Write.Failed {
			fmt.Printf("Chunk %d failed: %s\n", f.Index, f.Error)
		}
	}
}

func init() {
	RootCmd.AddCommand(pipelineCmd)
	pipelineCmd.AddCommand(pipelineRunCmd)

	pipelineRunCmd.Flags().String("mode", "", "Join mode against valuations: inner or left (default from config)")
	pipelineRunCmd.Flags().Bool("dry-run", false, "Build the master table without writing it")
	pipelineRunCmd.Flags().Int("batch-size", 0, "Rows per sink chunk (default from config)")
	pipelineRunCmd.Flags().StringSlice("formats", nil, "Ranking formats to merge (default from config)")
	pipelineRunCmd.Flags().String("registry-file", "", "Read the player registry from a local JSON file")
	pipelineRunCmd.Flags().Bool("json", false, "Save the full run report as JSON")
}
