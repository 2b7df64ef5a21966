package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// playerCmd represents the player lookup command
var playerCmd = &cobra.Command{
	Use:   "player <sleeper_id> [sleeper_id...]",
	Short: "Print enriched player records from the sink",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer e.logg.Sync()

		svc := e.playersService(nil)

		var out any
		if len(args) == 1 {
			p, err := svc.GetPlayer(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("lookup %s: %w", args[0], err)
			}
			out = p
		} else {
			ps, err := svc.GetPlayers(cmd.Context(), args)
			if err != nil {
				return err
			}
			out = ps
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playerCmd)
}
