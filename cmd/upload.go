package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <format> <file>",
	Short: "Upload a ranking spreadsheet for a format",
	Long:  `Stores an .xlsx or .csv ranking export under the format's prefix so the next pipeline run picks it up.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, path := args[0], args[1]

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		e, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer e.logg.Sync()

		res, err := e.playersService(nil).Upload(cmd.Context(), format, filepath.Base(path), f, info.Size())
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}

		e.logg.Info("Upload stored",
			zap.String("format", res.Format),
			zap.String("key", res.Key),
			zap.Int64("size", res.Size),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(uploadCmd)
}
