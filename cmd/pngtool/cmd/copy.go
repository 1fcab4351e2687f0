package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aexlab51/PNG-library/pkg/png"
)

// copyCmd represents the copy command
var copyCmd = &cobra.Command{
	Use:   "copy <src> <dst>",
	Short: "Re-encode a file chunk by chunk",
	Long: `Copy a file by decoding every chunk and re-encoding it, recomputing
lengths and CRCs. The source must pass validation before anything is
written.

Example:
  pngtool copy damaged.png repaired.png`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("error opening source: %w", err)
		}
		defer src.Close()

		f, err := png.ReadFile(src)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", args[0], err)
		}

		dst, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("error creating destination: %w", err)
		}

		if err := f.WriteTo(dst); err != nil {
			dst.Close()
			os.Remove(args[1])
			return fmt.Errorf("error writing %s: %w", args[1], err)
		}
		if err := dst.Close(); err != nil {
			return fmt.Errorf("error closing destination: %w", err)
		}

		log.Info("copied", "src", args[0], "dst", args[1], "container", f.Type.String(), "chunks", len(f.Chunks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
