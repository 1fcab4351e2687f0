package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aexlab51/PNG-library/pkg/api"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <file>...",
	Short: "Check files for framing, CRC, field, and structure errors",
	Long: `Verify one or more files. Exits with a non-zero status if any file
fails validation.

Example:
  pngtool verify image.png animation.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				cmd.Printf("%s: error reading file: %v\n", path, err)
				failed++
				continue
			}

			report := api.BuildReport(data)
			if report.Valid {
				cmd.Printf("%s: ok (%s, %d chunks)\n", path, report.Container, len(report.Chunks))
			} else {
				cmd.Printf("%s: %s: %s\n", path, report.ErrorKind, report.InvalidReason)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed verification", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
