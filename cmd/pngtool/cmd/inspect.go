package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aexlab51/PNG-library/pkg/api"
)

var inspectJSON bool

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "List the chunks of a PNG, MNG, or JNG file",
	Long: `Inspect a file and print its chunk listing, header summary, and
validation result.

Example:
  pngtool inspect image.png
  pngtool inspect --json image.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}

		report := api.BuildReport(data)

		if inspectJSON {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		printReport(cmd, report)
		return nil
	},
}

func printReport(cmd *cobra.Command, report *api.InspectionReport) {
	cmd.Printf("Container: %s (%d bytes)\n", report.Container, report.SizeBytes)
	for _, c := range report.Chunks {
		cmd.Printf("  %s  %8d bytes  %s\n", c.Type, c.DataLength, chunkFlags(c))
	}
	if report.Image != nil {
		img := report.Image
		cmd.Printf("Image: %dx%d, %d-bit, color type %d, interlace %s, %d data chunk(s)\n",
			img.Width, img.Height, img.BitDepth, img.ColorType, img.Interlace, img.NumData)
	}
	if report.Valid {
		cmd.Println("Valid: yes")
	} else {
		cmd.Printf("Valid: no (%s: %s)\n", report.ErrorKind, report.InvalidReason)
	}
}

func chunkFlags(c api.ChunkSummary) string {
	flags := make([]byte, 3)
	flags[0], flags[1], flags[2] = 'a', 'p', '.'
	if c.Critical {
		flags[0] = 'C'
	}
	if !c.Public {
		flags[1] = 'x'
	}
	if c.SafeToCopy {
		flags[2] = 's'
	}
	return string(flags)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print the report as JSON")
}
