package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence [text...]",
	Short: "Print the sorted language confidence map for the given text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDetectorFromFlags(cmd)
		if err != nil {
			return err
		}
		values := d.ComputeLanguageConfidenceValues(strings.Join(args, " "))
		for _, v := range values {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.4f\n", v.Language.IsoCode639_1(), v.Confidence)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(confidenceCmd)
}
