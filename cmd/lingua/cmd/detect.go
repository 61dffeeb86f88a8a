package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polylang/lingua/language"
)

var detectCmd = &cobra.Command{
	Use:   "detect [text...]",
	Short: "Print the single best-guess language for the given text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDetectorFromFlags(cmd)
		if err != nil {
			return err
		}
		lang := d.DetectLanguageOf(strings.Join(args, " "))
		if lang == language.Unknown {
			fmt.Fprintln(cmd.OutOrStdout(), "unknown")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), lang.IsoCode639_1())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
