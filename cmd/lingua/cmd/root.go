// Package cmd implements the lingua CLI's commands, grounded on
// MeKo-Christian-pogo's cmd/ocr/cmd/root.go cobra+viper wiring
// (SPEC_FULL.md §10.2).
package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "Detect the natural language of a text fragment",
	Long: `lingua identifies the natural language of arbitrary text using a
combination of script/character rules and statistical n-gram models.

Examples:
  lingua detect --languages en,de,fr "languages are awesome"
  lingua confidence --languages en,de,fr "languages are awesome"`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); defaults to none")
	rootCmd.PersistentFlags().String("languages", "", "comma-separated ISO 639-1 codes to detect among (required)")
	rootCmd.PersistentFlags().Float64("min-distance", 0.0, "minimum relative distance, in [0.0, 0.99)")
	rootCmd.PersistentFlags().Bool("low-accuracy", false, "restrict statistical scoring to trigrams only")
	rootCmd.PersistentFlags().Bool("preload", false, "preload every language model at startup")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("languages", rootCmd.PersistentFlags().Lookup("languages"))
	_ = viper.BindPFlag("min_distance", rootCmd.PersistentFlags().Lookup("min-distance"))
	_ = viper.BindPFlag("low_accuracy", rootCmd.PersistentFlags().Lookup("low-accuracy"))
	_ = viper.BindPFlag("preload", rootCmd.PersistentFlags().Lookup("preload"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			logrus.WithError(err).WithField("config", cfgFile).Fatal("lingua: reading config file failed")
		}
	}
	viper.SetEnvPrefix("lingua")
	viper.AutomaticEnv()
}

// languagesFromFlag splits the --languages flag into ISO 639-1 codes,
// trimming whitespace and discarding empty entries.
func languagesFromFlag(raw string) []string {
	var codes []string
	for _, code := range strings.Split(raw, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
