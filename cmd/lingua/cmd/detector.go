package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/polylang/lingua/builder"
	"github.com/polylang/lingua/detector"
)

// newDetectorFromFlags builds a detector.Detector from the persistent
// --languages/--min-distance/--low-accuracy/--preload flags, surfacing the
// two builder validation failures of spec.md §6 as a plain CLI error.
func newDetectorFromFlags(cmd *cobra.Command) (*detector.Detector, error) {
	codes := languagesFromFlag(viper.GetString("languages"))
	if len(codes) < 2 {
		return nil, fmt.Errorf("lingua: --languages must list at least 2 ISO 639-1 codes")
	}

	b := builder.FromIsoCodes639_1(codes...).
		WithMinimumRelativeDistance(viper.GetFloat64("min_distance"))

	if viper.GetBool("low_accuracy") {
		b = b.WithLowAccuracyMode()
	}
	if viper.GetBool("preload") {
		b = b.WithPreloadedLanguageModels()
	}

	return b.Build()
}
