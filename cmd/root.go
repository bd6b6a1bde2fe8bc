package cmd

import (
	"fmt"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/planner"
	"github.com/sevenacademy/leaflab/internal/screens/home"
	"github.com/sevenacademy/leaflab/internal/session"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leaflab",
	Short: "Deterministic photosynthesis tutor",
	Long:  "Leaflab — a terminal tutor that drills photosynthesis concepts with rule-based grading, adaptive item selection, and spaced review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("mode", "guided", "Session mode: guided or quiz")
	rootCmd.PersistentFlags().String("intensity", "standard", "Review intensity: light, standard, or intense")
	rootCmd.PersistentFlags().String("seed", "", "Scenario seed to start from (see catalog seeds)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig turns the persistent flags into a launch configuration.
// A seed's mode and intensity, when present, win over the flags.
func resolveConfig(cmd *cobra.Command, cat *catalog.Catalog) (home.Config, error) {
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, ok := session.ParseMode(modeFlag)
	if !ok {
		return home.Config{}, fmt.Errorf("unknown mode %q", modeFlag)
	}

	intensityFlag, _ := cmd.Flags().GetString("intensity")
	intensity, ok := planner.ParseIntensity(intensityFlag)
	if !ok {
		return home.Config{}, fmt.Errorf("unknown intensity %q", intensityFlag)
	}

	cfg := home.Config{Mode: mode, Intensity: intensity}

	if seedID, _ := cmd.Flags().GetString("seed"); seedID != "" {
		seed, ok := cat.SeedByID(seedID)
		if !ok {
			return home.Config{}, fmt.Errorf("unknown seed %q", seedID)
		}
		cfg.Seed = &seed
		if in, ok := planner.ParseIntensity(seed.Intensity); ok {
			cfg.Intensity = in
		}
	}
	return cfg, nil
}
