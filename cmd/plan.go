package cmd

import (
	"fmt"
	"time"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/mastery"
	"github.com/sevenacademy/leaflab/internal/planner"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the spaced-review plan without launching the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		intensityFlag, _ := cmd.Flags().GetString("intensity")
		intensity, ok := planner.ParseIntensity(intensityFlag)
		if !ok {
			return fmt.Errorf("unknown intensity %q", intensityFlag)
		}

		m := mastery.Map{}
		if seedID, _ := cmd.Flags().GetString("seed"); seedID != "" {
			seed, ok := cat.SeedByID(seedID)
			if !ok {
				return fmt.Errorf("unknown seed %q", seedID)
			}
			for id, v := range seed.OverrideMastery {
				m = mastery.Set(m, id, v)
			}
		}

		entries := planner.Rebuild(m, intensity, time.Now(), cat.Rules())
		if len(entries) == 0 {
			fmt.Println("No review entries in the next", planner.HorizonDays, "days.")
			return nil
		}

		for _, e := range entries {
			name := e.ConceptID
			if c, ok := cat.ConceptByID(e.ConceptID); ok {
				name = c.Name
			}
			fmt.Printf("%s  %-28s %s\n", e.ISODate(), name, e.Reason)
		}
		return nil
	},
}
