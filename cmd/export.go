package cmd

import (
	"fmt"
	"os"

	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/sevenacademy/leaflab/internal/roster"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the class roster as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			defer f.Close()
			out = f
		}

		return roster.WriteCSV(out, cat.Roster())
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Write CSV to a file instead of stdout")
}
