package cmd

import (
	"fmt"

	"github.com/sevenacademy/leaflab/internal/app"
	"github.com/sevenacademy/leaflab/internal/catalog"
	"github.com/spf13/cobra"
)

// runApp loads the embedded catalog, resolves flags, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	cfg, err := resolveConfig(cmd, cat)
	if err != nil {
		return err
	}

	return app.Run(app.Options{Catalog: cat, Config: cfg})
}
