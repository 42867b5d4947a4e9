package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gointersect/internal/app"
	"github.com/philipparndt/gointersect/internal/ebitenapp"
	"github.com/philipparndt/gointersect/internal/gui"
)

var backend string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive window",
	Long: `Open a window and draw with the mouse: press and drag to draw the circle,
then press and drag again to draw the line segment. The intersection points
appear when the segment is released. Press C to start over.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	rootCmd.Flags().StringVarP(&backend, "backend", "b", "", "window backend: raylib, ebiten or fyne (overrides the settings file)")
	viewCmd.Flags().StringVarP(&backend, "backend", "b", "", "window backend: raylib, ebiten or fyne (overrides the settings file)")
}

func runView(cmd *cobra.Command, args []string) error {
	if backend != "" {
		cfg.Window.Backend = backend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	switch cfg.Window.Backend {
	case "raylib":
		return app.Run(cfg, logger)
	case "ebiten":
		return ebitenapp.Run(cfg, logger)
	case "fyne":
		return gui.Run(cfg, logger)
	}
	return fmt.Errorf("unknown backend %q", cfg.Window.Backend)
}
