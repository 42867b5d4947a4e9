package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"

	"github.com/philipparndt/gointersect/pkg/analysis"
	"github.com/philipparndt/gointersect/pkg/interaction"
	"github.com/philipparndt/gointersect/pkg/render"
	"github.com/philipparndt/gointersect/pkg/script"
	"github.com/philipparndt/gointersect/pkg/viewer"
	"github.com/philipparndt/gointersect/pkg/watcher"
)

var (
	pngPath string
	watch   bool
	width   int
	height  int
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a recorded pointer session",
	Long: `Feed the pointer events of a script into a fresh session and print every
intersection result followed by the final status text.

Script lines are "surface <left> <top> <width> <height>", "down <x> <y>",
"move <x> <y>", "up <x> <y>" and "reset". Everything after # is a comment.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&pngPath, "png", "o", "", "also render the final state to this PNG file")
	replayCmd.Flags().BoolVarP(&watch, "watch", "w", false, "replay again whenever the script changes")
	replayCmd.Flags().IntVar(&width, "width", 0, "PNG width in pixels (defaults to the window width)")
	replayCmd.Flags().IntVar(&height, "height", 0, "PNG height in pixels (defaults to the window height)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	if err := replayOnce(out, path); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchScript(ctx, out, path)
}

func replayOnce(out io.Writer, path string) error {
	s, err := script.Parse(path)
	if err != nil {
		return err
	}

	session := newSession()
	results := s.Replay(session)
	logger.Info("script replayed", "script", s.Name, "events", s.EventCount(), "results", len(results))

	for i, r := range results {
		fmt.Fprintf(out, "%s %s\n", colored(chalk.Cyan, fmt.Sprintf("Result %d:", i+1)), analysis.FormatIntersections(r.Intersections))
	}

	state := session.Snapshot()
	fmt.Fprintln(out, colored(chalk.Yellow, fmt.Sprintf("Final state: %s", state.Mode)))
	if status := analysis.Status(state); status != "" {
		fmt.Fprintln(out, status)
	}

	if pngPath != "" {
		if err := writeSnapshot(pngPath, state); err != nil {
			return err
		}
		fmt.Fprintln(out, colored(chalk.Green, "Saved "+pngPath))
	}
	return nil
}

func watchScript(ctx context.Context, out io.Writer, path string) error {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	changed := make(chan struct{}, 1)
	if err := fw.Watch([]string{path}, func(string) {
		select {
		case changed <- struct{}{}:
		default:
		}
	}); err != nil {
		return err
	}
	go fw.Run(ctx)

	logger.Info("watching script", "path", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			fmt.Fprintln(out)
			if err := replayOnce(out, path); err != nil {
				// Keep watching; the next save may fix the script
				logger.Error("replay failed", "error", err)
			}
		}
	}
}

func newSession() *interaction.Session {
	return interaction.NewSession(
		interaction.WithTolerance(cfg.Solver.Tolerance),
		interaction.WithLogger(logger),
	)
}

func renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.CircleSegments = cfg.Render.CircleSegments
	opts.PointSize = cfg.Render.PointSize
	opts.LineWidth = cfg.Render.LineWidth
	opts.Axes = cfg.Render.Axes
	return opts
}

func writeSnapshot(path string, state interaction.State) error {
	w, h := width, height
	if w <= 0 {
		w = cfg.Window.Width
	}
	if h <= 0 {
		h = cfg.Window.Height
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := viewer.WritePNG(file, state, w, h, renderOptions()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
