package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"

	"github.com/philipparndt/gointersect/internal/config"
	"github.com/philipparndt/gointersect/version"
)

var (
	configPath string
	logLevel   string
	noColor    bool

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gointersect",
	Short: "Interactive circle and line segment intersection",
	Long: `GoIntersect lets you draw a circle and a line segment with the mouse and
shows where they intersect. Sessions can also be replayed from scripts and
rendered to PNG without opening a window.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runView,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (gcfg format)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides the settings file)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setup loads the settings and creates the logger shared by all commands
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}

	level, err := loaded.LogLevel()
	if err != nil {
		return err
	}

	cfg = loaded
	logger = newLogger(cmd.ErrOrStderr(), level)
	logger.Debug("settings loaded", "path", configPath, "backend", cfg.Window.Backend)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// colored wraps s in a terminal color unless --no-color is set
func colored(c chalk.Color, s string) string {
	if noColor {
		return s
	}
	return c.Color(s)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colored(chalk.Red, "Error: "+err.Error()))
		os.Exit(1)
	}
}
