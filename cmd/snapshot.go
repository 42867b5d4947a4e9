package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"

	"github.com/philipparndt/gointersect/pkg/script"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <script> -o <file.png>",
	Short: "Render the outcome of a script to PNG",
	Long:  "Replay a script without printing results and render the final frame, status text included, to a PNG file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVarP(&pngPath, "output", "o", "", "PNG file to write")
	snapshotCmd.Flags().IntVar(&width, "width", 0, "width in pixels (defaults to the window width)")
	snapshotCmd.Flags().IntVar(&height, "height", 0, "height in pixels (defaults to the window height)")
	_ = snapshotCmd.MarkFlagRequired("output")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, err := script.Parse(args[0])
	if err != nil {
		return err
	}

	session := newSession()
	s.Replay(session)

	if err := writeSnapshot(pngPath, session.Snapshot()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), colored(chalk.Green, "Saved "+pngPath))
	return nil
}
