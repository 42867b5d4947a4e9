package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gointersect/internal/config"
)

var showExample bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings in effect after loading --config, in the same format the
file is read in. With --example the built-in defaults are printed instead,
which is a good starting point for a new settings file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showExample {
			fmt.Fprint(cmd.OutOrStdout(), config.Example)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), config.Format(cfg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&showExample, "example", false, "print the defaults instead")
}
