// Package cmd implements the keylegend command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ninicksicard/keylegend/pkg/theme"
)

var themePath string

var rootCmd = &cobra.Command{
	Use:   "keylegend",
	Short: "Batch-emboss or engrave text legends onto solid blanks",
	Long: `keylegend picks a face of a blank solid, places text legends on it
and fuses or cuts them, producing one STL mesh per row of a keyboard
layout table.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", "theme file with stored parameters")
}

// loadTheme returns the stored theme when --theme is set, otherwise the
// documented defaults.
func loadTheme() (theme.Theme, error) {
	if themePath == "" {
		return theme.Default(), nil
	}
	return theme.Load(themePath)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
