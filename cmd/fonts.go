package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninicksicard/keylegend/pkg/fonts"
)

var fontsIncludeVariable bool

var fontsCmd = &cobra.Command{
	Use:   "fonts [dir...]",
	Short: "List usable font files in the given (or default) directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs := args
		if len(dirs) == 0 {
			dirs = fonts.DefaultDirectories()
		}
		found := fonts.Scan(dirs, fontsIncludeVariable)
		if len(found) == 0 {
			return fmt.Errorf("no .ttf/.otf fonts found")
		}
		for _, path := range found {
			fmt.Printf("%-40s %s\n", fonts.DisplayName(path), path)
		}
		return nil
	},
}

func init() {
	fontsCmd.Flags().BoolVar(&fontsIncludeVariable, "include-variable", false, "include variable fonts")
	rootCmd.AddCommand(fontsCmd)
}
