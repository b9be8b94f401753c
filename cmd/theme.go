package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ninicksicard/keylegend/pkg/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage stored parameter themes",
}

var themeInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a theme file populated with the documented defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite existing %s", path)
		}
		if err := theme.Default().Save(path); err != nil {
			return err
		}
		fmt.Println("wrote", path)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeInitCmd)
	rootCmd.AddCommand(themeCmd)
}
