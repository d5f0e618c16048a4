package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/display-labs/displayctl/internal/theme"
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeCSSCmd)
	themeCmd.AddCommand(themePathCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect the resolved Omarchy theme",
}

var themeCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the generated stylesheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(theme.LoadAndGenerate())
		return nil
	},
}

var themePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved theme file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := theme.ResolvePath()
		if path == "" {
			fmt.Println("(no theme file; using built-in palette)")
			return nil
		}
		fmt.Println(path)
		return nil
	},
}
