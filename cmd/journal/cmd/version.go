package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the journal CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("journal version %s\n", version)
		fmt.Println("A personal trade journal and analytics tool")
		fmt.Println("https://github.com/rustyeddy/journal")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
