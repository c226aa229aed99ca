package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version, also reported by --version on the root command.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("factseek v%s\n", version)
	},
}
