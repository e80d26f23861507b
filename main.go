package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsingjyujing/polyglot/cmd"
	"github.com/tsingjyujing/polyglot/utils"
)

var logger = utils.Logger

//go:embed version.txt
var version string

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Polyglot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(strings.TrimSpace(version))
	},
}

func main() {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "polyglot",
		Short: "Polyglot identifies the language of text",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				utils.SetVerbose()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	commands := []*cobra.Command{
		cmd.NewServerCommand(),
		cmd.NewMcpCommand(strings.TrimSpace(version)),
		versionCommand,
	}
	for _, command := range commands {
		rootCmd.AddCommand(command)
	}
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Fatal("Failed to execute command")
	}
}
