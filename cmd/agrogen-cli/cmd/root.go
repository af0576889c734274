// Package cmd holds the agrogen-cli commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "agrogen-cli",
		Short: "AgroGen developer tools",
		Long: `agrogen-cli inspects the AgroGen login experience without a browser.

Available commands:
  routes     List the HTTP routes the server registers
  leaves     Simulate the falling-leaf field and print its frames
  focus      Show the leaf icon pose for a set of focused fields
  version    Print the CLI version

Use "agrogen-cli [command] --help" for more information about a command.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newVersionCmd(),
		newRoutesCmd(),
		newLeavesCmd(),
		newFocusCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// printer formats numbers with English grouping.
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}
