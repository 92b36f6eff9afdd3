package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appcypher/raccoon/cmd/raccoon/app"
)

// Version information (set at build time via -ldflags)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raccoon",
	Short: "Tooling for the Raccoon language's tokenizer",
	Long: `raccoon is the command-line entry point for the Raccoon lexer module.
It does not parse or run Raccoon programs; it exists to inspect what the
tokenizer produces from a source file.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.ShowVersion(version, commit, date)
	},
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Print every token produced for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Tokenize(args[0])
	},
}

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-tokenize a file on every write and print the new tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Watch(args[0], watchDebounce)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the .raccoon.yml configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .raccoon.yml to the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.InitConfig()
	},
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce interval in milliseconds (0 uses .raccoon.yml or the built-in default)")

	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}
