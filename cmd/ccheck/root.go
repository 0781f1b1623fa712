package main

import (
	"github.com/spf13/cobra"
)

var (
	flagFix      bool
	flagTest     bool
	flagDumpAST  bool
	flagDumpToks bool
	flagFormat   string
	flagColor    string
	flagConfig   string
	flagHidden   bool
	flagMaxSize  int64
)

var rootCmd = &cobra.Command{
	Use:   "ccheck [flags] PATH ...",
	Short: "ccheck - C99 style checker and fixer",
	Long: `Ccheck verifies the layout of C99 source files: indentation, spacing
around punctuation, line breaks, trailing whitespace and line length.
With --fix it rewrites each file in place, preserving the original as
<path>.orig, changing nothing but whitespace.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&flagFix, "fix", false, "Repair style violations in place")
	rootCmd.Flags().BoolVar(&flagTest, "test", false, "Run the internal self-test and exit")
	rootCmd.Flags().BoolVar(&flagDumpAST, "dump-ast", false, "Dump the syntax tree of PATH")
	rootCmd.Flags().BoolVar(&flagDumpToks, "dump-toks", false, "Dump the token stream of PATH")
	rootCmd.Flags().StringVar(&flagFormat, "format", "human", "Output format: human, json, sarif")
	rootCmd.Flags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to style configuration file")
	rootCmd.Flags().BoolVar(&flagHidden, "include-hidden", false, "Include hidden files and directories")
	rootCmd.Flags().Int64Var(&flagMaxSize, "max-file-size", 10*1024*1024, "Maximum size of files found in directory walks (bytes)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
