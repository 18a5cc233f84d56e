package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

// envPrefix prefixes environment overrides, e.g. BIGO_SEED or BIGO_REPEAT.
const envPrefix = "BIGO"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "bigo",
	Short:   "Compare algorithm variants of different complexity classes",
	Version: version,
	Long: `bigo times interchangeable algorithm variants against one seeded
workload, verifies that their outputs agree and reports how much faster
each variant is than the first.

  bigo list
  bigo run -w sortable-sequence --size 5000 --variants bubble-sort,quick-sort
  bigo suite -c suite.yaml --html report.html`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command and prints any error to stderr.
// This is called by main.Main().
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log workload generation and per-variant progress")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no-color", RootCmd.PersistentFlags().Lookup("no-color"))

	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(suiteCmd)
	RootCmd.AddCommand(listCmd)
}

// initConfig lets BIGO_* environment variables stand in for flags.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// newLogger returns a text logger on w at Info, or Debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
