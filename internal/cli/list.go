package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wesleyorama2/bigo/internal/bench/algorithms"
	"github.com/wesleyorama2/bigo/internal/bench/alloc"
	"github.com/wesleyorama2/bigo/internal/bench/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workload tags and their variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := algorithms.NewDefaultRegistry(alloc.NewTracker())
		if err != nil {
			return err
		}

		console := output.NewConsole(output.ConsoleConfig{
			Writer:  cmd.OutOrStdout(),
			NoColor: viper.GetBool("no-color"),
		})
		console.PrintList(registry)
		return nil
	},
}
