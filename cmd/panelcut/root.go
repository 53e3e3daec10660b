package main

import "github.com/spf13/cobra"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "panelcut",
		Short:         "Rectangular panel cutting-stock optimizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newOptimizeCommand())
	root.AddCommand(newGenerateCommand())
	root.AddCommand(newEstimateCommand())
	root.AddCommand(newPresetCommand())

	return root
}
