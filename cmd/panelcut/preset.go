package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panelcut/optimizer/internal/config"
	"github.com/panelcut/optimizer/internal/model"
)

func newPresetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage the on-disk panel-preset library",
	}

	cmd.AddCommand(newPresetAddCommand())
	cmd.AddCommand(newPresetListCommand())
	cmd.AddCommand(newPresetRemoveCommand())

	return cmd
}

func newPresetAddCommand() *cobra.Command {
	var name string
	var width, height, trimming, cutWidth float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a panel preset to the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || width <= 0 || height <= 0 {
				return fmt.Errorf("--name, --width and --height are required")
			}
			preset := model.NewPanelPreset(name, width, height, trimming, cutWidth)
			return config.AddPreset(config.DefaultPresetsPath(), preset)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "preset name")
	cmd.Flags().Float64Var(&width, "width", 0, "panel width")
	cmd.Flags().Float64Var(&height, "height", 0, "panel height")
	cmd.Flags().Float64Var(&trimming, "trimming", 0, "edge trim")
	cmd.Flags().Float64Var(&cutWidth, "cut-width", 0, "default kerf")

	return cmd
}

func newPresetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List panel presets in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := config.LoadPresets(config.DefaultPresetsPath())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(lib.Presets, "", "  ")
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		},
	}
}

func newPresetRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove a panel preset from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := config.RemovePreset(config.DefaultPresetsPath(), args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no preset named %q", args[0])
			}
			return nil
		},
	}
}
