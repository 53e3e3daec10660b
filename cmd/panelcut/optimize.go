package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelcut/optimizer/internal/config"
	"github.com/panelcut/optimizer/internal/optimizer"
)

func newOptimizeCommand() *cobra.Command {
	var input, output, preset string

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Run the optimizer over a request document and write the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}

			req, err := config.DecodeRequestFile(input)
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}

			if preset != "" {
				p, ok, err := config.FindPreset(config.DefaultPresetsPath(), preset)
				if err != nil {
					return fmt.Errorf("load preset %q: %w", preset, err)
				}
				if !ok {
					return fmt.Errorf("no preset named %q", preset)
				}
				req.PanelTypes = append(req.PanelTypes, p.ToPanelType(preset))
				if req.CutWidth == 0 {
					req.CutWidth = p.CutWidth
				}
			}

			result, err := optimizer.Optimize(context.Background(), req)
			if err != nil {
				return err
			}

			return config.EncodeResultFile(output, result)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "request document (JSON or YAML)")
	cmd.Flags().StringVar(&output, "output", "", "result destination (default: stdout)")
	cmd.Flags().StringVar(&preset, "preset", "", "splice a named panel preset into the request")

	return cmd
}
