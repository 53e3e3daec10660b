package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panelcut/optimizer/internal/config"
	"github.com/panelcut/optimizer/internal/model"
)

func newEstimateCommand() *cobra.Command {
	var input string
	var panelWidth, panelHeight, price, waste float64

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Run the purchasing estimator over a request document's items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" || panelWidth <= 0 || panelHeight <= 0 {
				return fmt.Errorf("--input, --panel-width and --panel-height are required")
			}

			req, err := config.DecodeRequestFile(input)
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}

			est := model.EstimatePurchase(req.Items, panelWidth, panelHeight, req.CutWidth, waste, price)
			data, err := json.MarshalIndent(est, "", "  ")
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "request document (JSON or YAML)")
	cmd.Flags().Float64Var(&panelWidth, "panel-width", 0, "candidate panel width")
	cmd.Flags().Float64Var(&panelHeight, "panel-height", 0, "candidate panel height")
	cmd.Flags().Float64Var(&price, "price", 0, "price per panel")
	cmd.Flags().Float64Var(&waste, "waste", 10, "waste-safety percentage")

	return cmd
}
