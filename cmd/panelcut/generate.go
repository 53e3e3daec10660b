package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panelcut/optimizer/internal/config"
	"github.com/panelcut/optimizer/internal/export"
	"github.com/panelcut/optimizer/internal/svgrender"
)

func newGenerateCommand() *cobra.Command {
	var input, output, format string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a previously computed result document to svg, pdf, or xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" || output == "" {
				return fmt.Errorf("--input and --output are required")
			}

			result, err := config.DecodeResultFile(input)
			if err != nil {
				return fmt.Errorf("read result: %w", err)
			}

			switch format {
			case "svg":
				docs := svgrender.Render(result, svgrender.Options{})
				return os.WriteFile(output, []byte(strings.Join(docs, "\n")), 0o644)
			case "pdf":
				return export.PDF(output, result)
			case "xlsx":
				return export.XLSX(output, result)
			default:
				return fmt.Errorf("unknown --format %q (want svg, pdf, or xlsx)", format)
			}
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "result document (JSON or YAML)")
	cmd.Flags().StringVar(&output, "output", "", "destination file")
	cmd.Flags().StringVar(&format, "format", "svg", "output format: svg, pdf, or xlsx")

	return cmd
}
