package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/panelcut/optimizer/internal/model"
)

// XLSX renders result as a cut-list workbook: a Summary sheet followed by one
// sheet per panel type listing every placement.
func XLSX(path string, result model.OptimizationResult) error {
	if len(result.Layouts) == 0 {
		return fmt.Errorf("no layouts to export")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("export xlsx: build header style: %w", err)
	}

	if err := writeSummarySheet(f, result, headerStyle); err != nil {
		return err
	}

	byType := groupByPanelType(result.Layouts)
	for _, panelTypeID := range panelTypeOrder(result.Layouts) {
		if err := writePanelTypeSheet(f, panelTypeID, byType[panelTypeID], headerStyle); err != nil {
			return err
		}
	}

	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex("Summary"); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.SaveAs(path)
}

func writeSummarySheet(f *excelize.File, result model.OptimizationResult, headerStyle int) error {
	sheet := "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export xlsx: create summary sheet: %w", err)
	}

	rows := [][2]string{
		{"Total Panels", fmt.Sprintf("%d", result.Summary.TotalPanels)},
		{"Used Area (mm^2)", fmt.Sprintf("%.0f", result.Summary.UsedArea)},
		{"Total Area (mm^2)", fmt.Sprintf("%.0f", result.Summary.TotalArea)},
		{"Waste Percentage", fmt.Sprintf("%.1f%%", result.Summary.WastePercentage)},
		{"Optional Items Used", fmt.Sprintf("%d", len(result.OptionalItemsUsed))},
	}
	if result.Summary.HasRemnantAccounting() {
		rows = append(rows,
			[2]string{"Reusable Remnant Area (mm^2)", fmt.Sprintf("%.0f", result.Summary.ReusableRemnantArea)},
			[2]string{"Effective Waste Percentage", fmt.Sprintf("%.1f%%", result.Summary.EffectiveWastePercentage())},
		)
	}

	f.SetCellValue(sheet, "A1", "Metric")
	f.SetCellValue(sheet, "B1", "Value")
	_ = f.SetCellStyle(sheet, "A1", "B1", headerStyle)

	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row[1])
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	return nil
}

func writePanelTypeSheet(f *excelize.File, panelTypeID string, layouts []model.PanelLayout, headerStyle int) error {
	sheet := sheetNameFor(panelTypeID)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export xlsx: create sheet for %q: %w", panelTypeID, err)
	}

	headers := []string{"Panel #", "Item ID", "X", "Y", "Width", "Height", "Rotated"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	startCell, _ := excelize.CoordinatesToCellName(1, 1)
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheet, startCell, endCell, headerStyle)

	row := 2
	for _, layout := range layouts {
		for _, p := range layout.Placements {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), layout.PanelNumber)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.ItemID)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.X)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Y)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Width)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.Height)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), p.Rotated)
			row++
		}
	}

	for _, col := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		_ = f.SetColWidth(sheet, col, col, 14)
	}
	return nil
}

// groupByPanelType buckets layouts by panel type, preserving panel-number order
// within each bucket (layouts are already renumbered sequentially per type).
func groupByPanelType(layouts []model.PanelLayout) map[string][]model.PanelLayout {
	byType := make(map[string][]model.PanelLayout)
	for _, l := range layouts {
		byType[l.PanelTypeID] = append(byType[l.PanelTypeID], l)
	}
	return byType
}

func panelTypeOrder(layouts []model.PanelLayout) []string {
	seen := make(map[string]bool)
	var order []string
	for _, l := range layouts {
		if !seen[l.PanelTypeID] {
			seen[l.PanelTypeID] = true
			order = append(order, l.PanelTypeID)
		}
	}
	return order
}

// sheetNameFor sanitizes a panel type ID into a valid, unique Excel sheet
// name: excelize rejects names over 31 characters or containing []:*?/\.
func sheetNameFor(panelTypeID string) string {
	sanitized := make([]rune, 0, len(panelTypeID))
	for _, r := range panelTypeID {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			sanitized = append(sanitized, '-')
		default:
			sanitized = append(sanitized, r)
		}
	}
	name := string(sanitized)
	if len(name) > 31 {
		name = name[:31]
	}
	if name == "" || name == "Summary" {
		name = "Panel-" + name
		if len(name) > 31 {
			name = name[:31]
		}
	}
	return name
}
