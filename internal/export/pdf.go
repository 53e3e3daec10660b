// Package export renders an OptimizationResult to a printable PDF layout
// report: one page per panel with a to-scale cut diagram, followed by a
// summary page of overall statistics.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/panelcut/optimizer/internal/model"
)

type placementColor struct {
	R, G, B int
}

var placementColors = []placementColor{
	{R: 76, G: 175, B: 80},
	{R: 33, G: 150, B: 243},
	{R: 255, G: 152, B: 0},
	{R: 156, G: 39, B: 176},
	{R: 0, G: 188, B: 212},
	{R: 244, G: 67, B: 54},
	{R: 255, G: 235, B: 59},
	{R: 121, G: 85, B: 72},
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// PDF generates a layout report document at path: one page per panel plus a
// final summary page.
func PDF(path string, result model.OptimizationResult) error {
	if len(result.Layouts) == 0 {
		return fmt.Errorf("no layouts to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, layout := range result.Layouts {
		pdf.AddPage()
		renderPanelPage(pdf, layout, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

func renderPanelPage(pdf *fpdf.Fpdf, layout model.PanelLayout, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Panel %d: %s #%d (%.0f x %.0f mm)", pageNum, layout.PanelTypeID, layout.PanelNumber, layout.Width, layout.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	wastePct := 0.0
	if total := layout.TotalArea(); total > 0 {
		wastePct = 100 * (total - layout.UsedArea()) / total
	}
	stats := fmt.Sprintf("Placements: %d | Used area: %.0f mm^2 | Total area: %.0f mm^2 | Waste: %.1f%%",
		len(layout.Placements), layout.UsedArea(), layout.TotalArea(), wastePct)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 20.0

	scale := math.Min(drawWidth/layout.Width, drawHeight/layout.Height)
	canvasW := layout.Width * scale
	canvasH := layout.Height * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, p := range layout.Placements {
		col := placementColors[i%len(placementColors)]
		pw := p.Width * scale
		ph := p.Height * scale
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.ItemID
			dims := fmt.Sprintf("%.0fx%.0f", p.Width, p.Height)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, layout.Width, layout.Height, scale, offsetX, offsetY, canvasW, canvasH)
	drawPlacementLegend(pdf, layout, offsetY+canvasH+5)
}

func drawDimensionAnnotations(pdf *fpdf.Fpdf, width, height, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f mm", height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

func drawPlacementLegend(pdf *fpdf.Fpdf, layout model.PanelLayout, startY float64) {
	if len(layout.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Placements:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range layout.Placements {
		col := placementColors[i%len(placementColors)]
		label := fmt.Sprintf("%s (%.0fx%.0f)", p.ItemID, p.Width, p.Height)
		if p.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

func renderSummaryPage(pdf *fpdf.Fpdf, result model.OptimizationResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cut Optimization Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct{ label, value string }{
		{"Total Panels", fmt.Sprintf("%d", result.Summary.TotalPanels)},
		{"Waste Percentage", fmt.Sprintf("%.1f%%", result.Summary.WastePercentage)},
		{"Used Area", fmt.Sprintf("%.0f mm^2", result.Summary.UsedArea)},
		{"Optional Items Used", fmt.Sprintf("%d", len(result.OptionalItemsUsed))},
	}
	if result.Summary.HasRemnantAccounting() {
		summaryItems = append(summaryItems,
			struct{ label, value string }{"Reusable Remnant Area", fmt.Sprintf("%.0f mm^2", result.Summary.ReusableRemnantArea)},
			struct{ label, value string }{"Effective Waste", fmt.Sprintf("%.1f%%", result.Summary.EffectiveWastePercentage())},
		)
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Panel Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 40, 60, 35, 35, 60}
	headers := []string{"Panel", "Type", "Dimensions", "Placed", "Waste", "Used / Total Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, layout := range result.Layouts {
		xPos = marginLeft
		wastePct := 0.0
		if total := layout.TotalArea(); total > 0 {
			wastePct = 100 * (total - layout.UsedArea()) / total
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			layout.PanelTypeID,
			fmt.Sprintf("%.0f x %.0f mm", layout.Width, layout.Height),
			fmt.Sprintf("%d", len(layout.Placements)),
			fmt.Sprintf("%.1f%%", wastePct),
			fmt.Sprintf("%.0f / %.0f mm^2", layout.UsedArea(), layout.TotalArea()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by panelcut", "", 0, "C", false, 0, "")
}

func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
