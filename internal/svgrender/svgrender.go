// Package svgrender renders an OptimizationResult to SVG markup, one <svg>
// document per panel, so a layout can be previewed without any native
// graphics dependency.
package svgrender

import (
	"fmt"
	"strings"

	"github.com/panelcut/optimizer/internal/model"
)

// Options controls rendering scale and appearance.
type Options struct {
	Scale           float64 // pixels per input unit; defaults to 1 if <= 0
	PanelFill       string
	PlacementFill   string
	UnusedAreaFill  string
	StrokeColor     string
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.PanelFill == "" {
		o.PanelFill = "#f5f5f0"
	}
	if o.PlacementFill == "" {
		o.PlacementFill = "#7aa6c2"
	}
	if o.UnusedAreaFill == "" {
		o.UnusedAreaFill = "#e8e4d8"
	}
	if o.StrokeColor == "" {
		o.StrokeColor = "#333333"
	}
	return o
}

// Render produces one SVG document per layout, in layout order.
func Render(result model.OptimizationResult, opts Options) []string {
	opts = opts.withDefaults()
	docs := make([]string, len(result.Layouts))
	for i, layout := range result.Layouts {
		docs[i] = renderLayout(layout, opts)
	}
	return docs
}

func renderLayout(layout model.PanelLayout, opts Options) string {
	var b strings.Builder

	w := layout.Width * opts.Scale
	h := layout.Height * opts.Scale

	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.2f\" height=\"%.2f\" viewBox=\"0 0 %.2f %.2f\">\n", w, h, w, h)
	fmt.Fprintf(&b, "  <!-- %s panel #%d -->\n", layout.PanelTypeID, layout.PanelNumber)
	fmt.Fprintf(&b, "  <rect x=\"0\" y=\"0\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\" stroke=\"%s\" />\n",
		w, h, opts.PanelFill, opts.StrokeColor)

	for _, u := range layout.UnusedAreas {
		writeRect(&b, u.X, u.Y, u.Width, u.Height, opts.Scale, opts.UnusedAreaFill, opts.StrokeColor, "")
	}
	for _, p := range layout.Placements {
		writeRect(&b, p.X, p.Y, p.Width, p.Height, opts.Scale, opts.PlacementFill, opts.StrokeColor, p.ItemID)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func writeRect(b *strings.Builder, x, y, w, h, scale float64, fill, stroke, label string) {
	fmt.Fprintf(b, "  <rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\" stroke=\"%s\" />\n",
		x*scale, y*scale, w*scale, h*scale, fill, stroke)
	if label == "" {
		return
	}
	cx := (x + w/2) * scale
	cy := (y + h/2) * scale
	fmt.Fprintf(b, "  <text x=\"%.2f\" y=\"%.2f\" font-size=\"10\" text-anchor=\"middle\" dominant-baseline=\"middle\">%s</text>\n",
		cx, cy, escapeText(label))
}

func escapeText(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}
