// Package packer implements the Best-Fit-Decreasing packer (§4.3): given an
// already-ordered list of expanded items, place each one greedily against
// the layouts opened so far, opening new panels on demand.
package packer

import (
	"math"

	"github.com/panelcut/optimizer/internal/geometry"
	"github.com/panelcut/optimizer/internal/model"
	"github.com/panelcut/optimizer/internal/scorer"
)

// minInitialUsagePenalty is added per panel index under min_initial_usage so
// later panels are nearly disqualified while any earlier panel can still
// take the item.
const minInitialUsagePenalty = 1_000_000.0

// Options configures a single BFD pass.
type Options struct {
	PanelTypes      []model.PanelType
	CutWidth        float64
	Mode            scorer.Mode
	MinInitialUsage bool
}

// layout tracks one open panel's placements plus its live free-rectangle set.
type layout struct {
	panelTypeID string
	width       float64
	height      float64
	trimming    float64
	cutWidth    float64
	placements  []model.Placement
	free        []geometry.Rect
}

func (l *layout) panelRect() geometry.Rect {
	return geometry.Rect{X: l.trimming, Y: l.trimming, W: l.width - 2*l.trimming, H: l.height - 2*l.trimming}
}

// kerfExpanded returns every committed placement on this layout, expanded by
// the kerf, for use as the scorer's "existing" neighbor set.
func (l *layout) kerfExpanded(cutWidth float64) []geometry.Rect {
	out := make([]geometry.Rect, len(l.placements))
	for i, p := range l.placements {
		out[i] = geometry.Rect{X: p.X, Y: p.Y, W: p.Width + cutWidth, H: p.Height + cutWidth}
	}
	return out
}

// Pack places every expanded item in order, opening panels as needed, and
// returns the resulting layouts. Returns a *model.Error wrapping
// model.ErrCannotFitAll if some item fits on no panel type in any orientation.
func Pack(items []model.ExpandedItem, opts Options) ([]model.PanelLayout, error) {
	var layouts []*layout

	for _, item := range items {
		best, _, found := bestCandidate(layouts, item, opts)
		if found {
			commit(layouts[best.layoutIdx], item, best)
			continue
		}

		newLayout, placement, err := openPanelFor(item, opts, len(layouts))
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, newLayout)
		commit(newLayout, item, placement)
	}

	return toPanelLayouts(layouts), nil
}

// candidate describes a scored placement option.
type candidate struct {
	layoutIdx int
	freeIdx   int
	x, y      float64
	w, h      float64
	rotated   bool
}

func bestCandidate(layouts []*layout, item model.ExpandedItem, opts Options) (candidate, float64, bool) {
	var best candidate
	bestScore := math.Inf(1)
	found := false

	for li, l := range layouts {
		existing := l.kerfExpanded(opts.CutWidth)
		panelRect := l.panelRect()

		for fi, free := range l.free {
			for _, orient := range orientations(item) {
				if !fitsIn(free, orient.w, orient.h, opts.CutWidth) {
					continue
				}
				cand := scorer.Candidate{
					Free: free, X: free.X, Y: free.Y, W: orient.w, H: orient.h,
					Panel: panelRect, Kerf: opts.CutWidth,
				}
				score := scorer.Score(cand, existing, opts.Mode)
				if opts.MinInitialUsage {
					score += float64(li) * minInitialUsagePenalty
				}
				if score < bestScore {
					bestScore = score
					best = candidate{layoutIdx: li, freeIdx: fi, x: free.X, y: free.Y, w: orient.w, h: orient.h, rotated: orient.rotated}
					found = true
				}
			}
		}
	}
	return best, bestScore, found
}

type orientation struct {
	w, h    float64
	rotated bool
}

func orientations(item model.ExpandedItem) []orientation {
	orients := []orientation{{w: item.Width, h: item.Height, rotated: false}}
	if item.CanRotate && item.Width != item.Height {
		orients = append(orients, orientation{w: item.Height, h: item.Width, rotated: true})
	}
	return orients
}

func fitsIn(free geometry.Rect, w, h, cutWidth float64) bool {
	return free.W >= w+cutWidth-geometry.OverlapEps && free.H >= h+cutWidth-geometry.OverlapEps
}

func commit(l *layout, item model.ExpandedItem, c candidate) {
	l.placements = append(l.placements, model.Placement{
		ItemID: item.ID, X: c.x, Y: c.y, Width: c.w, Height: c.h, Rotated: c.rotated,
	})
	// The kerf is reserved on the trailing edges only: the expanded
	// placement used for splitting adds cut_width to w/h (§4.1).
	expanded := geometry.Rect{X: c.x, Y: c.y, W: c.w + l.cutWidth, H: c.h + l.cutWidth}
	l.free = geometry.SplitAround(l.free, expanded)
}

func toPanelLayouts(layouts []*layout) []model.PanelLayout {
	out := make([]model.PanelLayout, len(layouts))
	for i, l := range layouts {
		out[i] = model.PanelLayout{
			PanelTypeID: l.panelTypeID,
			PanelNumber: i + 1,
			Width:       l.width,
			Height:      l.height,
			Trimming:    l.trimming,
			Placements:  l.placements,
		}
	}
	return out
}

// openPanelFor implements §4.3.1: pick the panel type/orientation with the
// highest capacity for this item, tie-broken by lowest placement score.
func openPanelFor(item model.ExpandedItem, opts Options, panelIndex int) (*layout, candidate, error) {
	type option struct {
		pt         model.PanelType
		width      float64
		height     float64
		capacity   int
		score      float64
		x, y, w, h float64
		rotated    bool
	}

	var best *option

	for _, pt := range opts.PanelTypes {
		dims := [][2]float64{{pt.Width, pt.Height}}
		if pt.Width != pt.Height {
			dims = append(dims, [2]float64{pt.Height, pt.Width})
		}

		for _, d := range dims {
			width, height := d[0], d[1]
			usableW := width - 2*pt.Trimming
			usableH := height - 2*pt.Trimming
			panelRect := geometry.Rect{X: pt.Trimming, Y: pt.Trimming, W: usableW, H: usableH}

			for _, orient := range orientations(item) {
				if orient.w+opts.CutWidth > usableW+geometry.OverlapEps || orient.h+opts.CutWidth > usableH+geometry.OverlapEps {
					continue
				}
				cap := capacity(usableW, usableH, item, opts.CutWidth)
				cand := scorer.Candidate{
					Free: panelRect, X: panelRect.X, Y: panelRect.Y, W: orient.w, H: orient.h,
					Panel: panelRect, Kerf: opts.CutWidth,
				}
				score := scorer.Score(cand, nil, opts.Mode)

				opt := option{
					pt: pt, width: width, height: height, capacity: cap, score: score,
					x: panelRect.X, y: panelRect.Y, w: orient.w, h: orient.h, rotated: orient.rotated,
				}
				if best == nil || cap > best.capacity || (cap == best.capacity && score < best.score) {
					best = &opt
				}
			}
		}
	}

	if best == nil {
		return nil, candidate{}, model.NewCannotFitAll("item %q does not fit on any panel type in any orientation", item.ID)
	}

	l := &layout{
		panelTypeID: best.pt.ID,
		width:       best.width,
		height:      best.height,
		trimming:    best.pt.Trimming,
		free:        []geometry.Rect{{X: best.pt.Trimming, Y: best.pt.Trimming, W: best.width - 2*best.pt.Trimming, H: best.height - 2*best.pt.Trimming}},
		cutWidth:    opts.CutWidth,
	}
	c := candidate{layoutIdx: panelIndex, x: best.x, y: best.y, w: best.w, h: best.h, rotated: best.rotated}
	return l, c, nil
}

// capacity estimates how many copies of item fit on an empty usable area,
// taking the max over the item's two orientations.
func capacity(usableW, usableH float64, item model.ExpandedItem, cutWidth float64) int {
	best := capacityFor(usableW, usableH, item.Width, item.Height, cutWidth)
	if item.CanRotate && item.Width != item.Height {
		if rotated := capacityFor(usableW, usableH, item.Height, item.Width, cutWidth); rotated > best {
			best = rotated
		}
	}
	return best
}

func capacityFor(usableW, usableH, w, h, cutWidth float64) int {
	if w+cutWidth <= 0 || h+cutWidth <= 0 {
		return 0
	}
	cols := int(math.Floor((usableW + cutWidth) / (w + cutWidth)))
	rows := int(math.Floor((usableH + cutWidth) / (h + cutWidth)))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols * rows
}
