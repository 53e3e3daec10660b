// Package scorer implements the placement scoring function shared by the
// BFD packer, the panel-reduction pass, and the optional-item backfill pass
// (§4.2). Lower scores are better.
package scorer

import "github.com/panelcut/optimizer/internal/geometry"

// Mode selects which objective's blending formula to use.
type Mode int

const (
	// Default is the bottom-left-fill objective.
	Default Mode = iota
	// ReusableRemnant biases toward leaving large, regular leftover rectangles.
	ReusableRemnant
	// MinInitialUsage biases toward fully consuming early panels before
	// using later ones.
	MinInitialUsage
)

const contactEps = 1.0

// Candidate is a placement under consideration: an item of (w, h) placed at
// the origin of free rectangle Free.
type Candidate struct {
	Free   geometry.Rect
	X, Y   float64
	W, H   float64
	Panel  geometry.Rect // the panel's usable area (trimming applied), for contact against its boundary
	Kerf   float64
}

// Score evaluates a Candidate against the existing placements on its panel
// (already kerf-expanded by the caller, as used for splitting) under the
// given objective Mode. Lower is better.
func Score(c Candidate, existing []geometry.Rect, mode Mode) float64 {
	position := positionScore(c, mode)
	fit := fitRatio(c)
	sliver := sliverPenalty(c)
	contact := contactScore(c, existing)

	switch mode {
	case ReusableRemnant:
		return position - 50*contact + 2*sliver
	case MinInitialUsage:
		return position + 10000*fit - 500*contact + sliver + heightFitBonus(c) + widthFitBonus(c)
	default:
		return position - 200*contact + sliver
	}
}

func positionScore(c Candidate, mode Mode) float64 {
	if mode == MinInitialUsage {
		return c.Y*100 + 0.1*c.X
	}
	return c.Y*10000 + c.X
}

func fitRatio(c Candidate) float64 {
	leftoverW := c.Free.W - c.W - c.Kerf
	leftoverH := c.Free.H - c.H - c.Kerf
	if leftoverW < 0 {
		leftoverW = 0
	}
	if leftoverH < 0 {
		leftoverH = 0
	}
	denom := c.Free.W * c.Free.H
	if denom < 1 {
		denom = 1
	}
	return (leftoverW * leftoverH) / denom
}

func sliverPenalty(c Candidate) float64 {
	var penalty float64
	for _, leftover := range []float64{c.Free.W - c.W - c.Kerf, c.Free.H - c.H - c.Kerf} {
		if leftover > 0 && leftover < 50 {
			penalty += (50 - leftover) * 10
		}
	}
	return penalty
}

// contactScore sums, for each edge of the candidate placement, the overlap
// length with either the panel's trimming boundary or the kerf-expanded
// edge of an existing placement, within contactEps. Higher is better (it is
// negated by the caller's blending formula).
func contactScore(c Candidate, existing []geometry.Rect) float64 {
	placed := geometry.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
	var contact float64

	// Contact against the panel's usable-area boundary.
	contact += edgeContactWithBoundary(placed, c.Panel)

	// Contact against existing (kerf-expanded) placements.
	for _, ex := range existing {
		contact += edgeContactWithNeighbor(placed, ex)
	}
	return contact
}

func edgeContactWithBoundary(placed, panel geometry.Rect) float64 {
	var contact float64
	if within(placed.X, panel.X) {
		contact += overlapLen(placed.Y, placed.Top(), panel.Y, panel.Top())
	}
	if within(placed.Y, panel.Y) {
		contact += overlapLen(placed.X, placed.Right(), panel.X, panel.Right())
	}
	if within(placed.Right(), panel.Right()) {
		contact += overlapLen(placed.Y, placed.Top(), panel.Y, panel.Top())
	}
	if within(placed.Top(), panel.Top()) {
		contact += overlapLen(placed.X, placed.Right(), panel.X, panel.Right())
	}
	return contact
}

func edgeContactWithNeighbor(placed, neighbor geometry.Rect) float64 {
	var contact float64
	// Left edge of placed touches right edge of neighbor (or vice versa).
	if within(placed.X, neighbor.Right()) || within(placed.Right(), neighbor.X) {
		contact += overlapLen(placed.Y, placed.Top(), neighbor.Y, neighbor.Top())
	}
	// Bottom edge of placed touches top edge of neighbor (or vice versa).
	if within(placed.Y, neighbor.Top()) || within(placed.Top(), neighbor.Y) {
		contact += overlapLen(placed.X, placed.Right(), neighbor.X, neighbor.Right())
	}
	return contact
}

func within(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= contactEps
}

func overlapLen(aLo, aHi, bLo, bHi float64) float64 {
	lo := aLo
	if bLo > lo {
		lo = bLo
	}
	hi := aHi
	if bHi < hi {
		hi = bHi
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// heightFitBonus and widthFitBonus apply only under MinInitialUsage: they
// push the packer to "finish" a strip instead of leaving a medium gap.
func heightFitBonus(c Candidate) float64 {
	leftover := c.Free.H - c.H - c.Kerf
	return stripBonus(leftover, -50000, -20000)
}

func widthFitBonus(c Candidate) float64 {
	leftover := c.Free.W - c.W - c.Kerf
	return stripBonus(leftover, -30000, -10000)
}

func stripBonus(leftover, tightBonus, looseBonus float64) float64 {
	if leftover < 0 {
		return 0
	}
	if leftover <= 10 {
		return tightBonus
	}
	if leftover > 0 && leftover < 100 {
		return looseBonus
	}
	return 0
}
