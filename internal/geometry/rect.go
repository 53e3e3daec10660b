// Package geometry implements the free-rectangle ("maxrects") primitives
// shared by the packer, the optional-item backfill pass, and the output
// remnant extractor (§4.1, §9 "Shared geometry primitives"). All operations
// are value-in / value-out; there is no hidden state.
package geometry

// OverlapEps is the tolerance used when deciding whether two rectangles
// overlap or one contains another.
const OverlapEps = 0.5

// AdjacencyEps is the (looser) tolerance used when deciding whether two
// rectangles share a full edge for merging purposes.
const AdjacencyEps = 1.0

// Rect is an axis-aligned rectangle in panel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the rectangle's top (far) edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.W * r.H }

// Overlap reports whether a and b overlap by more than a sliver (strict
// interior intersection beyond OverlapEps on both axes).
func Overlap(a, b Rect) bool {
	return a.X < b.Right()-OverlapEps && a.Right() > b.X+OverlapEps &&
		a.Y < b.Top()-OverlapEps && a.Top() > b.Y+OverlapEps
}

// Contains reports whether outer fully contains inner, within eps.
func Contains(outer, inner Rect, eps float64) bool {
	return outer.X <= inner.X+eps && outer.Y <= inner.Y+eps &&
		outer.Right() >= inner.Right()-eps && outer.Top() >= inner.Top()-eps
}

// PruneContained removes any rectangle that is fully contained within
// another, and any rectangle whose width or height is <= OverlapEps.
func PruneContained(rects []Rect) []Rect {
	kept := make([]Rect, 0, len(rects))
	for _, r := range rects {
		if r.W <= OverlapEps || r.H <= OverlapEps {
			continue
		}
		kept = append(kept, r)
	}

	result := make([]Rect, 0, len(kept))
	for i, a := range kept {
		contained := false
		for j, b := range kept {
			if i == j {
				continue
			}
			if Contains(b, a, OverlapEps) {
				// When two rects are mutually containing (near-identical),
				// keep only the earlier one to avoid dropping both.
				if Contains(a, b, OverlapEps) && i < j {
					continue
				}
				contained = true
				break
			}
		}
		if !contained {
			result = append(result, a)
		}
	}
	return result
}

// SplitAround replaces every free rectangle overlapping placed with up to
// four residual strips (left, right, bottom, top) covering the parts of the
// original rectangle not consumed by placed, then prunes contained
// rectangles from the result (§4.1 "Split operation").
//
// placed is expected to already include any kerf expansion the caller wants
// reserved (the packer passes (p.x, p.y, pw+cut_width, ph+cut_width)).
func SplitAround(freeRects []Rect, placed Rect) []Rect {
	var out []Rect

	for _, r := range freeRects {
		if !Overlap(r, placed) {
			out = append(out, r)
			continue
		}

		// Left strip: the part of r left of placed, full height of r.
		if placed.X > r.X+OverlapEps {
			out = append(out, Rect{X: r.X, Y: r.Y, W: placed.X - r.X, H: r.H})
		}
		// Right strip: the part of r right of placed, full height of r.
		if placed.Right() < r.Right()-OverlapEps {
			out = append(out, Rect{X: placed.Right(), Y: r.Y, W: r.Right() - placed.Right(), H: r.H})
		}
		// Bottom strip: the part of r below placed, full width of r.
		if placed.Y > r.Y+OverlapEps {
			out = append(out, Rect{X: r.X, Y: r.Y, W: r.W, H: placed.Y - r.Y})
		}
		// Top strip: the part of r above placed, full width of r.
		if placed.Top() < r.Top()-OverlapEps {
			out = append(out, Rect{X: r.X, Y: placed.Top(), W: r.W, H: r.Top() - placed.Top()})
		}
	}

	return PruneContained(out)
}

// MergeAdjacent repeatedly finds a pair of rectangles sharing a full edge
// (matching x+width or y+height within AdjacencyEps, and aligned/equal on
// the perpendicular extent) and replaces them with their union, iterating to
// a fixpoint. Used only by the output remnant extractor (§4.7); the packer
// and backfill consume the unmerged superset cover directly.
func MergeAdjacent(rects []Rect) []Rect {
	cur := append([]Rect(nil), rects...)

	for {
		merged := false
		for i := 0; i < len(cur) && !merged; i++ {
			for j := i + 1; j < len(cur); j++ {
				if u, ok := mergeIfAdjacent(cur[i], cur[j]); ok {
					next := make([]Rect, 0, len(cur)-1)
					next = append(next, u)
					for k, r := range cur {
						if k != i && k != j {
							next = append(next, r)
						}
					}
					cur = next
					merged = true
					break
				}
			}
		}
		if !merged {
			break
		}
	}
	return cur
}

func mergeIfAdjacent(a, b Rect) (Rect, bool) {
	within := func(x, y float64) bool {
		d := x - y
		if d < 0 {
			d = -d
		}
		return d <= AdjacencyEps
	}

	// a's right edge touches b's left edge, same y-span -> merge side by side.
	if within(a.Right(), b.X) && within(a.Y, b.Y) && within(a.Top(), b.Top()) {
		return Rect{X: a.X, Y: a.Y, W: b.Right() - a.X, H: a.H}, true
	}
	if within(b.Right(), a.X) && within(a.Y, b.Y) && within(a.Top(), b.Top()) {
		return Rect{X: b.X, Y: b.Y, W: a.Right() - b.X, H: b.H}, true
	}
	// a's top edge touches b's bottom edge, same x-span -> merge stacked.
	if within(a.Top(), b.Y) && within(a.X, b.X) && within(a.Right(), b.Right()) {
		return Rect{X: a.X, Y: a.Y, W: a.W, H: b.Top() - a.Y}, true
	}
	if within(b.Top(), a.Y) && within(a.X, b.X) && within(a.Right(), b.Right()) {
		return Rect{X: b.X, Y: b.Y, W: b.W, H: a.Top() - b.Y}, true
	}
	return Rect{}, false
}
