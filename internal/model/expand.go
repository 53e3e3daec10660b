package model

import "fmt"

// ExpandedItem is a single physical copy of an Item after quantity expansion.
// IDs are suffixed (_1, _2, ...) only when the original quantity was > 1, so
// a quantity-1 item keeps its original id unchanged.
type ExpandedItem struct {
	ID        string
	OriginID  string // the Item.ID this copy was expanded from
	Width     float64
	Height    float64
	CanRotate bool
}

// Area returns the expanded item's unit area.
func (e ExpandedItem) Area() float64 { return e.Width * e.Height }

// ExpandItems turns a list of Items (with Quantity >= 1) into one ExpandedItem
// per physical copy.
func ExpandItems(items []Item) []ExpandedItem {
	var out []ExpandedItem
	for _, it := range items {
		if it.Quantity <= 1 {
			out = append(out, ExpandedItem{
				ID:        it.ID,
				OriginID:  it.ID,
				Width:     it.Width,
				Height:    it.Height,
				CanRotate: it.CanRotate,
			})
			continue
		}
		for i := 1; i <= it.Quantity; i++ {
			out = append(out, ExpandedItem{
				ID:        fmt.Sprintf("%s_%d", it.ID, i),
				OriginID:  it.ID,
				Width:     it.Width,
				Height:    it.Height,
				CanRotate: it.CanRotate,
			})
		}
	}
	return out
}

// ExpandOptionalItems mirrors ExpandItems for the optional-item pool used by
// backfill (§4.6); unlike required items, optional copies keep the bare
// OptionalItem.ID repeated (the engine may place the same id multiple times,
// see Open Questions in SPEC_FULL.md §9), since they are drawn from the pool
// one at a time rather than placed en masse.
func ExpandOptionalItems(items []OptionalItem) []ExpandedItem {
	var out []ExpandedItem
	for _, oi := range items {
		qty := oi.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			out = append(out, ExpandedItem{
				ID:        oi.ID,
				OriginID:  oi.ID,
				Width:     oi.Width,
				Height:    oi.Height,
				CanRotate: oi.CanRotate,
			})
		}
	}
	return out
}

// CanRotateByOrigin builds a lookup from an expanded item's own id back to
// its can_rotate flag, used by the panel-reduction pass (§4.5) when it must
// reconstruct Item-like records from existing Placements.
func CanRotateByOrigin(expanded []ExpandedItem) map[string]bool {
	m := make(map[string]bool, len(expanded))
	for _, e := range expanded {
		m[e.ID] = e.CanRotate
	}
	return m
}
