package occlusion

import "math"

// applyOccluder replaces every fragment in frags that intersects the
// occluder with its visible remainder: up to four bands around the occluded
// area. Fragments fully covered by the occluder are removed. Fragments that
// do not intersect the occluder are left untouched. The updated slice is
// returned.
//
// The remainder favors full-width top and bottom bands; the left and right
// bands are clipped vertically to the occluded y-span so the four bands
// partition the visible remainder exactly, with no overlap at the corners.
func applyOccluder(occluder Rect, frags []Rect) []Rect {
	// Iterate in reverse index order so that bands appended at the back are
	// never revisited, and so that swap-remove only moves already-appended
	// bands into visited slots.
	for i := len(frags) - 1; i >= 0; i-- {
		r := frags[i]
		if !r.Intersects(occluder) {
			continue
		}

		top := r.Min.Y < occluder.Min.Y && r.Max.Y > occluder.Min.Y
		bottom := r.Max.Y > occluder.Max.Y && r.Min.Y < occluder.Max.Y
		left := r.Min.X < occluder.Min.X && r.Max.X > occluder.Min.X
		right := r.Max.X > occluder.Max.X && r.Min.X < occluder.Max.X

		if top {
			frags = append(frags, Rect{
				Min: r.Min,
				Max: Pt(r.Max.X, occluder.Min.Y),
			})
		}
		if bottom {
			frags = append(frags, Rect{
				Min: Pt(r.Min.X, occluder.Max.Y),
				Max: r.Max,
			})
		}
		if left || right {
			minY := math.Max(r.Min.Y, occluder.Min.Y)
			maxY := math.Min(r.Max.Y, occluder.Max.Y)
			if left {
				frags = append(frags, Rect{
					Min: Pt(r.Min.X, minY),
					Max: Pt(occluder.Min.X, maxY),
				})
			}
			if right {
				frags = append(frags, Rect{
					Min: Pt(occluder.Max.X, minY),
					Max: Pt(r.Max.X, maxY),
				})
			}
		}

		// Swap-remove the original fragment: overwrite it with the last
		// element (one of the bands just appended, or the tail of the
		// original set) and shrink.
		last := len(frags) - 1
		frags[i] = frags[last]
		frags = frags[:last]
	}
	return frags
}
