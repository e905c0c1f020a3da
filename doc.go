// Package occlusion provides occlusion culling for axis-aligned rectangles.
//
// # Overview
//
// Given a set of rectangles in draw order, the package computes which parts
// of each rectangle are actually visible, splitting partially hidden
// rectangles into visible sub-rectangles and discarding fully hidden ones.
// The result is two lists:
//
//   - The opaque list, rendered first. None of its rectangles overlap, so
//     render order within the opaque pass does not matter.
//   - The alpha (non-opaque) list, rendered back-to-front after the opaque
//     pass.
//
// The output has minimal overdraw: none at all for opaque items and as
// little as possible for alpha ones.
//
// # Quick Start
//
//	b := occlusion.New()
//
//	// Rectangles are added in front-to-back order.
//	b.Add(occlusion.NewRect(occlusion.Pt(0, 0), occlusion.Pt(100, 100)), true, 0)
//	b.Add(occlusion.NewRect(occlusion.Pt(50, 50), occlusion.Pt(150, 150)), false, 1)
//
//	for _, item := range b.OpaqueItems() {
//	    // draw item.Rect ...
//	}
//
// # Algorithm
//
// The culling works in front-to-back order, accumulating rectangles into the
// opaque and alpha lists. Each added rectangle is tested against the opaque
// rectangles accumulated so far and split into visible sub-rectangles, or
// discarded entirely. The front-to-back order guarantees that a rectangle
// never has to be revisited once it has been added.
//
// Partially visible rectangles are split into up to four visible
// sub-rectangles per intersecting occluder:
//
//	+----------------------+       +----------------------+
//	| rectangle            |       |                      |
//	|                      |       |                      |
//	|  +-----------+       |       |--+-----------+-------|
//	|  |occluder   |       |  -->  |  |\\\\\\\\\\\|       |
//	|  +-----------+       |       |--+-----------+-------|
//	|                      |       |                      |
//	+----------------------+       +----------------------+
//
// The splitting favors long horizontal bands over nine-patch corner pieces.
// Fewer output rectangles keep the algorithm fast, but the bands assume the
// output is consumed axis-aligned: drawing them under a rotated transform
// can produce seams.
//
// Scenes supplied in back-to-front order (the usual painter's-algorithm
// order) go through [BackToFrontBuilder], which buffers the rectangles and
// replays them in reverse into a [FrontToBackBuilder].
//
// # Performance
//
// The cost of adding a rectangle grows with the number of opaque rectangles
// accumulated so far, since each new rectangle is tested against all of
// them. The package is intended for scenes with a modest number of opaque
// items; a spatial acceleration structure for the opaque set would be needed
// to scale to large occluder counts.
//
// Opaque rectangles may also be added as non-opaque. This opens a trade-off
// between overdraw and rectangle count: small opaque rectangles near the
// front of the scene can be added as non-opaque to avoid causing many splits
// at the cost of a little overdraw.
package occlusion
