package occlusion

// Item is a visible fragment of a rectangle after occlusion culling.
// A single added rectangle may yield several items sharing the same key.
type Item struct {
	Rect Rect
	Key  uint64
}

// FrontToBackBuilder applies occlusion culling to rectangles provided in
// front-to-back order.
//
// It is faster than [BackToFrontBuilder] because the front-to-back order
// lets it cull each rectangle as it arrives, without buffering.
//
// A builder is not safe for concurrent use; each instance belongs to a
// single goroutine.
type FrontToBackBuilder struct {
	opaque []Item
	alpha  []Item

	// frags is the per-Add working set of visible fragments, kept on the
	// builder so its capacity is reused across calls.
	frags []Rect
}

// New creates an empty FrontToBackBuilder.
func New() *FrontToBackBuilder {
	return &FrontToBackBuilder{}
}

// NewWithCapacity creates an empty FrontToBackBuilder with pre-allocated
// room for the given number of opaque and alpha items.
func NewWithCapacity(opaque, alpha int) *FrontToBackBuilder {
	return &FrontToBackBuilder{
		opaque: make([]Item, 0, opaque),
		alpha:  make([]Item, 0, alpha),
	}
}

// Add adds a rectangle, splitting it against the opaque rectangles added
// before it and discarding the occluded parts. The surviving fragments are
// recorded under key in the opaque or alpha list according to isOpaque.
//
// Add returns true if the rectangle is at least partially visible.
//
// The rectangle must be normalized (Min <= Max). An empty rectangle is
// never visible and produces no fragments.
func (b *FrontToBackBuilder) Add(rect Rect, isOpaque bool, key uint64) bool {
	frags := b.cull(rect)

	list := &b.alpha
	if isOpaque {
		list = &b.opaque
	}
	for _, r := range frags {
		*list = append(*list, Item{Rect: r, Key: key})
	}

	return len(frags) > 0
}

// Test returns true if the rectangle would be at least partially visible,
// without adding it. Given the same builder state, Test(rect) returns
// exactly what Add(rect, ...) would.
func (b *FrontToBackBuilder) Test(rect Rect) bool {
	return len(b.cull(rect)) > 0
}

// cull computes the visible fragments of rect against the current opaque
// set. The returned slice aliases b.frags and is only valid until the next
// cull call.
func (b *FrontToBackBuilder) cull(rect Rect) []Rect {
	if rect.IsEmpty() {
		return nil
	}

	frags := append(b.frags[:0], rect)
	for i := range b.opaque {
		if len(frags) == 0 {
			break
		}
		if b.opaque[i].Rect.Intersects(rect) {
			frags = applyOccluder(b.opaque[i].Rect, frags)
		}
	}
	b.frags = frags
	return frags
}

// OpaqueItems returns the visible opaque fragments in insertion order.
// None of the rectangles overlap, so they may be rendered in any order.
//
// The returned slice is a view into the builder and must not be modified;
// it is valid until the next Add or Clear call.
func (b *FrontToBackBuilder) OpaqueItems() []Item {
	return b.opaque
}

// AlphaItems returns the visible non-opaque fragments in insertion order,
// which is front-to-back. The fragments never overlap any opaque fragment,
// but may overlap each other, so correct alpha compositing requires
// back-to-front render order: reverse this list before rendering, or use
// [BackToFrontBuilder] which does so itself.
//
// The returned slice is a view into the builder and must not be modified;
// it is valid until the next Add or Clear call.
func (b *FrontToBackBuilder) AlphaItems() []Item {
	return b.alpha
}

// Clear resets the builder to its initial state, preserving allocated
// capacity.
func (b *FrontToBackBuilder) Clear() {
	b.opaque = b.opaque[:0]
	b.alpha = b.alpha[:0]
}
