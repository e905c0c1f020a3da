package occlusion

// command is a rectangle submission buffered until Build.
type command struct {
	rect     Rect
	isOpaque bool
	key      uint64
}

// BackToFrontBuilder applies occlusion culling to rectangles provided in
// back-to-front order, the usual painter's-algorithm order.
//
// It buffers the rectangles and, at Build time, replays them in reverse
// through an internal [FrontToBackBuilder], then reverses the alpha list so
// it comes out in true back-to-front render order. For maximum speed,
// submit front-to-back and use [FrontToBackBuilder] directly instead.
//
// A builder is not safe for concurrent use; each instance belongs to a
// single goroutine.
type BackToFrontBuilder struct {
	commands []command
	inner    FrontToBackBuilder
}

// NewBackToFront creates an empty BackToFrontBuilder.
func NewBackToFront() *BackToFrontBuilder {
	return &BackToFrontBuilder{}
}

// Add buffers a rectangle submitted in back-to-front order.
// Computation is deferred to Build.
func (b *BackToFrontBuilder) Add(rect Rect, isOpaque bool, key uint64) {
	b.commands = append(b.commands, command{rect: rect, isOpaque: isOpaque, key: key})
}

// Build applies occlusion culling to the rectangles provided by prior Add
// calls and consumes the pending buffer. The resulting item lists replace
// those of any previous Build; storage from previous builds is reused.
func (b *BackToFrontBuilder) Build() {
	b.inner.Clear()
	for i := len(b.commands) - 1; i >= 0; i-- {
		c := b.commands[i]
		b.inner.Add(c.rect, c.isOpaque, c.key)
	}

	// The opaque list stays as-is: its order does not matter for rendering.
	// The alpha list is reversed to restore back-to-front order.
	alpha := b.inner.alpha
	for i, j := 0, len(alpha)-1; i < j; i, j = i+1, j-1 {
		alpha[i], alpha[j] = alpha[j], alpha[i]
	}

	Logger().Debug("occlusion build",
		"commands", len(b.commands),
		"opaque", len(b.inner.opaque),
		"alpha", len(alpha))

	b.commands = b.commands[:0]
}

// OpaqueItems returns the visible opaque fragments computed by the most
// recent Build. None of the rectangles overlap, so they may be rendered in
// any order.
//
// The returned slice is a view into the builder and must not be modified;
// it is valid until the next Build call.
func (b *BackToFrontBuilder) OpaqueItems() []Item {
	return b.inner.opaque
}

// AlphaItems returns the visible non-opaque fragments computed by the most
// recent Build, in back-to-front render order.
//
// The returned slice is a view into the builder and must not be modified;
// it is valid until the next Build call.
func (b *BackToFrontBuilder) AlphaItems() []Item {
	return b.inner.alpha
}
