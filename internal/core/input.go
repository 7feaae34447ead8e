package core

// Key names a physical key in a host-independent way.
// Directional keys have fixed names; hosts pass every other key through
// under its own name so it still counts as held.
type Key string

// Directional keys consumed by the paddle.
const (
	KeyLeft  Key = "left"
	KeyRight Key = "right"
)

// InputSource is the capability set games read input from.
type InputSource interface {
	// KeyCount returns the number of keys currently held.
	KeyCount() int
	// IsKeyDown reports whether the given key is currently held.
	IsKeyDown(k Key) bool
}

// InputFrame is a snapshot of held keys for a single simulation tick.
type InputFrame struct {
	held map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(keys ...Key) InputFrame {
	f := InputFrame{held: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		f.Press(k)
	}
	return f
}

// Press marks a key as held for this frame.
func (f *InputFrame) Press(k Key) {
	if f.held == nil {
		f.held = make(map[Key]bool)
	}
	f.held[k] = true
}

// KeyCount returns the number of held keys.
func (f InputFrame) KeyCount() int {
	return len(f.held)
}

// IsKeyDown reports whether k is held.
func (f InputFrame) IsKeyDown(k Key) bool {
	return f.held[k]
}

// Clear releases all keys.
func (f *InputFrame) Clear() {
	for k := range f.held {
		delete(f.held, k)
	}
}

// EdgeDetector turns held-key counts into edge-triggered presses.
// A press is reported only on the tick the count goes from zero to non-zero.
type EdgeDetector struct {
	last int
}

// Observe records this tick's held-key count and reports a fresh press.
func (d *EdgeDetector) Observe(count int) bool {
	pressed := count > 0 && d.last == 0
	d.last = count
	return pressed
}

// Reset forgets the previous count.
func (d *EdgeDetector) Reset() {
	d.last = 0
}
