package tui

import "github.com/vovakirdan/tui-breakout/internal/core"

// HeldKeys approximates held-key state from terminal key events.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until holdTicks ticks pass without another event for it.
type HeldKeys struct {
	hold int
	tick int
	last map[core.Key]int // Tick of the latest event per key
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 0 {
		holdTicks = 0
	}
	return &HeldKeys{hold: holdTicks, last: make(map[core.Key]int)}
}

// Press records an event for k on the current tick.
func (h *HeldKeys) Press(k core.Key) {
	h.last[k] = h.tick
}

// Advance moves to the next tick and releases keys whose window ran out.
func (h *HeldKeys) Advance() {
	h.tick++
	for k, t := range h.last {
		if h.tick-t > h.hold {
			delete(h.last, k)
		}
	}
}

// KeyCount returns the number of keys currently held.
func (h *HeldKeys) KeyCount() int {
	return len(h.last)
}

// IsKeyDown reports whether k is currently held.
func (h *HeldKeys) IsKeyDown(k core.Key) bool {
	_, ok := h.last[k]
	return ok
}

// Release drops every held key.
func (h *HeldKeys) Release() {
	clear(h.last)
}
