// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package interact

// HoverState is the node under the pointer, if any.
// The zero value has no active hover.
type HoverState struct {
	active   bool
	position int
	pointer  Position
}

// Enter starts hovering the node at path position at the pointer p.
func (h HoverState) Enter(position int, p Position) HoverState {
	return HoverState{active: true, position: position, pointer: p}
}

// Move follows the pointer within the hovered node.
// Without an active hover nothing changes.
func (h HoverState) Move(p Position) HoverState {
	if !h.active {
		return h
	}
	h.pointer = p
	return h
}

// Leave ends the hover.
func (h HoverState) Leave() HoverState {
	return HoverState{}
}

// Active returns the hovered path position.
func (h HoverState) Active() (int, bool) {
	return h.position, h.active
}

// Pointer returns the last pointer position of an active hover.
func (h HoverState) Pointer() (Position, bool) {
	return h.pointer, h.active
}

// Track updates h for a pointer at p over the node at position,
// or over no node when ok is false. Entering a different node
// replaces the hover.
func (h HoverState) Track(position int, ok bool, p Position) HoverState {
	switch {
	case !ok:
		return h.Leave()
	case h.active && h.position == position:
		return h.Move(p)
	default:
		return h.Enter(position, p)
	}
}
