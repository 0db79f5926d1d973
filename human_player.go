package main

import "sync"

// HumanPlayer holds at most one pending move submitted over the API until
// the game loop consumes it on the player's turn.
type HumanPlayer struct {
	side Side

	mu      sync.Mutex
	pending *Move
}

func NewHumanPlayer(side Side) *HumanPlayer {
	return &HumanPlayer{side: side}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) Side() Side {
	return h.side
}

// Submit replaces any pending move with m.
func (h *HumanPlayer) Submit(m Move) {
	h.mu.Lock()
	h.pending = &m
	h.mu.Unlock()
}

// TakePending returns and clears the buffered move, if any.
func (h *HumanPlayer) TakePending() (Move, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending == nil {
		return Move{}, false
	}
	m := *h.pending
	h.pending = nil
	return m, true
}

func (h *HumanPlayer) Clear() {
	h.mu.Lock()
	h.pending = nil
	h.mu.Unlock()
}
