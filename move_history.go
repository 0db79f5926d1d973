package main

// HistoryEntry records one applied move for replay and the API.
type HistoryEntry struct {
	Move      Move `json:"move"`
	Side      Side `json:"side"`
	ElapsedMs int  `json:"elapsed_ms"`
	// OwnedAfter is how many squares the mover held once the cascade
	// settled; jumps between entries show how far a move cascaded.
	OwnedAfter int  `json:"owned_after"`
	IsAi       bool `json:"is_ai"`
	Level      int  `json:"level,omitempty"`
}

type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) Push(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

// Pop removes and returns the latest entry.
func (h *MoveHistory) Pop() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

func (h *MoveHistory) Len() int {
	return len(h.entries)
}

func (h *MoveHistory) Reset() {
	h.entries = h.entries[:0]
}

// Entries returns a copy safe to hand to encoders.
func (h *MoveHistory) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
