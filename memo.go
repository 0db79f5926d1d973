package main

import (
	"math"
	"sort"
	"sync"
)

const (
	winScore  = math.MaxInt32
	loseScore = -winScore
)

// MemoEntry is a previously computed search value: the depth it was derived
// at and the score relative to the owning player's own side.
type MemoEntry struct {
	Depth int `json:"depth"`
	Score int `json:"score"`
}

func (e MemoEntry) Terminal() bool {
	return e.Score == winScore || e.Score == loseScore
}

type MemoSnapshot struct {
	Key string `json:"key"`
	MemoEntry
}

// MemoTable caches position values keyed by the board's canonical dump, so
// positions reached through different move orders share one entry. Each
// automated player owns its own table.
type MemoTable struct {
	mu      sync.RWMutex
	entries map[string]MemoEntry
}

func NewMemoTable() *MemoTable {
	return &MemoTable{entries: make(map[string]MemoEntry)}
}

func (m *MemoTable) Probe(key string) (MemoEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[key]
	return entry, ok
}

// Store records a value for key and reports whether it was kept. An absent
// key is always stored. An existing entry is replaced only by one derived at
// a strictly greater depth, and a terminal (win/loss) entry is permanent.
func (m *MemoTable) Store(key string, depth, score int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.entries[key]
	if ok && (existing.Terminal() || depth <= existing.Depth) {
		return false
	}
	m.entries[key] = MemoEntry{Depth: depth, Score: score}
	return true
}

func (m *MemoTable) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *MemoTable) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]MemoEntry)
	m.mu.Unlock()
}

// Snapshot returns a copy of every entry, deepest first with the key as a
// tie break so pagination over repeated calls is stable.
func (m *MemoTable) Snapshot() []MemoSnapshot {
	m.mu.RLock()
	out := make([]MemoSnapshot, 0, len(m.entries))
	for key, entry := range m.entries {
		out = append(out, MemoSnapshot{Key: key, MemoEntry: entry})
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth > out[j].Depth
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Page returns a window of the sorted snapshot plus the total entry count.
func (m *MemoTable) Page(offset, limit int) ([]MemoSnapshot, int) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	all := m.Snapshot()
	total := len(all)
	if offset >= total {
		return []MemoSnapshot{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total
}
