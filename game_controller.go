package main

import "sync"

// GameController serializes every access to the single Game behind one
// mutex, so HTTP handlers, the websocket hub and the tick loop never touch
// the board concurrently.
type GameController struct {
	mu   sync.Mutex
	game *Game
	hub  *Hub
}

func NewGameController(hub *Hub) *GameController {
	return &GameController{
		game: NewGame(),
		hub:  hub,
	}
}

func (c *GameController) Snapshot() GameSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Snapshot()
}

func (c *GameController) Start(settings GameSettings) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.game.Start(settings); err != nil {
		return err
	}
	c.hub.BroadcastReset(c.game.Snapshot())
	return nil
}

func (c *GameController) SubmitHumanMove(side Side, m Move) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.SubmitHumanMove(side, m)
}

func (c *GameController) Undo() (GameSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.game.Undo(); err != nil {
		return GameSnapshot{}, err
	}
	snap := c.game.Snapshot()
	c.hub.BroadcastStatus(snap)
	return snap, nil
}

func (c *GameController) SetAiLevel(level int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.game.SetAiLevel(level)
}

func (c *GameController) WipeAiMemory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.game.WipeAiMemory()
}

// MemoStats returns the memo entry count of each automated seat.
func (c *GameController) MemoStats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := map[string]int{}
	for _, ai := range c.game.aiPlayers() {
		out[ai.Side().String()] = ai.MemoSize()
	}
	return out
}

// MemoPage returns one page of memoized positions per automated seat.
func (c *GameController) MemoPage(offset, limit int) map[string][]MemoSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := map[string][]MemoSnapshot{}
	for _, ai := range c.game.aiPlayers() {
		page, _ := ai.MemoPage(offset, limit)
		out[ai.Side().String()] = page
	}
	return out
}

// Tick runs one scheduler step and broadcasts when the position changed.
func (c *GameController) Tick() {
	c.mu.Lock()
	moved := c.game.Tick()
	var snap GameSnapshot
	if moved {
		snap = c.game.Snapshot()
	}
	c.mu.Unlock()
	if moved {
		c.hub.BroadcastStatus(snap)
	}
}
