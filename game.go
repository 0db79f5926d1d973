package main

import (
	"errors"
	"fmt"
	"log"
	"time"
)

type GameStatus string

const (
	StatusIdle     GameStatus = "idle"
	StatusRunning  GameStatus = "running"
	StatusFinished GameStatus = "finished"
)

var (
	ErrGameNotRunning = errors.New("game is not running")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNoSuchPlayer   = errors.New("no such player")
)

// Game owns one board and its two seats. It is not safe for concurrent use;
// GameController serializes access.
type Game struct {
	settings GameSettings
	board    *MutableBoard
	red      IPlayer
	blue     IPlayer
	status   GameStatus
	winner   Side
	history  MoveHistory
	turnMark time.Time
}

func NewGame() *Game {
	settings := DefaultGameSettings()
	return &Game{
		settings: settings,
		board:    NewMutableBoard(settings.BoardSize),
		red:      NewPlayer(settings.RedType, SideRed),
		blue:     NewPlayer(settings.BlueType, SideBlue),
		status:   StatusIdle,
	}
}

// Start resets the board and seats under new settings and begins play.
func (g *Game) Start(settings GameSettings) error {
	if !settings.Valid() {
		return fmt.Errorf("invalid settings: %+v", settings)
	}
	g.settings = settings
	g.board = NewMutableBoard(settings.BoardSize)
	g.red = NewPlayer(settings.RedType, SideRed)
	g.blue = NewPlayer(settings.BlueType, SideBlue)
	if ai, ok := g.red.(*AIPlayer); ok {
		ai.SetLevel(settings.AiLevel, settings.BoardSize)
	}
	if ai, ok := g.blue.(*AIPlayer); ok {
		ai.SetLevel(settings.AiLevel, settings.BoardSize)
	}
	g.status = StatusRunning
	g.winner = SideNone
	g.history.Reset()
	g.turnMark = time.Now()
	log.Printf("[game] started %dx%d red=%s blue=%s level=%d",
		settings.BoardSize, settings.BoardSize, settings.RedType, settings.BlueType, settings.AiLevel)
	return nil
}

func (g *Game) player(side Side) IPlayer {
	switch side {
	case SideRed:
		return g.red
	case SideBlue:
		return g.blue
	default:
		return nil
	}
}

// SubmitHumanMove buffers a move for a human seat. The move is validated
// and applied by the next Tick on that player's turn.
func (g *Game) SubmitHumanMove(side Side, m Move) error {
	if g.status != StatusRunning {
		return ErrGameNotRunning
	}
	p := g.player(side)
	if p == nil {
		return ErrNoSuchPlayer
	}
	human, ok := p.(*HumanPlayer)
	if !ok {
		return fmt.Errorf("%s seat is not human", side)
	}
	if side != g.board.WhoseMove() {
		return ErrNotYourTurn
	}
	if !m.IsValid(g.board.Size()) || !g.board.IsLegalMove(side, m.Index(g.board.Size())) {
		return ErrIllegalMove
	}
	human.Submit(m)
	return nil
}

// TryApplyMove plays m for side, running the whole cascade as one unit.
func (g *Game) TryApplyMove(side Side, m Move) error {
	if g.status != StatusRunning {
		return ErrGameNotRunning
	}
	if side != g.board.WhoseMove() {
		return ErrNotYourTurn
	}
	size := g.board.Size()
	if !m.IsValid(size) || !g.board.IsLegalMove(side, m.Index(size)) {
		return ErrIllegalMove
	}
	elapsed := int(time.Since(g.turnMark).Milliseconds())
	g.board.AddSpotRC(side, m.Row, m.Col)
	p := g.player(side)
	g.history.Push(HistoryEntry{
		Move:       m,
		Side:       side,
		ElapsedMs:  elapsed,
		OwnedAfter: g.board.NumOfSide(side),
		IsAi:       !p.IsHuman(),
		Level:      m.Level,
	})
	g.turnMark = time.Now()
	if winner, over := g.board.Winner(); over {
		g.status = StatusFinished
		g.winner = winner
		log.Printf("[game] %s wins after %d moves", winner, g.history.Len())
	}
	return nil
}

// Tick advances the game by at most one move: the buffered human move, or
// a full AI decision, for whichever seat holds the turn. It reports whether
// a move was applied.
func (g *Game) Tick() bool {
	if g.status != StatusRunning {
		return false
	}
	side := g.board.WhoseMove()
	switch p := g.player(side).(type) {
	case *HumanPlayer:
		m, ok := p.TakePending()
		if !ok {
			return false
		}
		if err := g.TryApplyMove(side, m); err != nil {
			log.Printf("[game] dropping buffered move %+v for %s: %v", m, side, err)
			return false
		}
		return true
	case *AIPlayer:
		m := p.ChooseMove(NewConstantBoard(g.board))
		if err := g.TryApplyMove(side, m); err != nil {
			log.Printf("[game] ai move %+v for %s rejected: %v", m, side, err)
			return false
		}
		return true
	default:
		return false
	}
}

// Undo rolls back the latest move and its whole cascade. A finished game
// goes back to running.
func (g *Game) Undo() error {
	if g.history.Len() == 0 || !g.board.CanUndo() {
		return ErrNothingToUndo
	}
	g.history.Pop()
	g.board.Undo()
	if g.status == StatusFinished {
		g.status = StatusRunning
		g.winner = SideNone
	}
	if h, ok := g.red.(*HumanPlayer); ok {
		h.Clear()
	}
	if h, ok := g.blue.(*HumanPlayer); ok {
		h.Clear()
	}
	g.turnMark = time.Now()
	return nil
}

// SetAiLevel updates every automated seat; raising the depth makes each one
// re-learn its memoized positions at the new depth.
func (g *Game) SetAiLevel(level int) {
	g.settings.AiLevel = level
	size := g.board.Size()
	if ai, ok := g.red.(*AIPlayer); ok {
		ai.SetLevel(level, size)
	}
	if ai, ok := g.blue.(*AIPlayer); ok {
		ai.SetLevel(level, size)
	}
}

func (g *Game) WipeAiMemory() {
	if ai, ok := g.red.(*AIPlayer); ok {
		ai.WipeMemory()
	}
	if ai, ok := g.blue.(*AIPlayer); ok {
		ai.WipeMemory()
	}
}

// aiPlayers returns the automated seats, red first.
func (g *Game) aiPlayers() []*AIPlayer {
	var out []*AIPlayer
	if ai, ok := g.red.(*AIPlayer); ok {
		out = append(out, ai)
	}
	if ai, ok := g.blue.(*AIPlayer); ok {
		out = append(out, ai)
	}
	return out
}

type SquareState struct {
	Side  Side `json:"side"`
	Spots int  `json:"spots"`
}

type GameSnapshot struct {
	Status    GameStatus     `json:"status"`
	Settings  GameSettings   `json:"settings"`
	Config    Config         `json:"config"`
	Winner    Side           `json:"winner"`
	WhoseMove Side           `json:"whose_move"`
	BoardSize int            `json:"board_size"`
	Squares   []SquareState  `json:"squares"`
	Pieces    map[string]int `json:"pieces"`
	OwnedBy   map[string]int `json:"owned_by"`
	History   []HistoryEntry `json:"history"`
	Dump      string         `json:"dump"`
}

// Snapshot captures the full observable state for the API and websocket
// broadcasts.
func (g *Game) Snapshot() GameSnapshot {
	size := g.board.Size()
	squares := make([]SquareState, size*size)
	for n := range squares {
		sq := g.board.Get(n)
		squares[n] = SquareState{Side: sq.Side(), Spots: sq.Spots()}
	}
	return GameSnapshot{
		Status:    g.status,
		Settings:  g.settings,
		Config:    GetConfig(),
		Winner:    g.winner,
		WhoseMove: g.board.WhoseMove(),
		BoardSize: size,
		Squares:   squares,
		Pieces: map[string]int{
			"red":  g.board.PiecesOfColor(SideRed),
			"blue": g.board.PiecesOfColor(SideBlue),
		},
		OwnedBy: map[string]int{
			"red":  g.board.NumOfSide(SideRed),
			"blue": g.board.NumOfSide(SideBlue),
			"none": g.board.NumOfSide(SideNone),
		},
		History: g.history.Entries(),
		Dump:    g.board.Dump(),
	}
}
