package main

// Move addresses a square by 1-based row and column. Level, when set, is the
// search depth the AI used to pick the move; it travels with the move for
// history and display only.
type Move struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Level int `json:"level,omitempty"`
}

func NewMove(r, c int) Move {
	return Move{Row: r, Col: c}
}

func MoveFromIndex(n, boardSize int) Move {
	return Move{Row: n/boardSize + 1, Col: n%boardSize + 1}
}

func (m Move) IsValid(boardSize int) bool {
	return m.Row >= 1 && m.Col >= 1 && m.Row <= boardSize && m.Col <= boardSize
}

func (m Move) Index(boardSize int) int {
	return (m.Row-1)*boardSize + (m.Col - 1)
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}
