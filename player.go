package main

// IPlayer is a seat at the board. Human seats buffer moves arriving over
// the API; automated seats compute one when the game loop asks.
type IPlayer interface {
	Side() Side
	IsHuman() bool
}

func NewPlayer(kind PlayerType, side Side) IPlayer {
	if kind == PlayerAI {
		return NewAIPlayer(side)
	}
	return NewHumanPlayer(side)
}
