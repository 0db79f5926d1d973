package main

type PlayerType string

const (
	PlayerHuman PlayerType = "human"
	PlayerAI    PlayerType = "ai"
)

type GameSettings struct {
	BoardSize int        `json:"board_size"`
	RedType   PlayerType `json:"red_type"`
	BlueType  PlayerType `json:"blue_type"`
	AiLevel   int        `json:"ai_level"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize: envInt("JUMPCUBE_BOARD_SIZE", 6),
		RedType:   PlayerHuman,
		BlueType:  PlayerAI,
		AiLevel:   GetConfig().AiLevel,
	}
}

func (s GameSettings) Valid() bool {
	if s.BoardSize < 2 || s.BoardSize > 10 {
		return false
	}
	if s.RedType != PlayerHuman && s.RedType != PlayerAI {
		return false
	}
	if s.BlueType != PlayerHuman && s.BlueType != PlayerAI {
		return false
	}
	return s.AiLevel >= 1
}
