package main

import "fmt"

type Side int

const (
	SideNone Side = iota
	SideRed
	SideBlue
)

func (s Side) Opposite() Side {
	switch s {
	case SideRed:
		return SideBlue
	case SideBlue:
		return SideRed
	default:
		return SideNone
	}
}

// PlayableSquare reports whether a player of side s may add a spot to a
// square currently owned by owner.
func (s Side) PlayableSquare(owner Side) bool {
	return owner == SideNone || owner == s
}

func (s Side) String() string {
	switch s {
	case SideRed:
		return "Red"
	case SideBlue:
		return "Blue"
	default:
		return "None"
	}
}

func (s Side) letter() byte {
	switch s {
	case SideRed:
		return 'r'
	case SideBlue:
		return 'b'
	default:
		return '-'
	}
}

// Square is an immutable (side, spots) pair. An unowned square always has
// zero spots and an owned square always has at least one.
type Square struct {
	side  Side
	spots int
}

func NewSquare(side Side, spots int) Square {
	if side == SideNone || spots <= 0 {
		return Square{}
	}
	return Square{side: side, spots: spots}
}

func (q Square) Side() Side {
	return q.side
}

func (q Square) Spots() int {
	return q.spots
}

func (q Square) String() string {
	if q.side == SideNone {
		return "--"
	}
	return fmt.Sprintf("%d%c", q.spots, q.side.letter())
}

func SideFromLetter(letter byte) (Side, error) {
	switch letter {
	case 'r':
		return SideRed, nil
	case 'b':
		return SideBlue, nil
	default:
		return SideNone, fmt.Errorf("unknown side letter %q", letter)
	}
}
