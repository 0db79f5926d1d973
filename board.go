package main

import (
	"fmt"
	"strconv"
	"strings"
)

// BoardReader is the read-only board contract consumed by search and display
// code. Both *MutableBoard and *ConstantBoard satisfy it.
type BoardReader interface {
	Size() int
	Get(n int) Square
	GetRC(r, c int) Square
	Exists(n int) bool
	Row(n int) int
	Col(n int) int
	SqNum(r, c int) int
	Neighbors(n int) int
	IsCorner(n int) bool
	IsEdge(n int) bool
	IsFullAt(n int) bool
	NumPieces() int
	NumOfSide(side Side) int
	PiecesOfColor(side Side) int
	FullSquares(side Side) int
	Density(side Side) int
	IsLegalMove(player Side, n int) bool
	HasLegalMove(player Side) bool
	Winner() (Side, bool)
	WhoseMove() Side
	Vulnerability(p Side) int
	Dump() string
}

type boardSnapshot struct {
	squares  []Square
	bySide   [3]int
	fullBy   [3]int
	piecesBy [3]int
}

// MutableBoard holds an N x N grid of squares plus aggregates that are
// maintained incrementally so per-side queries stay O(1). Squares are
// addressed either by (row, col) in [1, N] or by linear index
// (row-1)*N + (col-1). The undo stack holds one full snapshot per
// externally applied move.
type MutableBoard struct {
	size     int
	squares  []Square
	bySide   [3]int
	fullBy   [3]int
	piecesBy [3]int
	past     []boardSnapshot
}

func NewMutableBoard(size int) *MutableBoard {
	b := &MutableBoard{}
	b.Clear(size)
	return b
}

// NewMutableBoardFrom copies the contents of src into a fresh board with an
// empty undo history.
func NewMutableBoardFrom(src BoardReader) *MutableBoard {
	b := NewMutableBoard(src.Size())
	for n := range b.squares {
		b.squares[n] = src.Get(n)
	}
	b.recountAggregates()
	return b
}

// Clear resets the board to size x size empty squares and drops the undo
// history.
func (b *MutableBoard) Clear(size int) {
	b.size = size
	b.squares = make([]Square, size*size)
	b.past = nil
	b.recountAggregates()
}

// Copy replaces my contents with those of src. The undo history is cleared,
// as with any direct cell-setting operation.
func (b *MutableBoard) Copy(src BoardReader) {
	b.past = nil
	for n := range b.squares {
		b.squares[n] = src.Get(n)
	}
	b.recountAggregates()
}

func (b *MutableBoard) Size() int {
	return b.size
}

func (b *MutableBoard) Get(n int) Square {
	return b.squares[n]
}

func (b *MutableBoard) GetRC(r, c int) Square {
	return b.squares[b.SqNum(r, c)]
}

func (b *MutableBoard) Exists(n int) bool {
	return n >= 0 && n < b.size*b.size
}

func (b *MutableBoard) existsRC(r, c int) bool {
	return r >= 1 && r <= b.size && c >= 1 && c <= b.size
}

func (b *MutableBoard) Row(n int) int {
	return n/b.size + 1
}

func (b *MutableBoard) Col(n int) int {
	return n%b.size + 1
}

// SqNum returns the linear index of (r, c), or -1 when the coordinate does
// not denote a square. The cascade uses the -1 sentinel to mean "no neighbor
// here".
func (b *MutableBoard) SqNum(r, c int) int {
	if !b.existsRC(r, c) {
		return -1
	}
	return (r-1)*b.size + (c - 1)
}

func (b *MutableBoard) Neighbors(n int) int {
	return b.neighborsRC(b.Row(n), b.Col(n))
}

func (b *MutableBoard) neighborsRC(r, c int) int {
	count := 0
	if r > 1 {
		count++
	}
	if c > 1 {
		count++
	}
	if r < b.size {
		count++
	}
	if c < b.size {
		count++
	}
	return count
}

func (b *MutableBoard) IsCorner(n int) bool {
	return b.Neighbors(n) == 2
}

// IsEdge mirrors IsCorner: both test for exactly two neighbors. Border
// squares with three neighbors are picked up by the spot count tiers of the
// search instead.
func (b *MutableBoard) IsEdge(n int) bool {
	return b.Neighbors(n) == 2
}

func (b *MutableBoard) IsFullAt(n int) bool {
	return b.squares[n].Spots() == b.Neighbors(n)
}

func (b *MutableBoard) NumPieces() int {
	return b.piecesBy[SideRed] + b.piecesBy[SideBlue]
}

func (b *MutableBoard) NumOfSide(side Side) int {
	return b.bySide[side]
}

func (b *MutableBoard) PiecesOfColor(side Side) int {
	return b.piecesBy[side]
}

func (b *MutableBoard) FullSquares(side Side) int {
	return b.fullBy[side]
}

// Density is the average number of pieces per owned square of side, offset
// so that it stays defined on an empty board.
func (b *MutableBoard) Density(side Side) int {
	return (b.piecesBy[side] + 1) / (b.bySide[side] + 1)
}

// IsLegalMove reports whether player may add a spot to square n: the square
// must exist and be empty or already owned by player.
func (b *MutableBoard) IsLegalMove(player Side, n int) bool {
	return b.Exists(n) && player.PlayableSquare(b.squares[n].Side())
}

// HasLegalMove reports whether player has any legal target, which holds
// unless the opponent owns every square.
func (b *MutableBoard) HasLegalMove(player Side) bool {
	return b.bySide[player.Opposite()] != b.size*b.size
}

// Winner returns the side whose opponent has no legal move. Sides are
// checked in a fixed order, red first, so the answer is deterministic even
// in pathological positions.
func (b *MutableBoard) Winner() (Side, bool) {
	if !b.HasLegalMove(SideRed) {
		return SideBlue, true
	}
	if !b.HasLegalMove(SideBlue) {
		return SideRed, true
	}
	return SideNone, false
}

// WhoseMove derives the side to move from the parity of the total piece
// count plus the board size: even means red. This is a turn-keeping
// convention, not a rule the engine enforces.
func (b *MutableBoard) WhoseMove() Side {
	if (b.NumPieces()+b.size)&1 == 0 {
		return SideRed
	}
	return SideBlue
}

// Vulnerability estimates how many of p's squares are at risk from an
// opponent move next to them. It is a cheap proxy for cascade risk, not a
// simulation.
func (b *MutableBoard) Vulnerability(p Side) int {
	total := 0
	for n := range b.squares {
		total += b.vulnerabilityAt(p, n)
	}
	return total
}

func (b *MutableBoard) vulnerabilityAt(p Side, n int) int {
	if !b.IsFullAt(n) {
		if b.squares[n].Side() == p {
			return 1
		}
		return 0
	}
	friends, foes := 0, 0
	r, c := b.Row(n), b.Col(n)
	around := [4]int{
		b.SqNum(r-1, c), b.SqNum(r+1, c),
		b.SqNum(r, c-1), b.SqNum(r, c+1),
	}
	for _, nb := range around {
		if !b.Exists(nb) {
			continue
		}
		if b.squares[nb].Side() == p.Opposite() {
			foes++
			if b.IsFullAt(nb) {
				friends += b.Neighbors(nb)
			}
		} else {
			friends++
			if b.IsFullAt(nb) {
				friends += (b.Density(p) + 1) * b.Neighbors(nb)
			}
		}
	}
	if friends == 0 || foes == 0 {
		return foes
	}
	return friends
}

// AddSpot applies a move by player at square n, resolving the full explosion
// cascade, and records one undo snapshot covering the whole move. Assumes
// IsLegalMove(player, n); an illegal call is the caller's bug and is not
// checked here.
func (b *MutableBoard) AddSpot(player Side, n int) {
	b.markUndo()
	b.addSpotCascade(player, n)
}

// AddSpotRC is AddSpot addressed by row and column.
func (b *MutableBoard) AddSpotRC(player Side, r, c int) {
	b.AddSpot(player, b.SqNum(r, c))
}

// addSpotCascade adds one piece of player's color to square n, taking
// ownership, and fires the overflow cascade. Before each overflow resolves,
// the game is checked for a decided winner; once the opponent has no legal
// move the remaining explosions stay unfired, leaving the board exactly as
// it was the moment the win became determined.
func (b *MutableBoard) addSpotCascade(player Side, n int) {
	if !b.Exists(n) {
		return
	}
	sq := b.squares[n]
	old, spots := sq.Side(), sq.Spots()
	limit := b.Neighbors(n)
	if old != SideNone && spots == limit {
		b.fullBy[old]--
	}
	if old != player {
		b.piecesBy[old] -= spots
		b.piecesBy[player] += spots
		b.bySide[old]--
		b.bySide[player]++
	}
	b.piecesBy[player]++
	spots++
	b.squares[n] = NewSquare(player, spots)
	if spots == limit {
		b.fullBy[player]++
	}
	if !b.HasLegalMove(player.Opposite()) {
		return
	}
	if spots > limit {
		b.overflow(player, n, spots, limit)
	}
}

// overflow resets an overfull square to its surplus and delivers one piece
// to each existing neighbor, in the fixed order down, up, left, right. A
// square with k neighbors loses exactly k pieces and hands out exactly k,
// so every cascade step conserves the total piece count.
func (b *MutableBoard) overflow(player Side, n, spots, limit int) {
	b.piecesBy[player] -= limit
	spots -= limit
	b.squares[n] = NewSquare(player, spots)
	if spots == limit {
		b.fullBy[player]++
	}
	r, c := b.Row(n), b.Col(n)
	b.addSpotCascade(player, b.SqNum(r+1, c))
	b.addSpotCascade(player, b.SqNum(r-1, c))
	b.addSpotCascade(player, b.SqNum(r, c-1))
	b.addSpotCascade(player, b.SqNum(r, c+1))
}

// Set forces square n to hold spots pieces of player's color (empty when
// spots is zero) and clears the undo history. Forced contents above the
// square's neighbor count overflow as in normal play. Assumes n exists.
func (b *MutableBoard) Set(n, spots int, player Side) {
	b.past = nil
	limit := b.Neighbors(n)
	old := b.squares[n]
	if old.Side() != SideNone && old.Spots() == limit {
		b.fullBy[old.Side()]--
	}
	sq := NewSquare(player, spots)
	b.piecesBy[old.Side()] -= old.Spots()
	b.piecesBy[sq.Side()] += sq.Spots()
	b.bySide[old.Side()]--
	b.bySide[sq.Side()]++
	b.squares[n] = sq
	if sq.Side() != SideNone && sq.Spots() == limit {
		b.fullBy[sq.Side()]++
	}
	if sq.Side() != SideNone && sq.Spots() > limit && b.HasLegalMove(sq.Side().Opposite()) {
		b.overflow(sq.Side(), n, sq.Spots(), limit)
	}
}

// SetRC is Set addressed by row and column.
func (b *MutableBoard) SetRC(r, c, spots int, player Side) {
	b.Set(b.SqNum(r, c), spots, player)
}

func (b *MutableBoard) CanUndo() bool {
	return len(b.past) > 0
}

// Undo restores the board to its state before the most recent AddSpot. The
// entire cascade of that move is reverted as one unit.
func (b *MutableBoard) Undo() {
	last := len(b.past) - 1
	snap := b.past[last]
	b.past = b.past[:last]
	b.squares = snap.squares
	b.bySide = snap.bySide
	b.fullBy = snap.fullBy
	b.piecesBy = snap.piecesBy
}

func (b *MutableBoard) markUndo() {
	snap := boardSnapshot{
		squares:  make([]Square, len(b.squares)),
		bySide:   b.bySide,
		fullBy:   b.fullBy,
		piecesBy: b.piecesBy,
	}
	copy(snap.squares, b.squares)
	b.past = append(b.past, snap)
}

func (b *MutableBoard) recountAggregates() {
	b.bySide = [3]int{}
	b.fullBy = [3]int{}
	b.piecesBy = [3]int{}
	for n, sq := range b.squares {
		b.bySide[sq.Side()]++
		b.piecesBy[sq.Side()] += sq.Spots()
		if sq.Spots() == b.Neighbors(n) {
			b.fullBy[sq.Side()]++
		}
	}
}

// Dump renders the canonical bordered representation. Two boards are equal
// iff their dumps are identical; the undo history never participates.
func (b *MutableBoard) Dump() string {
	var sb strings.Builder
	sb.WriteString("===\n")
	for r := 1; r <= b.size; r++ {
		sb.WriteString("    ")
		for c := 1; c <= b.size; c++ {
			if c > 1 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.GetRC(r, c).String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("===")
	return sb.String()
}

func (b *MutableBoard) Equal(other BoardReader) bool {
	return b.Dump() == other.Dump()
}

// ParseBoardDump rebuilds a board from its canonical dump. Squares are
// written back verbatim, so dumps of positions frozen mid-cascade (spots
// above the neighbor count) round-trip unchanged.
func ParseBoardDump(dump string) (*MutableBoard, error) {
	lines := strings.Split(dump, "\n")
	if len(lines) < 3 || lines[0] != "===" || lines[len(lines)-1] != "===" {
		return nil, fmt.Errorf("dump is not framed by === lines")
	}
	rows := lines[1 : len(lines)-1]
	size := len(rows)
	b := NewMutableBoard(size)
	for r, line := range rows {
		fields := strings.Fields(line)
		if len(fields) != size {
			return nil, fmt.Errorf("row %d has %d squares, want %d", r+1, len(fields), size)
		}
		for c, field := range fields {
			if field == "--" {
				continue
			}
			if len(field) < 2 {
				return nil, fmt.Errorf("bad square %q at row %d col %d", field, r+1, c+1)
			}
			spots, err := strconv.Atoi(field[:len(field)-1])
			if err != nil || spots < 1 {
				return nil, fmt.Errorf("bad spot count in %q at row %d col %d", field, r+1, c+1)
			}
			side, err := SideFromLetter(field[len(field)-1])
			if err != nil {
				return nil, fmt.Errorf("bad square %q at row %d col %d", field, r+1, c+1)
			}
			b.squares[r*size+c] = NewSquare(side, spots)
		}
	}
	b.recountAggregates()
	return b, nil
}
