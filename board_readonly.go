package main

import "fmt"

// ConstantBoard is a read-only view over another board. It satisfies
// BoardReader and panics on every mutating operation, so handing one to
// search or display code guarantees the underlying board cannot change
// through it. The panic marks a programming error, not a runtime condition
// to recover from.
type ConstantBoard struct {
	board BoardReader
}

func NewConstantBoard(board BoardReader) *ConstantBoard {
	return &ConstantBoard{board: board}
}

func (b *ConstantBoard) Size() int                           { return b.board.Size() }
func (b *ConstantBoard) Get(n int) Square                    { return b.board.Get(n) }
func (b *ConstantBoard) GetRC(r, c int) Square               { return b.board.GetRC(r, c) }
func (b *ConstantBoard) Exists(n int) bool                   { return b.board.Exists(n) }
func (b *ConstantBoard) Row(n int) int                       { return b.board.Row(n) }
func (b *ConstantBoard) Col(n int) int                       { return b.board.Col(n) }
func (b *ConstantBoard) SqNum(r, c int) int                  { return b.board.SqNum(r, c) }
func (b *ConstantBoard) Neighbors(n int) int                 { return b.board.Neighbors(n) }
func (b *ConstantBoard) IsCorner(n int) bool                 { return b.board.IsCorner(n) }
func (b *ConstantBoard) IsEdge(n int) bool                   { return b.board.IsEdge(n) }
func (b *ConstantBoard) IsFullAt(n int) bool                 { return b.board.IsFullAt(n) }
func (b *ConstantBoard) NumPieces() int                      { return b.board.NumPieces() }
func (b *ConstantBoard) NumOfSide(side Side) int             { return b.board.NumOfSide(side) }
func (b *ConstantBoard) PiecesOfColor(side Side) int         { return b.board.PiecesOfColor(side) }
func (b *ConstantBoard) FullSquares(side Side) int           { return b.board.FullSquares(side) }
func (b *ConstantBoard) Density(side Side) int               { return b.board.Density(side) }
func (b *ConstantBoard) IsLegalMove(player Side, n int) bool { return b.board.IsLegalMove(player, n) }
func (b *ConstantBoard) HasLegalMove(player Side) bool       { return b.board.HasLegalMove(player) }
func (b *ConstantBoard) Winner() (Side, bool)                { return b.board.Winner() }
func (b *ConstantBoard) WhoseMove() Side                     { return b.board.WhoseMove() }
func (b *ConstantBoard) Vulnerability(p Side) int            { return b.board.Vulnerability(p) }
func (b *ConstantBoard) Dump() string                        { return b.board.Dump() }

func (b *ConstantBoard) AddSpot(Side, int)         { unsupported("AddSpot") }
func (b *ConstantBoard) AddSpotRC(Side, int, int)  { unsupported("AddSpotRC") }
func (b *ConstantBoard) Set(int, int, Side)        { unsupported("Set") }
func (b *ConstantBoard) SetRC(int, int, int, Side) { unsupported("SetRC") }
func (b *ConstantBoard) Undo()                     { unsupported("Undo") }
func (b *ConstantBoard) Clear(int)                 { unsupported("Clear") }
func (b *ConstantBoard) Copy(BoardReader)          { unsupported("Copy") }

func unsupported(op string) {
	panic(fmt.Sprintf("'%s' operation not supported on a constant board", op))
}
