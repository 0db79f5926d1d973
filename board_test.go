package main

import "testing"

func TestCascadeDistributesToNeighbors(t *testing.T) {
	b := NewMutableBoard(2)
	b.AddSpot(SideRed, 0)
	b.AddSpot(SideRed, 0)
	if got := b.Get(0).Spots(); got != 2 {
		t.Fatalf("expected corner to hold 2 spots, got %d", got)
	}
	b.AddSpot(SideRed, 0)

	want := "===\n    1r 1r\n    1r --\n==="
	if got := b.Dump(); got != want {
		t.Fatalf("cascade result mismatch:\n got %q\nwant %q", got, want)
	}
	if got := b.NumPieces(); got != 3 {
		t.Fatalf("expected 3 pieces after 3 moves, got %d", got)
	}
}

func TestEachMoveAddsExactlyOnePiece(t *testing.T) {
	b := NewMutableBoard(3)
	moves := []int{0, 4, 8, 0, 4, 2, 0, 6, 4}
	sides := []Side{SideRed, SideBlue}
	for i, n := range moves {
		side := sides[i%2]
		if !b.IsLegalMove(side, n) {
			continue
		}
		before := b.NumPieces()
		b.AddSpot(side, n)
		if got := b.NumPieces(); got != before+1 {
			t.Fatalf("move %d at %d: pieces went %d -> %d, want +1", i, n, before, got)
		}
	}
}

func TestAggregatesMatchRecount(t *testing.T) {
	b := NewMutableBoard(3)
	b.SetRC(1, 1, 2, SideRed)
	b.SetRC(2, 2, 3, SideBlue)
	b.AddSpot(SideRed, 0)
	b.AddSpotRC(SideBlue, 2, 2)
	b.AddSpotRC(SideRed, 3, 3)

	for _, side := range []Side{SideNone, SideRed, SideBlue} {
		squares, pieces, full := 0, 0, 0
		for n := 0; n < 9; n++ {
			sq := b.Get(n)
			if sq.Side() != side {
				continue
			}
			squares++
			pieces += sq.Spots()
			if sq.Spots() == b.Neighbors(n) {
				full++
			}
		}
		if got := b.NumOfSide(side); got != squares {
			t.Fatalf("%s: NumOfSide=%d, recount=%d", side, got, squares)
		}
		if got := b.PiecesOfColor(side); got != pieces {
			t.Fatalf("%s: PiecesOfColor=%d, recount=%d", side, got, pieces)
		}
		if got := b.FullSquares(side); got != full {
			t.Fatalf("%s: FullSquares=%d, recount=%d", side, got, full)
		}
	}
}

func TestUndoRevertsWholeCascade(t *testing.T) {
	b := NewMutableBoard(2)
	b.AddSpot(SideRed, 0)
	b.AddSpot(SideBlue, 3)
	b.AddSpot(SideRed, 0)
	before := b.Dump()

	// This move overflows the corner and captures a neighbor.
	b.AddSpot(SideRed, 0)
	if b.Dump() == before {
		t.Fatalf("expected the cascade to change the position")
	}
	b.Undo()
	if got := b.Dump(); got != before {
		t.Fatalf("undo mismatch:\n got %q\nwant %q", got, before)
	}
	if got := b.NumPieces(); got != 3 {
		t.Fatalf("expected 3 pieces after undo, got %d", got)
	}
}

func TestSetClearsUndoHistory(t *testing.T) {
	b := NewMutableBoard(3)
	b.AddSpot(SideRed, 0)
	if !b.CanUndo() {
		t.Fatalf("expected undo to be available after a move")
	}
	b.Set(4, 2, SideBlue)
	if b.CanUndo() {
		t.Fatalf("Set must discard the undo history")
	}
}

func TestLegalMoves(t *testing.T) {
	b := NewMutableBoard(3)
	b.Set(4, 1, SideBlue)
	if b.IsLegalMove(SideRed, 4) {
		t.Fatalf("red must not play on a blue square")
	}
	if !b.IsLegalMove(SideBlue, 4) {
		t.Fatalf("blue may reinforce its own square")
	}
	if !b.IsLegalMove(SideRed, 0) {
		t.Fatalf("anyone may play on an empty square")
	}
	if b.IsLegalMove(SideRed, 9) || b.IsLegalMove(SideRed, -1) {
		t.Fatalf("moves outside the board are never legal")
	}
}

func TestWinStopsRemainingExplosions(t *testing.T) {
	b := NewMutableBoard(2)
	b.Set(0, 2, SideRed)
	b.Set(1, 2, SideRed)
	b.Set(2, 2, SideRed)
	b.Set(3, 1, SideBlue)

	b.AddSpot(SideRed, 0)

	want := "===\n    2r 3r\n    1r 2r\n==="
	if got := b.Dump(); got != want {
		t.Fatalf("position mismatch:\n got %q\nwant %q", got, want)
	}
	winner, over := b.Winner()
	if !over || winner != SideRed {
		t.Fatalf("expected red to win, got winner=%s over=%v", winner, over)
	}
	if got := b.NumPieces(); got != 8 {
		t.Fatalf("expected 8 pieces, got %d", got)
	}
	// The frozen overfull square does not count as full.
	if got := b.FullSquares(SideRed); got != 2 {
		t.Fatalf("expected 2 full red squares, got %d", got)
	}
}

func TestWinnerNeedsTotalOwnership(t *testing.T) {
	b := NewMutableBoard(2)
	if _, over := b.Winner(); over {
		t.Fatalf("empty board has no winner")
	}
	b.Set(0, 1, SideRed)
	b.Set(1, 1, SideRed)
	b.Set(2, 1, SideRed)
	if _, over := b.Winner(); over {
		t.Fatalf("one empty square keeps the game open")
	}
	b.Set(3, 1, SideRed)
	winner, over := b.Winner()
	if !over || winner != SideRed {
		t.Fatalf("expected red win, got winner=%s over=%v", winner, over)
	}
	if b.HasLegalMove(SideBlue) {
		t.Fatalf("blue must have no legal move on an all-red board")
	}
}

func TestDumpFormat(t *testing.T) {
	b := NewMutableBoard(3)
	b.SetRC(1, 2, 2, SideRed)
	b.SetRC(3, 3, 1, SideBlue)
	want := "===\n    -- 2r --\n    -- -- --\n    -- -- 1b\n==="
	if got := b.Dump(); got != want {
		t.Fatalf("dump mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestParseBoardDumpRoundTrip(t *testing.T) {
	dumps := []string{
		"===\n    -- 2r --\n    -- -- --\n    -- -- 1b\n===",
		// Overfull squares from a frozen cascade must survive the trip.
		"===\n    2r 3r\n    1r 2r\n===",
	}
	for _, dump := range dumps {
		b, err := ParseBoardDump(dump)
		if err != nil {
			t.Fatalf("parse %q: %v", dump, err)
		}
		if got := b.Dump(); got != dump {
			t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, dump)
		}
	}
	if _, err := ParseBoardDump("not a dump"); err == nil {
		t.Fatalf("expected an error for malformed input")
	}
}

func TestWhoseMoveAlternates(t *testing.T) {
	b := NewMutableBoard(2)
	if got := b.WhoseMove(); got != SideRed {
		t.Fatalf("red opens on an even board, got %s", got)
	}
	b.AddSpot(SideRed, 0)
	if got := b.WhoseMove(); got != SideBlue {
		t.Fatalf("expected blue after one piece, got %s", got)
	}
	b.AddSpot(SideBlue, 3)
	if got := b.WhoseMove(); got != SideRed {
		t.Fatalf("expected red after two pieces, got %s", got)
	}
}

func TestNeighborCounts(t *testing.T) {
	b := NewMutableBoard(3)
	cases := []struct {
		n      int
		want   int
		corner bool
	}{
		{0, 2, true}, {2, 2, true}, {6, 2, true}, {8, 2, true},
		{1, 3, false}, {3, 3, false}, {5, 3, false}, {7, 3, false},
		{4, 4, false},
	}
	for _, c := range cases {
		if got := b.Neighbors(c.n); got != c.want {
			t.Fatalf("square %d: neighbors=%d, want %d", c.n, got, c.want)
		}
		if got := b.IsCorner(c.n); got != c.corner {
			t.Fatalf("square %d: IsCorner=%v, want %v", c.n, got, c.corner)
		}
	}
}

func TestSameMovesSamePosition(t *testing.T) {
	play := func() string {
		b := NewMutableBoard(3)
		seq := []struct {
			side Side
			n    int
		}{
			{SideRed, 0}, {SideBlue, 8}, {SideRed, 0}, {SideBlue, 8},
			{SideRed, 0}, {SideBlue, 4}, {SideRed, 1},
		}
		for _, m := range seq {
			if b.IsLegalMove(m.side, m.n) {
				b.AddSpot(m.side, m.n)
			}
		}
		return b.Dump()
	}
	first, second := play(), play()
	if first != second {
		t.Fatalf("replaying the same moves diverged:\n%q\n%q", first, second)
	}
}

func TestVulnerabilityClassifiesFullSquareNeighbors(t *testing.T) {
	b := NewMutableBoard(3)
	b.Set(4, 4, SideRed)
	b.Set(7, 3, SideRed)
	b.Set(3, 1, SideRed)
	b.Set(1, 1, SideBlue)

	// Red density: 8 pieces on 3 squares, offset-averaged to 2.
	if got := b.Density(SideRed); got != 2 {
		t.Fatalf("expected red density 2, got %d", got)
	}

	// The full center sees one blue neighbor, one full red neighbor
	// weighted by density, one plain red and one empty neighbor.
	if got := b.vulnerabilityAt(SideRed, 4); got != 12 {
		t.Fatalf("expected the mixed full square to score 12, got %d", got)
	}
	// A full square with no enemy neighbor collapses to its foe count.
	if got := b.vulnerabilityAt(SideRed, 7); got != 0 {
		t.Fatalf("expected 0 for a full square without foes, got %d", got)
	}
	// A non-full owned square counts once; anything else not at all.
	if got := b.vulnerabilityAt(SideRed, 3); got != 1 {
		t.Fatalf("expected 1 for a plain owned square, got %d", got)
	}
	if got := b.vulnerabilityAt(SideRed, 1); got != 0 {
		t.Fatalf("expected 0 for an enemy square, got %d", got)
	}
	if got := b.Vulnerability(SideRed); got != 13 {
		t.Fatalf("expected total red vulnerability 13, got %d", got)
	}
	// Full squares are scanned for either side, whoever owns them: the two
	// full red squares read as mixed positions from blue's seat too.
	if got := b.vulnerabilityAt(SideBlue, 4); got != 5 {
		t.Fatalf("expected the center to score 5 for blue, got %d", got)
	}
	if got := b.Vulnerability(SideBlue); got != 12 {
		t.Fatalf("expected total blue vulnerability 12, got %d", got)
	}
}

func TestVulnerabilitySurroundedFullSquareCountsFoes(t *testing.T) {
	b := NewMutableBoard(2)
	b.Set(0, 2, SideRed)
	b.Set(1, 1, SideBlue)
	b.Set(2, 1, SideBlue)

	// Every neighbor of the full corner is hostile, so the friend side of
	// the classification is empty and the foe count comes back directly.
	if got := b.vulnerabilityAt(SideRed, 0); got != 2 {
		t.Fatalf("expected foe count 2 for the surrounded corner, got %d", got)
	}
	if got := b.Vulnerability(SideRed); got != 2 {
		t.Fatalf("expected total red vulnerability 2, got %d", got)
	}
}

func TestCopyMatchesSource(t *testing.T) {
	src := NewMutableBoard(3)
	src.AddSpot(SideRed, 4)
	src.AddSpot(SideBlue, 0)

	dst := NewMutableBoardFrom(src)
	if !dst.Equal(src) {
		t.Fatalf("copy differs from source:\n%q\n%q", dst.Dump(), src.Dump())
	}
	dst.AddSpot(SideRed, 4)
	if dst.Equal(src) {
		t.Fatalf("mutating the copy must not track the source")
	}
	if dst.CanUndo() != true || src.CanUndo() != true {
		t.Fatalf("undo history is per board")
	}
}
