package main

import (
	"sort"
	"testing"
)

func TestDepthZeroSearchMatchesStaticEval(t *testing.T) {
	b := NewMutableBoard(2)
	b.Set(0, 2, SideRed)
	b.Set(1, 1, SideRed)
	b.Set(3, 1, SideBlue)

	searcher := NewAIPlayer(SideRed)
	var moves []int
	got := searcher.minmax(SideRed, b, 0, winScore, &moves)

	// At depth zero the value of every candidate must be exactly the static
	// evaluation of the position it produces.
	scorer := NewAIPlayer(SideRed)
	bestVal := loseScore
	var want []int
	for n := 0; n < 4; n++ {
		if !b.IsLegalMove(SideRed, n) {
			continue
		}
		test := NewMutableBoardFrom(b)
		test.AddSpot(SideRed, n)
		val := scorer.staticEval(SideRed, test)
		if val > bestVal {
			bestVal = val
			want = []int{n}
		} else if val == bestVal {
			want = append(want, n)
		}
	}
	if got != bestVal {
		t.Fatalf("depth-0 search value %d, apply-then-evaluate gives %d", got, bestVal)
	}
	sort.Ints(moves)
	if len(moves) != len(want) {
		t.Fatalf("tied move sets differ: search %v, direct %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("tied move sets differ: search %v, direct %v", moves, want)
		}
	}
}

func TestStaticEvalDampsByVulnerabilityWhenCrowded(t *testing.T) {
	ai := NewAIPlayer(SideRed)
	ai.SetLevel(1, 3)

	// Eight of nine squares owned: one empty square plus depth 1 is below
	// the owned count, so the evaluator pays for the vulnerability scan.
	b := NewMutableBoard(3)
	for _, n := range []int{0, 1, 3, 4, 6} {
		b.Set(n, 1, SideRed)
	}
	for _, n := range []int{2, 5, 7} {
		b.Set(n, 1, SideBlue)
	}
	if got := b.Vulnerability(SideRed); got != 5 {
		t.Fatalf("expected vulnerability 5 on this position, got %d", got)
	}

	margin := 2*b.NumOfSide(SideRed) - b.NumOfSide(SideBlue)
	want := margin * margin * margin / (2*5 + 1)
	if got := ai.staticEval(SideRed, b); got != want {
		t.Fatalf("expected the vulnerability-damped score %d, got %d", want, got)
	}
}
