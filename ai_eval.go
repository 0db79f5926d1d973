package main

import (
	"log"
	"time"
)

// staticEval scores board b for player p, higher meaning better for p. A
// position where p's opponent cannot move is a win sentinel, the reverse a
// loss sentinel. Otherwise the score is the cubed weighted square margin
// damped by p's vulnerability; the vulnerability scan is skipped while the
// board is still open relative to the search depth, where it is expensive
// and uninformative.
func (a *AIPlayer) staticEval(p Side, b BoardReader) int {
	key := b.Dump()
	if entry, ok := a.memo.Probe(key); ok {
		a.stats.MemoHits++
		if p == a.side {
			return entry.Score
		}
		return -entry.Score
	}
	opp := p.Opposite()
	var result int
	switch {
	case !b.HasLegalMove(opp):
		result = winScore
	case !b.HasLegalMove(p):
		result = loseScore
	default:
		margin := 2*b.NumOfSide(p) - b.NumOfSide(opp)
		vulnerability := 0
		if b.NumOfSide(SideNone)+a.level < b.NumOfSide(p)+b.NumOfSide(opp) {
			vulnerability = b.Vulnerability(p)
		}
		result = margin * margin * margin / (2*vulnerability + 1)
	}
	a.memoizeKey(key, p, 0, result)
	return result
}

// SearchStats collects counters for one move decision.
type SearchStats struct {
	Start    time.Time
	Nodes    int
	MemoHits int
	Cutoffs  int
	TimedOut bool
}

func logSearchStats(tag string, stats SearchStats, level, memoSize int) {
	elapsed := time.Duration(0)
	if !stats.Start.IsZero() {
		elapsed = time.Since(stats.Start)
	}
	log.Printf("[ai:%s] t=%dms level=%d nodes=%d memo_hits=%d memo_size=%d cutoffs=%d timed_out=%v",
		tag,
		elapsed.Milliseconds(),
		level,
		stats.Nodes,
		stats.MemoHits,
		memoSize,
		stats.Cutoffs,
		stats.TimedOut,
	)
}
