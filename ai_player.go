package main

import (
	"log"
	"time"

	"lukechampine.com/frand"
)

// searchCriterion classifies squares for move ordering. The search walks the
// tiers in a fixed priority so promising squares (already full, about to
// fill) are explored before quiet ones.
type searchCriterion int

const (
	critFull searchCriterion = iota
	critCorner
	critEdge
	critOne
	critTwo
	critThree
)

func (c searchCriterion) matches(b BoardReader, n int) bool {
	switch c {
	case critFull:
		return b.IsFullAt(n)
	case critCorner:
		return b.IsCorner(n)
	case critEdge:
		return b.IsEdge(n)
	case critOne:
		return b.Get(n).Spots() == 1
	case critTwo:
		return !b.IsCorner(n) && b.Get(n).Spots() == 2
	case critThree:
		return b.Get(n).Spots() == 3
	default:
		return false
	}
}

var searchTiers = [...]searchCriterion{critFull, critThree, critEdge, critTwo, critOne}

// AIPlayer picks moves with a depth-bounded, time-boxed negamax search over
// criterion tiers, memoizing position values in its own table. One decision
// runs at a time; all lookahead happens on scratch copies, so any board
// handed to ChooseMove is left untouched.
type AIPlayer struct {
	side  Side
	level int
	memo  *MemoTable

	start          time.Time
	timeLimitMs    int
	timeSafetyMs   int
	checkInterval  int
	callsSinceTick int
	timeUp         bool

	stats SearchStats
}

func NewAIPlayer(side Side) *AIPlayer {
	cfg := GetConfig()
	return &AIPlayer{
		side:  side,
		level: cfg.AiLevel,
		memo:  NewMemoTable(),
	}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) Side() Side {
	return a.side
}

func (a *AIPlayer) Level() int {
	return a.level
}

func (a *AIPlayer) MemoSize() int {
	return a.memo.Count()
}

// MemoPage returns one page of memoized positions, deepest first, plus the
// total entry count.
func (a *AIPlayer) MemoPage(offset, limit int) ([]MemoSnapshot, int) {
	return a.memo.Page(offset, limit)
}

// WipeMemory drops every memoized position.
func (a *AIPlayer) WipeMemory() {
	a.memo.Clear()
}

// ChooseMove selects a move for the given position. An entirely empty board
// gets the fixed opening at square 0 without searching; otherwise the best
// move is drawn uniformly at random from the moves tied at the top search
// score, falling back to a uniformly random legal move when the search ran
// out of time before scoring anything.
func (a *AIPlayer) ChooseMove(b BoardReader) Move {
	cfg := GetConfig()
	size := b.Size()
	if b.NumOfSide(SideNone) == size*size {
		return a.withLevel(MoveFromIndex(0, size))
	}
	a.beginSearch(cfg)
	var moves []int
	val := a.minmax(a.side, b, a.level, winScore, &moves)
	a.memoize(b, a.side, a.level, val)
	var n int
	if len(moves) == 0 {
		n = a.randomLegalMove(b)
	} else {
		n = moves[frand.Intn(len(moves))]
	}
	if cfg.AiLogSearchStats {
		logSearchStats("choose", a.stats, a.level, a.memo.Count())
	}
	if n < 0 {
		return Move{}
	}
	return a.withLevel(MoveFromIndex(n, size))
}

// SetLevel raises or lowers the search depth. Raising it re-evaluates the
// memoized non-terminal positions of the current board size at the new
// depth, under the normal time budget.
func (a *AIPlayer) SetLevel(level, boardSize int) {
	log.Printf("[ai] %s loading level %d", a.side, level)
	if level > a.level {
		a.beginSearch(GetConfig())
		for _, snap := range a.memo.Snapshot() {
			if snap.Terminal() {
				continue
			}
			board, err := ParseBoardDump(snap.Key)
			if err != nil || board.Size() != boardSize {
				continue
			}
			val := a.minmax(a.side, board, level, winScore, nil)
			a.memoizeKey(snap.Key, a.side, level, val)
			if a.outOfTime() {
				break
			}
		}
	}
	a.level = level
}

// minmax returns the negamax value of board b for player p searched to
// depth d, capped at cutoff. When moves is non-nil it is left holding every
// square index tied at the best value, or empty if the cutoff fired. The
// contents of b are unchanged on return: all exploration happens on a
// scratch copy and every candidate is undone after scoring.
func (a *AIPlayer) minmax(p Side, b BoardReader, d, cutoff int, moves *[]int) int {
	a.stats.Nodes++
	test := NewMutableBoardFrom(b)
	total := test.Size() * test.Size()
	bestVal := loseScore

	legal := make([]int, 0, total)
	for n := 0; n < total; n++ {
		if test.IsLegalMove(p, n) {
			legal = append(legal, n)
		}
	}
	seen := make([]bool, total)
	for _, criterion := range searchTiers {
		for _, n := range legal {
			if seen[n] || !criterion.matches(test, n) {
				continue
			}
			seen[n] = true
			val := a.scoreMove(p, test, d, n, bestVal)
			if a.isCutoff(val, cutoff, moves) {
				return cutoff
			}
			bestVal = updateBest(val, bestVal, n, moves)
		}
		if a.outOfTime() || bestVal == winScore {
			return bestVal
		}
	}
	return bestVal
}

// scoreMove values playing at square n on b: the static evaluation at depth
// zero, otherwise the negated value of the opponent's best reply one ply
// down, pruned against the negated running best. The move is undone before
// returning.
func (a *AIPlayer) scoreMove(p Side, b *MutableBoard, d, n, bestVal int) int {
	b.AddSpot(p, n)
	var result int
	if d == 0 {
		result = a.staticEval(p, b)
	} else {
		result = -a.minmax(p.Opposite(), b, d-1, -bestVal, nil)
		if result == winScore || result == loseScore {
			a.memoize(b, p, d, result)
		}
	}
	b.Undo()
	return result
}

func (a *AIPlayer) isCutoff(val, cutoff int, moves *[]int) bool {
	if val >= cutoff && cutoff != winScore {
		a.stats.Cutoffs++
		if moves != nil {
			*moves = (*moves)[:0]
		}
		return true
	}
	return false
}

func updateBest(val, bestVal, n int, moves *[]int) int {
	if val > bestVal {
		if moves != nil {
			*moves = append((*moves)[:0], n)
		}
		return val
	}
	if val == bestVal && moves != nil {
		*moves = append(*moves, n)
	}
	return bestVal
}

func (a *AIPlayer) randomLegalMove(b BoardReader) int {
	total := b.Size() * b.Size()
	options := make([]int, 0, total)
	for n := 0; n < total; n++ {
		if b.IsLegalMove(a.side, n) {
			options = append(options, n)
		}
	}
	if len(options) == 0 {
		return -1
	}
	return options[frand.Intn(len(options))]
}

func (a *AIPlayer) memoize(b BoardReader, p Side, depth, val int) {
	a.memoizeKey(b.Dump(), p, depth, val)
}

// memoizeKey stores val normalized to my own side; values computed from the
// opponent's perspective are negated first. The table's replacement policy
// keeps deeper results and never disturbs terminal entries.
func (a *AIPlayer) memoizeKey(key string, p Side, depth, val int) {
	if p != a.side {
		val = -val
	}
	a.memo.Store(key, depth, val)
}

func (a *AIPlayer) beginSearch(cfg Config) {
	a.start = time.Now()
	a.timeLimitMs = cfg.AiTimeLimitMs
	a.timeSafetyMs = cfg.AiTimeSafetyMs
	a.checkInterval = cfg.AiTimeCheckInterval
	if a.checkInterval < 1 {
		a.checkInterval = 1
	}
	a.callsSinceTick = 0
	a.timeUp = false
	a.stats = SearchStats{Start: a.start}
}

// outOfTime reports whether the decision budget is spent. The wall clock is
// only sampled every checkInterval calls; between samples the last answer
// stands, so the signal is advisory rather than preemptive.
func (a *AIPlayer) outOfTime() bool {
	if a.timeUp {
		return true
	}
	if a.timeLimitMs <= 0 {
		return false
	}
	a.callsSinceTick++
	if a.callsSinceTick < a.checkInterval {
		return false
	}
	a.callsSinceTick = 0
	budget := time.Duration(a.timeLimitMs-a.timeSafetyMs) * time.Millisecond
	if time.Since(a.start) > budget {
		a.timeUp = true
		a.stats.TimedOut = true
	}
	return a.timeUp
}

func (a *AIPlayer) withLevel(m Move) Move {
	m.Level = a.level
	return m
}
