package main

import (
	"strings"

	aoc "github.com/maisem/aoc2021"
)

/*
want=739785

Player 1 starting position: 4
Player 2 starting position: 8
*/
func (solver) D21p1(p *aoc.Puzzle) any {
	pos := startingPositions(p)
	var score [2]int
	die, rolls := 0, 0
	roll := func() int {
		die = die%100 + 1
		rolls++
		return die
	}
	for turn := 0; ; turn ^= 1 {
		move := roll() + roll() + roll()
		pos[turn] = (pos[turn]+move-1)%10 + 1
		score[turn] += pos[turn]
		if score[turn] >= 1000 {
			return score[turn^1] * rolls
		}
	}
}

// want=444356092776315
func (solver) D21p2(p *aoc.Puzzle) any {
	pos := startingPositions(p)
	w := diracWinCounts(pos[0], pos[1])
	return max(w.mover, w.other)
}

func startingPositions(p *aoc.Puzzle) [2]int {
	var pos []int
	p.ForLines(func(line string) {
		if line == "" {
			return
		}
		_, v, ok := strings.Cut(line, ": ")
		if !ok {
			p.Warnf("skipping unexpected line %q", line)
			return
		}
		pos = append(pos, aoc.Int(v))
	})
	if len(pos) != 2 {
		panic("want two starting positions")
	}
	return [2]int{pos[0], pos[1]}
}

const diracTarget = 21

// diracRolls is how many of the 27 universes spawned by three rolls of
// the quantum die produce each total.
var diracRolls = [...]struct{ total, universes int }{
	{3, 1}, {4, 3}, {5, 6}, {6, 7}, {7, 6}, {8, 3}, {9, 1},
}

// diracWins counts the universes in which the player about to move
// (mover) and their opponent (other) win.
type diracWins struct {
	mover, other int
}

// diracTable is indexed by [moverPos-1][moverScore][otherPos-1][otherScore].
type diracTable [10][diracTarget][10][diracTarget]diracWins

// diracWinCounts fills the table bottom-up. A turn always raises the
// mover's score, so every state depends only on states with a larger
// combined score, which are filled first.
func diracWinCounts(pos1, pos2 int) diracWins {
	t := new(diracTable)
	for total := 2 * (diracTarget - 1); total >= 0; total-- {
		for ms := max(0, total-(diracTarget-1)); ms <= min(total, diracTarget-1); ms++ {
			os := total - ms
			for mp := 0; mp < 10; mp++ {
				for op := 0; op < 10; op++ {
					var w diracWins
					for _, r := range diracRolls {
						np := (mp + r.total) % 10
						ns := ms + np + 1
						if ns >= diracTarget {
							w.mover += r.universes
							continue
						}
						next := t[op][os][np][ns]
						w.mover += next.other * r.universes
						w.other += next.mover * r.universes
					}
					t[mp][ms][op][os] = w
				}
			}
		}
	}
	return t[pos1-1][0][pos2-1][0]
}
