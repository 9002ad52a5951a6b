package main

import (
	aoc "github.com/maisem/aoc2021"
)

/*
want=15

2199943210
3987894921
9856789892
8767896789
9899965678
*/
func (solver) D9p1(p *aoc.Puzzle) any {
	g := aoc.DigitGrid(p.Lines())
	var risks []int
	for _, pt := range lowPoints(g) {
		risks = append(risks, g.At(pt)+1)
	}
	return aoc.Sum(risks...)
}

// want=1134
func (solver) D9p2(p *aoc.Puzzle) any {
	g := aoc.DigitGrid(p.Lines())
	isWall := func(v int) bool { return v == 9 }

	sizes := aoc.MaxQueue[aoc.Pt, int]()
	for _, pt := range lowPoints(g) {
		basin := g.ToGraph(pt, aoc.Conn4, isWall)
		sizes.PushValue(pt, len(basin.ReachableNodes(pt)))
	}
	if sizes.Len() < 3 {
		p.Warnf("only %d basins", sizes.Len())
	}
	var largest []int
	for len(largest) < 3 && sizes.Len() > 0 {
		b := sizes.Pop()
		p.Debugf("basin at %v has %d cells", b.V, b.P)
		largest = append(largest, b.P)
	}
	return aoc.Product(largest...)
}

// lowPoints returns the cells lower than all of their neighbors.
func lowPoints(g aoc.Grid[int]) []aoc.Pt {
	var out []aoc.Pt
	for pt, v := range g.All() {
		low := true
		for n := range g.Adjacent(pt, aoc.Conn4) {
			if g.At(n) <= v {
				low = false
				break
			}
		}
		if low {
			out = append(out, pt)
		}
	}
	return out
}
