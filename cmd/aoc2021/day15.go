package main

import (
	aoc "github.com/maisem/aoc2021"
)

/*
want=40

1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
*/
func (solver) D15p1(p *aoc.Puzzle) any {
	return lowestRisk(aoc.DigitGrid(p.Lines()))
}

// want=315
func (solver) D15p2(p *aoc.Puzzle) any {
	return lowestRisk(tileRisk(aoc.DigitGrid(p.Lines()), 5))
}

// lowestRisk returns the cheapest path cost from the top left to the
// bottom right corner. The starting cell is never entered, so its risk
// does not count. Every step costs at least 1, so the manhattan distance
// to the corner never overestimates.
func lowestRisk(g aoc.Grid[int]) int {
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	res := aoc.MustGet(aoc.AStar(aoc.Pt{}, aoc.CostNeighbors(g, aoc.Conn4), end.MDist, func(pt aoc.Pt) bool {
		return pt == end
	}))
	return res.Cost
}

// tileRisk repeats g n times in each direction. Each tile step right or
// down adds one to the risk, wrapping from 9 back to 1.
func tileRisk(g aoc.Grid[int], n int) aoc.Grid[int] {
	return g.Tile(n, func(v int, t aoc.Pt) int {
		return (v+t.X+t.Y-1)%9 + 1
	})
}
