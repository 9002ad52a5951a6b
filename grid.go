package aoc

import (
	"iter"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Connectivity selects which cells count as adjacent.
type Connectivity int

const (
	// Conn4 is the four cardinal neighbors.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Adjacent returns the neighbors of p under c, scanning the 3x3 block
// around p row by row. No bounds are applied, so callers on a finite grid
// must filter the result (see Bounds.Adjacent and Grid.Adjacent).
func (p Pt2[T]) Adjacent(c Connectivity) iter.Seq[Pt2[T]] {
	return func(yield func(Pt2[T]) bool) {
		for y := T(-1); y <= 1; y++ {
			for x := T(-1); x <= 1; x++ {
				if x == 0 && y == 0 {
					continue
				}
				if c == Conn4 && x != 0 && y != 0 {
					continue
				}
				if !yield(Pt2[T]{p.X + x, p.Y + y}) {
					return
				}
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Bounds is the half-open rectangle [Min, Max).
type Bounds struct {
	Min, Max Pt
}

func (b Bounds) Contains(p Pt) bool {
	return p.X >= b.Min.X && p.Y >= b.Min.Y && p.X < b.Max.X && p.Y < b.Max.Y
}

// Adjacent is like Pt.Adjacent but only yields points within b.
func (b Bounds) Adjacent(p Pt, c Connectivity) iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		for n := range p.Adjacent(c) {
			if b.Contains(n) && !yield(n) {
				return
			}
		}
	}
}

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.Bounds().Contains(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// DigitGrid parses lines of decimal digits into a grid. Empty lines are
// skipped.
func DigitGrid(lines []string) Grid[int] {
	var g Grid[int]
	for _, l := range lines {
		if l == "" {
			continue
		}
		g = append(g, Digits(l))
	}
	return g
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

func (g Grid[T]) Bounds() Bounds {
	return Bounds{Max: g.Size()}
}

// All yields every cell in row-major order.
func (g Grid[T]) All() iter.Seq2[Pt, T] {
	return func(yield func(Pt, T) bool) {
		for y, row := range g {
			for x, v := range row {
				if !yield(Pt{x, y}, v) {
					return
				}
			}
		}
	}
}

// Adjacent yields the in-bounds neighbors of p.
func (g Grid[T]) Adjacent(p Pt, c Connectivity) iter.Seq[Pt] {
	return g.Bounds().Adjacent(p, c)
}

// Walkable returns a neighbor function for BreadthFirst and friends that
// steps between adjacent cells when ok(from, to) holds for their values.
// A nil ok allows every step.
func (g Grid[T]) Walkable(c Connectivity, ok func(from, to T) bool) func(Pt) iter.Seq[Pt] {
	return func(p Pt) iter.Seq[Pt] {
		return func(yield func(Pt) bool) {
			for n := range g.Adjacent(p, c) {
				if ok != nil && !ok(g.At(p), g.At(n)) {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}

// CostNeighbors returns a neighbor function for Dijkstra in which stepping
// onto a cell costs that cell's value.
func CostNeighbors[T Number](g Grid[T], c Connectivity) func(Pt) iter.Seq2[Pt, T] {
	return func(p Pt) iter.Seq2[Pt, T] {
		return func(yield func(Pt, T) bool) {
			for n := range g.Adjacent(p, c) {
				if !yield(n, g.At(n)) {
					return
				}
			}
		}
	}
}

func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}

// FloodFill returns the depth of every cell reachable from start through
// steps allowed by ok (see Walkable). A start outside the grid, which
// includes any start on an empty grid, yields an empty map.
func (g Grid[T]) FloodFill(start Pt, c Connectivity, ok func(from, to T) bool) map[Pt]int {
	if _, in := g.AtOk(start); !in {
		return map[Pt]int{}
	}
	return BreadthFirst(start, g.Walkable(c, ok))
}

// Tile repeats g n times in each direction. f maps a source value to its
// value in the tile at offset t, where t counts tiles, not cells.
func (g Grid[T]) Tile(n int, f func(v T, t Pt) T) Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.X*n, size.Y*n)
	for p := range out.All() {
		src := g.At(Pt{p.X % size.X, p.Y % size.Y})
		out.Set(p, f(src, Pt{p.X / size.X, p.Y / size.Y}))
	}
	return out
}

// ToGraph converts the cells reachable from start into a graph with unit
// edges. If disallowed is not nil, cells for which it returns true are
// left out. A start outside the grid yields an empty graph.
func (grid Grid[T]) ToGraph(start Pt, c Connectivity, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	cells := grid.FloodFill(start, c, func(_, to T) bool {
		return disallowed == nil || !disallowed(to)
	})
	for p1 := range cells {
		g.AddNode(p1)
		for p2 := range grid.Adjacent(p1, c) {
			if _, ok := cells[p2]; ok {
				g.AddEdge(p1, p2, 1)
			}
		}
	}
	return g
}
