package main

import (
	"strings"

	aoc "github.com/maisem/aoc2021"
)

/*
want=10

start-A
start-b
A-c
A-b
b-d
A-end
b-end
*/
func (solver) D12p1(p *aoc.Puzzle) any {
	g := parseCaves(p)
	return g.NumPathsWithRestriction("start", "end", aoc.AllowRevisit(isBigCave))
}

// want=36
func (solver) D12p2(p *aoc.Puzzle) any {
	g := parseCaves(p)
	return g.NumPathsWithRestriction("start", "end", aoc.AllowOneRepeat(isBigCave, "start"))
}

func parseCaves(p *aoc.Puzzle) *aoc.Graph[string] {
	var g aoc.Graph[string]
	p.ForLines(func(line string) {
		if line == "" {
			return
		}
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			p.Warnf("skipping malformed tunnel %q", line)
			return
		}
		g.AddEdge(a, b, 1)
	})
	p.Debugf("caves: %v", g.Keys())
	return &g
}

func isBigCave(c string) bool {
	return strings.ToUpper(c) == c
}
