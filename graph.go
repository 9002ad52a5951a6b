package aoc

import (
	"iter"

	"golang.org/x/exp/maps"
)

// Graph is an undirected graph with integer edge weights.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func initMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddNode(a K) {
	initMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge connects a and b with an edge of length dist, adding both nodes.
// Self-loops are dropped; only the node is added.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	if a == b {
		g.AddNode(a)
		return
	}
	initMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// Keys returns the nodes of g in no particular order.
func (g *Graph[K]) Keys() []K {
	return maps.Keys(g.Nodes)
}

// Neighbors yields the nodes adjacent to a. Order is unspecified.
func (g *Graph[K]) Neighbors(a K) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range g.Edges[a] {
			if !yield(k) {
				return
			}
		}
	}
}

// WeightedNeighbors yields the nodes adjacent to a with the edge weight.
func (g *Graph[K]) WeightedNeighbors(a K) iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for k, d := range g.Edges[a] {
			if !yield(k, d) {
				return
			}
		}
	}
}

// ReachableNodes returns the nodes connected to a, including a itself. It
// is empty if a is not in g.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	if !g.Nodes[a] {
		return visited
	}
	for k := range BreadthFirst(a, g.Neighbors) {
		visited[k] = true
	}
	return visited
}

// NumPathsWithRestriction counts the paths from start to end in which
// every step is allowed by canVisit.
func (g *Graph[K]) NumPathsWithRestriction(start, end K, canVisit RevisitPolicy[K]) int {
	return CountPaths(start, g.Neighbors, isNode(end), canVisit)
}

// NumPaths counts the paths from start to end that visit no node twice.
func (g *Graph[K]) NumPaths(start, end K) int {
	return g.NumPathsWithRestriction(start, end, VisitOnce[K])
}

// Paths is like NumPathsWithRestriction but returns the paths.
func (g *Graph[K]) Paths(start, end K, canVisit RevisitPolicy[K]) []Path[K] {
	return EnumeratePaths(start, g.Neighbors, isNode(end), canVisit)
}

// ShortestPath returns the length and nodes of the cheapest path from a
// to b. The error wraps ErrNotFound if b is unreachable.
func (g *Graph[K]) ShortestPath(a, b K) (int, Path[K], error) {
	r, err := DijkstraPath(a, g.WeightedNeighbors, isNode(b))
	if err != nil {
		return 0, nil, err
	}
	return r.Cost, r.Path, nil
}

func isNode[K comparable](want K) func(K) bool {
	return func(k K) bool { return k == want }
}
