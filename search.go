package aoc

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"tailscale.com/util/deephash"
)

var (
	// ErrNotFound is returned when a search exhausts its frontier without
	// reaching a goal state.
	ErrNotFound = errors.New("aoc: no reachable state satisfies goal")

	// ErrNegativeCost is returned when a weighted neighbor function yields
	// an edge with a negative cost.
	ErrNegativeCost = errors.New("aoc: negative edge cost")
)

// Path is a sequence of states, starting at the search start.
type Path[S comparable] []S

// Last returns the final state of the path.
func (p Path[S]) Last() S {
	return p[len(p)-1]
}

// RevisitPolicy reports whether next may be appended to a path in which
// each state s already appears visits[s] times.
type RevisitPolicy[S comparable] func(next S, visits map[S]int) bool

// VisitOnce allows each state at most once per path.
func VisitOnce[S comparable](next S, visits map[S]int) bool {
	return visits[next] == 0
}

// AllowRevisit returns a policy under which states for which free reports
// true may be revisited any number of times, and all others at most once.
func AllowRevisit[S comparable](free func(S) bool) RevisitPolicy[S] {
	return func(next S, visits map[S]int) bool {
		return free(next) || visits[next] == 0
	}
}

// AllowOneRepeat is like AllowRevisit, except that a single non-free state
// may appear twice in each path. States listed in never are not re-entered
// once on the path.
func AllowOneRepeat[S comparable](free func(S) bool, never ...S) RevisitPolicy[S] {
	return func(next S, visits map[S]int) bool {
		if free(next) || visits[next] == 0 {
			return true
		}
		if visits[next] > 1 || slices.Contains(never, next) {
			return false
		}
		for s, n := range visits {
			if n > 1 && !free(s) {
				return false
			}
		}
		return true
	}
}

// BreadthFirst explores every state reachable from start and returns the
// minimum number of edges from start to each of them. States are marked
// seen when enqueued, so a state yielded more than once (including
// self-loops) is expanded only once.
//
// The result always contains start at depth 0. If the state space is
// unbounded, so is BreadthFirst; neighbors must limit it.
func BreadthFirst[S comparable](start S, neighbors func(S) iter.Seq[S]) map[S]int {
	return BreadthFirstFrom([]S{start}, neighbors)
}

// BreadthFirstFrom is like BreadthFirst but starts from every state in
// starts at once, each at depth 0. No starts yields an empty map.
func BreadthFirstFrom[S comparable](starts []S, neighbors func(S) iter.Seq[S]) map[S]int {
	depth := make(map[S]int, len(starts))
	var q Queue[S]
	for _, s := range starts {
		if _, ok := depth[s]; ok {
			continue
		}
		depth[s] = 0
		q.Push(s)
	}
	q.While(func(s S) bool {
		d := depth[s] + 1
		for n := range neighbors(s) {
			if _, ok := depth[n]; ok {
				continue
			}
			depth[n] = d
			q.Push(n)
		}
		return true
	})
	return depth
}

// ShortestSteps runs a breadth-first search from start and returns the
// first state satisfying goal along with its depth. It reports false if
// no reachable state satisfies goal.
func ShortestSteps[S comparable](start S, neighbors func(S) iter.Seq[S], goal func(S) bool) (S, int, bool) {
	if goal(start) {
		return start, 0, true
	}
	depth := map[S]int{start: 0}
	q := NewQueue(start)
	for s, ok := q.Pop(); ok; s, ok = q.Pop() {
		d := depth[s] + 1
		for n := range neighbors(s) {
			if _, seen := depth[n]; seen {
				continue
			}
			if goal(n) {
				return n, d, true
			}
			depth[n] = d
			q.Push(n)
		}
	}
	var zero S
	return zero, 0, false
}

// Result is the outcome of a weighted search.
type Result[S comparable, C Number] struct {
	Goal     S       // first goal state finalized
	Cost     C       // accumulated cost from its start to Goal
	Path     Path[S] // start..Goal, not set by Dijkstra
	Expanded int     // number of states finalized
}

// Dijkstra returns the minimum accumulated cost from start to any state
// satisfying goal. neighbors yields each successor along with the cost of
// the edge to it; costs must be non-negative.
//
// If no reachable state satisfies goal, the returned error wraps
// ErrNotFound. A negative edge cost aborts the search with an error
// wrapping ErrNegativeCost.
func Dijkstra[S comparable, C Number](start S, neighbors func(S) iter.Seq2[S, C], goal func(S) bool) (C, error) {
	r, err := bestFirst([]S{start}, neighbors, nil, goal, false)
	return r.Cost, err
}

// DijkstraPath is like Dijkstra but also reconstructs the path taken.
func DijkstraPath[S comparable, C Number](start S, neighbors func(S) iter.Seq2[S, C], goal func(S) bool) (Result[S, C], error) {
	return bestFirst([]S{start}, neighbors, nil, goal, true)
}

// DijkstraFrom is like DijkstraPath but starts from every state in starts
// at cost 0. Result.Path begins at whichever start the cheapest path
// leaves from.
func DijkstraFrom[S comparable, C Number](starts []S, neighbors func(S) iter.Seq2[S, C], goal func(S) bool) (Result[S, C], error) {
	return bestFirst(starts, neighbors, nil, goal, true)
}

// AStar is like DijkstraPath, but orders the frontier by accumulated cost
// plus heuristic(s). The heuristic must not overestimate the remaining
// cost to a goal, or the result may not be the cheapest.
func AStar[S comparable, C Number](start S, neighbors func(S) iter.Seq2[S, C], heuristic func(S) C, goal func(S) bool) (Result[S, C], error) {
	return bestFirst([]S{start}, neighbors, heuristic, goal, true)
}

// bestFirst pops states in order of accumulated cost plus heuristic. A nil
// heuristic makes it Dijkstra. Queued states are moved with PQ.Update when
// a cheaper route to them turns up.
func bestFirst[S comparable, C Number](starts []S, neighbors func(S) iter.Seq2[S, C], heuristic func(S) C, goal func(S) bool, trackPath bool) (Result[S, C], error) {
	var (
		res    Result[S, C]
		cost   = make(map[S]C, len(starts))
		queued = make(map[S]*PQI[S, C])
		parent map[S]S
		q      = MinQueue[S, C]()
	)
	if trackPath {
		parent = make(map[S]S)
	}
	h := func(s S) C {
		if heuristic == nil {
			return 0
		}
		return heuristic(s)
	}
	for _, s := range starts {
		if _, ok := cost[s]; ok {
			continue
		}
		cost[s] = 0
		queued[s] = q.PushValue(s, h(s))
	}
	for q.Len() > 0 {
		s := q.Pop().V
		res.Expanded++
		if goal(s) {
			res.Goal, res.Cost = s, cost[s]
			if trackPath {
				res.Path = walkBack(parent, s)
			}
			return res, nil
		}
		for n, c := range neighbors(s) {
			if c < 0 {
				return res, fmt.Errorf("%w: %v -> %v costs %v", ErrNegativeCost, s, n, c)
			}
			nc := cost[s] + c
			if old, ok := cost[n]; ok && old <= nc {
				continue
			}
			cost[n] = nc
			if trackPath {
				parent[n] = s
			}
			if it := queued[n]; it != nil && it.Index() >= 0 {
				it.P = nc + h(n)
				q.Update(it)
			} else {
				queued[n] = q.PushValue(n, nc+h(n))
			}
		}
	}
	return res, fmt.Errorf("%w: exhausted %d states from %v", ErrNotFound, res.Expanded, starts)
}

// walkBack follows parent links from end until it reaches a state with no
// parent, which is one of the starts.
func walkBack[S comparable](parent map[S]S, end S) Path[S] {
	p := Path[S]{end}
	for cur, ok := parent[end]; ok; cur, ok = parent[cur] {
		p = append(p, cur)
	}
	slices.Reverse(p)
	return p
}

// EnumeratePaths returns every distinct path from start to a state
// satisfying goal. A path stops at the first goal state it reaches. policy
// decides which states may be re-entered; nil means VisitOnce. Self-loops
// are ignored.
//
// The number of paths can be exponential in the size of the graph.
func EnumeratePaths[S comparable](start S, neighbors func(S) iter.Seq[S], goal func(S) bool, policy RevisitPolicy[S]) []Path[S] {
	var out []Path[S]
	walkDistinctPaths(start, neighbors, goal, policy, func(p Path[S]) {
		out = append(out, slices.Clone(p))
	})
	return out
}

// CountPaths returns len(EnumeratePaths(...)) without keeping the paths.
func CountPaths[S comparable](start S, neighbors func(S) iter.Seq[S], goal func(S) bool, policy RevisitPolicy[S]) int {
	n := 0
	walkDistinctPaths(start, neighbors, goal, policy, func(Path[S]) { n++ })
	return n
}

// walkDistinctPaths calls emit once per distinct path. The path passed to
// emit is reused after emit returns.
func walkDistinctPaths[S comparable](start S, neighbors func(S) iter.Seq[S], goal func(S) bool, policy RevisitPolicy[S], emit func(Path[S])) {
	seen := make(map[deephash.Sum]bool)
	walkPaths(start, neighbors, goal, policy, func(p Path[S]) {
		h := deephash.Hash(&p)
		if seen[h] {
			return
		}
		seen[h] = true
		emit(p)
	})
}

// pathFrame is a state on the current path together with the neighbors
// not yet tried from it.
type pathFrame[S comparable] struct {
	state S
	next  []S
}

// walkPaths is a depth-first walk over an explicit stack, one frame per
// state on the current path, so deep paths do not grow the goroutine stack.
func walkPaths[S comparable](start S, neighbors func(S) iter.Seq[S], goal func(S) bool, policy RevisitPolicy[S], emit func(Path[S])) {
	if policy == nil {
		policy = VisitOnce[S]
	}
	path := Path[S]{start}
	if goal(start) {
		emit(path)
		return
	}
	visits := map[S]int{start: 1}
	var stack Stack[*pathFrame[S]]
	push := func(s S) {
		stack.Push(&pathFrame[S]{state: s, next: slices.Collect(neighbors(s))})
	}
	push(start)
	for stack.Len() > 0 {
		f, _ := stack.Peek()
		if len(f.next) == 0 {
			stack.Pop()
			visits[f.state]--
			path = path[:len(path)-1]
			continue
		}
		n := f.next[0]
		f.next = f.next[1:]
		if n == f.state || !policy(n, visits) {
			continue
		}
		visits[n]++
		path = append(path, n)
		if goal(n) {
			emit(path)
			visits[n]--
			path = path[:len(path)-1]
			continue
		}
		push(n)
	}
}
