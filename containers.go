package aoc

import (
	"container/heap"
	"fmt"
	"slices"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// PQI is an item in a PQ. V is the payload and P its priority.
type PQI[T any, N Number] struct {
	V   T
	P   N
	ix  int
	seq uint64
}

func (i *PQI[T, N]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index reports the position of i in its queue, or -1 once popped.
func (i *PQI[T, N]) Index() int {
	return i.ix
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T any, N Number]() *PQ[T, N] {
	return &PQ[T, N]{
		pq: pq[T, N]{
			min: true,
		},
	}
}

// MaxQueue returns a queue that pops the highest priority first.
func MaxQueue[T any, N Number]() *PQ[T, N] {
	return &PQ[T, N]{}
}

// PQ is a priority queue. Items of equal priority pop in the order they
// were pushed.
type PQ[T any, N Number] struct {
	pq   pq[T, N]
	next uint64
}

func (pq *PQ[T, N]) Push(v *PQI[T, N]) {
	v.seq = pq.next
	pq.next++
	heap.Push(&pq.pq, v)
}

// PushValue wraps v with priority p and pushes it.
func (pq *PQ[T, N]) PushValue(v T, p N) *PQI[T, N] {
	i := &PQI[T, N]{V: v, P: p}
	pq.Push(i)
	return i
}

func (pq *PQ[T, N]) Pop() *PQI[T, N] {
	return heap.Pop(&pq.pq).(*PQI[T, N])
}

func (pq *PQ[T, N]) Update(v *PQI[T, N]) {
	heap.Fix(&pq.pq, v.ix)
}

func (pq *PQ[T, N]) Len() int {
	return pq.pq.Len()
}

type pq[T any, N Number] struct {
	q   []*PQI[T, N]
	min bool
}

func (pq pq[T, N]) Len() int { return len(pq.q) }

func (pq pq[T, N]) Less(i, j int) bool {
	a, b := pq.q[i], pq.q[j]
	if a.P == b.P {
		return a.seq < b.seq
	}
	if pq.min {
		return a.P < b.P
	}
	return a.P > b.P
}

func (pq pq[T, N]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (pq *pq[T, N]) Push(x any) {
	n := len(pq.q)
	i := x.(*PQI[T, N])
	i.ix = n
	pq.q = append(pq.q, i)
}

func (pq *pq[T, N]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1   // for safety

	pq.q = old[0 : n-1]
	return item
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: slices.Clone(in),
	}
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	q    []T
	head int
}

func (q *Queue[T]) Len() int {
	return len(q.q) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == len(q.q) {
		return zero, false
	}
	v := q.q[q.head]
	q.q[q.head] = zero
	q.head++
	if q.head == len(q.q) {
		// Drained; reuse the backing array.
		q.q = q.q[:0]
		q.head = 0
	}
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
