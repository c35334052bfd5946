// Package route computes minimum-weight journeys over the transport graph.
//
// The weighting policy is passed per call, so one Calculator serves callers
// that value transport modes differently.
package route

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/Vmoney23/ScotlandYardAI/graph"
)

var (
	ErrNoPath         = errors.New("route: destination unreachable")
	ErrNegativeWeight = errors.New("route: negative weight")
	ErrNilWeighter    = errors.New("route: nil weighter")
)

// Path is an ordered sequence of edges from a source to a destination.
type Path struct {
	Edges  []graph.Edge
	Weight float64
}

// Hops is the number of edges travelled.
func (p Path) Hops() int {
	return len(p.Edges)
}

// Calculator runs Dijkstra's algorithm over a fixed graph. It holds no
// mutable state and may be used from several goroutines.
type Calculator struct {
	g *graph.Graph
}

func NewCalculator(g *graph.Graph) *Calculator {
	return &Calculator{g: g}
}

func (c *Calculator) Graph() *graph.Graph {
	return c.g
}

// Route returns a minimum-weight path from src to dst under w. The path is
// empty when src == dst. Ties between equal-weight routes go to the one
// relaxed first, which follows edge insertion order.
func (c *Calculator) Route(src, dst int, w Weighter) (Path, error) {
	if !c.g.HasNode(dst) {
		return Path{}, fmt.Errorf("%w: destination %d", graph.ErrNodeNotFound, dst)
	}
	r, err := c.run(src, w)
	if err != nil {
		return Path{}, err
	}
	if src == dst {
		return Path{}, nil
	}
	if math.IsInf(r.dist[dst], 1) {
		return Path{}, fmt.Errorf("%w: %d to %d", ErrNoPath, src, dst)
	}

	// Backtrack from the destination along best predecessor edges.
	var reversed []graph.Edge
	for at := dst; at != src; {
		e := r.prev[at]
		reversed = append(reversed, e)
		at = e.From
	}
	edges := make([]graph.Edge, len(reversed))
	for i, e := range reversed {
		edges[len(reversed)-1-i] = e
	}
	return Path{Edges: edges, Weight: r.dist[dst]}, nil
}

// Distance is the weight of the best route from src to dst.
func (c *Calculator) Distance(src, dst int, w Weighter) (float64, error) {
	p, err := c.Route(src, dst, w)
	if err != nil {
		return 0, err
	}
	return p.Weight, nil
}

// Tree returns the shortest-path tree rooted at src as a directed graph.
// Each reachable node other than src has exactly one outgoing edge, pointing
// at its best predecessor and carrying the weight of that hop.
func (c *Calculator) Tree(src int, w Weighter) (*graph.Graph, error) {
	r, err := c.run(src, w)
	if err != nil {
		return nil, err
	}

	t := graph.NewDirected()
	for _, n := range c.g.Nodes() {
		if !math.IsInf(r.dist[n], 1) {
			if err := t.AddNode(n); err != nil {
				return nil, err
			}
		}
	}
	for _, n := range t.Nodes() {
		if n == src {
			continue
		}
		e := r.prev[n]
		if err := t.AddWeightedEdge(n, e.From, e.Transport, e.Weight); err != nil {
			return nil, err
		}
	}
	return t, nil
}

type result struct {
	dist map[int]float64
	prev map[int]graph.Edge // edge into node on its best path, Weight set
}

func (c *Calculator) run(src int, w Weighter) (result, error) {
	if w == nil {
		return result{}, ErrNilWeighter
	}
	if !c.g.HasNode(src) {
		return result{}, fmt.Errorf("%w: source %d", graph.ErrNodeNotFound, src)
	}
	for _, t := range graph.Transports {
		if w(t) < 0 {
			return result{}, fmt.Errorf("%w: %s=%v", ErrNegativeWeight, t, w(t))
		}
	}

	nodes := c.g.Nodes()
	r := result{
		dist: make(map[int]float64, len(nodes)),
		prev: make(map[int]graph.Edge, len(nodes)),
	}
	for _, n := range nodes {
		r.dist[n] = math.Inf(1)
	}
	r.dist[src] = 0

	visited := make(map[int]bool, len(nodes))
	pq := make(queue, 0, len(nodes))
	seq := 0
	heap.Push(&pq, &item{node: src, dist: 0, seq: seq})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*item)
		if visited[it.node] {
			continue // stale entry
		}
		visited[it.node] = true

		for _, e := range c.g.EdgesFrom(it.node) {
			weight := w(e.Transport)
			if math.IsInf(weight, 1) || visited[e.To] {
				continue
			}
			if d := it.dist + weight; d < r.dist[e.To] {
				r.dist[e.To] = d
				e.Weight = weight
				r.prev[e.To] = e
				seq++
				heap.Push(&pq, &item{node: e.To, dist: d, seq: seq})
			}
		}
	}
	return r, nil
}

type item struct {
	node int
	dist float64
	seq  int
}

// queue is a min-heap on distance, ties broken by push order.
type queue []*item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(*item)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}
