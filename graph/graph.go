// Package graph holds the static transport board: locations connected by
// edges labelled with a transport mode.
//
// A Graph is built once and then only read. Read methods never mutate, so a
// finished Graph can be shared by any number of goroutines without locking.
package graph

import (
	"errors"
	"fmt"
)

var (
	ErrNodeNotFound  = errors.New("graph: node not found")
	ErrDuplicateNode = errors.New("graph: duplicate node")
	ErrInvalidEdge   = errors.New("graph: invalid edge")
)

// Edge connects two locations by one transport mode. Weight is only set on
// derived graphs, such as shortest-path trees.
type Edge struct {
	From      int
	To        int
	Transport Transport
	Weight    float64
}

// Reversed returns the same connection seen from its other endpoint.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Transport: e.Transport, Weight: e.Weight}
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%s->%d", e.From, e.Transport, e.To)
}

// Graph is a set of locations and typed connections between them.
type Graph struct {
	directed bool
	nodes    []int
	index    map[int]int    // node -> position in nodes
	out      map[int][]Edge // edges leaving a node (both orientations if undirected)
	in       map[int][]Edge // edges entering a node, directed graphs only
	edges    []Edge
}

// New returns an empty undirected graph, the shape of the game board.
func New() *Graph {
	return newGraph(false)
}

// NewDirected returns an empty directed graph, used for derived results.
func NewDirected() *Graph {
	return newGraph(true)
}

func newGraph(directed bool) *Graph {
	return &Graph{
		directed: directed,
		index:    make(map[int]int),
		out:      make(map[int][]Edge),
		in:       make(map[int][]Edge),
	}
}

// AddNode adds a location to the graph.
func (g *Graph) AddNode(n int) error {
	if _, ok := g.index[n]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, n)
	}
	g.index[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return nil
}

// AddEdge connects two existing locations with the given transport.
func (g *Graph) AddEdge(from, to int, t Transport) error {
	return g.AddWeightedEdge(from, to, t, 0)
}

// AddWeightedEdge is AddEdge with an explicit weight.
func (g *Graph) AddWeightedEdge(from, to int, t Transport, weight float64) error {
	if !g.HasNode(from) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	if from == to {
		return fmt.Errorf("%w: self loop at %d", ErrInvalidEdge, from)
	}
	if weight < 0 {
		return fmt.Errorf("%w: negative weight %v on %d-%d", ErrInvalidEdge, weight, from, to)
	}

	e := Edge{From: from, To: to, Transport: t, Weight: weight}
	g.edges = append(g.edges, e)
	g.out[from] = append(g.out[from], e)
	if g.directed {
		g.in[to] = append(g.in[to], e)
	} else {
		g.out[to] = append(g.out[to], e.Reversed())
	}
	return nil
}

func (g *Graph) Directed() bool {
	return g.directed
}

func (g *Graph) HasNode(n int) bool {
	_, ok := g.index[n]
	return ok
}

// Nodes returns the locations in insertion order.
func (g *Graph) Nodes() []int {
	nodes := make([]int, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Edges returns every edge once, in insertion order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// EdgesFrom returns the edges leaving n. For undirected graphs every
// incident edge is returned with From set to n.
func (g *Graph) EdgesFrom(n int) []Edge {
	return g.out[n]
}

// EdgesTo returns the edges entering n. For undirected graphs this is
// EdgesFrom with each edge reversed.
func (g *Graph) EdgesTo(n int) []Edge {
	if g.directed {
		return g.in[n]
	}
	edges := make([]Edge, 0, len(g.out[n]))
	for _, e := range g.out[n] {
		edges = append(edges, e.Reversed())
	}
	return edges
}

// EdgesBetween returns the edges from a to b, one per transport mode that
// links them.
func (g *Graph) EdgesBetween(a, b int) []Edge {
	var edges []Edge
	for _, e := range g.out[a] {
		if e.To == b {
			edges = append(edges, e)
		}
	}
	return edges
}

// Neighbours returns the distinct locations reachable in one hop from n,
// in edge insertion order.
func (g *Graph) Neighbours(n int) []int {
	seen := make(map[int]bool)
	var neighbours []int
	for _, e := range g.out[n] {
		if !seen[e.To] {
			seen[e.To] = true
			neighbours = append(neighbours, e.To)
		}
	}
	return neighbours
}

// Degree is the number of distinct locations one hop away from n.
func (g *Graph) Degree(n int) int {
	return len(g.Neighbours(n))
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
