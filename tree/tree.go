// Package tree is the game tree a search builds: an arena of nodes, each
// wrapping a state snapshot, joined by edges that carry the move played.
package tree

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/Vmoney23/ScotlandYardAI/game"
)

var (
	ErrUnknownNode  = errors.New("tree: unknown node")
	ErrInconsistent = errors.New("tree: inconsistent")
)

// Unscored marks a node that has not been evaluated yet.
var Unscored = math.NaN()

// NodeID indexes a node in its tree. IDs are only meaningful to the tree
// that issued them.
type NodeID int

type Node struct {
	State  *game.State
	Score  float64
	Degree int // edges touching this node
}

func (n *Node) Scored() bool {
	return !math.IsNaN(n.Score)
}

// Edge joins a parent to the child reached by playing Move.
type Edge struct {
	Parent NodeID
	Child  NodeID
	Move   game.Move
}

// Tree is owned by a single search and is not safe for concurrent use.
type Tree struct {
	nodes []Node
	out   [][]Edge
	in    [][]Edge
}

// New returns a tree holding only a root node for s.
func New(s *game.State) *Tree {
	t := &Tree{}
	t.add(s)
	return t
}

func (t *Tree) add(s *game.State) NodeID {
	t.nodes = append(t.nodes, Node{State: s, Score: Unscored})
	t.out = append(t.out, nil)
	t.in = append(t.in, nil)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) Root() NodeID {
	return 0
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) valid(id NodeID) error {
	if id < 0 || int(id) >= len(t.nodes) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return nil
}

// Node returns the node for id, or nil if the tree never issued it.
func (t *Tree) Node(id NodeID) *Node {
	if t.valid(id) != nil {
		return nil
	}
	return &t.nodes[id]
}

// AddChild creates an unscored node for s below parent.
func (t *Tree) AddChild(parent NodeID, s *game.State, m game.Move) (NodeID, error) {
	if err := t.valid(parent); err != nil {
		return 0, err
	}
	child := t.add(s)
	if err := t.Link(parent, child, m); err != nil {
		return 0, err
	}
	return child, nil
}

// Link adds an edge between two existing nodes and bumps the degree of
// both. AddChild is the only caller that keeps the tree a tree.
func (t *Tree) Link(parent, child NodeID, m game.Move) error {
	if err := t.valid(parent); err != nil {
		return err
	}
	if err := t.valid(child); err != nil {
		return err
	}
	if parent == child {
		return fmt.Errorf("%w: node %d linked to itself", ErrInconsistent, parent)
	}
	e := Edge{Parent: parent, Child: child, Move: m}
	t.out[parent] = append(t.out[parent], e)
	t.in[child] = append(t.in[child], e)
	t.nodes[parent].Degree++
	t.nodes[child].Degree++
	return nil
}

// Children returns the outgoing edges of id in insertion order.
func (t *Tree) Children(id NodeID) []Edge {
	if t.valid(id) != nil {
		return nil
	}
	return append([]Edge(nil), t.out[id]...)
}

// Parent returns the single incoming edge of id. The root, and any node
// with zero or several incoming edges, is an error.
func (t *Tree) Parent(id NodeID) (Edge, error) {
	if err := t.valid(id); err != nil {
		return Edge{}, err
	}
	if n := len(t.in[id]); n != 1 {
		return Edge{}, fmt.Errorf("%w: node %d has %d incoming edges", ErrInconsistent, id, n)
	}
	return t.in[id][0], nil
}

func (t *Tree) SetScore(id NodeID, score float64) {
	if t.valid(id) == nil {
		t.nodes[id].Score = score
	}
}

// Ordered returns the children of id best first: highest score first when
// maximizing, lowest first otherwise. Unscored children go last and ties
// keep insertion order.
func (t *Tree) Ordered(id NodeID, maximizing bool) []Edge {
	edges := t.Children(id)
	slices.SortStableFunc(edges, func(a, b Edge) int {
		sa, sb := t.nodes[a.Child].Score, t.nodes[b.Child].Score
		switch {
		case math.IsNaN(sa) && math.IsNaN(sb):
			return 0
		case math.IsNaN(sa):
			return 1
		case math.IsNaN(sb):
			return -1
		case sa == sb:
			return 0
		case (sa > sb) == maximizing:
			return -1
		default:
			return 1
		}
	})
	return edges
}
