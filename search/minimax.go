// Package search picks moves with a depth-bounded minimax search using
// alpha-beta pruning over an explicit game tree.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Vmoney23/ScotlandYardAI/experiments/metrics"
	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/route"
	"github.com/Vmoney23/ScotlandYardAI/tree"
)

const (
	DefaultDepth      = 3
	DefaultNodeBudget = 200000
)

var (
	ErrNoMoves        = errors.New("search: no moves to choose from")
	ErrBudgetExceeded = errors.New("search: budget exceeded")
)

type Option func(m *Minimax)

type Minimax struct {
	depth      int
	duration   time.Duration
	nodeBudget int
	pruning    bool
	weights    Weights
	metrics    metrics.Collector
}

// WithDepth sets the deepest iteration, in plies.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithDuration bounds the wall-clock time of one search.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithNodeBudget bounds the number of tree nodes one search may create.
func WithNodeBudget(nodes int) Option {
	return func(m *Minimax) {
		if nodes > 0 {
			m.nodeBudget = nodes
		}
	}
}

func WithWeights(weights Weights) Option {
	return func(m *Minimax) {
		m.weights = weights
	}
}

// WithoutPruning searches every branch. Only useful to check pruning.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      DefaultDepth,
		nodeBudget: DefaultNodeBudget,
		pruning:    true,
		weights:    DefaultWeights(),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Metrics reports the counters of the most recent search. It is empty
// unless WithMetrics was given.
func (m *Minimax) Metrics() metrics.SearchMetric {
	return m.metrics.Complete()
}

// Result is the outcome of the deepest completed iteration.
type Result struct {
	Move  game.Move
	Score float64
	Depth int // 0 if not even depth 1 completed
}

// FindMove returns one of moves for the current player of s. When the
// budget runs out the best move of the last completed iteration is
// returned, or the first move if none completed.
func (m *Minimax) FindMove(ctx context.Context, s *game.State, moves []game.Move) (game.Move, metrics.SearchMetric, error) {
	r, err := m.Search(ctx, s, moves)
	metric := m.metrics.Complete()
	if err != nil {
		return nil, metric, err
	}
	return r.Move, metric, nil
}

// Search runs iterative deepening from depth 1 up to the configured depth.
// The root's children are restricted to moves. s is not modified.
func (m *Minimax) Search(ctx context.Context, s *game.State, moves []game.Move) (Result, error) {
	if len(moves) == 0 {
		return Result{}, ErrNoMoves
	}
	m.metrics.Start()
	if m.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	sr := &search{
		ctx:     ctx,
		eval:    NewEvaluator(route.NewCalculator(s.Graph()), m.weights),
		budget:  m.nodeBudget,
		pruning: m.pruning,
		metrics: m.metrics,
	}

	best := Result{Move: moves[0]}
	for depth := 1; depth <= m.depth; depth++ {
		move, score, err := sr.run(s.Clone(), moves, depth)
		if errors.Is(err, ErrBudgetExceeded) {
			m.metrics.SetExhausted(true)
			if best.Depth == 0 {
				log.Warn().Err(err).Msgf("falling back to %s", best.Move)
			} else {
				log.Debug().Err(err).Msgf("stopping at depth %d", best.Depth)
			}
			break
		}
		if err != nil {
			return Result{}, err
		}

		best = Result{Move: move, Score: score, Depth: depth}
		m.metrics.SetDepth(depth)
		log.Debug().Int("depth", depth).Float64("score", score).Int("nodes", sr.nodes).Msgf("best move %s", move)
	}
	return best, nil
}

// search holds what one call to Search shares across its iterations.
type search struct {
	ctx     context.Context
	eval    *Evaluator
	budget  int
	nodes   int
	pruning bool
	metrics metrics.Collector

	tree     *tree.Tree
	bestMove game.Move
}

// run searches a fresh tree rooted at root to the given depth.
func (sr *search) run(root *game.State, moves []game.Move, depth int) (game.Move, float64, error) {
	sr.tree = tree.New(root)
	sr.bestMove = nil
	score, err := sr.alphaBeta(sr.tree.Root(), moves, depth, math.Inf(-1), math.Inf(1))
	if err != nil {
		return nil, 0, err
	}
	if sr.bestMove == nil { // root was terminal
		return moves[0], score, nil
	}
	return sr.bestMove, score, nil
}

func (sr *search) check() error {
	if err := sr.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBudgetExceeded, err)
	}
	if sr.nodes >= sr.budget {
		return fmt.Errorf("%w: %d nodes", ErrBudgetExceeded, sr.nodes)
	}
	return nil
}

func (sr *search) evaluate(s *game.State) float64 {
	sr.metrics.AddEvaluation()
	return sr.eval.Evaluate(s)
}

// alphaBeta resolves the score of id. moves overrides the legal moves of
// the node's state and is only set for the root, whose best move is
// recorded as it is found.
func (sr *search) alphaBeta(id tree.NodeID, moves []game.Move, depth int, alpha, beta float64) (float64, error) {
	if err := sr.check(); err != nil {
		return 0, err
	}

	t := sr.tree
	s := t.Node(id).State
	isRoot := id == t.Root()
	if !isRoot {
		moves = s.LegalMoves(s.CurrentPlayer())
	}

	if depth == 0 || len(moves) == 0 || s.IsGameOver() {
		score := sr.evaluate(s)
		t.SetScore(id, score)
		return score, nil
	}

	for _, move := range moves {
		child := s.Clone()
		if err := child.Apply(move); err != nil {
			return 0, err
		}
		cid, err := t.AddChild(id, child, move)
		if err != nil {
			return 0, err
		}
		sr.nodes++
		sr.metrics.AddNode()
		// Provisional, only used to order the children.
		t.SetScore(cid, sr.evaluate(child))
	}

	maximizing := s.CurrentPlayer().IsFugitive()
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}

	for _, e := range t.Ordered(id, maximizing) {
		if _, err := t.Parent(e.Child); err != nil {
			return 0, err
		}
		score, err := sr.alphaBeta(e.Child, nil, depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}

		if maximizing {
			if score > best {
				best = score
				if isRoot {
					sr.bestMove = e.Move
				}
			}
			alpha = math.Max(alpha, best)
		} else {
			if score < best {
				best = score
				if isRoot {
					sr.bestMove = e.Move
				}
			}
			beta = math.Min(beta, best)
		}

		if sr.pruning && beta <= alpha {
			sr.metrics.AddCutoff()
			break
		}
	}

	t.SetScore(id, best)
	return best, nil
}
