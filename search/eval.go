package search

import (
	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/graph"
	"github.com/Vmoney23/ScotlandYardAI/route"
)

// Weights are the terms of the evaluation. Positive values favour the
// fugitive.
type Weights struct {
	Win  float64 `yaml:"win"`
	Loss float64 `yaml:"loss"`

	// Distance multiplies the weight of each pursuer's route to the fugitive.
	Distance     float64 `yaml:"distance"`
	Adjacent     float64 `yaml:"adjacent"`
	AdjacentHops int     `yaml:"adjacent_hops"`
	NextMover    float64 `yaml:"next_mover"` // multiplies Adjacent for the pursuer about to move
	Close        float64 `yaml:"close"`
	CloseHops    int     `yaml:"close_hops"`
	Far          float64 `yaml:"far"`
	FarHops      int     `yaml:"far_hops"`
	Unreachable  float64 `yaml:"unreachable"`

	DeadEnd       float64 `yaml:"dead_end"`
	DeadEndDegree int     `yaml:"dead_end_degree"`
	Open          float64 `yaml:"open"`
	OpenDegree    int     `yaml:"open_degree"`

	SecretBeforeReveal float64 `yaml:"secret_before_reveal"`
	Secret             float64 `yaml:"secret"`
	DoubleBeforeReveal float64 `yaml:"double_before_reveal"`
	Double             float64 `yaml:"double"`
}

func DefaultWeights() Weights {
	return Weights{
		Win:                10000,
		Loss:               -10000,
		Distance:           1,
		Adjacent:           -400,
		AdjacentHops:       1,
		NextMover:          2,
		Close:              -100,
		CloseHops:          2,
		Far:                50,
		FarHops:            5,
		Unreachable:        200,
		DeadEnd:            -60,
		DeadEndDegree:      2,
		Open:               40,
		OpenDegree:         5,
		SecretBeforeReveal: 30,
		Secret:             -10,
		DoubleBeforeReveal: 40,
		Double:             -60,
	}
}

// Evaluator scores states from the fugitive's point of view. Pursuers
// minimize the same score.
type Evaluator struct {
	calc    *route.Calculator
	weights Weights
	chase   route.Weighter
}

func NewEvaluator(calc *route.Calculator, weights Weights) *Evaluator {
	return &Evaluator{
		calc:    calc,
		weights: weights,
		// Pursuers cannot follow a route over water.
		chase: route.Restrict(route.FugitiveWeights, graph.Boat),
	}
}

// Evaluate depends only on s.
func (e *Evaluator) Evaluate(s *game.State) float64 {
	w := e.weights
	if s.IsGameOver() {
		if s.FugitiveWon() {
			return w.Win
		}
		return w.Loss
	}

	fugitive := s.Location(s.Fugitive())
	score := 0.0

	for _, p := range s.Pursuers() {
		path, err := e.calc.Route(s.Location(p), fugitive, e.chase)
		if err != nil {
			score += w.Unreachable
			continue
		}
		score += w.Distance * path.Weight

		switch hops := path.Hops(); {
		case hops <= w.AdjacentHops:
			penalty := w.Adjacent
			if s.CurrentPlayer() == p {
				penalty *= w.NextMover
			}
			score += penalty
		case hops <= w.CloseHops:
			score += w.Close
		case hops > w.FarHops:
			score += w.Far
		}
	}

	switch degree := s.Graph().Degree(fugitive); {
	case degree <= w.DeadEndDegree:
		score += w.DeadEnd
	case degree >= w.OpenDegree:
		score += w.Open
	}

	move, round := s.FugitiveMove()
	if move == nil {
		return score
	}
	for i, leg := range game.Legs(move) {
		if leg.Ticket != game.Secret {
			continue
		}
		if s.IsRevealRound(round + i + 1) {
			score += w.SecretBeforeReveal
		} else {
			score += w.Secret
		}
	}
	if _, ok := move.(game.DoubleMove); ok {
		if s.IsRevealRound(round) {
			score += w.DoubleBeforeReveal
		} else {
			score += w.Double
		}
	}
	return score
}
