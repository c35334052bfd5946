package route

import (
	"math"

	"github.com/Vmoney23/ScotlandYardAI/graph"
)

// Weighter maps a transport mode to a non-negative edge weight. A weight of
// math.Inf(1) makes edges of that mode impassable.
type Weighter func(graph.Transport) float64

// FugitiveWeights weighs scarce modes high: a route that needs an
// underground or boat hop is expensive to follow.
func FugitiveWeights(t graph.Transport) float64 {
	switch t {
	case graph.Taxi:
		return 1
	case graph.Bus:
		return 2
	case graph.Underground:
		return 4
	case graph.Boat:
		return 8
	default:
		return math.Inf(1)
	}
}

// PursuerWeights is the inverse policy. Pursuers cannot take the boat.
func PursuerWeights(t graph.Transport) float64 {
	switch t {
	case graph.Taxi:
		return 8
	case graph.Bus:
		return 4
	case graph.Underground:
		return 2
	default:
		return math.Inf(1)
	}
}

// Restrict returns w with the given modes made impassable.
func Restrict(w Weighter, modes ...graph.Transport) Weighter {
	return func(t graph.Transport) float64 {
		for _, m := range modes {
			if t == m {
				return math.Inf(1)
			}
		}
		return w(t)
	}
}

// Uniform weighs every mode 1, so path weight equals hop count.
func Uniform(graph.Transport) float64 {
	return 1
}
