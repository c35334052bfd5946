// Package board holds the built-in demo board and its starting rules.
package board

import (
	"fmt"

	"github.com/Vmoney23/ScotlandYardAI/game"
	"github.com/Vmoney23/ScotlandYardAI/graph"
)

const (
	Locations   = 20
	Rounds      = 12
	MaxPursuers = 5
)

// Demo builds the demo board. Every call returns a new graph.
func Demo() *graph.Graph {
	g := graph.New()
	for n := 1; n <= Locations; n++ {
		if err := g.AddNode(n); err != nil {
			panic(err)
		}
	}
	for _, link := range demoLinks {
		if err := g.AddEdge(link.from, link.to, link.transport); err != nil {
			panic(fmt.Sprintf("bad demo board: %v", err))
		}
	}
	return g
}

// DemoSetup places the fugitive and the given number of pursuers on the
// demo board with the standard ticket allowance.
func DemoSetup(pursuers int) (game.Setup, error) {
	if pursuers < 1 || pursuers > MaxPursuers {
		return game.Setup{}, fmt.Errorf("%w: %d pursuers, want 1 to %d", game.ErrInvalidView, pursuers, MaxPursuers)
	}

	setup := game.Setup{
		Players:   []game.Colour{game.Black},
		Locations: map[game.Colour]int{game.Black: fugitiveStart},
		Tickets:   map[game.Colour]map[game.Ticket]int{game.Black: allowance(fugitiveTickets)},
		Rounds:    make([]bool, Rounds+1),
	}
	for i := 0; i < pursuers; i++ {
		c := game.Colours[i+1]
		setup.Players = append(setup.Players, c)
		setup.Locations[c] = pursuerStarts[i]
		setup.Tickets[c] = allowance(pursuerTickets)
	}
	for _, r := range revealRounds {
		setup.Rounds[r] = true
	}
	return setup, nil
}

func allowance(tickets map[game.Ticket]int) map[game.Ticket]int {
	held := make(map[game.Ticket]int, len(tickets))
	for t, n := range tickets {
		held[t] = n
	}
	return held
}

// GLOBAL DATA

type link struct {
	from, to  int
	transport graph.Transport
}

var demoLinks = []link{
	// Taxi ring
	{1, 2, graph.Taxi}, {2, 3, graph.Taxi}, {3, 4, graph.Taxi}, {4, 5, graph.Taxi},
	{5, 6, graph.Taxi}, {6, 7, graph.Taxi}, {7, 8, graph.Taxi}, {8, 9, graph.Taxi},
	{9, 10, graph.Taxi}, {10, 11, graph.Taxi}, {11, 12, graph.Taxi}, {12, 13, graph.Taxi},
	{13, 14, graph.Taxi}, {14, 15, graph.Taxi}, {15, 16, graph.Taxi}, {16, 17, graph.Taxi},
	{17, 18, graph.Taxi}, {18, 19, graph.Taxi}, {19, 20, graph.Taxi}, {20, 1, graph.Taxi},
	// Taxi shortcuts
	{3, 18, graph.Taxi}, {6, 15, graph.Taxi}, {8, 13, graph.Taxi},
	// Bus
	{1, 5, graph.Bus}, {5, 9, graph.Bus}, {9, 13, graph.Bus}, {13, 17, graph.Bus},
	{17, 1, graph.Bus}, {3, 7, graph.Bus}, {11, 15, graph.Bus},
	// Underground
	{1, 9, graph.Underground}, {9, 17, graph.Underground}, {5, 13, graph.Underground},
	// Boat
	{2, 12, graph.Boat}, {10, 20, graph.Boat},
}

var fugitiveStart = 14

var pursuerStarts = []int{1, 5, 9, 17, 3}

var revealRounds = []int{3, 8, 12}

var fugitiveTickets = map[game.Ticket]int{
	game.Taxi:        4,
	game.Bus:         3,
	game.Underground: 3,
	game.Secret:      5,
	game.Double:      2,
}

var pursuerTickets = map[game.Ticket]int{
	game.Taxi:        10,
	game.Bus:         8,
	game.Underground: 4,
}
