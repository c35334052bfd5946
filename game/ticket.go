package game

import "github.com/Vmoney23/ScotlandYardAI/graph"

type Ticket int

const (
	Taxi Ticket = iota
	Bus
	Underground
	Secret
	Double
)

// Tickets lists every ticket type.
var Tickets = []Ticket{Taxi, Bus, Underground, Secret, Double}

// travelTickets are the tickets a pursuer can move with.
var travelTickets = []Ticket{Taxi, Bus, Underground}

func (t Ticket) String() string {
	switch t {
	case Taxi:
		return "taxi"
	case Bus:
		return "bus"
	case Underground:
		return "underground"
	case Secret:
		return "secret"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// ForTransport returns the ticket needed to travel along an edge of mode t.
// Boat edges can only be taken with a secret ticket.
func ForTransport(t graph.Transport) Ticket {
	switch t {
	case graph.Taxi:
		return Taxi
	case graph.Bus:
		return Bus
	case graph.Underground:
		return Underground
	default:
		return Secret
	}
}
