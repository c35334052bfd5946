package graph

// Transport is the mode of travel an edge of the board supports.
type Transport int

const (
	Taxi Transport = iota
	Bus
	Underground
	Boat
)

// Transports lists every transport mode in declaration order.
var Transports = []Transport{Taxi, Bus, Underground, Boat}

func (t Transport) String() string {
	switch t {
	case Taxi:
		return "taxi"
	case Bus:
		return "bus"
	case Underground:
		return "underground"
	case Boat:
		return "boat"
	default:
		return "unknown"
	}
}
