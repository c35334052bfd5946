package game

// Colour identifies an agent. Black is always the fugitive.
type Colour int

const (
	Black Colour = iota
	Blue
	Green
	Red
	White
	Yellow
)

// Colours lists every agent colour, fugitive first.
var Colours = []Colour{Black, Blue, Green, Red, White, Yellow}

func (c Colour) IsFugitive() bool {
	return c == Black
}

func (c Colour) String() string {
	switch c {
	case Black:
		return "black"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Red:
		return "red"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}
