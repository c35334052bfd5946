package game

import "fmt"

// Move is one of TicketMove, DoubleMove or PassMove. All variants are
// comparable values, so moves can be used as map keys and compared with ==.
type Move interface {
	Mover() Colour
	String() string
	isMove()
}

// TicketMove spends one ticket to travel one hop.
type TicketMove struct {
	Colour Colour
	Ticket Ticket
	Target int
}

// DoubleMove is two chained ticket moves made on one double ticket.
type DoubleMove struct {
	Colour Colour
	First  TicketMove
	Second TicketMove
}

// PassMove is only offered to a pursuer that cannot travel.
type PassMove struct {
	Colour Colour
}

func (m TicketMove) Mover() Colour { return m.Colour }
func (m DoubleMove) Mover() Colour { return m.Colour }
func (m PassMove) Mover() Colour   { return m.Colour }

func (TicketMove) isMove() {}
func (DoubleMove) isMove() {}
func (PassMove) isMove()   {}

func (m TicketMove) String() string {
	return fmt.Sprintf("%s %s->%d", m.Colour, m.Ticket, m.Target)
}

func (m DoubleMove) String() string {
	return fmt.Sprintf("%s double %s->%d %s->%d", m.Colour, m.First.Ticket, m.First.Target, m.Second.Ticket, m.Second.Target)
}

func (m PassMove) String() string {
	return fmt.Sprintf("%s pass", m.Colour)
}

// Legs returns the ticket moves that make up m, in the order they are played.
func Legs(m Move) []TicketMove {
	switch m := m.(type) {
	case TicketMove:
		return []TicketMove{m}
	case DoubleMove:
		return []TicketMove{m.First, m.Second}
	default:
		return nil
	}
}

// Destination is where the mover ends up, and false for a pass.
func Destination(m Move) (int, bool) {
	legs := Legs(m)
	if len(legs) == 0 {
		return 0, false
	}
	return legs[len(legs)-1].Target, true
}
