// Package game models one instant of a Scotland Yard game: who stands
// where, who holds which tickets, whose turn it is and which rounds reveal
// the fugitive.
//
// A State is a value snapshot. The search clones it once per explored move
// and applies exactly one move to the clone; the transport graph is shared
// by every clone and never copied.
package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/Vmoney23/ScotlandYardAI/graph"
)

var (
	ErrInvalidView = errors.New("game: invalid view")
	ErrIllegalMove = errors.New("game: illegal move")
	ErrGameOver    = errors.New("game: game is over")
)

// Setup describes a game before the first move.
type Setup struct {
	Players   []Colour // fugitive first
	Locations map[Colour]int
	Tickets   map[Colour]map[Ticket]int
	Rounds    []bool // index 0 is the start; true reveals the fugitive
}

type State struct {
	graph     *graph.Graph // shared, never copied
	players   []Colour
	locations map[Colour]int
	tickets   map[Colour]map[Ticket]int
	current   int // index into players
	round     int // rounds played by the fugitive
	rounds    []bool
	gameOver  bool
	winners   []Colour
	lastMove  Move

	// The fugitive's latest move and the round its first leg was played in.
	fugitiveMove  Move
	fugitiveRound int
}

// New starts a game on g. The first player in setup moves first.
func New(g *graph.Graph, setup Setup) (*State, error) {
	s, err := build(g, setup.Players, setup.Rounds,
		func(c Colour) (int, bool) {
			loc, ok := setup.Locations[c]
			return loc, ok
		},
		func(c Colour, t Ticket) int {
			return setup.Tickets[c][t]
		})
	if err != nil {
		return nil, err
	}
	s.updateGameOver()
	return s, nil
}

// NewState snapshots an authoritative view. The view is only read.
func NewState(v View, g *graph.Graph) (*State, error) {
	s, err := build(g, v.Players(), v.Rounds(), v.PlayerLocation, v.PlayerTickets)
	if err != nil {
		return nil, err
	}

	current := slices.Index(s.players, v.CurrentPlayer())
	if current < 0 {
		return nil, fmt.Errorf("%w: current player %s is not playing", ErrInvalidView, v.CurrentPlayer())
	}
	s.current = current

	round := v.Round()
	if round < 0 || round >= len(s.rounds) {
		return nil, fmt.Errorf("%w: round %d outside schedule of %d", ErrInvalidView, round, len(s.rounds)-1)
	}
	s.round = round

	if v.IsGameOver() {
		s.gameOver = true
		s.winners = append([]Colour(nil), v.WinningPlayers()...)
	} else {
		s.updateGameOver()
	}
	return s, nil
}

func build(
	g *graph.Graph,
	players []Colour,
	rounds []bool,
	location func(Colour) (int, bool),
	tickets func(Colour, Ticket) int,
) (*State, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: no graph", ErrInvalidView)
	}
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: need a fugitive and at least one pursuer", ErrInvalidView)
	}
	if !players[0].IsFugitive() {
		return nil, fmt.Errorf("%w: fugitive must play first, got %s", ErrInvalidView, players[0])
	}
	if len(rounds) < 2 {
		return nil, fmt.Errorf("%w: schedule has no rounds", ErrInvalidView)
	}

	s := &State{
		graph:     g,
		players:   make([]Colour, len(players)),
		locations: make(map[Colour]int, len(players)),
		tickets:   make(map[Colour]map[Ticket]int, len(players)),
		rounds:    make([]bool, len(rounds)),
	}
	copy(s.players, players)
	copy(s.rounds, rounds)

	for i, c := range players {
		if i > 0 && c.IsFugitive() {
			return nil, fmt.Errorf("%w: more than one fugitive", ErrInvalidView)
		}
		if slices.Contains(players[:i], c) {
			return nil, fmt.Errorf("%w: %s listed twice", ErrInvalidView, c)
		}

		loc, ok := location(c)
		if !ok {
			return nil, fmt.Errorf("%w: no location for %s", ErrInvalidView, c)
		}
		if !g.HasNode(loc) {
			return nil, fmt.Errorf("%w: %s at %d: %w", ErrInvalidView, c, loc, graph.ErrNodeNotFound)
		}
		s.locations[c] = loc

		s.tickets[c] = make(map[Ticket]int, len(Tickets))
		for _, t := range Tickets {
			n := tickets(c, t)
			if n < 0 {
				return nil, fmt.Errorf("%w: %s holds %d %s tickets", ErrInvalidView, c, n, t)
			}
			s.tickets[c][t] = n
		}
	}
	return s, nil
}

// Clone returns a deep copy that shares only the graph.
func (s *State) Clone() *State {
	c := &State{
		graph:         s.graph,
		players:       make([]Colour, len(s.players)),
		locations:     make(map[Colour]int, len(s.locations)),
		tickets:       make(map[Colour]map[Ticket]int, len(s.tickets)),
		current:       s.current,
		round:         s.round,
		rounds:        make([]bool, len(s.rounds)),
		gameOver:      s.gameOver,
		winners:       append([]Colour(nil), s.winners...),
		lastMove:      s.lastMove,
		fugitiveMove:  s.fugitiveMove,
		fugitiveRound: s.fugitiveRound,
	}
	copy(c.players, s.players)
	copy(c.rounds, s.rounds)
	for colour, loc := range s.locations {
		c.locations[colour] = loc
	}
	for colour, held := range s.tickets {
		c.tickets[colour] = make(map[Ticket]int, len(held))
		for t, n := range held {
			c.tickets[colour][t] = n
		}
	}
	return c
}

// LegalMoves lists the moves c may make from this snapshot, whether or not
// it is c's turn. Moves follow edge insertion order with single moves
// before double moves. A pursuer that cannot travel gets a single pass; a
// stuck fugitive gets nothing.
func (s *State) LegalMoves(c Colour) []Move {
	from, ok := s.locations[c]
	if !ok || s.gameOver {
		return nil
	}

	singles := s.ticketMoves(c, from, s.tickets[c])
	moves := make([]Move, 0, len(singles))
	for _, m := range singles {
		moves = append(moves, m)
	}

	if !c.IsFugitive() {
		if len(moves) == 0 {
			moves = append(moves, PassMove{Colour: c})
		}
		return moves
	}

	if s.tickets[c][Double] == 0 || s.round+2 >= len(s.rounds) {
		return moves
	}
	for _, first := range singles {
		left := make(map[Ticket]int, len(s.tickets[c]))
		for t, n := range s.tickets[c] {
			left[t] = n
		}
		left[Double]--
		left[first.Ticket]--
		for _, second := range s.ticketMoves(c, first.Target, left) {
			moves = append(moves, DoubleMove{Colour: c, First: first, Second: second})
		}
	}
	return moves
}

// ticketMoves lists the one-hop moves c can pay for from a location. Only
// the current pursuer locations block a destination, so a location vacated
// earlier in the round is free.
func (s *State) ticketMoves(c Colour, from int, held map[Ticket]int) []TicketMove {
	var moves []TicketMove
	add := func(m TicketMove) {
		if !slices.Contains(moves, m) {
			moves = append(moves, m)
		}
	}

	for _, e := range s.graph.EdgesFrom(from) {
		if s.occupied(e.To, c) {
			continue
		}
		ticket := ForTransport(e.Transport)
		if !c.IsFugitive() {
			if ticket != Secret && held[ticket] > 0 {
				add(TicketMove{Colour: c, Ticket: ticket, Target: e.To})
			}
			continue
		}
		if ticket != Secret && held[ticket] > 0 {
			add(TicketMove{Colour: c, Ticket: ticket, Target: e.To})
		}
		if held[Secret] > 0 {
			add(TicketMove{Colour: c, Ticket: Secret, Target: e.To})
		}
	}
	return moves
}

// occupied reports whether a pursuer other than mover stands on loc.
func (s *State) occupied(loc int, mover Colour) bool {
	for _, c := range s.players[1:] {
		if c != mover && s.locations[c] == loc {
			return true
		}
	}
	return false
}

// Apply plays m for the current player. An illegal move, or any move once
// the game is over, is rejected and leaves the state untouched.
func (s *State) Apply(m Move) error {
	if s.gameOver {
		return ErrGameOver
	}
	if m == nil {
		return fmt.Errorf("%w: nil move", ErrIllegalMove)
	}
	current := s.CurrentPlayer()
	if m.Mover() != current {
		return fmt.Errorf("%w: %s moved on %s's turn", ErrIllegalMove, m.Mover(), current)
	}
	if !slices.Contains(s.LegalMoves(current), m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	switch m := m.(type) {
	case TicketMove:
		s.travel(m)
	case DoubleMove:
		s.tickets[current][Double]--
		s.travel(m.First)
		s.travel(m.Second)
	}

	if current.IsFugitive() {
		s.fugitiveMove = m
		s.fugitiveRound = s.round - len(Legs(m)) + 1
	}
	s.lastMove = m
	s.current = (s.current + 1) % len(s.players)
	s.updateGameOver()
	return nil
}

func (s *State) travel(m TicketMove) {
	s.tickets[m.Colour][m.Ticket]--
	s.locations[m.Colour] = m.Target
	if m.Colour.IsFugitive() {
		s.round++
	} else {
		s.tickets[s.Fugitive()][m.Ticket]++
	}
}

func (s *State) updateGameOver() {
	fugitive := s.Fugitive()
	at := s.locations[fugitive]
	pursuers := s.Pursuers()

	for _, p := range pursuers {
		if s.locations[p] == at {
			s.end(pursuers...)
			return
		}
	}

	if s.CurrentPlayer().IsFugitive() {
		if s.round >= len(s.rounds)-1 {
			s.end(fugitive)
			return
		}
		if len(s.LegalMoves(fugitive)) == 0 {
			s.end(pursuers...)
			return
		}
	}

	for _, p := range pursuers {
		for _, t := range travelTickets {
			if s.tickets[p][t] > 0 {
				return
			}
		}
	}
	s.end(fugitive)
}

func (s *State) end(winners ...Colour) {
	s.gameOver = true
	s.winners = winners
}

func (s *State) Graph() *graph.Graph {
	return s.graph
}

// Players returns every agent in turn order, fugitive first.
func (s *State) Players() []Colour {
	return append([]Colour(nil), s.players...)
}

func (s *State) Pursuers() []Colour {
	return append([]Colour(nil), s.players[1:]...)
}

func (s *State) Fugitive() Colour {
	return s.players[0]
}

// Location returns where c stands, or 0 if c is not playing.
func (s *State) Location(c Colour) int {
	return s.locations[c]
}

func (s *State) PlayerLocation(c Colour) (int, bool) {
	loc, ok := s.locations[c]
	return loc, ok
}

// Tickets returns a copy of c's ticket counts.
func (s *State) Tickets(c Colour) map[Ticket]int {
	held := make(map[Ticket]int, len(Tickets))
	for t, n := range s.tickets[c] {
		held[t] = n
	}
	return held
}

func (s *State) TicketCount(c Colour, t Ticket) int {
	return s.tickets[c][t]
}

func (s *State) PlayerTickets(c Colour, t Ticket) int {
	return s.TicketCount(c, t)
}

func (s *State) CurrentPlayer() Colour {
	return s.players[s.current]
}

// Round is the number of rounds the fugitive has played.
func (s *State) Round() int {
	return s.round
}

func (s *State) Rounds() []bool {
	return append([]bool(nil), s.rounds...)
}

// IsRevealRound reports whether the fugitive shows itself in round r.
func (s *State) IsRevealRound(r int) bool {
	return r > 0 && r < len(s.rounds) && s.rounds[r]
}

func (s *State) IsGameOver() bool {
	return s.gameOver
}

func (s *State) Winners() []Colour {
	return append([]Colour(nil), s.winners...)
}

func (s *State) WinningPlayers() []Colour {
	return s.Winners()
}

func (s *State) FugitiveWon() bool {
	return s.gameOver && slices.Contains(s.winners, s.Fugitive())
}

// LastMove is the most recent move by anyone, nil before the first move.
func (s *State) LastMove() Move {
	return s.lastMove
}

// FugitiveMove returns the fugitive's latest move and the round its first
// leg was played in. The move is nil until the fugitive has moved.
func (s *State) FugitiveMove() (Move, int) {
	return s.fugitiveMove, s.fugitiveRound
}
