package game

// View is the authoritative game a state is snapshotted from. The fugitive
// must be first in Players. Rounds holds one entry per round plus the
// starting position at index 0; an entry is true when the fugitive reveals
// itself in that round.
type View interface {
	Players() []Colour
	PlayerLocation(c Colour) (int, bool)
	PlayerTickets(c Colour, t Ticket) int
	CurrentPlayer() Colour
	Round() int
	Rounds() []bool
	IsGameOver() bool
	WinningPlayers() []Colour
}
