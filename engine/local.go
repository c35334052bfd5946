package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Vmoney23/ScotlandYardAI/agent"
	"github.com/Vmoney23/ScotlandYardAI/experiments/metrics"
	"github.com/Vmoney23/ScotlandYardAI/game"
)

var (
	ErrBadToken     = errors.New("engine: bad token")
	ErrNoSubmission = errors.New("engine: player did not submit a move")
	ErrNoPlayer     = errors.New("engine: no player for colour")
)

var _ agent.Receiver = (*Local)(nil)

type LocalOption func(e *Local)

func WithMaxTurns(turns int) LocalOption {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Local holds the authoritative state of one game and hands each turn to
// the player whose colour is to move. Players read the game through Local
// and answer with PlayMove.
type Local struct {
	mu       sync.Mutex
	state    *game.State
	players  map[game.Colour]agent.Player
	maxTurns int

	issued   uint64
	token    agent.Token
	awaiting bool
}

func NewLocal(state *game.State, players map[game.Colour]agent.Player, options ...LocalOption) (*Local, error) {
	for _, c := range state.Players() {
		if players[c] == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoPlayer, c)
		}
	}
	e := &Local{
		state:    state.Clone(),
		players:  players,
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	starting := e.CurrentPlayer()
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", starting)

	turn := 0
	for !e.IsGameOver() && turn < e.maxTurns {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		turn++

		e.mu.Lock()
		colour := e.state.CurrentPlayer()
		location := e.state.Location(colour)
		moves := e.state.LegalMoves(colour)
		token := e.issue()
		e.mu.Unlock()

		player := e.players[colour]
		if err := player.Notify(ctx, location, moves, token, e); err != nil {
			return Result{}, fmt.Errorf("turn %d, %s: %w", turn, colour, err)
		}

		e.mu.Lock()
		missing := e.awaiting
		e.awaiting = false
		played := e.state.LastMove()
		e.mu.Unlock()
		if missing {
			return Result{}, fmt.Errorf("turn %d, %s: %w", turn, colour, ErrNoSubmission)
		}

		metric := metrics.MoveMetric{Step: turn, Player: colour, Move: played.String()}
		if r, ok := player.(agent.Reporter); ok {
			metric.SearchMetric = r.LastMetric()
		}
		moveMetrics = append(moveMetrics, metric)
		log.Debug().Int("turn", turn).Msgf("%s played %s", colour, played)
	}

	end := time.Now()
	winners := e.WinningPlayers()
	e.mu.Lock()
	fugitiveWon := e.state.FugitiveWon()
	e.mu.Unlock()

	if e.IsGameOver() {
		log.Info().Msgf("game over after %d turns, winners %v", turn, winners)
	} else {
		log.Info().Msgf("stopped after %d turns without a winner", turn)
	}

	return Result{
		Winners:     winners,
		FugitiveWon: fugitiveWon,
		Turns:       turn,
		Game: metrics.GameMetric{
			StartingPlayer: starting,
			Winners:        winners,
			FugitiveWon:    fugitiveWon,
			StartTime:      start,
			EndTime:        end,
			Duration:       end.Sub(start),
			TotalMoves:     turn,
		},
		Moves: moveMetrics,
	}, nil
}

// issue starts a turn. Callers hold e.mu.
func (e *Local) issue() agent.Token {
	e.issued++
	e.token = agent.Token(e.issued)
	e.awaiting = true
	return e.token
}

// PlayMove applies move if token belongs to the turn in progress. Each
// token is good for one legal move.
func (e *Local) PlayMove(move game.Move, token agent.Token) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.awaiting || token != e.token {
		return fmt.Errorf("%w: %d", ErrBadToken, token)
	}
	if err := e.state.Apply(move); err != nil {
		return err
	}
	e.awaiting = false
	return nil
}

// State returns a copy of the current state.
func (e *Local) State() *game.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

func (e *Local) Players() []game.Colour {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Players()
}

func (e *Local) PlayerLocation(c game.Colour) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.PlayerLocation(c)
}

func (e *Local) PlayerTickets(c game.Colour, t game.Ticket) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.PlayerTickets(c, t)
}

func (e *Local) CurrentPlayer() game.Colour {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.CurrentPlayer()
}

func (e *Local) Round() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Round()
}

func (e *Local) Rounds() []bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Rounds()
}

func (e *Local) IsGameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.IsGameOver()
}

func (e *Local) WinningPlayers() []game.Colour {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.WinningPlayers()
}
