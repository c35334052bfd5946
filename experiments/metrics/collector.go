package metrics

import (
	"sync/atomic"
	"time"

	"github.com/Vmoney23/ScotlandYardAI/game"
)

type SearchMetric struct {
	Duration    time.Duration
	Depth       int // deepest fully searched iteration
	Nodes       int
	Evaluations int
	Cutoffs     int
	Exhausted   bool // the budget ran out before the search finished
}

type MoveMetric struct {
	Step   int
	Player game.Colour
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Colour
	Winners        []game.Colour
	FugitiveWon    bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	AddNode()
	AddEvaluation()
	AddCutoff()
	SetDepth(depth int)
	SetExhausted(value bool)
	Complete() SearchMetric
}

type collector struct {
	startTime   time.Time
	nodes       atomic.Int32
	evaluations atomic.Int32
	cutoffs     atomic.Int32
	depth       atomic.Int32
	exhausted   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
	m.depth.Store(0)
	m.exhausted.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) SetExhausted(value bool) {
	m.exhausted.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		Depth:       int(m.depth.Load()),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Exhausted:   m.exhausted.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) AddEvaluation()          {}
func (m *dummyCollector) AddCutoff()              {}
func (m *dummyCollector) SetDepth(depth int)      {}
func (m *dummyCollector) SetExhausted(value bool) {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
