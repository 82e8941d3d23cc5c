package metrics

import (
	"sync/atomic"
	"time"

	"war/game"
)

// SessionMetric summarizes one game session.
type SessionMetric struct {
	Mission      game.Mission
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	Attacks      int
	Conquests    int
	Repels       int
	Transferred  int // Troops moved into conquered territories
	Losses       int // Troops lost by repelled attackers
	Rejected     int // Selections refused before any dice were rolled
	Accomplished bool
}

type Collector interface {
	Start(mission game.Mission)
	AddOutcome(outcome game.Outcome)
	AddRejected()
	SetAccomplished(value bool)
	Complete() SessionMetric
}

type collector struct {
	mission      game.Mission
	startTime    time.Time
	conquests    atomic.Int32
	repels       atomic.Int32
	transferred  atomic.Int32
	losses       atomic.Int32
	rejected     atomic.Int32
	accomplished atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(mission game.Mission) {
	m.startTime = time.Now()
	m.mission = mission
}

func (m *collector) AddOutcome(outcome game.Outcome) {
	switch outcome.Kind {
	case game.Conquered:
		m.conquests.Add(1)
		m.transferred.Add(int32(outcome.Transferred))
	case game.Repelled:
		m.repels.Add(1)
		m.losses.Add(int32(outcome.AttackerLosses))
	}
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) SetAccomplished(value bool) {
	m.accomplished.Store(value)
}

func (m *collector) Complete() SessionMetric {
	end := time.Now()
	conquests, repels := int(m.conquests.Load()), int(m.repels.Load())
	return SessionMetric{
		Mission:      m.mission,
		StartTime:    m.startTime,
		EndTime:      end,
		Duration:     end.Sub(m.startTime),
		Attacks:      conquests + repels,
		Conquests:    conquests,
		Repels:       repels,
		Transferred:  int(m.transferred.Load()),
		Losses:       int(m.losses.Load()),
		Rejected:     int(m.rejected.Load()),
		Accomplished: m.accomplished.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(mission game.Mission)      {}
func (m *dummyCollector) AddOutcome(outcome game.Outcome) {}
func (m *dummyCollector) AddRejected()                    {}
func (m *dummyCollector) SetAccomplished(value bool)      {}
func (m *dummyCollector) Complete() SessionMetric         { return SessionMetric{} }
