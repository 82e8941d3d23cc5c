package engine

import (
	"errors"
	"fmt"

	"war/game"
	"war/metrics"

	"github.com/rs/zerolog/log"
)

var ErrGameOver = errors.New("game is over - no attacks allowed")

type Engine struct {
	state        *game.Map
	mission      game.Mission
	resolver     *game.Resolver
	collector    metrics.Collector
	accomplished bool
	closed       bool
}

type Option func(e *Engine)

// WithCollector records session metrics in c instead of discarding them.
func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

// WithMission skips the random draw, e.g. to replay a session.
func WithMission(m game.Mission) Option {
	return func(e *Engine) {
		e.mission = m
	}
}

// LocalEngine starts a session over a fully populated map. The mission is
// drawn from catalog using src, which also rolls every die of the session.
func LocalEngine(m *game.Map, catalog game.Catalog, src game.Source, rules game.Rules, options ...Option) (*Engine, error) {
	if m == nil || m.Len() == 0 {
		return nil, game.ErrInvalidTerritoryCount
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}

	e := &Engine{
		state:     m,
		resolver:  game.NewResolver(src, rules),
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}

	if e.mission == "" {
		mission, err := game.AssignMission(catalog, src)
		if err != nil {
			return nil, err
		}
		e.mission = mission
	}
	if !game.Recognized(e.mission) {
		log.Warn().Str("mission", string(e.mission)).Msg("mission has no known rule and can never be accomplished")
	}

	e.collector.Start(e.mission)
	log.Info().
		Int("territories", m.Len()).
		Int("min_attack_troops", rules.MinAttackTroops()).
		Str("mission", string(e.mission)).
		Msg("session started")

	return e, nil
}

func (e *Engine) Map() *game.Map {
	return e.state
}

func (e *Engine) Mission() game.Mission {
	return e.mission
}

func (e *Engine) Accomplished() bool {
	return e.accomplished
}

// CheckMission evaluates the mission against the current map.
func (e *Engine) CheckMission() bool {
	return game.CheckMission(e.mission, e.state)
}

func (e *Engine) Attack(attackerIdx, defenderIdx int) (Report, error) {
	if e.accomplished || e.closed {
		return Report{}, ErrGameOver
	}

	if err := game.CheckAttack(e.state, attackerIdx, defenderIdx, e.resolver.Rules()); err != nil {
		e.collector.AddRejected()
		log.Warn().Err(err).Int("attacker", attackerIdx).Int("defender", defenderIdx).Msg("attack rejected")
		return Report{}, err
	}

	outcome := e.resolver.ResolveAt(e.state, attackerIdx, defenderIdx)
	e.collector.AddOutcome(outcome)

	log.Debug().
		Int("attacker", attackerIdx).
		Int("defender", defenderIdx).
		Int("attack_roll", outcome.AttackRoll).
		Int("defense_roll", outcome.DefenseRoll).
		Stringer("outcome", outcome.Kind).
		Int("transferred", outcome.Transferred).
		Msg("attack resolved")

	if e.CheckMission() {
		e.accomplished = true
		e.collector.SetAccomplished(true)
		log.Info().Str("mission", string(e.mission)).Msg("mission accomplished")
	}

	return Report{
		Outcome:      outcome,
		Attacker:     e.state.Get(attackerIdx),
		Defender:     e.state.Get(defenderIdx),
		Accomplished: e.accomplished,
	}, nil
}

// Close ends the session; later attacks fail with ErrGameOver.
func (e *Engine) Close() metrics.SessionMetric {
	e.closed = true
	summary := e.collector.Complete()
	log.Info().
		Int("attacks", summary.Attacks).
		Int("conquests", summary.Conquests).
		Int("repels", summary.Repels).
		Int("rejected", summary.Rejected).
		Bool("accomplished", e.accomplished).
		Dur("duration", summary.Duration).
		Msg("session closed")
	return summary
}
