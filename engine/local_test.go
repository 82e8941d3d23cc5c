package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"war/game"
	"war/metrics"
)

// scriptedSource replays fixed Intn results, cycling when exhausted.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func newMap(t *testing.T, territories ...game.Territory) *game.Map {
	t.Helper()
	m, err := game.NewMapFrom(territories)
	require.NoError(t, err)
	return m
}

func TestLocalEngineInit(t *testing.T) {
	t.Run("draws the mission from the catalog", func(t *testing.T) {
		m := newMap(t, game.Territory{Name: "A", Faction: "azul", Troops: 10})
		e, err := LocalEngine(m, game.DefaultCatalog(), &scriptedSource{values: []int{3}}, game.NewStandardRules())

		require.NoError(t, err)
		require.Equal(t, game.ControlMost, e.Mission())
		require.Same(t, m, e.Map())
		require.False(t, e.Accomplished())
	})

	t.Run("fixed mission skips the draw", func(t *testing.T) {
		m := newMap(t, game.Territory{Name: "A", Faction: "azul", Troops: 10})
		e, err := LocalEngine(m, nil, &scriptedSource{values: []int{0}}, game.NewStandardRules(), WithMission(game.EliminateRed))

		require.NoError(t, err)
		require.Equal(t, game.EliminateRed, e.Mission())
	})

	t.Run("rejects an empty catalog", func(t *testing.T) {
		m := newMap(t, game.Territory{Name: "A", Faction: "azul", Troops: 10})
		_, err := LocalEngine(m, game.Catalog{}, &scriptedSource{values: []int{0}}, game.NewStandardRules())
		require.ErrorIs(t, err, game.ErrEmptyCatalog)
	})

	t.Run("rejects a partially populated map", func(t *testing.T) {
		m, err := game.NewMap(2)
		require.NoError(t, err)
		require.NoError(t, m.Set(0, game.Territory{Name: "A", Faction: "azul", Troops: 1}))

		_, err = LocalEngine(m, game.DefaultCatalog(), &scriptedSource{values: []int{0}}, game.NewStandardRules())
		require.ErrorIs(t, err, game.ErrInvalidTerritory)
	})

	t.Run("rejects a missing map", func(t *testing.T) {
		_, err := LocalEngine(nil, game.DefaultCatalog(), &scriptedSource{values: []int{0}}, game.NewStandardRules())
		require.ErrorIs(t, err, game.ErrInvalidTerritoryCount)
	})
}

func TestLocalEngineAttack(t *testing.T) {
	t.Run("attacking itself is rejected", func(t *testing.T) {
		m := newMap(t, game.Territory{Name: "A", Faction: "azul", Troops: 10})
		collector := metrics.NewCollector()
		e, err := LocalEngine(m, game.DefaultCatalog(), &scriptedSource{values: []int{0}}, game.NewStandardRules(), WithCollector(collector))
		require.NoError(t, err)

		_, err = e.Attack(0, 0)

		require.ErrorIs(t, err, game.ErrInvalidAttackSelection)
		require.Equal(t, game.Territory{Name: "A", Faction: "azul", Troops: 10}, m.Get(0))
		require.Equal(t, 1, e.Close().Rejected)
	})

	t.Run("single troop cannot attack under standard rules", func(t *testing.T) {
		m := newMap(t,
			game.Territory{Name: "A", Faction: "azul", Troops: 1},
			game.Territory{Name: "B", Faction: "vermelha", Troops: 1},
		)
		e, err := LocalEngine(m, nil, &scriptedSource{values: []int{5, 0}}, game.NewStandardRules(), WithMission(game.ControlMost))
		require.NoError(t, err)

		_, err = e.Attack(0, 1)
		require.ErrorIs(t, err, game.ErrInsufficientTroops)
	})

	t.Run("repelled attack reports the new garrison", func(t *testing.T) {
		m := newMap(t,
			game.Territory{Name: "A", Faction: "azul", Troops: 10},
			game.Territory{Name: "B", Faction: "vermelha", Troops: 5},
		)
		// Dice: attacker 2, defender 6
		e, err := LocalEngine(m, nil, &scriptedSource{values: []int{1, 5}}, game.NewStandardRules(), WithMission(game.EliminateRed))
		require.NoError(t, err)

		report, err := e.Attack(0, 1)

		require.NoError(t, err)
		require.Equal(t, game.Repelled, report.Outcome.Kind)
		require.Equal(t, 9, report.Attacker.Troops)
		require.Equal(t, game.Territory{Name: "B", Faction: "vermelha", Troops: 5}, report.Defender)
		require.False(t, report.Accomplished)
		require.False(t, e.Accomplished())
	})

	t.Run("conquest accomplishes the mission and ends the game", func(t *testing.T) {
		m := newMap(t,
			game.Territory{Name: "A", Faction: "azul", Troops: 10},
			game.Territory{Name: "B", Faction: "vermelha", Troops: 5},
			game.Territory{Name: "C", Faction: "verde", Troops: 3},
		)
		collector := metrics.NewCollector()
		// Dice: attacker 6, defender 2
		e, err := LocalEngine(m, nil, &scriptedSource{values: []int{5, 1}}, game.NewStandardRules(),
			WithMission(game.EliminateRed), WithCollector(collector))
		require.NoError(t, err)

		report, err := e.Attack(0, 1)

		require.NoError(t, err)
		require.Equal(t, game.Conquered, report.Outcome.Kind)
		require.Equal(t, 5, report.Outcome.Transferred)
		require.Equal(t, game.Territory{Name: "A", Faction: "azul", Troops: 5}, report.Attacker)
		require.Equal(t, game.Territory{Name: "B", Faction: "azul", Troops: 5}, report.Defender)
		require.True(t, report.Accomplished)
		require.True(t, e.CheckMission())
		require.True(t, e.CheckMission(), "Checking again gives the same answer")

		_, err = e.Attack(0, 2)
		require.ErrorIs(t, err, ErrGameOver)

		summary := e.Close()
		require.Equal(t, 1, summary.Attacks)
		require.Equal(t, 1, summary.Conquests)
		require.Equal(t, 5, summary.Transferred)
		require.True(t, summary.Accomplished)
	})

	t.Run("closed session refuses attacks", func(t *testing.T) {
		m := newMap(t,
			game.Territory{Name: "A", Faction: "azul", Troops: 10},
			game.Territory{Name: "B", Faction: "vermelha", Troops: 5},
		)
		e, err := LocalEngine(m, nil, &scriptedSource{values: []int{5, 1}}, game.NewStandardRules(), WithMission(game.ControlTwentyPlus))
		require.NoError(t, err)

		e.Close()
		_, err = e.Attack(0, 1)
		require.ErrorIs(t, err, ErrGameOver)
	})
}
