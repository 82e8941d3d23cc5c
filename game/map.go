package game

import (
	"fmt"
	"iter"
)

const (
	MaxNameLen    = 29 // Longest territory name accepted at registration
	MaxFactionLen = 9  // Longest faction token accepted at registration
)

// Territory is a named map cell with a controlling faction and a troop count.
type Territory struct {
	Name    string // Display-only name
	Faction string // Controlling army color, compared as opaque case-sensitive text
	Troops  int    // Garrison size, never below 1
}

// Validate checks the registration limits and the troop floor.
func (t Territory) Validate() error {
	if t.Name == "" || len(t.Name) > MaxNameLen {
		return fmt.Errorf("%w: name %q must be 1-%d characters", ErrInvalidTerritory, t.Name, MaxNameLen)
	}
	if t.Faction == "" || len(t.Faction) > MaxFactionLen {
		return fmt.Errorf("%w: faction %q must be 1-%d characters", ErrInvalidTerritory, t.Faction, MaxFactionLen)
	}
	if t.Troops < 1 {
		return fmt.Errorf("%w: %s has %d troops, at least 1 required", ErrInvalidTerritory, t.Name, t.Troops)
	}
	return nil
}

// Map is the ordered, fixed-size collection of territories of one session.
// It is created once, mutated in place by attacks and never resized.
type Map struct {
	territories []Territory
}

// NewMap creates a map with n empty slots to be filled with Set during setup.
func NewMap(n int) (*Map, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTerritoryCount, n)
	}
	return &Map{territories: make([]Territory, n)}, nil
}

// NewMapFrom builds a fully populated map, validating every territory.
func NewMapFrom(territories []Territory) (*Map, error) {
	m, err := NewMap(len(territories))
	if err != nil {
		return nil, err
	}
	for i, t := range territories {
		if err := m.Set(i, t); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Len returns the number of territories.
func (m *Map) Len() int {
	return len(m.territories)
}

// Get returns a copy of the territory at index i.
func (m *Map) Get(i int) Territory {
	return m.territories[i]
}

// Set replaces the territory at index i.
func (m *Map) Set(i int, t Territory) error {
	if !m.InRange(i) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, m.Len())
	}
	if err := t.Validate(); err != nil {
		return err
	}
	m.territories[i] = t
	return nil
}

// InRange reports whether i addresses a territory.
func (m *Map) InRange(i int) bool {
	return i >= 0 && i < len(m.territories)
}

// All iterates over the territories in index order.
func (m *Map) All() iter.Seq2[int, Territory] {
	return func(yield func(int, Territory) bool) {
		for i, t := range m.territories {
			if !yield(i, t) {
				return
			}
		}
	}
}

// at exposes the stored record so combat can mutate both sides in place.
func (m *Map) at(i int) *Territory {
	return &m.territories[i]
}

// CountFaction returns how many territories the faction controls.
func (m *Map) CountFaction(faction string) int {
	count := 0
	for _, t := range m.territories {
		if t.Faction == faction {
			count++
		}
	}
	return count
}

// Factions tallies owned territories by faction.
func (m *Map) Factions() map[string]int {
	counts := make(map[string]int)
	for _, t := range m.territories {
		counts[t.Faction]++
	}
	return counts
}

// Copy of the Map.
func (m *Map) Copy() *Map {
	territoriesCopy := make([]Territory, len(m.territories))
	copy(territoriesCopy, m.territories)
	return &Map{territories: territoriesCopy}
}

// Validate checks every territory, catching slots left empty during setup.
func (m *Map) Validate() error {
	for i, t := range m.territories {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("territory %d: %w", i, err)
		}
	}
	return nil
}
