package game

import (
	"strings"

	"war/utils"
)

// Mission is the player's win condition, recognized by its text.
type Mission string

const (
	ConquerThreeBlue  Mission = "Conquistar 3 territorios azuis"
	EliminateRed      Mission = "Eliminar todas as tropas da cor vermelha"
	ControlTwentyPlus Mission = "Controlar um territorio com mais de 20 tropas"
	ControlMost       Mission = "Controlar o maior numero de territorios"
	ConquerTwoInARow  Mission = "Conquistar 2 territorios seguidos"
)

// Faction tokens referenced by mission rules.
const (
	FactionBlue  = "azul"
	FactionRed   = "vermelha"
	FactionGreen = "verde"
)

// Catalog is the fixed set of missions a player can be dealt.
type Catalog []Mission

// DefaultCatalog returns a fresh copy of the five canonical missions.
func DefaultCatalog() Catalog {
	return Catalog{
		ConquerThreeBlue,
		EliminateRed,
		ControlTwentyPlus,
		ControlMost,
		ConquerTwoInARow,
	}
}

// Contains reports whether m is one of the catalog's entries.
func (c Catalog) Contains(m Mission) bool {
	return utils.FindIndex(c, m) >= 0
}

// AssignMission draws one entry uniformly at random.
func AssignMission(c Catalog, src Source) (Mission, error) {
	if len(c) == 0 {
		return "", ErrEmptyCatalog
	}
	return c[src.Intn(len(c))], nil
}

type objective struct {
	mission   Mission
	describe  string
	satisfied func(m *Map) bool
}

var objectives = []objective{
	{
		mission:  ConquerThreeBlue,
		describe: "hold at least 3 blue territories",
		satisfied: func(m *Map) bool {
			return m.CountFaction(FactionBlue) >= 3
		},
	},
	{
		// Already true when red never existed on the map
		mission:  EliminateRed,
		describe: "leave no red territory on the map",
		satisfied: func(m *Map) bool {
			return m.CountFaction(FactionRed) == 0
		},
	},
	{
		mission:  ControlTwentyPlus,
		describe: "hold a territory with more than 20 troops",
		satisfied: func(m *Map) bool {
			for _, t := range m.All() {
				if t.Troops > 20 {
					return true
				}
			}
			return false
		},
	},
	{
		mission:   ControlMost,
		describe:  "one of blue, red or green strictly owns the most territories",
		satisfied: strictPlurality,
	},
	{
		// Counts garrisons above one troop; conquest order is not tracked
		mission:  ConquerTwoInARow,
		describe: "at least 2 territories hold more than 1 troop",
		satisfied: func(m *Map) bool {
			count := 0
			for _, t := range m.All() {
				if t.Troops > 1 {
					count++
				}
			}
			return count >= 2
		},
	},
}

func strictPlurality(m *Map) bool {
	blue := m.CountFaction(FactionBlue)
	red := m.CountFaction(FactionRed)
	green := m.CountFaction(FactionGreen)

	return (blue > red && blue > green) ||
		(red > blue && red > green) ||
		(green > blue && green > red)
}

// CheckMission reports whether the mission is satisfied on the current map.
// Missions are recognized by content; unknown text is never satisfied.
// It does not mutate the map.
func CheckMission(mission Mission, m *Map) bool {
	for _, o := range objectives {
		if strings.Contains(string(mission), string(o.mission)) && o.satisfied(m) {
			return true
		}
	}
	return false
}

// Recognized reports whether any rule applies to the mission text.
func Recognized(mission Mission) bool {
	for _, o := range objectives {
		if strings.Contains(string(mission), string(o.mission)) {
			return true
		}
	}
	return false
}

// Describe explains the rule applied to the mission, or "" if unrecognized.
func (mission Mission) Describe() string {
	for _, o := range objectives {
		if strings.Contains(string(mission), string(o.mission)) {
			return o.describe
		}
	}
	return ""
}
