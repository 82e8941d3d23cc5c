package engine

import (
	"war/game"
	"war/metrics"
)

// Session is one running game as seen by an interactive shell.
type Session interface {
	// Map is the live territory map; callers must not mutate it.
	Map() *game.Map
	Mission() game.Mission
	// Attack validates the selection, resolves it and re-checks the mission.
	Attack(attackerIdx, defenderIdx int) (Report, error)
	Accomplished() bool
	// Close ends the session and returns its summary.
	Close() metrics.SessionMetric
}

// Report is the result of one accepted attack.
type Report struct {
	Outcome      game.Outcome
	Attacker     game.Territory // Attacker after the attack
	Defender     game.Territory // Defender after the attack
	Accomplished bool           // Mission satisfied after this attack
}
