package game

import "fmt"

// OutcomeKind says which side won an attack.
type OutcomeKind int

const (
	Repelled  OutcomeKind = iota // Defender won or tied
	Conquered                    // Defender's territory changed hands
)

func (k OutcomeKind) String() string {
	switch k {
	case Repelled:
		return "repelled"
	case Conquered:
		return "conquered"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is everything a caller needs to report one attack.
type Outcome struct {
	Kind            OutcomeKind
	AttackRoll      int
	DefenseRoll     int
	Transferred     int    // Troops moved into the conquered territory
	AttackerLosses  int    // Troops lost by a repelled attacker (0 or 1)
	AttackerFaction string // Faction of the attacker before the attack
	DefenderFaction string // Faction of the defender before the attack
}

// Resolver resolves single-die attacks between two territories.
type Resolver struct {
	src   Source
	rules Rules
}

func NewResolver(src Source, rules Rules) *Resolver {
	return &Resolver{
		src:   src,
		rules: rules,
	}
}

// Rules returns the rule set the resolver applies.
func (r *Resolver) Rules() Rules {
	return r.rules
}

// Resolve rolls one die per side and mutates both territories in place.
// Selection checks (distinct territories, different factions, enough
// troops) belong to the caller.
func (r *Resolver) Resolve(attacker, defender *Territory) Outcome {
	outcome := Outcome{
		AttackRoll:      RollDie(r.src),
		DefenseRoll:     RollDie(r.src),
		AttackerFaction: attacker.Faction,
		DefenderFaction: defender.Faction,
	}

	if r.rules.AttackSucceeds(outcome.AttackRoll, outcome.DefenseRoll) {
		transferred := r.rules.TroopsToTransfer(attacker.Troops)

		defender.Faction = attacker.Faction
		defender.Troops = max(1, transferred)
		attacker.Troops -= transferred

		outcome.Kind = Conquered
		outcome.Transferred = transferred
		return outcome
	}

	outcome.Kind = Repelled
	if attacker.Troops > 1 {
		attacker.Troops--
		outcome.AttackerLosses = 1
	}
	return outcome
}

// ResolveAt resolves an attack between two positions of the map.
func (r *Resolver) ResolveAt(m *Map, attackerIdx, defenderIdx int) Outcome {
	return r.Resolve(m.at(attackerIdx), m.at(defenderIdx))
}

// CheckAttack validates an attacker/defender selection against the map.
func CheckAttack(m *Map, attackerIdx, defenderIdx int, rules Rules) error {
	if !m.InRange(attackerIdx) || !m.InRange(defenderIdx) {
		return fmt.Errorf("cannot attack: %w: indices %d and %d must be in [0,%d)",
			ErrInvalidAttackSelection, attackerIdx, defenderIdx, m.Len())
	}
	if attackerIdx == defenderIdx {
		return fmt.Errorf("cannot attack: %w: territory %d cannot attack itself", ErrInvalidAttackSelection, attackerIdx)
	}
	attacker, defender := m.Get(attackerIdx), m.Get(defenderIdx)
	if attacker.Faction == defender.Faction {
		return fmt.Errorf("cannot attack: %w: %s and %s are both %s",
			ErrInvalidAttackSelection, attacker.Name, defender.Name, attacker.Faction)
	}
	if attacker.Troops < rules.MinAttackTroops() {
		return fmt.Errorf("cannot attack: %w: %s has %d, needs %d",
			ErrInsufficientTroops, attacker.Name, attacker.Troops, rules.MinAttackTroops())
	}
	return nil
}
