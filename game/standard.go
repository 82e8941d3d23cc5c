package game

import "war/utils"

type StandardRules struct {
	MinAttack int
}

// NewStandardRules requires at least two troops in the attacking territory.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		MinAttack: 2,
	}
}

// NewLooseRules lets a territory with a single troop attack. A single troop
// cannot be split, so such a conquest transfers nothing and the captured
// territory is garrisoned with one troop.
func NewLooseRules() *StandardRules {
	return &StandardRules{
		MinAttack: 1,
	}
}

func (sr *StandardRules) MinAttackTroops() int {
	return sr.MinAttack
}

func (sr *StandardRules) AttackSucceeds(attackRoll, defenseRoll int) bool {
	return attackRoll > defenseRoll
}

func (sr *StandardRules) TroopsToTransfer(attackerTroops int) int {
	// Half the garrison, at least one, but the attacker keeps one behind
	transferred := max(1, attackerTroops/2)
	return utils.Clamp(transferred, 0, attackerTroops-1)
}
