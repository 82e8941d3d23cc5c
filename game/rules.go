package game

// Rules decides the parts of combat that differ between rule variants.
type Rules interface {
	// MinAttackTroops is the smallest garrison allowed to launch an attack.
	MinAttackTroops() int
	// AttackSucceeds compares the two dice; ties favor the defender.
	AttackSucceeds(attackRoll, defenseRoll int) bool
	// TroopsToTransfer is how many troops move into a conquered territory.
	// The result never leaves the attacker below one troop.
	TroopsToTransfer(attackerTroops int) int
}
