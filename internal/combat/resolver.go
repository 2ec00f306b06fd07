// Package combat resolves melee exchanges between the player and monsters.
package combat

import "fmt"

// Combatant is the interface for any entity that can take part in a melee
// exchange. Both the player and monsters implement it.
type Combatant interface {
	GetName() string
	IsAlive() bool

	GetHP() int
	GetAttack() int
	GetDefense() int

	TakeDamage(amount int) int // Returns actual damage taken
}

// Result contains the outcome of one attack.
type Result struct {
	Damage  int    // HP actually removed from the defender
	Killed  bool   // True if the defender died from this attack
	Message string // Human-readable description
}

// Damage returns the damage an attack would deal: attack minus defense,
// never less than 1.
func Damage(attacker, defender Combatant) int {
	return max(1, attacker.GetAttack()-defender.GetDefense())
}

// Attack applies one melee hit from attacker to defender.
// Attacks by or against dead combatants do nothing.
func Attack(attacker, defender Combatant) Result {
	if !attacker.IsAlive() || !defender.IsAlive() {
		return Result{Message: "Nothing happens."}
	}

	actual := defender.TakeDamage(Damage(attacker, defender))
	result := Result{
		Damage: actual,
		Killed: !defender.IsAlive(),
	}
	if result.Killed {
		result.Message = fmt.Sprintf("%s kills %s.", attacker.GetName(), defender.GetName())
	} else {
		result.Message = fmt.Sprintf("%s hits %s for %d.", attacker.GetName(), defender.GetName(), actual)
	}
	return result
}
