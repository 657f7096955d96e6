package component

import (
	"github.com/oomph-ac/parkour/player/movement"
)

const abilityCount = int(movement.AbilityGrappler) + 1

// GearComponent tracks the ability charges granted by the equipped gear.
type GearComponent struct {
	max     [abilityCount]int
	ammo    [abilityCount]int
	enabled [abilityCount]bool
}

// NewGearComponent returns a gear component with every ability refilled. The grappler is only
// enabled if the configuration unlocks it.
func NewGearComponent(cfg movement.AmmoConfig) *GearComponent {
	g := &GearComponent{}
	for _, a := range movement.Abilities() {
		g.max[a] = cfg.Max(a)
		g.enabled[a] = true
	}
	g.enabled[movement.AbilityGrappler] = cfg.GrapplerUnlocked
	g.ResetAmmo()
	return g
}

// Ammo returns the remaining charges of the ability.
func (g *GearComponent) Ammo(a movement.Ability) int {
	if !valid(a) {
		return 0
	}
	return g.ammo[a]
}

// MaxAmmo returns the amount of charges the ability is refilled to.
func (g *GearComponent) MaxAmmo(a movement.Ability) int {
	if !valid(a) {
		return 0
	}
	return g.max[a]
}

// DecrementAmmo consumes one charge of the ability. False is returned if no charge was left.
func (g *GearComponent) DecrementAmmo(a movement.Ability) bool {
	if !valid(a) || g.ammo[a] <= 0 {
		return false
	}
	g.ammo[a]--
	return true
}

// ResetAmmo refills every ability except the ones passed.
func (g *GearComponent) ResetAmmo(except ...movement.Ability) {
	var skip [abilityCount]bool
	for _, a := range except {
		if valid(a) {
			skip[a] = true
		}
	}
	for i := range g.ammo {
		if !skip[i] {
			g.ammo[i] = g.max[i]
		}
	}
}

// AbilityEnabled returns true if the gear unlocks the ability.
func (g *GearComponent) AbilityEnabled(a movement.Ability) bool {
	return valid(a) && g.enabled[a]
}

// SetAbilityEnabled locks or unlocks an ability, for example when gear is picked up.
func (g *GearComponent) SetAbilityEnabled(a movement.Ability, enabled bool) {
	if valid(a) {
		g.enabled[a] = enabled
	}
}

func valid(a movement.Ability) bool {
	return int(a) < abilityCount
}
