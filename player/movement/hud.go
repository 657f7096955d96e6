package movement

// HUD is the snapshot of character values shown on the heads-up display.
type HUD struct {
	State    State
	Speed    float32
	Momentum float32
	Health   float32
	Ammo     [AbilityGrappler + 1]int

	Dashing   bool
	Grappling bool
}

func (m *Moveset) pushHUD(c *Character) {
	if m.Feedback == nil {
		return
	}
	h := HUD{
		State:     c.State,
		Speed:     c.HorizontalSpeed(),
		Momentum:  c.Momentum,
		Health:    c.Health,
		Dashing:   c.Dash.Active(),
		Grappling: c.Grapple.Active,
	}
	for _, a := range Abilities() {
		h.Ammo[a] = m.Gear.Ammo(a)
	}
	m.Feedback.UpdateHUD(h)
}
