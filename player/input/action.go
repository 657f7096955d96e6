package input

import "fmt"

// Key is a physical key that one or more actions are bound to.
type Key uint8

const (
	KeySpace Key = iota
	KeyLeftShift
	KeyR
	KeyF
	KeyQ
	KeyE
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyLeftShift:
		return "LeftShift"
	case KeyR:
		return "R"
	case KeyF:
		return "F"
	case KeyQ:
		return "Q"
	case KeyE:
		return "E"
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// Action is a named input action. Several actions may share one Key.
type Action uint8

const (
	ActionLedgeGrab Action = iota
	ActionJump
	ActionWallKick
	ActionWallAction
	ActionWallrun
	ActionCoil
	ActionSlide
	ActionRespawn
	ActionQuickRestart
	ActionInteract
	ActionCancelTrial
	ActionFly
	ActionFlyBoost
	ActionCoreUse

	actionCount
)

var actionNames = [actionCount]string{
	ActionLedgeGrab:    "LedgeGrab",
	ActionJump:         "Jump",
	ActionWallKick:     "WallKick",
	ActionWallAction:   "WallAction",
	ActionWallrun:      "Wallrun",
	ActionCoil:         "Coil",
	ActionSlide:        "Slide",
	ActionRespawn:      "Respawn",
	ActionQuickRestart: "QuickRestart",
	ActionInteract:     "Interact",
	ActionCancelTrial:  "CancelTrial",
	ActionFly:          "Fly",
	ActionFlyBoost:     "FlyBoost",
	ActionCoreUse:      "CoreUse",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Actions returns every known action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// Binding binds an action to a key. Among the held actions of a key, the one with the highest
// priority is the active one.
type Binding struct {
	Key      Key
	Priority int
}

// DefaultBindings returns the default binding table.
func DefaultBindings() map[Action]Binding {
	return map[Action]Binding{
		ActionLedgeGrab:  {KeySpace, 5},
		ActionJump:       {KeySpace, 4},
		ActionWallKick:   {KeySpace, 3},
		ActionWallAction: {KeySpace, 2},
		ActionWallrun:    {KeySpace, 1},

		ActionCoil:     {KeyLeftShift, 2},
		ActionSlide:    {KeyLeftShift, 1},
		ActionFlyBoost: {KeyLeftShift, -1},

		ActionRespawn:      {KeyR, 2},
		ActionQuickRestart: {KeyR, 1},

		ActionInteract:    {KeyF, 2},
		ActionCancelTrial: {KeyF, 1},

		ActionFly:     {KeyQ, 1},
		ActionCoreUse: {KeyE, 1},
	}
}
