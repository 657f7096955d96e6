package movement

// View model animation keys.
const (
	AnimIdle         = "VM_Idle"
	AnimRun          = "VM_Run"
	AnimFall         = "VM_Fall"
	AnimJump         = "VM_Jump"
	AnimLongJump     = "VM_LongJump"
	AnimJumpLWallrun = "VM_JumpLWallrun"
	AnimJumpRWallrun = "VM_JumpRWallrun"
	AnimWallclimb    = "VM_Wallclimb"
	AnimWallrunLeft  = "VM_WallrunL"
	AnimWallrunRight = "VM_WallrunR"
	AnimLedgeGrab    = "VM_LedgeGrab"
	AnimVaultStart   = "VM_VaultStart"
	AnimVaultLaunch  = "VM_VaultLaunch"
	AnimVaultEnd     = "VM_VaultEnd"
	AnimSlide        = "VM_Slide"
	AnimDropdown     = "VM_Dropdown"
	AnimCoil         = "VM_Coil"
	AnimWallclutch   = "VM_Wallclutch"
	AnimLadderClimb  = "VM_LadderClimb"
)

// Animation events raised by view model animations.
const (
	EventWallclimbStep  = "WallclimbStep"
	EventFootstep       = "Footstep"
	EventFootstepLadder = "FootstepLadder"
)

// Sound names.
const (
	SoundFootstep           = "footstep"
	SoundFootstepFast       = "footstepfast"
	SoundCloth              = "cloth"
	SoundFootstepLadder     = "footstepladder"
	SoundGrab               = "grab"
	SoundSlideStart         = "slidestart"
	SoundLadderGrab         = "laddergrab"
	SoundGrappleThrow       = "grapplethrow"
	SoundGrappleThrowSpring = "grapplethrowspring"
	SoundGrapplePull        = "grapplepull"
	SoundDeath              = "death"
)

// fastFootstepSpeed is the horizontal speed above which footsteps sound fast.
const fastFootstepSpeed = 20

func (m *Moveset) animate(key string) {
	if m.Animator != nil {
		m.Animator.SetCurrentAnimation(key)
	}
}

func (m *Moveset) animationSpeed(speed float32) {
	if m.Animator != nil {
		m.Animator.SetAnimationSpeed(speed)
	}
}

func (m *Moveset) currentAnimation() string {
	if m.Animator == nil {
		return ""
	}
	return m.Animator.CurrentAnimation()
}

func (m *Moveset) sound(name string, volume float32) {
	if m.Feedback != nil {
		m.Feedback.PlaySound(name, volume)
	}
}

// OnAnimationEvent handles an event raised by the current view model animation.
func (m *Moveset) OnAnimationEvent(c *Character, event string) {
	switch event {
	case EventWallclimbStep:
		m.wallclimbStep(c)
	case EventFootstep:
		if c.HorizontalSpeed() > fastFootstepSpeed {
			m.sound(SoundFootstepFast, 1)
		} else {
			m.sound(SoundFootstep, 1)
		}
		m.sound(SoundCloth, 0.5)
	case EventFootstepLadder:
		m.sound(SoundFootstepLadder, 0.15)
	}
}
