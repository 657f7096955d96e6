package movement

import (
	"slices"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

func vecApprox(a, b mgl32.Vec3, tolerance float32) bool {
	return approx(a.X(), b.X(), tolerance) && approx(a.Y(), b.Y(), tolerance) && approx(a.Z(), b.Z(), tolerance)
}

// wallrunning returns a harness with the character running along a wall on its left.
func wallrunning(t *testing.T, vel mgl32.Vec3, momentum float32) *harness {
	t.Helper()
	h := newHarness(cube.Box(-1.5, -5, -10, -1, 5, 10))
	h.c.Body.SetPosition(mgl32.Vec3{0, 1, 0})
	h.c.Body.SetVelocity(vel)
	h.c.Body.Contacts.WallrunLeft = true
	h.c.Momentum = momentum
	if !h.m.ActionPressed(h.c, input.ActionWallrun) {
		t.Fatal("expected wallrun to start")
	}
	return h
}

func TestWallrunJump(t *testing.T) {
	tests := []struct {
		name      string
		vy        float32
		momentum  float32
		keep      bool
		magnitude float32
		y         float32
	}{
		{name: "rising", vy: 4, momentum: 10, keep: true, magnitude: 14, y: 13},
		{name: "falling", vy: -8, momentum: 10, keep: true, magnitude: 14, y: 8.5},
		{name: "capped", vy: 4, momentum: 28, keep: true, magnitude: 30, y: 13},
		{name: "no keep", vy: 4, momentum: 10, keep: false, magnitude: 14, y: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := wallrunning(t, mgl32.Vec3{0, tt.vy, 0}, tt.momentum)
			h.m.Config.WallrunJumpKeep = tt.keep
			h.gear.ammo[AbilityJump] = 0

			if !h.m.ActionPressed(h.c, input.ActionJump) {
				t.Fatal("expected a wallrun jump without jump ammo")
			}
			if h.c.Jump.Last != JumpWallrun {
				t.Fatalf("expected a wallrun jump, got %v", h.c.Jump.Last)
			}
			vel := h.c.Body.Velocity()
			if !vecApprox(vel, mgl32.Vec3{0, tt.y, tt.magnitude}, 1e-3) {
				t.Fatalf("expected velocity %v, got %v", mgl32.Vec3{0, tt.y, tt.magnitude}, vel)
			}
			if h.anim.current != AnimJumpRWallrun {
				t.Fatalf("expected %s off a left wall, got %s", AnimJumpRWallrun, h.anim.current)
			}
		})
	}
}

func TestWallrunJumpResetsFallSpeed(t *testing.T) {
	h := wallrunning(t, mgl32.Vec3{0, -60, 0}, 10)
	h.c.LastFallSpeed = 60
	h.c.AirborneTime = 1

	if !h.m.ActionPressed(h.c, input.ActionJump) {
		t.Fatal("expected a wallrun jump")
	}
	if h.c.LastFallSpeed != 0 || h.c.AirborneTime != 0 {
		t.Fatalf("expected fall speed and airborne time to reset, got %v and %v", h.c.LastFallSpeed, h.c.AirborneTime)
	}

	h.c.Body.Contacts.WallrunLeft = false
	h.step(10)
	h.m.Land(h.c)
	if h.c.Health != h.m.Config.MaxHealth {
		t.Fatalf("expected a gentle landing to deal no damage, health %v", h.c.Health)
	}
}

func TestHoldWallrunReleaseJumps(t *testing.T) {
	h := newHarness(cube.Box(-1.5, -5, -10, -1, 5, 10))
	h.m.Prefs.HoldWallrun = true
	h.c.Body.SetPosition(mgl32.Vec3{0, 1, 0})
	h.c.Body.SetVelocity(mgl32.Vec3{0, 0, 8})
	h.c.Body.Contacts.WallrunLeft = true
	h.c.Momentum = 8
	h.input.active[input.ActionWallrun] = true

	if !h.m.ActionPressed(h.c, input.ActionWallrun) {
		t.Fatal("expected wallrun to start")
	}
	if !h.input.active[input.ActionWallrun] {
		t.Fatal("expected the wallrun action to stay held in hold mode")
	}
	h.step(3)
	if h.c.State != StateWallrun {
		t.Fatalf("expected wallrun to continue while held, got %v", h.c.State)
	}

	h.input.active[input.ActionWallrun] = false
	h.step(1)
	if h.c.State != StateAirborne || h.c.Jump.Last != JumpWallrun {
		t.Fatalf("expected releasing the wallrun to jump off, got %v after a %v jump", h.c.State, h.c.Jump.Last)
	}
	if vy := h.c.Body.Velocity().Y(); vy < h.m.Config.WallrunJumpForceVertical/2 {
		t.Fatalf("expected an upward launch, got %v", vy)
	}
}

// climbing returns a harness with the character airborne right in front of a tall wall.
func climbing(hold bool) *harness {
	h := newHarness(cube.Box(-2, -5, 0.5, 2, 10, 1.5))
	h.m.Prefs.HoldWallclimb = hold
	h.c.Body.SetPosition(mgl32.Vec3{0, 2, 0})
	h.c.Body.SetVelocity(mgl32.Vec3{0, -2, 0})
	h.c.Body.Contacts.Wallclimb = true
	h.input.active[input.ActionWallAction] = true
	return h
}

func TestWallclimbToggleRelease(t *testing.T) {
	h := climbing(false)
	if !h.m.ActionPressed(h.c, input.ActionWallAction) {
		t.Fatal("expected wallclimb to start")
	}
	h.step(5)
	if h.c.State != StateWallclimb {
		t.Fatalf("expected the climb to continue without holding, got %v", h.c.State)
	}

	if !h.m.ActionPressed(h.c, input.ActionWallAction) {
		t.Fatal("expected pressing again to be accepted")
	}
	h.step(1)
	if h.c.State != StateAirborne {
		t.Fatalf("expected pressing again to let go of the wall, got %v", h.c.State)
	}
}

func TestWallclimbHoldRelease(t *testing.T) {
	h := climbing(true)
	if !h.m.ActionPressed(h.c, input.ActionWallAction) {
		t.Fatal("expected wallclimb to start")
	}
	if !h.input.active[input.ActionWallAction] {
		t.Fatal("expected the wall action to stay held in hold mode")
	}
	h.step(10)
	if h.c.State != StateWallclimb {
		t.Fatalf("expected the climb to continue while held, got %v", h.c.State)
	}

	h.input.active[input.ActionWallAction] = false
	h.step(1)
	if h.c.State != StateAirborne {
		t.Fatalf("expected releasing to end the climb, got %v", h.c.State)
	}
}

func TestWallboost(t *testing.T) {
	h := climbing(false)
	h.m.Config.WallAction = WallActionWallboost

	if h.m.ActionPressed(h.c, input.ActionWallAction) {
		t.Fatal("expected wallboost without a dash to be rejected")
	}
	if n := h.gear.Ammo(AbilityWallclimb); n != 1 {
		t.Fatalf("rejected wallboost consumed ammo (%d left)", n)
	}

	h.c.Dash.Charge = 0
	if !h.m.ActionPressed(h.c, input.ActionWallAction) {
		t.Fatal("expected wallboost while dashing")
	}
	if vy := h.c.Body.Velocity().Y(); vy != h.m.Config.WallboostForce {
		t.Fatalf("expected vertical velocity %v, got %v", h.m.Config.WallboostForce, vy)
	}
	if h.c.State != StateAirborne {
		t.Fatalf("expected to stay airborne, got %v", h.c.State)
	}
	if n := h.gear.Ammo(AbilityWallclimb); n != 0 {
		t.Fatalf("expected wallboost to use wallclimb ammo, got %d", n)
	}
}

func TestWallclutch(t *testing.T) {
	clutch := func(t *testing.T) *harness {
		t.Helper()
		h := climbing(false)
		h.m.Config.ClutchEnabled = true
		h.c.Dash.Charge = 0
		if !h.m.ActionPressed(h.c, input.ActionWallAction) {
			t.Fatal("expected wallclutch to start")
		}
		if h.c.State != StateWallclutch {
			t.Fatalf("expected Wallclutch, got %v", h.c.State)
		}
		if n := h.gear.Ammo(AbilityWallclimb); n != 1 {
			t.Fatalf("expected no ammo to be used on grabbing, got %d", n)
		}
		return h
	}

	t.Run("held until the maximum", func(t *testing.T) {
		h := clutch(t)
		h.step(40)
		if h.c.State != StateWallclutch {
			t.Fatalf("expected the clutch to hold, got %v", h.c.State)
		}
		if vy := h.c.Body.Velocity().Y(); !approx(vy, h.m.Config.ClutchVelocityTo, 1e-4) {
			t.Fatalf("expected the clutch to slide at %v, got %v", h.m.Config.ClutchVelocityTo, vy)
		}

		ticks := 40
		for ; ticks < 90 && h.c.State == StateWallclutch; ticks++ {
			h.step(1)
		}
		if ticks < 60 || ticks > 61 {
			t.Fatalf("expected the clutch to end after %vs, took %d ticks", h.m.Config.ClutchMaxTime, ticks)
		}
		if h.c.State != StateWallclimb {
			t.Fatalf("expected a held clutch to turn into a wallclimb, got %v", h.c.State)
		}
		if n := h.gear.Ammo(AbilityWallclimb); n != 0 {
			t.Fatalf("expected the climb to use ammo, got %d", n)
		}
	})
	t.Run("released early", func(t *testing.T) {
		h := clutch(t)
		h.input.active[input.ActionWallAction] = false
		h.step(20)
		if h.c.State != StateWallclutch {
			t.Fatalf("expected the clutch to hold for its minimum time, got %v", h.c.State)
		}

		ticks := 20
		for ; ticks < 90 && h.c.State == StateWallclutch; ticks++ {
			h.step(1)
		}
		if ticks < 30 || ticks > 31 {
			t.Fatalf("expected the clutch to end after %vs, took %d ticks", h.m.Config.ClutchMinTime, ticks)
		}
		if h.c.State != StateAirborne {
			t.Fatalf("expected to drop off the wall, got %v", h.c.State)
		}
		if n := h.gear.Ammo(AbilityWallclimb); n != 0 {
			t.Fatalf("expected letting go to use ammo, got %d", n)
		}
		if !h.c.Dash.Active() {
			t.Fatal("expected letting go to start a dash")
		}
	})
}

func TestVaultLaunch(t *testing.T) {
	tests := []struct {
		name  string
		held  bool
		stick bool
		want  mgl32.Vec3
		anim  string
	}{
		{name: "held with input", held: true, stick: true, want: mgl32.Vec3{0, 0.4, 1}.Normalize().Mul(9), anim: AnimVaultLaunch},
		{name: "held without input", held: true, want: mgl32.Vec3{0, 10.375, 1.25}, anim: AnimVaultLaunch},
		{name: "not held", stick: true, want: mgl32.Vec3{0, 0.25, 1}.Normalize().Mul(5), anim: AnimVaultEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(floorBox, cube.Box(-1, 0, 0.6, 1, 0.5, 2))
			h.grounded()
			h.input.move = mgl32.Vec3{0, 0, 1}
			h.input.active[input.ActionLedgeGrab] = tt.held
			h.c.Momentum = 5

			if !h.m.ActionPressed(h.c, input.ActionLedgeGrab) {
				t.Fatal("expected a vault to be found")
			}
			if !tt.stick {
				h.input.move = mgl32.Vec3{}
			}
			for i := 0; i < 30 && h.c.State == StateLedgeGrab; i++ {
				h.step(1)
			}
			if h.c.State != StateAirborne {
				t.Fatalf("expected vault to finish airborne, got %v", h.c.State)
			}
			if vel := h.c.Body.Velocity(); !vecApprox(vel, tt.want, 1e-3) {
				t.Fatalf("expected launch velocity %v, got %v", tt.want, vel)
			}
			if h.anim.current != tt.anim {
				t.Fatalf("expected %s, got %s", tt.anim, h.anim.current)
			}
			if h.c.Jump.Timer != 1 {
				t.Fatalf("expected the jump timer to be set, got %v", h.c.Jump.Timer)
			}
		})
	}
}

func TestLedgeGrab(t *testing.T) {
	h := newHarness(floorBox, cube.Box(-1, 0, 0.6, 1, 2, 3))
	h.grounded()
	h.input.move = mgl32.Vec3{0, 0, 1}
	h.c.Body.SetVelocity(mgl32.Vec3{0, 0, 9})
	h.c.Momentum = 3
	h.c.LastFallSpeed = 70

	if !h.m.ActionPressed(h.c, input.ActionLedgeGrab) {
		t.Fatal("expected a ledge to be found")
	}
	l := h.c.Ledge
	if l.Type != GrabLedge || !l.Kinematic() {
		t.Fatalf("expected a kinematic ledge grab, got %v", l.Type)
	}
	if !approx(l.End.Y(), 2, 1e-4) {
		t.Fatalf("expected to end on top of the wall, got %v", l.End)
	}
	if len(l.Legs) != 2 || !h.c.Body.Kinematic {
		t.Fatalf("expected two kinematic legs, got %d", len(l.Legs))
	}
	if h.anim.current != AnimLedgeGrab {
		t.Fatalf("expected %s, got %s", AnimLedgeGrab, h.anim.current)
	}

	h.step(5)
	if h.c.Ledge.Leg != 1 {
		t.Fatalf("expected the first leg to be done, at leg %d", h.c.Ledge.Leg)
	}
	if pos := h.c.Body.Position(); !vecApprox(pos, l.Legs[0].To, 1e-3) {
		t.Fatalf("expected to hang at the edge %v, got %v", l.Legs[0].To, pos)
	}

	for i := 0; i < 60 && h.c.State == StateLedgeGrab; i++ {
		h.step(1)
	}
	if h.c.State != StateGrounded {
		t.Fatalf("expected the grab to land, got %v", h.c.State)
	}
	if h.c.Body.Kinematic || h.c.Body.Shrunk {
		t.Fatal("expected the body to be restored")
	}
	if pos := h.c.Body.Position(); !vecApprox(pos, l.End, 1e-3) {
		t.Fatalf("expected to stand at %v, got %v", l.End, pos)
	}
	// The stored velocity pulls momentum up before the forward speed is picked.
	if vel := h.c.Body.Velocity(); !vecApprox(vel, mgl32.Vec3{0, 0, 4.5}, 1e-3) {
		t.Fatalf("expected forward velocity 4.5, got %v", vel)
	}
	if h.c.Health != h.m.Config.MaxHealth {
		t.Fatalf("expected the grab to reset fall damage, health %v", h.c.Health)
	}
}

var testLadder = Ladder{
	Center:   mgl32.Vec3{0, 1.6, 0.5},
	Rotation: mgl32.QuatIdent(),
	Size:     mgl32.Vec3{1, 3.2, 0.2},
}

// onLadder returns a harness with the character attached to the bottom of testLadder.
func onLadder(t *testing.T) *harness {
	t.Helper()
	h := newHarness(floorBox)
	h.withLadder(testLadder)
	h.grounded()
	if !h.m.ActionPressed(h.c, input.ActionInteract) {
		t.Fatal("expected to attach to the ladder")
	}
	if h.c.State != StateLadderClimb || !h.c.Ladder.Attached {
		t.Fatalf("expected LadderClimb, got %v", h.c.State)
	}
	if !h.c.Body.Shrunk || !slices.Contains(h.feedback.sounds, SoundLadderGrab) {
		t.Fatal("expected a shrunk collider and the ladder grab sound")
	}
	return h
}

func TestLadderClimbToTop(t *testing.T) {
	h := onLadder(t)
	h.c.Body.Contacts.Floor = false
	h.input.move = mgl32.Vec3{0, 0, 1}

	var grabbed bool
	for i := 0; i < 240 && h.c.State != StateGrounded; i++ {
		h.stepMoving(1)
		if h.c.State == StateLedgeGrab {
			grabbed = true
			if !h.c.Body.Kinematic {
				t.Fatal("expected the climb off the ladder to be kinematic")
			}
		}
	}
	if !grabbed {
		t.Fatal("expected the top of the ladder to hand over to a ledge grab")
	}
	if h.c.State != StateGrounded {
		t.Fatalf("expected to stand on top of the ladder, got %v", h.c.State)
	}
	if pos := h.c.Body.Position(); !vecApprox(pos, mgl32.Vec3{0, 3.3, 0.75}, 1e-3) {
		t.Fatalf("unexpected position at the top %v", pos)
	}
	if h.c.Ladder.Attached {
		t.Fatal("expected to be detached")
	}
}

func TestLadderBottomExit(t *testing.T) {
	h := onLadder(t)
	h.c.Body.Contacts.Floor = false
	h.input.move = mgl32.Vec3{0, 0, -1}

	h.step(1)
	if h.c.State != StateAirborne {
		t.Fatalf("expected to let go at the bottom, got %v", h.c.State)
	}
	if h.c.Ladder.Attached || h.c.Body.Shrunk {
		t.Fatal("expected the ladder to be left")
	}
}

func TestLadderGroundedExit(t *testing.T) {
	h := onLadder(t)

	h.step(20)
	if h.c.State != StateLadderClimb {
		t.Fatalf("expected to stay on the ladder for a moment, got %v", h.c.State)
	}
	h.step(15)
	if h.c.State != StateGrounded {
		t.Fatalf("expected to step off onto the floor, got %v", h.c.State)
	}
	if h.c.Ladder.Attached {
		t.Fatal("expected the ladder to be left")
	}
}

func TestLadderJump(t *testing.T) {
	h := onLadder(t)
	h.c.Camera.Yaw = 90

	if !h.m.ActionPressed(h.c, input.ActionJump) {
		t.Fatal("expected to jump off the ladder")
	}
	if h.c.State != StateAirborne || h.c.Ladder.Attached {
		t.Fatalf("expected to leave the ladder airborne, got %v", h.c.State)
	}
	if vel := h.c.Body.Velocity(); !vecApprox(vel, mgl32.Vec3{8, 4.75, 0}, 1e-3) {
		t.Fatalf("expected the jump to push 8 m/s towards the camera, got %v", vel)
	}
	if yaw := game.Yaw(h.c.Body.Rotation()); !approx(yaw, 90, 1e-2) {
		t.Fatalf("expected to face the camera, got yaw %v", yaw)
	}
}

func TestFootstepSounds(t *testing.T) {
	tests := []struct {
		speed float32
		want  string
	}{
		{speed: 5, want: SoundFootstep},
		{speed: 25, want: SoundFootstepFast},
	}
	for _, tt := range tests {
		h := newHarness()
		h.c.Body.SetVelocity(mgl32.Vec3{0, -3, tt.speed})
		h.m.OnAnimationEvent(h.c, EventFootstep)
		if want := []string{tt.want, SoundCloth}; !slices.Equal(h.feedback.sounds, want) {
			t.Errorf("speed %v: expected sounds %v, got %v", tt.speed, want, h.feedback.sounds)
		}
	}
}
