package movement

import (
	"slices"
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

func approx(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

func TestJumpFromRest(t *testing.T) {
	h := newHarness(floorBox)
	h.grounded()

	if !h.m.ActionPressed(h.c, input.ActionJump) {
		t.Fatal("expected jump to be performed")
	}
	if vy := h.c.Body.Velocity().Y(); !approx(vy, 4.75, 1e-5) {
		t.Fatalf("expected vertical velocity 4.75, got %v", vy)
	}
	if h.c.State != StateAirborne {
		t.Fatalf("expected Airborne, got %v", h.c.State)
	}
	if n := h.gear.Ammo(AbilityJump); n != 0 {
		t.Fatalf("expected jump ammo to be consumed, got %d", n)
	}
	if h.c.Jump.Timer != h.m.Config.JumpHoldTime {
		t.Fatalf("expected jump timer %v, got %v", h.m.Config.JumpHoldTime, h.c.Jump.Timer)
	}
	if !slices.Contains(h.feedback.sounds, SoundFootstep) {
		t.Fatalf("expected footstep sound, got %v", h.feedback.sounds)
	}
}

func TestJumpCoyoteBoundary(t *testing.T) {
	coyote := DefaultConfig().JumpCoyoteTime

	t.Run("floor probe hits at the boundary", func(t *testing.T) {
		h := newHarness(cube.Box(-50, -1, -50, 50, -0.02, 50))
		h.c.AirborneTime = coyote
		if !h.m.ActionPressed(h.c, input.ActionJump) {
			t.Fatal("expected jump to succeed while a floor is below")
		}
	})
	t.Run("no floor at the boundary", func(t *testing.T) {
		h := newHarness()
		h.c.Body.SetPosition(mgl32.Vec3{0, 10, 0})
		h.c.AirborneTime = coyote
		if h.m.ActionPressed(h.c, input.ActionJump) {
			t.Fatal("expected jump to be rejected")
		}
	})
	t.Run("no floor one tick later", func(t *testing.T) {
		h := newHarness()
		h.c.Body.SetPosition(mgl32.Vec3{0, 10, 0})
		h.c.AirborneTime = coyote + game.TickDelta
		if h.m.ActionPressed(h.c, input.ActionJump) {
			t.Fatal("expected jump to be rejected")
		}
		if n := h.gear.Ammo(AbilityJump); n != 1 {
			t.Fatalf("rejected jump consumed ammo (%d left)", n)
		}
	})
	t.Run("inside the window without floor", func(t *testing.T) {
		h := newHarness()
		h.c.Body.SetPosition(mgl32.Vec3{0, 10, 0})
		h.c.AirborneTime = coyote - game.TickDelta
		h.c.LastFallSpeed = 12
		if !h.m.ActionPressed(h.c, input.ActionJump) {
			t.Fatal("expected coyote jump to succeed")
		}
		if h.c.AirborneTime != 0 || h.c.LastFallSpeed != 0 {
			t.Fatalf("expected the jump to reset airborne time and fall speed, got %v and %v", h.c.AirborneTime, h.c.LastFallSpeed)
		}
	})
}

func TestLongJumpWhileDashing(t *testing.T) {
	h := newHarness()
	h.c.Body.SetPosition(mgl32.Vec3{0, 10, 0})
	h.c.Body.SetVelocity(mgl32.Vec3{0, 0, 8})
	h.c.Momentum = 8
	h.c.AirborneTime = 0.05
	h.c.LastLanded = h.clock.Now()
	h.c.Dash.Charge = 0

	if !h.m.ActionPressed(h.c, input.ActionJump) {
		t.Fatal("expected jump to be performed")
	}
	if h.c.Jump.Last != JumpLong {
		t.Fatalf("expected a long jump, got %v", h.c.Jump.Last)
	}
	vel := h.c.Body.Velocity()
	if !approx(vel.Len(), 14, 1e-3) {
		t.Fatalf("expected long jump speed 14, got %v", vel.Len())
	}
	if !approx(vel.Y()/vel.Z(), 0.35, 1e-3) {
		t.Fatalf("unexpected long jump direction %v", vel)
	}
	if !h.c.VelocityLocked {
		t.Fatal("expected velocity to be locked after a long jump")
	}
	if h.anim.current != AnimLongJump {
		t.Fatalf("expected %s, got %s", AnimLongJump, h.anim.current)
	}
}

func TestLongJumpOffEdge(t *testing.T) {
	h := newHarness(cube.Box(-50, -1, -50, 50, 0, 0.5))
	h.grounded()
	h.c.Body.SetPosition(mgl32.Vec3{0, 0, 0.4})
	h.c.Body.SetVelocity(mgl32.Vec3{0, 0, 8})
	h.c.Momentum = 8
	h.c.LastLanded = h.clock.Now()
	h.c.Dash.Charge = 0

	if !h.m.ActionPressed(h.c, input.ActionJump) {
		t.Fatal("expected jump to be performed")
	}
	if h.c.Jump.Last != JumpLong {
		t.Fatalf("expected a long jump, got %v", h.c.Jump.Last)
	}
}

func TestJumpOnFlatGroundIsDefault(t *testing.T) {
	h := newHarness(floorBox)
	h.grounded()
	h.c.Body.SetVelocity(mgl32.Vec3{0, 0, 8})
	h.c.Momentum = 8
	h.c.LastLanded = h.clock.Now()
	h.c.Dash.Charge = 0

	if !h.m.ActionPressed(h.c, input.ActionJump) {
		t.Fatal("expected jump to be performed")
	}
	if h.c.Jump.Last != JumpDefault {
		t.Fatalf("expected a default jump with floor ahead, got %v", h.c.Jump.Last)
	}
	if vy := h.c.Body.Velocity().Y(); !approx(vy, 9.5, 1e-5) {
		t.Fatalf("expected full jump force at speed, got %v", vy)
	}
}

func TestAmmoNeverNegative(t *testing.T) {
	h := newHarness()
	h.c.Body.SetPosition(mgl32.Vec3{0, 10, 0})
	h.gear.ammo[AbilityJump] = 0
	for i := 0; i < 5; i++ {
		if h.m.ActionPressed(h.c, input.ActionJump) {
			t.Fatal("expected jump without ammo to be rejected")
		}
	}
	for _, a := range Abilities() {
		if n := h.gear.Ammo(a); n < 0 {
			t.Fatalf("%v ammo went negative: %d", a, n)
		}
	}
}

func TestClassifyLedge(t *testing.T) {
	m := &Moveset{Config: new(Config)}
	*m.Config = DefaultConfig()

	tests := []struct {
		surface float32
		want    GrabType
	}{
		{0.5, GrabVaultLow},
		{0.65, GrabVaultLow},
		{1.0, GrabVaultHigh},
		{1.25, GrabVaultHigh},
		{2.0, GrabLedge},
	}
	for _, tt := range tests {
		if got := m.classifyLedge(tt.surface, 0); got != tt.want {
			t.Errorf("classifyLedge(%v) = %v, want %v", tt.surface, got, tt.want)
		}
	}
}

func TestVaultLow(t *testing.T) {
	h := newHarness(floorBox, cube.Box(-1, 0, 0.6, 1, 0.5, 2))
	h.grounded()
	h.input.move = mgl32.Vec3{0, 0, 1}
	h.c.Momentum = 5

	if !h.m.ActionPressed(h.c, input.ActionLedgeGrab) {
		t.Fatal("expected a vault to be found")
	}
	if h.c.State != StateLedgeGrab {
		t.Fatalf("expected LedgeGrab state, got %v", h.c.State)
	}
	if h.c.Ledge.Type != GrabVaultLow {
		t.Fatalf("expected VaultLow, got %v", h.c.Ledge.Type)
	}
	if !approx(h.c.Ledge.End.Y(), 0.5, 1e-4) {
		t.Fatalf("expected the vault to land on top of the box, got %v", h.c.Ledge.End)
	}
	if h.c.Body.Kinematic {
		t.Fatal("vaults must not be kinematic")
	}
	if !h.c.Body.Shrunk {
		t.Fatal("expected collider to be shrunk while vaulting")
	}
	if vel := h.c.Body.Velocity(); !game.Vec3ApproxEq(vel, mgl32.Vec3{0, 0, 5}) {
		t.Fatalf("expected velocity to be redirected forward, got %v", vel)
	}

	h.gear.ammo[AbilityWallrun] = 0
	for i := 0; i < 30 && h.c.State == StateLedgeGrab; i++ {
		h.step(1)
	}
	if h.c.State != StateAirborne {
		t.Fatalf("expected vault to finish airborne, got %v", h.c.State)
	}
	if h.c.Body.Shrunk {
		t.Fatal("expected collider to be restored")
	}
	if h.anim.current != AnimVaultEnd {
		t.Fatalf("expected %s, got %s", AnimVaultEnd, h.anim.current)
	}
	if n := h.gear.Ammo(AbilityWallrun); n != 2 {
		t.Fatalf("expected ammo to be refilled after the vault, got %d", n)
	}
}

func TestWallrunLocksForwardSpeed(t *testing.T) {
	h := newHarness(cube.Box(-1.5, -5, -10, -1, 5, 10))
	h.c.Body.SetPosition(mgl32.Vec3{0, 1, 0})
	h.c.Body.SetVelocity(mgl32.Vec3{0, 0, 2})
	h.c.Body.Contacts.WallrunLeft = true
	h.c.Momentum = 10

	if !h.m.ActionPressed(h.c, input.ActionWallrun) {
		t.Fatal("expected wallrun to start")
	}
	if h.c.State != StateWallrun {
		t.Fatalf("expected Wallrun, got %v", h.c.State)
	}
	if h.c.Wallrun.ForceTarget != 10 {
		t.Fatalf("expected forward speed target 10, got %v", h.c.Wallrun.ForceTarget)
	}
	if h.c.Wallrun.Side != SideLeft {
		t.Fatalf("expected wall on the left, got %v", h.c.Wallrun.Side)
	}
	if n := h.gear.Ammo(AbilityWallrun); n != 1 {
		t.Fatalf("expected one wallrun charge left, got %d", n)
	}
	if !slices.Contains(h.input.released, input.ActionJump) {
		t.Fatal("expected jump to be released when starting a wallrun")
	}

	before := h.c.Body.Velocity().Len()
	h.step(10)
	if h.c.State != StateWallrun {
		t.Fatalf("expected wallrun to continue, got %v", h.c.State)
	}
	if after := h.c.Body.Velocity().Len(); after <= before {
		t.Fatalf("expected the wallrun to accelerate, %v -> %v", before, after)
	}
}

func TestWallrunRequiresContact(t *testing.T) {
	h := newHarness(cube.Box(-1.5, -5, -10, -1, 5, 10))
	h.c.Body.SetPosition(mgl32.Vec3{0, 1, 0})
	if h.m.ActionPressed(h.c, input.ActionWallrun) {
		t.Fatal("expected wallrun without contact to be rejected")
	}
}

func TestWallclimb(t *testing.T) {
	h := newHarness(cube.Box(-2, -5, 0.5, 2, 10, 1.5))
	h.c.Body.SetPosition(mgl32.Vec3{0, 2, 0})
	h.c.Body.SetVelocity(mgl32.Vec3{0, -2, 0})
	h.c.Body.Contacts.Wallclimb = true
	h.input.active[input.ActionWallAction] = true

	if !h.m.ActionPressed(h.c, input.ActionWallAction) {
		t.Fatal("expected wallclimb to start")
	}
	if h.c.State != StateWallclimb {
		t.Fatalf("expected Wallclimb, got %v", h.c.State)
	}
	if vy := h.c.Body.Velocity().Y(); vy != h.m.Config.WallclimbMinSpeed {
		t.Fatalf("expected minimum climb speed, got %v", vy)
	}
	if n := h.gear.Ammo(AbilityWallclimb); n != 0 {
		t.Fatalf("expected wallclimb ammo to be consumed, got %d", n)
	}
	if h.input.active[input.ActionWallAction] {
		t.Fatal("expected the wall action to be released in toggle mode")
	}

	vy := h.c.Body.Velocity().Y()
	h.m.OnAnimationEvent(h.c, EventWallclimbStep)
	if got := h.c.Body.Velocity().Y(); !approx(got-vy, h.m.Config.WallclimbStepStrength, 1e-4) {
		t.Fatalf("expected climb step impulse, got %v", got-vy)
	}

	h.step(60)
	if h.c.State != StateAirborne {
		t.Fatalf("expected climb to run out, got %v", h.c.State)
	}
}

func TestWallclimbRejectsFastFall(t *testing.T) {
	h := newHarness(cube.Box(-2, -5, 0.5, 2, 10, 1.5))
	h.c.Body.SetPosition(mgl32.Vec3{0, 2, 0})
	h.c.Body.SetVelocity(mgl32.Vec3{0, -20, 0})
	h.input.active[input.ActionWallAction] = true
	if h.m.ActionPressed(h.c, input.ActionWallAction) {
		t.Fatal("expected wallclimb to be rejected while falling fast")
	}
}

func TestWallKick(t *testing.T) {
	h := newHarness(cube.Box(-2, -5, -1.5, 2, 10, -0.5))
	h.c.Body.SetPosition(mgl32.Vec3{0, 2, 0})
	h.c.Dash.Charge = 0

	if !h.m.ActionPressed(h.c, input.ActionWallKick) {
		t.Fatal("expected wall kick")
	}
	vel := h.c.Body.Velocity()
	if !game.Vec3ApproxEq(vel, mgl32.Vec3{0, 16, 12.5}) {
		t.Fatalf("unexpected wall kick velocity %v", vel)
	}
	if n := h.gear.Ammo(AbilityWallKick); n != 0 {
		t.Fatalf("expected wall kick ammo to be consumed, got %d", n)
	}
	if h.m.ActionPressed(h.c, input.ActionWallKick) {
		t.Fatal("expected a second wall kick without ammo to be rejected")
	}
}

func TestLandIsIdempotent(t *testing.T) {
	h := newHarness(floorBox)
	h.c.LastFallSpeed = 50
	h.c.Momentum = 7
	h.gear.ammo[AbilityJump] = 0
	h.gear.ammo[AbilityWallrun] = 0

	h.m.Land(h.c)
	h.m.Land(h.c)

	if h.c.State != StateGrounded {
		t.Fatalf("expected Grounded, got %v", h.c.State)
	}
	if h.c.Health != 75 {
		t.Fatalf("expected fall damage to be applied once (75 health), got %v", h.c.Health)
	}
	if h.c.Momentum != 7 {
		t.Fatalf("landing changed momentum: %v", h.c.Momentum)
	}
	if h.gear.Ammo(AbilityJump) != 1 || h.gear.Ammo(AbilityWallrun) != 2 {
		t.Fatalf("expected ammo to be refilled, got %v", h.gear.ammo)
	}
}

func TestLandingDashNegatesDamageAndSlides(t *testing.T) {
	h := newHarness(floorBox)
	h.c.LastFallSpeed = 60
	h.c.Dash.Charge = 0
	h.c.Body.SetVelocity(mgl32.Vec3{8, 0, 0})
	h.input.held[input.ActionSlide] = true

	h.m.Land(h.c)
	if h.c.State != StateSlide {
		t.Fatalf("expected Slide, got %v", h.c.State)
	}
	if h.c.Health != h.m.Config.MaxHealth {
		t.Fatalf("expected no fall damage, health %v", h.c.Health)
	}
}

func TestMomentumDecaysWithoutInput(t *testing.T) {
	h := newHarness(floorBox)
	h.grounded()
	h.c.Momentum = 15
	h.c.Body.SetVelocity(mgl32.Vec3{0, 0, 10})

	last := h.c.Momentum
	for i := 0; i < 30; i++ {
		h.step(1)
		if h.c.Momentum > last {
			t.Fatalf("tick %d: momentum increased without input (%v -> %v)", i, last, h.c.Momentum)
		}
		last = h.c.Momentum
	}
	if last >= 15 {
		t.Fatalf("expected momentum to decay, got %v", last)
	}
}

func TestMomentumBuildsWithAlignedInput(t *testing.T) {
	h := newHarness(floorBox)
	h.grounded()
	h.input.move = mgl32.Vec3{0, 0, 1}

	last := h.c.Momentum
	for i := 0; i < 5; i++ {
		h.step(1)
		if h.c.Momentum < last {
			t.Fatalf("tick %d: momentum decreased while accelerating (%v -> %v)", i, last, h.c.Momentum)
		}
		last = h.c.Momentum
	}
	if last <= 0 {
		t.Fatal("expected momentum to build up")
	}
	if h.c.Body.Velocity().Z() <= 0 {
		t.Fatalf("expected forward velocity, got %v", h.c.Body.Velocity())
	}
	if h.anim.current != AnimRun {
		t.Fatalf("expected %s, got %s", AnimRun, h.anim.current)
	}
}

func TestFatalFallRespawns(t *testing.T) {
	h := newHarness()
	h.c.Spawn = mgl32.Vec3{1, 2, 3}
	h.c.Body.SetPosition(mgl32.Vec3{0, -150, 0})
	h.c.Body.SetVelocity(mgl32.Vec3{0, -60, 0})
	h.c.Momentum = 20

	h.step(1)
	if h.c.Body.Position() != h.c.Spawn {
		t.Fatalf("expected respawn at %v, got %v", h.c.Spawn, h.c.Body.Position())
	}
	if h.c.Body.Velocity() != (mgl32.Vec3{}) || h.c.Momentum != 0 {
		t.Fatal("expected velocity and momentum to be cleared")
	}
	if h.c.Health != h.m.Config.MaxHealth || h.c.State != StateAirborne {
		t.Fatalf("unexpected respawn state: health %v, state %v", h.c.Health, h.c.State)
	}
	if !slices.Contains(h.input.locks, "respawn") {
		t.Fatalf("expected a respawn input lock, got %v", h.input.locks)
	}
	if !slices.Contains(h.feedback.sounds, SoundDeath) {
		t.Fatal("expected death sound")
	}
}

type mockTrials struct {
	active    bool
	restarted int
	stopped   int
}

func (tr *mockTrials) Active() bool { return tr.active }
func (tr *mockTrials) Restart()     { tr.restarted++ }
func (tr *mockTrials) Stop()        { tr.stopped++ }

func TestRespawnFallsThroughDuringTrial(t *testing.T) {
	h := newHarness()
	trials := &mockTrials{active: true}
	h.m.Trials = trials

	if h.m.ActionPressed(h.c, input.ActionRespawn) {
		t.Fatal("expected respawn to be rejected while a trial is running")
	}
	if !h.m.ActionPressed(h.c, input.ActionQuickRestart) || trials.restarted != 1 {
		t.Fatal("expected quick restart to restart the trial")
	}

	trials.active = false
	if h.m.ActionPressed(h.c, input.ActionQuickRestart) {
		t.Fatal("expected quick restart to be rejected without a trial")
	}
	if !h.m.ActionPressed(h.c, input.ActionRespawn) {
		t.Fatal("expected respawn outside of a trial")
	}
}

func TestDashCooldown(t *testing.T) {
	h := newHarness()
	h.c.Body.SetPosition(mgl32.Vec3{0, 10, 0})

	if !h.m.ActionPressed(h.c, input.ActionCoil) {
		t.Fatal("expected dash to start")
	}
	if h.anim.current != AnimCoil {
		t.Fatalf("expected %s, got %s", AnimCoil, h.anim.current)
	}
	h.m.ActionDropped(h.c, input.ActionCoil)
	if h.c.Dash.Active() {
		t.Fatal("expected dash to end on release")
	}
	if h.m.ActionPressed(h.c, input.ActionCoil) {
		t.Fatal("expected dash to be on cooldown")
	}
	for i := 0; i < 31; i++ {
		h.clock.Advance(game.TickDelta)
	}
	if !h.m.ActionPressed(h.c, input.ActionCoil) {
		t.Fatal("expected dash after the cooldown")
	}
}

func TestDashExpires(t *testing.T) {
	h := newHarness()
	h.c.Body.SetPosition(mgl32.Vec3{0, 50, 0})
	h.m.ActionPressed(h.c, input.ActionCoil)

	h.step(int(h.m.Config.DashLengthAirborne*game.TickRate) + 2)
	if h.c.Dash.Active() {
		t.Fatal("expected the airborne dash to expire")
	}
}

func TestDropdownFromSlide(t *testing.T) {
	h := newHarness(cube.Box(-50, -1, -50, 50, 0, 1))
	h.c.State = StateSlide
	h.c.Body.Contacts.Floor = true
	h.c.Body.SetPosition(mgl32.Vec3{0, 0, 0.9})
	h.c.Body.SetVelocity(mgl32.Vec3{0, 0, 8})
	h.input.held[input.ActionSlide] = true

	h.step(1)
	if h.c.State != StateDropdown {
		t.Fatalf("expected Dropdown, got %v", h.c.State)
	}
	if !h.c.Body.Shrunk || !h.c.Dash.Active() {
		t.Fatal("expected a dropdown to shrink the collider and start a dash")
	}

	for i := 0; i < 30 && h.c.State == StateDropdown; i++ {
		h.step(1)
	}
	if h.c.State != StateAirborne {
		t.Fatalf("expected dropdown to end airborne, got %v", h.c.State)
	}
	if h.c.Body.Shrunk {
		t.Fatal("expected collider to be restored")
	}
	if y := h.c.Body.Position().Y(); y > -1.5 {
		t.Fatalf("expected the body to drop below the edge, got y=%v", y)
	}
}

func TestGrappleYank(t *testing.T) {
	h := newHarness(cube.Box(-5, -5, 20, 5, 5, 21))
	h.c.Body.SetPosition(mgl32.Vec3{0, 0, 0})
	h.input.active[input.ActionCoreUse] = true

	if !h.m.ActionPressed(h.c, input.ActionCoreUse) {
		t.Fatal("expected grapple to attach")
	}
	if n := h.gear.Ammo(AbilityGrappler); n != 0 {
		t.Fatalf("expected airborne grapple to use ammo, got %d", n)
	}
	if !approx(h.c.Grapple.HitDelay, 0.175, 1e-4) {
		t.Fatalf("unexpected hit delay %v", h.c.Grapple.HitDelay)
	}
	for i := 0; i < 120 && h.c.Grapple.Active; i++ {
		h.step(1)
	}
	if h.c.Grapple.Active {
		t.Fatal("expected the grapple to yank and reset")
	}
	if z := h.c.Body.Velocity().Z(); z < 5 {
		t.Fatalf("expected the yank to pull towards the target, got %v", h.c.Body.Velocity())
	}
}

func TestGrappleReleasedBeforeAttach(t *testing.T) {
	h := newHarness(cube.Box(-5, -5, 20, 5, 5, 21))
	h.c.Body.SetPosition(mgl32.Vec3{0, 0, 0})
	h.input.active[input.ActionCoreUse] = true
	h.m.ActionPressed(h.c, input.ActionCoreUse)

	h.input.active[input.ActionCoreUse] = false
	h.step(1)
	if h.c.Grapple.Active {
		t.Fatal("expected grapple to be cancelled")
	}
	if z := h.c.Body.Velocity().Z(); z != 0 {
		t.Fatalf("expected no yank, got %v", h.c.Body.Velocity())
	}
}

func TestFlyToggle(t *testing.T) {
	h := newHarness()
	if h.m.ActionPressed(h.c, input.ActionFly) {
		t.Fatal("expected fly to be rejected when not allowed")
	}
	h.m.Config.AllowFly = true
	if !h.m.ActionPressed(h.c, input.ActionFly) || h.c.State != StateFly {
		t.Fatalf("expected Fly, got %v", h.c.State)
	}
	if h.m.ActionPressed(h.c, input.ActionCoil) {
		t.Fatal("expected coil to fall through while flying")
	}
	if !h.m.ActionPressed(h.c, input.ActionFlyBoost) {
		t.Fatal("expected fly boost while flying")
	}
	h.input.move = mgl32.Vec3{0, 0, 1}
	h.step(30)
	if z := h.c.Body.Velocity().Z(); !approx(z, h.m.Config.FlySpeed, 1e-3) {
		t.Fatalf("expected fly speed %v, got %v", h.m.Config.FlySpeed, z)
	}
}

func TestHUDIsPushedEveryStep(t *testing.T) {
	h := newHarness(floorBox)
	h.grounded()
	h.gear.ammo[AbilityWallrun] = 1
	h.step(1)
	if h.feedback.hud.State != StateGrounded || h.feedback.hud.Ammo[AbilityWallrun] != 1 {
		t.Fatalf("unexpected HUD %+v", h.feedback.hud)
	}
}
