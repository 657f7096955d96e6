package movement

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

type mockWorld struct {
	boxes   []cube.BBox
	ladders []Ladder
}

func (w *mockWorld) TouchingLadder(origin mgl32.Vec3, radius float32) (Ladder, bool) {
	for _, l := range w.ladders {
		if l.Bounds().GrowVec3(mgl32.Vec3{radius, radius, radius}).Vec3Within(origin) {
			return l, true
		}
	}
	return Ladder{}, false
}

func (w *mockWorld) RayCast(origin, dir mgl32.Vec3, maxDist float32) CastResult {
	return w.cast(origin, dir, maxDist, mgl32.Vec3{})
}

func (w *mockWorld) ShapeCast(origin, dir mgl32.Vec3, maxDist float32, shape Shape, _ mgl32.Quat) CastResult {
	return w.cast(origin, dir, maxDist, shape.HalfExtents())
}

func (w *mockWorld) OverlapCheck(volume cube.BBox) bool {
	for _, bb := range w.boxes {
		if bb.IntersectsWith(volume) {
			return true
		}
	}
	return false
}

func (w *mockWorld) cast(origin, dir mgl32.Vec3, maxDist float32, grow mgl32.Vec3) CastResult {
	dir = game.SafeNormalize(dir)
	if maxDist <= 0 || dir.Len() == 0 {
		return CastResult{}
	}
	end := origin.Add(dir.Mul(maxDist))
	best := CastResult{Distance: maxDist + 1}
	for i, bb := range w.boxes {
		bb = bb.GrowVec3(grow)
		if bb.Vec3Within(origin) {
			continue
		}
		res, ok := trace.BBoxIntercept(bb, origin, end)
		if !ok {
			continue
		}
		normal := game.FaceNormal(res.Face())
		if normal.Dot(dir) >= 0 {
			continue
		}
		if dist := res.Position().Sub(origin).Len(); dist < best.Distance {
			best = CastResult{Hit: true, Point: res.Position(), Normal: normal, Distance: dist, Collider: int32(i)}
		}
	}
	if !best.Hit {
		return CastResult{}
	}
	return best
}

type mockGear struct {
	ammo     map[Ability]int
	maxAmmo  map[Ability]int
	disabled map[Ability]bool
}

func newMockGear() *mockGear {
	maxAmmo := map[Ability]int{AbilityWallrun: 2, AbilityWallclimb: 1, AbilityJump: 1, AbilityWallKick: 1, AbilityGrappler: 1}
	g := &mockGear{ammo: map[Ability]int{}, maxAmmo: maxAmmo, disabled: map[Ability]bool{}}
	g.ResetAmmo()
	return g
}

func (g *mockGear) Ammo(a Ability) int { return g.ammo[a] }

func (g *mockGear) DecrementAmmo(a Ability) bool {
	if g.ammo[a] <= 0 {
		return false
	}
	g.ammo[a]--
	return true
}

func (g *mockGear) ResetAmmo(except ...Ability) {
outer:
	for a, n := range g.maxAmmo {
		for _, e := range except {
			if a == e {
				continue outer
			}
		}
		g.ammo[a] = n
	}
}

func (g *mockGear) AbilityEnabled(a Ability) bool { return !g.disabled[a] }

type mockAnimator struct {
	current string
	speed   float32
}

func (a *mockAnimator) SetCurrentAnimation(key string)  { a.current = key }
func (a *mockAnimator) CurrentAnimation() string        { return a.current }
func (a *mockAnimator) SetAnimationSpeed(speed float32) { a.speed = speed }

type mockFeedback struct {
	sounds []string
	hud    HUD
}

func (f *mockFeedback) PlaySound(name string, _ float32) { f.sounds = append(f.sounds, name) }
func (f *mockFeedback) UpdateHUD(h HUD)                 { f.hud = h }

type mockInput struct {
	active   map[input.Action]bool
	held     map[input.Action]bool
	move     mgl32.Vec3
	locks    []string
	released []input.Action
}

func newMockInput() *mockInput {
	return &mockInput{active: map[input.Action]bool{}, held: map[input.Action]bool{}}
}

func (i *mockInput) Active(a input.Action) bool { return i.active[a] }
func (i *mockInput) Held(a input.Action) bool   { return i.held[a] || i.active[a] }

func (i *mockInput) KeyReleased(a input.Action, _ bool) {
	i.active[a] = false
	i.held[a] = false
	i.released = append(i.released, a)
}

func (i *mockInput) MoveVector() mgl32.Vec3 { return game.SafeNormalize(i.move) }

func (i *mockInput) AddInputLock(id string, _ float32) {
	i.locks = append(i.locks, id)
	clear(i.active)
	clear(i.held)
}

type harness struct {
	m        *Moveset
	c        *Character
	world    *mockWorld
	gear     *mockGear
	input    *mockInput
	anim     *mockAnimator
	feedback *mockFeedback
	clock    *game.TickClock
}

// floorBox is a large slab with its top face at y=0.
var floorBox = cube.Box(-50, -1, -50, 50, 0, 50)

func newHarness(boxes ...cube.BBox) *harness {
	cfg := DefaultConfig()
	h := &harness{
		world:    &mockWorld{boxes: boxes},
		gear:     newMockGear(),
		input:    newMockInput(),
		anim:     &mockAnimator{},
		feedback: &mockFeedback{},
		clock:    &game.TickClock{},
	}
	h.m = &Moveset{
		Config:   &cfg,
		World:    h.world,
		Gear:     h.gear,
		Animator: h.anim,
		Feedback: h.feedback,
		Input:    h.input,
		Clock:    h.clock,
	}
	h.c = NewCharacter(mgl32.Vec3{}, cfg.MaxHealth)
	return h
}

// grounded puts the character on the floor at its current position.
func (h *harness) grounded() {
	h.c.State = StateGrounded
	h.c.Body.Contacts.Floor = true
}

// withLadder adds a ladder to the world and lets the moveset attach to it.
func (h *harness) withLadder(l Ladder) {
	h.world.ladders = append(h.world.ladders, l)
	h.m.Interactables = h.world
}

func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(game.TickDelta)
		h.m.Step(h.c, game.TickDelta)
	}
}

// stepMoving steps like step and then moves non-kinematic bodies by their velocity, ignoring collisions.
func (h *harness) stepMoving(n int) {
	for i := 0; i < n; i++ {
		h.step(1)
		if !h.c.Body.Kinematic {
			h.c.Body.SetPosition(h.c.Body.Position().Add(h.c.Body.Velocity().Mul(game.TickDelta)))
		}
	}
}
