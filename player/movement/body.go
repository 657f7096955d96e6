package movement

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

const (
	// BodyHalfWidth is half of the horizontal size of the regular collider.
	BodyHalfWidth float32 = 0.4
	// BodyHeight is the height of the regular collider, measured from the feet.
	BodyHeight float32 = 1.8
	// CenterOfMassHeight is the distance between the feet and the center of mass.
	CenterOfMassHeight float32 = 0.85
	// ShrunkColliderSize is the size of the collider used while vaulting, dropping down and climbing ladders.
	ShrunkColliderSize float32 = 0.2
	// ShrunkColliderHeight is the height above the feet the shrunk collider is centered at.
	ShrunkColliderHeight float32 = 1.25
)

// Contacts are the trigger volumes of the body, refreshed by the physics integrator after every step.
type Contacts struct {
	Floor        bool
	Wallclimb    bool
	WallrunLeft  bool
	WallrunRight bool
}

// Body is the rigid body of a character. The moveset writes velocity and occasionally teleports the
// position; the physics integrator moves the body and refreshes its contacts.
type Body struct {
	position     mgl32.Vec3
	lastPosition mgl32.Vec3
	velocity     mgl32.Vec3
	lastVelocity mgl32.Vec3
	rotation     mgl32.Quat

	// Kinematic bodies ignore their velocity and are moved only by SetPosition.
	Kinematic bool
	// Shrunk is true while the small collider is in use.
	Shrunk bool
	// Contacts are the trigger states computed by the last physics step.
	Contacts Contacts
}

// NewBody returns a body standing at the given position facing +Z.
func NewBody(pos mgl32.Vec3) Body {
	return Body{
		position:     pos,
		lastPosition: pos,
		rotation:     mgl32.QuatIdent(),
	}
}

// Position returns the position of the feet of the body.
func (b *Body) Position() mgl32.Vec3 {
	return b.position
}

// LastPosition returns the position the body had before the last time it was moved.
func (b *Body) LastPosition() mgl32.Vec3 {
	return b.lastPosition
}

// SetPosition teleports the body.
func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.lastPosition = b.position
	b.position = pos
}

// Velocity returns the velocity of the body.
func (b *Body) Velocity() mgl32.Vec3 {
	return b.velocity
}

// LastVelocity returns the velocity the body had before it was last updated.
func (b *Body) LastVelocity() mgl32.Vec3 {
	return b.lastVelocity
}

// SetVelocity sets the velocity of the body.
func (b *Body) SetVelocity(vel mgl32.Vec3) {
	b.lastVelocity = b.velocity
	b.velocity = vel
}

// AddForce applies an acceleration to the body over dt seconds.
func (b *Body) AddForce(accel mgl32.Vec3, dt float32) {
	b.SetVelocity(b.velocity.Add(accel.Mul(dt)))
}

// Rotation returns the orientation of the body.
func (b *Body) Rotation() mgl32.Quat {
	return b.rotation
}

// SetRotation sets the orientation of the body.
func (b *Body) SetRotation(rot mgl32.Quat) {
	b.rotation = rot.Normalize()
}

// Collider returns the world space collision box of the body.
func (b *Body) Collider() cube.BBox {
	if b.Shrunk {
		half := ShrunkColliderSize / 2
		return game.AABBFromDimensions(ShrunkColliderSize, half, half).
			Translate(b.position.Add(mgl32.Vec3{0, ShrunkColliderHeight}))
	}
	return game.AABBFromDimensions(BodyHalfWidth*2, 0, BodyHeight).Translate(b.position)
}

// Frame returns the frame at the center of mass of the body.
func (b *Body) Frame() Frame {
	return Frame{Position: b.position.Add(mgl32.Vec3{0, CenterOfMassHeight}), Rotation: b.rotation}
}

// RawFrame returns the frame at the feet of the body.
func (b *Body) RawFrame() Frame {
	return Frame{Position: b.position, Rotation: b.rotation}
}

// Frame is a position and orientation pair.
type Frame struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func (f Frame) Forward() mgl32.Vec3 { return f.Rotation.Rotate(game.Forward) }
func (f Frame) Back() mgl32.Vec3    { return f.Rotation.Rotate(game.Back) }
func (f Frame) Right() mgl32.Vec3   { return f.Rotation.Rotate(game.Right) }
func (f Frame) Left() mgl32.Vec3    { return f.Rotation.Rotate(game.Left) }

// ToLocal converts a world space direction into the local space of the frame.
func (f Frame) ToLocal(dir mgl32.Vec3) mgl32.Vec3 {
	return f.Rotation.Inverse().Rotate(dir)
}

// ToWorld converts a local space direction into world space.
func (f Frame) ToWorld(dir mgl32.Vec3) mgl32.Vec3 {
	return f.Rotation.Rotate(dir)
}
