package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/oerror"
)

// WallActionMode selects what a wall action performs once a wall is found in front of the character.
type WallActionMode string

const (
	WallActionWallclimb WallActionMode = "wallclimb"
	WallActionWallboost WallActionMode = "wallboost"
)

// Config is the tuning table of the moveset. A Config is read-only while characters are being stepped
// and may be shared by any amount of characters.
type Config struct {
	Gravity      float32 `yaml:"gravity"`
	ReferenceFPS float32 `yaml:"reference_fps"`

	RunMaxSpeed           float32    `yaml:"run_max_speed"`
	AccelerationCurve     game.Curve `yaml:"acceleration_curve"`
	MomentumSyncThreshold float32    `yaml:"momentum_sync_threshold"`
	MomentumCap           float32    `yaml:"momentum_cap"`

	JumpForce                        float32 `yaml:"jump_force"`
	JumpRequiredSpeed                float32 `yaml:"jump_required_speed"`
	JumpCoyoteTime                   float32 `yaml:"jump_coyote_time"`
	JumpHoldTime                     float32 `yaml:"jump_hold_time"`
	JumpGravityDivisor               float32 `yaml:"jump_gravity_divisor"`
	LongJumpForce                    float32 `yaml:"long_jump_force"`
	LongJumpHeightMultiplier         float32 `yaml:"long_jump_height_multiplier"`
	LongJumpHeightMultiplierDropdown float32 `yaml:"long_jump_height_multiplier_dropdown"`
	LongJumpGraceGrounded            float32 `yaml:"long_jump_grace_grounded"`
	LongJumpGraceAirborne            float32 `yaml:"long_jump_grace_airborne"`
	LandVelocityThreshold            float32 `yaml:"land_velocity_threshold"`

	DashCooldown                     float32 `yaml:"dash_cooldown"`
	DashLengthGrounded               float32 `yaml:"dash_length_grounded"`
	DashLengthAirborne               float32 `yaml:"dash_length_airborne"`
	DashGroundAccelerationMultiplier float32 `yaml:"dash_ground_acceleration_multiplier"`
	SlideThreshold                   float32 `yaml:"slide_threshold"`
	SlideAccelerationMultiplier      float32 `yaml:"slide_acceleration_multiplier"`

	DropdownDistance  float32 `yaml:"dropdown_distance"`
	DropdownHeight    float32 `yaml:"dropdown_height"`
	DropdownTweenTime float32 `yaml:"dropdown_tween_time"`

	WallAction                 WallActionMode `yaml:"wall_action"`
	WallclimbThreshold         float32        `yaml:"wallclimb_threshold"`
	WallclimbMinSpeed          float32        `yaml:"wallclimb_min_speed"`
	WallclimbLength            float32        `yaml:"wallclimb_length"`
	WallclimbCoyoteTime        float32        `yaml:"wallclimb_coyote_time"`
	WallclimbStepStrength      float32        `yaml:"wallclimb_step_strength"`
	WallclimbProgressionCurve  game.Curve     `yaml:"wallclimb_progression_curve"`
	WallboostForce             float32        `yaml:"wallboost_force"`
	ClutchEnabled              bool           `yaml:"clutch_enabled"`
	ClutchThresholdMultiplier  float32        `yaml:"clutch_threshold_multiplier"`
	ClutchMinTime              float32        `yaml:"clutch_min_time"`
	ClutchMaxTime              float32        `yaml:"clutch_max_time"`
	ClutchVelocityFrom         float32        `yaml:"clutch_velocity_from"`
	ClutchVelocityTo           float32        `yaml:"clutch_velocity_to"`
	ClutchVelocityTweenTime    float32        `yaml:"clutch_velocity_tween_time"`
	WallrunThreshold           float32        `yaml:"wallrun_threshold"`
	WallrunMinSpeed            float32        `yaml:"wallrun_min_speed"`
	WallrunMomentumMaxSpeed    float32        `yaml:"wallrun_momentum_max_speed"`
	WallrunCoyoteTime          float32        `yaml:"wallrun_coyote_time"`
	WallrunGravity             float32        `yaml:"wallrun_gravity"`
	WallrunLength              float32        `yaml:"wallrun_length"`
	WallrunAcceleration        float32        `yaml:"wallrun_acceleration"`
	WallrunJumpForceHorizontal float32        `yaml:"wallrun_jump_force_horizontal"`
	WallrunJumpForceVertical   float32        `yaml:"wallrun_jump_force_vertical"`
	WallrunJumpKeep            bool           `yaml:"wallrun_jump_keep"`
	WallrunMaxSpeed            float32        `yaml:"wallrun_max_speed"`
	WallKickMinFallSpeed       float32        `yaml:"wallkick_min_fall_speed"`
	WallKickProbeDistance      float32        `yaml:"wallkick_probe_distance"`
	WallKickForwardSpeed       float32        `yaml:"wallkick_forward_speed"`
	WallKickMinVerticalSpeed   float32        `yaml:"wallkick_min_vertical_speed"`
	WallKickJumpTimer          float32        `yaml:"wallkick_jump_timer"`

	LedgeGrabMaxFallSpeed float32 `yaml:"ledge_grab_max_fall_speed"`
	LedgeScanStep         float32 `yaml:"ledge_scan_step"`
	LedgeScanDistance     float32 `yaml:"ledge_scan_distance"`
	LedgeCastSize         float32 `yaml:"ledge_cast_size"`
	LedgeCastDistance     float32 `yaml:"ledge_cast_distance"`
	VaultLowHeight        float32 `yaml:"vault_low_height"`
	VaultHighHeight       float32 `yaml:"vault_high_height"`
	LedgeGrabUpSpeed      float32 `yaml:"ledge_grab_up_speed"`
	LedgeGrabForwardY     float32 `yaml:"ledge_grab_forward_y"`
	LedgeGrabForwardSpeed float32 `yaml:"ledge_grab_forward_speed"`
	LedgeGrabSpeedCap     float32 `yaml:"ledge_grab_speed_cap"`

	GrappleMaxDistance   float32 `yaml:"grapple_max_distance"`
	GrappleAttachTime    float32 `yaml:"grapple_attach_time"`
	GrappleMinAttachTime float32 `yaml:"grapple_min_attach_time"`
	GrappleMaxYankTime   float32 `yaml:"grapple_max_yank_time"`
	GrappleYankForce     float32 `yaml:"grapple_yank_force"`

	LadderCooldown         float32 `yaml:"ladder_cooldown"`
	LadderRadius           float32 `yaml:"ladder_radius"`
	LadderClimbSpeed       float32 `yaml:"ladder_climb_speed"`
	LadderAcceleration     float32 `yaml:"ladder_acceleration"`
	LadderSnapTime         float32 `yaml:"ladder_snap_time"`
	LadderGroundedExitTime float32 `yaml:"ladder_grounded_exit_time"`

	FallDamageThreshold  float32 `yaml:"fall_damage_threshold"`
	FallDamageMultiplier float32 `yaml:"fall_damage_multiplier"`
	MaxHealth            float32 `yaml:"max_health"`
	WorldFloorY          float32 `yaml:"world_floor_y"`
	RespawnDamage        float32 `yaml:"respawn_damage"`
	RespawnLockTime      float32 `yaml:"respawn_lock_time"`

	Ammo AmmoConfig `yaml:"ammo"`

	AllowFly           bool    `yaml:"allow_fly"`
	FlySpeed           float32 `yaml:"fly_speed"`
	FlyBoostMultiplier float32 `yaml:"fly_boost_multiplier"`
}

// DefaultConfig returns the stock tuning table.
func DefaultConfig() Config {
	return Config{
		Gravity:      -28,
		ReferenceFPS: 60,

		RunMaxSpeed: 12,
		AccelerationCurve: game.NewCurve(
			game.Keyframe{Time: 0, Value: 6},
			game.Keyframe{Time: 0.5, Value: 3},
			game.Keyframe{Time: 1, Value: 1.25},
			game.Keyframe{Time: 1.5, Value: 0.5},
			game.Keyframe{Time: 2, Value: 0},
		),
		MomentumSyncThreshold: 2,
		MomentumCap:           40,

		JumpForce:                        9.5,
		JumpRequiredSpeed:                5,
		JumpCoyoteTime:                   0.25,
		JumpHoldTime:                     0.75,
		JumpGravityDivisor:               1.65,
		LongJumpForce:                    6,
		LongJumpHeightMultiplier:         0.35,
		LongJumpHeightMultiplierDropdown: 0.2,
		LongJumpGraceGrounded:            0.2,
		LongJumpGraceAirborne:            0.2,
		LandVelocityThreshold:            0,

		DashCooldown:                     0.5,
		DashLengthGrounded:               0.35,
		DashLengthAirborne:               0.5,
		DashGroundAccelerationMultiplier: 1.5,
		SlideThreshold:                   6,
		SlideAccelerationMultiplier:      0.35,

		DropdownDistance:  1.25,
		DropdownHeight:    2.5,
		DropdownTweenTime: 0.25,

		WallAction:            WallActionWallclimb,
		WallclimbThreshold:    -10,
		WallclimbMinSpeed:     5,
		WallclimbLength:       0.8,
		WallclimbCoyoteTime:   0.15,
		WallclimbStepStrength: 4,
		WallclimbProgressionCurve: game.NewCurve(
			game.Keyframe{Time: 0, Value: 0.35},
			game.Keyframe{Time: 1, Value: 1},
		),
		WallboostForce:             22.5,
		ClutchThresholdMultiplier:  2.25,
		ClutchMinTime:              0.5,
		ClutchMaxTime:              1,
		ClutchVelocityFrom:         3,
		ClutchVelocityTo:           -6,
		ClutchVelocityTweenTime:    0.1,
		WallrunThreshold:           -75,
		WallrunMinSpeed:            6,
		WallrunMomentumMaxSpeed:    20,
		WallrunCoyoteTime:          0.25,
		WallrunGravity:             0.85,
		WallrunLength:              1.5,
		WallrunAcceleration:        10,
		WallrunJumpForceHorizontal: 4,
		WallrunJumpForceVertical:   10,
		WallrunJumpKeep:            true,
		WallrunMaxSpeed:            30,
		WallKickMinFallSpeed:       -45,
		WallKickProbeDistance:      2,
		WallKickForwardSpeed:       12.5,
		WallKickMinVerticalSpeed:   16,
		WallKickJumpTimer:          1.25,

		LedgeGrabMaxFallSpeed: -65,
		LedgeScanStep:         0.05,
		LedgeScanDistance:     2.25,
		LedgeCastSize:         0.2,
		LedgeCastDistance:     1,
		VaultLowHeight:        0.65,
		VaultHighHeight:       1.25,
		LedgeGrabUpSpeed:      6,
		LedgeGrabForwardY:     0.4,
		LedgeGrabForwardSpeed: 4,
		LedgeGrabSpeedCap:     15,

		GrappleMaxDistance:   40,
		GrappleAttachTime:    0.35,
		GrappleMinAttachTime: 0.1,
		GrappleMaxYankTime:   0.6,
		GrappleYankForce:     35,

		LadderCooldown:         0.35,
		LadderRadius:           0.65,
		LadderClimbSpeed:       6,
		LadderAcceleration:     15,
		LadderSnapTime:         0.1,
		LadderGroundedExitTime: 0.5,

		FallDamageThreshold:  40,
		FallDamageMultiplier: 2.5,
		MaxHealth:            100,
		WorldFloorY:          -100,
		RespawnDamage:        999,
		RespawnLockTime:      0.25,

		Ammo: AmmoConfig{
			Wallrun:   2,
			Wallclimb: 1,
			Jump:      1,
			WallKick:  1,
			Grappler:  1,
		},

		FlySpeed:           25,
		FlyBoostMultiplier: 2,
	}
}

// AmmoConfig holds the maximum charges of every ability.
type AmmoConfig struct {
	Wallrun   int `yaml:"wallrun"`
	Wallclimb int `yaml:"wallclimb"`
	Jump      int `yaml:"jump"`
	WallKick  int `yaml:"wallkick"`
	Grappler  int `yaml:"grappler"`

	// GrapplerUnlocked equips the grappling hook.
	GrapplerUnlocked bool `yaml:"grappler_unlocked"`
}

// Max returns the maximum charges of the ability.
func (a AmmoConfig) Max(ability Ability) int {
	switch ability {
	case AbilityWallrun:
		return a.Wallrun
	case AbilityWallclimb:
		return a.Wallclimb
	case AbilityJump:
		return a.Jump
	case AbilityWallKick:
		return a.WallKick
	case AbilityGrappler:
		return a.Grappler
	}
	return 0
}

// GravityVec returns the gravity acceleration as a vector.
func (c *Config) GravityVec() mgl32.Vec3 {
	return mgl32.Vec3{0, c.Gravity, 0}
}

// Validate checks that the table describes a playable moveset.
func (c *Config) Validate() error {
	switch {
	case c.ReferenceFPS <= 0:
		return oerror.New("reference_fps must be positive (got %v)", c.ReferenceFPS)
	case c.RunMaxSpeed <= 0:
		return oerror.New("run_max_speed must be positive (got %v)", c.RunMaxSpeed)
	case len(c.AccelerationCurve) == 0:
		return oerror.New("acceleration_curve must have at least one key")
	case c.Gravity > 0:
		return oerror.New("gravity must point downwards (got %v)", c.Gravity)
	case c.JumpGravityDivisor <= 0:
		return oerror.New("jump_gravity_divisor must be positive (got %v)", c.JumpGravityDivisor)
	case c.JumpRequiredSpeed <= 0:
		return oerror.New("jump_required_speed must be positive (got %v)", c.JumpRequiredSpeed)
	case c.WallclimbLength <= 0 || c.WallrunLength <= 0:
		return oerror.New("wallclimb_length and wallrun_length must be positive")
	case c.LedgeScanStep <= 0:
		return oerror.New("ledge_scan_step must be positive (got %v)", c.LedgeScanStep)
	case c.WallAction != WallActionWallclimb && c.WallAction != WallActionWallboost:
		return oerror.New("unknown wall_action %q", c.WallAction)
	case c.ClutchMinTime > c.ClutchMaxTime:
		return oerror.New("clutch_min_time (%v) exceeds clutch_max_time (%v)", c.ClutchMinTime, c.ClutchMaxTime)
	case c.MaxHealth <= 0:
		return oerror.New("max_health must be positive (got %v)", c.MaxHealth)
	case c.Ammo.Wallrun < 0 || c.Ammo.Wallclimb < 0 || c.Ammo.Jump < 0 || c.Ammo.WallKick < 0 || c.Ammo.Grappler < 0:
		return oerror.New("ammo maxima must not be negative")
	case c.GrappleMaxYankTime <= 0:
		return oerror.New("grapple_max_yank_time must be positive (got %v)", c.GrappleMaxYankTime)
	}
	return nil
}
