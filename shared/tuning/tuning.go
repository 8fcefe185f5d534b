// Package tuning holds every constant the simulation and the AI read.
//
// Defaults are embedded from defaults.yaml; Load overlays a user file on top of
// them so a partial file only changes the keys it names.
package tuning

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned (wrapped) by Validate.
var ErrInvalid = errors.New("invalid tuning")

// Tuning is the full parameter set for one match.
type Tuning struct {
	Field   FieldConfig   `yaml:"field"`
	Slime   SlimeConfig   `yaml:"slime"`
	Ball    BallConfig    `yaml:"ball"`
	Grab    GrabConfig    `yaml:"grab"`
	Camping CampingConfig `yaml:"camping"`
	AI      AIConfig      `yaml:"ai"`
	Match   MatchConfig   `yaml:"match"`
}

// FieldConfig describes the pitch. Y grows downward; the ground line is
// Height - GroundHeight.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
	GoalWidth    float64 `yaml:"goal_width"`  // depth of the camping zone from each wall
	GoalHeight   float64 `yaml:"goal_height"` // goal mouth opening above the ground line
}

// SlimeConfig contains the slime body and movement values.
type SlimeConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`      // walk speed, pixels per tick
	JumpPower   float64 `yaml:"jump_power"` // negative = upward
	StartLeftX  float64 `yaml:"start_left_x"`
	StartRightX float64 `yaml:"start_right_x"`
}

// BallConfig contains free-ball physics values.
type BallConfig struct {
	Radius                float64 `yaml:"radius"`
	StartY                float64 `yaml:"start_y"`
	Gravity               float64 `yaml:"gravity"`
	Damping               float64 `yaml:"damping"`        // horizontal air resistance per tick
	BounceDamping         float64 `yaml:"bounce_damping"` // wall/ground/ceiling restitution
	MaxSpeed              float64 `yaml:"max_speed"`      // cap after a slime hit
	HitSpeedScale         float64 `yaml:"hit_speed_scale"`
	HitSlimeVelocityScale float64 `yaml:"hit_slime_velocity_scale"`
}

// GrabConfig contains the hold, release and knock-out values.
type GrabConfig struct {
	HoldInset             float64 `yaml:"hold_inset"` // hold distance = slime radius + ball radius - inset
	AngularDrive          float64 `yaml:"angular_drive"`
	AngularDamping        float64 `yaml:"angular_damping"`
	ReleaseBaseSpeed      float64 `yaml:"release_base_speed"`
	ReleaseSpinScale      float64 `yaml:"release_spin_scale"`
	ReleaseLift           float64 `yaml:"release_lift"`
	ReleaseVerticalSpin   float64 `yaml:"release_vertical_spin"`
	ReleaseCarryScale     float64 `yaml:"release_carry_scale"`
	KnockoutSpeed         float64 `yaml:"knockout_speed"`
	KnockoutVerticalSpeed float64 `yaml:"knockout_vertical_speed"`
	KnockoutImpulse       float64 `yaml:"knockout_impulse"`
}

// CampingConfig contains the own-goal camping penalty values.
type CampingConfig struct {
	LimitSeconds float64 `yaml:"limit_seconds"`
}

// AIConfig contains the scripted opponent's thresholds.
type AIConfig struct {
	ForecastSteps        int     `yaml:"forecast_steps"`
	SteerDeadzone        float64 `yaml:"steer_deadzone"`
	SteerRamp            float64 `yaml:"steer_ramp"`
	RetargetDeadzone     float64 `yaml:"retarget_deadzone"`
	RetargetCooldown     int     `yaml:"retarget_cooldown"`
	OpeningTimeLeft      int     `yaml:"opening_time_left"` // seconds remaining
	OpeningProximity     float64 `yaml:"opening_proximity"`
	OpeningCooldown      int     `yaml:"opening_cooldown"`
	AttackBoost          float64 `yaml:"attack_boost"`
	DefenseBoost         float64 `yaml:"defense_boost"`
	OffenseGoalRatio     float64 `yaml:"offense_goal_ratio"`
	OffenseFieldFraction float64 `yaml:"offense_field_fraction"`
	DefenseFieldFraction float64 `yaml:"defense_field_fraction"`
	MovingHomeSpeed      float64 `yaml:"moving_home_speed"`
	StuckHeightTolerance float64 `yaml:"stuck_height_tolerance"`
	StuckSpeedTolerance  float64 `yaml:"stuck_speed_tolerance"`
}

// MatchConfig contains timing values.
type MatchConfig struct {
	TickRate        int            `yaml:"tick_rate"`
	DefaultDuration int            `yaml:"default_duration"`
	Durations       map[string]int `yaml:"durations"`
}

// GroundLine is the y coordinate slimes rest on.
func (t *Tuning) GroundLine() float64 {
	return t.Field.Height - t.Field.GroundHeight
}

// BallFloor is the lowest y the ball centre may reach.
func (t *Tuning) BallFloor() float64 {
	return t.GroundLine() - t.Ball.Radius
}

// ContactDistance is the centre distance at which a slime touches the ball.
func (t *Tuning) ContactDistance() float64 {
	return t.Slime.Radius + t.Ball.Radius
}

// HoldDistance is the orbit radius of a grabbed ball.
func (t *Tuning) HoldDistance() float64 {
	return t.ContactDistance() - t.Grab.HoldInset
}

// GoalMouthTop is the y above which (numerically: below which) a ball at the
// goal line does not count.
func (t *Tuning) GoalMouthTop() float64 {
	return t.GroundLine() - t.Field.GoalHeight
}

// TickSeconds is the simulated duration of one tick.
func (t *Tuning) TickSeconds() float64 {
	return 1 / float64(t.Match.TickRate)
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Tuning {
	t, err := parse(defaultsYAML, nil)
	if err != nil {
		panic(fmt.Sprintf("tuning: embedded defaults are broken: %v", err))
	}
	return t
}

// Load reads the file at path and overlays it on the defaults.
func Load(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return Parse(data)
}

// Parse overlays YAML data on the defaults and validates the result.
func Parse(data []byte) (*Tuning, error) {
	return parse(defaultsYAML, data)
}

func parse(base, overlay []byte) (*Tuning, error) {
	t := &Tuning{}
	if err := yaml.Unmarshal(base, t); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}
	if len(overlay) > 0 {
		if err := yaml.Unmarshal(overlay, t); err != nil {
			return nil, fmt.Errorf("parse tuning: %w", err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects parameter sets the simulation cannot run with.
func (t *Tuning) Validate() error {
	switch {
	case t.Field.Width <= 2*t.Slime.Radius:
		return fmt.Errorf("%w: field width %.1f too small for slime radius %.1f", ErrInvalid, t.Field.Width, t.Slime.Radius)
	case t.GroundLine() <= t.Ball.Radius:
		return fmt.Errorf("%w: ground line %.1f above ball radius", ErrInvalid, t.GroundLine())
	case t.Slime.Radius <= 0 || t.Ball.Radius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalid)
	case t.HoldDistance() <= 0:
		return fmt.Errorf("%w: hold inset %.1f swallows the ball", ErrInvalid, t.Grab.HoldInset)
	case t.Ball.BounceDamping < 0 || t.Ball.BounceDamping >= 1:
		return fmt.Errorf("%w: bounce damping %.2f must be in [0,1)", ErrInvalid, t.Ball.BounceDamping)
	case t.Match.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, t.Match.TickRate)
	case t.AI.ForecastSteps <= 0:
		return fmt.Errorf("%w: forecast steps %d", ErrInvalid, t.AI.ForecastSteps)
	case t.Camping.LimitSeconds <= 0:
		return fmt.Errorf("%w: camping limit %.2f", ErrInvalid, t.Camping.LimitSeconds)
	}
	return nil
}

// Duration resolves a preset name ("1min", "worldcup", ...) to seconds.
func (t *Tuning) Duration(preset string) (int, bool) {
	d, ok := t.Match.Durations[preset]
	return d, ok
}
