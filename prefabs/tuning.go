package prefabs

import (
	"errors"
	"fmt"
)

const TuningFile = "tuning.yaml"

// ErrInvalidTuning wraps every validation failure of a Tuning.
var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

type Tuning struct {
	World      WorldSpec      `yaml:"world"`
	Doodle     DoodleSpec     `yaml:"doodle"`
	Cloud      CloudSpec      `yaml:"cloud"`
	Bird       BirdSpec       `yaml:"bird"`
	Projectile ProjectileSpec `yaml:"projectile"`
	Spring     SpringSpec     `yaml:"spring"`
	Coin       CoinSpec       `yaml:"coin"`
	Camera     CameraSpec     `yaml:"camera"`
	Generation GenerationSpec `yaml:"generation"`
	Score      ScoreSpec      `yaml:"score"`
	Particles  ParticleSpec   `yaml:"particles"`
	Rustle     RustleSpec     `yaml:"rustle"`
	Palette    PaletteSpec    `yaml:"palette"`
}

type WorldSpec struct {
	Width   float64 `yaml:"width"`
	Gravity float64 `yaml:"gravity"`
}

type DoodleSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Mass          float64 `yaml:"mass"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MoveSpeed     float64 `yaml:"move_speed"`
	Acceleration  float64 `yaml:"acceleration"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	CoyoteTime    float64 `yaml:"coyote_time"`
	ShootCooldown float64 `yaml:"shoot_cooldown"`
	Recoil        float64 `yaml:"recoil"`
}

type CloudSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Damping    float64 `yaml:"damping"`
	Elasticity float64 `yaml:"elasticity"`
	MaxPull    float64 `yaml:"max_pull"`
	MaxOffset  float64 `yaml:"max_offset"`
	ShiftSpeed float64 `yaml:"shift_speed"`
}

type BirdSpec struct {
	Radius    float64 `yaml:"radius"`
	Mass      float64 `yaml:"mass"`
	Lifetime  float64 `yaml:"lifetime"`
	HitScore  int     `yaml:"hit_score"`
	KillScore int     `yaml:"kill_score"`
}

type ProjectileSpec struct {
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
}

type SpringSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Offset   VecSpec `yaml:"offset"`
	Impulse  float64 `yaml:"impulse"`
	MinSpeed float64 `yaml:"min_speed"`
	Reaction float64 `yaml:"reaction"`
}

type CoinSpec struct {
	Radius float64 `yaml:"radius"`
	Offset VecSpec `yaml:"offset"`
	Score  int     `yaml:"score"`
}

type CameraSpec struct {
	FollowTime float64 `yaml:"follow_time"`
	// EdgeMargin keeps clouds from visibly teleporting between screen edges:
	// the view is narrower than the world by this much.
	EdgeMargin  float64 `yaml:"edge_margin"`
	Aspect      float64 `yaml:"aspect"`
	DeathMargin float64 `yaml:"death_margin"`
}

// FOV is the visible height of the camera in world units.
func (c CameraSpec) FOV(worldWidth float64) float64 {
	return (worldWidth - c.EdgeMargin) * c.Aspect
}

type GenerationSpec struct {
	Lookahead     float64   `yaml:"lookahead"`
	Gap           RangeSpec `yaml:"gap"`
	MovingChance  float64   `yaml:"moving_chance"`
	AnchorSpeed   RangeSpec `yaml:"anchor_speed"`
	SpringChance  float64   `yaml:"spring_chance"`
	CoinChance    float64   `yaml:"coin_chance"`
	BirdHeight    float64   `yaml:"bird_height"`
	BirdInterval  RangeSpec `yaml:"bird_interval"`
	BirdLookahead RangeSpec `yaml:"bird_lookahead"`
	BirdSpeed     RangeSpec `yaml:"bird_speed"`
	SeedClouds    []VecSpec `yaml:"seed_clouds"`
	SeedBird      VecSpec   `yaml:"seed_bird"`
	SeedBirdSpeed float64   `yaml:"seed_bird_speed"`
}

type ScoreSpec struct {
	HeightFactor float64 `yaml:"height_factor"`
}

type ParticleSpec struct {
	Lifetime float64 `yaml:"lifetime"`
	Radius   float64 `yaml:"radius"`
	Spread   float64 `yaml:"spread"`
}

type RustleSpec struct {
	FadeTime float64 `yaml:"fade_time"`
}

type PaletteSpec struct {
	Landing  YAMLColor `yaml:"landing"`
	BirdHit  YAMLColor `yaml:"bird_hit"`
	BirdKill YAMLColor `yaml:"bird_kill"`
	Spring   YAMLColor `yaml:"spring"`
	Coin     YAMLColor `yaml:"coin"`
	Shoot    YAMLColor `yaml:"shoot"`
}

// LoadTuning loads tuning.yaml, honoring an on-disk override.
func LoadTuning() (*Tuning, error) {
	t, err := LoadSpec[Tuning](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// DefaultTuning returns the tuning compiled into the binary. It panics if the
// embedded file is broken, which only a bad build can cause.
func DefaultTuning() *Tuning {
	data, err := LoadEmbedded(TuningFile)
	if err != nil {
		panic(err)
	}
	t, err := decodeSpec[Tuning](TuningFile, data)
	if err != nil {
		panic(err)
	}
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return &t
}

// Validate checks the values the simulation relies on.
func (t *Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.width", t.World.Width},
		{"doodle.width", t.Doodle.Width},
		{"doodle.height", t.Doodle.Height},
		{"doodle.mass", t.Doodle.Mass},
		{"doodle.max_speed", t.Doodle.MaxSpeed},
		{"doodle.acceleration", t.Doodle.Acceleration},
		{"doodle.coyote_time", t.Doodle.CoyoteTime},
		{"doodle.shoot_cooldown", t.Doodle.ShootCooldown},
		{"cloud.width", t.Cloud.Width},
		{"cloud.height", t.Cloud.Height},
		{"cloud.mass", t.Cloud.Mass},
		{"cloud.max_offset", t.Cloud.MaxOffset},
		{"cloud.damping", t.Cloud.Damping},
		{"cloud.shift_speed", t.Cloud.ShiftSpeed},
		{"bird.radius", t.Bird.Radius},
		{"bird.mass", t.Bird.Mass},
		{"bird.lifetime", t.Bird.Lifetime},
		{"projectile.radius", t.Projectile.Radius},
		{"projectile.mass", t.Projectile.Mass},
		{"projectile.lifetime", t.Projectile.Lifetime},
		{"spring.width", t.Spring.Width},
		{"spring.height", t.Spring.Height},
		{"coin.radius", t.Coin.Radius},
		{"camera.follow_time", t.Camera.FollowTime},
		{"camera.aspect", t.Camera.Aspect},
		{"particles.radius", t.Particles.Radius},
		{"particles.lifetime", t.Particles.Lifetime},
		{"rustle.fade_time", t.Rustle.FadeTime},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"doodle.move_speed", t.Doodle.MoveSpeed},
		{"doodle.jump_speed", t.Doodle.JumpSpeed},
		{"doodle.recoil", t.Doodle.Recoil},
		{"cloud.elasticity", t.Cloud.Elasticity},
		{"cloud.max_pull", t.Cloud.MaxPull},
		{"projectile.speed", t.Projectile.Speed},
		{"spring.impulse", t.Spring.Impulse},
		{"spring.min_speed", t.Spring.MinSpeed},
		{"spring.reaction", t.Spring.Reaction},
		{"camera.edge_margin", t.Camera.EdgeMargin},
		{"camera.death_margin", t.Camera.DeathMargin},
		{"generation.lookahead", t.Generation.Lookahead},
		{"particles.spread", t.Particles.Spread},
	}
	for _, n := range nonNegative {
		if !(n.v >= 0) {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, n.name, n.v)
		}
	}

	if t.Camera.FOV(t.World.Width) <= 0 {
		return fmt.Errorf("%w: camera.edge_margin %v leaves no visible area", ErrInvalidTuning, t.Camera.EdgeMargin)
	}

	ranges := []struct {
		name string
		r    RangeSpec
	}{
		{"generation.gap", t.Generation.Gap},
		{"generation.anchor_speed", t.Generation.AnchorSpeed},
		{"generation.bird_interval", t.Generation.BirdInterval},
		{"generation.bird_lookahead", t.Generation.BirdLookahead},
		{"generation.bird_speed", t.Generation.BirdSpeed},
	}
	for _, r := range ranges {
		if !r.r.valid() {
			return fmt.Errorf("%w: %s min %v exceeds max %v", ErrInvalidTuning, r.name, r.r.Min, r.r.Max)
		}
	}
	if t.Generation.Gap.Min <= 0 {
		return fmt.Errorf("%w: generation.gap must be positive", ErrInvalidTuning)
	}
	if t.Generation.BirdInterval.Min <= 0 {
		return fmt.Errorf("%w: generation.bird_interval must be positive", ErrInvalidTuning)
	}

	chances := []struct {
		name string
		v    float64
	}{
		{"generation.moving_chance", t.Generation.MovingChance},
		{"generation.spring_chance", t.Generation.SpringChance},
		{"generation.coin_chance", t.Generation.CoinChance},
	}
	for _, c := range chances {
		if c.v < 0 || c.v > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidTuning, c.name, c.v)
		}
	}
	return nil
}
