// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// CavernConfig contains all tunable parameters for the Cavern game.
type CavernConfig struct {
	Physics    CavernPhysics    `yaml:"physics"`
	Player     CavernPlayer     `yaml:"player"`
	Orb        CavernOrb        `yaml:"orb"`
	Robot      CavernRobot      `yaml:"robot"`
	Bolt       CavernBolt       `yaml:"bolt"`
	Fruit      CavernFruit      `yaml:"fruit"`
	Spawner    CavernSpawner    `yaml:"spawner"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CavernPhysics defines gravity and movement speeds shared by actors.
// All distances are in level pixels, all times in simulation ticks.
type CavernPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	WalkSpeed    float64 `yaml:"walk_speed"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
}

// CavernPlayer defines the player's hitbox and survivability parameters.
type CavernPlayer struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Lives           int     `yaml:"lives"`
	Invulnerability int     `yaml:"invulnerability"` // Ticks of damage immunity after a hit
	FireCooldown    int     `yaml:"fire_cooldown"`   // Minimum ticks between orb shots
	KnockbackTicks  int     `yaml:"knockback_ticks"` // Ticks of hurt animation after taking a hit
}

// CavernOrb defines the bubble projectile's flight and capture parameters.
type CavernOrb struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`      // Horizontal flight speed
	RiseSpeed   float64 `yaml:"rise_speed"` // Upward drift while expanding/carrying
	Lifetime    int     `yaml:"lifetime"`   // Ticks before an uncontacted orb self-destructs
	FlightTicks int     `yaml:"flight_ticks"`
	ChargeGain  int     `yaml:"charge_gain"` // Extra flight ticks per tick of held fire
	ChargeMax   int     `yaml:"charge_max"`  // Cap on total flight ticks
	MaxActive   int     `yaml:"max_active"`
	PopPoints   int     `yaml:"pop_points"` // Awarded when a carrying orb is popped
}

// CavernRobot defines enemy behavior parameters.
type CavernRobot struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	ChaseRadius     float64 `yaml:"chase_radius"`  // Detection distance for biasing toward the player
	BoltInterval    int     `yaml:"bolt_interval"` // Ticks between shots while patrolling/chasing
	TrappedDuration int     `yaml:"trapped_duration"`
}

// CavernBolt defines the enemy projectile parameters.
type CavernBolt struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// CavernFruit defines pickup parameters.
type CavernFruit struct {
	Size       float64 `yaml:"size"`
	TTL        int     `yaml:"ttl"`         // Ticks before an uncollected fruit expires
	BasePoints int     `yaml:"base_points"` // Value multiplier per fruit tier
}

// CavernSpawner defines the enemy scheduler and bonus fruit pacing.
type CavernSpawner struct {
	EnemyInterval int `yaml:"enemy_interval"` // Ticks between enemy spawns
	FruitInterval int `yaml:"fruit_interval"` // Ticks between bonus fruit drops
	MaxEnemiesCap int `yaml:"max_enemies_cap"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier       float64 `yaml:"speed_multiplier"`        // Enemy speed gain at max difficulty
	BoltIntervalReduction int     `yaml:"bolt_interval_reduction"` // Ticks shaved off bolt_interval at max
	SpawnReduction        int     `yaml:"spawn_reduction"`         // Ticks shaved off enemy_interval at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
