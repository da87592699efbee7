package cavern

import "github.com/cavern-arcade/cavern/internal/core"

// Kind discriminates the closed set of entity variants. All entities live in
// one arena; the resolver dispatches on Kind instead of type assertions.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindRobot
	KindOrb
	KindBolt
	KindFruit
	KindPop
)

// String returns the kind name for snapshots and test output.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindRobot:
		return "robot"
	case KindOrb:
		return "orb"
	case KindBolt:
		return "bolt"
	case KindFruit:
		return "fruit"
	case KindPop:
		return "pop"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction an entity moves and looks toward.
type Facing int8

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// PlayerMode is the player's action state, used by damage rules and by the
// renderer to select a frame.
type PlayerMode uint8

const (
	PlayerIdle PlayerMode = iota
	PlayerWalking
	PlayerJumping
	PlayerFiring
	PlayerHurt
	PlayerDead
)

// RobotMode is the enemy behavior state.
type RobotMode uint8

const (
	RobotPatrolling RobotMode = iota
	RobotChasing
	RobotTrapped
	RobotPopped
)

// RobotType distinguishes the two enemy variants. Aggressive robots move
// faster and drop better fruit.
type RobotType uint8

const (
	RobotNormal RobotType = iota
	RobotAggressive
)

// OrbMode is the bubble projectile state.
type OrbMode uint8

const (
	OrbFlying OrbMode = iota
	OrbExpanding
	OrbCarrying
	OrbPopping
)

// FruitType selects the pickup's sprite and point tier.
type FruitType uint8

const (
	FruitApple FruitType = iota
	FruitRaspberry
	FruitLemon
)

// Entity is the tagged-union actor record. Common fields are always valid;
// the per-kind fields below them are meaningful only for the matching Kind.
// Cross-references between entities are handles, never pointers, so the
// arena stays the single owner of every actor.
type Entity struct {
	Kind   Kind
	Alive  bool
	Pos    core.Vec2 // Gravity actors anchor at bottom-center, others at center
	Vel    core.Vec2
	Facing Facing
	W, H   float64
	Owner  Handle // Spawning entity; exempt from collisions with this one

	OnGround bool

	// Player
	PlayerMode   PlayerMode
	Lives        int
	InvulnTicks  int // Damage immunity countdown after a hit
	FireCooldown int
	HurtTicks    int // Recoil animation countdown, visual only

	// Robot
	RobotMode    RobotMode
	RobotType    RobotType
	Speed        float64
	TrappedTicks int // Counts up while trapped; release at trapped_duration
	BoltTicks    int // Countdown to next bolt
	TurnTicks    int // Countdown to next direction decision
	TrappedBy    Handle

	// Orb
	OrbMode     OrbMode
	OrbTimer    int    // Ticks since launch
	BlownFrames int    // Flight duration target, extended while fire is held
	Carrying    Handle // Trapped robot, when OrbMode is OrbCarrying

	// Fruit
	FruitType FruitType
	TTL       int
	Points    int

	// Pop
	PopTicks int // Elapsed animation ticks
	PopStyle int // Sprite set, popFruitStyle or popOrbStyle
}

// bottomAnchored reports whether the entity's Pos is its bottom-center
// (actors affected by gravity) rather than its center.
func (e *Entity) bottomAnchored() bool {
	switch e.Kind {
	case KindPlayer, KindRobot, KindFruit:
		return true
	default:
		return false
	}
}

// Bounds returns the entity's axis-aligned bounding box in level pixels.
func (e *Entity) Bounds() core.RectF {
	if e.bottomAnchored() {
		return core.NewRectF(e.Pos.X-e.W/2, e.Pos.Y-e.H, e.W, e.H)
	}
	return core.RectFAround(e.Pos, e.W, e.H)
}

// Overlaps reports AABB overlap with another entity at current-tick positions.
func (e *Entity) Overlaps(o *Entity) bool {
	return e.Bounds().Intersects(o.Bounds())
}
