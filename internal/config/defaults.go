package config

import (
	_ "embed"
)

//go:embed defaults/cavern.yaml
var defaultCavernYAML []byte

// DefaultCavernConfig returns the default Cavern configuration.
// Kept in sync with defaults/cavern.yaml as the last-resort fallback.
func DefaultCavernConfig() CavernConfig {
	return CavernConfig{
		Physics: CavernPhysics{
			Gravity:      1.0,
			MaxFallSpeed: 10.0,
			WalkSpeed:    4.0,
			JumpImpulse:  -16.0,
		},
		Player: CavernPlayer{
			Width:           20.0,
			Height:          30.0,
			Lives:           3,
			Invulnerability: 120,
			FireCooldown:    20,
			KnockbackTicks:  24,
		},
		Orb: CavernOrb{
			Size:        24.0,
			Speed:       4.0,
			RiseSpeed:   1.5,
			Lifetime:    250,
			FlightTicks: 6,
			ChargeGain:  4,
			ChargeMax:   120,
			MaxActive:   5,
			PopPoints:   50,
		},
		Robot: CavernRobot{
			Width:           20.0,
			Height:          28.0,
			MinSpeed:        1.0,
			MaxSpeed:        3.0,
			ChaseRadius:     150.0,
			BoltInterval:    90,
			TrappedDuration: 180,
		},
		Bolt: CavernBolt{
			Speed: 7.0,
			Size:  10.0,
		},
		Fruit: CavernFruit{
			Size:       16.0,
			TTL:        500,
			BasePoints: 100,
		},
		Spawner: CavernSpawner{
			EnemyInterval: 81,
			FruitInterval: 100,
			MaxEnemiesCap: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:       0.5,
				BoltIntervalReduction: 40,
				SpawnReduction:        30,
			},
		},
	}
}
