package constants

import "time"

// Food population
const (
	BaseFoodCount = 2
	MaxFoods      = 4

	// FoodSpawnAttempts bounds the free-cell search for a new food
	FoodSpawnAttempts = 50

	// FoodShuffleInterval is the wall-clock period between food shuffles
	FoodShuffleInterval = 4500 * time.Millisecond

	// FoodShuffleExtraChance is the chance to add one extra food after a shuffle
	FoodShuffleExtraChance = 0.6

	// SurpriseSpawnPerSec is the target rate of unscheduled spawns, scaled by tick length
	SurpriseSpawnPerSec = 0.28
)

// Food wander tuning, higher cadence is slower
const (
	FoodBaseMoveEvery = 10
	FoodMinMoveEvery  = 3

	GreenMoveEvery  = 12
	PurpleMoveEvery = 10
	BombMoveEvery   = 11

	// FoodIdleChance skips a due move
	FoodIdleChance = 0.12

	// FoodJitterChance re-randomizes drift before a move
	FoodJitterChance = 0.18

	// FoodMoveRetries bounds the re-rolls when the destination is occupied
	FoodMoveRetries = 5
)

// Food speed factor, >1 slows foods down
const (
	FoodSpeedFactorDefault = 1.0
	FoodSpeedFactorMin     = 0.6
	FoodSpeedFactorMax     = 1.8
	FoodSpeedFactorStep    = 0.1
)

// Food scoring and spawn weights
const (
	GreenPoints  = 1
	PurplePoints = 5
	BombPoints   = 0

	GreenWeight  = 0.70
	PurpleWeight = 0.22
	BombWeight   = 0.08
)

// Explosion
const (
	ExplosionParticleCount = 40
	ExplosionMaxFrames     = 26
	ExplosionSpeedMin      = 1.5
	ExplosionSpeedRange    = 3.5
	ExplosionLifeMin       = 20
	ExplosionLifeRange     = 10

	// ExplosionGravity is added to particle vy every frame (pixels/frame^2)
	ExplosionGravity = 0.08
)

// Feedback timers, in ticks
const (
	NewBestFlashTicks = 60
	TongueCycleTicks  = 40
	TongueShowTicks   = 6
)
