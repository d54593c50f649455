package engine

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/vmath"
)

// FoodKind identifies a food variant
type FoodKind int

const (
	FoodGreen FoodKind = iota
	FoodPurple
	FoodBomb
	foodKindCount
)

// FoodSpec is one row of the food table
type FoodSpec struct {
	Name      string
	Points    int
	Weight    float64
	MoveEvery int // Base wander cadence in ticks, higher is slower
	Bomb      bool
}

// foodTable is indexed by FoodKind
var foodTable = [foodKindCount]FoodSpec{
	FoodGreen:  {Name: "green", Points: constants.GreenPoints, Weight: constants.GreenWeight, MoveEvery: constants.GreenMoveEvery},
	FoodPurple: {Name: "purple", Points: constants.PurplePoints, Weight: constants.PurpleWeight, MoveEvery: constants.PurpleMoveEvery},
	FoodBomb:   {Name: "red", Points: constants.BombPoints, Weight: constants.BombWeight, MoveEvery: constants.BombMoveEvery, Bomb: true},
}

// foodWeights mirrors foodTable weights for the cumulative draw
var foodWeights = func() []float64 {
	w := make([]float64, foodKindCount)
	for i, spec := range foodTable {
		w[i] = spec.Weight
	}
	return w
}()

// Spec returns the table row, unknown kinds get a zero-point green row with the default cadence
func (k FoodKind) Spec() FoodSpec {
	if k >= 0 && k < foodKindCount {
		return foodTable[k]
	}
	return FoodSpec{Name: "unknown", MoveEvery: constants.FoodBaseMoveEvery}
}

// String returns the kind name
func (k FoodKind) String() string {
	return k.Spec().Name
}

// ValidateFoodTable checks that all weights are positive and sum to 1
func ValidateFoodTable() error {
	total := 0.0
	for i, spec := range foodTable {
		if spec.Weight <= 0 {
			return fmt.Errorf("food %d (%s): non-positive weight %v", i, spec.Name, spec.Weight)
		}
		total += spec.Weight
	}
	if math.Abs(total-1) > 1e-9 {
		return fmt.Errorf("food weights sum to %v, want 1", total)
	}
	return nil
}

// Food is a wandering edible on the grid
type Food struct {
	Pos         Point
	Vel         Point // Drift step, each axis in {-1, 0, 1}
	Kind        FoodKind
	MoveEvery   int
	MoveCounter int
}

// RandomFoodKind draws a kind from the weight table
func RandomFoodKind(r *rand.Rand) FoodKind {
	return FoodKind(vmath.WeightedIndex(r, foodWeights))
}

// MoveEveryFor returns the wander cadence of kind under the given speed factor
func MoveEveryFor(kind FoodKind, factor float64) int {
	base := float64(kind.Spec().MoveEvery)
	return max(constants.FoodMinMoveEvery, vmath.RoundHalfUp(base*factor))
}

// inBounds reports whether p lies on the grid
func (g *Game) inBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.cols && p.Y < g.rows
}

// occupied reports whether p is taken by the snake or any food
func (g *Game) occupied(p Point) bool {
	if g.snake.Contains(p) {
		return true
	}
	return g.foodIndexAt(p) >= 0
}

// foodIndexAt returns the index of the food on p, or -1
func (g *Game) foodIndexAt(p Point) int {
	for i := range g.foods {
		if g.foods[i].Pos == p {
			return i
		}
	}
	return -1
}

// spawnFood places one food of a weighted kind on a free cell
// Gives up silently after FoodSpawnAttempts occupied draws
func (g *Game) spawnFood(withDrift bool) bool {
	kind := RandomFoodKind(g.rng)
	for attempt := 0; attempt < constants.FoodSpawnAttempts; attempt++ {
		p := Point{X: g.rng.IntN(g.cols), Y: g.rng.IntN(g.rows)}
		if g.occupied(p) {
			continue
		}
		f := Food{
			Pos:       p,
			Kind:      kind,
			MoveEvery: MoveEveryFor(kind, g.foodSpeedFactor),
		}
		if withDrift {
			f.Vel.X, f.Vel.Y = vmath.RandomDrift(g.rng)
		}
		g.foods = append(g.foods, f)
		g.stats.foodSpawned.Add(1)
		return true
	}
	return false
}

// topUpFoods spawns until the base population is reached or a spawn fails
func (g *Game) topUpFoods() {
	for len(g.foods) < constants.BaseFoodCount {
		if !g.spawnFood(true) {
			return
		}
	}
}

// removeFood drops the food at index i
func (g *Game) removeFood(i int) {
	g.foods = append(g.foods[:i], g.foods[i+1:]...)
}

// nudgeFoods advances the wander of every food once
func (g *Game) nudgeFoods() {
	for i := range g.foods {
		g.nudgeFood(i)
	}
}

// nudgeFood moves food i one cell when its cadence is due
func (g *Game) nudgeFood(i int) {
	f := &g.foods[i]
	f.MoveCounter++
	if f.MoveCounter < f.MoveEvery {
		return
	}
	f.MoveCounter = 0

	if vmath.Chance(g.rng, constants.FoodIdleChance) {
		return
	}
	if vmath.Chance(g.rng, constants.FoodJitterChance) {
		f.Vel.X, f.Vel.Y = vmath.RandomDrift(g.rng)
	}

	for try := 0; try <= constants.FoodMoveRetries; try++ {
		nx, ny := f.Pos.X+f.Vel.X, f.Pos.Y+f.Vel.Y

		// Bounce off walls by reversing the offending axis
		if nx < 0 || nx >= g.cols {
			f.Vel.X = -f.Vel.X
			nx = f.Pos.X + f.Vel.X
		}
		if ny < 0 || ny >= g.rows {
			f.Vel.Y = -f.Vel.Y
			ny = f.Pos.Y + f.Vel.Y
		}

		dest := Point{X: nx, Y: ny}
		if !g.inBounds(dest) {
			return
		}
		if dest != f.Pos && g.occupied(dest) {
			if try < constants.FoodMoveRetries {
				f.Vel.X, f.Vel.Y = vmath.RandomDrift(g.rng)
			}
			continue
		}
		f.Pos = dest
		return
	}
}

// shuffleFoods replaces one or two foods and refills the board when the shuffle period elapsed
func (g *Game) shuffleFoods() {
	now := g.clock.Now()
	if now.Sub(g.lastShuffle) < constants.FoodShuffleInterval {
		return
	}
	g.lastShuffle = now
	g.stats.shuffles.Add(1)

	replace := min(len(g.foods), 1+g.rng.IntN(2))
	for n := 0; n < replace; n++ {
		g.removeFood(g.rng.IntN(len(g.foods)))
		g.spawnFood(true)
	}
	g.topUpFoods()

	if len(g.foods) < constants.MaxFoods && vmath.Chance(g.rng, constants.FoodShuffleExtraChance) {
		g.spawnFood(true)
	}
}

// surpriseSpawn adds a food with a chance proportional to the tick length
func (g *Game) surpriseSpawn() {
	if len(g.foods) >= constants.MaxFoods {
		return
	}
	p := constants.SurpriseSpawnPerSec * g.interval.Seconds()
	if vmath.Chance(g.rng, p) {
		if g.spawnFood(true) {
			g.stats.surprise.Add(1)
		}
	}
}

// recomputeFoodCadence refreshes every food cadence after a factor change
func (g *Game) recomputeFoodCadence() {
	for i := range g.foods {
		g.foods[i].MoveEvery = MoveEveryFor(g.foods[i].Kind, g.foodSpeedFactor)
	}
}
