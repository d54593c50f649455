package engine

import (
	"log"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/core"
)

// Tick advances one gameplay step, ignored outside playing
func (g *Game) Tick() {
	if g.mode != ModePlaying {
		return
	}
	g.stats.ticks.Add(1)

	g.nudgeFoods()
	g.shuffleFoods()
	g.surpriseSpawn()

	g.dir = g.nextDir
	head := g.snake.Head().Add(g.dir)

	// The full body counts, including the tail cell about to move away
	if !g.inBounds(head) || g.snake.Contains(head) {
		g.audio.Play(core.SoundGameOver)
		g.gameOver(constants.ReasonCollision)
		return
	}

	g.snake.PushHead(head)

	if idx := g.foodIndexAt(head); idx >= 0 {
		food := g.foods[idx]
		spec := food.Kind.Spec()
		if spec.Bomb {
			g.snake.PopTail()
			g.triggerExplosion(head)
			return
		}
		g.eat(idx, spec)
	} else {
		g.justAte = false
		g.snake.PopTail()
	}

	if g.newBestFlash > 0 {
		g.newBestFlash--
	}
	g.animTick++
	g.draw()
}

// eat scores food idx, keeps the growth and applies the score speed-up
func (g *Game) eat(idx int, spec FoodSpec) {
	g.score += spec.Points
	g.stats.foodEaten.Add(1)
	if spec.Points >= constants.PurplePoints {
		g.audio.Play(core.SoundEatLarge)
	} else {
		g.audio.Play(core.SoundEatSmall)
	}

	g.setSnakeColor(core.RandomSnakeColor(g.rng))
	g.updateScore()

	g.removeFood(idx)
	g.justAte = true
	g.topUpFoods()

	if g.score > 0 && g.score%constants.SpeedUpScoreInterval == 0 && g.interval > constants.MinTickInterval {
		g.interval = max(constants.MinTickInterval, g.interval-constants.SpeedUpStep)
		g.scheduler.Reschedule(g.interval)
		log.Printf("game %s: speed up interval=%s score=%d", g.session, g.interval, g.score)
	}
}

// triggerExplosion stops the tick and starts the frame-driven burst on cell
func (g *Game) triggerExplosion(cell Point) {
	if !g.transition(ModeExploding) {
		return
	}
	g.scheduler.StopTick()
	g.audio.Play(core.SoundBomb)
	g.stats.explosions.Add(1)

	ex := NewExplosion(g.rng, cell)
	g.explosion = &ex
	g.explodeCount = 0
	g.scheduler.RequestFrame()
}

// AnimationFrame renders and advances the explosion, ending the game once the frame budget is spent
func (g *Game) AnimationFrame() {
	if g.mode != ModeExploding || g.explosion == nil {
		return
	}
	g.draw()
	g.explodeCount++
	g.explosion.Step()

	if !g.explosion.Done() {
		g.scheduler.RequestFrame()
		return
	}
	g.gameOver(constants.ReasonBomb)
}

// ExplosionFrames returns how many explosion frames were rendered this session
func (g *Game) ExplosionFrames() int {
	return g.explodeCount
}
