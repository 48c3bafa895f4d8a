package sim

import (
	"log"

	"github.com/milk9111/doodleshoot/ecs"
)

// GenerationSystem seeds the starting scene, spawns birds on a timer once
// the doodle is high enough, and keeps clouds generated ahead of it.
type GenerationSystem struct{}

func NewGenerationSystem() *GenerationSystem {
	return &GenerationSystem{}
}

func (s *GenerationSystem) Update(w *World) {
	if w == nil || !w.generate {
		return
	}
	body, ok := w.doodles.Body.Get(w.player.Doodle)
	if !ok {
		return
	}
	playerPos := body.Position()
	playerVel := body.Velocity

	if w.clouds.Len() == 0 {
		s.seed(w)
	}

	g := w.tuning.Generation
	width := w.Width()

	if playerPos.Y() > g.BirdHeight {
		w.nextBird -= w.dt
		for w.nextBird < 0 {
			w.nextBird += w.uniform(g.BirdInterval)

			// aim for where the doodle will be, not where it is
			predict := w.uniform(g.BirdLookahead)
			height := predict * playerVel.Y
			pos := playerPos.Shifted(cpVec(width/2, height))
			w.SpawnBird(pos, w.randomSign()*w.uniform(g.BirdSpeed))
		}
	}

	for playerPos.Y()+g.Lookahead > w.generatedHeight {
		y := w.generatedHeight + w.uniform(g.Gap)
		w.generatedHeight = y
		x := w.rng.Float64() * width

		cloud := w.newCloud(w.pos(x, y))
		if w.chance(g.MovingChance) {
			cloud.AnchorVelocity = cpVec(w.randomSign()*w.uniform(g.AnchorSpeed), 0)
		}
		id := w.clouds.Insert(cloud)

		if w.chance(g.SpringChance) {
			w.SpawnSpring(id)
		} else if w.chance(g.CoinChance) {
			w.SpawnCoin(id)
		}
	}
}

func (s *GenerationSystem) seed(w *World) {
	g := w.tuning.Generation
	var last ecs.Entity
	for _, p := range g.SeedClouds {
		last = w.SpawnCloud(w.pos(p.X, p.Y))
	}
	if last.Valid() {
		w.SpawnSpring(last)
	}
	w.SpawnBird(w.pos(g.SeedBird.X, g.SeedBird.Y), g.SeedBirdSpeed)
	log.Printf("sim: seeded %d clouds run=%s", len(g.SeedClouds), w.runID)
}
