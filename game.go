package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/doodleshoot/ecs/component"
	"github.com/milk9111/doodleshoot/prefabs"
	"github.com/milk9111/doodleshoot/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool

	seed    uint64
	tuning  *prefabs.Tuning
	world   *sim.World
	watcher *prefabs.Watcher
	loaded  time.Time

	endUI   *ebitenui.UI
	restart bool
}

func NewGame(tuning *prefabs.Tuning, seed uint64, debug bool) (*Game, error) {
	g := &Game{debug: debug, seed: seed, tuning: tuning}
	g.loaded, _ = prefabs.ModTime(prefabs.TuningFile)
	if err := g.newRun(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) newRun() error {
	seed := g.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	w, err := sim.New(sim.WithTuning(g.tuning), sim.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("new run: %w", err)
	}
	g.world = w
	g.endUI = nil
	g.restart = false
	if g.debug {
		log.Printf("run %s seed=%d", w.RunID(), seed)
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.reloadTuning()

	if g.endUI != nil {
		g.endUI.Update()
		if g.restart || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.newRun()
		}
		return nil
	}

	dt := 1 / float64(ebiten.TPS())
	g.world.Update(readInput(g.world.Camera()), dt)
	g.handleEvents()

	if end, ok := g.world.Ended(); ok {
		g.endUI = NewEndUI(g, end)
	}
	return nil
}

// handleEvents drains the side-effect queue. The host plays no audio; in
// debug mode sounds and the session end are logged.
func (g *Game) handleEvents() {
	for _, evt := range g.world.Events().Drain() {
		if !g.debug {
			continue
		}
		switch data := evt.Data.(type) {
		case component.SoundEvent:
			log.Printf("sound %s volume=%.2f", data.ID, data.Volume)
		case component.SessionEndEvent:
			log.Printf("session end run=%s score=%d", data.RunID, data.Score)
		}
	}
}

func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case change, ok := <-g.watcher.Changes:
		if !ok {
			g.watcher = nil
			return
		}
		if mod, ok := prefabs.ModTime(change.Name); ok && !change.Removed && !mod.After(g.loaded) {
			return
		}
		t, err := prefabs.LoadTuning()
		if err != nil {
			log.Printf("failed to reload tuning: %v", err)
			return
		}
		if err := g.world.SetTuning(t); err != nil {
			log.Printf("failed to apply tuning: %v", err)
			return
		}
		g.tuning = t
		g.loaded, _ = prefabs.ModTime(prefabs.TuningFile)
		log.Printf("tuning reloaded")
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("tuning watch: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world)

	msg := fmt.Sprintf("Score: %d", g.world.Score())
	if g.debug {
		msg += fmt.Sprintf("\nFPS: %.2f  clouds: %d  birds: %d  particles: %d  rustle: %.2f",
			ebiten.ActualFPS(), g.world.Clouds().Len(), g.world.Birds().Len(),
			g.world.Particles().Len(), g.world.RustleVolume())
	}
	ebitenutil.DebugPrint(screen, msg)

	if g.endUI != nil {
		g.endUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
