package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/doodleshoot/prefabs"
)

func main() {
	seed := flag.Uint64("seed", 0, "level seed (0 picks a random one per run)")
	watch := flag.Bool("watch", false, "reload prefabs/tuning.yaml when it changes on disk")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("failed to load tuning, using built-in values: %v", err)
		tuning = prefabs.DefaultTuning()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("doodle shoot")

	game, err := NewGame(tuning, *seed, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if *watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("tuning watch disabled: %v", err)
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
