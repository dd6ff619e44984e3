package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids/pkg/view"
)

func main() {
	settingsDir := flag.String("settings-dir", simulation.DefaultSettingsDir(), "Directory holding the saved settings")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	flag.Parse()

	if err := run(*settingsDir, *seed); err != nil {
		golog.DefaultLogger.Error(err)
		os.Exit(1)
	}
}

func run(settingsDir string, seed uint64) error {
	ctx := context.Background()

	system, err := actor.NewActorSystem("BoidsWorld",
		actor.WithLogger(golog.DefaultLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return err
	}
	if err := system.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = system.Stop(ctx) }()

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	system.Logger().Infof("🐦 seed %d, settings in %s", seed, settingsDir)

	store := simulation.NewSettingsStore(settingsDir, system.Logger())
	game, err := view.GetNewGame(ctx, system, store, rand.New(rand.NewPCG(seed, seed>>1)))
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(view.ScreenWidth*4/5, view.ScreenHeight*4/5)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Boids")
	return ebiten.RunGame(game)
}
