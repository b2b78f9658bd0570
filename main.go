package main

import (
	"flag"
	"log"

	"github.com/gonewx/loopline/pkg/app"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	engine := flag.String("engine", "", "Skip the setup screen and start with this engine (e.g. pioneer)")
	wagon := flag.String("wagon", "", "Starting wagon when --engine is set (default: last used)")
	difficulty := flag.String("difficulty", "", "Difficulty when --engine is set: easy, normal, hard")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	catalogPath := flag.String("catalog", "", "Load the content catalog from a YAML file instead of the embedded one")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		Engine:      *engine,
		Wagon:       *wagon,
		Difficulty:  *difficulty,
		Seed:        *seed,
		CatalogPath: *catalogPath,
	})
	if err != nil {
		log.Fatalf("failed to initialize game: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
