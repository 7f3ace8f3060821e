package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/blockhop/assets"
	"github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/scenes"
	"github.com/automoto/blockhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelPath string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, levelPath)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning override file, reloaded on change")
	levelPath := flag.String("level", assets.StageOrder[0], "level asset path")
	overlay := flag.Bool("overlay", false, "start with the debug overlay enabled")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("tuning: %v", err)
		}
		stop, err := config.WatchTuning(*tuningPath, nil)
		if err != nil {
			log.Printf("Warning: tuning watcher unavailable: %v", err)
		} else {
			defer stop()
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		config.Debug.ShowOverlay = saved.ShowOverlay
	}
	if *overlay {
		config.Debug.ShowOverlay = true
	}

	if err := ebiten.RunGame(NewGame(*levelPath)); err != nil {
		log.Fatal(err)
	}
}
