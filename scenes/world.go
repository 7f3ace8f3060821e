package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/blockhop/assets"
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/systems"
	"github.com/automoto/blockhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlatformerScene runs one level of the game.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	once         sync.Once
}

// NewPlatformerScene creates a scene for the given level asset path.
func NewPlatformerScene(sc SceneChanger, levelPath string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelPath: levelPath}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = e

	factory.CreateInput(e)

	levelEntry, err := factory.CreateLevel(e, assets.FS, ps.levelPath)
	if err != nil {
		log.Fatalf("scene: %v", err)
	}
	levelData := components.Level.Get(levelEntry)

	if _, err := factory.CreatePlayer(e, levelData.Spawn); err != nil {
		log.Fatalf("scene: %v", err)
	}
	factory.CreateCamera(e, levelData.Spawn)
}
