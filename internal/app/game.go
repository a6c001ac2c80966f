// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-quantum-sandbox/internal/component"
	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/internal/defs"
	"go-quantum-sandbox/internal/entity"
	"go-quantum-sandbox/internal/event"
	"go-quantum-sandbox/internal/interfaces"
	"go-quantum-sandbox/internal/system"
	"go-quantum-sandbox/internal/types"
	"go-quantum-sandbox/internal/utils"
	"go-quantum-sandbox/pkg/physics"
	"go-quantum-sandbox/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"

	"golang.org/x/image/font"
)

// Убеждаемся, что Game реализует контракт для состояний и UI.
var _ interfaces.GameContext = (*Game)(nil)

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	World           *physics.World
	QuantumSystem   *system.QuantumSystem
	CloneSystem     *system.CloneSystem
	PhysicsSystem   *system.PhysicsSystem
	RenderSystem    *system.RenderSystem
	DebugSystem     *system.DebugRenderSystem
	WorldRenderer   *render.WorldRenderer
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	FontFace        font.Face

	isPaused        bool
	debugEnabled    bool
	speedMultiplier float64

	// Счётчики эффектов с начала игры
	teleports  int
	inversions int
	clones     int
}

// NewGame initializes a new game instance.
func NewGame(seed int64) (*Game, error) {
	// Описания архетипов: файл рядом с бинарём, иначе встроенные дефолты.
	if err := defs.LoadDefinitions("data/quantum.json"); err != nil {
		log.Printf("falling back to embedded definitions: %v", err)
		if err := defs.LoadDefaultDefinitions(); err != nil {
			return nil, err
		}
	}

	face, err := render.LoadFontFace(13)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	ecs := entity.NewECS()
	world := physics.NewWorld(physics.Vec2{X: 0, Y: config.Gravity})
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
		FontFace:        face,
		speedMultiplier: 1.0,
	}
	g.PhysicsSystem = system.NewPhysicsSystem(ecs, world)
	g.QuantumSystem = system.NewQuantumSystem(ecs, world, g.Rng, eventDispatcher)
	g.CloneSystem = system.NewCloneSystem(ecs, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs)
	g.DebugSystem = system.NewDebugRenderSystem(ecs)

	if err := g.generateLevel(); err != nil {
		return nil, fmt.Errorf("failed to build level: %w", err)
	}
	g.WorldRenderer = render.NewWorldRenderer(world.Boxes(), face)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.Teleported, listener)
	eventDispatcher.Subscribe(event.GravityInverted, listener)
	eventDispatcher.Subscribe(event.CloneSpawned, listener)

	return g, nil
}

// Update продвигает симуляцию на один кадр.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	dt := deltaTime * g.speedMultiplier
	g.QuantumSystem.Update(dt)
	g.CloneSystem.Update(dt)
	g.PhysicsSystem.Update(dt)
}

// Draw отрисовывает сцену; UI рисует GameState поверх.
func (g *Game) Draw(screen *ebiten.Image) {
	g.WorldRenderer.Draw(screen, g.ECS.Camera)
	g.RenderSystem.Draw(screen)
	if g.debugEnabled {
		g.DebugSystem.Draw(screen)
	}
}

// PanCamera сдвигает камеру; наблюдение зависит от её позиции, так что
// это и есть главный орган управления в песочнице.
func (g *Game) PanCamera(dir physics.Vec2, deltaTime float64) {
	cam := g.ECS.Camera
	cam.Position = cam.Position.Add(dir.Normalize().Scale(config.CameraPanSpeed * deltaTime))
}

// OrbAt ищет квантовый объект под мировой точкой (с небольшим допуском,
// чтобы по мелким телам было проще попадать курсором).
func (g *Game) OrbAt(pos physics.Vec2) (types.EntityID, bool) {
	const pickSlack = 0.25
	for id := range g.ECS.Quantums {
		body, ok := g.ECS.Bodies[id]
		if !ok {
			continue
		}
		if body.Position().Distance(pos) <= body.Radius+pickSlack {
			return id, true
		}
	}
	return 0, false
}

// DestroyOrb убирает квантовый объект вместе с его незатухшим клоном.
func (g *Game) DestroyOrb(id types.EntityID) {
	g.CloneSystem.DestroyFor(id)
	if body, ok := g.ECS.Bodies[id]; ok {
		g.World.RemoveBody(body)
	}
	g.ECS.DestroyEntity(id)
}

// --- interfaces.GameContext ---

func (g *Game) TogglePause()                 { g.isPaused = !g.isPaused }
func (g *Game) IsPaused() bool               { return g.isPaused }
func (g *Game) ToggleDebug()                 { g.debugEnabled = !g.debugEnabled }
func (g *Game) DebugEnabled() bool           { return g.debugEnabled }
func (g *Game) SpeedMultiplier() float64     { return g.speedMultiplier }
func (g *Game) SetSpeedMultiplier(m float64) { g.speedMultiplier = m }

func (g *Game) EffectCounts() (teleports, inversions, clones int) {
	return g.teleports, g.inversions, g.clones
}

// ObservedCount возвращает число наблюдаемых сейчас объектов.
func (g *Game) ObservedCount() int {
	n := 0
	for _, q := range g.ECS.Quantums {
		if q.Observed {
			n++
		}
	}
	return n
}

func (g *Game) OrbCount() int {
	return len(g.ECS.Quantums)
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.Teleported:
		l.game.teleports++
	case event.GravityInverted:
		l.game.inversions++
	case event.CloneSpawned:
		l.game.clones++
	}
}

// spawnOrb создаёт квантовый объект по архетипу.
func (g *Game) spawnOrb(defID string, pos physics.Vec2) error {
	def, ok := defs.QuantumLibrary[defID]
	if !ok {
		return fmt.Errorf("unknown quantum definition %q", defID)
	}
	id := g.ECS.NewEntity()
	g.ECS.Sprites[id] = &component.Sprite{
		Radius: def.BodyRadius,
		Scale:  1,
		Alpha:  1,
	}
	body := physics.NewBody(pos, def.BodyRadius, def.Mass)
	body.Entity = uint64(id)
	g.ECS.Bodies[id] = body
	g.World.AddBody(body)
	return g.QuantumSystem.AttachQuantum(id, defID)
}

// spawnCrate создаёт обычный ящик — мишень для импульсов искажения.
func (g *Game) spawnCrate(pos physics.Vec2) {
	id := g.ECS.NewEntity()
	g.ECS.Crates[id] = &component.Crate{}
	body := physics.NewBody(pos, config.CrateRadius, config.CrateMass)
	body.Entity = uint64(id)
	g.ECS.Bodies[id] = body
	g.World.AddBody(body)
}
