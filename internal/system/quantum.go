// internal/system/quantum.go
package system

import (
	"fmt"
	"image/color"

	"go-quantum-sandbox/internal/component"
	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/internal/defs"
	"go-quantum-sandbox/internal/entity"
	"go-quantum-sandbox/internal/event"
	"go-quantum-sandbox/internal/types"
	"go-quantum-sandbox/internal/utils"
	"go-quantum-sandbox/pkg/physics"
	"go-quantum-sandbox/pkg/render"
)

// QuantumSystem реализует квантовые эффекты: зависящую от наблюдения
// телепортацию, временных клонов, инверсию гравитации и импульсы
// временного искажения. Вероятностные ветки масштабируются по dt
// (ожидаемое число срабатываний за секунду равно вероятности).
type QuantumSystem struct {
	ecs        *entity.ECS
	world      *physics.World
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewQuantumSystem(ecs *entity.ECS, world *physics.World, rng *utils.PRNGService, dispatcher *event.Dispatcher) *QuantumSystem {
	return &QuantumSystem{ecs: ecs, world: world, rng: rng, dispatcher: dispatcher}
}

// AttachQuantum навешивает квантовый эффект на существующую сущность.
// Сущность обязана уже иметь спрайт и физическое тело: недостающие
// компоненты не синтезируются, это ошибка конструирования.
func (s *QuantumSystem) AttachQuantum(id types.EntityID, defID string) error {
	def, ok := defs.QuantumLibrary[defID]
	if !ok {
		return fmt.Errorf("unknown quantum definition %q", defID)
	}
	sprite, ok := s.ecs.Sprites[id]
	if !ok {
		return fmt.Errorf("entity %d has no sprite", id)
	}
	body, ok := s.ecs.Bodies[id]
	if !ok {
		return fmt.Errorf("entity %d has no body", id)
	}

	tint := entangledTint(def)
	sprite.BaseColor = tint
	sprite.Color = tint
	body.Continuous = true
	body.ApplyTorque(s.rng.Torque(def.SpinTorque))

	s.ecs.Quantums[id] = &component.Quantum{
		DefID:               defID,
		Cooldown:            config.ObservationCooldown,
		LastPosition:        body.Position(),
		InitialGravityScale: body.GravityScale,
	}
	return nil
}

func (s *QuantumSystem) Update(deltaTime float64) {
	for id, q := range s.ecs.Quantums {
		body, hasBody := s.ecs.Bodies[id]
		sprite, hasSprite := s.ecs.Sprites[id]
		if !hasBody || !hasSprite {
			continue
		}
		def, ok := defs.QuantumLibrary[q.DefID]
		if !ok {
			continue
		}

		// Флаг наблюдения пересчитывается только по кулдауну,
		// а не каждый кадр: частота проверки отвязана от FPS.
		q.Cooldown -= deltaTime
		if q.Cooldown <= 0 {
			observed := s.isObserved(body.Position(), def.ObservationRadius)
			if observed != q.Observed {
				s.dispatcher.Dispatch(event.Event{
					Type: event.ObservationChanged,
					Data: event.ObservationPayload{Entity: id, Observed: observed},
				})
			}
			q.Observed = observed
			q.Cooldown = config.ObservationCooldown
		}

		// Мерцание же считается каждый кадр от последнего результата.
		flicker := 0.0
		if q.Observed {
			flicker = config.FlickerAmplitude * render.TriangleWave(s.ecs.GameTime, config.FlickerPeriod)
		}
		sprite.Color = render.LerpRGBA(sprite.BaseColor, config.FlickerColor, flicker)

		// Телепортация возможна только пока никто не смотрит.
		if !q.Observed && s.rng.Chance(def.TeleportProbability*deltaTime) {
			s.tryTeleport(id, body, def)
		}

		moved := body.Position().Distance(q.LastPosition) > config.MoveThreshold
		if moved && q.CloneID == 0 && s.rng.Chance(config.CloneSpawnChance) {
			s.spawnClone(id, q, body, sprite, def)
		}

		if s.rng.Chance(def.GravityFlipProbability * deltaTime) {
			s.invertGravity(id, body, sprite, def)
		}

		q.LastPosition = body.Position()
	}
}

// isObserved: точка видима камерой и строго ближе радиуса наблюдения.
// Точка ровно на радиусе не считается наблюдаемой.
func (s *QuantumSystem) isObserved(pos physics.Vec2, radius float64) bool {
	cam := s.ecs.Camera
	if cam == nil {
		return false
	}
	return cam.InView(pos) && pos.Distance(cam.Position) < radius
}

// tryTeleport подбирает случайную точку приземления. Если под ней нет
// поверхности, телепорт молча не происходит — без повторных попыток
// в этом кадре.
func (s *QuantumSystem) tryTeleport(id types.EntityID, body *physics.Body, def defs.QuantumDefinition) {
	dir := physics.FromAngle(s.rng.Angle())
	dist := s.rng.Range(config.TeleportMinDistance, def.MaxTeleportDistance)
	candidate := body.Position().Add(dir.Scale(dist))

	hit, ok := s.world.Raycast(candidate, physics.Vec2{X: 0, Y: -1}, config.TeleportRayLength)
	if !ok {
		return
	}

	from := body.Position()
	to := hit.Point.Add(physics.Vec2{X: 0, Y: config.TeleportLandingOffset})
	body.SetPosition(to)

	// Импульс временного искажения всем соседним телам, радиально от
	// точки выхода.
	affected := 0
	for _, other := range s.world.OverlapCircle(to, config.DistortionRadius) {
		if other == body {
			continue
		}
		push := other.Position().Sub(to).Normalize()
		other.ApplyImpulse(push.Scale(def.DistortionForce))
		affected++
	}

	// Небольшая отдача самому объекту в исходном случайном направлении.
	body.ApplyImpulse(dir.Scale(def.DistortionForce * config.TeleportRecoilFactor))

	s.dispatcher.Dispatch(event.Event{
		Type: event.Teleported,
		Data: event.TeleportPayload{Entity: id, From: from, To: to, Affected: affected},
	})
}

// spawnClone создаёт чисто визуальную копию объекта в текущей позиции.
// Пока клон жив, новый не появится.
func (s *QuantumSystem) spawnClone(id types.EntityID, q *component.Quantum, body *physics.Body, sprite *component.Sprite, def defs.QuantumDefinition) {
	cloneID := s.ecs.NewEntity()
	s.ecs.Clones[cloneID] = &component.TemporalClone{
		Owner:        id,
		Position:     body.Position(),
		Radius:       sprite.Radius,
		Scale:        sprite.Scale * config.CloneScaleFactor,
		Color:        sprite.Color,
		InitialAlpha: config.CloneSpawnAlpha,
		Alpha:        config.CloneSpawnAlpha,
		Duration:     def.CloneDuration,
	}
	q.CloneID = cloneID

	s.dispatcher.Dispatch(event.Event{
		Type: event.CloneSpawned,
		Data: event.ClonePayload{Owner: id, Clone: cloneID},
	})
}

// invertGravity переворачивает знак гравитации и согласует с ним
// вертикальное отражение спрайта.
func (s *QuantumSystem) invertGravity(id types.EntityID, body *physics.Body, sprite *component.Sprite, def defs.QuantumDefinition) {
	body.GravityScale = -body.GravityScale
	sprite.FlipY = body.GravityScale < 0
	body.ApplyTorque(s.rng.Torque(def.SpinTorque))

	s.dispatcher.Dispatch(event.Event{
		Type: event.GravityInverted,
		Data: event.GravityPayload{Entity: id, GravityScale: body.GravityScale},
	})
}

func entangledTint(def defs.QuantumDefinition) color.RGBA {
	c := def.EntangledColor
	if c == (defs.ColorDef{}) {
		return config.EntangledColor
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
