// internal/system/quantum_test.go
package system

import (
	"math"
	"testing"

	"go-quantum-sandbox/internal/component"
	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/internal/defs"
	"go-quantum-sandbox/internal/entity"
	"go-quantum-sandbox/internal/event"
	"go-quantum-sandbox/internal/types"
	"go-quantum-sandbox/internal/utils"
	"go-quantum-sandbox/pkg/physics"
)

// recorder собирает все события диспетчера для проверок.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t event.EventType) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

var allEventTypes = []event.EventType{
	event.Teleported, event.GravityInverted, event.CloneSpawned,
	event.CloneExpired, event.ObservationChanged,
}

func testDef() defs.QuantumDefinition {
	return defs.QuantumDefinition{
		ID:                     "TEST_ORB",
		EntangledColor:         defs.ColorDef{120, 60, 220, 255},
		ObservationRadius:      5.0,
		TeleportProbability:    1.0,
		MaxTeleportDistance:    3.0,
		CloneDuration:          1.0,
		GravityFlipProbability: 0,
		DistortionForce:        5.0,
		SpinTorque:             1.0,
		BodyRadius:             0.4,
		Mass:                   1.0,
	}
}

type rig struct {
	ecs     *entity.ECS
	world   *physics.World
	quantum *QuantumSystem
	clones  *CloneSystem
	rec     *recorder
	orb     types.EntityID
	body    *physics.Body
	state   *component.Quantum
}

func newRig(t *testing.T, def defs.QuantumDefinition, orbPos physics.Vec2) *rig {
	t.Helper()
	defs.QuantumLibrary = map[string]defs.QuantumDefinition{def.ID: def}

	ecs := entity.NewECS()
	world := physics.NewWorld(physics.Vec2{X: 0, Y: config.Gravity})
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	for _, et := range allEventTypes {
		dispatcher.Subscribe(et, rec)
	}
	rng := utils.NewPRNGService(12345)

	qs := NewQuantumSystem(ecs, world, rng, dispatcher)
	cs := NewCloneSystem(ecs, dispatcher)

	id := ecs.NewEntity()
	ecs.Sprites[id] = &component.Sprite{Radius: def.BodyRadius, Scale: 1, Alpha: 1}
	body := physics.NewBody(orbPos, def.BodyRadius, def.Mass)
	ecs.Bodies[id] = body
	world.AddBody(body)
	if err := qs.AttachQuantum(id, def.ID); err != nil {
		t.Fatalf("AttachQuantum: %v", err)
	}

	// Камера далеко: орб не наблюдается, пока тест не решит иначе.
	ecs.Camera.Position = physics.Vec2{X: 1000, Y: 0}

	return &rig{
		ecs:     ecs,
		world:   world,
		quantum: qs,
		clones:  cs,
		rec:     rec,
		orb:     id,
		body:    body,
		state:   ecs.Quantums[id],
	}
}

func TestAttachQuantumValidation(t *testing.T) {
	def := testDef()
	defs.QuantumLibrary = map[string]defs.QuantumDefinition{def.ID: def}
	ecs := entity.NewECS()
	world := physics.NewWorld(physics.Vec2{})
	qs := NewQuantumSystem(ecs, world, utils.NewPRNGService(1), event.NewDispatcher())

	bare := ecs.NewEntity()
	if err := qs.AttachQuantum(bare, def.ID); err == nil {
		t.Error("entity without sprite and body must be rejected")
	}

	withSprite := ecs.NewEntity()
	ecs.Sprites[withSprite] = &component.Sprite{Radius: 0.4, Scale: 1, Alpha: 1}
	if err := qs.AttachQuantum(withSprite, def.ID); err == nil {
		t.Error("entity without body must be rejected")
	}

	ecs.Bodies[withSprite] = physics.NewBody(physics.Vec2{}, 0.4, 1)
	if err := qs.AttachQuantum(withSprite, "NO_SUCH_DEF"); err == nil {
		t.Error("unknown definition must be rejected")
	}
	if err := qs.AttachQuantum(withSprite, def.ID); err != nil {
		t.Errorf("valid entity must attach: %v", err)
	}

	// Запутанный оттенок применён сразу.
	if ecs.Sprites[withSprite].BaseColor.B != 220 {
		t.Errorf("entangled tint not applied: %v", ecs.Sprites[withSprite].BaseColor)
	}
	if !ecs.Bodies[withSprite].Continuous {
		t.Error("body must use continuous collision")
	}
}

func TestObservationBoundary(t *testing.T) {
	def := testDef()
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})
	r.ecs.Camera.Position = physics.Vec2{}

	cases := []struct {
		name string
		pos  physics.Vec2
		want bool
	}{
		{"inside radius", physics.Vec2{X: def.ObservationRadius - 0.01, Y: 0}, true},
		{"exactly at radius", physics.Vec2{X: def.ObservationRadius, Y: 0}, false},
		{"beyond radius", physics.Vec2{X: def.ObservationRadius + 1, Y: 0}, false},
		{"at camera", physics.Vec2{}, true},
	}
	for _, c := range cases {
		if got := r.quantum.isObserved(c.pos, def.ObservationRadius); got != c.want {
			t.Errorf("%s: isObserved = %v, want %v", c.name, got, c.want)
		}
	}

	// Вне вьюпорта не наблюдается даже вплотную к камере по дистанции.
	r.ecs.Camera.Zoom = 8 // сузим видимую область до пары единиц
	edge := physics.Vec2{X: 4, Y: 0}
	if r.quantum.isObserved(edge, def.ObservationRadius) {
		t.Error("point outside the viewport must not be observed")
	}
	r.ecs.Camera.Zoom = config.CameraStartZoom

	// Без камеры ничего не наблюдается и ничего не ломается.
	r.ecs.Camera = nil
	if r.quantum.isObserved(physics.Vec2{}, def.ObservationRadius) {
		t.Error("nil camera must mean unobserved")
	}
}

// Флаг наблюдения пересчитывается только по кулдауну, не каждый кадр.
func TestObservationCooldownCadence(t *testing.T) {
	def := testDef()
	def.TeleportProbability = 0 // чтобы орб не прыгал
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})

	// Первый пересчёт случится после полного кулдауна.
	r.quantum.Update(0.05)
	if r.state.Observed {
		t.Fatal("orb must start unobserved")
	}

	// Камера теперь смотрит прямо на орб, но до истечения кулдауна
	// флаг остаётся прежним.
	r.ecs.Camera.Position = r.body.Position()
	r.quantum.Update(0.04)
	if r.state.Observed {
		t.Error("flag must not refresh before the cooldown elapses")
	}

	r.quantum.Update(0.02)
	if !r.state.Observed {
		t.Error("flag must refresh once the cooldown elapses")
	}
	if n := r.rec.count(event.ObservationChanged); n != 1 {
		t.Errorf("ObservationChanged dispatched %d times, want 1", n)
	}
}

func TestTeleportLandsAboveSurface(t *testing.T) {
	def := testDef()
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})
	// Широкая плита: куда бы ни прыгнул орб, под точкой выхода поверхность.
	r.world.AddBox(physics.NewBox(physics.Vec2{X: -1000, Y: -1}, physics.Vec2{X: 1000, Y: 0}))

	const dt = 0.016
	for i := 0; i < 50000 && r.rec.count(event.Teleported) == 0; i++ {
		r.quantum.Update(dt)
	}
	if r.rec.count(event.Teleported) == 0 {
		t.Fatal("teleport never fired with probability 1.0")
	}

	e, _ := r.rec.last(event.Teleported)
	payload := e.Data.(event.TeleportPayload)
	if math.Abs(payload.To.Y-(0+config.TeleportLandingOffset)) > 1e-9 {
		t.Errorf("landing y = %v, want hit.y + %v", payload.To.Y, config.TeleportLandingOffset)
	}
	if r.body.Position() != payload.To {
		t.Errorf("body position %v differs from teleport target %v in the same frame",
			r.body.Position(), payload.To)
	}
}

func TestTeleportSkippedWithoutSurface(t *testing.T) {
	def := testDef()
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})
	// Мир без статической геометрии: лучу некуда попадать.

	start := r.body.Position()
	for i := 0; i < 5000; i++ {
		r.quantum.Update(0.016)
	}
	if n := r.rec.count(event.Teleported); n != 0 {
		t.Fatalf("teleported %d times with no surface anywhere", n)
	}
	if r.body.Position() != start {
		t.Errorf("position changed without a teleport: %v -> %v", start, r.body.Position())
	}
}

func TestTeleportNeverFiresWhileObserved(t *testing.T) {
	def := testDef()
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})
	r.world.AddBox(physics.NewBox(physics.Vec2{X: -1000, Y: -1}, physics.Vec2{X: 1000, Y: 0}))

	// Камера в упор, флаг выставлен заранее.
	r.ecs.Camera.Position = r.body.Position()
	r.state.Observed = true

	for i := 0; i < 5000; i++ {
		r.quantum.Update(0.016)
	}
	if n := r.rec.count(event.Teleported); n != 0 {
		t.Errorf("teleported %d times while observed", n)
	}

	// Логика клонов от наблюдения не зависит: двигаем орб руками.
	for i := 0; i < 1000 && r.rec.count(event.CloneSpawned) == 0; i++ {
		p := r.body.Position()
		r.body.SetPosition(physics.Vec2{X: p.X + 0.2, Y: p.Y})
		r.ecs.Camera.Position = r.body.Position()
		r.quantum.Update(0.016)
	}
	if r.rec.count(event.CloneSpawned) == 0 {
		t.Error("clone spawning must be independent of observation")
	}
}

func TestDistortionPushesNeighbors(t *testing.T) {
	def := testDef()
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})
	r.world.AddBox(physics.NewBox(physics.Vec2{X: -1000, Y: -1}, physics.Vec2{X: 1000, Y: 0}))

	// Ковер из ящиков: куда бы орб ни вышел, соседи найдутся.
	var crates []*physics.Body
	for x := -8.0; x <= 8.0; x += 1.0 {
		c := physics.NewBody(physics.Vec2{X: x, Y: 0.5}, config.CrateRadius, config.CrateMass)
		crates = append(crates, c)
		r.world.AddBody(c)
	}

	for i := 0; i < 50000 && r.rec.count(event.Teleported) == 0; i++ {
		r.quantum.Update(0.016)
	}
	e, ok := r.rec.last(event.Teleported)
	if !ok {
		t.Fatal("teleport never fired")
	}
	payload := e.Data.(event.TeleportPayload)
	if payload.Affected == 0 {
		t.Fatal("no neighbors affected despite the crate carpet")
	}

	pushed := 0
	for _, c := range crates {
		v := c.Velocity()
		if v == (physics.Vec2{}) {
			continue
		}
		pushed++
		// Импульс радиальный: скорость направлена от точки выхода.
		away := c.Position().Sub(payload.To)
		if v.Dot(away) <= 0 {
			t.Errorf("crate at %v pushed toward the distortion center", c.Position())
		}
	}
	if pushed != payload.Affected {
		t.Errorf("pushed %d crates, payload says %d", pushed, payload.Affected)
	}
	// Сам орб тоже получает отдачу.
	if r.body.Velocity() == (physics.Vec2{}) {
		t.Error("orb received no recoil impulse")
	}
}

func TestSingleCloneAtATime(t *testing.T) {
	def := testDef()
	def.TeleportProbability = 0
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})

	spawned := false
	for i := 0; i < 1000; i++ {
		p := r.body.Position()
		r.body.SetPosition(physics.Vec2{X: p.X + 0.2, Y: p.Y})
		r.quantum.Update(0.016)
		if len(r.ecs.Clones) > 1 {
			t.Fatalf("%d clones alive at once", len(r.ecs.Clones))
		}
		if r.rec.count(event.CloneSpawned) > 0 {
			spawned = true
		}
	}
	if !spawned {
		t.Fatal("clone never spawned despite constant movement")
	}
	if r.rec.count(event.CloneSpawned) != 1 {
		t.Errorf("spawned %d clones while the first was still alive", r.rec.count(event.CloneSpawned))
	}
	if r.state.CloneID == 0 {
		t.Error("owner lost its clone reference")
	}
}

func TestNoCloneWithoutMovement(t *testing.T) {
	def := testDef()
	def.TeleportProbability = 0
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})

	for i := 0; i < 5000; i++ {
		r.quantum.Update(0.016)
	}
	if n := r.rec.count(event.CloneSpawned); n != 0 {
		t.Errorf("spawned %d clones while stationary", n)
	}
}

func TestCloneFadeIsLinearAndClears(t *testing.T) {
	def := testDef()
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})

	cloneID := r.ecs.NewEntity()
	r.ecs.Clones[cloneID] = &component.TemporalClone{
		Owner:        r.orb,
		Position:     r.body.Position(),
		Scale:        config.CloneScaleFactor,
		InitialAlpha: config.CloneSpawnAlpha,
		Alpha:        config.CloneSpawnAlpha,
		Duration:     1.0,
	}
	r.state.CloneID = cloneID

	r.clones.Update(0.25)
	clone := r.ecs.Clones[cloneID]
	if math.Abs(clone.Alpha-config.CloneSpawnAlpha*0.75) > 1e-9 {
		t.Errorf("alpha after 25%% = %v, want %v", clone.Alpha, config.CloneSpawnAlpha*0.75)
	}

	r.clones.Update(0.5)
	if math.Abs(clone.Alpha-config.CloneSpawnAlpha*0.25) > 1e-9 {
		t.Errorf("alpha after 75%% = %v, want %v", clone.Alpha, config.CloneSpawnAlpha*0.25)
	}

	r.clones.Update(0.25)
	if _, alive := r.ecs.Clones[cloneID]; alive {
		t.Error("clone must be destroyed exactly at its duration")
	}
	if r.state.CloneID != 0 {
		t.Error("owner reference must be cleared on expiry")
	}
	if r.rec.count(event.CloneExpired) != 1 {
		t.Error("CloneExpired not dispatched")
	}
}

func TestDestroyForShortCircuitsFade(t *testing.T) {
	def := testDef()
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})

	cloneID := r.ecs.NewEntity()
	r.ecs.Clones[cloneID] = &component.TemporalClone{
		Owner: r.orb, InitialAlpha: 0.5, Alpha: 0.5, Duration: 10,
	}
	r.state.CloneID = cloneID

	r.clones.DestroyFor(r.orb)
	if len(r.ecs.Clones) != 0 {
		t.Error("DestroyFor must remove the pending clone immediately")
	}
	if r.state.CloneID != 0 {
		t.Error("owner reference must be cleared")
	}
}

func TestGravityInversionIsExactToggle(t *testing.T) {
	def := testDef()
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})
	sprite := r.ecs.Sprites[r.orb]

	original := r.body.GravityScale
	r.quantum.invertGravity(r.orb, r.body, sprite, def)
	if r.body.GravityScale != -original {
		t.Errorf("gravity scale = %v, want %v", r.body.GravityScale, -original)
	}
	if !sprite.FlipY {
		t.Error("sprite must flip when gravity is inverted")
	}

	r.quantum.invertGravity(r.orb, r.body, sprite, def)
	if r.body.GravityScale != original {
		t.Errorf("double inversion must restore the original scale exactly, got %v", r.body.GravityScale)
	}
	if sprite.FlipY {
		t.Error("double inversion must restore the original flip state")
	}
	if r.rec.count(event.GravityInverted) != 2 {
		t.Errorf("GravityInverted dispatched %d times, want 2", r.rec.count(event.GravityInverted))
	}
}

// Ожидаемое число срабатываний за T секунд ≈ p·T.
func TestProbabilityGateExpectedRate(t *testing.T) {
	def := testDef()
	def.TeleportProbability = 0
	def.GravityFlipProbability = 0.5
	r := newRig(t, def, physics.Vec2{X: 0, Y: 1})

	const (
		dt     = 0.01
		frames = 20000 // 200 секунд модельного времени
	)
	for i := 0; i < frames; i++ {
		r.quantum.Update(dt)
	}

	// Матожидание 100, допускаем широкий коридор на дисперсию.
	got := r.rec.count(event.GravityInverted)
	if got < 60 || got > 140 {
		t.Errorf("inversions = %d over 200s at p=0.5, expected near 100", got)
	}
}
