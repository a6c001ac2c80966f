// internal/defs/types.go
package defs

// ColorDef — цвет в JSON-описаниях, RGBA по 0-255.
type ColorDef [4]uint8

// QuantumDefinition описывает архетип квантового объекта. Все параметры
// фиксируются на момент создания сущности и не перезагружаются на лету.
type QuantumDefinition struct {
	ID                     string   `json:"id"`
	EntangledColor         ColorDef `json:"entangled_color"`
	ObservationRadius      float64  `json:"observation_radius"`
	TeleportProbability    float64  `json:"teleport_probability"`
	MaxTeleportDistance    float64  `json:"max_teleport_distance"`
	CloneDuration          float64  `json:"clone_duration"`
	GravityFlipProbability float64  `json:"gravity_flip_probability"`
	DistortionForce        float64  `json:"distortion_force"`
	SpinTorque             float64  `json:"spin_torque"`
	BodyRadius             float64  `json:"body_radius"`
	Mass                   float64  `json:"mass"`
}

// BoxDef — статический прямоугольник уровня в мировых координатах.
type BoxDef struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// SpawnDef — точка появления квантового объекта.
type SpawnDef struct {
	DefID string  `json:"def_id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// LevelDefinition описывает стартовую сцену песочницы: статическую
// геометрию, количество случайных платформ и ящиков, точки появления орбов.
type LevelDefinition struct {
	Boxes         []BoxDef   `json:"boxes"`
	PlatformCount int        `json:"platform_count"`
	CrateCount    int        `json:"crate_count"`
	Spawns        []SpawnDef `json:"spawns"`
}
