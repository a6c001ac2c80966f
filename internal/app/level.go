// internal/app/level.go
package app

import (
	"fmt"
	"math"

	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/internal/defs"
	"go-quantum-sandbox/pkg/physics"
)

const (
	platformHeight   = 0.4
	platformMinGap   = 2.5 // минимальная дистанция между центрами платформ
	platformPlaceTry = 30
)

// generateLevel строит сцену: статическую геометрию из описания уровня,
// случайные парящие платформы, ящики и сами квантовые объекты.
func (g *Game) generateLevel() error {
	lvl := defs.Level

	for _, b := range lvl.Boxes {
		g.World.AddBox(physics.NewBox(
			physics.Vec2{X: b.MinX, Y: b.MinY},
			physics.Vec2{X: b.MaxX, Y: b.MaxY},
		))
	}

	g.generatePlatforms(lvl.PlatformCount)

	// Ящики рассыпаем сверху: физика сама уложит их на платформы.
	for i := 0; i < lvl.CrateCount; i++ {
		g.spawnCrate(physics.Vec2{
			X: g.Rng.Range(-10, 10),
			Y: g.Rng.Range(3, 8),
		})
	}

	for _, spawn := range lvl.Spawns {
		if err := g.spawnOrb(spawn.DefID, physics.Vec2{X: spawn.X, Y: spawn.Y}); err != nil {
			return fmt.Errorf("spawn %q: %w", spawn.DefID, err)
		}
	}
	return nil
}

// generatePlatforms размещает count парящих платформ, стараясь держать
// их подальше друг от друга: несколько случайных кандидатов, берём самый
// удалённый от уже размещённых.
func (g *Game) generatePlatforms(count int) {
	var centers []physics.Vec2

	for i := 0; i < count; i++ {
		best := physics.Vec2{}
		bestScore := -1.0
		for attempt := 0; attempt < platformPlaceTry; attempt++ {
			candidate := physics.Vec2{
				X: g.Rng.Range(-11, 11),
				Y: g.Rng.Range(1.5, 8),
			}
			score := math.Inf(1)
			for _, c := range centers {
				score = math.Min(score, candidate.Distance(c))
			}
			if len(centers) == 0 {
				score = 0
			}
			if score > bestScore {
				bestScore = score
				best = candidate
			}
			if bestScore >= platformMinGap && len(centers) > 0 {
				break
			}
		}

		width := g.Rng.Range(config.PlatformMinWidth, config.PlatformMaxWidth)
		g.World.AddBox(physics.NewBox(
			physics.Vec2{X: best.X - width/2, Y: best.Y - platformHeight/2},
			physics.Vec2{X: best.X + width/2, Y: best.Y + platformHeight/2},
		))
		centers = append(centers, best)
	}
}
