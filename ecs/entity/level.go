package entity

import (
	"fmt"

	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/levels"
	"github.com/milk9111/fario/prefabs"
)

// Prefabs bundles the specs a level needs to populate a world.
type Prefabs struct {
	Player   *prefabs.PlayerSpec
	Enemy    *prefabs.EnemySpec
	Platform *prefabs.PlatformSpec
	Camera   *prefabs.CameraSpec
}

func LoadPrefabs() (*Prefabs, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	platform, err := prefabs.LoadPlatformSpec()
	if err != nil {
		return nil, err
	}
	camera, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	return &Prefabs{Player: player, Enemy: enemy, Platform: platform, Camera: camera}, nil
}

// FitViewport makes the camera centre on a window of the given width.
// It reports whether camera.yaml asked for a different width.
func (p *Prefabs) FitViewport(width int) bool {
	if p == nil || p.Camera == nil || width <= 0 {
		return false
	}
	want := float64(width)
	if p.Camera.ViewportWidth == want {
		return false
	}
	p.Camera.ViewportWidth = want
	return true
}

// BuildLevel creates platforms, the player, enemies and the camera in that
// order. Enemies get ascending entity handles in level-file order, which is
// the order combat resolves them in.
func BuildLevel(w *ecs.World, lvl *levels.Level, p *Prefabs) (ecs.Entity, error) {
	if w == nil || lvl == nil || p == nil {
		return 0, fmt.Errorf("build level: missing world, level or prefabs")
	}

	for i, def := range lvl.Platforms {
		if _, err := NewPlatform(w, p.Platform, def); err != nil {
			return 0, fmt.Errorf("build level: platform %d: %w", i, err)
		}
	}

	player, err := NewPlayerFromSpec(w, p.Player, lvl.SpawnX, lvl.SpawnY)
	if err != nil {
		return 0, fmt.Errorf("build level: %w", err)
	}

	for i, def := range lvl.Enemies {
		if _, err := NewEnemy(w, p.Enemy, def); err != nil {
			return 0, fmt.Errorf("build level: enemy %d: %w", i, err)
		}
	}

	if _, err := NewCamera(w, p.Camera); err != nil {
		return 0, fmt.Errorf("build level: %w", err)
	}

	return player, nil
}
