// Package session owns one running world: its entities, the fixed system
// order and the collaborators that feed input in and draw frames out.
package session

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"github.com/milk9111/fario/ecs/entity"
	"github.com/milk9111/fario/ecs/system"
	"github.com/milk9111/fario/levels"
	"github.com/milk9111/fario/prefabs"
)

// ErrQuit is returned by Step once the input source asks to quit.
var ErrQuit = errors.New("session: quit requested")

type Session struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	input     system.InputSource
	player    ecs.Entity
	logger    *log.Logger
	frames    int
}

// New builds a world from lvl. The system order is the frame contract:
// input, horizontal motion and jump, attack hitbox, gravity and landing,
// enemy elimination, camera.
func New(lvl *levels.Level, p *entity.Prefabs, style system.RenderStyle, input system.InputSource, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}

	w := ecs.NewWorld()
	player, err := entity.BuildLevel(w, lvl, p)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &Session{
		world: w,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(input),
			system.NewPlayerControllerSystem(),
			system.NewPlayerAttackSystem(),
			system.NewPhysicsSystem(),
			system.NewCombatSystem(),
			system.NewCameraSystem(),
		),
		render: system.NewRenderSystem(style),
		input:  input,
		player: player,
		logger: logger,
	}, nil
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Player() ecs.Entity {
	return s.player
}

func (s *Session) Frames() int {
	return s.frames
}

// Step advances the simulation by one frame.
func (s *Session) Step() error {
	if s.input != nil && s.input.QuitRequested() {
		return ErrQuit
	}

	s.frames++
	s.scheduler.Update(s.world)

	for _, evt := range s.world.Events().Drain() {
		switch data := evt.Data.(type) {
		case ecs.EnemyDefeatedEvent:
			s.logger.Debug("enemy defeated", "frame", s.frames, "entity", data.Entity, "cause", data.Cause)
		case ecs.GroundedEvent:
			s.logger.Debug("landed", "frame", s.frames, "y", data.Y)
		}
	}
	return nil
}

func (s *Session) Draw(screen system.Canvas) {
	s.render.Draw(s.world, screen)
}

func (s *Session) DebugText() string {
	return system.DebugText(s.world)
}

// CameraX returns the current horizontal scroll offset.
func (s *Session) CameraX() float64 {
	cam, ok := s.world.First(component.CameraComponent.Kind())
	if !ok {
		return 0
	}
	t, ok := ecs.Get(s.world, cam, component.TransformComponent.Kind())
	if !ok {
		return 0
	}
	return t.X
}

// Reload re-applies a changed prefab to the running world. Only player
// tuning and world colours can change live; other prefabs are read when a
// level is built. Names with no file under prefabs.Dir are ignored.
func (s *Session) Reload(name string) error {
	// Editors that save by renaming report the old name after it is gone.
	if !prefabs.OnDisk(name) {
		s.logger.Debug("prefab not on disk, keeping current values", "file", name)
		return nil
	}

	switch filepath.Base(name) {
	case "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return err
		}
		if err := entity.ApplyPlayerSpec(s.world, s.player, spec); err != nil {
			return err
		}
		s.logger.Info("reloaded player tuning", "move_speed", spec.MoveSpeed, "jump_speed", spec.JumpSpeed)
	case "world.yaml":
		spec, err := prefabs.LoadWorldSpec()
		if err != nil {
			return err
		}
		s.render.SetStyle(StyleFromSpec(spec))
		s.logger.Info("reloaded world style")
	default:
		s.logger.Info("prefab changed, restart to apply", "file", name)
	}
	return nil
}

// StyleFromSpec fills a render style from world.yaml, keeping defaults for
// anything the file leaves out.
func StyleFromSpec(spec *prefabs.WorldSpec) system.RenderStyle {
	style := system.DefaultRenderStyle()
	if spec == nil {
		return style
	}
	style.Background = spec.Background.ColorOr(style.Background)
	style.HitboxColor = spec.HitboxColor.ColorOr(style.HitboxColor)
	if spec.HitboxStroke > 0 {
		style.HitboxStroke = spec.HitboxStroke
	}
	if spec.HitboxLayer != 0 {
		style.HitboxLayer = spec.HitboxLayer
	}
	return style
}
