package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fario/prefabs"
	"github.com/milk9111/fario/session"
)

const (
	baseWidth  = 800
	baseHeight = 600
	baseTPS    = 60
)

// Game adapts a session to ebiten's update/draw loop.
type Game struct {
	session *session.Session
	hud     *HUD
	watcher *prefabs.Watcher
	logger  *log.Logger

	width  int
	height int
	tps    int
	debug  bool
}

func NewGame(sess *session.Session, window prefabs.WindowSpec, debug bool, logger *log.Logger) *Game {
	g := &Game{
		session: sess,
		hud:     NewHUD(),
		logger:  logger,
		width:   window.Width,
		height:  window.Height,
		tps:     window.TPS,
		debug:   debug,
	}
	if g.width <= 0 {
		g.width = baseWidth
	}
	if g.height <= 0 {
		g.height = baseHeight
	}
	if g.tps <= 0 {
		g.tps = baseTPS
	}
	return g
}

// Watch starts reloading prefabs from dir when they change on disk.
func (g *Game) Watch(dir string) error {
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return err
	}
	g.watcher = w
	g.logger.Info("watching prefabs", "dir", dir)
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	g.drainWatcher()

	if err := g.session.Step(); err != nil {
		if errors.Is(err, session.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Changes():
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.session.Reload(name); err != nil {
				g.logger.Warn("prefab reload failed", "file", name, "error", err)
			}
		case err, ok := <-g.watcher.Errors():
			if ok {
				g.logger.Warn("prefab watcher", "error", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(NewCanvas(screen))

	if g.debug {
		g.hud.Draw(screen, g.session.DebugText())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
