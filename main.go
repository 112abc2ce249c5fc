// fario is a small side-scrolling platformer.
//
// Usage:
//
//	fario                  - Play the default level
//	fario --level <name>   - Play an embedded level
//	fario levels           - List embedded levels
//
// Flags:
//
//	--debug   - Debug logging and the player state overlay
//	--watch   - Reload prefabs/*.yaml while the game runs
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fario/ecs/entity"
	"github.com/milk9111/fario/levels"
	"github.com/milk9111/fario/prefabs"
	"github.com/milk9111/fario/session"
	"github.com/spf13/cobra"
)

var (
	flagLevel string
	flagDebug bool
	flagWatch bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "fario",
	Short:        "A small side-scrolling platformer",
	SilenceUsage: true,
	RunE:         runGame,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List embedded levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := levels.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", levels.Default, "level name in levels/ (basename, .json optional)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging and overlay")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload prefabs from disk when they change")

	rootCmd.AddCommand(levelsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fario",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return err
	}
	lvl, err := levels.Load(flagLevel)
	if err != nil {
		return fmt.Errorf("level %q: %w", flagLevel, err)
	}
	specs, err := entity.LoadPrefabs()
	if err != nil {
		return err
	}
	configured := specs.Camera.ViewportWidth
	if specs.FitViewport(worldSpec.Window.Width) {
		logger.Warn("camera viewport follows the window width",
			"viewport_width", configured, "window_width", worldSpec.Window.Width)
	}

	input := NewInput()
	sess, err := session.New(lvl, specs, session.StyleFromSpec(worldSpec), input, logger)
	if err != nil {
		return err
	}

	game := NewGame(sess, worldSpec.Window, flagDebug, logger)
	defer game.Close()

	if flagWatch {
		if err := game.Watch(prefabs.Dir); err != nil {
			logger.Warn("prefab watch disabled", "dir", prefabs.Dir, "error", err)
		}
	}

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(worldSpec.Window.Title)
	ebiten.SetTPS(game.tps)

	logger.Info("starting", "level", flagLevel, "platforms", len(lvl.Platforms), "enemies", len(lvl.Enemies))
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	logger.Info("quit", "frames", sess.Frames())
	return nil
}
