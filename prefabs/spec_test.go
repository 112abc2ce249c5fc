package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecs(t *testing.T) {
	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, SizeSpec{Width: 100, Height: 60}, player.Size)
	assert.Equal(t, 5.0, player.MoveSpeed)
	assert.Equal(t, -15.0, player.JumpSpeed)
	assert.Equal(t, 1.0, player.Gravity)
	assert.Equal(t, 100, player.Health)
	assert.Equal(t, AttackSpec{Reach: 40, Margin: 10}, player.Attack)

	enemy, err := LoadEnemySpec()
	require.NoError(t, err)
	assert.Equal(t, SizeSpec{Width: 40, Height: 40}, enemy.Size)
	assert.Equal(t, 30, enemy.Health)
	assert.Equal(t, color.Color(color.NRGBA{R: 0xff, A: 0xff}), enemy.Color.ColorOr(nil))

	platform, err := LoadPlatformSpec()
	require.NoError(t, err)
	assert.Equal(t, 0, platform.RenderLayer.Index)

	camera, err := LoadCameraSpec()
	require.NoError(t, err)
	assert.Equal(t, "player", camera.Target)
	assert.Equal(t, 800.0, camera.ViewportWidth)

	world, err := LoadWorldSpec()
	require.NoError(t, err)
	assert.Equal(t, WindowSpec{Title: "fario", Width: 800, Height: 600, TPS: 60}, world.Window)
	assert.Equal(t, float32(2), world.HitboxStroke)
}

func TestLoadSpecMissing(t *testing.T) {
	_, err := LoadSpec[PlayerSpec]("nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("move_speed: 7\n"), 0o644))

	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, 7.0, player.MoveSpeed)

	// Fields the override leaves out keep their embedded values.
	assert.Equal(t, SizeSpec{Width: 100, Height: 60}, player.Size)
	assert.Equal(t, -15.0, player.JumpSpeed)
	assert.Equal(t, 1.0, player.Gravity)
	assert.Equal(t, 100, player.Health)
	assert.Equal(t, AttackSpec{Reach: 40, Margin: 10}, player.Attack)
	assert.Equal(t, color.Color(color.NRGBA{R: 0x42, G: 0x87, B: 0xf5, A: 0xff}), player.Color.ColorOr(nil))

	// Files missing on disk fall back to the embedded copy.
	enemy, err := LoadEnemySpec()
	require.NoError(t, err)
	assert.Equal(t, 30, enemy.Health)
}

func TestYAMLColor(t *testing.T) {
	type doc struct {
		C *YAMLColor `yaml:"c"`
	}

	tests := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{"rgb", `c: "#4287f5"`, color.NRGBA{R: 0x42, G: 0x87, B: 0xf5, A: 0xff}, false},
		{"rgba", `c: "00000080"`, color.NRGBA{A: 0x80}, false},
		{"omitted", `other: 1`, colornames.Magenta, false},
		{"short", `c: "#fff"`, nil, true},
		{"not_hex", `c: "#gggggg"`, nil, true},
		{"not_scalar", `c: [1, 2]`, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d doc
			err := yaml.Unmarshal([]byte(tc.in), &d)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.C.ColorOr(colornames.Magenta))
		})
	}
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("prefabs/player.yaml"))
	assert.Equal(t, "player.yaml", cleanPrefabPath("player.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}

func TestDiskOverrideNestedField(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("size:\n  width: 80\nattack:\n  reach: 50\n"), 0o644))

	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, SizeSpec{Width: 80, Height: 60}, player.Size)
	assert.Equal(t, AttackSpec{Reach: 50, Margin: 10}, player.Attack)
}

func TestLoadPlayerSpecRejectsInvalidOverride(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("gravity: 0\n"), 0o644))

	_, err := LoadPlayerSpec()
	require.ErrorIs(t, err, ErrInvalidPlayerSpec)
}

func TestPlayerSpecValidate(t *testing.T) {
	valid := func() PlayerSpec {
		return PlayerSpec{
			Size:      SizeSpec{Width: 100, Height: 60},
			MoveSpeed: 5,
			JumpSpeed: -15,
			Gravity:   1,
			Attack:    AttackSpec{Reach: 40, Margin: 10},
		}
	}

	tests := []struct {
		name   string
		mutate func(*PlayerSpec)
		ok     bool
	}{
		{"valid", func(*PlayerSpec) {}, true},
		{"zero_width", func(s *PlayerSpec) { s.Size.Width = 0 }, false},
		{"zero_height", func(s *PlayerSpec) { s.Size.Height = 0 }, false},
		{"no_gravity", func(s *PlayerSpec) { s.Gravity = 0 }, false},
		{"jump_down", func(s *PlayerSpec) { s.JumpSpeed = 15 }, false},
		{"no_jump", func(s *PlayerSpec) { s.JumpSpeed = 0 }, false},
		{"negative_move", func(s *PlayerSpec) { s.MoveSpeed = -1 }, false},
		{"standing_still", func(s *PlayerSpec) { s.MoveSpeed = 0 }, true},
		{"no_reach", func(s *PlayerSpec) { s.Attack.Reach = 0 }, false},
		{"margin_eats_height", func(s *PlayerSpec) { s.Attack.Margin = 30 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := valid()
			tc.mutate(&spec)
			err := spec.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidPlayerSpec)
		})
	}
}

func TestOnDisk(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	assert.False(t, OnDisk("player.yaml"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("move_speed: 6\n"), 0o644))
	assert.True(t, OnDisk("player.yaml"))
	assert.True(t, OnDisk(filepath.Join("/somewhere/else", "player.yaml")), "only the base name is used")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "enemy.yaml"), 0o755))
	assert.False(t, OnDisk("enemy.yaml"))
}
