package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes the embedded copy of filename and then the on-disk
// override on top of it, so an override only needs the fields it changes.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	docs, err := layers(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	for _, data := range docs {
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
		}
	}

	return spec, nil
}

// ErrInvalidPlayerSpec is wrapped by PlayerSpec.Validate.
var ErrInvalidPlayerSpec = errors.New("invalid player spec")

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type AttackSpec struct {
	Reach  float64 `yaml:"reach"`
	Margin float64 `yaml:"margin"`
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Size        SizeSpec        `yaml:"size"`
	MoveSpeed   float64         `yaml:"move_speed"`
	JumpSpeed   float64         `yaml:"jump_speed"`
	Gravity     float64         `yaml:"gravity"`
	Health      int             `yaml:"health"`
	Attack      AttackSpec      `yaml:"attack"`
	Color       *YAMLColor      `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

// Validate rejects tuning the simulation cannot run with: the player must
// have a body, fall, and jump upwards.
func (s *PlayerSpec) Validate() error {
	switch {
	case s.Size.Width <= 0 || s.Size.Height <= 0:
		return fmt.Errorf("%w: size %vx%v", ErrInvalidPlayerSpec, s.Size.Width, s.Size.Height)
	case s.Gravity <= 0:
		return fmt.Errorf("%w: gravity %v", ErrInvalidPlayerSpec, s.Gravity)
	case s.JumpSpeed >= 0:
		return fmt.Errorf("%w: jump_speed %v", ErrInvalidPlayerSpec, s.JumpSpeed)
	case s.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed %v", ErrInvalidPlayerSpec, s.MoveSpeed)
	case s.Attack.Reach <= 0 || s.Attack.Margin < 0 || 2*s.Attack.Margin >= s.Size.Height:
		return fmt.Errorf("%w: attack reach %v margin %v", ErrInvalidPlayerSpec, s.Attack.Reach, s.Attack.Margin)
	}
	return nil
}

type EnemySpec struct {
	Name        string          `yaml:"name"`
	Size        SizeSpec        `yaml:"size"`
	Speed       float64         `yaml:"speed"`
	Health      int             `yaml:"health"`
	Color       *YAMLColor      `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlatformSpec struct {
	Name        string          `yaml:"name"`
	Color       *YAMLColor      `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadPlatformSpec() (*PlatformSpec, error) {
	spec, err := LoadSpec[PlatformSpec]("platform.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name          string  `yaml:"name"`
	Target        string  `yaml:"target"`
	ViewportWidth float64 `yaml:"viewport_width"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

type WorldSpec struct {
	Window       WindowSpec `yaml:"window"`
	Background   *YAMLColor `yaml:"background"`
	HitboxColor  *YAMLColor `yaml:"hitbox_color"`
	HitboxStroke float32    `yaml:"hitbox_stroke"`
	HitboxLayer  int        `yaml:"hitbox_layer"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns the decoded colour, or fallback when the field was omitted.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
