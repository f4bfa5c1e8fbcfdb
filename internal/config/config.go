// Package config holds the settings of the gizmo hosts. Defaults are set
// in code and overridden by an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Backends that can host the widgets
const (
	BackendRaylib = "raylib"
	BackendFyne   = "fyne"
)

// ErrUnknownBackend is returned for a backend other than raylib or fyne
var ErrUnknownBackend = errors.New("unknown backend")

// Config is the complete configuration
type Config struct {
	Widget WidgetConfig `toml:"widget"`
	Camera CameraConfig `toml:"camera"`
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
}

// WidgetConfig controls widget appearance. It is the only section that
// is applied again when the file changes.
type WidgetConfig struct {
	HandleScale   float64 `toml:"handle_scale"`
	ScaleInPixels bool    `toml:"scale_in_pixels"`
	Colors        Colors  `toml:"colors"`
}

// Colors are hex strings of the form #rrggbb or #rrggbbaa
type Colors struct {
	Handle     string `toml:"handle"`
	MoveHandle string `toml:"move_handle"`
	Line       string `toml:"line"`
	Label      string `toml:"label"`
	Origin     string `toml:"origin"`
	Plane      string `toml:"plane"`
	Normal     string `toml:"normal"`
	Outline    string `toml:"outline"`
}

type CameraConfig struct {
	FOVDegrees float64 `toml:"fov_degrees"`
}

type WindowConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	FPS     int    `toml:"fps"`
	Backend string `toml:"backend"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built in configuration
func Default() Config {
	return Config{
		Widget: WidgetConfig{
			HandleScale: 0.1,
			Colors: Colors{
				Handle:     "#ffffff",
				MoveHandle: "#ffff00",
				Line:       "#ffff00",
				Label:      "#ffffff",
				Origin:     "#ffffff",
				Plane:      "#80a0ff80",
				Normal:     "#ff5050",
				Outline:    "#c8c8c8",
			},
		},
		Camera: CameraConfig{FOVDegrees: 45},
		Window: WindowConfig{
			Width:   1400,
			Height:  900,
			Title:   "Gizmo",
			FPS:     60,
			Backend: BackendRaylib,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and color syntax
func (c Config) Validate() error {
	if err := ValidateBackend(c.Window.Backend); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS < 0 {
		return fmt.Errorf("fps %d must not be negative", c.Window.FPS)
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		return fmt.Errorf("fov_degrees %.1f must be in (0, 180)", c.Camera.FOVDegrees)
	}
	if c.Widget.HandleScale <= 0 {
		return fmt.Errorf("handle_scale %.3f must be positive", c.Widget.HandleScale)
	}
	if _, err := c.Widget.Colors.Palette(); err != nil {
		return err
	}
	return nil
}

// ValidateBackend returns ErrUnknownBackend for names other than raylib and fyne
func ValidateBackend(name string) error {
	switch name {
	case BackendRaylib, BackendFyne:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Palette is the parsed form of Colors
type Palette struct {
	Handle, MoveHandle, Line, Label color.RGBA
	Origin, Plane, Normal, Outline  color.RGBA
}

// Palette parses every color
func (c Colors) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"handle", c.Handle, &p.Handle},
		{"move_handle", c.MoveHandle, &p.MoveHandle},
		{"line", c.Line, &p.Line},
		{"label", c.Label, &p.Label},
		{"origin", c.Origin, &p.Origin},
		{"plane", c.Plane, &p.Plane},
		{"normal", c.Normal, &p.Normal},
		{"outline", c.Outline, &p.Outline},
	}
	for _, f := range fields {
		col, err := ParseColor(f.value)
		if err != nil {
			return p, fmt.Errorf("color %s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// ParseColor parses #rrggbb or #rrggbbaa
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	col := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &col.R, &col.G, &col.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &col.R, &col.G, &col.B, &col.A)
	default:
		err = fmt.Errorf("%q is not #rrggbb or #rrggbbaa", s)
	}
	if err != nil {
		return color.RGBA{}, err
	}
	return col, nil
}
