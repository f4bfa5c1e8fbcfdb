package app

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gizmo/internal/config"
	"github.com/philipparndt/gizmo/internal/scene"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/stl"
	"github.com/philipparndt/gizmo/pkg/viewer"
	"github.com/philipparndt/gizmo/pkg/widget"
	"github.com/philipparndt/gizmo/pkg/widgetmanager"
)

// Mode selects the widget a session edits
type Mode string

const (
	ModeAngle Mode = "angle"
	ModePlane Mode = "plane"
)

// Options configure a host session
type Options struct {
	Config     config.Config
	ConfigPath string // optional, watched for appearance changes
	ScenePath  string // optional .stl or .scad file
	Mode       Mode
}

type App struct {
	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	Widgets     WidgetState

	cfg    config.Config
	window *window
	logger *slog.Logger
}

// CameraState holds the orbit camera and its preset transition
type CameraState struct {
	camera        *viewer.Camera
	defaultDist   float64
	defaultAngleX float64
	defaultAngleY float64
	defaultTarget geometry.Vector3
	transition    *orbitTween
}

// ModelData holds the scene and its clipped GPU mesh
type ModelData struct {
	model     *stl.Model
	mesh      rl.Mesh
	hasMesh   bool
	material  rl.Material
	cut       []geometry.Segment
	clipDirty bool
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showFilled    bool
	showWireframe bool
	showHelp      bool
}

// InteractionState tracks camera navigation between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	navigating   bool
	panning      bool
}

// FileWatchState holds the scene reloader and pending config updates
type FileWatchState struct {
	reloader      *scene.Reloader
	stopConfig    func() error
	configUpdates chan config.Config
}

// WidgetState holds the widgets of the session
type WidgetState struct {
	mode    Mode
	manager *widgetmanager.Manager
	angle   *widget.Angle
	plane   *widget.ImplicitPlane
}
