package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gizmo/internal/app"
	"github.com/philipparndt/gizmo/internal/config"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/stl"
	"github.com/philipparndt/gizmo/pkg/widget"
)

const cubeCorner = `solid corner
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 0 3 0
      vertex 4 0 0
    endloop
  endfacet
endsolid corner
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	path := writeFile(t, "corner.stl", cubeCorner)

	out, err := execute(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Name: corner")
	assert.Contains(t, out, "Triangles: 1")
	assert.Contains(t, out, "Edges: 3")
	assert.Contains(t, out, "Surface Area: 6.000000")
	assert.Contains(t, out, "Max: (4.000000, 3.000000, 0.000000)")
	assert.Contains(t, out, "Diagonal: 5.000000")
	assert.Contains(t, out, "Minimum: 3.000000")
	assert.Contains(t, out, "Maximum: 5.000000")
}

func TestInfoRejectsUnknownFileType(t *testing.T) {
	path := writeFile(t, "corner.obj", cubeCorner)
	_, err := execute(t, "info", path)
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestInfoRequiresFile(t *testing.T) {
	_, err := execute(t, "info")
	assert.Error(t, err)
}

func TestBackendFlag(t *testing.T) {
	path := writeFile(t, "corner.stl", cubeCorner)

	_, err := execute(t, "--backend", "fyne", "info", path)
	assert.NoError(t, err)

	_, err = execute(t, "--backend", "vulkan", "info", path)
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

func TestConfigFlag(t *testing.T) {
	path := writeFile(t, "corner.stl", cubeCorner)

	good := writeFile(t, "gizmo.toml", "[log]\nlevel = \"debug\"\n")
	_, err := execute(t, "--config", good, "info", path)
	assert.NoError(t, err)

	bad := writeFile(t, "gizmo.toml", "[widget]\nhandle_size = 2\n")
	_, err = execute(t, "--config", bad, "info", path)
	assert.Error(t, err)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "info", path)
	assert.Error(t, err)
}

func TestWidgetCommandArgs(t *testing.T) {
	_, err := execute(t, "angle", "a.stl", "b.stl")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "gizmo version dev")
}

func TestFyneHostAngle(t *testing.T) {
	test.NewTempApp(t)

	host, err := newFyneHost(app.Options{Config: config.Default(), Mode: app.ModeAngle}, nil)
	require.NoError(t, err)

	angle, ok := host.widget.(*widget.Angle)
	require.True(t, ok)
	assert.True(t, angle.HasFocus())
	assert.Contains(t, host.status.Text, "0/3 points")
}

func TestFyneHostPlaneSceneReload(t *testing.T) {
	test.NewTempApp(t)

	host, err := newFyneHost(app.Options{Config: config.Default(), Mode: app.ModePlane}, nil)
	require.NoError(t, err)
	plane, ok := host.widget.(*widget.ImplicitPlane)
	require.True(t, ok)
	assert.Equal(t, geometry.Vector3{}, plane.State().Origin())

	model := stl.NewModel("moved")
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(10, 10, 10), geometry.NewVector3(12, 10, 10), geometry.NewVector3(12, 12, 12)))
	host.applyScene(model)

	assert.Equal(t, geometry.NewVector3(11, 11, 11), plane.State().Origin())
	assert.Contains(t, host.status.Text, "origin (11.00, 11.00, 11.00)")
}

func TestFyneHostApplyConfig(t *testing.T) {
	test.NewTempApp(t)

	host, err := newFyneHost(app.Options{Config: config.Default(), Mode: app.ModeAngle}, nil)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Widget.HandleScale = 0.4
	host.applyConfig(cfg)
	assert.Equal(t, 0.4, host.widget.(*widget.Angle).State().MoveHandle().Scale)

	cfg.Widget.Colors.Handle = "bogus"
	host.applyConfig(cfg)
	assert.Equal(t, 0.4, host.widget.(*widget.Angle).State().MoveHandle().Scale)
}
