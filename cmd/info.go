package cmd

import (
	"fmt"
	"io"

	"github.com/philipparndt/gizmo/internal/scene"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [scene.stl|scene.scad]",
		Short: "Display general information about a scene",
		Long:  "Show the triangle count, surface area, bounds and edge statistics of a scene.",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	model, files, err := scene.Load(cmd.Context(), filename)
	if err != nil {
		return fmt.Errorf("error loading scene: %w", err)
	}
	s := model.Stats()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Scene Information")
	fmt.Fprintln(out, "=================")
	if model.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(out, "File: %s\n", filename)
	if len(files) > 1 {
		fmt.Fprintf(out, "Dependencies: %d\n", len(files)-1)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Triangles: %d\n", s.Triangles)
	fmt.Fprintf(out, "  Edges: %d\n", s.Edges)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", s.SurfaceArea)

	writeBounds(out, s.Bounds)

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", s.MinEdge)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", s.MaxEdge)
	fmt.Fprintf(out, "  Average: %.6f units\n", s.AvgEdge)
	return nil
}

func writeBounds(out io.Writer, b geometry.BoundingBox) {
	size := b.Size()
	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", formatVector(b.Min))
	fmt.Fprintf(out, "  Max: %s\n", formatVector(b.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", formatVector(b.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", size.X)
	fmt.Fprintf(out, "  Depth (Y): %.6f units\n", size.Y)
	fmt.Fprintf(out, "  Height (Z): %.6f units\n", size.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n\n", b.Diagonal())
}
