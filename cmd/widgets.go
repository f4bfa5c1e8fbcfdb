package cmd

import (
	"github.com/philipparndt/gizmo/internal/app"
	"github.com/philipparndt/gizmo/internal/config"
	"github.com/spf13/cobra"
)

var widgetUsage = map[app.Mode]struct{ short, long string }{
	app.ModeAngle: {
		short: "Measure an angle between three points",
		long: `Place three points with the left mouse button to measure the angle at the
second one. Points can be dragged afterwards. Escape stops placing.`,
	},
	app.ModePlane: {
		short: "Slice a scene with an implicit plane",
		long: `Drag the ball to move the plane within the scene bounds, drag the plane to
push it along its normal and drag the arrow tip to rotate it.`,
	},
}

func newWidgetCmd(opts *rootOptions, mode app.Mode) *cobra.Command {
	usage := widgetUsage[mode]
	return &cobra.Command{
		Use:   string(mode) + " [scene.stl|scene.scad]",
		Short: usage.short,
		Long:  usage.long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runOpts := app.Options{
				Config:     opts.cfg,
				ConfigPath: opts.configPath,
				Mode:       mode,
			}
			if len(args) == 1 {
				runOpts.ScenePath = args[0]
			}
			if opts.cfg.Window.Backend == config.BackendFyne {
				return runFyne(cmd.Context(), runOpts)
			}
			return app.Run(cmd.Context(), runOpts)
		},
	}
}
