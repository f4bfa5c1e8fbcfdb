// Package cmd holds the gizmo command line.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/philipparndt/gizmo/internal/config"
	"github.com/philipparndt/gizmo/internal/logging"
	"github.com/philipparndt/gizmo/version"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	backend    string
	debug      bool
	verbose    bool
	quiet      bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "gizmo",
		Short: "Interactive 3D manipulation widgets",
		Long: `gizmo shows STL and OpenSCAD scenes with interactive 3D widgets:
an angle widget that measures between three placed points, and an implicit
plane widget that slices the scene.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (TOML)")
	flags.StringVar(&opts.backend, "backend", "", "window backend: raylib or fyne")
	flags.BoolVar(&opts.debug, "debug", false, "log debug output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log informational output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "log errors only")

	rootCmd.AddCommand(newWidgetCmd(opts, "angle"), newWidgetCmd(opts, "plane"), newInfoCmd())
	return rootCmd
}

// setup loads the configuration and installs the logger
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("backend") {
		if err := config.ValidateBackend(o.backend); err != nil {
			return err
		}
		cfg.Window.Backend = o.backend
	}
	o.cfg = cfg

	level := logging.LevelFromFlags(o.debug, o.verbose, o.quiet)
	if !o.debug && !o.verbose && !o.quiet {
		parsed, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		level = parsed
	}
	logging.Setup(cmd.ErrOrStderr(), level)
	slog.Debug("configuration loaded", "path", o.configPath, "backend", cfg.Window.Backend)
	return nil
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
