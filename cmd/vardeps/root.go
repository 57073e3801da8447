package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/vardeps"
	"github.com/aretw0/vardeps/internal/config"
	"github.com/aretw0/vardeps/internal/logging"
	"github.com/aretw0/vardeps/internal/presentation/tui"
	"github.com/aretw0/vardeps/pkg/domain"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	stderr io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "vardeps",
		Short: "vardeps validates and exports model variable dependency files",
		Long: `vardeps reads plain-text files declaring, section by section, which quantities each
state variable of a layered simulation model depends on, validates them and turns them
into a dependency graph.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default: vardeps.yaml in the working directory)")
	pf.StringP("infile", "i", "", "Input dependency file")
	pf.CountP("verbose", "v", "Successively increase verbosity (-v info, -vv debug)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("color", "", "Colour output: auto, always, never")

	rootCmd.AddCommand(
		newValidateCmd(a),
		newGraphCmd(a),
		newInspectCmd(a),
		newShowCmd(a),
		newFmtCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetCount("verbose"); v > 0 {
		level = min(level, logging.LevelFromVerbosity(v))
	}

	a.cfg = cfg
	a.stderr = cmd.ErrOrStderr()
	a.logger = logging.NewWithWriter(a.stderr, level)
	if cfg.File != "" {
		a.logger.Debug("Config loaded", "file", cfg.File)
	}
	return nil
}

func (a *app) printer(w io.Writer) *tui.Printer {
	return tui.NewPrinter(w, tui.ColorMode(a.cfg.Color))
}

// inputPath resolves the dependency file from --infile or the first argument.
func inputPath(cmd *cobra.Command, args []string) (string, error) {
	path, _ := cmd.Flags().GetString("infile")
	if !cmd.Flags().Changed("infile") && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", fmt.Errorf("no input file: pass --infile or a path argument")
	}
	return path, nil
}

func (a *app) parse(cmd *cobra.Command, args []string) (string, *domain.Graph, error) {
	path, err := inputPath(cmd, args)
	if err != nil {
		return "", nil, err
	}
	a.logger.Info("Reading dependency file", "path", path)
	g, err := vardeps.ParseFile(path, vardeps.WithLogger(a.logger))
	if err != nil {
		return path, nil, err
	}
	a.logger.Info("Parsed", "path", path, "variables", g.Len(), "edges", g.EdgeCount())
	return path, g, nil
}

// Execute builds the command tree and runs it against os.Args.
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		tui.NewPrinter(os.Stderr, tui.ColorAuto).Failure("%v", err)
		os.Exit(1)
	}
}
