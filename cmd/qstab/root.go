// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qstab/clip"
	"github.com/katalvlaran/qstab/internal/config"
	"github.com/katalvlaran/qstab/internal/logging"
	"github.com/katalvlaran/qstab/tableau"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:           "qstab",
		Short:         "Clipped-gauge canonicalization and entanglement entropy of stabilizer states",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $QSTAB_CONFIG or <user config dir>/qstab/config.yaml)")
	pf.String("format", config.FormatText, "output format: text, yaml or json")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-color", string(logging.ColorAuto), "log colour: auto, always or never")
	pf.String("algo", "clip", "entropy algorithm: clip, graph or rref")
	pf.Bool("phases", true, "track signs during row products")
	pf.Bool("clip", true, "canonicalize before reading endpoints")
	pf.Bool("validate", false, "check the stabilizer preconditions before any work")

	for key, flag := range map[string]string{
		config.KeyFormat:    "format",
		config.KeyLogLevel:  "log-level",
		config.KeyLogColor:  "log-color",
		config.KeyAlgorithm: "algo",
		config.KeyPhases:    "phases",
		config.KeyClip:      "clip",
		config.KeyValidate:  "validate",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag)) // flags are registered above
	}

	root.AddCommand(
		a.canonCmd(),
		a.bigramCmd(),
		a.entropyCmd(),
		a.miCmd(),
		a.profileCmd(),
		a.graphCmd(),
		a.genCmd(),
	)

	return root
}

// setup resolves configuration and builds the logger.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.Log.Level) // validated by Load
	color, _ := logging.ParseColor(cfg.Log.Color)
	a.cfg = cfg
	a.log = logging.New(stderr, level, color)
	a.log.Debug("config resolved",
		"algorithm", cfg.Algorithm, "phases", cfg.Phases, "clip", cfg.Clip,
		"validate", cfg.Validate, "format", cfg.Format, "file", a.v.ConfigFileUsed())

	return nil
}

// readTableau loads FILE, or stdin for "-", and validates it when asked.
func (a *app) readTableau(cmd *cobra.Command, name string) (*tableau.Tableau, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	t, err := tableau.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.log.Info("tableau loaded", "source", name, "rows", t.Len(), "qubits", t.N())
	if a.cfg.Validate {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	return t, nil
}

// clipOptions maps the configuration onto clip options.
func (a *app) clipOptions() []clip.Option {
	return []clip.Option{
		clip.WithPhases(a.cfg.Phases),
		clip.WithClip(a.cfg.Clip),
		clip.WithOnMerge(a.logMerge),
	}
}

// logMerge records one row product at debug level.
func (a *app) logMerge(target, source int) {
	a.log.Debug("merge", "target", target, "source", source)
}
