package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/internal/config"
	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/logging"
)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	curve      *curves.Curve
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:               "ecarith",
		Short:             "Group arithmetic on short Weierstrass elliptic curves",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	fs := root.PersistentFlags()
	fs.StringVar(&a.configPath, "config", "", "YAML configuration file")
	addCurveFlags(fs)

	root.AddCommand(
		a.onCurveCmd(),
		a.addCmd(),
		a.doubleCmd(),
		a.negCmd(),
		a.mulCmd(),
		a.baseMulCmd(),
		a.randomCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
	)
	return root
}

func addCurveFlags(fs *pflag.FlagSet) {
	fs.String("curve", "", "preset curve ("+strings.Join(curves.Names(), ", ")+"), default "+config.DefaultCurve)
	fs.String("a", "", "linear coefficient a")
	fs.String("b", "", "constant coefficient b")
	fs.String("q", "", "field modulus q; selects explicit parameters over the preset")
	fs.String("order", "", "order n of the generator")
	fs.String("cofactor", "", "cofactor h")
	fs.String("gx", "", "generator x coordinate")
	fs.String("gy", "", "generator y coordinate")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.String("log-format", "", "log encoding ("+logging.Console+", "+logging.JSON+", "+logging.Logfmt+")")
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	cfg.Log.Writer = cmd.ErrOrStderr()
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger.Named("ecarith")

	a.curve, err = cfg.Curve.Build()
	if err != nil {
		a.logger.Error("invalid curve", zap.Error(err))
		return err
	}
	a.logger.Debug("curve ready",
		zap.String("name", a.curve.Name()),
		zap.Stringer("a", a.curve.A()),
		zap.Stringer("b", a.curve.B()),
		zap.Stringer("q", a.curve.Q()),
	)
	return nil
}
