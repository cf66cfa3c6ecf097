package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/pkg/ec"
)

func (a *app) print(cmd *cobra.Command, p curves.Point) {
	fmt.Fprintln(cmd.OutOrStdout(), curves.FormatPoint(p))
}

func (a *app) points(args []string) ([]curves.Point, error) {
	points := make([]curves.Point, len(args))
	for i, s := range args {
		p, err := a.curve.ParsePoint(s)
		if err != nil {
			a.logger.Error("parse point", zap.String("input", s), zap.Error(err))
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func parseScalar(s string) (*big.Int, error) {
	k, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Wrapf(ec.ErrInvalidScalar, "%q is not an integer", s)
	}
	return k, nil
}

func (a *app) onCurveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "oncurve <point>",
		Short: "Report whether a point satisfies the curve equation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := curves.ParseCoordinates(args[0])
			if err != nil {
				return err
			}
			on := x == nil
			if !on {
				_, err := a.curve.NewPoint(x, y)
				on = err == nil
			}
			a.logger.Debug("oncurve", zap.String("point", args[0]), zap.Bool("result", on))
			fmt.Fprintln(cmd.OutOrStdout(), on)
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <p> <q>",
		Short: "Add two points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.points(args)
			if err != nil {
				return err
			}
			r, err := a.curve.Add(ps[0], ps[1])
			if err != nil {
				return err
			}
			a.logger.Debug("add", zap.Stringer("p", ps[0]), zap.Stringer("q", ps[1]), zap.Stringer("result", r))
			a.print(cmd, r)
			return nil
		},
	}
}

func (a *app) doubleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "double <p>",
		Short: "Double a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.points(args)
			if err != nil {
				return err
			}
			r, err := a.curve.Double(ps[0])
			if err != nil {
				return err
			}
			a.logger.Debug("double", zap.Stringer("p", ps[0]), zap.Stringer("result", r))
			a.print(cmd, r)
			return nil
		},
	}
}

func (a *app) negCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neg <p>",
		Short: "Negate a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.points(args)
			if err != nil {
				return err
			}
			r, err := a.curve.Neg(ps[0])
			if err != nil {
				return err
			}
			a.print(cmd, r)
			return nil
		},
	}
}

func (a *app) mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <k> <p>",
		Short: "Multiply a point by a non-negative scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseScalar(args[0])
			if err != nil {
				return err
			}
			ps, err := a.points(args[1:])
			if err != nil {
				return err
			}
			r, err := a.curve.ScalarMult(k, ps[0])
			if err != nil {
				a.logger.Error("scalar multiplication", zap.Stringer("k", k), zap.Error(err))
				return err
			}
			a.logger.Debug("mul", zap.Stringer("k", k), zap.Stringer("p", ps[0]), zap.Stringer("result", r))
			a.print(cmd, r)
			return nil
		},
	}
}

func (a *app) baseMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basemul <k>",
		Short: "Multiply the curve generator by a non-negative scalar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseScalar(args[0])
			if err != nil {
				return err
			}
			r, err := a.curve.ScalarBaseMult(k)
			if err != nil {
				a.logger.Error("base multiplication", zap.Stringer("k", k), zap.Error(err))
				return err
			}
			a.logger.Debug("basemul", zap.Stringer("k", k), zap.Stringer("result", r))
			a.print(cmd, r)
			return nil
		},
	}
}

func (a *app) randomCmd() *cobra.Command {
	var (
		seed      uint64
		generator bool
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random curve point or generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r io.Reader = crand.Reader
			if cmd.Flags().Changed("seed") {
				var key [32]byte
				binary.LittleEndian.PutUint64(key[:], seed)
				r = rand.NewChaCha8(key)
			}

			pick := a.curve.RandomPoint
			if generator {
				pick = a.curve.RandomGenerator
			}
			p, err := pick(r)
			if err != nil {
				return err
			}
			a.logger.Debug("random", zap.Bool("generator", generator), zap.Stringer("result", p))
			a.print(cmd, p)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible choice; crypto/rand is used when unset")
	cmd.Flags().BoolVar(&generator, "generator", false, "pick a point of the configured order")
	return cmd
}

func (a *app) encodeCmd() *cobra.Command {
	var compressed bool
	cmd := &cobra.Command{
		Use:   "encode <p>",
		Short: "Print the SEC 1 encoding of a point in hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.points(args)
			if err != nil {
				return err
			}
			marshal := a.curve.Marshal
			if compressed {
				marshal = a.curve.MarshalCompressed
			}
			data, err := marshal(ps[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&compressed, "compressed", false, "use the compressed form")
	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a SEC 1 point encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return errors.Wrap(ec.ErrParse, err.Error())
			}
			p, err := a.curve.Unmarshal(data)
			if err != nil {
				return err
			}
			a.print(cmd, p)
			return nil
		},
	}
}
