package main

import (
	"fmt"
	"strconv"

	"github.com/garlicgarrison/hanoi/config"
	"github.com/garlicgarrison/hanoi/hanoi"
	"github.com/garlicgarrison/hanoi/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	cfg        config.Config

	pegs   hanoi.Pegs
	format render.Format
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "hanoi [flags] <disks>",
		Short: "Print the moves that solve the Towers of Hanoi",
		Long: `Prints, one per line, the moves that carry a tower of <disks> disks from the
source peg to the destination peg using the auxiliary peg, never placing a
larger disk on a smaller one.`,
		Args:          diskArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.cfg.Format, "format", opts.cfg.Format, "output format: text, json or yaml (json and yaml hold the whole solution in memory)")
	flags.StringVar(&opts.cfg.Pegs.Source, "source", opts.cfg.Pegs.Source, "label of the source peg")
	flags.StringVar(&opts.cfg.Pegs.Auxiliary, "auxiliary", opts.cfg.Pegs.Auxiliary, "label of the auxiliary peg")
	flags.StringVar(&opts.cfg.Pegs.Destination, "destination", opts.cfg.Pegs.Destination, "label of the destination peg")
	flags.StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel, "log level: debug, info, warn or error")

	cmd.AddCommand(newCountCmd(), newVersionCmd())

	return cmd
}

// Flags beat the config file, which beats the defaults. Only flags the user
// actually set are applied on top of a loaded file. Pegs and format are
// checked by the solve path alone, so count and version ignore them.
func (o *options) resolve(cmd *cobra.Command) error {
	if o.configPath != "" {
		fileCfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		override := func(name string, dst *string, fileValue string) {
			if !flags.Changed(name) {
				*dst = fileValue
			}
		}
		override("format", &o.cfg.Format, fileCfg.Format)
		override("source", &o.cfg.Pegs.Source, fileCfg.Pegs.Source)
		override("auxiliary", &o.cfg.Pegs.Auxiliary, fileCfg.Pegs.Auxiliary)
		override("destination", &o.cfg.Pegs.Destination, fileCfg.Pegs.Destination)
		override("log-level", &o.cfg.LogLevel, fileCfg.LogLevel)
	}

	logger, err := newLogger(o.cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("%w: %s", hanoi.ErrInvalidArgument, err)
	}
	zap.ReplaceGlobals(logger)

	if o.configPath != "" {
		zap.S().Debugf("Loaded config from %s", o.configPath)
	}
	cmd.SilenceUsage = true
	return nil
}

func diskArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one disk count, got %d arguments", hanoi.ErrInvalidArgument, len(args))
	}

	_, err := parseDisks(args[0])
	return err
}

func parseDisks(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid disk count", hanoi.ErrInvalidArgument, s)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: disk count must not be negative, got %d", hanoi.ErrInvalidArgument, n)
	}

	return n, nil
}

func runSolve(cmd *cobra.Command, opts *options, arg string) error {
	n, err := parseDisks(arg)
	if err != nil {
		return err
	}

	opts.format, err = render.ParseFormat(opts.cfg.Format)
	if err != nil {
		return err
	}

	opts.pegs = opts.cfg.PegSet()
	puzzle, err := hanoi.NewPuzzle(n, opts.pegs)
	if err != nil {
		return err
	}

	count, err := hanoi.MoveCount(puzzle.Disks)
	if err != nil {
		return err
	}
	zap.S().Infof("Solving puzzle %s: %d disk(s) from %s to %s, %d move(s)",
		puzzle.ID, n, opts.pegs.Source, opts.pegs.Destination, count)

	if err := render.Write(cmd.OutOrStdout(), opts.format, puzzle); err != nil {
		return fmt.Errorf("write puzzle %s: %w", puzzle.ID, err)
	}

	zap.S().Debugf("Puzzle %s written as %s", puzzle.ID, opts.format)
	return nil
}
