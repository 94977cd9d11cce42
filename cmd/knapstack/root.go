package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/knapstack/internal/config"
	"github.com/katalvlaran/knapstack/internal/instancefile"
	"github.com/katalvlaran/knapstack/internal/logging"
	"github.com/katalvlaran/knapstack/knapsack"
)

// newRootCmd wires the command tree; out receives all regular output.
func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "knapstack",
		Short:         "knapstack - exact 0/1 and unbounded knapsack solver",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(solveCmd())

	return root
}

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [instance-file]",
		Short: "Solve an instance file (classic text or YAML)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	cmd.Flags().String("config", "", "YAML settings file")
	cmd.Flags().StringP("variant", "V", "", "zero-one or unbounded")
	cmd.Flags().StringP("algorithm", "a", "", "branch-and-bound (bnb) or dynamic-programming (dp)")
	cmd.Flags().Duration("time-limit", 0, "soft time limit for branch-and-bound (0 = none)")
	cmd.Flags().String("log-level", "", "off, info, debug or trace")
	cmd.Flags().Bool("show-items", false, "print every selected item")

	return cmd
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "variant":
			cfg.Variant = f.Value.String()
		case "algorithm":
			cfg.Algorithm = f.Value.String()
		case "time-limit":
			cfg.TimeLimit, err = time.ParseDuration(f.Value.String())
		case "log-level":
			cfg.LogLevel = f.Value.String()
		case "show-items":
			cfg.ShowItems = f.Value.String() == "true"
		}
	})
	if err != nil {
		return err
	}

	return cfg.Validate()
}

func runSolve(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err = applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Logger = logger

	inst, err := instancefile.Load(args[0])
	if err != nil {
		return err
	}

	started := time.Now()
	sol, err := knapsack.SolveWith(inst, opts)
	elapsed := time.Since(started)
	if err != nil && !errors.Is(err, knapsack.ErrTimeLimit) {
		return err
	}

	out := cmd.OutOrStdout()
	if err != nil {
		fmt.Fprintln(out, "warning: time limit reached, solution may not be optimal")
	}
	fmt.Fprintf(out, "%g in %d µs\n", sol.Value(), elapsed.Microseconds())
	fmt.Fprintf(out, "cost %g / %g, %d of %d items\n", sol.Cost(), inst.Budget(), len(sol.Indices()), inst.Len())
	if cfg.ShowItems {
		for _, i := range sol.Indices() {
			it := inst.Item(i)
			fmt.Fprintf(out, "  #%d ×%d value %g cost %g\n", i, sol.Count(i), it.Value, it.Cost)
		}
	}

	return nil
}
