package main

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-matrix-cache/pkg/di"
)

func buildApp() *cli.Command {
	return &cli.Command{
		Name:  "matcache",
		Usage: "exercise the matrix inverse cache",
		UsageText: `matcache [options]

Runs a generated workload by default. Pass --scenario to replay the steps
described in a YAML file instead.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "scenario",
				Aliases: []string{"f"},
				Usage:   "replay steps from a YAML scenario file",
			},
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"n"},
				Usage:   "generated matrix size",
				Value:   64,
			},
			&cli.IntFlag{
				Name:    "trials",
				Aliases: []string{"t"},
				Usage:   "warm resolutions to time in generated mode",
				Value:   1000,
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "seed for the generated matrix",
				Value: 1,
			},
			&cli.StringFlag{
				Name:  "tolerance",
				Usage: "engine condition tolerance in generated mode, e.g. 1e12 (empty uses the default)",
			},
			&cli.StringFlag{
				Name:  "norm",
				Usage: "engine condition norm in generated mode: 1, 2, or inf (empty uses the default)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, or error",
				Value: "info",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.String("scenario") != "" {
				return runScenario(ctx, cmd)
			}
			return runGenerated(ctx, cmd)
		},
	}
}

// engineConfig builds the container configuration from the command flags.
func engineConfig(cmd *cli.Command) (di.Config, error) {
	tolerance, err := parseFloatFlag(cmd.String("tolerance"))
	if err != nil {
		return di.Config{}, fmt.Errorf("invalid --tolerance: %w", err)
	}

	norm, err := parseFloatFlag(cmd.String("norm"))
	if err != nil {
		return di.Config{}, fmt.Errorf("invalid --norm: %w", err)
	}

	config := di.Config{
		ConditionTolerance: tolerance,
		ConditionNorm:      norm,
	}

	if err := config.Validate(); err != nil {
		return di.Config{}, err
	}

	return config, nil
}

// parseFloatFlag parses a numeric flag value. The empty string maps to zero,
// which the engine configuration treats as "use the default".
func parseFloatFlag(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(v) {
		return 0, fmt.Errorf("value must be a number, got NaN")
	}

	return v, nil
}
