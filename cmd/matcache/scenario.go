package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-matrix-cache/matrixcache"
	"github.com/goliatone/go-matrix-cache/pkg/di"
	"github.com/goliatone/go-matrix-cache/solver"
)

// Scenario describes a replayable sequence of cache operations.
type Scenario struct {
	Name   string       `yaml:"name"`
	Engine EngineConfig `yaml:"engine"`
	Steps  []Step       `yaml:"steps"`
}

// EngineConfig carries the engine settings for a scenario. Zero values fall
// back to the engine defaults.
type EngineConfig struct {
	ConditionTolerance float64 `yaml:"condition_tolerance"`
	ConditionNorm      float64 `yaml:"condition_norm"`
}

// Step is a single scenario operation. A set step replaces the matrix, a
// resolve step fetches the inverse, and a clear step empties the slot.
type Step struct {
	Op        string      `yaml:"op"`
	Matrix    [][]float64 `yaml:"matrix"`
	Tolerance float64     `yaml:"tolerance"`
	Norm      float64     `yaml:"norm"`
}

const (
	opSet     = "set"
	opResolve = "resolve"
	opClear   = "clear"
)

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// Validate checks that the scenario holds at least one step and that every
// step names a known operation with the payload it needs.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario has no steps")
	}

	for i, step := range s.Steps {
		switch step.Op {
		case opSet:
			if _, err := toDense(step.Matrix); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		case opResolve:
			stepConfig := di.Config{
				ConditionTolerance: step.Tolerance,
				ConditionNorm:      step.Norm,
			}
			if err := stepConfig.Validate(); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		case opClear:
			// No payload required.
		default:
			return fmt.Errorf("step %d: unknown op %q", i+1, step.Op)
		}
	}

	return nil
}

// toDense converts scenario rows to a dense matrix, rejecting ragged and
// empty input.
func toDense(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix holds no values")
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix row %d has %d values, want %d", i+1, len(row), cols)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data), nil
}

// runScenario replays the steps of a YAML scenario against a fresh container.
func runScenario(ctx context.Context, cmd *cli.Command) error {
	scenario, err := LoadScenario(cmd.String("scenario"))
	if err != nil {
		return err
	}

	name := scenario.Name
	if name == "" {
		name = cmd.String("scenario")
	}
	log.Infof("running scenario: %s", name)

	config := di.Config{
		ConditionTolerance: scenario.Engine.ConditionTolerance,
		ConditionNorm:      scenario.Engine.ConditionNorm,
	}

	container, err := di.NewContainer(config)
	if err != nil {
		return fmt.Errorf("scenario engine config: %w", err)
	}

	resolver := di.NewResolver(container)
	cm := matrixcache.New(nil)

	for i, step := range scenario.Steps {
		label := humanize.Ordinal(i + 1)

		switch step.Op {
		case opSet:
			m, err := toDense(step.Matrix)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			cm.SetMatrix(m)
			r, c := m.Dims()
			log.Infof("%s step: set %dx%d matrix", label, r, c)

		case opClear:
			cm.SetCachedInverse(nil)
			log.Infof("%s step: cleared the slot", label)

		case opResolve:
			_, warm := cm.CachedInverse()

			var opts []solver.Option
			if step.Tolerance != 0 {
				opts = append(opts, solver.WithConditionTolerance(step.Tolerance))
			}
			if step.Norm != 0 {
				opts = append(opts, solver.WithConditionNorm(step.Norm))
			}

			start := time.Now()
			inverse, err := resolver.Resolve(cm, opts...)
			duration := time.Since(start)
			if err != nil {
				log.Errorf("%s step: resolve failed after %v: %v", label, duration, err)
				continue
			}

			source := "computed"
			if warm {
				source = "served from cache"
			}
			log.Infof("%s step: resolve %s in %v", label, source, duration)
			fmt.Printf("%v\n", mat.Formatted(inverse, mat.Squeeze()))
		}
	}

	return nil
}
