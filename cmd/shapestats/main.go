/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


// Command shapestats loads shape scenes from YAML files and prints their
// extremal descriptions.
//
//	shapestats [--policy skip|fail] [--tolerance f] [--deferred] [-v] FILE...
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/shapes/apis"
	"dirpx.dev/shapes/config"
	"dirpx.dev/shapes/dispatch"
	"dirpx.dev/shapes/notify"
	"dirpx.dev/shapes/scene"
	"dirpx.dev/shapes/stats"
)

type options struct {
	policy    apis.Policy
	tolerance float64
	deferred  bool
	verbose   bool

	// logger is built in PersistentPreRunE unless already set.
	logger *zap.Logger
}

// result is the outcome for one scene.
type result struct {
	stats stats.Stats
	err   error
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shapestats FILE...",
		Short: "Report the extremal shapes of YAML scenes",
		Long: `shapestats reads one or more scene files and prints, per scene, the
longest and shortest shape descriptions and the descriptions of the shapes
with the largest and smallest area and the longest and shortest perimeter.

Shapes whose area cannot be evaluated (for example a triangle built from
collinear points) are skipped and listed, or abort the scene with
--policy fail.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if opts.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().Var(&opts.policy, "policy", "area failure policy: skip or fail")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", config.DefaultTolerance, "area difference below which shapes tie")
	cmd.Flags().BoolVar(&opts.deferred, "deferred", false, "compute in the background and deliver results on the main goroutine")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if math.IsNaN(opts.tolerance) || math.IsInf(opts.tolerance, 0) || opts.tolerance < 0 {
		return fmt.Errorf("--tolerance must be a finite non-negative number, got %v", opts.tolerance)
	}
	logger := opts.logger

	scenes, err := scene.LoadFiles(ctx, paths...)
	if err != nil {
		return err
	}

	cfg := config.NewConfig(config.WithPolicy(opts.policy), config.WithTolerance(opts.tolerance))
	agg := stats.New(cfg,
		stats.WithNotifier(notify.Log(logger)),
		stats.WithLogger(logger),
	)
	logger.Debug("scenes loaded",
		zap.Int("count", len(scenes)),
		zap.Stringer("policy", cfg.Policy),
		zap.Float64("tolerance", cfg.Tolerance),
		zap.Bool("deferred", opts.deferred),
	)

	var results []result
	if opts.deferred {
		results, err = computeDeferred(ctx, agg, scenes, logger)
		if err != nil {
			return err
		}
	} else {
		results = make([]result, len(scenes))
		for i, sc := range scenes {
			agg.ComputeWith(sc.Registry(), func(st stats.Stats, err error) {
				results[i] = result{stats: st, err: err}
			})
		}
	}

	var failed []error
	for i, sc := range scenes {
		if err := report(out, sc, results[i]); err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", sc.Name, err))
		}
	}
	return errors.Join(failed...)
}

// computeDeferred starts every scene in the background and drains their
// handlers on the calling goroutine.
func computeDeferred(ctx context.Context, agg *stats.Aggregator, scenes []*scene.Scene, logger *zap.Logger) ([]result, error) {
	results := make([]result, len(scenes))
	if len(scenes) == 0 {
		return results, nil
	}

	q := dispatch.NewQueue(dispatch.WithQueueLogger(logger))
	// Handlers run on this goroutine inside q.Run, so pending needs no lock.
	pending := len(scenes)
	for i, sc := range scenes {
		agg.Go(sc.Registry(), q, func(st stats.Stats, err error) {
			results[i] = result{stats: st, err: err}
			if pending--; pending == 0 {
				q.Close()
			}
		})
	}
	if err := q.Run(ctx); err != nil {
		return nil, err
	}
	return results, nil
}

func report(out io.Writer, sc *scene.Scene, r result) error {
	fmt.Fprintf(out, "scene %s", sc.Name)
	if sc.Path != "" {
		fmt.Fprintf(out, " (%s)", sc.Path)
	}
	fmt.Fprintln(out)

	if r.err != nil {
		fmt.Fprintf(out, "  error: %v\n", r.err)
		return r.err
	}
	st := r.stats
	if st.Empty() {
		fmt.Fprintln(out, "  no shapes")
		return nil
	}

	fmt.Fprintf(out, "  shapes:               %d\n", st.Count)
	fmt.Fprintf(out, "  longest description:  %s\n", st.LongestDescription)
	fmt.Fprintf(out, "  shortest description: %s\n", st.ShortestDescription)
	fmt.Fprintf(out, "  largest area:         %s\n", orNone(st.LargestAreaDescription))
	fmt.Fprintf(out, "  smallest area:        %s\n", orNone(st.SmallestAreaDescription))
	fmt.Fprintf(out, "  longest perimeter:    %s\n", orNone(st.LongestPerimeterDescription))
	fmt.Fprintf(out, "  shortest perimeter:   %s\n", orNone(st.ShortestPerimeterDescription))
	for _, sk := range st.Skipped {
		fmt.Fprintf(out, "  skipped #%d: %s: %v\n", sk.Index, sk.Shape, sk.Err)
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
