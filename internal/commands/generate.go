// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/Helios-vmg/Xabin/internal/compiler"
	"github.com/Helios-vmg/Xabin/internal/logging"
	"github.com/Helios-vmg/Xabin/internal/prompts"
	"github.com/Helios-vmg/Xabin/internal/schema"
	"github.com/Helios-vmg/Xabin/internal/translate"
	"github.com/Helios-vmg/Xabin/internal/watch"
	"github.com/rs/zerolog"
)

// job is one compile-and-generate run.
type job struct {
	sources   []string
	generator translate.Generator
	opts      translate.Options
	// output is the file to write; empty means stdout.
	output string
}

// compileSources feeds every source through one compiler, in order.
func compileSources(logger zerolog.Logger, sources []string) ([]*schema.Type, error) {
	c := compiler.New(compiler.WithLogger(logger))
	for _, src := range sources {
		if err := c.Compile(src); err != nil {
			return nil, err
		}
	}
	return c.Types(), nil
}

// run compiles j.sources and writes the generated file.
func (j *job) run(ctx context.Context, stdout io.Writer) (int, error) {
	logger := logging.From(ctx)

	types, err := compileSources(*logger, j.sources)
	if err != nil {
		return 0, err
	}

	data, err := j.generator.Translate(types, j.opts)
	if err != nil {
		return 0, fmt.Errorf("generate %s: %w", j.generator.Name(), err)
	}

	if j.output == "" {
		_, err := stdout.Write(data)
		return len(types), err
	}

	if dir := filepath.Dir(j.output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(j.output, data, 0o600); err != nil {
		return 0, fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info().
		Str("output", j.output).
		Int("types", len(types)).
		Msg("generated")
	return len(types), nil
}

// report runs j once and prints a summary when writing to a file.
func (j *job) report(ctx context.Context, stdout io.Writer) error {
	n, err := j.run(ctx, stdout)
	if err != nil {
		return err
	}
	if j.output != "" {
		prompts.PrintResult(stdout, []prompts.ResultField{
			{Label: "Target", Value: j.generator.Name()},
			{Label: "Mode", Value: j.opts.Mode.String()},
			{Label: "Types", Value: fmt.Sprint(n)},
			{Label: "Output", Value: j.output},
		}, "")
	}
	return nil
}

// watchJob runs j, then reruns it on every change to its sources until
// interrupted. Compile errors are reported without stopping the loop.
func watchJob(ctx context.Context, j *job, stdout, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	rerun := func(ctx context.Context) error {
		if err := j.report(ctx, stdout); err != nil {
			prompts.PrintFailure(stderr, "compile", err)
			return err
		}
		return nil
	}
	_ = rerun(ctx)

	w, err := watch.New(j.sources, rerun, watch.WithLogger(*logging.From(ctx)))
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "Watching %d source(s) for changes; press Ctrl+C to stop\n", len(j.sources))
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
