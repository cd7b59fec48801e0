// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"go.astrophena.name/spdxlint/cli"
	"go.astrophena.name/spdxlint/internal/checker"
	"go.astrophena.name/spdxlint/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.verbose, "verbose", false, "Log every traversal decision to stderr.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	root := "."
	switch len(env.Args) {
	case 0:
	case 1:
		root = env.Args[0]
	default:
		return fmt.Errorf("%w: expected at most one directory", cli.ErrInvalidArgs)
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	ctx = logger.Put(ctx, logger.New(env.Stderr, level))

	c := &checker.Checker{Root: root, Out: env.Stdout}
	found, err := c.Check(ctx)
	if err != nil {
		return err
	}
	if found {
		// The report went to stdout already, only the exit code is left.
		return cli.ErrExitFailure
	}
	return nil
}
