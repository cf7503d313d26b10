package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/selkit/selector"
	"github.com/katalvlaran/selkit/sheet"
)

var (
	errUsage    = errors.New("selkit: bad arguments")
	errBadToken = errors.New("selkit: token must be KIND=VALUE with a known kind")
)

func runBuild(ctx context.Context, cmd *cli.Command) error {
	log := loggerFrom(ctx)
	if cmd.NArg() == 0 {
		return fmt.Errorf("%w: build needs at least one KIND=VALUE token", errUsage)
	}

	b := selector.New(selector.WithLogger(log))
	for _, tok := range cmd.Args().Slice() {
		name, value, ok := strings.Cut(tok, "=")
		kind, known := selector.ParseKind(name)
		if !ok || !known {
			return fmt.Errorf("%w: %q", errBadToken, tok)
		}
		b.Append(kind, value)
	}

	out, err := b.Build()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, out)
	return err
}

func runCombine(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 3 {
		return fmt.Errorf("%w: combine needs LEFT COMBINATOR RIGHT, got %d arguments", errUsage, cmd.NArg())
	}
	args := cmd.Args().Slice()

	out, err := selector.Combine(selector.Raw(args[0]), args[1], selector.Raw(args[2]),
		selector.WithLogger(loggerFrom(ctx))).Build()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, out)
	return err
}

func runRender(ctx context.Context, cmd *cli.Command) error {
	log := loggerFrom(ctx)
	if cmd.NArg() == 0 {
		return fmt.Errorf("%w: render needs a sheet FILE", errUsage)
	}
	args := cmd.Args().Slice()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("unable to open sheet: %w", err)
	}
	defer f.Close()

	sh, err := sheet.Load(f, sheet.WithLogger(log))
	if err != nil {
		return fmt.Errorf("unable to load sheet %s: %w", args[0], err)
	}
	log.Debug("Rendering sheet", zap.String("file", args[0]), zap.Strings("names", args[1:]))

	var rendered []sheet.Rendered
	if names := args[1:]; len(names) > 0 {
		for _, name := range names {
			out, rerr := sh.Render(name)
			if rerr != nil {
				err = multierr.Append(err, rerr)
				continue
			}
			rendered = append(rendered, sheet.Rendered{Name: name, Selector: out})
		}
	} else {
		rendered, err = sh.RenderAll()
	}

	w := cmd.Root().Writer
	for _, r := range rendered {
		if _, werr := fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Selector); werr != nil {
			return multierr.Append(err, werr)
		}
	}
	return err
}
