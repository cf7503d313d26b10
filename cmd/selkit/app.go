package main

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// loggerFactory builds the process logger once flags are parsed.
type loggerFactory func(verbose bool) (*zap.Logger, error)

func defaultLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

type ctxKey struct{}

// loggerFrom returns the logger stored by the Before hook, or a no-op logger.
func loggerFrom(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

func version() string {
	v := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		v = bi.Main.Version
	}
	return v + " (" + runtime.Version() + ")"
}

// newApp assembles the command tree. A nil factory selects defaultLogger.
func newApp(newLogger loggerFactory) *cli.Command {
	if newLogger == nil {
		newLogger = defaultLogger
	}
	return &cli.Command{
		Name:            "selkit",
		Usage:           "order-aware CSS selector builder",
		Version:         version(),
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log every selector fragment to stderr"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log, err := newLogger(cmd.Bool("debug"))
			if err != nil {
				return ctx, fmt.Errorf("unable to prepare logs: %w", err)
			}
			log.Debug("Program started", zap.Strings("args", cmd.Args().Slice()))
			return context.WithValue(ctx, ctxKey{}, log), nil
		},
		After: func(ctx context.Context, _ *cli.Command) error {
			// Sync fails on stderr for some terminals; nothing useful to do about it.
			_ = loggerFrom(ctx).Sync()
			return nil
		},
		ExitErrHandler: func(ctx context.Context, _ *cli.Command, err error) {
			loggerFrom(ctx).Error("Program ended with error", zap.Error(err))
		},
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "Builds one selector from kind=value tokens applied in order",
				ArgsUsage: "KIND=VALUE...",
				Action:    runBuild,
				CustomHelpTemplate: fmt.Sprintf(`%s
KIND:
    element, id, class, attr (or attribute), pseudo-class, pseudo-element

    Tokens must follow CSS order; element, id and pseudo-element may appear once.
`, cli.CommandHelpTemplate),
			},
			{
				Name:      "combine",
				Usage:     "Joins two rendered selectors with a combinator",
				ArgsUsage: "LEFT COMBINATOR RIGHT",
				Action:    runCombine,
			},
			{
				Name:      "render",
				Usage:     "Renders selectors from a YAML sheet",
				ArgsUsage: "FILE [NAME...]",
				Action:    runRender,
			},
		},
	}
}
