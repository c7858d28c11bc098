package main

import (
	"context"
	"fmt"
	"os"

	fxmodules "eloget/internal/fx"
	"eloget/internal/runner"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fxmodules.Module,
		fx.NopLogger,
		fx.Invoke(runCLI),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(runner.ExitFailure)
	}
	app.Run()
}

func runCLI(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	r *runner.Runner,
	logger zerolog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := r.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
				logger.Debug().Int("exit_code", code).Msg("run finished")
				if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Error().Err(err).Msg("shutdown failed")
					os.Exit(code)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
