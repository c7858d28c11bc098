package runner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"eloget/internal/api"
	"eloget/internal/cli"
	"eloget/internal/config"
	"eloget/internal/format"
	"eloget/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitFlag          = 2
	ExitInvalidSource = 3
	ExitTransport     = 4
	ExitParse         = 5
	ExitRender        = 6
)

type Runner struct {
	registry *service.Registry
	cfg      *config.Config
	logger   zerolog.Logger
}

func NewRunner(registry *service.Registry, cfg *config.Config, logger zerolog.Logger) *Runner {
	return &Runner{registry: registry, cfg: cfg, logger: logger}
}

// Run performs one lookup and writes either the rendered template to stdout
// or a single error line to stderr. It returns the process exit code.
func (r *Runner) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	runID := uuid.New().String()
	logger := r.logger.With().Str("run_id", runID).Logger()
	ctx = api.WithRequestID(logger.WithContext(ctx), runID)

	defaults := cli.DefaultOptions(r.cfg)
	out, err := r.run(ctx, args, defaults, logger)
	if errors.Is(err, cli.ErrHelp) {
		cli.PrintUsage(stderr, defaults, r.registry.Names(), format.Keys())
		return ExitOK
	}
	if err != nil {
		logger.Debug().Err(err).Msg("run failed")
		fmt.Fprintln(stderr, err)
		return ExitCode(err)
	}

	fmt.Fprintln(stdout, out)
	return ExitOK
}

func (r *Runner) run(ctx context.Context, args []string, defaults cli.Options, logger zerolog.Logger) (string, error) {
	opts, err := cli.ParseOptions(args, defaults)
	if err != nil {
		return "", err
	}

	logger.Info().
		Str("user", opts.User).
		Str("src", opts.Source).
		Str("fmt", opts.Format).
		Msg("options parsed")

	src, err := r.registry.Lookup(opts.Source)
	if err != nil {
		return "", err
	}

	ratings, err := src.Fetch(ctx, opts.User)
	if err != nil {
		return "", err
	}

	logger.Info().
		Str("user", ratings.User).
		Int("blitz", ratings.Blitz).
		Msg("ratings fetched")

	return format.RenderString(opts.Format, ratings)
}

// ExitCode maps an error to a distinct nonzero status per failure class.
func ExitCode(err error) int {
	var (
		flagErr *cli.FlagParseError
		keyErr  *format.UnrecognizedFormatError
		charErr *format.UnexpectedCharError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &flagErr):
		return ExitFlag
	case errors.Is(err, service.ErrInvalidSource):
		return ExitInvalidSource
	case errors.Is(err, api.ErrTransport):
		return ExitTransport
	case errors.Is(err, api.ErrParse):
		return ExitParse
	case errors.Is(err, format.ErrUnexpectedEmpty), errors.As(err, &keyErr), errors.As(err, &charErr):
		return ExitRender
	default:
		return ExitFailure
	}
}
