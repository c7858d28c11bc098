package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"eloget/internal/config"
)

type Options struct {
	User   string
	Format string
	Source string
}

func DefaultOptions(cfg *config.Config) Options {
	return Options{
		User:   cfg.DefaultUser,
		Format: cfg.DefaultFormat,
		Source: cfg.DefaultSource,
	}
}

// ErrHelp is returned when usage was requested instead of a lookup.
var ErrHelp = errors.New("help requested")

type FlagErrorKind int

const (
	EmptyFlag FlagErrorKind = iota + 1
	MissingMinus
	TooFewWords
	InvalidFlag
)

type FlagParseError struct {
	Kind FlagErrorKind
	Flag string
}

func (e *FlagParseError) Error() string {
	switch e.Kind {
	case EmptyFlag:
		return "the flag is empty"
	case MissingMinus:
		return fmt.Sprintf("the flag %s does not start with a minus", e.Flag)
	case TooFewWords:
		return fmt.Sprintf("flag %s does not contain enough words", e.Flag)
	case InvalidFlag:
		return fmt.Sprintf("flag %s is not recognized", e.Flag)
	default:
		return fmt.Sprintf("invalid flag %s", e.Flag)
	}
}

// ParseOptions applies -name=value flags on top of defaults. Later flags win.
func ParseOptions(args []string, defaults Options) (Options, error) {
	opts := defaults
	for _, arg := range args {
		if isHelp(arg) {
			return opts, ErrHelp
		}

		name, value, err := parseFlag(arg)
		if err != nil {
			return opts, err
		}
		switch name {
		case "usr":
			opts.User = value
		case "fmt":
			opts.Format = value
		case "src":
			opts.Source = value
		default:
			return opts, &FlagParseError{Kind: InvalidFlag, Flag: arg}
		}
	}
	return opts, nil
}

// parseFlag splits "-name=value". Only the first '=' separates, so the value
// may itself contain '='.
func parseFlag(arg string) (string, string, error) {
	if arg == "" {
		return "", "", &FlagParseError{Kind: EmptyFlag}
	}
	if arg[0] != '-' {
		return "", "", &FlagParseError{Kind: MissingMinus, Flag: arg}
	}
	name, value, ok := strings.Cut(arg[1:], "=")
	if !ok {
		return "", "", &FlagParseError{Kind: TooFewWords, Flag: arg}
	}
	return name, value, nil
}

func isHelp(arg string) bool {
	switch arg {
	case "-h", "-help", "--help":
		return true
	}
	return false
}

func PrintUsage(w io.Writer, defaults Options, sources, keys []string) {
	fmt.Fprintf(w, "usage: eloget [-usr=<name>] [-fmt=<template>] [-src=<source>]\n\n")
	fmt.Fprintf(w, "  -usr  player name (default %q)\n", defaults.User)
	fmt.Fprintf(w, "  -fmt  output template (default %q)\n", defaults.Format)
	fmt.Fprintf(w, "  -src  one of %s (default %q)\n\n", strings.Join(sources, ", "), defaults.Source)
	fmt.Fprintf(w, "template keys: {%s}\n", strings.Join(keys, "}, {"))
}
