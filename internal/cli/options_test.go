package cli

import (
	"bytes"
	"testing"

	"eloget/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaults = Options{User: "fabmazz", Format: "{user}: {blitz_elo} blitz", Source: "chesscom"}

func TestDefaultOptions(t *testing.T) {
	cfg := &config.Config{DefaultUser: "a", DefaultFormat: "b", DefaultSource: "c"}
	assert.Equal(t, Options{User: "a", Format: "b", Source: "c"}, DefaultOptions(cfg))
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{"no flags", nil, defaults},
		{"user", []string{"-usr=magnus"}, Options{User: "magnus", Format: defaults.Format, Source: "chesscom"}},
		{"all flags", []string{"-src=lichess", "-usr=DrNykterstein", "-fmt={bullet_elo}"}, Options{User: "DrNykterstein", Format: "{bullet_elo}", Source: "lichess"}},
		{"later flag wins", []string{"-usr=a", "-usr=b"}, Options{User: "b", Format: defaults.Format, Source: "chesscom"}},
		{"empty value", []string{"-fmt="}, Options{User: "fabmazz", Format: "", Source: "chesscom"}},
		{"value containing equals", []string{"-fmt=elo={blitz_elo}"}, Options{User: "fabmazz", Format: "elo={blitz_elo}", Source: "chesscom"}},
		{"unknown src is not a flag error", []string{"-src=unknown"}, Options{User: "fabmazz", Format: defaults.Format, Source: "unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions(tt.args, defaults)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind FlagErrorKind
		msg  string
	}{
		{"empty flag", []string{""}, EmptyFlag, "the flag is empty"},
		{"missing minus", []string{"badflag"}, MissingMinus, "the flag badflag does not start with a minus"},
		{"missing value", []string{"-usr"}, TooFewWords, "flag -usr does not contain enough words"},
		{"bare minus", []string{"-"}, TooFewWords, "flag - does not contain enough words"},
		{"unknown name", []string{"-user=x"}, InvalidFlag, "flag -user=x is not recognized"},
		{"empty name", []string{"-=x"}, InvalidFlag, "flag -=x is not recognized"},
		{"stops at first bad flag", []string{"-usr=ok", "nope", "-bad=1"}, MissingMinus, "the flag nope does not start with a minus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions(tt.args, defaults)
			var fpe *FlagParseError
			require.ErrorAs(t, err, &fpe)
			assert.Equal(t, tt.kind, fpe.Kind)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestParseOptionsHelp(t *testing.T) {
	for _, arg := range []string{"-h", "-help", "--help"} {
		_, err := ParseOptions([]string{"-usr=x", arg}, defaults)
		assert.ErrorIs(t, err, ErrHelp, arg)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf, defaults, []string{"chesscom", "lichess"}, []string{"user", "title"})

	out := buf.String()
	assert.Contains(t, out, `-usr  player name (default "fabmazz")`)
	assert.Contains(t, out, "one of chesscom, lichess")
	assert.Contains(t, out, "template keys: {user}, {title}")
}
