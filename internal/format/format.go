// Package format renders a template of literal text and {key} placeholders
// against a domain.Ratings record.
//
// There is no escape for literal braces: '{' always opens a placeholder and
// the first '}' after it always closes it.
package format

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"eloget/internal/domain"
)

const (
	KeyUser      = "user"
	KeyTitle     = "title"
	KeyBullet    = "bullet_elo"
	KeyBlitz     = "blitz_elo"
	KeyRapid     = "rapid_elo"
	KeyClassical = "classical_elo"
)

const (
	openDelim  = '{'
	closeDelim = '}'
)

// Keys returns the recognized placeholder names in record order.
func Keys() []string {
	return []string{KeyUser, KeyTitle, KeyBullet, KeyBlitz, KeyRapid, KeyClassical}
}

// Render scans src once, copying literal bytes and replacing each
// placeholder with the matching field of r. The delimiters are ASCII, so
// literal text, including invalid UTF-8, passes through byte for byte.
func Render(src io.ByteReader, r domain.Ratings) (string, error) {
	var out strings.Builder
	for {
		c, err := next(src)
		if err == io.EOF {
			return out.String(), nil
		}
		if err != nil {
			return "", err
		}

		if c != openDelim {
			out.WriteByte(c)
			continue
		}

		key, err := readKey(src)
		if err != nil {
			return "", err
		}
		value, err := Lookup(key, r)
		if err != nil {
			return "", err
		}
		out.WriteString(value)
	}
}

func RenderString(tmpl string, r domain.Ratings) (string, error) {
	return Render(strings.NewReader(tmpl), r)
}

// Lookup resolves a single placeholder key.
func Lookup(key string, r domain.Ratings) (string, error) {
	switch key {
	case KeyUser:
		return r.User, nil
	case KeyTitle:
		return r.Title, nil
	case KeyBullet:
		return strconv.Itoa(r.Bullet), nil
	case KeyBlitz:
		return strconv.Itoa(r.Blitz), nil
	case KeyRapid:
		return strconv.Itoa(r.Rapid), nil
	case KeyClassical:
		return strconv.Itoa(r.Classical), nil
	default:
		return "", &UnrecognizedFormatError{Key: key}
	}
}

// readKey consumes bytes up to and including the closing brace.
func readKey(src io.ByteReader) (string, error) {
	var key strings.Builder
	for {
		c, err := next(src)
		if err == io.EOF {
			return "", ErrUnexpectedEmpty
		}
		if err != nil {
			return "", err
		}
		if c == closeDelim {
			return key.String(), nil
		}
		key.WriteByte(c)
	}
}

func next(src io.ByteReader) (byte, error) {
	c, err := src.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("read template: %w", err)
	}
	return c, nil
}
