package constants

import "time"

const (
	DefaultRating    = 1500
	DefaultDeviation = 500
	DefaultTitle     = "None"
)

const (
	DefaultUser   = "fabmazz"
	DefaultFormat = "{user}: {blitz_elo} blitz"
	DefaultSource = "chesscom"
)

const (
	ChessComBaseURL = "https://api.chess.com"
	LichessBaseURL  = "https://lichess.org"
	UserAgent       = "eloget/1.0"
)

const (
	ExternalAPITimeout  = 10 * time.Second
	MaxConnsPerHost     = 4
	MaxIdleConnDuration = 30 * time.Second
	MaxRedirects        = 5
	ShutdownTimeout     = 5 * time.Second
)
