package domain

import "eloget/internal/constants"

// Ratings is the source-independent record handed to the formatter.
type Ratings struct {
	User      string
	Title     string
	Bullet    int
	Blitz     int
	Rapid     int
	Classical int
}

type Rating struct {
	Rating    int
	Deviation int // rd, not surfaced in Ratings
}

// DefaultRating is the "unrated" placeholder used for any time control a
// provider does not report.
func DefaultRating() Rating {
	return Rating{
		Rating:    constants.DefaultRating,
		Deviation: constants.DefaultDeviation,
	}
}

func TitleOrDefault(title string) string {
	if title == "" {
		return constants.DefaultTitle
	}
	return title
}
