package service

import (
	"context"
	"fmt"

	"eloget/internal/api"
	"eloget/internal/config"
	"eloget/internal/domain"
	"eloget/internal/logger"

	"github.com/rs/zerolog"
)

const LichessName = "lichess"

type LichessSource struct {
	client  *api.Client
	baseURL string
	logger  zerolog.Logger
}

func NewLichessSource(client *api.Client, cfg *config.Config, logger zerolog.Logger) *LichessSource {
	return &LichessSource{
		client:  client,
		baseURL: cfg.LichessBaseURL,
		logger:  logger,
	}
}

func (s *LichessSource) Name() string { return LichessName }

func (s *LichessSource) Fetch(ctx context.Context, user string) (domain.Ratings, error) {
	log := logger.FromContext(ctx, s.logger).With().Str("source", LichessName).Logger()
	log.Debug().Str("user", user).Msg("fetching user")
	u, err := s.client.GetLichessUser(ctx, s.baseURL, user)
	if err != nil {
		return domain.Ratings{}, fmt.Errorf("failed to fetch lichess user: %w", err)
	}
	return NormalizeLichess(u), nil
}

// NormalizeLichess maps the four rated categories. Correspondence is decoded
// but has no slot in domain.Ratings.
func NormalizeLichess(u *api.LichessUser) domain.Ratings {
	return domain.Ratings{
		User:      u.Username,
		Title:     domain.TitleOrDefault(u.Title),
		Bullet:    lichessRating(u.Perfs.Bullet).Rating,
		Blitz:     lichessRating(u.Perfs.Blitz).Rating,
		Rapid:     lichessRating(u.Perfs.Rapid).Rating,
		Classical: lichessRating(u.Perfs.Classical).Rating,
	}
}

// lichessRating treats a category without games as unrated, whatever
// placeholder values the provider put in it.
func lichessRating(p *api.LichessPerf) domain.Rating {
	if p == nil || p.Games == 0 {
		return domain.DefaultRating()
	}
	return domain.Rating{Rating: p.Rating, Deviation: p.RD}
}
