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

const ChessComName = "chesscom"

type ChessComSource struct {
	client  *api.Client
	baseURL string
	logger  zerolog.Logger
}

func NewChessComSource(client *api.Client, cfg *config.Config, logger zerolog.Logger) *ChessComSource {
	return &ChessComSource{
		client:  client,
		baseURL: cfg.ChessComBaseURL,
		logger:  logger,
	}
}

func (s *ChessComSource) Name() string { return ChessComName }

// Fetch requests the profile and then the stats; the two calls are never
// issued in parallel.
func (s *ChessComSource) Fetch(ctx context.Context, user string) (domain.Ratings, error) {
	log := logger.FromContext(ctx, s.logger).With().Str("source", ChessComName).Logger()
	log.Debug().Str("user", user).Msg("fetching profile")
	player, err := s.client.GetChessComPlayer(ctx, s.baseURL, user)
	if err != nil {
		return domain.Ratings{}, fmt.Errorf("failed to fetch chess.com profile: %w", err)
	}

	log.Debug().Str("user", user).Int64("player_id", *player.PlayerID).Msg("fetching stats")
	stats, err := s.client.GetChessComStats(ctx, s.baseURL, user)
	if err != nil {
		return domain.Ratings{}, fmt.Errorf("failed to fetch chess.com stats: %w", err)
	}

	return NormalizeChessCom(player, stats), nil
}

func NormalizeChessCom(player *api.ChessComPlayer, stats *api.ChessComStats) domain.Ratings {
	return domain.Ratings{
		User:      player.Username,
		Title:     domain.TitleOrDefault(player.Title),
		Bullet:    chessComRating(stats.Bullet).Rating,
		Blitz:     chessComRating(stats.Blitz).Rating,
		Rapid:     chessComRating(stats.Rapid).Rating,
		Classical: chessComRating(stats.Classical).Rating,
	}
}

// chessComRating falls back to the default both when the mode is missing
// and when it carries no last entry.
func chessComRating(m *api.ChessComModeStats) domain.Rating {
	if m == nil || m.Last == nil || m.Last.Rating == nil {
		return domain.DefaultRating()
	}
	r := domain.Rating{Rating: *m.Last.Rating}
	if m.Last.RD != nil {
		r.Deviation = *m.Last.RD
	}
	return r
}
