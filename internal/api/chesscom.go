package api

import (
	"context"
	"errors"
	"net/url"
)

func (c *Client) GetChessComPlayer(ctx context.Context, baseURL, user string) (*ChessComPlayer, error) {
	return doRequest[ChessComPlayer](ctx, c, joinURL(baseURL, "/pub/player/", url.PathEscape(user)))
}

func (c *Client) GetChessComStats(ctx context.Context, baseURL, user string) (*ChessComStats, error) {
	return doRequest[ChessComStats](ctx, c, joinURL(baseURL, "/pub/player/", url.PathEscape(user), "/stats"))
}

type ChessComPlayer struct {
	PlayerID *int64 `json:"player_id"`
	Username string `json:"username"`
	Title    string `json:"title"`
}

func (p *ChessComPlayer) validate() error {
	if p.PlayerID == nil {
		return errors.New("missing field player_id")
	}
	if p.Username == "" {
		return errors.New("missing field username")
	}
	return nil
}

// ChessComStats only lists the modes that map onto a rating; chess_daily is
// ignored.
type ChessComStats struct {
	Bullet    *ChessComModeStats `json:"chess_bullet"`
	Blitz     *ChessComModeStats `json:"chess_blitz"`
	Rapid     *ChessComModeStats `json:"chess_rapid"`
	Classical *ChessComModeStats `json:"chess_classical"`
}

type ChessComModeStats struct {
	Last *ChessComLast `json:"last"`
}

type ChessComLast struct {
	Date   *int64 `json:"date"`
	Rating *int   `json:"rating"`
	RD     *int   `json:"rd"`
}

func (s *ChessComStats) validate() error {
	for _, m := range []*ChessComModeStats{s.Bullet, s.Blitz, s.Rapid, s.Classical} {
		if m == nil || m.Last == nil {
			continue
		}
		if m.Last.Date == nil || m.Last.Rating == nil || m.Last.RD == nil {
			return errors.New("incomplete last rating entry")
		}
	}
	return nil
}
