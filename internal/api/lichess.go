package api

import (
	"context"
	"errors"
	"net/url"
)

func (c *Client) GetLichessUser(ctx context.Context, baseURL, user string) (*LichessUser, error) {
	return doRequest[LichessUser](ctx, c, joinURL(baseURL, "/api/user/", url.PathEscape(user)))
}

type LichessUser struct {
	ID       string       `json:"id"`
	Username string       `json:"username"`
	Title    string       `json:"title"`
	Perfs    LichessPerfs `json:"perfs"`
}

func (u *LichessUser) validate() error {
	if u.ID == "" {
		return errors.New("missing field id")
	}
	if u.Username == "" {
		return errors.New("missing field username")
	}
	return nil
}

type LichessPerfs struct {
	Bullet         *LichessPerf `json:"bullet"`
	Blitz          *LichessPerf `json:"blitz"`
	Rapid          *LichessPerf `json:"rapid"`
	Classical      *LichessPerf `json:"classical"`
	Correspondence *LichessPerf `json:"correspondence"`
}

type LichessPerf struct {
	Games  int  `json:"games"`
	Rating int  `json:"rating"`
	RD     int  `json:"rd"`
	Prog   int  `json:"prog"`
	Prov   bool `json:"prov,omitempty"`
}
