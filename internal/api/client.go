package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"eloget/internal/config"
	"eloget/internal/constants"
	"eloget/internal/logger"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

var (
	// ErrTransport covers network failures and non-200 responses.
	ErrTransport = errors.New("error while handling http request")
	// ErrParse means the body did not match the expected JSON shape.
	ErrParse = errors.New("error while parsing json")
)

type Client struct {
	client    *fasthttp.Client
	userAgent string
	timeout   time.Duration
	logger    zerolog.Logger
}

type Option func(*Client)

// WithDial replaces the dialer, mostly so tests can use an in-memory listener.
func WithDial(dial func(addr string) (net.Conn, error)) Option {
	return func(c *Client) { c.client.Dial = dial }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func NewClient(cfg *config.Config, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		client: &fasthttp.Client{
			MaxConnsPerHost:        constants.MaxConnsPerHost,
			ReadTimeout:            cfg.HTTPTimeout,
			WriteTimeout:           cfg.HTTPTimeout,
			MaxIdleConnDuration:    constants.MaxIdleConnDuration,
			DisablePathNormalizing: true, // keep user names like ".." from collapsing the path
		},
		userAgent: cfg.UserAgent,
		timeout:   cfg.HTTPTimeout,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func doRequest[T any](ctx context.Context, c *Client, url string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.DisableRedirectPathNormalizing = true
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.SetUserAgent(c.userAgent)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	log := logger.FromContext(ctx, c.logger)
	log.Debug().Str("url", url).Msg("sending request")

	deadline, _ := ctx.Deadline()
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrTransport, url, context.DeadlineExceeded)
	}
	// DoRedirects has no deadline variant; the timeout applies to each hop.
	req.SetTimeout(remaining)

	start := time.Now()
	if err := c.client.DoRedirects(req, resp, constants.MaxRedirects); err != nil {
		log.Debug().Err(err).Str("url", url).Msg("request failed")
		return nil, fmt.Errorf("%w: GET %s: %v", ErrTransport, url, err)
	}

	log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrTransport, url, resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrParse, url, err)
	}
	if v, ok := any(&result).(validator); ok {
		if err := v.validate(); err != nil {
			return nil, fmt.Errorf("%w: GET %s: %v", ErrParse, url, err)
		}
	}
	return &result, nil
}

// validator is implemented by responses with fields that must be present.
type validator interface {
	validate() error
}

func joinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + strings.Join(parts, "")
}
