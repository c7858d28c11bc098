package service

import (
	"net"
	"testing"
	"time"

	"eloget/internal/api"
	"eloget/internal/config"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// routes maps a request path to the JSON body served for it; unknown paths
// answer 404.
type routes map[string]string

func newTestConfig() *config.Config {
	return &config.Config{
		HTTPTimeout:     2 * time.Second,
		ChessComBaseURL: "http://api.chess.test",
		LichessBaseURL:  "http://lichess.test",
	}
}

func newTestClient(t *testing.T, cfg *config.Config, r routes, hits *[]string) *api.Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		if hits != nil {
			*hits = append(*hits, path)
		}
		body, ok := r[path]
		if !ok {
			ctx.SetStatusCode(fasthttp.StatusNotFound)
			return
		}
		ctx.SetContentType("application/json")
		ctx.SetBodyString(body)
	}}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = ln.Close() })

	return api.NewClient(cfg, zerolog.Nop(), api.WithDial(func(string) (net.Conn, error) {
		return ln.Dial()
	}))
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

