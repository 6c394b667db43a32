// Package session owns the shared HTTP state for a collection run: one
// resty client plus the politeness delay applied after every network call.
// It is constructed once from config and passed to each source adapter,
// there is no ambient process-wide client.
package session

import (
	"context"
	"net/http/cookiejar"
	"time"

	"aldb-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

type Options struct {
	// Timeout bounds each request, Delay is the fixed politeness interval
	// slept after each network call toward an external source.
	Timeout time.Duration
	Delay   time.Duration
}

type Session struct {
	Http  *resty.Client
	delay time.Duration
}

func New(opts Options) (*Session, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	// the wiki fronts with cloudflare
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "aldb.lib.scrapers.http")

	return &Session{Http: client, delay: opts.Delay}, nil
}

// Politeness sleeps the fixed delay, returning early only when ctx is
// cancelled. Adapters call it after each request they make.
func (s *Session) Politeness(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
	}
}
