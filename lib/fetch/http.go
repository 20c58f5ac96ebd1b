package fetch

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/fuzy112/v2ex-tui/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type HttpFetcher struct {
	client *resty.Client
}

type HttpOptions struct {
	// UserAgent overrides the default browser-like user agent.
	UserAgent string
	// DebugOutput, when non-nil, receives a dump of every HTTP
	// exchange performed by this fetcher.
	DebugOutput restyutil.InstrumentOutput
}

func NewHttpFetcher(opts HttpOptions) (*HttpFetcher, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)
	client.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, tracer, opts.DebugOutput)

	return &HttpFetcher{client: client}, nil
}

func (f *HttpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("unexpected status %d for %s", res.StatusCode(), url)
	}
	return res.String(), nil
}
