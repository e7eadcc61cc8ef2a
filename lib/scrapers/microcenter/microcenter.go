package microcenter

import (
	"bytes"
	"context"
	"fmt"
	"gpumon-backend/lib/telemetry"
	"log/slog"
	"net/http"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/microcenter")

// the three failure classes of the scrape pipeline. classification
// misses are not errors, they surface as an explicit "unknown" value.
var (
	ErrTransport = fmt.Errorf("transport failure")
	ErrAlignment = fmt.Errorf("listing fields misaligned")
	ErrParse     = fmt.Errorf("unparseable text")
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36"

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// defaults to a desktop Chrome identity
	UserAgent string
	// defaults to 30s
	Timeout time.Duration
	// retries after the first attempt, defaults to 2
	RetryCount int
}

func NewClient(opts ClientOptions) Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}
	client.SetTimeout(timeout)

	retries := opts.RetryCount
	if retries == 0 {
		retries = 2
	}
	client.SetRetryCount(retries)
	client.SetRetryWaitTime(time.Second * 2)

	telemetry.InstrumentResty(client, "scrapers/microcenter/http")

	return Client{http: client}
}

// FetchSearchPage pulls one search-results page and parses it. the
// timeout and retry budget live on the underlying http client, a dead
// source cannot stall the caller past them.
func (c Client) FetchSearchPage(ctx context.Context, link string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "FetchSearchPage")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %s", ErrTransport, link, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", ErrTransport, res.StatusCode(), link)
	}

	slog.DebugContext(ctx, "fetched search page", "url", link, "status", res.StatusCode())

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %s", ErrTransport, link, err)
	}
	return doc, nil
}
