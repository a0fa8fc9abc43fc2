package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/kalakshetraodisha/website/internal/platform/assets/imagecdn"
	"github.com/kalakshetraodisha/website/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Fetch outcomes reported to the Observer and the diagnostic log.
const (
	OutcomeOK        = "ok"
	OutcomeDisabled  = "disabled"
	OutcomeInvalid   = "invalid"
	OutcomeTimeout   = "timeout"
	OutcomeStatus    = "status"
	OutcomeTransport = "transport"
	OutcomeDecode    = "decode"
)

const (
	// DefaultBaseURL is the local CMS development address.
	DefaultBaseURL = "http://localhost:1337"
	// DefaultLocale is used when a query names no locale.
	DefaultLocale = "en"
	// FallbackImageCount is the number of bundled numbered images.
	FallbackImageCount = 74

	healthEndpoint = "health"
	maxBodyBytes   = 8 << 20
	tracerName     = "github.com/kalakshetraodisha/website/internal/services/web/integration/cms"
)

// Observer receives one call per fetch.
type Observer interface {
	ObserveFetch(endpoint string, outcome string, elapsed time.Duration)
}

// Config configures a Client.
type Config struct {
	// BaseURL is the CMS origin without the /api suffix. Blank disables
	// fetching and every read reports absence.
	BaseURL string
	// Token is sent as a bearer token when set.
	Token         string
	DefaultLocale string
	// Timeout bounds one fetch. Zero uses timeouts.CMSRequest.
	Timeout time.Duration
	// ProbeTimeout bounds Available. Zero uses timeouts.CMSProbe.
	ProbeTimeout time.Duration
	HTTPClient   *http.Client
	Logger       *log.Logger
	Observer     Observer
	// Assets resolves numbered fallback images.
	Assets imagecdn.CDN
}

// Client reads content from the CMS.
type Client struct {
	baseURL       string
	token         string
	defaultLocale string
	timeout       time.Duration
	probeTimeout  time.Duration
	httpClient    *http.Client
	logger        *log.Logger
	observer      Observer
	assets        imagecdn.CDN
	tracer        trace.Tracer
}

// NewClient builds a client from config.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:         strings.TrimSpace(cfg.Token),
		defaultLocale: strings.TrimSpace(cfg.DefaultLocale),
		timeout:       cfg.Timeout,
		probeTimeout:  cfg.ProbeTimeout,
		httpClient:    cfg.HTTPClient,
		logger:        cfg.Logger,
		observer:      cfg.Observer,
		assets:        cfg.Assets,
		tracer:        otel.Tracer(tracerName),
	}
	if c.defaultLocale == "" {
		c.defaultLocale = DefaultLocale
	}
	if c.timeout <= 0 {
		c.timeout = timeouts.CMSRequest
	}
	if c.probeTimeout <= 0 {
		c.probeTimeout = timeouts.CMSProbe
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// BaseURL returns the configured CMS origin.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

// Enabled reports whether the client has a CMS to talk to.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

// Fetch returns the raw JSON body of endpoint, or false when the content is
// absent for any reason.
func (c *Client) Fetch(ctx context.Context, endpoint string, opts Options) (json.RawMessage, bool) {
	return FetchJSON[json.RawMessage](ctx, c, endpoint, opts)
}

// FetchJSON fetches endpoint and decodes the body into T. Decoding failures
// count as absence.
func FetchJSON[T any](ctx context.Context, c *Client, endpoint string, opts Options) (T, bool) {
	var out T
	ok := c.fetch(ctx, endpoint, opts, func(body []byte) error {
		return json.Unmarshal(body, &out)
	})
	if !ok {
		var zero T
		return zero, false
	}
	return out, true
}

func (c *Client) fetch(ctx context.Context, endpoint string, opts Options, decode func([]byte) error) bool {
	if c == nil {
		return false
	}
	if ctx == nil {
		ctx = context.Background()
	}
	endpoint = strings.Trim(strings.TrimSpace(endpoint), "/")
	started := time.Now()

	ctx, span := c.tracer.Start(ctx, "cms.fetch", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("cms.endpoint", endpoint))

	outcome, err := c.fetchBody(ctx, endpoint, opts, span, decode)
	span.SetAttributes(attribute.String("cms.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		if outcome != OutcomeDisabled {
			c.logger.Printf("cms fetch absent endpoint=%s reason=%s err=%v", endpoint, outcome, err)
		}
	}
	if c.observer != nil {
		c.observer.ObserveFetch(endpoint, outcome, time.Since(started))
	}
	return err == nil
}

func (c *Client) fetchBody(ctx context.Context, endpoint string, opts Options, span trace.Span, decode func([]byte) error) (string, error) {
	if endpoint == "" {
		return OutcomeInvalid, errors.New("endpoint is required")
	}
	if c.baseURL == "" {
		return OutcomeDisabled, errors.New("cms base url is not configured")
	}
	query, err := encodeQuery(opts, c.defaultLocale)
	if err != nil {
		return OutcomeInvalid, err
	}
	locale := strings.TrimSpace(opts.Locale)
	if locale == "" {
		locale = c.defaultLocale
	}
	span.SetAttributes(attribute.String("cms.locale", locale))

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + "/api/" + endpoint + "?" + query
	body, status, err := c.get(requestCtx, target)
	if err != nil {
		if errors.Is(requestCtx.Err(), context.DeadlineExceeded) {
			return OutcomeTimeout, err
		}
		return OutcomeTransport, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return OutcomeStatus, fmt.Errorf("unexpected status %d", status)
	}
	if err := decode(body); err != nil {
		return OutcomeDecode, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return OutcomeOK, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// Available probes the CMS health endpoint.
func (c *Client) Available(ctx context.Context) bool {
	if !c.Enabled() {
		return false
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()
	_, status, err := c.get(ctx, c.baseURL+"/api/"+healthEndpoint)
	if err != nil {
		return false
	}
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// MediaURL resolves a media URL for display. A blank url yields the numbered
// fallback image for fallbackIndex; absolute and local image URLs pass
// through; anything else is prefixed with the CMS origin.
func (c *Client) MediaURL(raw string, fallbackIndex int) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		var assets imagecdn.CDN
		if c != nil {
			assets = c.assets
		}
		return assets.Numbered(FallbackImageNumber(fallbackIndex))
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, imagecdn.LocalBase+"/") {
		return raw
	}
	return c.BaseURL() + raw
}

// FallbackImageNumber maps any index onto 1..FallbackImageCount as
// ((k-1) mod 74)+1.
func FallbackImageNumber(k int) int {
	n := (k - 1) % FallbackImageCount
	if n < 0 {
		n += FallbackImageCount
	}
	return n + 1
}
