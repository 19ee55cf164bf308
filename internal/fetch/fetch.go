package fetch

import (
    "context"
    "errors"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"
    "sync"
    "time"

    "golang.org/x/time/rate"

    "github.com/goldcore/pricewatch/internal/cache"
)

// DefaultUserAgent is a browser-like identity. Retail sites commonly serve
// an empty shell or a block page to anything that does not look like a
// browser, which would starve the extractor of candidates.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

const defaultTimeout = 10 * time.Second

// Client issues single-attempt GETs with a fixed per-request timeout. One
// failed attempt is final for a URL; callers treat the page as yielding no
// price and move on.
type Client struct {
    HTTPClient *http.Client
    UserAgent  string
    // Timeout bounds each request. Zero means 10s.
    Timeout time.Duration
    // RedirectMaxHops caps redirect following to avoid loops. Zero means
    // default (5).
    RedirectMaxHops int
    // PerHostInterval spaces successive requests to the same host. Zero
    // disables rate limiting.
    PerHostInterval time.Duration
    // Cache, when set, serves repeat URLs from disk and stores fresh
    // bodies. Left nil by default so every extraction re-fetches.
    Cache *cache.PageCache

    mu       sync.Mutex
    limiters map[string]*rate.Limiter
}

// Get fetches one HTML page and returns its body.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
    u, err := url.Parse(rawURL)
    if err != nil {
        return nil, fmt.Errorf("parse url: %w", err)
    }
    if !isHTTPScheme(u) {
        return nil, fmt.Errorf("unsupported URL scheme: %q", rawURL)
    }

    if c.Cache != nil {
        if body, err := c.Cache.Load(ctx, rawURL); err == nil {
            return body, nil
        }
    }

    if err := c.wait(ctx, u.Host); err != nil {
        return nil, err
    }

    timeout := c.Timeout
    if timeout <= 0 {
        timeout = defaultTimeout
    }
    ctx, cancel := context.WithTimeout(ctx, timeout)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
    if err != nil {
        return nil, fmt.Errorf("new request: %w", err)
    }
    ua := c.UserAgent
    if ua == "" {
        ua = DefaultUserAgent
    }
    req.Header.Set("User-Agent", ua)

    resp, err := c.getHTTPClient().Do(req)
    if err != nil {
        return nil, err
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
    }
    contentType := resp.Header.Get("Content-Type")
    if !isAllowedContentType(contentType) {
        return nil, fmt.Errorf("unsupported content type: %s", contentType)
    }
    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, fmt.Errorf("read body: %w", err)
    }

    if c.Cache != nil {
        _ = c.Cache.Save(ctx, rawURL, contentType, body)
    }
    return body, nil
}

func (c *Client) getHTTPClient() *http.Client {
    if c.HTTPClient != nil {
        // Clone to attach our redirect policy without mutating caller's client
        base := *c.HTTPClient
        base.CheckRedirect = c.checkRedirectFunc()
        return &base
    }
    return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
    max := c.RedirectMaxHops
    if max <= 0 {
        max = 5
    }
    return func(req *http.Request, via []*http.Request) error {
        if len(via) >= max {
            return errors.New("too many redirects")
        }
        if req.URL == nil || !isHTTPScheme(req.URL) {
            return errors.New("redirect to unsupported scheme")
        }
        return nil
    }
}

// wait blocks until the per-host limiter admits the request.
func (c *Client) wait(ctx context.Context, host string) error {
    if c.PerHostInterval <= 0 {
        return nil
    }
    c.mu.Lock()
    if c.limiters == nil {
        c.limiters = make(map[string]*rate.Limiter)
    }
    lim, ok := c.limiters[host]
    if !ok {
        lim = rate.NewLimiter(rate.Every(c.PerHostInterval), 1)
        c.limiters[host] = lim
    }
    c.mu.Unlock()
    return lim.Wait(ctx)
}

func isHTTPScheme(u *url.URL) bool {
    if u == nil {
        return false
    }
    scheme := strings.ToLower(u.Scheme)
    return scheme == "http" || scheme == "https"
}

func isAllowedContentType(ct string) bool {
    ct = strings.ToLower(strings.TrimSpace(ct))
    // Allow a missing header: smaller dealer sites omit it.
    return ct == "" || strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
