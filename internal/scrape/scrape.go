package scrape

import (
    "context"

    "github.com/rs/zerolog/log"

    "github.com/goldcore/pricewatch/internal/assist"
    "github.com/goldcore/pricewatch/internal/extract"
    "github.com/goldcore/pricewatch/internal/price"
)

// Fetcher is the page-retrieval collaborator.
type Fetcher interface {
    Get(ctx context.Context, url string) ([]byte, error)
}

// Status classifies how a scrape ended. A fetch failure and a page without
// a recognizable price both surface an absent price, but callers can tell
// them apart for reporting.
type Status int

const (
    StatusOK Status = iota
    StatusNoPrice
    StatusFetchFailed
)

func (s Status) String() string {
    switch s {
    case StatusOK:
        return "ok"
    case StatusNoPrice:
        return "no-price"
    case StatusFetchFailed:
        return "fetch-failed"
    default:
        return "unknown"
    }
}

// Result is one page's extraction outcome.
type Result struct {
    price.Result
    Status Status
    URL    string
}

// Scraper composes the fetcher with the extraction heuristics. URLs are
// processed one at a time; nothing is shared between calls beyond the
// fetcher itself.
type Scraper struct {
    Fetcher Fetcher
    // Options is the base selection policy; PreferVAT is supplied per
    // call since it depends on the product, not the scraper.
    Options price.Options
    // Assist, when non-nil, is consulted only after the heuristic finds
    // no candidate.
    Assist *assist.Extractor
}

// Extract fetches one product page and runs the price and quantity
// heuristics over it. Failures never propagate: a fetch error degrades to
// an absent price so a batch run is never aborted by one bad page.
func (s *Scraper) Extract(ctx context.Context, url string, preferVAT bool) Result {
    body, err := s.Fetcher.Get(ctx, url)
    if err != nil {
        log.Warn().Err(err).Str("url", url).Msg("fetch failed")
        return Result{Result: price.Result{Quantity: 1}, Status: StatusFetchFailed, URL: url}
    }

    page := extract.Parse(body)
    opts := s.Options
    opts.PreferVAT = preferVAT
    res := price.Extract(page, opts)

    if !res.Found && s.Assist != nil {
        if amount, ok := s.Assist.Price(ctx, page.Text); ok {
            log.Debug().Str("url", url).Float64("price", amount).Msg("assist supplied price")
            res = price.Result{Price: amount, Found: true, Quantity: price.ExtractQuantity(page.Text)}
        }
    }

    status := StatusOK
    if !res.Found {
        status = StatusNoPrice
    }
    return Result{Result: res, Status: status, URL: url}
}
