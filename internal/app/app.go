package app

import (
    "context"
    "errors"
    "fmt"

    "github.com/rs/zerolog/log"
    openai "github.com/sashabaranov/go-openai"

    "github.com/goldcore/pricewatch/internal/assist"
    "github.com/goldcore/pricewatch/internal/cache"
    "github.com/goldcore/pricewatch/internal/compare"
    "github.com/goldcore/pricewatch/internal/fetch"
    "github.com/goldcore/pricewatch/internal/price"
    "github.com/goldcore/pricewatch/internal/report"
    "github.com/goldcore/pricewatch/internal/scrape"
    "github.com/goldcore/pricewatch/internal/sheet"
)

// ErrNoComparisons is returned when no column of the input produced a
// single comparison row. Per the exit code policy the CLI maps this to a
// non-zero exit.
var ErrNoComparisons = errors.New("no comparisons produced")

// App wires the input sheet, the scraper and the report writers together.
type App struct {
    cfg     Config
    scraper *scrape.Scraper
}

func New(cfg Config) (*App, error) {
    client := &fetch.Client{
        UserAgent:       cfg.UserAgent,
        Timeout:         cfg.Timeout,
        PerHostInterval: cfg.PerHostInterval,
    }
    if cfg.CacheDir != "" {
        if cfg.CacheClear {
            _ = cache.ClearDir(cfg.CacheDir)
        }
        if cfg.CacheMaxAge > 0 {
            // Purge is best-effort; a stale entry only costs a re-fetch.
            _, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
        }
        client.Cache = &cache.PageCache{Dir: cfg.CacheDir}
    }

    scraper := &scrape.Scraper{
        Fetcher: client,
        Options: price.Options{MinPlausible: cfg.MinPrice, MaxPlausible: cfg.MaxPrice},
    }
    if cfg.LLMModel != "" {
        transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
        if cfg.LLMBaseURL != "" {
            transportCfg.BaseURL = cfg.LLMBaseURL
        }
        scraper.Assist = &assist.Extractor{
            Client: openai.NewClientWithConfig(transportCfg),
            Model:  cfg.LLMModel,
        }
        log.Info().Str("model", cfg.LLMModel).Msg("LLM assist enabled")
    }

    return &App{cfg: cfg, scraper: scraper}, nil
}

// Run loads the product sheet, scrapes every URL sequentially and writes
// the comparison outputs. Individual page failures are warnings; only an
// unusable input or an empty result is an error.
func (a *App) Run(ctx context.Context) error {
    s, err := sheet.Load(a.cfg.InputPath)
    if err != nil {
        return fmt.Errorf("load input: %w", err)
    }
    log.Info().Int("products", len(s.Columns)).Str("input", a.cfg.InputPath).Msg("loaded product sheet")

    var rows []compare.Row
    for _, col := range s.Columns {
        ref := a.scraper.Extract(ctx, col.ReferenceURL, false)
        refUnit, ok := ref.PerUnit()
        if !ok || refUnit == 0 {
            log.Warn().
                Str("product", col.Product).
                Str("url", col.ReferenceURL).
                Stringer("status", ref.Status).
                Msg("could not extract reference price")
            continue
        }
        log.Debug().
            Str("product", col.Product).
            Float64("perUnit", refUnit).
            Int("quantity", ref.Quantity).
            Msg("reference price extracted")

        for _, compURL := range col.CompetitorURLs {
            comp := a.scraper.Extract(ctx, compURL, col.PreferVAT)
            compUnit, compOK := comp.PerUnit()
            if !compOK {
                log.Warn().
                    Str("product", col.Product).
                    Str("url", compURL).
                    Stringer("status", comp.Status).
                    Msg("could not extract competitor price")
            }
            rows = append(rows, compare.NewRow(col.Product, refUnit, compUnit, compOK, col.ReferenceURL, compURL))
        }
    }

    if len(rows) == 0 {
        return ErrNoComparisons
    }

    if err := report.WriteCSV(a.cfg.OutputPath, rows); err != nil {
        return fmt.Errorf("write csv: %w", err)
    }
    log.Info().Int("rows", len(rows)).Str("out", a.cfg.OutputPath).Msg("wrote comparison csv")

    if a.cfg.OutputXLSXPath != "" {
        if err := report.WriteXLSX(a.cfg.OutputXLSXPath, rows); err != nil {
            return fmt.Errorf("write xlsx: %w", err)
        }
        log.Info().Str("out", a.cfg.OutputXLSXPath).Msg("wrote comparison workbook")
    }
    if a.cfg.OutputPDFPath != "" {
        if err := report.WritePDF(a.cfg.OutputPDFPath, rows); err != nil {
            return fmt.Errorf("write pdf: %w", err)
        }
        log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote comparison pdf")
    }
    return nil
}
