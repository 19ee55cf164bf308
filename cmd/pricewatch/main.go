package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "os"
    "time"

    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"

    "github.com/goldcore/pricewatch/internal/app"
)

func main() {
    // Logging setup
    zerolog.TimeFieldFormat = time.RFC3339
    log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

    var (
        configPath      string
        inputPath       string
        outputPath      string
        outputXLSX      string
        outputPDF       string
        userAgent       string
        timeout         time.Duration
        perHostInterval time.Duration
        minPrice        float64
        maxPrice        float64
        llmBaseURL      string
        llmModel        string
        llmKey          string
        cacheDir        string
        cacheMaxAge     time.Duration
        cacheClear      bool
        verbose         bool
    )

    flag.StringVar(&configPath, "config", "", "Path to optional YAML/JSON config file")
    flag.StringVar(&inputPath, "input", "products.csv", "Path to input product sheet (CSV or XLSX)")
    flag.StringVar(&outputPath, "output", "comparison.csv", "Path to write the comparison CSV")
    flag.StringVar(&outputXLSX, "output.xlsx", "", "Optional path to write the comparison as an Excel workbook")
    flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to write a PDF summary report")
    flag.StringVar(&userAgent, "ua", "", "Override the browser-like User-Agent for page fetches")
    flag.DurationVar(&timeout, "timeout", 10*time.Second, "Per-request fetch timeout")
    flag.DurationVar(&perHostInterval, "host.interval", 0, "Minimum spacing between requests to the same host (0 disables)")
    flag.Float64Var(&minPrice, "price.min", 0, "Reject candidate prices below this bound (0 disables)")
    flag.Float64Var(&maxPrice, "price.max", 0, "Reject candidate prices above this bound (0 disables)")
    flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for the extraction assist")
    flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for the extraction assist (empty disables)")
    flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the extraction assist")
    flag.StringVar(&cacheDir, "cache.dir", "", "Page cache directory (empty disables caching, every URL re-fetches)")
    flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cached pages before purge (e.g. 24h); 0 disables")
    flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
    flag.BoolVar(&verbose, "v", false, "Verbose logging")
    flag.Parse()

    cfg := app.Config{
        InputPath:       inputPath,
        OutputPath:      outputPath,
        OutputXLSXPath:  outputXLSX,
        OutputPDFPath:   outputPDF,
        UserAgent:       userAgent,
        Timeout:         timeout,
        PerHostInterval: perHostInterval,
        MinPrice:        minPrice,
        MaxPrice:        maxPrice,
        LLMBaseURL:      llmBaseURL,
        LLMModel:        llmModel,
        LLMAPIKey:       llmKey,
        CacheDir:        cacheDir,
        CacheMaxAge:     cacheMaxAge,
        CacheClear:      cacheClear,
        Verbose:         verbose,
    }

    if configPath != "" {
        fc, err := app.LoadConfigFile(configPath)
        if err != nil {
            log.Error().Err(err).Str("config", configPath).Msg("config file unreadable")
            os.Exit(2)
        }
        app.ApplyFileConfig(&cfg, fc)
    }

    if cfg.Verbose {
        zerolog.SetGlobalLevel(zerolog.DebugLevel)
    } else {
        zerolog.SetGlobalLevel(zerolog.InfoLevel)
    }

    if err := app.ValidateConfig(cfg); err != nil {
        log.Error().Err(err).Msg("invalid configuration")
        os.Exit(2)
    }

    if err := run(cfg); err != nil {
        log.Error().Err(err).Msg("run failed")
        // Exit code policy: 2 when nothing could be compared, 1 for I/O
        // failures. Per-URL extraction failures are warnings, not errors.
        if errors.Is(err, app.ErrNoComparisons) {
            os.Exit(2)
        }
        os.Exit(1)
    }
}

func run(cfg app.Config) error {
    a, err := app.New(cfg)
    if err != nil {
        return fmt.Errorf("init app: %w", err)
    }
    return a.Run(context.Background())
}
