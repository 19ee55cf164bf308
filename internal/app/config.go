package app

import "time"

// Config holds runtime configuration for one comparison run.
type Config struct {
    InputPath      string
    OutputPath     string
    OutputXLSXPath string
    OutputPDFPath  string

    // Fetching
    UserAgent       string
    Timeout         time.Duration
    PerHostInterval time.Duration

    // Price plausibility bounds; zero disables a bound. Kept optional
    // because legitimately expensive bullion listings exist.
    MinPrice float64
    MaxPrice float64

    // Optional LLM assist; inactive unless Model is set.
    LLMBaseURL string
    LLMModel   string
    LLMAPIKey  string

    // Cache; inactive unless Dir is set, so repeat URLs re-fetch.
    CacheDir    string
    CacheMaxAge time.Duration
    CacheClear  bool

    Verbose bool
}
