package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    yaml "gopkg.in/yaml.v3"
)

// duration accepts "5s"/"24h" strings as well as bare nanosecond numbers
// in both YAML and JSON.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
    var s string
    if err := value.Decode(&s); err == nil {
        parsed, perr := time.ParseDuration(s)
        if perr != nil {
            return fmt.Errorf("parse duration %q: %w", s, perr)
        }
        *d = duration(parsed)
        return nil
    }
    var n int64
    if err := value.Decode(&n); err != nil {
        return err
    }
    *d = duration(n)
    return nil
}

func (d *duration) UnmarshalJSON(b []byte) error {
    var s string
    if err := json.Unmarshal(b, &s); err == nil {
        parsed, perr := time.ParseDuration(s)
        if perr != nil {
            return fmt.Errorf("parse duration %q: %w", s, perr)
        }
        *d = duration(parsed)
        return nil
    }
    var n int64
    if err := json.Unmarshal(b, &n); err != nil {
        return err
    }
    *d = duration(n)
    return nil
}

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to the flag names.
type FileConfig struct {
    Input      string `yaml:"input" json:"input"`
    Output     string `yaml:"output" json:"output"`
    OutputXLSX string `yaml:"outputXLSX" json:"outputXLSX"`
    OutputPDF  string `yaml:"outputPDF" json:"outputPDF"`

    Fetch struct {
        UA              string   `yaml:"ua" json:"ua"`
        Timeout         duration `yaml:"timeout" json:"timeout"`
        PerHostInterval duration `yaml:"perHostInterval" json:"perHostInterval"`
    } `yaml:"fetch" json:"fetch"`

    Price struct {
        Min float64 `yaml:"min" json:"min"`
        Max float64 `yaml:"max" json:"max"`
    } `yaml:"price" json:"price"`

    LLM struct {
        BaseURL string `yaml:"base" json:"base"`
        Model   string `yaml:"model" json:"model"`
        APIKey  string `yaml:"key" json:"key"`
    } `yaml:"llm" json:"llm"`

    Cache struct {
        Dir    string   `yaml:"dir" json:"dir"`
        MaxAge duration `yaml:"maxAge" json:"maxAge"`
        Clear  bool     `yaml:"clear" json:"clear"`
    } `yaml:"cache" json:"cache"`

    Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch filepath.Ext(path) {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields that
// are currently unset or still at their flag defaults, so explicit flags
// always win over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil {
        return
    }
    const (
        inputDefault   = "products.csv"
        outputDefault  = "comparison.csv"
        timeoutDefault = 10 * time.Second
    )

    if (cfg.InputPath == "" || cfg.InputPath == inputDefault) && fc.Input != "" {
        cfg.InputPath = fc.Input
    }
    if (cfg.OutputPath == "" || cfg.OutputPath == outputDefault) && fc.Output != "" {
        cfg.OutputPath = fc.Output
    }
    if cfg.OutputXLSXPath == "" && fc.OutputXLSX != "" {
        cfg.OutputXLSXPath = fc.OutputXLSX
    }
    if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
        cfg.OutputPDFPath = fc.OutputPDF
    }

    if cfg.UserAgent == "" && fc.Fetch.UA != "" {
        cfg.UserAgent = fc.Fetch.UA
    }
    if (cfg.Timeout == 0 || cfg.Timeout == timeoutDefault) && fc.Fetch.Timeout > 0 {
        cfg.Timeout = time.Duration(fc.Fetch.Timeout)
    }
    if cfg.PerHostInterval == 0 && fc.Fetch.PerHostInterval > 0 {
        cfg.PerHostInterval = time.Duration(fc.Fetch.PerHostInterval)
    }

    if cfg.MinPrice == 0 && fc.Price.Min > 0 {
        cfg.MinPrice = fc.Price.Min
    }
    if cfg.MaxPrice == 0 && fc.Price.Max > 0 {
        cfg.MaxPrice = fc.Price.Max
    }

    if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
        cfg.LLMBaseURL = fc.LLM.BaseURL
    }
    if cfg.LLMModel == "" && fc.LLM.Model != "" {
        cfg.LLMModel = fc.LLM.Model
    }
    if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
        cfg.LLMAPIKey = fc.LLM.APIKey
    }

    if cfg.CacheDir == "" && fc.Cache.Dir != "" {
        cfg.CacheDir = fc.Cache.Dir
    }
    if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
        cfg.CacheMaxAge = time.Duration(fc.Cache.MaxAge)
    }
    if !cfg.CacheClear && fc.Cache.Clear {
        cfg.CacheClear = true
    }

    if !cfg.Verbose && fc.Verbose {
        cfg.Verbose = true
    }
}

// ValidateConfig performs minimal schema validation.
func ValidateConfig(cfg Config) error {
    if strings.TrimSpace(cfg.InputPath) == "" {
        return errors.New("config: input path is required")
    }
    if strings.TrimSpace(cfg.OutputPath) == "" {
        return errors.New("config: output path is required")
    }
    if cfg.MinPrice < 0 || cfg.MaxPrice < 0 {
        return errors.New("config: negative price bounds are not allowed")
    }
    if cfg.MinPrice > 0 && cfg.MaxPrice > 0 && cfg.MinPrice > cfg.MaxPrice {
        return errors.New("config: price.min exceeds price.max")
    }
    if cfg.Timeout < 0 || cfg.PerHostInterval < 0 {
        return errors.New("config: negative durations are not allowed")
    }
    return nil
}
