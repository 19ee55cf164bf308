package app

import (
    "os"
    "path/filepath"
    "testing"
    "time"
)

func writeTemp(t *testing.T, name, content string) string {
    t.Helper()
    path := filepath.Join(t.TempDir(), name)
    if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
        t.Fatalf("write temp: %v", err)
    }
    return path
}

func TestLoadConfigFile_YAML(t *testing.T) {
    path := writeTemp(t, "pricewatch.yaml", `
input: sheet.csv
output: out.csv
outputPDF: out.pdf
fetch:
  timeout: 5s
  perHostInterval: 500ms
price:
  min: 10
  max: 100000
cache:
  dir: .pw-cache
  maxAge: 24h
verbose: true
`)
    fc, err := LoadConfigFile(path)
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if fc.Input != "sheet.csv" || fc.OutputPDF != "out.pdf" {
        t.Fatalf("unexpected paths: %+v", fc)
    }
    if time.Duration(fc.Fetch.Timeout) != 5*time.Second {
        t.Fatalf("expected 5s timeout, got %v", time.Duration(fc.Fetch.Timeout))
    }
    if fc.Price.Min != 10 || fc.Price.Max != 100000 {
        t.Fatalf("unexpected price bounds: %+v", fc.Price)
    }
    if time.Duration(fc.Cache.MaxAge) != 24*time.Hour {
        t.Fatalf("expected 24h maxAge, got %v", time.Duration(fc.Cache.MaxAge))
    }
    if !fc.Verbose {
        t.Fatal("expected verbose")
    }
}

func TestLoadConfigFile_JSON(t *testing.T) {
    path := writeTemp(t, "pricewatch.json", `{"input":"a.csv","llm":{"model":"gpt-test"}}`)
    fc, err := LoadConfigFile(path)
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if fc.Input != "a.csv" || fc.LLM.Model != "gpt-test" {
        t.Fatalf("unexpected config: %+v", fc)
    }
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
    cfg := Config{
        InputPath:  "explicit.csv",
        OutputPath: "comparison.csv", // still at its flag default
        Timeout:    3 * time.Second,
    }
    var fc FileConfig
    fc.Input = "file.csv"
    fc.Output = "file-out.csv"
    fc.Fetch.Timeout = duration(9 * time.Second)
    fc.Price.Max = 50000

    ApplyFileConfig(&cfg, fc)

    if cfg.InputPath != "explicit.csv" {
        t.Fatalf("explicit flag overridden: %q", cfg.InputPath)
    }
    if cfg.OutputPath != "file-out.csv" {
        t.Fatalf("default not overlaid: %q", cfg.OutputPath)
    }
    if cfg.Timeout != 3*time.Second {
        t.Fatalf("explicit timeout overridden: %v", cfg.Timeout)
    }
    if cfg.MaxPrice != 50000 {
        t.Fatalf("file max price not applied: %v", cfg.MaxPrice)
    }
}

func TestValidateConfig(t *testing.T) {
    ok := Config{InputPath: "a.csv", OutputPath: "b.csv"}
    if err := ValidateConfig(ok); err != nil {
        t.Fatalf("expected valid config, got %v", err)
    }
    if err := ValidateConfig(Config{OutputPath: "b.csv"}); err == nil {
        t.Fatal("expected missing input error")
    }
    if err := ValidateConfig(Config{InputPath: "a", OutputPath: "b", MinPrice: 100, MaxPrice: 10}); err == nil {
        t.Fatal("expected inverted bounds error")
    }
}
