package app

import (
    "context"
    "encoding/csv"
    "errors"
    "fmt"
    "net/http"
    "net/http/httptest"
    "os"
    "path/filepath"
    "testing"
)

func productPage(body string) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "text/html")
        fmt.Fprintf(w, "<html><body>%s</body></html>", body)
    }
}

func TestRun_EndToEnd(t *testing.T) {
    mux := http.NewServeMux()
    mux.Handle("/goldcore/gold", productPage(`<span class="price">£1,900.00</span> 1oz Gold Britannia`))
    mux.Handle("/dealer/gold", productPage(`Tube of 10 coins <span class="price">£19,500.00</span>`))
    mux.Handle("/goldcore/silver", productPage(`<span class="price">£25.00</span>`))
    mux.Handle("/dealer/silver", productPage(`£26.00 ex VAT or £31.20 inc VAT`))
    mux.Handle("/dealer/broken", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, "down", http.StatusServiceUnavailable)
    }))
    srv := httptest.NewServer(mux)
    defer srv.Close()

    dir := t.TempDir()
    input := filepath.Join(dir, "products.csv")
    sheet := fmt.Sprintf("1oz Gold Britannia,1oz Silver Britannia\n"+
        "GoldCore,GoldCore\n"+
        "%s/goldcore/gold,%s/goldcore/silver\n"+
        "%s/dealer/gold,%s/dealer/silver\n"+
        "%s/dealer/broken,\n",
        srv.URL, srv.URL, srv.URL, srv.URL, srv.URL)
    if err := os.WriteFile(input, []byte(sheet), 0o644); err != nil {
        t.Fatalf("write input: %v", err)
    }

    output := filepath.Join(dir, "comparison.csv")
    a, err := New(Config{InputPath: input, OutputPath: output})
    if err != nil {
        t.Fatalf("new: %v", err)
    }
    if err := a.Run(context.Background()); err != nil {
        t.Fatalf("run: %v", err)
    }

    f, err := os.Open(output)
    if err != nil {
        t.Fatalf("open output: %v", err)
    }
    defer f.Close()
    records, err := csv.NewReader(f).ReadAll()
    if err != nil {
        t.Fatalf("read output: %v", err)
    }
    // Header + 2 gold competitor rows + 1 silver competitor row.
    if len(records) != 4 {
        t.Fatalf("expected 4 records, got %d: %v", len(records), records)
    }

    // Gold: dealer tube of 10 at £19,500 → £1,950 per coin vs £1,900.
    gold := records[1]
    if gold[1] != "1900.00" || gold[2] != "1950.00" || gold[3] != "50.00" {
        t.Fatalf("unexpected gold row: %v", gold)
    }

    // Broken dealer keeps its row with empty competitor cells.
    broken := records[2]
    if broken[2] != "" || broken[3] != "" {
        t.Fatalf("expected empty cells for failed fetch: %v", broken)
    }

    // Silver column prefers the VAT-inclusive figure.
    silver := records[3]
    if silver[1] != "25.00" || silver[2] != "31.20" {
        t.Fatalf("unexpected silver row: %v", silver)
    }
}

func TestRun_NoComparisons(t *testing.T) {
    srv := httptest.NewServer(productPage("no prices here"))
    defer srv.Close()

    dir := t.TempDir()
    input := filepath.Join(dir, "products.csv")
    sheet := fmt.Sprintf("Product\nGoldCore\n%s/a\n%s/b\n", srv.URL, srv.URL)
    if err := os.WriteFile(input, []byte(sheet), 0o644); err != nil {
        t.Fatalf("write input: %v", err)
    }

    a, err := New(Config{InputPath: input, OutputPath: filepath.Join(dir, "out.csv")})
    if err != nil {
        t.Fatalf("new: %v", err)
    }
    err = a.Run(context.Background())
    if !errors.Is(err, ErrNoComparisons) {
        t.Fatalf("expected ErrNoComparisons, got %v", err)
    }
}

func TestRun_UnreadableInput(t *testing.T) {
    a, err := New(Config{InputPath: "does-not-exist.csv", OutputPath: "out.csv"})
    if err != nil {
        t.Fatalf("new: %v", err)
    }
    if err := a.Run(context.Background()); err == nil {
        t.Fatal("expected error for missing input")
    }
}
