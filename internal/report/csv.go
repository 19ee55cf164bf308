package report

import (
    "encoding/csv"
    "fmt"
    "os"
    "strconv"

    "github.com/goldcore/pricewatch/internal/compare"
)

// header matches the column layout the comparison sheet has always used,
// so downstream spreadsheets keep working.
var header = []string{
    "Product",
    "GoldCore Price (£)",
    "Competitor Price (£)",
    "Difference (£)",
    "% Difference",
    "GoldCore URL",
    "Competitor URL",
}

// WriteCSV writes the comparison table. Rows with an absent competitor
// price leave the price and difference cells empty.
func WriteCSV(path string, rows []compare.Row) error {
    f, err := os.Create(path)
    if err != nil {
        return fmt.Errorf("create output: %w", err)
    }
    w := csv.NewWriter(f)
    if err := w.Write(header); err != nil {
        f.Close()
        return fmt.Errorf("write header: %w", err)
    }
    for _, r := range rows {
        if err := w.Write(record(r)); err != nil {
            f.Close()
            return fmt.Errorf("write row: %w", err)
        }
    }
    w.Flush()
    if err := w.Error(); err != nil {
        f.Close()
        return err
    }
    return f.Close()
}

func record(r compare.Row) []string {
    rec := []string{
        r.Product,
        formatAmount(r.ReferencePrice),
        "",
        "",
        "",
        r.ReferenceURL,
        r.CompetitorURL,
    }
    if r.CompetitorFound {
        rec[2] = formatAmount(r.CompetitorPrice)
        rec[3] = formatAmount(r.Difference)
        rec[4] = formatAmount(r.PercentDiff)
    }
    return rec
}

func formatAmount(v float64) string {
    return strconv.FormatFloat(v, 'f', 2, 64)
}
