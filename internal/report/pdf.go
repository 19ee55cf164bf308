package report

import (
    "github.com/jung-kurt/gofpdf"

    "github.com/goldcore/pricewatch/internal/compare"
)

// WritePDF renders the comparison table as a simple landscape PDF, one row
// per competitor listing. Layout is intentionally minimal: a bold header
// band and fixed column widths sized for A4 landscape.
func WritePDF(path string, rows []compare.Row) error {
    pdf := gofpdf.New("L", "mm", "A4", "")
    // Core fonts are cp1252; translate so the pound sign renders.
    tr := pdf.UnicodeTranslatorFromDescriptor("")
    pdf.SetFont("Helvetica", "B", 14)
    pdf.AddPage()
    pdf.CellFormat(0, 10, "GoldCore vs Competitors - Per-Unit Price Comparison", "", 1, "L", false, 0, "")

    widths := []float64{70, 30, 30, 28, 25, 47, 47}
    headers := []string{"Product", "GoldCore", "Competitor", "Difference", "% Diff", "GoldCore URL", "Competitor URL"}

    pdf.SetFont("Helvetica", "B", 9)
    pdf.SetFillColor(230, 230, 230)
    for i, h := range headers {
        pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
    }
    pdf.Ln(-1)

    pdf.SetFont("Helvetica", "", 8)
    for _, r := range rows {
        comp, diff, pct := "-", "-", "-"
        if r.CompetitorFound {
            comp = formatGBP(r.CompetitorPrice)
            diff = formatGBP(r.Difference)
            pct = formatAmount(r.PercentDiff) + "%"
        }
        cells := []string{
            clip(r.Product, 45),
            formatGBP(r.ReferencePrice),
            comp,
            diff,
            pct,
            clip(r.ReferenceURL, 32),
            clip(r.CompetitorURL, 32),
        }
        for i, cell := range cells {
            pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, "L", false, 0, "")
        }
        pdf.Ln(-1)
    }

    return pdf.OutputFileAndClose(path)
}

func clip(s string, max int) string {
    if len(s) <= max {
        return s
    }
    return s[:max-1] + "…"
}
