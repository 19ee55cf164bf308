package compare

import "math"

// Row is one reference-vs-competitor comparison on a per-unit basis. When
// the competitor price could not be extracted, CompetitorFound is false
// and the difference fields are not meaningful.
type Row struct {
    Product         string
    ReferencePrice  float64
    CompetitorPrice float64
    CompetitorFound bool
    Difference      float64
    PercentDiff     float64
    ReferenceURL    string
    CompetitorURL   string
}

// NewRow builds a comparison row. Differences are rounded to two decimals;
// the percentage difference is relative to the reference price.
func NewRow(product string, refPrice float64, compPrice float64, compFound bool, refURL, compURL string) Row {
    r := Row{
        Product:         product,
        ReferencePrice:  refPrice,
        CompetitorPrice: compPrice,
        CompetitorFound: compFound,
        ReferenceURL:    refURL,
        CompetitorURL:   compURL,
    }
    if compFound && refPrice != 0 {
        r.Difference = round2(compPrice - refPrice)
        r.PercentDiff = round2((compPrice - refPrice) / refPrice * 100)
    }
    return r
}

func round2(v float64) float64 {
    return math.Round(v*100) / 100
}
