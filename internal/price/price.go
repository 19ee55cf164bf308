package price

import (
    "regexp"
    "strconv"
    "strings"

    "github.com/goldcore/pricewatch/internal/extract"
)

// amountPattern is the single definition of what counts as a price: the
// pound sign followed by a number with optional thousands separators and
// either zero or exactly two decimal digits, e.g. £45 or £1,234.56.
var amountPattern = regexp.MustCompile(`£\s*((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?)`)

// vatWindow is how many characters around an unstructured match are
// inspected for a VAT marker.
const vatWindow = 30

// Candidate is one detected amount plus its VAT-context flag.
type Candidate struct {
    Amount       float64
    HasVATMarker bool
}

// Result is the outcome of one extraction. Quantity is always at least 1;
// Price is meaningful only when Found is true.
type Result struct {
    Price    float64
    Found    bool
    Quantity int
}

// Options control candidate selection.
type Options struct {
    // PreferVAT picks the highest VAT-marked amount instead of the lowest
    // overall amount. Used for products where VAT materially changes the
    // comparison, e.g. silver.
    PreferVAT bool
    // MinPlausible and MaxPlausible, when non-zero, drop candidates
    // outside the range before selection. Both default to zero, i.e. no
    // bound, since legitimately expensive bullion listings exist.
    MinPlausible float64
    MaxPlausible float64
}

// Extract runs the dual-pass price scan and the quantity scan over a
// parsed page. When no candidate survives, the result is an absent price
// with quantity 1.
func Extract(page extract.Page, opts Options) Result {
    cands := filterPlausible(Candidates(page), opts)
    if len(cands) == 0 {
        return Result{Quantity: 1}
    }
    amount, _ := Select(cands, opts.PreferVAT)
    return Result{Price: amount, Found: true, Quantity: ExtractQuantity(page.Text)}
}

// Candidates emits one candidate per detected amount: first from every
// price-tagged element (VAT marker anywhere in the element's text), then
// from every match over the full page text (VAT marker within vatWindow
// characters of the match). Duplicates across the two passes are kept;
// selection is order-independent.
func Candidates(page extract.Page) []Candidate {
    var out []Candidate
    for _, tag := range page.PriceTags {
        m := amountPattern.FindStringSubmatch(tag)
        if m == nil {
            continue
        }
        amount, err := parseAmount(m[1])
        if err != nil {
            continue
        }
        out = append(out, Candidate{
            Amount:       amount,
            HasVATMarker: strings.Contains(strings.ToLower(tag), "vat"),
        })
    }

    text := page.Text
    lower := strings.ToLower(text)
    for _, loc := range amountPattern.FindAllStringSubmatchIndex(text, -1) {
        amount, err := parseAmount(text[loc[2]:loc[3]])
        if err != nil {
            continue
        }
        start := loc[0] - vatWindow
        if start < 0 {
            start = 0
        }
        end := loc[1] + vatWindow
        if end > len(text) {
            end = len(text)
        }
        out = append(out, Candidate{
            Amount:       amount,
            HasVATMarker: strings.Contains(lower[start:end], "vat"),
        })
    }
    return out
}

// Select applies the selection policy. With preferVAT, the maximum
// VAT-marked amount wins; if nothing carries a VAT marker the maximum of
// all candidates is used instead. Without preferVAT the minimum amount is
// taken as the conservative headline price.
func Select(cands []Candidate, preferVAT bool) (float64, bool) {
    if len(cands) == 0 {
        return 0, false
    }
    if preferVAT {
        var best float64
        found := false
        for _, c := range cands {
            if c.HasVATMarker && (!found || c.Amount > best) {
                best = c.Amount
                found = true
            }
        }
        if found {
            return best, true
        }
        best = cands[0].Amount
        for _, c := range cands[1:] {
            if c.Amount > best {
                best = c.Amount
            }
        }
        return best, true
    }
    min := cands[0].Amount
    for _, c := range cands[1:] {
        if c.Amount < min {
            min = c.Amount
        }
    }
    return min, true
}

// Amount returns the first well-formed pound amount in s. Used to validate
// free-form answers from the assist model against the same pattern that
// governs page scanning.
func Amount(s string) (float64, bool) {
    m := amountPattern.FindStringSubmatch(s)
    if m == nil {
        return 0, false
    }
    v, err := parseAmount(m[1])
    if err != nil {
        return 0, false
    }
    return v, true
}

func filterPlausible(cands []Candidate, opts Options) []Candidate {
    if opts.MinPlausible <= 0 && opts.MaxPlausible <= 0 {
        return cands
    }
    kept := cands[:0]
    for _, c := range cands {
        if opts.MinPlausible > 0 && c.Amount < opts.MinPlausible {
            continue
        }
        if opts.MaxPlausible > 0 && c.Amount > opts.MaxPlausible {
            continue
        }
        kept = append(kept, c)
    }
    return kept
}

func parseAmount(s string) (float64, error) {
    return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
