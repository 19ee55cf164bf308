package price

import (
    "regexp"
    "strconv"
)

// quantityPatterns are tried in priority order: a bare count followed by a
// unit word, a packaging word near a count, then the bare multiplier form.
// The trailing (?:\D|$) stops a longer digit run from being split into an
// in-range prefix, so "Box of 1200" matches nothing rather than 120.
var quantityPatterns = []*regexp.Regexp{
    regexp.MustCompile(`(?i)(?:^|\D)(\d{1,3})\s*(?:coins?|pcs|pieces?|units?)`),
    regexp.MustCompile(`(?i)(?:pack|tube|box|monster box|roll)[^\d]{0,10}(\d{1,3})(?:\D|$)`),
    regexp.MustCompile(`(?i)x\s?(\d{1,3})(?:\D|$)`),
}

// ExtractQuantity returns the pack size mentioned in text, defaulting to 1.
// A single-item listing normally carries no quantity token at all, so a
// matched value is accepted only when strictly between 1 and 1000;
// out-of-range matches fall through to the next pattern.
func ExtractQuantity(text string) int {
    for _, pat := range quantityPatterns {
        m := pat.FindStringSubmatch(text)
        if m == nil {
            continue
        }
        qty, err := strconv.Atoi(m[1])
        if err != nil || qty <= 1 || qty >= 1000 {
            continue
        }
        return qty
    }
    return 1
}
