package report

import (
    "golang.org/x/text/language"
    "golang.org/x/text/message"
    "golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BritishEnglish)

// formatGBP renders an amount the way dealer sites list it: pound sign,
// thousands separators, two decimals.
func formatGBP(v float64) string {
    return printer.Sprintf("£%v", number.Decimal(v,
        number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
