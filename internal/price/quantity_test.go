package price

import "testing"

func TestExtractQuantity(t *testing.T) {
    cases := []struct {
        name string
        text string
        want int
    }{
        {"packaging word", "Tube of 20 coins", 20},
        {"bare multiplier", "Buy now x5", 5},
        {"multiplier with space", "Britannia x 25 available", 25},
        {"no pattern", "1oz Gold Britannia", 1},
        {"count with unit word", "Includes 12 pieces per order", 12},
        {"pcs", "500g bar, 3pcs left", 3},
        {"out of range high", "Box of 1200 rounds", 1},
        {"out of range low", "Pack of 1", 1},
        {"four digit count not split", "Monster box 1000 coins special", 1},
        {"upper bound accepted", "Pack of 999", 999},
        {"case insensitive", "MONSTER BOX OF 500", 500},
        {"empty", "", 1},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if got := ExtractQuantity(tc.text); got != tc.want {
                t.Fatalf("ExtractQuantity(%q) = %d, want %d", tc.text, got, tc.want)
            }
        })
    }
}

func TestExtractQuantity_PriorityOrder(t *testing.T) {
    // Bare count and packaging patterns disagree; the bare count wins.
    got := ExtractQuantity("Tube of 20 holds 19 coins")
    if got != 19 {
        t.Fatalf("expected bare-count pattern to take priority, got %d", got)
    }
}

func TestExtractQuantity_OutOfRangeFallsThrough(t *testing.T) {
    // 1200 is four digits, so neither count pattern can match it; the
    // multiplier pattern still yields a usable quantity.
    got := ExtractQuantity("Bundle of 1200 rounds, order x10 today")
    if got != 10 {
        t.Fatalf("expected fallthrough to multiplier pattern, got %d", got)
    }
}
