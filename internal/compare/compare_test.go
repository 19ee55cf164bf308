package compare

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestNewRow_ComputesDifferences(t *testing.T) {
    r := NewRow("1oz Gold Britannia", 1900, 1957.333, true,
        "https://goldcore.example/g", "https://dealer.example/g")

    assert.Equal(t, 57.33, r.Difference)
    assert.Equal(t, 3.02, r.PercentDiff)
    assert.True(t, r.CompetitorFound)
}

func TestNewRow_CompetitorCheaper(t *testing.T) {
    r := NewRow("Sovereign", 450, 441.25, true, "", "")

    assert.Equal(t, -8.75, r.Difference)
    assert.Equal(t, -1.94, r.PercentDiff)
}

func TestNewRow_AbsentCompetitorPrice(t *testing.T) {
    r := NewRow("Sovereign", 450, 0, false, "", "")

    assert.False(t, r.CompetitorFound)
    assert.Zero(t, r.Difference)
    assert.Zero(t, r.PercentDiff)
}

func TestNewRow_ZeroReferenceLeavesPercentUnset(t *testing.T) {
    r := NewRow("Sovereign", 0, 100, true, "", "")

    assert.Zero(t, r.PercentDiff)
}
