package price

import "math"

// PerUnit divides the total price by the pack quantity to give the
// per-unit price. A quantity below 1 is treated as 1, and a non-finite
// quotient falls back to the raw price rather than failing the caller.
// The second return is false when no price was found.
func (r Result) PerUnit() (float64, bool) {
    if !r.Found {
        return 0, false
    }
    qty := r.Quantity
    if qty < 1 {
        qty = 1
    }
    v := r.Price / float64(qty)
    if math.IsNaN(v) || math.IsInf(v, 0) {
        return r.Price, true
    }
    return v, true
}
