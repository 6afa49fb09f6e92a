package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Grouped is one label's share of a cohort: summed total, item count, percent
// of the cohort, and the items themselves in their original order.
type Grouped[T any] struct {
	Label   string
	Total   float64
	Count   int
	Percent float64
	Items   []T
}

// GroupByLabel buckets items by label, sums their amounts with decimal
// arithmetic, computes the percent split, and sorts buckets by descending
// total. Item order inside a bucket preserves input order. An empty input
// yields an empty, non-nil slice.
func GroupByLabel[T any](items []T, label func(T) string, amount func(T) float64) []Grouped[T] {
	type acc struct {
		total decimal.Decimal
		items []T
	}
	order := []string{}
	byLabel := map[string]*acc{}
	for _, it := range items {
		l := label(it)
		a, ok := byLabel[l]
		if !ok {
			a = &acc{}
			byLabel[l] = a
			order = append(order, l)
		}
		a.total = a.total.Add(decimal.NewFromFloat(amount(it)))
		a.items = append(a.items, it)
	}

	denom := decimal.Zero
	for _, a := range byLabel {
		denom = denom.Add(a.total)
	}
	hundred := decimal.NewFromInt(100)

	out := make([]Grouped[T], 0, len(order))
	for _, l := range order {
		a := byLabel[l]
		percent := 0.0
		if denom.Sign() > 0 {
			percent = a.total.Mul(hundred).Div(denom).InexactFloat64()
		}
		out = append(out, Grouped[T]{
			Label:   l,
			Total:   a.total.InexactFloat64(),
			Count:   len(a.items),
			Percent: percent,
			Items:   a.items,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// SumAmounts totals a list of amounts without float drift.
func SumAmounts(amounts []float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.InexactFloat64()
}
