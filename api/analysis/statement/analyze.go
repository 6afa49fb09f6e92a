package statement

import (
	"ExtratoAnalytics/api/analysis/pipeline"
)

// Options tune the statement analysis.
type Options struct {
	// WholeWordMaxLen applies word-boundary matching to keywords of at most
	// this length. Zero (the default) keeps plain substring matching.
	WholeWordMaxLen int
}

// Analyze runs the full statement pipeline: decode, detect the dialect, parse
// into canonical transactions, categorize by keyword, and aggregate the three
// cohorts.
func Analyze(statementBytes []byte, keywords *pipeline.KeywordMap, opts Options) (*Report, error) {
	text, err := pipeline.DecodeText(statementBytes)
	if err != nil {
		return nil, err
	}

	var txns []Transaction
	switch Detect(text) {
	case DialectA:
		txns, err = parseDialectA(text)
	case DialectB:
		txns, err = parseDialectB(text)
	default:
		return nil, pipeline.Errorf(pipeline.KindUnknownVariant, "statement layout not recognized")
	}
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, pipeline.Errorf(pipeline.KindNoValidRows, "no transaction rows survived parsing")
	}

	matchOpts := pipeline.MatchOptions{WholeWordMaxLen: opts.WholeWordMaxLen}
	categorized := make([]CategorizedTransaction, 0, len(txns))
	for _, t := range txns {
		categorized = append(categorized, CategorizedTransaction{
			Transaction: t,
			Category:    keywords.Categorize(t.Description, matchOpts),
		})
	}
	return buildReport(categorized), nil
}

func buildReport(items []CategorizedTransaction) *Report {
	credits := []CategorizedTransaction{}
	debits := []CategorizedTransaction{}
	amounts := make([]float64, 0, len(items))
	creditAmounts := []float64{}
	debitAmounts := []float64{}
	for _, it := range items {
		amounts = append(amounts, it.Amount)
		if it.Direction == Credit {
			credits = append(credits, it)
			creditAmounts = append(creditAmounts, it.Amount)
		} else {
			debits = append(debits, it)
			debitAmounts = append(debitAmounts, it.Amount)
		}
	}
	return &Report{
		Statistics: Statistics{
			TotalTransactions:  len(items),
			TotalCredits:       len(credits),
			TotalDebits:        len(debits),
			TotalAmount:        pipeline.SumAmounts(amounts),
			TotalAmountCredits: pipeline.SumAmounts(creditAmounts),
			TotalAmountDebits:  pipeline.SumAmounts(debitAmounts),
		},
		CategoriesAll:     buckets(items),
		CategoriesCredits: buckets(credits),
		CategoriesDebits:  buckets(debits),
	}
}

func buckets(items []CategorizedTransaction) []Bucket {
	groups := pipeline.GroupByLabel(items,
		func(t CategorizedTransaction) string { return t.Category },
		func(t CategorizedTransaction) float64 { return t.Amount },
	)
	out := make([]Bucket, 0, len(groups))
	for _, g := range groups {
		out = append(out, Bucket{
			Category: g.Label,
			Total:    g.Total,
			Count:    g.Count,
			Percent:  g.Percent,
			Items:    g.Items,
		})
	}
	return out
}
