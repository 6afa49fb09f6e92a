package procedures

import (
	"ExtratoAnalytics/api/analysis/pipeline"
)

// Hard-wired matching exceptions carried over from the category list's real
// world usage: vitamin dosages show up as B12, and CONSULTAS must catch the
// singular CONSULTA.
var categoryAliases = map[string][]string{
	"VITAMINA":  {"B12"},
	"CONSULTAS": {"CONSULTA"},
}

// Analyze runs the procedure pipeline: load the positional sheet, categorize
// each procedure against the flat category list, and build the three
// cross-cuts.
func Analyze(procedureRows [][]string, categories []string) (*Report, error) {
	procs, err := LoadProcedures(procedureRows)
	if err != nil {
		return nil, err
	}
	if len(procs) == 0 {
		return nil, pipeline.Errorf(pipeline.KindNoValidRows, "no procedure rows survived parsing")
	}

	km := pipeline.FromCategories(categories)
	opts := pipeline.MatchOptions{Aliases: categoryAliases}
	for i := range procs {
		procs[i].Category = km.Categorize(procs[i].Procedure, opts)
	}
	return buildReport(procs), nil
}

func buildReport(procs []Procedure) *Report {
	amounts := make([]float64, len(procs))
	for i, p := range procs {
		amounts[i] = p.Amount
	}
	byUnit := crossCut(procs, unitOf, categoryOf)
	byCategory := crossCut(procs, categoryOf, procedureOf)
	return &Report{
		Statistics: Statistics{
			TotalProcedures: len(procs),
			TotalUnits:      len(byUnit),
			TotalCategories: len(byCategory),
			TotalAmount:     pipeline.SumAmounts(amounts),
		},
		ByCategory:  byCategory,
		ByProcedure: crossCut(procs, procedureOf, unitOf),
		ByUnit:      byUnit,
	}
}

func unitOf(p Procedure) string      { return p.Unit }
func categoryOf(p Procedure) string  { return p.Category }
func procedureOf(p Procedure) string { return p.Procedure }
func amountOf(p Procedure) float64   { return p.Amount }

// crossCut groups by the outer label and breaks each group down by the inner
// label, both sorted by descending total.
func crossCut(procs []Procedure, outer, inner func(Procedure) string) []Group {
	groups := pipeline.GroupByLabel(procs, outer, amountOf)
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		nested := pipeline.GroupByLabel(g.Items, inner, amountOf)
		items := make([]SubTotal, 0, len(nested))
		for _, n := range nested {
			items = append(items, SubTotal{Label: n.Label, Total: n.Total, Count: n.Count})
		}
		out = append(out, Group{
			Label:   g.Label,
			Total:   g.Total,
			Count:   g.Count,
			Percent: g.Percent,
			Items:   items,
		})
	}
	return out
}
