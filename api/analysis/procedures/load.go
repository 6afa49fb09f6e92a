package procedures

import (
	"strings"

	"ExtratoAnalytics/api/analysis/pipeline"
	"ExtratoAnalytics/api/constants"
)

// Positional layout of the procedure sheet.
const (
	unitCol      = 0
	procedureCol = 5
	amountCol    = 10
	minColumns   = 11
)

// LoadProcedures reads the procedure sheet. The header row is found by
// scanning the first five rows for a cell mentioning "unidade"; when the scan
// fails, row index 2 is assumed. Columns are positional: 0 → unit, 5 →
// procedure, 10 → amount.
func LoadProcedures(rows [][]string) ([]Procedure, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width < minColumns {
		return nil, pipeline.Errorf(pipeline.KindInputShape, "procedure sheet needs at least %d columns, got %d", minColumns, width)
	}

	headerIdx := 2
	scan := len(rows)
	if scan > 5 {
		scan = 5
	}
scanLoop:
	for i := 0; i < scan; i++ {
		for _, cell := range rows[i] {
			if strings.Contains(strings.ToLower(strings.TrimSpace(cell)), "unidade") {
				headerIdx = i
				break scanLoop
			}
		}
	}
	if headerIdx+1 >= len(rows) {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "procedure sheet has no rows after the header")
	}

	procs := []Procedure{}
	for _, row := range rows[headerIdx+1:] {
		rawProc := cellAt(row, procedureCol)
		rawAmount := cellAt(row, amountCol)
		if strings.TrimSpace(rawProc) == "" || strings.TrimSpace(rawAmount) == "" {
			continue
		}
		amount := pipeline.ParseAmount(rawAmount)
		if amount <= 0 {
			continue
		}
		unit := strings.TrimSpace(cellAt(row, unitCol))
		if unit == "" {
			unit = constants.UnitFallback
		}
		procs = append(procs, Procedure{
			Unit:      unit,
			Procedure: strings.TrimSpace(rawProc),
			Amount:    amount,
		})
	}
	return procs, nil
}

// LoadCategories flattens the category sheet's first column into the category
// list used for matching.
func LoadCategories(rows [][]string) []string {
	out := []string{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if label := strings.TrimSpace(row[0]); label != "" {
			out = append(out, label)
		}
	}
	return out
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
