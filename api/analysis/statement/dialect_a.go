package statement

import (
	"encoding/csv"
	"regexp"
	"strings"

	"ExtratoAnalytics/api/analysis/pipeline"
)

var dialectARowStart = regexp.MustCompile(`^\d{2}/\d{2}/\d{4};`)

// parseDialectA handles the semicolon-delimited layout whose data rows often
// arrive packed into one physical line, separated by carriage returns.
func parseDialectA(text string) ([]Transaction, error) {
	lines := strings.Split(text, "\n")
	headerIdx := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "data;lan") {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "dialect A header row not found")
	}

	// A header line longer than 100 chars carries the data itself; otherwise
	// the rows live on the following lines and get re-packed with CRs so a
	// single split below covers both layouts.
	payload := lines[headerIdx]
	if len(payload) <= 100 {
		payload = strings.Join(append([]string{payload}, lines[headerIdx+1:]...), "\r")
	}

	segments := strings.Split(payload, "\r")
	header := strings.TrimSpace(segments[0])
	kept := []string{header}
	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" || strings.HasPrefix(seg, "Total;") {
			continue
		}
		if strings.Contains(strings.ToUpper(seg), "SALDO ANTERIOR") {
			continue
		}
		if strings.Count(seg, ";") < 4 || !dialectARowStart.MatchString(seg) {
			continue
		}
		kept = append(kept, seg)
	}

	r := csv.NewReader(strings.NewReader(strings.Join(kept, "\n")))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "dialect A table unparseable: %v", err)
	}

	cols := mapDialectAColumns(records[0])
	txns := []Transaction{}
	for _, rec := range records[1:] {
		credit := pipeline.ParseAmount(cellAt(rec, cols.credit))
		debit := pipeline.ParseAmount(cellAt(rec, cols.debit))
		amount := debit
		direction := Debit
		if credit > 0 {
			amount = credit
			direction = Credit
		}
		description := strings.TrimSpace(cellAt(rec, cols.description))
		if description == "" || amount == 0 {
			continue
		}
		txns = append(txns, Transaction{
			Date:        newDate(pipeline.ParseDate(cellAt(rec, cols.date))),
			Description: description,
			Amount:      amount,
			Direction:   direction,
			Document:    strings.TrimSpace(cellAt(rec, cols.document)),
		})
	}
	return txns, nil
}

type dialectAColumns struct {
	date        int
	description int
	document    int
	credit      int
	debit       int
}

func mapDialectAColumns(header []string) dialectAColumns {
	cols := dialectAColumns{date: -1, description: -1, document: -1, credit: -1, debit: -1}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch {
		case cols.date < 0 && strings.Contains(name, "data"):
			cols.date = i
		case cols.description < 0 && (strings.Contains(name, "lançamento") || strings.Contains(name, "lancamento")):
			cols.description = i
		case cols.document < 0 && strings.Contains(name, "dcto"):
			cols.document = i
		case cols.credit < 0 && (strings.Contains(name, "crédito") || strings.Contains(name, "credito")):
			cols.credit = i
		case cols.debit < 0 && (strings.Contains(name, "débito") || strings.Contains(name, "debito")):
			cols.debit = i
		}
	}
	return cols
}

func cellAt(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}
