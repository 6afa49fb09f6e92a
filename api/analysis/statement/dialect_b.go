package statement

import (
	"encoding/csv"
	"strings"

	"ExtratoAnalytics/api/analysis/pipeline"
)

// parseDialectB handles the quoted comma-delimited layout. Two sub-variants
// exist: one with an explicit Descrição + Tipo (C/D) pair, one with a
// Historico column and signed values.
func parseDialectB(text string) ([]Transaction, error) {
	text = strings.NewReplacer("Histórico", "Historico", "Número", "Numero").Replace(text)

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "dialect B table unparseable: %v", err)
	}
	headerIdx := -1
	for i, rec := range records {
		if len(rec) > 1 {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "dialect B header row not found")
	}

	cols := mapDialectBColumns(records[headerIdx])
	rows := records[headerIdx+1:]
	switch {
	case cols.descricao >= 0:
		return parseDialectBTipo(rows, cols)
	case cols.historico >= 0:
		return parseDialectBHistorico(rows, cols)
	}
	return nil, pipeline.Errorf(pipeline.KindUnknownVariant, "dialect B sub-variant not recognized")
}

// Descrição + Tipo sub-variant: the side comes from the Tipo column.
func parseDialectBTipo(rows [][]string, cols dialectBColumns) ([]Transaction, error) {
	txns := []Transaction{}
	for _, rec := range rows {
		description := strings.TrimSpace(cellAt(rec, cols.descricao))
		rawValue := strings.TrimSpace(cellAt(rec, cols.value))
		if description == "" || rawValue == "" {
			continue
		}
		value, ok := pipeline.ParseSignedAmount(rawValue)
		if !ok {
			continue
		}
		amount := value
		if amount < 0 {
			amount = -amount
		}
		if amount == 0 {
			continue
		}
		direction := Debit
		if strings.EqualFold(strings.TrimSpace(cellAt(rec, cols.tipo)), "C") {
			direction = Credit
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

// Historico sub-variant: the side comes from the value's sign.
func parseDialectBHistorico(rows [][]string, cols dialectBColumns) ([]Transaction, error) {
	txns := []Transaction{}
	for _, rec := range rows {
		description := strings.TrimSpace(cellAt(rec, cols.historico))
		if description == "" || strings.EqualFold(description, "Saldo Anterior") {
			continue
		}
		value, ok := pipeline.ParseSignedAmount(strings.TrimSpace(cellAt(rec, cols.value)))
		if !ok {
			continue
		}
		direction := Credit
		amount := value
		if value < 0 {
			direction = Debit
			amount = -value
		}
		if amount == 0 {
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

type dialectBColumns struct {
	date      int
	descricao int
	historico int
	tipo      int
	value     int
	document  int
}

func mapDialectBColumns(header []string) dialectBColumns {
	cols := dialectBColumns{date: -1, descricao: -1, historico: -1, tipo: -1, value: -1, document: -1}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch {
		case cols.date < 0 && strings.Contains(name, "data") && !strings.Contains(name, "balancete"):
			cols.date = i
		case cols.descricao < 0 && (name == "descrição" || name == "descricao"):
			cols.descricao = i
		case cols.historico < 0 && name == "historico":
			cols.historico = i
		case cols.tipo < 0 && name == "tipo":
			cols.tipo = i
		case cols.value < 0 && strings.Contains(name, "valor"):
			cols.value = i
		case cols.document < 0 && (strings.Contains(name, "numero") || strings.Contains(name, "documento") || strings.Contains(name, "dcto")):
			cols.document = i
		}
	}
	return cols
}
