package statement

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook renders a report into a downloadable workbook: a summary
// sheet, one sheet per cohort, and the full transaction list.
func BuildWorkbook(rep *Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, rep.Statistics); err != nil {
		return nil, err
	}
	cohorts := []struct {
		sheet   string
		buckets []Bucket
	}{
		{"Categorias", rep.CategoriesAll},
		{"Créditos", rep.CategoriesCredits},
		{"Débitos", rep.CategoriesDebits},
	}
	for _, c := range cohorts {
		if err := writeCohortSheet(f, c.sheet, c.buckets); err != nil {
			return nil, err
		}
	}
	if err := writeTransactionsSheet(f, rep.CategoriesAll); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex("Resumo"); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, s Statistics) error {
	if _, err := f.NewSheet("Resumo"); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Total de transações", s.TotalTransactions},
		{"Total de créditos", s.TotalCredits},
		{"Total de débitos", s.TotalDebits},
		{"Valor total", s.TotalAmount},
		{"Valor total de créditos", s.TotalAmountCredits},
		{"Valor total de débitos", s.TotalAmountDebits},
	}
	for i, row := range rows {
		if err := f.SetSheetRow("Resumo", fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeCohortSheet(f *excelize.File, sheet string, bs []Bucket) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Categoria", "Total", "Quantidade", "Percentual"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, b := range bs {
		row := []interface{}{b.Category, b.Total, b.Count, b.Percent}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeTransactionsSheet(f *excelize.File, all []Bucket) error {
	const sheet = "Transações"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Data", "Lançamento", "Documento", "Tipo", "Valor", "Categoria"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	rowIdx := 2
	for _, b := range all {
		for _, t := range b.Items {
			row := []interface{}{t.Date.Label(), t.Description, t.Document, string(t.Direction), t.Amount, t.Category}
			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowIdx), &row); err != nil {
				return err
			}
			rowIdx++
		}
	}
	return nil
}
