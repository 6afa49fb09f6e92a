package procedures

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook renders the procedure report: a summary sheet plus one sheet
// per cross-cut, each group followed by its indented breakdown.
func BuildWorkbook(rep *Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if _, err := f.NewSheet("Resumo"); err != nil {
		return nil, err
	}
	summary := [][]interface{}{
		{"Total de procedimentos", rep.Statistics.TotalProcedures},
		{"Total de unidades", rep.Statistics.TotalUnits},
		{"Total de categorias", rep.Statistics.TotalCategories},
		{"Valor total", rep.Statistics.TotalAmount},
	}
	for i, row := range summary {
		if err := f.SetSheetRow("Resumo", fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, err
		}
	}

	cuts := []struct {
		sheet  string
		outer  string
		inner  string
		groups []Group
	}{
		{"Por Categoria", "Categoria", "Procedimento", rep.ByCategory},
		{"Por Procedimento", "Procedimento", "Unidade", rep.ByProcedure},
		{"Por Unidade", "Unidade", "Categoria", rep.ByUnit},
	}
	for _, c := range cuts {
		if err := writeCrossCutSheet(f, c.sheet, c.outer, c.inner, c.groups); err != nil {
			return nil, err
		}
	}

	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex("Resumo"); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

func writeCrossCutSheet(f *excelize.File, sheet, outer, inner string, groups []Group) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{outer, inner, "Total", "Quantidade", "Percentual"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	rowIdx := 2
	for _, g := range groups {
		row := []interface{}{g.Label, "", g.Total, g.Count, g.Percent}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowIdx), &row); err != nil {
			return err
		}
		rowIdx++
		for _, s := range g.Items {
			row := []interface{}{"", s.Label, s.Total, s.Count, ""}
			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowIdx), &row); err != nil {
				return err
			}
			rowIdx++
		}
	}
	return nil
}
