package procedures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ExtratoAnalytics/api/analysis/pipeline"
)

// procRow lays out a positional sheet row: unit at 0, procedure at 5,
// amount at 10.
func procRow(unit, procedure, amount string) []string {
	row := make([]string, minColumns)
	row[unitCol] = unit
	row[procedureCol] = procedure
	row[amountCol] = amount
	return row
}

func headerRow() []string {
	row := make([]string, minColumns)
	row[unitCol] = "Unidade"
	row[procedureCol] = "Procedimento"
	row[amountCol] = "Valor"
	return row
}

func TestLoadProceduresHeaderScan(t *testing.T) {
	rows := [][]string{
		procRow("", "Relatório de produção", ""),
		headerRow(),
		procRow("Matriz", "Hemograma", "50,00"),
		procRow("Filial", "Raio-X", "120,00"),
	}

	procs, err := LoadProcedures(rows)
	require.NoError(t, err)
	require.Len(t, procs, 2)
	assert.Equal(t, "Matriz", procs[0].Unit)
	assert.Equal(t, "Hemograma", procs[0].Procedure)
	assert.InDelta(t, 50.0, procs[0].Amount, 1e-9)
}

func TestLoadProceduresPositionalFallback(t *testing.T) {
	// no cell mentions "unidade": header is assumed at row index 2
	rows := [][]string{
		procRow("", "Título", ""),
		procRow("", "", ""),
		procRow("Col A", "Col F", "Col K"),
		procRow("Matriz", "Hemograma", "50,00"),
	}

	procs, err := LoadProcedures(rows)
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, "Hemograma", procs[0].Procedure)
}

func TestLoadProceduresTooNarrow(t *testing.T) {
	_, err := LoadProcedures([][]string{{"a", "b", "c"}})
	require.Error(t, err)
	kind, ok := pipeline.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, pipeline.KindInputShape, kind)
}

func TestLoadProceduresNoRowsAfterHeader(t *testing.T) {
	_, err := LoadProcedures([][]string{headerRow()})
	require.Error(t, err)
	kind, ok := pipeline.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, pipeline.KindMalformed, kind)
}

func TestLoadProceduresRowFilters(t *testing.T) {
	rows := [][]string{
		headerRow(),
		procRow("Matriz", "", "50,00"),      // empty procedure
		procRow("Matriz", "Hemograma", ""),  // empty amount
		procRow("Matriz", "Hemograma", "0"), // non-positive amount
		procRow("", "Hemograma", "50,00"),   // empty unit gets the fallback
	}

	procs, err := LoadProcedures(rows)
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, "Não informado", procs[0].Unit)
}

func TestLoadCategories(t *testing.T) {
	rows := [][]string{
		{"Consultas"},
		{"  Exames  ", "ignored"},
		{""},
		{},
		{"Vitamina"},
	}
	assert.Equal(t, []string{"Consultas", "Exames", "Vitamina"}, LoadCategories(rows))
}

func TestAnalyzeCrossCuts(t *testing.T) {
	rows := [][]string{
		headerRow(),
		procRow("Matriz", "Hemograma completo", "50,00"),
		procRow("Matriz", "Exame de urina", "30,00"),
		procRow("Filial", "Hemograma completo", "50,00"),
		procRow("Filial", "Consulta cardiológica", "200,00"),
	}
	categories := []string{"Hemograma", "Exame", "Consultas"}

	rep, err := Analyze(rows, categories)
	require.NoError(t, err)

	assert.Equal(t, 4, rep.Statistics.TotalProcedures)
	assert.Equal(t, 2, rep.Statistics.TotalUnits)
	assert.Equal(t, 3, rep.Statistics.TotalCategories)
	assert.InDelta(t, 330.0, rep.Statistics.TotalAmount, 1e-9)

	// by_category: outer groups ordered by descending total, inner items
	// break each category down by procedure
	require.NotEmpty(t, rep.ByCategory)
	assert.Equal(t, "Consultas", rep.ByCategory[0].Label)
	assert.InDelta(t, 200.0, rep.ByCategory[0].Total, 1e-9)
	prev := rep.ByCategory[0].Total
	for _, g := range rep.ByCategory[1:] {
		assert.LessOrEqual(t, g.Total, prev)
		prev = g.Total
	}

	var hemograma *Group
	for i := range rep.ByCategory {
		if rep.ByCategory[i].Label == "Hemograma" {
			hemograma = &rep.ByCategory[i]
		}
	}
	require.NotNil(t, hemograma)
	assert.Equal(t, 2, hemograma.Count)
	require.Len(t, hemograma.Items, 1)
	assert.Equal(t, "Hemograma completo", hemograma.Items[0].Label)
	assert.Equal(t, 2, hemograma.Items[0].Count)

	// by_unit breaks each unit down by category
	var filial *Group
	for i := range rep.ByUnit {
		if rep.ByUnit[i].Label == "Filial" {
			filial = &rep.ByUnit[i]
		}
	}
	require.NotNil(t, filial)
	assert.InDelta(t, 250.0, filial.Total, 1e-9)
	assert.Len(t, filial.Items, 2)

	// percents over the outer groups sum to 100
	sum := 0.0
	for _, g := range rep.ByUnit {
		sum += g.Percent
	}
	assert.InDelta(t, 100.0, sum, 1e-6)
}

func TestAnalyzeConsultaAlias(t *testing.T) {
	rows := [][]string{
		headerRow(),
		procRow("Matriz", "Consulta cardiológica", "200,00"),
	}
	// CARDIO matches by substring, but the CONSULTAS alias rule rides on a
	// longer keyword and must win
	rep, err := Analyze(rows, []string{"Cardio", "Consultas"})
	require.NoError(t, err)
	require.Len(t, rep.ByCategory, 1)
	assert.Equal(t, "Consultas", rep.ByCategory[0].Label)
}

func TestAnalyzeVitaminaAlias(t *testing.T) {
	rows := [][]string{
		headerRow(),
		procRow("Matriz", "Dosagem de B12", "80,00"),
	}
	rep, err := Analyze(rows, []string{"Vitamina"})
	require.NoError(t, err)
	require.Len(t, rep.ByCategory, 1)
	assert.Equal(t, "Vitamina", rep.ByCategory[0].Label)
}

func TestAnalyzeUnmatchedFallsBack(t *testing.T) {
	rows := [][]string{
		headerRow(),
		procRow("Matriz", "Procedimento obscuro", "10,00"),
	}
	rep, err := Analyze(rows, []string{"Consultas"})
	require.NoError(t, err)
	require.Len(t, rep.ByCategory, 1)
	assert.Equal(t, "Outros", rep.ByCategory[0].Label)
}

func TestAnalyzeNoValidRows(t *testing.T) {
	rows := [][]string{
		headerRow(),
		procRow("Matriz", "", ""),
	}
	_, err := Analyze(rows, []string{"Consultas"})
	require.Error(t, err)
	kind, ok := pipeline.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, pipeline.KindNoValidRows, kind)
}

func TestBuildWorkbook(t *testing.T) {
	rows := [][]string{
		headerRow(),
		procRow("Matriz", "Hemograma completo", "50,00"),
		procRow("Filial", "Consulta cardiológica", "200,00"),
	}
	rep, err := Analyze(rows, []string{"Hemograma", "Consultas"})
	require.NoError(t, err)

	wb, err := BuildWorkbook(rep)
	require.NoError(t, err)
	defer wb.Close()

	for _, sheet := range []string{"Resumo", "Por Categoria", "Por Procedimento", "Por Unidade"} {
		idx, err := wb.GetSheetIndex(sheet)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0, sheet)
	}

	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}
