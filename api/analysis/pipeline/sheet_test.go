package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadTableXLSX(t *testing.T) {
	data := buildXLSX(t, [][]interface{}{
		{"Alimentação", "MERCADO"},
		{"", "PADARIA"},
	})
	rows, err := ReadTable("categorias.xlsx", data)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "Alimentação", rows[0][0])
	assert.Equal(t, "MERCADO", rows[0][1])
	assert.Equal(t, "PADARIA", rows[1][1])
}

func TestReadTableCSV(t *testing.T) {
	rows, err := ReadTable("categorias.csv", []byte("Alimentação,MERCADO\nTransporte,UBER\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Transporte", "UBER"}, rows[1])
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	_, err := ReadTable("statement.pdf", []byte("%PDF-1.4"))
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindMalformed, kind)
}

func TestReadTableCorruptXLSX(t *testing.T) {
	_, err := ReadTable("broken.xlsx", []byte("not a zip"))
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, KindMalformed, kind)
}
