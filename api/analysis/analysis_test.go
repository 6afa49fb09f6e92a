package analysis

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ExtratoAnalytics/api/constants"
)

const statementCSV = `"Data","Histórico","Valor"
"12/05/2024","Salário","5000"
"13/05/2024","Mercado","-250.50"
`

const categoriesCSV = `Renda,SALÁRIO
Alimentação,MERCADO
`

const proceduresCSV = `Unidade,,,,,Procedimento,,,,,Valor
Matriz,,,,,Hemograma completo,,,,,50.00
Filial,,,,,Consulta cardiológica,,,,,200.00
`

const procedureCategoriesCSV = `Hemograma
Consultas
`

func multipartBody(t *testing.T, files map[string]string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for field, content := range files {
		fw, err := mw.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for field, value := range fields {
		require.NoError(t, mw.WriteField(field, value))
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func postMultipart(t *testing.T, path string, files map[string]string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, files, fields)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set(constants.ContentTypeHeader, contentType)
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/analysis/health", nil)
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestAnalyzeStatementEndpoint(t *testing.T) {
	rec := postMultipart(t, "/analysis/statement", map[string]string{
		"statement":  statementCSV,
		"categories": categoriesCSV,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, constants.ContentTypeJSON, rec.Header().Get(constants.ContentTypeHeader))

	var envelope struct {
		Success bool   `json:"success"`
		BatchID string `json:"batch_id"`
		Data    struct {
			Statistics struct {
				TotalTransactions int     `json:"total_transactions"`
				TotalCredits      int     `json:"total_credits"`
				TotalDebits       int     `json:"total_debits"`
				TotalAmount       float64 `json:"total_amount"`
			} `json:"statistics"`
			CategoriesAll []struct {
				Category string  `json:"category"`
				Percent  float64 `json:"percent"`
			} `json:"categories_all"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.BatchID)
	assert.Equal(t, 2, envelope.Data.Statistics.TotalTransactions)
	assert.Equal(t, 1, envelope.Data.Statistics.TotalCredits)
	assert.Equal(t, 1, envelope.Data.Statistics.TotalDebits)
	assert.InDelta(t, 5250.50, envelope.Data.Statistics.TotalAmount, 1e-9)
	assert.Len(t, envelope.Data.CategoriesAll, 2)
}

func TestAnalyzeStatementMissingFile(t *testing.T) {
	rec := postMultipart(t, "/analysis/statement", map[string]string{
		"categories": categoriesCSV,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Error, "statement")
}

func TestAnalyzeStatementUnrecognizedLayout(t *testing.T) {
	rec := postMultipart(t, "/analysis/statement", map[string]string{
		"statement":  "nothing resembling a statement\n",
		"categories": categoriesCSV,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeStatementWholeWordToggle(t *testing.T) {
	stmt := `"Data","Histórico","Valor"
"12/05/2024","FOI AO CINEMA","-10"
`
	// the short keyword OI matches FOI by substring, but not in whole-word mode
	cats := "Telecom,OI\n"

	rec := postMultipart(t, "/analysis/statement", map[string]string{
		"statement":  stmt,
		"categories": cats,
	}, map[string]string{"whole_word_short_keywords": "true"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"category":"Outros"`)
	assert.NotContains(t, rec.Body.String(), "Telecom")
}

func TestAnalyzeStatementWorkbookEndpoint(t *testing.T) {
	rec := postMultipart(t, "/analysis/statement/workbook", map[string]string{
		"statement":  statementCSV,
		"categories": categoriesCSV,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, constants.ContentTypeXLSX, rec.Header().Get(constants.ContentTypeHeader))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "analise_extrato_")

	wb, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()
	idx, err := wb.GetSheetIndex("Resumo")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, idx, 0)
}

func TestAnalyzeProceduresEndpoint(t *testing.T) {
	rec := postMultipart(t, "/analysis/procedures", map[string]string{
		"procedures": proceduresCSV,
		"categories": procedureCategoriesCSV,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Statistics struct {
				TotalProcedures int     `json:"total_procedures"`
				TotalAmount     float64 `json:"total_amount"`
			} `json:"statistics"`
			ByUnit []struct {
				Label string `json:"label"`
			} `json:"by_unit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 2, envelope.Data.Statistics.TotalProcedures)
	assert.InDelta(t, 250.0, envelope.Data.Statistics.TotalAmount, 1e-9)
	assert.Len(t, envelope.Data.ByUnit, 2)
}

func TestAnalyzeProceduresWorkbookEndpoint(t *testing.T) {
	rec := postMultipart(t, "/analysis/procedures/workbook", map[string]string{
		"procedures": proceduresCSV,
		"categories": procedureCategoriesCSV,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, constants.ContentTypeXLSX, rec.Header().Get(constants.ContentTypeHeader))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "analise_procedimentos_")
}

func TestAnalyzeProceduresNarrowSheet(t *testing.T) {
	rec := postMultipart(t, "/analysis/procedures", map[string]string{
		"procedures": "a,b,c\n",
		"categories": procedureCategoriesCSV,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/analysis/statement", nil)
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
