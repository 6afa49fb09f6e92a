package analysis

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ExtratoAnalytics/api/analysis/pipeline"
	"ExtratoAnalytics/api/analysis/statement"
	"ExtratoAnalytics/api/constants"
)

// analyzeStatementRequest parses the multipart upload and runs the statement
// pipeline. Shared by the JSON and the workbook endpoints.
func analyzeStatementRequest(r *http.Request) (*statement.Report, error) {
	if err := r.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "%s: %v", constants.ErrMultipartParse, err)
	}
	_, statementBytes, err := readFormFile(r, "statement")
	if err != nil {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "%s: statement", constants.ErrMissingFile)
	}
	categoriesName, categoryBytes, err := readFormFile(r, "categories")
	if err != nil {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "%s: categories", constants.ErrMissingFile)
	}
	rows, err := pipeline.ReadTable(categoriesName, categoryBytes)
	if err != nil {
		return nil, err
	}
	keywords, err := pipeline.LoadKeywordMap(rows)
	if err != nil {
		return nil, err
	}
	opts := statement.Options{}
	if r.FormValue("whole_word_short_keywords") == "true" {
		opts.WholeWordMaxLen = 4
	}
	return statement.Analyze(statementBytes, keywords, opts)
}

// Handler: AnalyzeStatement
func AnalyzeStatementHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rep, err := analyzeStatementRequest(r)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"batch_id": uuid.New().String(),
			"data":     rep,
		})
	})
}

// Handler: AnalyzeStatementWorkbook streams the rendered workbook back as an
// attachment.
func AnalyzeStatementWorkbookHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rep, err := analyzeStatementRequest(r)
		if err != nil {
			respondError(w, err)
			return
		}
		wb, err := statement.BuildWorkbook(rep)
		if err != nil {
			respondError(w, err)
			return
		}
		fname := fmt.Sprintf("analise_extrato_%s.xlsx", time.Now().Format("20060102_150405"))
		w.Header().Set(constants.ContentTypeHeader, constants.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fname))
		if err := wb.Write(w); err != nil {
			respondError(w, err)
		}
	})
}
