package analysis

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ExtratoAnalytics/api/analysis/pipeline"
	"ExtratoAnalytics/api/analysis/procedures"
	"ExtratoAnalytics/api/constants"
)

func analyzeProceduresRequest(r *http.Request) (*procedures.Report, error) {
	if err := r.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "%s: %v", constants.ErrMultipartParse, err)
	}
	proceduresName, proceduresBytes, err := readFormFile(r, "procedures")
	if err != nil {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "%s: procedures", constants.ErrMissingFile)
	}
	categoriesName, categoryBytes, err := readFormFile(r, "categories")
	if err != nil {
		return nil, pipeline.Errorf(pipeline.KindMalformed, "%s: categories", constants.ErrMissingFile)
	}
	procRows, err := pipeline.ReadTable(proceduresName, proceduresBytes)
	if err != nil {
		return nil, err
	}
	catRows, err := pipeline.ReadTable(categoriesName, categoryBytes)
	if err != nil {
		return nil, err
	}
	return procedures.Analyze(procRows, procedures.LoadCategories(catRows))
}

// Handler: AnalyzeProcedures
func AnalyzeProceduresHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rep, err := analyzeProceduresRequest(r)
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

// Handler: AnalyzeProceduresWorkbook
func AnalyzeProceduresWorkbookHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rep, err := analyzeProceduresRequest(r)
		if err != nil {
			respondError(w, err)
			return
		}
		wb, err := procedures.BuildWorkbook(rep)
		if err != nil {
			respondError(w, err)
			return
		}
		fname := fmt.Sprintf("analise_procedimentos_%s.xlsx", time.Now().Format("20060102_150405"))
		w.Header().Set(constants.ContentTypeHeader, constants.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fname))
		if err := wb.Write(w); err != nil {
			respondError(w, err)
		}
	})
}
