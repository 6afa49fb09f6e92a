package analysis

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"ExtratoAnalytics/internal/config"
)

// NewRouter wires the analysis routes. Split out of StartAnalysisService so
// tests can drive the router directly.
func NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Handle("/analysis/statement", AnalyzeStatementHandler()).Methods("POST")
	router.Handle("/analysis/statement/workbook", AnalyzeStatementWorkbookHandler()).Methods("POST")
	router.Handle("/analysis/procedures", AnalyzeProceduresHandler()).Methods("POST")
	router.Handle("/analysis/procedures/workbook", AnalyzeProceduresWorkbookHandler()).Methods("POST")
	router.HandleFunc("/analysis/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Analysis Service is healthy"))
	}).Methods("GET")
	return router
}

func StartAnalysisService() {
	router := NewRouter()
	log.Println("Analysis Service started on", config.AnalysisAddr)
	if err := http.ListenAndServe(config.AnalysisAddr, router); err != nil {
		log.Fatalf("Analysis Service failed: %v", err)
	}
}
