package analysis

import (
	"encoding/json"
	"io"
	"net/http"

	"ExtratoAnalytics/api/analysis/pipeline"
	"ExtratoAnalytics/api/constants"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(constants.ContentTypeHeader, constants.ContentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError translates pipeline taxonomy failures into 400s with the error
// message in the standard envelope; anything else is a 500.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if _, ok := pipeline.KindOf(err); ok {
		status = http.StatusBadRequest
	}
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	})
}

// readFormFile pulls one uploaded file out of the multipart form.
func readFormFile(r *http.Request, field string) (string, []byte, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}
