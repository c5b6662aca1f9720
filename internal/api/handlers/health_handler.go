package handlers

import (
	"net/http"

	"github.com/markdave123-py/docextract/internal/models"
)

const serviceName = "PDF/DOCX Text Extraction Service"

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "healthy", Service: serviceName})
}
