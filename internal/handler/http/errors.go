package http

import (
	"net/http"

	"github.com/aixmultimodal/msgboard/internal/utils"
	"github.com/aixmultimodal/msgboard/models"
)

// writeError renders an API error body. Every non-2xx response carries the
// same {"detail": ...} shape.
func writeError(w http.ResponseWriter, detail string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
