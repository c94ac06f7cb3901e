package handlers

import (
	"net/http"

	"github.com/teamdispo/dispo/internal/pkg/errors"
	"github.com/teamdispo/dispo/internal/pkg/utils"
)

// writeServiceError writes a service error to the response, falling back
// to the given default when the error carries no HTTP mapping.
func writeServiceError(w http.ResponseWriter, err error, fallback *errors.AppError) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, fallback)
}
