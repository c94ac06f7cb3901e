package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/teamdispo/dispo/internal/api/dto"
	"github.com/teamdispo/dispo/internal/api/middleware"
	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/pkg/errors"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/pkg/utils"
	"github.com/teamdispo/dispo/internal/pkg/validator"
)

// AvailabilityHandler handles availability declaration requests
type AvailabilityHandler struct {
	service   availability.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(
	service availability.Service,
	log *logger.Logger,
	val *validator.Validator,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// List returns the team availability view
// @Summary List declarations
// @Description List team declarations, optionally filtered by period window, lodging and current availability
// @Tags Availability
// @Produce json
// @Param period query string false "Period window (today, day, week, month)"
// @Param on_site_lodging query bool false "Filter by on-site lodging"
// @Param available_now query bool false "Only members available at this instant"
// @Success 200 {array} dto.EntryDTO
// @Failure 400 {object} utils.ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /availability [get]
func (h *AvailabilityHandler) List(w http.ResponseWriter, r *http.Request) {
	var q availability.Query

	if period := r.URL.Query().Get("period"); period != "" {
		q.Period = normalizePeriod(period)
	}

	if lodging := r.URL.Query().Get("on_site_lodging"); lodging != "" {
		v, err := strconv.ParseBool(lodging)
		if err != nil {
			utils.WriteError(w, errors.BadRequest("Invalid on_site_lodging value"))
			return
		}
		q.OnSiteLodging = &v
	}

	if now := r.URL.Query().Get("available_now"); now != "" {
		v, err := strconv.ParseBool(now)
		if err != nil {
			utils.WriteError(w, errors.BadRequest("Invalid available_now value"))
			return
		}
		q.AvailableNow = v
	}

	entries, err := h.service.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, err, errors.Internal("Failed to list declarations", err))
		return
	}

	out := make([]dto.EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.NewEntryDTO(e))
	}

	utils.WriteSuccess(w, http.StatusOK, out)
}

// Create stores a new declaration for the authenticated user
// @Summary Declare availability
// @Description Store a declaration; overlapping prior declarations of the caller are replaced
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.DeclareRequest true "Declaration"
// @Success 201 {object} dto.DeclarationDTO
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /availability [post]
func (h *AvailabilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Not authenticated"))
		return
	}

	var req dto.DeclareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	startDate, err := time.ParseInLocation(availability.DateLayout, req.StartDate, time.UTC)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid start date"))
		return
	}
	endDate, err := time.ParseInLocation(availability.DateLayout, req.EndDate, time.UTC)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid end date"))
		return
	}

	decl := &availability.Declaration{
		UserID:        userID,
		PeriodKind:    normalizePeriod(req.PeriodKind),
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        availability.Status(req.Status),
		TimeRangeText: req.TimeRange,
		OnSiteLodging: req.OnSiteLodging,
	}

	stored, err := h.service.Declare(r.Context(), decl)
	if err != nil {
		writeServiceError(w, err, errors.Internal("Failed to store declaration", err))
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.NewDeclarationDTO(stored))
}

// Mine returns the authenticated user's declarations
// @Summary My declarations
// @Tags Availability
// @Produce json
// @Success 200 {array} dto.DeclarationDTO
// @Security BearerAuth
// @Router /availability/mine [get]
func (h *AvailabilityHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Not authenticated"))
		return
	}

	decls, err := h.service.Mine(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, errors.Internal("Failed to list declarations", err))
		return
	}

	out := make([]dto.DeclarationDTO, 0, len(decls))
	for _, d := range decls {
		out = append(out, dto.NewDeclarationDTO(d))
	}

	utils.WriteSuccess(w, http.StatusOK, out)
}

// Delete removes one of the caller's declarations
// @Summary Delete a declaration
// @Description Delete a declaration owned by the caller; foreign declarations report not-found
// @Tags Availability
// @Param id path int true "Declaration ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /availability/{id} [delete]
func (h *AvailabilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Not authenticated"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid declaration ID"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err, errors.Internal("Failed to delete declaration", err))
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Declaration deleted", nil)
}

// normalizePeriod folds the "today" synonym onto the day period
func normalizePeriod(s string) availability.PeriodKind {
	if s == "today" {
		return availability.PeriodDay
	}
	return availability.PeriodKind(s)
}
