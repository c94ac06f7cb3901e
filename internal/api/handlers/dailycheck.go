package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/teamdispo/dispo/internal/api/dto"
	"github.com/teamdispo/dispo/internal/api/middleware"
	"github.com/teamdispo/dispo/internal/domain/dailycheck"
	"github.com/teamdispo/dispo/internal/pkg/errors"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/pkg/utils"
	"github.com/teamdispo/dispo/internal/pkg/validator"
)

// DailyCheckHandler handles daily stand-up requests
type DailyCheckHandler struct {
	service   dailycheck.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewDailyCheckHandler creates a new daily check handler
func NewDailyCheckHandler(
	service dailycheck.Service,
	log *logger.Logger,
	val *validator.Validator,
) *DailyCheckHandler {
	return &DailyCheckHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// Submit records the caller's check for today
// @Summary Submit a daily check
// @Description Record the caller's stand-up entry; one per user per day
// @Tags DailyCheck
// @Accept json
// @Produce json
// @Param request body dto.SubmitCheckRequest true "Check"
// @Success 201 {object} dto.CheckDTO
// @Failure 409 {object} utils.ErrorResponse "Already submitted today"
// @Security BearerAuth
// @Router /daily-checks [post]
func (h *DailyCheckHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Not authenticated"))
		return
	}

	var req dto.SubmitCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	check, err := h.service.Submit(r.Context(), &dailycheck.Check{
		UserID:    userID,
		Yesterday: req.Yesterday,
		Today:     req.Today,
		Blockers:  req.Blockers,
		Mood:      req.Mood,
	})
	if err != nil {
		writeServiceError(w, err, errors.Internal("Failed to store daily check", err))
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.NewCheckDTO(check))
}

// Today returns today's stand-up feed
// @Summary Today's feed
// @Description Return today's checks together with the full roster
// @Tags DailyCheck
// @Produce json
// @Success 200 {object} dto.FeedDTO
// @Security BearerAuth
// @Router /daily-checks/today [get]
func (h *DailyCheckHandler) Today(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.TodayFeed(r.Context())
	if err != nil {
		writeServiceError(w, err, errors.Internal("Failed to load feed", err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.NewFeedDTO(feed))
}
