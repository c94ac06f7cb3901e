package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/teamdispo/dispo/internal/api/dto"
	"github.com/teamdispo/dispo/internal/api/handlers"
	"github.com/teamdispo/dispo/internal/api/middleware"
	"github.com/teamdispo/dispo/internal/domain/user"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/pkg/validator"
	"github.com/teamdispo/dispo/internal/repository/postgres"
	"github.com/teamdispo/dispo/internal/services"
	"github.com/teamdispo/dispo/internal/testutil"
)

// TestAvailabilityLifecycle walks a declaration through the full stack:
// Declare -> List -> overlapping Declare replaces -> Delete.
func TestAvailabilityLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	val := validator.New()

	userRepo := postgres.NewUserRepository(db)
	availRepo := postgres.NewAvailabilityRepository(db)
	availService := services.NewAvailabilityService(availRepo, log)
	availHandler := handlers.NewAvailabilityHandler(availService, log, val)

	alice := &user.User{Username: "alice", FirstName: "Alice", LastName: "Smith", PasswordHash: "x"}
	if err := userRepo.Create(context.Background(), alice); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	var declarationID int64

	// Step 1: Declare a week of availability
	t.Run("Declare", func(t *testing.T) {
		declareReq := dto.DeclareRequest{
			PeriodKind: "week",
			StartDate:  "2026-03-09",
			EndDate:    "2026-03-15",
			Status:     "available",
			TimeRange:  "09:00 - 17:00",
		}

		body, _ := json.Marshal(declareReq)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/availability", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, alice.ID))

		rr := httptest.NewRecorder()
		availHandler.Create(rr, req)

		if status := rr.Code; status != http.StatusCreated {
			t.Fatalf("Declare failed with status %v, body: %s", status, rr.Body.String())
		}

		var response map[string]interface{}
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		data := response["data"].(map[string]interface{})
		declarationID = int64(data["id"].(float64))
	})

	// Step 2: List the team view
	t.Run("List", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, alice.ID))

		rr := httptest.NewRecorder()
		availHandler.List(rr, req)

		if status := rr.Code; status != http.StatusOK {
			t.Fatalf("List failed with status %v", status)
		}

		var response map[string]interface{}
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		data := response["data"].([]interface{})
		if len(data) != 1 {
			t.Fatalf("Expected 1 entry, got %d", len(data))
		}
		entry := data[0].(map[string]interface{})
		owner := entry["user"].(map[string]interface{})
		if owner["username"] != "alice" {
			t.Errorf("Expected owner alice, got %v", owner["username"])
		}
	})

	// Step 3: An overlapping declaration replaces the original
	t.Run("Overlapping Declare Replaces", func(t *testing.T) {
		declareReq := dto.DeclareRequest{
			PeriodKind: "day",
			StartDate:  "2026-03-11",
			EndDate:    "2026-03-11",
			Status:     "unavailable",
		}

		body, _ := json.Marshal(declareReq)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/availability", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, alice.ID))

		rr := httptest.NewRecorder()
		availHandler.Create(rr, req)

		if status := rr.Code; status != http.StatusCreated {
			t.Fatalf("Declare failed with status %v, body: %s", status, rr.Body.String())
		}

		var response map[string]interface{}
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		data := response["data"].(map[string]interface{})
		declarationID = int64(data["id"].(float64))

		// The original week declaration must be gone
		mine, err := availService.Mine(context.Background(), alice.ID)
		if err != nil {
			t.Fatalf("Mine failed: %v", err)
		}
		if len(mine) != 1 {
			t.Fatalf("Expected 1 declaration after replacement, got %d", len(mine))
		}
		if string(mine[0].Status) != "unavailable" {
			t.Errorf("Expected surviving declaration to be unavailable, got %s", mine[0].Status)
		}
	})

	// Step 4: Delete the declaration
	t.Run("Delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/availability/%d", declarationID), nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, alice.ID))

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", fmt.Sprintf("%d", declarationID))
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rr := httptest.NewRecorder()
		availHandler.Delete(rr, req)

		if status := rr.Code; status != http.StatusOK {
			t.Fatalf("Delete failed with status %v, body: %s", status, rr.Body.String())
		}

		mine, err := availService.Mine(context.Background(), alice.ID)
		if err != nil {
			t.Fatalf("Mine failed: %v", err)
		}
		if len(mine) != 0 {
			t.Errorf("Declaration still exists after deletion")
		}
	})
}

// TestDailyCheckWorkflow submits a stand-up check and reads back the feed.
func TestDailyCheckWorkflow(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	val := validator.New()

	userRepo := postgres.NewUserRepository(db)
	checkRepo := postgres.NewDailyCheckRepository(db)
	checkService := services.NewDailyCheckService(checkRepo, userRepo, log)
	checkHandler := handlers.NewDailyCheckHandler(checkService, log, val)

	bob := &user.User{Username: "bob", FirstName: "Bob", LastName: "Jones", PasswordHash: "x"}
	if err := userRepo.Create(context.Background(), bob); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	submit := func() *httptest.ResponseRecorder {
		submitReq := dto.SubmitCheckRequest{
			Yesterday: "Reviewed the roster",
			Today:     "Planning the sprint",
			Mood:      4,
		}
		body, _ := json.Marshal(submitReq)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/daily-checks", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, bob.ID))

		rr := httptest.NewRecorder()
		checkHandler.Submit(rr, req)
		return rr
	}

	t.Run("Submit Check", func(t *testing.T) {
		rr := submit()
		if status := rr.Code; status != http.StatusCreated {
			t.Fatalf("Submit failed with status %v, body: %s", status, rr.Body.String())
		}
	})

	t.Run("Duplicate Submit Rejected", func(t *testing.T) {
		rr := submit()
		if status := rr.Code; status != http.StatusConflict {
			t.Errorf("Expected conflict on duplicate submit, got %v", status)
		}
	})

	t.Run("Today Feed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/daily-checks/today", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, bob.ID))

		rr := httptest.NewRecorder()
		checkHandler.Today(rr, req)

		if status := rr.Code; status != http.StatusOK {
			t.Fatalf("Today failed with status %v", status)
		}

		var response map[string]interface{}
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		data := response["data"].(map[string]interface{})
		checks := data["checks"].([]interface{})
		if len(checks) != 1 {
			t.Errorf("Expected 1 check in feed, got %d", len(checks))
		}
		members := data["members"].([]interface{})
		if len(members) != 1 {
			t.Errorf("Expected 1 member, got %d", len(members))
		}
	})
}
