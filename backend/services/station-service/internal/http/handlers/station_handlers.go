package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"evcharge/backend/services/station-service/internal/models"
	"evcharge/backend/services/station-service/internal/repository"
)

// StationStore is the data-access surface the handlers need. The postgres
// repository satisfies it; tests inject an in-memory fake.
type StationStore interface {
	Create(ctx context.Context, input repository.CreateStation) (*models.Station, error)
	List(ctx context.Context) ([]models.Station, error)
	GetByID(ctx context.Context, id int64) (*models.Station, error)
	Update(ctx context.Context, id int64, patch repository.StationPatch) (*models.Station, error)
	Delete(ctx context.Context, id int64) error
}

// StationHandlers exposes the stations CRUD endpoints.
type StationHandlers struct {
	store  StationStore
	logger *zap.Logger
}

// NewStationHandlers returns handler set.
func NewStationHandlers(store StationStore, logger *zap.Logger) *StationHandlers {
	return &StationHandlers{store: store, logger: logger}
}

type createStationRequest struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Status   *string  `json:"status"`
	PowerKW  *float64 `json:"power_kw"`
}

type updateStationRequest struct {
	Name     *string  `json:"name"`
	Location *string  `json:"location"`
	Status   *string  `json:"status"`
	PowerKW  *float64 `json:"power_kw"`
}

// Create handles POST /stations.
func (h *StationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req createStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.Location) == "" {
		writeError(w, http.StatusBadRequest, "location is required")
		return
	}

	station, err := h.store.Create(r.Context(), repository.CreateStation{
		Name:     req.Name,
		Location: req.Location,
		Status:   req.Status,
		PowerKW:  req.PowerKW,
	})
	if err != nil {
		h.logger.Error("create station failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create station")
		return
	}
	writeJSON(w, http.StatusCreated, station)
}

// List handles GET /stations.
func (h *StationHandlers) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list stations failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list stations")
		return
	}
	if stations == nil {
		stations = []models.Station{}
	}
	writeJSON(w, http.StatusOK, stations)
}

// GetByID handles GET /stations/{id}.
func (h *StationHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := stationID(w, r)
	if !ok {
		return
	}

	station, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrStationNotFound) {
		writeError(w, http.StatusNotFound, "Station not found")
		return
	}
	if err != nil {
		h.logger.Error("get station failed", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch station")
		return
	}
	writeJSON(w, http.StatusOK, station)
}

// Update handles PUT /stations/{id}. Only fields present in the body are
// changed; an empty object is a valid no-op.
func (h *StationHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := stationID(w, r)
	if !ok {
		return
	}

	var req updateStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	station, err := h.store.Update(r.Context(), id, repository.StationPatch{
		Name:     req.Name,
		Location: req.Location,
		Status:   req.Status,
		PowerKW:  req.PowerKW,
	})
	if errors.Is(err, repository.ErrStationNotFound) {
		writeError(w, http.StatusNotFound, "Station not found")
		return
	}
	if err != nil {
		h.logger.Error("update station failed", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update station")
		return
	}
	writeJSON(w, http.StatusOK, station)
}

// Delete handles DELETE /stations/{id}.
func (h *StationHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := stationID(w, r)
	if !ok {
		return
	}

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrStationNotFound) {
		writeError(w, http.StatusNotFound, "Station not found")
		return
	}
	if err != nil {
		h.logger.Error("delete station failed", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete station")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func stationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return 0, false
	}
	return id, true
}
