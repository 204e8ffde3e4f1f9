package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/qendev/mars_realestate/internal/domain"
	"github.com/qendev/mars_realestate/internal/observable"
)

type OverviewHandler struct {
	overview Overview
}

type Overview interface {
	Status() observable.Observable[string]
	Result() domain.FetchResult
}

func NewOverviewHandler(overview Overview) *OverviewHandler {
	return &OverviewHandler{
		overview: overview,
	}
}

type GetStatusResponse struct {
	FetchID    string     `json:"fetch_id,omitempty"`
	State      string     `json:"state"`
	Status     *string    `json:"status,omitempty"`
	Count      int        `json:"count"`
	Error      string     `json:"error,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

func (h *OverviewHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	result := h.overview.Result()

	resp := GetStatusResponse{
		State: result.State.String(),
		Count: result.Count,
	}

	if result.FetchID != uuid.Nil {
		resp.FetchID = result.FetchID.String()
	}

	if status, ok := h.overview.Status().Get(); ok {
		resp.Status = &status
	}

	if result.Err != nil {
		resp.Error = result.Err.Error()
	}

	if !result.StartedAt.IsZero() {
		resp.StartedAt = &result.StartedAt
	}

	if !result.FinishedAt.IsZero() {
		resp.FinishedAt = &result.FinishedAt
	}

	data, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
