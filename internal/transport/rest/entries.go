package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/journal"
)

// journalService defines the minimal interface needed by EntriesHandler.
type journalService interface {
	Submit(ctx context.Context, input journal.SubmitInput) (domain.Entry, error)
	History(ctx context.Context) (journal.History, error)
}

// EntriesHandler serves entry submission and history endpoints.
type EntriesHandler struct {
	svc journalService
	log *slog.Logger
}

// NewEntriesHandler creates an EntriesHandler.
func NewEntriesHandler(svc journalService, logger *slog.Logger) *EntriesHandler {
	return &EntriesHandler{svc: svc, log: logger.With("handler", "entries")}
}

type submitRequest struct {
	// Date is optional; empty means today.
	Date           string `json:"date,omitempty"`
	DisplayName    string `json:"display_name"`
	Mood           int    `json:"mood"`
	Irritability   int    `json:"irritability"`
	SocialBattery  int    `json:"social_battery"`
	SleepQuality   int    `json:"sleep_quality"`
	MentalFog      int    `json:"mental_fog"`
	Pressure       int    `json:"pressure"`
	MedicationNote string `json:"medication_note,omitempty"`
}

type entryResponse struct {
	Date           string `json:"date"`
	UserID         string `json:"user_id"`
	DisplayName    string `json:"display_name,omitempty"`
	Mood           int    `json:"mood"`
	Irritability   int    `json:"irritability"`
	SocialBattery  int    `json:"social_battery"`
	SleepQuality   int    `json:"sleep_quality"`
	MentalFog      int    `json:"mental_fog"`
	Pressure       int    `json:"pressure"`
	MedicationNote string `json:"medication_note,omitempty"`
}

type historyResponse struct {
	Entries     []entryResponse `json:"entries"`
	SkippedRows []rowErrorDTO   `json:"skipped_rows,omitempty"`
}

type rowErrorDTO struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Submit handles POST /api/entries.
func (h *EntriesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.ParseInLocation(domain.DateLayout, req.Date, time.UTC)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}
	}

	entry, err := h.svc.Submit(r.Context(), journal.SubmitInput{
		Date:           date,
		DisplayName:    req.DisplayName,
		Mood:           req.Mood,
		Irritability:   req.Irritability,
		SocialBattery:  req.SocialBattery,
		SleepQuality:   req.SleepQuality,
		MentalFog:      req.MentalFog,
		Pressure:       req.Pressure,
		MedicationNote: req.MedicationNote,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// List handles GET /api/entries.
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.History(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := historyResponse{Entries: make([]entryResponse, 0, len(history.Entries))}
	for _, e := range history.Entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	for _, re := range history.Skipped {
		resp.SkippedRows = append(resp.SkippedRows, rowErrorDTO{Row: re.Row, Reason: re.Reason})
	}

	writeJSON(w, http.StatusOK, resp)
}

func toEntryResponse(e domain.Entry) entryResponse {
	return entryResponse{
		Date:           e.Date.Format(domain.DateLayout),
		UserID:         e.UserID,
		DisplayName:    e.DisplayName,
		Mood:           e.Mood,
		Irritability:   e.Irritability,
		SocialBattery:  e.SocialBattery,
		SleepQuality:   e.SleepQuality,
		MentalFog:      e.MentalFog,
		Pressure:       e.Pressure,
		MedicationNote: e.MedicationNote,
	}
}
