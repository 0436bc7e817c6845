package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Generate(ctx context.Context, today time.Time) (*domain.Report, error)
}

// ReportHandler serves the analytic report endpoint.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type reportResponse struct {
	UserID      string `json:"user_id"`
	GeneratedAt string `json:"generated_at"`
	Today       string `json:"today"`

	EntryCount  int           `json:"entry_count"`
	WindowCount int           `json:"window_count"`
	SkippedRows []rowErrorDTO `json:"skipped_rows,omitempty"`

	Risk         riskDTO        `json:"risk"`
	Summaries    []summaryDTO   `json:"summaries"`
	Weekly       weeklyDTO      `json:"weekly"`
	Patterns     []insightDTO   `json:"patterns,omitempty"`
	Correlations []insightDTO   `json:"correlations,omitempty"`
	Alert        *alertDTO      `json:"alert,omitempty"`

	LatestMedicationNote string `json:"latest_medication_note,omitempty"`
}

type riskDTO struct {
	Score int    `json:"score"`
	Band  string `json:"band"`
}

type summaryDTO struct {
	Indicator string  `json:"indicator"`
	Mean      float64 `json:"mean"`
	Delta     int     `json:"delta"`
	Direction string  `json:"direction"`
}

type weeklyDTO struct {
	Insufficient bool      `json:"insufficient"`
	Weeks        []weekDTO `json:"weeks,omitempty"`
}

type weekDTO struct {
	Year  int                `json:"year"`
	Week  int                `json:"week"`
	Count int                `json:"count"`
	Means map[string]float64 `json:"means"`
}

type insightDTO struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

type alertDTO struct {
	Severity  string   `json:"severity"`
	Title     string   `json:"title"`
	BodyLines []string `json:"body_lines"`
}

// Get handles GET /api/report. The optional today query parameter
// (YYYY-MM-DD) pins the trailing window for reproducible reports.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	var today time.Time
	if raw := r.URL.Query().Get("today"); raw != "" {
		var err error
		today, err = time.ParseInLocation(domain.DateLayout, raw, time.UTC)
		if err != nil {
			writeError(w, http.StatusBadRequest, "today must be formatted YYYY-MM-DD")
			return
		}
	}

	rep, err := h.svc.Generate(r.Context(), today)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

func toReportResponse(rep *domain.Report) reportResponse {
	resp := reportResponse{
		UserID:      rep.UserID,
		GeneratedAt: rep.GeneratedAt.UTC().Format(time.RFC3339),
		Today:       rep.Today.Format(domain.DateLayout),

		EntryCount:  rep.EntryCount,
		WindowCount: rep.WindowCount,

		Risk: riskDTO{Score: rep.Assessment.Score, Band: rep.Assessment.Band.String()},

		Weekly: weeklyDTO{Insufficient: rep.Weekly.Insufficient},

		LatestMedicationNote: rep.LatestMedicationNote,
	}

	for _, re := range rep.SkippedRows {
		resp.SkippedRows = append(resp.SkippedRows, rowErrorDTO{Row: re.Row, Reason: re.Reason})
	}

	resp.Summaries = make([]summaryDTO, 0, len(rep.Summaries))
	for _, s := range rep.Summaries {
		resp.Summaries = append(resp.Summaries, summaryDTO{
			Indicator: s.Indicator.String(),
			Mean:      s.Mean,
			Delta:     s.Delta,
			Direction: s.Direction.String(),
		})
	}

	for _, wk := range rep.Weekly.Weeks {
		means := make(map[string]float64, len(wk.Means))
		for ind, m := range wk.Means {
			means[ind.String()] = m
		}
		resp.Weekly.Weeks = append(resp.Weekly.Weeks, weekDTO{
			Year:  wk.Year,
			Week:  wk.Week,
			Count: wk.Count,
			Means: means,
		})
	}

	for _, p := range rep.Patterns {
		resp.Patterns = append(resp.Patterns, insightDTO{Icon: p.Icon, Text: p.Text})
	}
	for _, c := range rep.Correlations {
		resp.Correlations = append(resp.Correlations, insightDTO{Icon: c.Icon, Text: c.Text})
	}

	if rep.Alert != nil {
		resp.Alert = &alertDTO{
			Severity:  rep.Alert.Severity.String(),
			Title:     rep.Alert.Title,
			BodyLines: rep.Alert.BodyLines,
		}
	}

	return resp
}
