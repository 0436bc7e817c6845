package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/journal"
)

type journalServiceMock struct {
	SubmitFunc  func(ctx context.Context, input journal.SubmitInput) (domain.Entry, error)
	HistoryFunc func(ctx context.Context) (journal.History, error)
}

func (m *journalServiceMock) Submit(ctx context.Context, input journal.SubmitInput) (domain.Entry, error) {
	return m.SubmitFunc(ctx, input)
}

func (m *journalServiceMock) History(ctx context.Context) (journal.History, error) {
	return m.HistoryFunc(ctx)
}

func TestSubmit_Success(t *testing.T) {
	t.Parallel()

	var gotInput journal.SubmitInput
	svc := &journalServiceMock{
		SubmitFunc: func(ctx context.Context, input journal.SubmitInput) (domain.Entry, error) {
			gotInput = input
			return domain.Entry{
				Date:          time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
				UserID:        "a1b2c3d4",
				DisplayName:   input.DisplayName,
				Mood:          input.Mood,
				Irritability:  input.Irritability,
				SocialBattery: input.SocialBattery,
				SleepQuality:  input.SleepQuality,
				MentalFog:     input.MentalFog,
				Pressure:      input.Pressure,
			}, nil
		},
	}
	h := NewEntriesHandler(svc, discardLogger())

	body := `{"date":"2025-08-25","display_name":"Alice","mood":3,"irritability":2,"social_battery":4,"sleep_quality":3,"mental_fog":4,"pressure":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !gotInput.Date.Equal(time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("input date = %v", gotInput.Date)
	}
	if gotInput.Mood != 3 || gotInput.Pressure != 2 {
		t.Errorf("input values not forwarded: %+v", gotInput)
	}

	var resp entryResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Date != "2025-08-25" {
		t.Errorf("response date = %q", resp.Date)
	}
	if resp.UserID != "a1b2c3d4" {
		t.Errorf("response user_id = %q", resp.UserID)
	}
}

func TestSubmit_OmittedDateMeansToday(t *testing.T) {
	t.Parallel()

	var gotInput journal.SubmitInput
	svc := &journalServiceMock{
		SubmitFunc: func(ctx context.Context, input journal.SubmitInput) (domain.Entry, error) {
			gotInput = input
			return domain.Entry{Date: time.Now(), UserID: "a1b2c3d4", Mood: 3, Irritability: 3, SocialBattery: 3, SleepQuality: 3, MentalFog: 3, Pressure: 3}, nil
		},
	}
	h := NewEntriesHandler(svc, discardLogger())

	body := `{"display_name":"Alice","mood":3,"irritability":3,"social_battery":3,"sleep_quality":3,"mental_fog":3,"pressure":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if !gotInput.Date.IsZero() {
		t.Errorf("omitted date should reach the service as zero, got %v", gotInput.Date)
	}
}

func TestSubmit_BadDate(t *testing.T) {
	t.Parallel()

	svc := &journalServiceMock{
		SubmitFunc: func(ctx context.Context, input journal.SubmitInput) (domain.Entry, error) {
			t.Error("service must not be called for a malformed date")
			return domain.Entry{}, nil
		},
	}
	h := NewEntriesHandler(svc, discardLogger())

	body := `{"date":"25/08/2025","display_name":"Alice","mood":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestSubmit_ValidationErrorMapsTo400(t *testing.T) {
	t.Parallel()

	svc := &journalServiceMock{
		SubmitFunc: func(ctx context.Context, input journal.SubmitInput) (domain.Entry, error) {
			return domain.Entry{}, domain.NewValidationError("mood", "must be between 1 and 5")
		},
	}
	h := NewEntriesHandler(svc, discardLogger())

	body := `{"display_name":"Alice","mood":9,"irritability":3,"social_battery":3,"sleep_quality":3,"mental_fog":3,"pressure":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestSubmit_UnauthorizedMapsTo401(t *testing.T) {
	t.Parallel()

	svc := &journalServiceMock{
		SubmitFunc: func(ctx context.Context, input journal.SubmitInput) (domain.Entry, error) {
			return domain.Entry{}, domain.ErrUnauthorized
		},
	}
	h := NewEntriesHandler(svc, discardLogger())

	body := `{"display_name":"Alice","mood":3,"irritability":3,"social_battery":3,"sleep_quality":3,"mental_fog":3,"pressure":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestList_Success(t *testing.T) {
	t.Parallel()

	svc := &journalServiceMock{
		HistoryFunc: func(ctx context.Context) (journal.History, error) {
			return journal.History{
				Entries: []domain.Entry{
					{
						Date: time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC), UserID: "a1b2c3d4",
						Mood: 3, Irritability: 2, SocialBattery: 4, SleepQuality: 3, MentalFog: 4, Pressure: 2,
					},
				},
				Skipped: []domain.RowError{{Row: 5, Reason: "parse date"}},
			}, nil
		},
	}
	h := NewEntriesHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp historyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].Date != "2025-08-24" {
		t.Errorf("entries = %+v", resp.Entries)
	}
	if len(resp.SkippedRows) != 1 || resp.SkippedRows[0].Row != 5 {
		t.Errorf("skipped_rows = %+v", resp.SkippedRows)
	}
}

func TestList_StoreUnavailableMapsTo503(t *testing.T) {
	t.Parallel()

	svc := &journalServiceMock{
		HistoryFunc: func(ctx context.Context) (journal.History, error) {
			return journal.History{}, domain.ErrStoreUnavailable
		},
	}
	h := NewEntriesHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
