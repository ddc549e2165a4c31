package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"decarb_pathways/internal/models"
	"decarb_pathways/internal/service"
)

func TestLogsHandler_ListAndValidation(t *testing.T) {
	auth := &mockAuth{parseID: 99}
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.RunEvent{
		{EventID: "e1", OccurredAt: now, Type: "RUN_STARTED", Description: "run started"},
		{EventID: "e2", OccurredAt: now.Add(1 * time.Second), Type: "RUN_COMPLETED", Description: "run completed"},
	}
	logs := &mockRunLog{resp: events}
	s := &service.Service{
		Authorization: auth,
		RunLog:        logs,
	}
	r := newTestRouter(s)

	// Missing/invalid 'from' → 400
	w := doRequest(r, http.MethodGet, "/api/v1/logs/?from=notatime", "", "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	// Valid range and type (lowercase type should be normalized to upper in service call)
	q := "/api/v1/logs/?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) + "&type=run_completed"
	w = doRequest(r, http.MethodGet, q, "", "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int               `json:"count"`
		Events []models.RunEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastType != "RUN_COMPLETED" {
		t.Fatalf("expected lastType RUN_COMPLETED, got %q", logs.lastType)
	}

	// 'from' after 'to' → 400
	q = "/api/v1/logs/?from=2026-08-02&to=2026-08-01"
	w = doRequest(r, http.MethodGet, q, "", "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", w.Code)
	}
}
