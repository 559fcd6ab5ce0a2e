package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postForecast(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	server := NewServer("test")
	req := httptest.NewRequest(http.MethodPost, "/forecast", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestForecastDefaultScenario(t *testing.T) {
	rec := postForecast(t, `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ForecastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result == nil {
		t.Fatal("response carries no result")
	}
	if len(resp.Result.Rows) != 70 {
		t.Errorf("expected 70 rows for the default fleet, got %d", len(resp.Result.Rows))
	}
	if resp.Version != "test" {
		t.Errorf("expected version test, got %s", resp.Version)
	}
}

func TestForecastWithOverrides(t *testing.T) {
	rec := postForecast(t, `{"launch_growth_entity": true, "growth_target_enrollment": 900}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ForecastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Result.Rows) != 80 {
		t.Errorf("expected 80 rows with the growth school, got %d", len(resp.Result.Rows))
	}
}

func TestForecastRejectsOutOfRangeParameter(t *testing.T) {
	rec := postForecast(t, `{"management_fee_rate": 0.9}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "PARAMETER_ERROR" {
		t.Errorf("expected PARAMETER_ERROR, got %s", resp.Code)
	}
	if resp.Context["field"] != "management_fee_rate" {
		t.Errorf("error must name the offending field, got %v", resp.Context)
	}
}

func TestForecastRejectsMalformedJSON(t *testing.T) {
	rec := postForecast(t, `{`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	server := NewServer("test")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
