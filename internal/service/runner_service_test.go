package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/algo-odyssey/backend/config"
	"github.com/algo-odyssey/backend/internal/model"
)

func TestGradeResultsAllPass(t *testing.T) {
	results := []CaseResult{
		{Got: "42", Expected: "42", Runtime: 0.1},
		{Got: "  7\n", Expected: "7", Runtime: 0.3},
	}
	correctness, maxRuntime := GradeResults(results)
	if !almostEqual(correctness, 100) {
		t.Errorf("correctness = %v, want 100", correctness)
	}
	if !almostEqual(maxRuntime, 0.3) {
		t.Errorf("maxRuntime = %v, want 0.3", maxRuntime)
	}
}

func TestGradeResultsPartial(t *testing.T) {
	results := []CaseResult{
		{Got: "42", Expected: "42", Runtime: 0.1},
		{Got: "41", Expected: "42", Runtime: 0.2},
		{Got: "42", Expected: "42", Runtime: 0.15},
		{Got: "oops", Expected: "42", Runtime: 0.05},
	}
	correctness, _ := GradeResults(results)
	if !almostEqual(correctness, 50) {
		t.Errorf("correctness = %v, want 50", correctness)
	}
}

func TestGradeResultsEmpty(t *testing.T) {
	correctness, maxRuntime := GradeResults(nil)
	if correctness != 0 || maxRuntime != 0 {
		t.Errorf("got (%v, %v), want (0, 0)", correctness, maxRuntime)
	}
}

func runnerConfig(url string) *config.Config {
	cfg := &config.Config{}
	cfg.Runner.URL = url
	return cfg
}

func TestRunnerServicePostsCasesAndDecodesResults(t *testing.T) {
	var received runnerRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(runnerResponse{Results: []CaseResult{
			{Got: "3", Expected: "3", Runtime: 0.12},
		}})
	}))
	defer srv.Close()

	svc := NewRunnerService(runnerConfig(srv.URL))
	results, err := svc.Run(context.Background(), "print(a+b)", "python", []model.TestCase{
		{Input: "1 2", ExpectedOutput: "3"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || results[0].Got != "3" {
		t.Fatalf("results = %+v, want the decoded case", results)
	}
	if received.Language != "python" || len(received.TestCases) != 1 {
		t.Errorf("forwarded request = %+v, want code, language and cases", received)
	}
}

func TestRunnerServiceRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sandbox exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewRunnerService(runnerConfig(srv.URL))
	if _, err := svc.Run(context.Background(), "x", "python", nil); err == nil {
		t.Fatal("err = nil, want status error")
	}
}

func TestRunnerServiceUnconfigured(t *testing.T) {
	svc := NewRunnerService(runnerConfig(""))
	if _, err := svc.Run(context.Background(), "x", "python", nil); err == nil {
		t.Fatal("err = nil, want configuration error")
	}
}
