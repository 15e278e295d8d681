package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/algo-odyssey/backend/config"
	"github.com/algo-odyssey/backend/internal/model"
)

// CaseResult is one test-case outcome reported by the code runner.
type CaseResult struct {
	Got      string  `json:"got"`
	Expected string  `json:"expected"`
	Runtime  float64 `json:"runtime"` // seconds
}

// RunnerService is the external code-execution collaborator. Sandboxing is
// its problem; we only see per-case outputs and runtimes.
type RunnerService interface {
	Run(ctx context.Context, code, language string, cases []model.TestCase) ([]CaseResult, error)
}

type httpRunnerService struct {
	url    string
	client *http.Client
}

func NewRunnerService(cfg *config.Config) RunnerService {
	return &httpRunnerService{
		url:    cfg.Runner.URL,
		client: &http.Client{Timeout: cfg.Runner.Timeout},
	}
}

type runnerRequest struct {
	Code      string           `json:"code"`
	Language  string           `json:"language"`
	TestCases []runnerTestCase `json:"test_cases"`
}

type runnerTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

type runnerResponse struct {
	Results []CaseResult `json:"results"`
	Message string       `json:"message,omitempty"`
}

func (s *httpRunnerService) Run(ctx context.Context, code, language string, cases []model.TestCase) ([]CaseResult, error) {
	if s.url == "" {
		return nil, fmt.Errorf("code runner not configured")
	}

	reqBody := runnerRequest{Code: code, Language: language}
	for _, tc := range cases {
		reqBody.TestCases = append(reqBody.TestCases, runnerTestCase{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode runner request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build runner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("runner request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("runner returned status %d", resp.StatusCode)
	}

	var body runnerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode runner response: %w", err)
	}
	return body.Results, nil
}

// GradeResults turns per-case results into a 0-100 correctness score and the
// slowest per-case runtime. A case passes on trimmed-string equality.
func GradeResults(results []CaseResult) (correctness float64, maxRuntime float64) {
	if len(results) == 0 {
		return 0, 0
	}
	passed := 0
	for _, r := range results {
		if strings.TrimSpace(r.Got) == strings.TrimSpace(r.Expected) {
			passed++
		}
		maxRuntime = max(maxRuntime, r.Runtime)
	}
	return 100 * float64(passed) / float64(len(results)), maxRuntime
}
