package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takweol/casematch/pkg/types/consultation"
)

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)

	_, err = NewClient("ftp://example.com")
	assert.Error(t, err)

	c, err := NewClient("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.baseURL)
}

func TestAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/analysis", r.URL.Path)

		var req consultation.AnalyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)

		_ = json.NewEncoder(w).Encode(consultation.AnalyzeResponse{
			Matched: true,
			Result: &consultation.AnalysisResultDTO{
				PrimaryCase: consultation.PrimaryCaseDTO{ID: "fraud", Name: "사기", Confidence: 65},
				WinRate:     59,
			},
		})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	resp, err := c.Analyze(context.Background(), consultation.AnalyzeRequest{
		Messages: []consultation.MessageDTO{{Role: "user", Text: "사기를 당했어요"}},
	})
	require.NoError(t, err)
	require.True(t, resp.Matched)
	assert.Equal(t, "fraud", resp.Result.PrimaryCase.ID)
	assert.Equal(t, 59, resp.Result.WinRate)
}

func TestCategoryNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(consultation.ErrorResponse{
			Code:    1002,
			Message: "case category not found",
		})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Category(context.Background(), "unknown")
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, 1002, apiErr.Code)
	assert.Contains(t, apiErr.Error(), "case category not found")
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"categories": []consultation.CategoryDTO{}})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, WithRetry(3))
	require.NoError(t, err)
	c.retryWaitMin = time.Millisecond
	c.retryWaitMax = 2 * time.Millisecond

	_, err = c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(consultation.ErrorResponse{Code: 1001, Message: "bad request"})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, WithRetry(3))
	require.NoError(t, err)
	c.retryWaitMin = time.Millisecond

	_, err = c.Analyze(context.Background(), consultation.AnalyzeRequest{})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLeadWorkflow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/leads", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(consultation.LeadDTO{ID: "lead-1", Status: "new"})
	})
	mux.HandleFunc("PATCH /api/v1/leads/lead-1/status", func(w http.ResponseWriter, r *http.Request) {
		var req consultation.UpdateLeadStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(consultation.LeadDTO{ID: "lead-1", Status: req.Status})
	})
	mux.HandleFunc("GET /api/v1/leads", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "viewed", r.URL.Query().Get("status"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"leads": []consultation.LeadDTO{{ID: "lead-1", Status: "viewed"}},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := c.CreateLead(ctx, consultation.CreateLeadRequest{
		Messages: []consultation.MessageDTO{{Role: "user", Text: "임금 체불 상담"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "new", created.Status)

	updated, err := c.UpdateLeadStatus(ctx, "lead-1", "viewed")
	require.NoError(t, err)
	assert.Equal(t, "viewed", updated.Status)

	leads, err := c.ListLeads(ctx, LeadListOptions{Status: "viewed"})
	require.NoError(t, err)
	require.Len(t, leads, 1)
}
