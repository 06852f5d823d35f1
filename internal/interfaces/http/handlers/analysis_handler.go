package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takweol/casematch/pkg/errors"
	"github.com/takweol/casematch/pkg/types/consultation"
)

// AnalysisService is the application surface the handler needs.
type AnalysisService interface {
	Analyze(ctx context.Context, req consultation.AnalyzeRequest) (*consultation.AnalyzeResponse, error)
}

// AnalysisHandler serves POST /api/v1/analysis.
type AnalysisHandler struct {
	service AnalysisService
}

// NewAnalysisHandler builds the handler.
func NewAnalysisHandler(service AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Analyze runs a full case analysis over the posted conversation.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req consultation.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("malformed request body").WithDetail(err.Error()))
		return
	}

	resp, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
