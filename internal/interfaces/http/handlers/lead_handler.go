package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/takweol/casematch/pkg/errors"
	"github.com/takweol/casematch/pkg/types/consultation"
)

// LeadService is the application surface for the expert inbox.
type LeadService interface {
	CreateLead(ctx context.Context, req consultation.CreateLeadRequest) (*consultation.LeadDTO, error)
	GetLead(ctx context.Context, id string) (*consultation.LeadDTO, error)
	ListLeads(ctx context.Context, status, categoryID string, limit, offset int) ([]consultation.LeadDTO, error)
	UpdateLeadStatus(ctx context.Context, id, status string) (*consultation.LeadDTO, error)
}

// LeadHandler serves the /api/v1/leads endpoints.
type LeadHandler struct {
	service LeadService
}

// NewLeadHandler builds the handler.
func NewLeadHandler(service LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// Create analyzes a conversation and files it as an expert lead.
func (h *LeadHandler) Create(c *gin.Context) {
	var req consultation.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("malformed request body").WithDetail(err.Error()))
		return
	}

	dto, err := h.service.CreateLead(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// Get returns one lead by id.
func (h *LeadHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.InvalidParam("lead id must be a UUID"))
		return
	}

	dto, err := h.service.GetLead(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// List returns leads, newest first, filtered by optional status and
// category query parameters.
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.service.ListLeads(c.Request.Context(),
		c.Query("status"),
		c.Query("category"),
		queryInt(c, "limit", 50),
		queryInt(c, "offset", 0),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	if leads == nil {
		leads = []consultation.LeadDTO{}
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// UpdateStatus moves a lead along the expert workflow.
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.InvalidParam("lead id must be a UUID"))
		return
	}

	var req consultation.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("malformed request body").WithDetail(err.Error()))
		return
	}

	dto, err := h.service.UpdateLeadStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}
