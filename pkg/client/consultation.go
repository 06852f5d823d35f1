package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/takweol/casematch/pkg/types/consultation"
)

// Analyze classifies a conversation and returns the derived case metrics.
func (c *Client) Analyze(ctx context.Context, req consultation.AnalyzeRequest) (*consultation.AnalyzeResponse, error) {
	var resp consultation.AnalyzeResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/analysis", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Categories lists every case category.
func (c *Client) Categories(ctx context.Context) ([]consultation.CategoryDTO, error) {
	var resp struct {
		Categories []consultation.CategoryDTO `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Category fetches one case category by id.
func (c *Client) Category(ctx context.Context, id string) (*consultation.CategoryDTO, error) {
	var cat consultation.CategoryDTO
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories/"+url.PathEscape(id), nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateLead files a conversation as an expert lead.
func (c *Client) CreateLead(ctx context.Context, req consultation.CreateLeadRequest) (*consultation.LeadDTO, error) {
	var dto consultation.LeadDTO
	if err := c.do(ctx, http.MethodPost, "/api/v1/leads", req, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// GetLead fetches one lead by id.
func (c *Client) GetLead(ctx context.Context, id string) (*consultation.LeadDTO, error) {
	var dto consultation.LeadDTO
	if err := c.do(ctx, http.MethodGet, "/api/v1/leads/"+url.PathEscape(id), nil, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// LeadListOptions filter a lead listing.
type LeadListOptions struct {
	Status     string
	CategoryID string
	Limit      int
	Offset     int
}

// ListLeads returns leads newest first.
func (c *Client) ListLeads(ctx context.Context, opts LeadListOptions) ([]consultation.LeadDTO, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.CategoryID != "" {
		q.Set("category", opts.CategoryID)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	path := "/api/v1/leads"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Leads []consultation.LeadDTO `json:"leads"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Leads, nil
}

// UpdateLeadStatus moves a lead along the expert workflow.
func (c *Client) UpdateLeadStatus(ctx context.Context, id, status string) (*consultation.LeadDTO, error) {
	var dto consultation.LeadDTO
	req := consultation.UpdateLeadStatusRequest{Status: status}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/leads/"+url.PathEscape(id)+"/status", req, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}
