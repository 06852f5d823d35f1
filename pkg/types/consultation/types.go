// Package consultation defines the wire types shared by the HTTP handlers,
// the CLI, and the Go client SDK.  They mirror the domain types under
// internal/ but carry json tags and omit unexported invariants, so the
// public surface can evolve without leaking domain internals.
package consultation

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Analysis request/response
// ─────────────────────────────────────────────────────────────────────────────

// MessageDTO is one conversation turn.
type MessageDTO struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// AnalyzeRequest asks for a full case analysis of a conversation.
type AnalyzeRequest struct {
	Messages []MessageDTO `json:"messages"`

	// Complexity is simple, medium or complex; empty means medium pricing.
	Complexity string `json:"complexity,omitempty"`
}

// CostEstimateDTO is a fee band in the platform's pricing unit.
type CostEstimateDTO struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Unit string `json:"unit"`
}

// PrimaryCaseDTO is the top-ranked classification.
type PrimaryCaseDTO struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	LawReference    string   `json:"lawReference"`
	ParentCategory  string   `json:"parentCategory"`
	Confidence      int      `json:"confidence"`
	MatchedKeywords []string `json:"matchedKeywords"`
	Description     string   `json:"description,omitempty"`
	KeyFindings     []string `json:"keyFindings,omitempty"`
}

// SecondaryCaseDTO is a lower-ranked alternative classification.
type SecondaryCaseDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
}

// ExpertDTO is a recommended expert with its pitch line.
type ExpertDTO struct {
	Name          string   `json:"name"`
	Specialty     string   `json:"specialty"`
	ResolvedCases int      `json:"resolvedCases"`
	Rating        float64  `json:"rating"`
	Reason        string   `json:"reason"`
	Tags          []string `json:"tags"`
}

// AnalysisResultDTO is the full analysis payload.
type AnalysisResultDTO struct {
	PrimaryCase             PrimaryCaseDTO     `json:"primaryCase"`
	SecondaryCases          []SecondaryCaseDTO `json:"secondaryCases"`
	WinRate                 int                `json:"winRate"`
	EstimatedCost           CostEstimateDTO    `json:"estimatedCost"`
	SimilarCaseCount        int                `json:"similarCaseCount"`
	PatternMatchPercent     int                `json:"patternMatchPercent"`
	Experts                 []ExpertDTO        `json:"experts"`
	HasEvidenceSignal       bool               `json:"hasEvidenceSignal"`
	AnalysisProgressPercent int                `json:"analysisProgressPercent"`
}

// AnalyzeResponse wraps the result with cache provenance.
type AnalyzeResponse struct {
	Result *AnalysisResultDTO `json:"result"`

	// Matched is false when no category keyword appeared in the
	// conversation; Result is null in that case.
	Matched bool `json:"matched"`

	// CacheHit reports whether the result was served from the result cache.
	CacheHit bool `json:"cacheHit"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────────────────────────────────────

// CategoryDTO is the public shape of one case category.
type CategoryDTO struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	LawReference      string   `json:"lawReference"`
	ParentCategory    string   `json:"parentCategory"`
	Keywords          []string `json:"keywords"`
	BaseWinRate       int      `json:"baseWinRate"`
	CostMin           int      `json:"costMin"`
	CostMax           int      `json:"costMax"`
	CostUnit          string   `json:"costUnit"`
	PlatformCaseCount int      `json:"platformCaseCount"`
	Description       string   `json:"description,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Leads
// ─────────────────────────────────────────────────────────────────────────────

// CreateLeadRequest submits an analysis snapshot to the expert inbox.
type CreateLeadRequest struct {
	Messages   []MessageDTO `json:"messages"`
	Complexity string       `json:"complexity,omitempty"`
}

// LeadDTO is the public shape of one expert lead.
type LeadDTO struct {
	ID               string    `json:"id"`
	CategoryID       string    `json:"categoryId"`
	CategoryName     string    `json:"categoryName"`
	Confidence       int       `json:"confidence"`
	WinRate          int       `json:"winRate"`
	CostMin          int       `json:"costMin"`
	CostMax          int       `json:"costMax"`
	CostUnit         string    `json:"costUnit"`
	HasEvidence      bool      `json:"hasEvidence"`
	SimilarCaseCount int       `json:"similarCaseCount"`
	TranscriptDigest string    `json:"transcriptDigest"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UpdateLeadStatusRequest moves a lead along the expert workflow.
type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
