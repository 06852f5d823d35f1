// Package lead implements the expert-lead bounded context: an accepted case
// analysis becomes a Lead routed to the expert inbox, carrying the analysis
// snapshot the expert needs to decide whether to send a proposal.
package lead

import (
	"time"

	"github.com/google/uuid"

	"github.com/takweol/casematch/internal/domain/catalog"
	"github.com/takweol/casematch/pkg/errors"
)

// Status is the lead's position in the expert workflow.
type Status string

const (
	// StatusNew marks a lead no expert has opened yet.
	StatusNew Status = "new"

	// StatusViewed marks a lead an expert has opened.
	StatusViewed Status = "viewed"

	// StatusProposalSent marks a lead answered with a proposal.
	StatusProposalSent Status = "proposal_sent"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusViewed, StatusProposalSent:
		return true
	}
	return false
}

// allowedTransitions defines the legal next states from each status.
//
//	new ──► viewed ──► proposal_sent
var allowedTransitions = map[Status][]Status{
	StatusNew:          {StatusViewed},
	StatusViewed:       {StatusProposalSent},
	StatusProposalSent: {},
}

// Lead is an analysis snapshot submitted for expert follow-up.
type Lead struct {
	ID               string
	CategoryID       string
	CategoryName     string
	Confidence       int
	WinRate          int
	CostMin          int
	CostMax          int
	CostUnit         string
	HasEvidence      bool
	SimilarCaseCount int

	// TranscriptDigest is the SHA-256 hex digest of the user transcript the
	// analysis was computed from.  The transcript itself never leaves the
	// chat service; the digest lets an expert-side duplicate check work
	// without exposing the conversation.
	TranscriptDigest string

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New constructs a StatusNew lead after validating the snapshot fields.
func New(categoryID, categoryName string, confidence, winRate, costMin, costMax int, costUnit string, hasEvidence bool, similarCases int, transcriptDigest string, now time.Time) (*Lead, error) {
	if _, ok := catalog.ByID(categoryID); !ok {
		return nil, errors.InvalidParam("unknown case category").WithDetail("category_id=" + categoryID)
	}
	if confidence < 0 || confidence > 100 {
		return nil, errors.InvalidParam("confidence out of range")
	}
	if winRate < 0 || winRate > 100 {
		return nil, errors.InvalidParam("win rate out of range")
	}
	if costMin > costMax {
		return nil, errors.InvalidParam("cost band inverted")
	}
	if transcriptDigest == "" {
		return nil, errors.InvalidParam("transcript digest required")
	}
	return &Lead{
		ID:               uuid.NewString(),
		CategoryID:       categoryID,
		CategoryName:     categoryName,
		Confidence:       confidence,
		WinRate:          winRate,
		CostMin:          costMin,
		CostMax:          costMax,
		CostUnit:         costUnit,
		HasEvidence:      hasEvidence,
		SimilarCaseCount: similarCases,
		TranscriptDigest: transcriptDigest,
		Status:           StatusNew,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}, nil
}

// TransitionTo advances the lead to next, rejecting transitions outside the
// workflow.
func (l *Lead) TransitionTo(next Status, now time.Time) error {
	if !next.Valid() {
		return errors.InvalidParam("unknown lead status").WithDetail(string(next))
	}
	for _, allowed := range allowedTransitions[l.Status] {
		if allowed == next {
			l.Status = next
			l.UpdatedAt = now.UTC()
			return nil
		}
	}
	return errors.Conflict("illegal lead status transition").
		WithDetail(string(l.Status) + " → " + string(next))
}
