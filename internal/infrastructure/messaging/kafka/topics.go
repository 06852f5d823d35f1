// Package kafka publishes domain events to the platform event bus.
package kafka

import "time"

// Topic names.  The takweol. prefix namespaces this service on the shared
// cluster.
const (
	// TopicLeadCreated carries one event per expert lead accepted into the
	// inbox.
	TopicLeadCreated = "takweol.lead.created"

	// TopicAnalysisCompleted carries one event per analysis that matched a
	// category, cache hits excluded.
	TopicAnalysisCompleted = "takweol.analysis.completed"
)

// LeadCreatedEvent is the payload on TopicLeadCreated.
type LeadCreatedEvent struct {
	LeadID       string    `json:"leadId"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Confidence   int       `json:"confidence"`
	WinRate      int       `json:"winRate"`
	HasEvidence  bool      `json:"hasEvidence"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AnalysisCompletedEvent is the payload on TopicAnalysisCompleted.
type AnalysisCompletedEvent struct {
	CategoryID          string    `json:"categoryId"`
	Confidence          int       `json:"confidence"`
	WinRate             int       `json:"winRate"`
	PatternMatchPercent int       `json:"patternMatchPercent"`
	UserTurns           int       `json:"userTurns"`
	CompletedAt         time.Time `json:"completedAt"`
}
