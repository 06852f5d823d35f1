// Package consultation is the application service tying the analysis engine
// to the cache, the lead store and the event bus.
package consultation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/takweol/casematch/internal/analysis"
	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/domain/catalog"
	"github.com/takweol/casematch/internal/domain/conversation"
	"github.com/takweol/casematch/internal/domain/lead"
	"github.com/takweol/casematch/internal/infrastructure/database/redis"
	"github.com/takweol/casematch/internal/infrastructure/messaging/kafka"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	appprom "github.com/takweol/casematch/internal/infrastructure/monitoring/prometheus"
	"github.com/takweol/casematch/pkg/errors"
	"github.com/takweol/casematch/pkg/types/consultation"
)

const maxMessages = 200

// EventPublisher is the messaging port; *kafka.Producer implements it.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event interface{}) error
}

// Service exposes the consultation use cases.
type Service struct {
	engine   *analysis.Engine
	cache    redis.Cache
	cacheCfg config.CacheConfig
	leads    lead.Repository
	events   EventPublisher
	metrics  *appprom.Metrics
	logger   logging.Logger
	now      func() time.Time
}

// NewService wires the use cases.  cache may be nil when caching is
// disabled; events may be a no-op producer.
func NewService(engine *analysis.Engine, cache redis.Cache, cacheCfg config.CacheConfig,
	leads lead.Repository, events EventPublisher, metrics *appprom.Metrics, log logging.Logger) *Service {
	return &Service{
		engine:   engine,
		cache:    cache,
		cacheCfg: cacheCfg,
		leads:    leads,
		events:   events,
		metrics:  metrics,
		logger:   log,
		now:      time.Now,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Analysis
// ─────────────────────────────────────────────────────────────────────────────

// Analyze runs a full case analysis over the conversation, serving repeated
// requests for the same transcript from the result cache.
func (s *Service) Analyze(ctx context.Context, req consultation.AnalyzeRequest) (*consultation.AnalyzeResponse, error) {
	history, complexity, err := s.parseRequest(req)
	if err != nil {
		s.metrics.ObserveAnalysis("", appprom.OutcomeRejected, 0)
		return nil, err
	}

	if s.cache != nil && s.cacheCfg.Enabled {
		if resp, ok := s.fromCache(ctx, history, complexity); ok {
			return resp, nil
		}
	}

	resp, result := s.analyze(history, complexity)
	if result != nil {
		s.storeInCache(ctx, history, complexity, resp.Result)
		s.publishAnalysisCompleted(ctx, result, history.UserTurns())
	}
	return resp, nil
}

func (s *Service) parseRequest(req consultation.AnalyzeRequest) (conversation.History, analysis.Complexity, error) {
	if len(req.Messages) == 0 {
		return nil, "", errors.InvalidParam("messages must not be empty")
	}
	if len(req.Messages) > maxMessages {
		return nil, "", errors.InvalidParam("too many messages")
	}

	history := make(conversation.History, 0, len(req.Messages))
	for i, m := range req.Messages {
		role := conversation.Role(m.Role)
		if !role.Valid() {
			return nil, "", errors.InvalidParam("unknown message role").
				WithDetail(fmt.Sprintf("role=%q index=%d", m.Role, i))
		}
		history = append(history, conversation.Message{Role: role, Text: m.Text})
	}

	switch req.Complexity {
	case "", string(analysis.ComplexitySimple), string(analysis.ComplexityMedium), string(analysis.ComplexityComplex):
	default:
		return nil, "", errors.InvalidParam("unknown complexity").WithDetail(req.Complexity)
	}
	complexity := analysis.Complexity(req.Complexity)
	if complexity == "" {
		complexity = analysis.ComplexityMedium
	}
	return history, complexity, nil
}

func (s *Service) analyze(history conversation.History, complexity analysis.Complexity) (*consultation.AnalyzeResponse, *analysis.AnalysisResult) {
	start := s.now()
	result := s.engine.PerformFullAnalysis(history, complexity)
	elapsed := s.now().Sub(start)

	if result == nil {
		s.metrics.ObserveAnalysis("", appprom.OutcomeNoMatch, elapsed)
		return &consultation.AnalyzeResponse{Matched: false}, nil
	}

	s.metrics.ObserveAnalysis(result.PrimaryCase.ID, appprom.OutcomeMatched, elapsed)
	return &consultation.AnalyzeResponse{
		Result:  toResultDTO(result),
		Matched: true,
	}, result
}

func (s *Service) fromCache(ctx context.Context, history conversation.History, complexity analysis.Complexity) (*consultation.AnalyzeResponse, bool) {
	var cached consultation.AnalysisResultDTO
	err := s.cache.Get(ctx, cacheKey(history, complexity), &cached)
	switch {
	case err == nil:
		s.metrics.CacheHits.Inc()
		s.metrics.ObserveAnalysis(cached.PrimaryCase.ID, appprom.OutcomeCachedHit, 0)
		return &consultation.AnalyzeResponse{Result: &cached, Matched: true, CacheHit: true}, true
	case err == redis.ErrCacheMiss:
		s.metrics.CacheMisses.Inc()
	default:
		// A broken cache must never break analysis.
		s.logger.Warn("result cache read failed", logging.Err(err))
	}
	return nil, false
}

func (s *Service) storeInCache(ctx context.Context, history conversation.History, complexity analysis.Complexity, dto *consultation.AnalysisResultDTO) {
	if s.cache == nil || !s.cacheCfg.Enabled {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(history, complexity), dto, s.cacheCfg.ResultTTL); err != nil {
		s.logger.Warn("result cache write failed", logging.Err(err))
	}
}

func (s *Service) publishAnalysisCompleted(ctx context.Context, result *analysis.AnalysisResult, userTurns int) {
	event := kafka.AnalysisCompletedEvent{
		CategoryID:          result.PrimaryCase.ID,
		Confidence:          result.PrimaryCase.Confidence,
		WinRate:             result.WinRate,
		PatternMatchPercent: result.PatternMatchPercent,
		UserTurns:           userTurns,
		CompletedAt:         s.now().UTC(),
	}
	if err := s.events.Publish(ctx, kafka.TopicAnalysisCompleted, result.PrimaryCase.ID, event); err != nil {
		s.logger.Warn("failed to publish analysis event", logging.Err(err))
	}
}

// TranscriptDigest is the SHA-256 hex digest of the joined user transcript.
func TranscriptDigest(history conversation.History) string {
	sum := sha256.Sum256([]byte(history.UserText()))
	return hex.EncodeToString(sum[:])
}

func cacheKey(history conversation.History, complexity analysis.Complexity) string {
	return "analysis:" + string(complexity) + ":" + TranscriptDigest(history)
}

// ─────────────────────────────────────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────────────────────────────────────

// Categories lists every case category in catalog order.
func (s *Service) Categories() []consultation.CategoryDTO {
	all := catalog.All()
	out := make([]consultation.CategoryDTO, len(all))
	for i, c := range all {
		out[i] = NewCategoryDTO(c)
	}
	return out
}

// Category returns one case category.
func (s *Service) Category(id string) (consultation.CategoryDTO, error) {
	c, ok := catalog.ByID(id)
	if !ok {
		return consultation.CategoryDTO{}, errors.NotFound("case category not found").WithDetail("id=" + id)
	}
	return NewCategoryDTO(c), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Leads
// ─────────────────────────────────────────────────────────────────────────────

// CreateLead analyzes the conversation and files the snapshot as an expert
// lead.  A conversation with no recognizable category is rejected.
func (s *Service) CreateLead(ctx context.Context, req consultation.CreateLeadRequest) (*consultation.LeadDTO, error) {
	history, complexity, err := s.parseRequest(consultation.AnalyzeRequest{
		Messages:   req.Messages,
		Complexity: req.Complexity,
	})
	if err != nil {
		return nil, err
	}

	resp, result := s.analyze(history, complexity)
	if result == nil {
		return nil, errors.InvalidParam("conversation matched no case category")
	}
	dto := resp.Result

	l, err := lead.New(
		dto.PrimaryCase.ID, dto.PrimaryCase.Name,
		dto.PrimaryCase.Confidence, dto.WinRate,
		dto.EstimatedCost.Min, dto.EstimatedCost.Max, dto.EstimatedCost.Unit,
		dto.HasEvidenceSignal, dto.SimilarCaseCount,
		TranscriptDigest(history), s.now(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}
	s.metrics.LeadsCreated.WithLabelValues(l.CategoryID).Inc()
	s.logger.Info("lead created",
		logging.String("lead_id", l.ID),
		logging.String("category_id", l.CategoryID),
		logging.Int("win_rate", l.WinRate),
	)

	event := kafka.LeadCreatedEvent{
		LeadID:       l.ID,
		CategoryID:   l.CategoryID,
		CategoryName: l.CategoryName,
		Confidence:   l.Confidence,
		WinRate:      l.WinRate,
		HasEvidence:  l.HasEvidence,
		CreatedAt:    l.CreatedAt,
	}
	if err := s.events.Publish(ctx, kafka.TopicLeadCreated, l.ID, event); err != nil {
		s.logger.Warn("failed to publish lead event", logging.Err(err))
	}

	return toLeadDTO(l), nil
}

// GetLead loads one lead.
func (s *Service) GetLead(ctx context.Context, id string) (*consultation.LeadDTO, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLeadDTO(l), nil
}

// ListLeads returns leads newest first, optionally filtered by status and
// category.
func (s *Service) ListLeads(ctx context.Context, status, categoryID string, limit, offset int) ([]consultation.LeadDTO, error) {
	if status != "" && !lead.Status(status).Valid() {
		return nil, errors.InvalidParam("unknown lead status").WithDetail(status)
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	list, err := s.leads.List(ctx, lead.ListFilter{
		Status:     lead.Status(status),
		CategoryID: categoryID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]consultation.LeadDTO, len(list))
	for i, l := range list {
		out[i] = *toLeadDTO(l)
	}
	return out, nil
}

// UpdateLeadStatus moves a lead along the expert workflow.
func (s *Service) UpdateLeadStatus(ctx context.Context, id, status string) (*consultation.LeadDTO, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := l.TransitionTo(lead.Status(status), s.now()); err != nil {
		return nil, err
	}
	if err := s.leads.UpdateStatus(ctx, l); err != nil {
		return nil, err
	}
	return toLeadDTO(l), nil
}
