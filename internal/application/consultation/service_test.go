package consultation

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takweol/casematch/internal/analysis"
	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/domain/catalog"
	"github.com/takweol/casematch/internal/domain/lead"
	"github.com/takweol/casematch/internal/infrastructure/database/redis"
	"github.com/takweol/casematch/internal/infrastructure/messaging/kafka"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	appprom "github.com/takweol/casematch/internal/infrastructure/monitoring/prometheus"
	"github.com/takweol/casematch/pkg/errors"
	"github.com/takweol/casematch/pkg/types/consultation"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────────────────────────────────────

type fakeLeadRepo struct {
	mu    sync.Mutex
	leads map[string]*lead.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*lead.Lead)}
}

func (f *fakeLeadRepo) Create(_ context.Context, l *lead.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.leads {
		if existing.CategoryID == l.CategoryID && existing.TranscriptDigest == l.TranscriptDigest {
			return errors.Conflict("lead already exists for this conversation")
		}
	}
	cp := *l
	f.leads[l.ID] = &cp
	return nil
}

func (f *fakeLeadRepo) GetByID(_ context.Context, id string) (*lead.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leads[id]
	if !ok {
		return nil, errors.NotFound("lead not found")
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeadRepo) List(_ context.Context, filter lead.ListFilter) ([]*lead.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*lead.Lead
	for _, l := range f.leads {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.CategoryID != "" && l.CategoryID != filter.CategoryID {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeLeadRepo) UpdateStatus(_ context.Context, l *lead.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.leads[l.ID]
	if !ok {
		return errors.NotFound("lead not found")
	}
	stored.Status = l.Status
	stored.UpdatedAt = l.UpdatedAt
	return nil
}

type publishedEvent struct {
	topic string
	key   string
	event interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakePublisher) Publish(_ context.Context, topic, key string, event interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{topic: topic, key: key, event: event})
	return nil
}

func (f *fakePublisher) byTopic(topic string) []publishedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []publishedEvent
	for _, e := range f.events {
		if e.topic == topic {
			out = append(out, e)
		}
	}
	return out
}

func newTestService(t *testing.T) (*Service, *fakeLeadRepo, *fakePublisher) {
	t.Helper()
	repo := newFakeLeadRepo()
	pub := &fakePublisher{}
	svc := NewService(
		analysis.NewEngine(nil),
		nil, config.CacheConfig{},
		repo, pub,
		appprom.New(),
		logging.NewNopLogger(),
	)
	return svc, repo, pub
}

func userMessages(texts ...string) []consultation.MessageDTO {
	var out []consultation.MessageDTO
	for _, tx := range texts {
		out = append(out, consultation.MessageDTO{Role: "user", Text: tx})
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Analyze
// ─────────────────────────────────────────────────────────────────────────────

func TestAnalyzeMatched(t *testing.T) {
	svc, _, pub := newTestService(t)

	resp, err := svc.Analyze(context.Background(), consultation.AnalyzeRequest{
		Messages: userMessages("월급을 두 달째 못 받고 있어요"),
	})
	require.NoError(t, err)
	require.True(t, resp.Matched)
	require.NotNil(t, resp.Result)
	assert.False(t, resp.CacheHit)
	assert.Equal(t, catalog.WageTheft, resp.Result.PrimaryCase.ID)
	assert.Equal(t, "만원", resp.Result.EstimatedCost.Unit)
	assert.Equal(t, 25, resp.Result.AnalysisProgressPercent)

	events := pub.byTopic(kafka.TopicAnalysisCompleted)
	require.Len(t, events, 1)
	evt := events[0].event.(kafka.AnalysisCompletedEvent)
	assert.Equal(t, catalog.WageTheft, evt.CategoryID)
	assert.Equal(t, 1, evt.UserTurns)
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.store[key]
	if !ok {
		return redis.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = data
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.store, k)
	}
	return nil
}

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.store[key]
	return ok, nil
}

func (f *fakeCache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func(ctx context.Context) (interface{}, error)) error {
	if err := f.Get(ctx, key, dest); err == nil {
		return nil
	}
	loaded, err := loader(ctx)
	if err != nil {
		return err
	}
	if loaded == nil {
		return redis.ErrCacheMiss
	}
	return f.Set(ctx, key, loaded, ttl)
}

func (f *fakeCache) Ping(context.Context) error { return nil }

func TestAnalyzeServedFromCache(t *testing.T) {
	cache := newFakeCache()
	svc := NewService(
		analysis.NewEngine(nil),
		cache, config.CacheConfig{Enabled: true, ResultTTL: time.Minute},
		newFakeLeadRepo(), &fakePublisher{},
		appprom.New(),
		logging.NewNopLogger(),
	)
	req := consultation.AnalyzeRequest{
		Messages: userMessages("이혼하고 위자료와 양육권을 정리하고 싶습니다"),
	}

	first, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.True(t, first.Matched)
	assert.False(t, first.CacheHit)

	second, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.True(t, second.Matched)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Result, second.Result)
}

func TestAnalyzeNoMatch(t *testing.T) {
	svc, _, pub := newTestService(t)

	resp, err := svc.Analyze(context.Background(), consultation.AnalyzeRequest{
		Messages: userMessages("오늘 날씨가 참 좋네요"),
	})
	require.NoError(t, err)
	assert.False(t, resp.Matched)
	assert.Nil(t, resp.Result)
	assert.Empty(t, pub.byTopic(kafka.TopicAnalysisCompleted))
}

func TestAnalyzeValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, consultation.AnalyzeRequest{})
	assert.True(t, errors.IsInvalidParam(err))

	_, err = svc.Analyze(ctx, consultation.AnalyzeRequest{
		Messages: []consultation.MessageDTO{{Role: "system", Text: "x"}},
	})
	assert.True(t, errors.IsInvalidParam(err))

	_, err = svc.Analyze(ctx, consultation.AnalyzeRequest{
		Messages:   userMessages("이혼하고 싶어요"),
		Complexity: "extreme",
	})
	assert.True(t, errors.IsInvalidParam(err))
}

func TestAnalyzeComplexityDefaultsToMedium(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	implicit, err := svc.Analyze(ctx, consultation.AnalyzeRequest{
		Messages: userMessages("전세 보증금을 돌려받지 못했습니다"),
	})
	require.NoError(t, err)
	explicit, err := svc.Analyze(ctx, consultation.AnalyzeRequest{
		Messages:   userMessages("전세 보증금을 돌려받지 못했습니다"),
		Complexity: "medium",
	})
	require.NoError(t, err)
	assert.Equal(t, explicit.Result.EstimatedCost, implicit.Result.EstimatedCost)
}

// ─────────────────────────────────────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────────────────────────────────────

func TestCategories(t *testing.T) {
	svc, _, _ := newTestService(t)

	cats := svc.Categories()
	require.Len(t, cats, catalog.Len())
	assert.Equal(t, catalog.WorkplaceHarassment, cats[0].ID)
	assert.Equal(t, "만원", cats[0].CostUnit)
	assert.NotEmpty(t, cats[0].Keywords)
}

func TestCategoryNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Category("no_such_category")
	assert.True(t, errors.IsNotFound(err))

	got, err := svc.Category(catalog.Divorce)
	require.NoError(t, err)
	assert.Equal(t, "이혼", got.Name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Leads
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateLead(t *testing.T) {
	svc, repo, pub := newTestService(t)

	dto, err := svc.CreateLead(context.Background(), consultation.CreateLeadRequest{
		Messages: userMessages("상사의 폭언과 괴롭힘 때문에 녹음까지 해뒀습니다"),
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.WorkplaceHarassment, dto.CategoryID)
	assert.Equal(t, string(lead.StatusNew), dto.Status)
	assert.True(t, dto.HasEvidence)
	assert.Len(t, dto.TranscriptDigest, 64)

	stored, err := repo.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.WinRate, stored.WinRate)

	events := pub.byTopic(kafka.TopicLeadCreated)
	require.Len(t, events, 1)
	assert.Equal(t, dto.ID, events[0].key)
}

func TestCreateLeadNoMatch(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateLead(context.Background(), consultation.CreateLeadRequest{
		Messages: userMessages("안녕하세요"),
	})
	assert.True(t, errors.IsInvalidParam(err))
}

func TestCreateLeadDuplicateConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)
	req := consultation.CreateLeadRequest{
		Messages: userMessages("보이스피싱 사기를 당해서 송금까지 했습니다"),
	}

	_, err := svc.CreateLead(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.CreateLead(context.Background(), req)
	assert.True(t, errors.IsConflict(err))
}

func TestLeadStatusWorkflow(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	dto, err := svc.CreateLead(ctx, consultation.CreateLeadRequest{
		Messages: userMessages("음주운전 차에 치여 합의금 문제로 상담이 필요합니다"),
	})
	require.NoError(t, err)

	viewed, err := svc.UpdateLeadStatus(ctx, dto.ID, "viewed")
	require.NoError(t, err)
	assert.Equal(t, string(lead.StatusViewed), viewed.Status)

	_, err = svc.UpdateLeadStatus(ctx, dto.ID, "new")
	assert.True(t, errors.IsConflict(err))

	listed, err := svc.ListLeads(ctx, "viewed", "", 10, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, dto.ID, listed[0].ID)

	_, err = svc.ListLeads(ctx, "archived", "", 10, 0)
	assert.True(t, errors.IsInvalidParam(err))
}

func TestTranscriptDigestStable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateLead(ctx, consultation.CreateLeadRequest{
		Messages: userMessages("명예훼손으로 댓글 비방을 당했습니다"),
	})
	require.NoError(t, err)

	// Assistant turns do not change the transcript digest.
	mixed := append(userMessages("명예훼손으로 댓글 비방을 당했습니다"),
		consultation.MessageDTO{Role: "assistant", Text: "상황을 더 알려주세요"})
	_, err = svc.CreateLead(ctx, consultation.CreateLeadRequest{Messages: mixed})
	assert.True(t, errors.IsConflict(err), "same user transcript must collide, got %v", err)
	assert.NotEmpty(t, first.TranscriptDigest)
}
