package analysis

import (
	"math/rand"
	"sync"
	"time"

	"github.com/takweol/casematch/internal/domain/catalog"
	"github.com/takweol/casematch/internal/domain/conversation"
)

// Pattern-match and progress heuristics of the assembled report.
const (
	patternBase        = 70
	patternPerDistinct = 5
	patternCap         = 95

	progressPerTurn = 25
	progressCap     = 100
)

// secondaryLimit caps how many runner-up categories the report exposes.
const secondaryLimit = 2

// PrimaryCase is the full projection of the top-ranked match.
type PrimaryCase struct {
	ID              string
	Name            string
	LawReference    string
	ParentCategory  string
	Confidence      int
	MatchedKeywords []string
	Description     string
	KeyFindings     []string
}

// SecondaryCase is the reduced projection of a runner-up match.
type SecondaryCase struct {
	ID         string
	Name       string
	Confidence int
}

// AnalysisResult is the assembled case-analysis report.  It is computed fresh
// on every call and owned by the caller afterwards; the engine keeps no
// reference to it.
type AnalysisResult struct {
	PrimaryCase             PrimaryCase
	SecondaryCases          []SecondaryCase
	WinRate                 int
	EstimatedCost           CostEstimate
	SimilarCaseCount        int
	PatternMatchPercent     int
	Experts                 []RecommendedExpert
	HasEvidenceSignal       bool
	AnalysisProgressPercent int
}

// Engine orchestrates the classifier and the metric calculators over a
// conversation snapshot.  It is safe for concurrent use; the only shared
// state is the random source behind the similar-case jitter, which is
// serialized internally.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine constructs an Engine.  A nil rng selects a time-seeded source;
// tests inject a fixed seed to make the jittered metric reproducible.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// PerformFullAnalysis classifies the conversation and assembles the full
// report.  It returns nil when the history carries no user text or no
// category keyword matched, the expected "keep chatting, nothing detected
// yet" state, not an error.
//
// complexity grades the cost estimate; the empty value behaves as medium.
func (e *Engine) PerformFullAnalysis(history conversation.History, complexity Complexity) *AnalysisResult {
	fullText := history.UserText()

	matches := AnalyzeText(fullText)
	if len(matches) == 0 {
		return nil
	}

	primary := matches[0]
	userTurns := history.UserTurns()
	hasEvidence := HasEvidenceSignal(fullText)

	var secondaries []SecondaryCase
	for _, m := range matches[1:] {
		if len(secondaries) == secondaryLimit {
			break
		}
		secondaries = append(secondaries, SecondaryCase{
			ID:         m.Category.ID,
			Name:       m.Category.Name,
			Confidence: m.Confidence,
		})
	}

	return &AnalysisResult{
		PrimaryCase: PrimaryCase{
			ID:              primary.Category.ID,
			Name:            primary.Category.Name,
			LawReference:    primary.Category.LawReference,
			ParentCategory:  primary.Category.ParentCategory,
			Confidence:      primary.Confidence,
			MatchedKeywords: primary.MatchedKeywords,
			Description:     primary.Category.Description,
			KeyFindings:     primary.Category.KeyFindings,
		},
		SecondaryCases:          secondaries,
		WinRate:                 CalculateWinRate(primary.Category, userTurns, hasEvidence),
		EstimatedCost:           CalculateCost(primary.Category, complexity),
		SimilarCaseCount:        e.similarCaseCount(primary.Category),
		PatternMatchPercent:     patternMatch(len(primary.MatchedKeywords)),
		Experts:                 MatchingExperts(primary.Category, len(primary.Category.SampleExperts)),
		HasEvidenceSignal:       hasEvidence,
		AnalysisProgressPercent: progress(userTurns),
	}
}

func (e *Engine) similarCaseCount(cat *catalog.CaseCategory) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return SimilarCaseCount(cat, e.rng)
}

func patternMatch(distinct int) int {
	p := patternBase + distinct*patternPerDistinct
	if p > patternCap {
		return patternCap
	}
	return p
}

func progress(userTurns int) int {
	p := userTurns * progressPerTurn
	if p > progressCap {
		return progressCap
	}
	return p
}
