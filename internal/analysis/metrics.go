package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/takweol/casematch/internal/domain/catalog"
)

// Complexity grades a case for cost estimation.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// multiplier returns the cost multiplier for the grade.  Unrecognized grades
// (including the empty string) fall back to the medium multiplier.
func (c Complexity) multiplier() float64 {
	switch c {
	case ComplexitySimple:
		return 0.8
	case ComplexityComplex:
		return 1.3
	default:
		return 1.0
	}
}

// Win-rate bonus constants.  More conversational detail and corroborating
// evidence raise the presented estimate, but the system never claims
// certainty: the result is capped at winRateCap.
const (
	winRatePerTurn   = 2
	winRateTurnCapAt = 10
	winRateEvidence  = 8
	winRateCap       = 95
)

// CalculateWinRate derives the presented success estimate for a category:
// the catalog baseline, plus 2 points per user turn capped at 10, plus 8
// when an evidence signal was detected, clamped to 95.  All terms are
// non-negative, so the baseline is also the floor.
func CalculateWinRate(cat *catalog.CaseCategory, userTurns int, hasEvidence bool) int {
	rate := cat.BaseWinRate

	turnBonus := userTurns * winRatePerTurn
	if turnBonus > winRateTurnCapAt {
		turnBonus = winRateTurnCapAt
	}
	rate += turnBonus

	if hasEvidence {
		rate += winRateEvidence
	}

	if rate > winRateCap {
		return winRateCap
	}
	return rate
}

// CostEstimate is a presentation-ready fee band.
type CostEstimate struct {
	Min  int
	Max  int
	Unit string
}

// CalculateCost scales the category's baseline fee band by the complexity
// multiplier, rounding each bound to the nearest integer.
func CalculateCost(cat *catalog.CaseCategory, complexity Complexity) CostEstimate {
	m := complexity.multiplier()
	return CostEstimate{
		Min:  int(math.Round(float64(cat.BaseCost.Min) * m)),
		Max:  int(math.Round(float64(cat.BaseCost.Max) * m)),
		Unit: catalog.CostUnit,
	}
}

// Similar-case jitter bounds.  The count is presentational: the baseline
// shifted by a uniform offset in [-10, +9] and floored at 10.
const (
	similarJitterSpan  = 20
	similarJitterShift = -10
	similarFloor       = 10
)

// SimilarCaseCount returns the jittered similar-case figure for the category.
// The caller owns the random source; the engine serializes access to its own.
func SimilarCaseCount(cat *catalog.CaseCategory, rng *rand.Rand) int {
	n := cat.PlatformCaseCount + rng.Intn(similarJitterSpan) + similarJitterShift
	if n < similarFloor {
		return similarFloor
	}
	return n
}

// RecommendedExpert is a roster entry decorated for display.
type RecommendedExpert struct {
	catalog.ExpertRecord

	// Reason is the templated recommendation line, e.g.
	// "임금 체불 사건 45건 해결".
	Reason string

	// Tags holds the specialty and a rating badge, e.g. "평점 4.9".
	Tags []string
}

// MatchingExperts projects the first limit entries of the category roster
// into display form.  Rosters hold exactly three experts, so limit is a
// ceiling rather than a selector; no attribute of the conversation
// participates in the choice.
func MatchingExperts(cat *catalog.CaseCategory, limit int) []RecommendedExpert {
	if limit > len(cat.SampleExperts) {
		limit = len(cat.SampleExperts)
	}
	out := make([]RecommendedExpert, 0, limit)
	for _, e := range cat.SampleExperts[:limit] {
		out = append(out, RecommendedExpert{
			ExpertRecord: e,
			Reason:       fmt.Sprintf("%s 사건 %d건 해결", cat.Name, e.ResolvedCases),
			Tags:         []string{e.Specialty, "평점 " + formatRating(e.Rating)},
		})
	}
	return out
}

// formatRating renders a rating without trailing zeros (5.0 → "5", 4.9 →
// "4.9"), matching the platform's display convention.
func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
