// Package analysis implements the Takweol case-analysis engine: a
// deterministic keyword classifier over the fixed case catalog and the
// heuristic calculators that derive the presentation metrics (win rate, cost
// band, similar-case count, expert shortlist) from a classified category.
//
// Everything here is a pure function of the conversation snapshot and the
// catalog, with one documented exception: the similar-case count carries
// bounded random jitter drawn from an injected source.
package analysis

import (
	"sort"
	"strings"

	"github.com/takweol/casematch/internal/domain/catalog"
)

// Confidence formula constants.  Confidence rewards both repetition and
// keyword diversity and is capped below absolute certainty.
const (
	confidenceBase        = 40
	confidencePerMatch    = 10
	confidencePerDistinct = 5
	confidenceCap         = 95
)

// ClassificationMatch is one category's score against the input text.
type ClassificationMatch struct {
	// Category references the matched catalog record (read-only).
	Category *catalog.CaseCategory

	// MatchCount is the total number of non-overlapping keyword occurrences
	// across the whole keyword list.
	MatchCount int

	// MatchedKeywords holds the distinct keywords that occurred at least
	// once, in keyword-list order.
	MatchedKeywords []string

	// Confidence is the bounded heuristic score derived from MatchCount and
	// keyword diversity.  It is not a probability.
	Confidence int
}

// matcher is one category's keyword table folded for case-insensitive
// matching, built once at package init and reused across calls.
type matcher struct {
	category *catalog.CaseCategory
	// folded[i] is the lower-cased form of category.Keywords[i].
	folded []string
}

var matchers []matcher

func init() {
	cats := catalog.All()
	matchers = make([]matcher, len(cats))
	for i, c := range cats {
		folded := make([]string, len(c.Keywords))
		for j, kw := range c.Keywords {
			folded[j] = strings.ToLower(kw)
		}
		matchers[i] = matcher{category: c, folded: folded}
	}
}

// AnalyzeText scores the text against every catalog category and returns the
// categories with at least one keyword occurrence, ranked by descending match
// count.  Ties keep catalog declaration order.  Matching is case-insensitive
// literal substring counting without word-boundary anchoring: a keyword
// inside a larger word counts, and occurrences are counted non-overlapping.
//
// Empty or whitespace-only input yields a nil result.
func AnalyzeText(text string) []ClassificationMatch {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	folded := strings.ToLower(text)

	var results []ClassificationMatch
	for _, m := range matchers {
		total := 0
		var matched []string
		for j, kw := range m.folded {
			n := strings.Count(folded, kw)
			if n > 0 {
				total += n
				matched = append(matched, m.category.Keywords[j])
			}
		}
		if total == 0 {
			continue
		}
		results = append(results, ClassificationMatch{
			Category:        m.category,
			MatchCount:      total,
			MatchedKeywords: matched,
			Confidence:      confidence(total, len(matched)),
		})
	}

	// Stable sort preserves catalog order for equal match counts.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchCount > results[j].MatchCount
	})
	return results
}

func confidence(matchCount, distinct int) int {
	c := confidenceBase + matchCount*confidencePerMatch + distinct*confidencePerDistinct
	if c > confidenceCap {
		return confidenceCap
	}
	return c
}
