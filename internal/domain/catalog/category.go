// Package catalog holds the fixed reference data of the Takweol case-analysis
// service: the seven legal case categories, their keyword tables, baseline
// statistics, and representative expert rosters.  The catalog is immutable
// after process start; every scoring component reads it, none mutates it.
package catalog

import "fmt"

// CostUnit is the display unit of all cost figures in the catalog:
// 만원, i.e. 10,000 KRW.
const CostUnit = "만원"

// expertsPerCategory is the fixed roster size each category carries.
const expertsPerCategory = 3

// CostBand is an inclusive cost range in CostUnit.
type CostBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ExpertRecord is one representative expert attached to a category.  Records
// are sourced exclusively from the catalog and never created or mutated by
// the analysis engine.
type ExpertRecord struct {
	Name          string  `json:"name"`
	Specialty     string  `json:"specialty"`
	ResolvedCases int     `json:"resolved_cases"`
	Rating        float64 `json:"rating"`
}

// CaseCategory is one of the seven fixed legal-issue classifications.
type CaseCategory struct {
	// ID is the stable symbolic key used as cross-reference everywhere.
	ID string

	// Name is the Korean display label.
	Name string

	// LawReference is the statutory citation backing the classification.
	LawReference string

	// ParentCategory is the coarse grouping tag ("labor", "family", …).
	ParentCategory string

	// Keywords are literal, case-insensitive match patterns.  Order does not
	// affect scoring; it fixes the display order of matched keywords.
	Keywords []string

	// BaseWinRate is the unconditioned win-probability estimate in percent.
	BaseWinRate int

	// BaseCost is the baseline fee band before complexity adjustment.
	BaseCost CostBand

	// PlatformCaseCount is the baseline figure of similar cases resolved on
	// the platform.
	PlatformCaseCount int

	// Description is the diagnosis summary shown for a primary match.
	Description string

	// KeyFindings are the bullet findings shown alongside Description.
	KeyFindings []string

	// SampleExperts is the fixed roster of exactly three experts.
	SampleExperts []ExpertRecord
}

// validate enforces the catalog invariants.  A violation is a build defect,
// not a runtime condition, so callers panic on error at package init.
func (c *CaseCategory) validate() error {
	if c.ID == "" || c.Name == "" {
		return fmt.Errorf("category %q: id and name required", c.ID)
	}
	if len(c.Keywords) == 0 {
		return fmt.Errorf("category %q: keyword list empty", c.ID)
	}
	seen := make(map[string]bool, len(c.Keywords))
	for _, kw := range c.Keywords {
		if kw == "" {
			return fmt.Errorf("category %q: empty keyword", c.ID)
		}
		if seen[kw] {
			return fmt.Errorf("category %q: duplicate keyword %q", c.ID, kw)
		}
		seen[kw] = true
	}
	if c.BaseWinRate < 0 || c.BaseWinRate > 100 {
		return fmt.Errorf("category %q: base win rate %d out of [0,100]", c.ID, c.BaseWinRate)
	}
	if c.BaseCost.Min > c.BaseCost.Max {
		return fmt.Errorf("category %q: cost band min %d > max %d", c.ID, c.BaseCost.Min, c.BaseCost.Max)
	}
	if c.PlatformCaseCount < 0 {
		return fmt.Errorf("category %q: negative platform case count", c.ID)
	}
	if len(c.SampleExperts) != expertsPerCategory {
		return fmt.Errorf("category %q: expected %d experts, have %d", c.ID, expertsPerCategory, len(c.SampleExperts))
	}
	for _, e := range c.SampleExperts {
		if e.ResolvedCases < 0 {
			return fmt.Errorf("category %q: expert %q negative case count", c.ID, e.Name)
		}
		if e.Rating < 0 || e.Rating > 5 {
			return fmt.Errorf("category %q: expert %q rating %.1f out of [0,5]", c.ID, e.Name, e.Rating)
		}
	}
	return nil
}
