package consultation

import (
	"github.com/takweol/casematch/internal/analysis"
	"github.com/takweol/casematch/internal/domain/catalog"
	"github.com/takweol/casematch/internal/domain/lead"
	"github.com/takweol/casematch/pkg/types/consultation"
)

func toResultDTO(r *analysis.AnalysisResult) *consultation.AnalysisResultDTO {
	secondaries := make([]consultation.SecondaryCaseDTO, len(r.SecondaryCases))
	for i, s := range r.SecondaryCases {
		secondaries[i] = consultation.SecondaryCaseDTO{
			ID:         s.ID,
			Name:       s.Name,
			Confidence: s.Confidence,
		}
	}
	experts := make([]consultation.ExpertDTO, len(r.Experts))
	for i, e := range r.Experts {
		experts[i] = consultation.ExpertDTO{
			Name:          e.Name,
			Specialty:     e.Specialty,
			ResolvedCases: e.ResolvedCases,
			Rating:        e.Rating,
			Reason:        e.Reason,
			Tags:          e.Tags,
		}
	}
	return &consultation.AnalysisResultDTO{
		PrimaryCase: consultation.PrimaryCaseDTO{
			ID:              r.PrimaryCase.ID,
			Name:            r.PrimaryCase.Name,
			LawReference:    r.PrimaryCase.LawReference,
			ParentCategory:  r.PrimaryCase.ParentCategory,
			Confidence:      r.PrimaryCase.Confidence,
			MatchedKeywords: r.PrimaryCase.MatchedKeywords,
			Description:     r.PrimaryCase.Description,
			KeyFindings:     r.PrimaryCase.KeyFindings,
		},
		SecondaryCases:          secondaries,
		WinRate:                 r.WinRate,
		EstimatedCost:           consultation.CostEstimateDTO(r.EstimatedCost),
		SimilarCaseCount:        r.SimilarCaseCount,
		PatternMatchPercent:     r.PatternMatchPercent,
		Experts:                 experts,
		HasEvidenceSignal:       r.HasEvidenceSignal,
		AnalysisProgressPercent: r.AnalysisProgressPercent,
	}
}

// NewCategoryDTO projects a catalog entry into its wire representation.
// Shared with the CLI so every surface emits the same JSON shape.
func NewCategoryDTO(c *catalog.CaseCategory) consultation.CategoryDTO {
	return consultation.CategoryDTO{
		ID:                c.ID,
		Name:              c.Name,
		LawReference:      c.LawReference,
		ParentCategory:    c.ParentCategory,
		Keywords:          append([]string(nil), c.Keywords...),
		BaseWinRate:       c.BaseWinRate,
		CostMin:           c.BaseCost.Min,
		CostMax:           c.BaseCost.Max,
		CostUnit:          catalog.CostUnit,
		PlatformCaseCount: c.PlatformCaseCount,
		Description:       c.Description,
	}
}

func toLeadDTO(l *lead.Lead) *consultation.LeadDTO {
	return &consultation.LeadDTO{
		ID:               l.ID,
		CategoryID:       l.CategoryID,
		CategoryName:     l.CategoryName,
		Confidence:       l.Confidence,
		WinRate:          l.WinRate,
		CostMin:          l.CostMin,
		CostMax:          l.CostMax,
		CostUnit:         l.CostUnit,
		HasEvidence:      l.HasEvidence,
		SimilarCaseCount: l.SimilarCaseCount,
		TranscriptDigest: l.TranscriptDigest,
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
