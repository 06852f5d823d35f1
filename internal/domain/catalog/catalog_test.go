package catalog

import "testing"

func TestCatalogSize(t *testing.T) {
	if Len() != 7 {
		t.Fatalf("expected 7 categories, got %d", Len())
	}
	if len(All()) != 7 {
		t.Fatalf("All() returned %d entries", len(All()))
	}
}

func TestCatalogInvariants(t *testing.T) {
	for _, c := range All() {
		if c.BaseWinRate < 0 || c.BaseWinRate > 100 {
			t.Errorf("%s: base win rate %d out of range", c.ID, c.BaseWinRate)
		}
		if c.BaseCost.Min > c.BaseCost.Max {
			t.Errorf("%s: cost band inverted", c.ID)
		}
		if len(c.SampleExperts) != 3 {
			t.Errorf("%s: expected 3 experts, got %d", c.ID, len(c.SampleExperts))
		}
		if len(c.Keywords) == 0 {
			t.Errorf("%s: keyword list empty", c.ID)
		}
		seen := make(map[string]bool)
		for _, kw := range c.Keywords {
			if seen[kw] {
				t.Errorf("%s: duplicate keyword %q", c.ID, kw)
			}
			seen[kw] = true
		}
		if c.Description == "" || len(c.KeyFindings) == 0 {
			t.Errorf("%s: diagnosis text missing", c.ID)
		}
	}
}

func TestByID(t *testing.T) {
	c, ok := ByID(WorkplaceHarassment)
	if !ok {
		t.Fatal("workplace_harassment missing")
	}
	if c.Name != "직장 내 괴롭힘" || c.ParentCategory != "labor" {
		t.Errorf("unexpected record: %+v", c)
	}

	if _, ok := ByID("small_claims"); ok {
		t.Error("unknown id must not resolve")
	}
}

func TestDeclarationOrderStable(t *testing.T) {
	want := []string{
		WorkplaceHarassment, Divorce, WageTheft, RealEstate,
		TrafficAccident, Defamation, Fraud,
	}
	for i, c := range All() {
		if c.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], c.ID)
		}
	}
}

func TestValidateRejectsBadRecords(t *testing.T) {
	good := categories[0]

	cases := map[string]func(*CaseCategory){
		"empty keywords":    func(c *CaseCategory) { c.Keywords = nil },
		"duplicate keyword": func(c *CaseCategory) { c.Keywords = []string{"사기", "사기"} },
		"win rate above":    func(c *CaseCategory) { c.BaseWinRate = 101 },
		"inverted cost":     func(c *CaseCategory) { c.BaseCost = CostBand{Min: 5, Max: 1} },
		"roster too small":  func(c *CaseCategory) { c.SampleExperts = c.SampleExperts[:2] },
		"rating above":      func(c *CaseCategory) { c.SampleExperts[0].Rating = 5.5 },
	}
	for name, mutate := range cases {
		c := good
		c.Keywords = append([]string(nil), good.Keywords...)
		c.SampleExperts = append([]ExpertRecord(nil), good.SampleExperts...)
		mutate(&c)
		if err := c.validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
