package scoring

// Policy is the compatibility scoring weight table. The point values define
// the ranking contract, so they live in one overridable place instead of
// inline literals.
type Policy struct {
	Base int

	// Budget fit: up to BudgetFitMax points proportional to closeness to
	// the budget range midpoint; a flat BudgetMissPenalty outside the range.
	BudgetFitMax      int
	BudgetMissPenalty int

	LocationBonus   int
	LocationPenalty int

	// Bedrooms: BedroomBase plus BedroomPerExtra per surplus bedroom, the
	// surplus capped at BedroomExtraCap; BedroomPenalty when short.
	BedroomBase     int
	BedroomPerExtra int
	BedroomExtraCap int
	BedroomPenalty  int

	TypeBonus   int
	TypePenalty int

	FeaturedBonus int

	MinScore int
	MaxScore int
}

// LeadPolicy is the lead-quality scoring table: a heuristic policy for how
// qualified a buyer appears from preference specificity and match count.
type LeadPolicy struct {
	Base int

	// PerCriterion is awarded for each of: location set, bedrooms set, any
	// budget bound set. TypeBonus is awarded for a stated property type.
	PerCriterion int
	TypeBonus    int

	PerMatch      int
	MatchBonusCap int

	MinScore int
	MaxScore int
}

// DefaultPolicy returns the production scoring weights.
func DefaultPolicy() Policy {
	return Policy{
		Base:              50,
		BudgetFitMax:      25,
		BudgetMissPenalty: 20,
		LocationBonus:     10,
		LocationPenalty:   5,
		BedroomBase:       5,
		BedroomPerExtra:   2,
		BedroomExtraCap:   2,
		BedroomPenalty:    10,
		TypeBonus:         10,
		TypePenalty:       5,
		FeaturedBonus:     5,
		MinScore:          0,
		MaxScore:          100,
	}
}

// DefaultLeadPolicy returns the production lead scoring weights.
func DefaultLeadPolicy() LeadPolicy {
	return LeadPolicy{
		Base:          40,
		PerCriterion:  10,
		TypeBonus:     5,
		PerMatch:      4,
		MatchBonusCap: 25,
		MinScore:      20,
		MaxScore:      95,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
