package preference

import (
	"fmt"

	"github.com/vistacasa/casamatch/internal/domain/listing"
)

// Profile is a buyer or agent's stated search criteria. All fields are
// optional; nil means "no preference". Profiles are request-scoped and
// never persisted.
type Profile struct {
	BudgetMin    *float64
	BudgetMax    *float64
	Location     string
	MinBedrooms  *int
	PropertyType *listing.PropertyType
}

// Validate rejects malformed preference input before it reaches scoring.
func (p *Profile) Validate() error {
	if p.BudgetMin != nil && *p.BudgetMin < 0 {
		return fmt.Errorf("budget_min must be non-negative, got %g", *p.BudgetMin)
	}
	if p.BudgetMax != nil && *p.BudgetMax < 0 {
		return fmt.Errorf("budget_max must be non-negative, got %g", *p.BudgetMax)
	}
	if p.BudgetMin != nil && p.BudgetMax != nil && *p.BudgetMin > *p.BudgetMax {
		return fmt.Errorf("budget_min %g exceeds budget_max %g", *p.BudgetMin, *p.BudgetMax)
	}
	if p.MinBedrooms != nil && *p.MinBedrooms < 0 {
		return fmt.Errorf("bedrooms must be non-negative, got %d", *p.MinBedrooms)
	}
	if p.PropertyType != nil && !p.PropertyType.IsValid() {
		return fmt.Errorf("unknown property type %q", *p.PropertyType)
	}
	return nil
}

// HasBudget reports whether at least one budget bound is set.
func (p *Profile) HasBudget() bool {
	return p.BudgetMin != nil || p.BudgetMax != nil
}

// IsEmpty reports whether no preference at all is set.
func (p *Profile) IsEmpty() bool {
	return !p.HasBudget() && p.Location == "" && p.MinBedrooms == nil && p.PropertyType == nil
}
