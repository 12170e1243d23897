package calculation

import (
	"testing"

	"github.com/accolaben-a11y/three-buckets/internal/domain"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func ssItem(owner domain.Owner, flatCents int64) domain.IncomeItem {
	return domain.IncomeItem{
		Owner:              owner,
		Kind:               domain.IncomeSocialSecurity,
		Label:              "Social Security",
		MonthlyAmountCents: flatCents,
		StartAge:           62,
	}
}

func TestGetSSMonthlyAmountTierSelection(t *testing.T) {
	item := ssItem(domain.OwnerPrimary, 210000)
	item.SSAge62Cents = int64Ptr(147000)
	item.SSAge67Cents = int64Ptr(210000)
	item.SSAge70Cents = int64Ptr(260400)

	tests := []struct {
		name     string
		claimAge int
		expected int64
	}{
		{name: "claim at 62", claimAge: 62, expected: 147000},
		{name: "claim at 67", claimAge: 67, expected: 210000},
		{name: "claim at 70", claimAge: 70, expected: 260400},
		{name: "odd claim age falls back to 67 tier", claimAge: 65, expected: 210000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSSMonthlyAmount(item, tt.claimAge))
		})
	}
}

func TestGetSSMonthlyAmountFallsBackToFlat(t *testing.T) {
	// No tier amounts stored: the flat monthly amount applies.
	item := ssItem(domain.OwnerPrimary, 210000)
	assert.Equal(t, int64(210000), GetSSMonthlyAmount(item, 62))

	// Non-SS items always pay their flat amount.
	wage := domain.IncomeItem{Kind: domain.IncomeWage, MonthlyAmountCents: 200000}
	assert.Equal(t, int64(200000), GetSSMonthlyAmount(wage, 62))
}

func TestBuildIncomeByAgeSSClaimGating(t *testing.T) {
	item := ssItem(domain.OwnerPrimary, 210000)
	item.SSAge62Cents = int64Ptr(147000)
	item.SSAge67Cents = int64Ptr(210000)
	item.SSAge70Cents = int64Ptr(260400)

	incomeByAge := BuildIncomeByAge([]domain.IncomeItem{item}, 60, 70, 62, 0)

	for age := 60; age < 62; age++ {
		assert.Equal(t, int64(0), incomeByAge[age], "age %d precedes the claim age", age)
	}
	for age := 62; age <= 70; age++ {
		assert.Equal(t, int64(147000), incomeByAge[age], "claimed at 62 pays the 62 tier at age %d", age)
	}
}

func TestBuildIncomeByAgeDeferredClaim(t *testing.T) {
	item := ssItem(domain.OwnerPrimary, 210000)
	item.SSAge62Cents = int64Ptr(147000)
	item.SSAge67Cents = int64Ptr(210000)
	item.SSAge70Cents = int64Ptr(260400)

	incomeByAge := BuildIncomeByAge([]domain.IncomeItem{item}, 62, 75, 70, 0)

	assert.Equal(t, int64(0), incomeByAge[69])
	assert.Equal(t, int64(260400), incomeByAge[70])
	assert.Equal(t, int64(260400), incomeByAge[75])
}

func TestBuildIncomeByAgeItemWindow(t *testing.T) {
	wage := domain.IncomeItem{
		Owner:              domain.OwnerPrimary,
		Kind:               domain.IncomeWage,
		MonthlyAmountCents: 200000,
		StartAge:           62,
		EndAge:             intPtr(67),
	}
	pension := domain.IncomeItem{
		Owner:              domain.OwnerPrimary,
		Kind:               domain.IncomePension,
		MonthlyAmountCents: 80000,
		StartAge:           55, // clamped to retirement age
	}

	incomeByAge := BuildIncomeByAge([]domain.IncomeItem{wage, pension}, 62, 90, 0, 0)

	assert.Equal(t, int64(280000), incomeByAge[62], "pension window clamps to retirement age")
	assert.Equal(t, int64(280000), incomeByAge[67], "wage end age is inclusive")
	assert.Equal(t, int64(80000), incomeByAge[68], "wage ended")
	assert.Equal(t, int64(80000), incomeByAge[90], "open-ended pension runs to the horizon")
}

func TestBuildSurvivorIncomeByAgeSSSubstitution(t *testing.T) {
	primary := ssItem(domain.OwnerPrimary, 210000)
	primary.SSAge67Cents = int64Ptr(210000)
	spouse := ssItem(domain.OwnerSpouse, 145000)
	spouse.SSAge67Cents = int64Ptr(145000)

	event := domain.SurvivorEvent{Survivor: domain.OwnerSpouse, EventAge: 80}
	incomeByAge := BuildSurvivorIncomeByAge([]domain.IncomeItem{primary, spouse}, 62, 90, 67, 67, event)

	// The survivor receives the higher of the two claimed benefits, not the
	// sum.
	for age := 80; age <= 90; age++ {
		assert.Equal(t, int64(210000), incomeByAge[age], "age %d", age)
	}
	_, present := incomeByAge[79]
	assert.False(t, present, "survivor map starts at the event age")
}

func TestBuildSurvivorIncomeByAgeBeforeClaim(t *testing.T) {
	// Event at 64, both claiming at 67: neither spouse has claimed yet, so
	// the SS contribution is zero until 67.
	primary := ssItem(domain.OwnerPrimary, 210000)
	primary.SSAge67Cents = int64Ptr(210000)
	spouse := ssItem(domain.OwnerSpouse, 145000)
	spouse.SSAge67Cents = int64Ptr(145000)

	event := domain.SurvivorEvent{Survivor: domain.OwnerSpouse, EventAge: 64}
	incomeByAge := BuildSurvivorIncomeByAge([]domain.IncomeItem{primary, spouse}, 62, 90, 67, 67, event)

	assert.Equal(t, int64(0), incomeByAge[64])
	assert.Equal(t, int64(0), incomeByAge[66])
	assert.Equal(t, int64(210000), incomeByAge[67])
}

func TestBuildSurvivorIncomeByAgeNonSSIncome(t *testing.T) {
	deceasedWage := domain.IncomeItem{
		Owner:              domain.OwnerPrimary,
		Kind:               domain.IncomeWage,
		MonthlyAmountCents: 200000,
		StartAge:           62,
	}
	deceasedPension := domain.IncomeItem{
		Owner:                 domain.OwnerPrimary,
		Kind:                  domain.IncomePension,
		MonthlyAmountCents:    100000,
		StartAge:              62,
		PensionSurvivorPctBps: int64Ptr(5000),
	}
	survivorWage := domain.IncomeItem{
		Owner:              domain.OwnerSpouse,
		Kind:               domain.IncomeWage,
		MonthlyAmountCents: 50000,
		StartAge:           62,
	}
	jointRental := domain.IncomeItem{
		Owner:              domain.OwnerJoint,
		Kind:               domain.IncomeOther,
		MonthlyAmountCents: 30000,
		StartAge:           62,
	}

	event := domain.SurvivorEvent{Survivor: domain.OwnerSpouse, EventAge: 80}
	items := []domain.IncomeItem{deceasedWage, deceasedPension, survivorWage, jointRental}
	incomeByAge := BuildSurvivorIncomeByAge(items, 62, 90, 0, 0, event)

	// Deceased wage drops, deceased pension pays 50%, survivor and joint
	// income continue unchanged: 50,000 + 100,000/2 + 30,000.
	assert.Equal(t, int64(130000), incomeByAge[80])
}

func TestBuildSurvivorIncomeByAgePensionWithoutElection(t *testing.T) {
	pension := domain.IncomeItem{
		Owner:              domain.OwnerPrimary,
		Kind:               domain.IncomePension,
		MonthlyAmountCents: 100000,
		StartAge:           62,
	}

	event := domain.SurvivorEvent{Survivor: domain.OwnerSpouse, EventAge: 80}
	incomeByAge := BuildSurvivorIncomeByAge([]domain.IncomeItem{pension}, 62, 90, 0, 0, event)

	assert.Equal(t, int64(0), incomeByAge[80], "no survivor election means no survivor pension")
}

func TestCalculateBridgePeriod(t *testing.T) {
	primary := ssItem(domain.OwnerPrimary, 210000)
	primary.SSAge67Cents = int64Ptr(210000)

	result := CalculateBridgePeriod([]domain.IncomeItem{primary}, 62, 67, 0)

	assert.True(t, result.HasBridgePeriod)
	assert.Equal(t, 62, result.BridgeStartAge)
	assert.Equal(t, 67, result.BridgeEndAge)
	assert.Equal(t, int64(210000), result.MonthlyGapCents)
	assert.Equal(t, int64(210000*60), result.TotalBridgeCostCents)
}

func TestCalculateBridgePeriodNoBridge(t *testing.T) {
	primary := ssItem(domain.OwnerPrimary, 210000)

	result := CalculateBridgePeriod([]domain.IncomeItem{primary}, 67, 62, 0)

	assert.False(t, result.HasBridgePeriod)
	assert.Equal(t, 67, result.BridgeStartAge)
	assert.Equal(t, 67, result.BridgeEndAge)
	assert.Equal(t, int64(0), result.MonthlyGapCents)
	assert.Equal(t, int64(0), result.TotalBridgeCostCents)
}

func TestCalculateBridgePeriodBothSpousesDeferred(t *testing.T) {
	primary := ssItem(domain.OwnerPrimary, 210000)
	primary.SSAge67Cents = int64Ptr(210000)
	spouse := ssItem(domain.OwnerSpouse, 145000)
	spouse.SSAge70Cents = int64Ptr(179800)

	result := CalculateBridgePeriod([]domain.IncomeItem{primary, spouse}, 62, 67, 70)

	assert.True(t, result.HasBridgePeriod)
	assert.Equal(t, 70, result.BridgeEndAge)
	assert.Equal(t, int64(210000+179800), result.MonthlyGapCents)
	assert.Equal(t, int64((210000+179800)*96), result.TotalBridgeCostCents)
}

func TestCalculateBridgePeriodOnlyDeferredItemsCount(t *testing.T) {
	// The primary claims at retirement; only the spouse's deferred benefit
	// contributes to the gap.
	primary := ssItem(domain.OwnerPrimary, 210000)
	primary.SSAge62Cents = int64Ptr(147000)
	spouse := ssItem(domain.OwnerSpouse, 145000)
	spouse.SSAge67Cents = int64Ptr(145000)

	result := CalculateBridgePeriod([]domain.IncomeItem{primary, spouse}, 62, 62, 67)

	assert.True(t, result.HasBridgePeriod)
	assert.Equal(t, int64(145000), result.MonthlyGapCents)
	assert.Equal(t, int64(145000*60), result.TotalBridgeCostCents)
}
