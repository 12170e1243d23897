package calculation

import (
	"testing"

	"github.com/accolaben-a11y/three-buckets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoClient() *domain.Client {
	spouseAge := 56
	wageEnd := 67
	return &domain.Client{
		Profile: domain.ClientProfile{
			PrimaryAge:    58,
			SpouseAge:     &spouseAge,
			RetirementAge: 62,
			MaritalStatus: domain.MaritalMarried,
		},
		IncomeItems: []domain.IncomeItem{
			{
				Owner:              domain.OwnerPrimary,
				Kind:               domain.IncomeSocialSecurity,
				Label:              "Robert's Social Security",
				MonthlyAmountCents: 210000,
				StartAge:           62,
				SSAge62Cents:       int64Ptr(147000),
				SSAge67Cents:       int64Ptr(210000),
				SSAge70Cents:       int64Ptr(260400),
			},
			{
				Owner:              domain.OwnerSpouse,
				Kind:               domain.IncomeSocialSecurity,
				Label:              "Mary's Social Security",
				MonthlyAmountCents: 145000,
				StartAge:           62,
				SSAge62Cents:       int64Ptr(101500),
				SSAge67Cents:       int64Ptr(145000),
				SSAge70Cents:       int64Ptr(179800),
			},
			{
				Owner:              domain.OwnerPrimary,
				Kind:               domain.IncomeWage,
				Label:              "Consulting",
				MonthlyAmountCents: 200000,
				StartAge:           62,
				EndAge:             &wageEnd,
			},
		},
		NestEggAccounts: []domain.NestEggAccount{
			{
				Label:                    "401(k)",
				AccountType:              domain.AccountQualified,
				CurrentBalanceCents:      38000000,
				MonthlyContributionCents: 150000,
				RateOfReturnBps:          700,
				MonthlyDrawCents:         200000,
			},
		},
		HomeEquity: &domain.HomeEquityProfile{
			CurrentHomeValueCents:        65000000,
			ExistingMortgageBalanceCents: 20000000,
			ExistingMortgagePaymentCents: 180000,
			HomeAppreciationRateBps:      400,
			PayoutType:                   domain.PayoutLOC,
			PayoffMortgage:               true,
			PrincipalLimitCents:          29250000,
		},
		Scenario: domain.Scenario{
			TargetMonthlyIncomeCents: 700000,
			Bucket1DrawCents:         100000,
			Bucket2DrawCents:         200000,
			Bucket3DrawCents:         200000,
			BridgeFundingSource:      domain.BridgeFromBucket2,
			SSPrimaryClaimAge:        67,
			SSSpouseClaimAge:         67,
			InflationRateBps:         300,
			PlanningHorizonAge:       90,
		},
	}
}

func demoSettings() domain.GlobalSettings {
	return domain.GlobalSettings{
		LendingLimitCents:       120975000,
		DefaultLOCGrowthRateBps: 600,
	}
}

func TestRunFullCalculationDemoClient(t *testing.T) {
	engine := NewCalculationEngine()
	result := engine.RunFullCalculation(demoClient(), demoSettings())

	assert.Equal(t, 48, result.Accumulation.MonthsToRetirement)
	require.Len(t, result.Accumulation.NestEggProjections, 1)
	assert.Equal(t, int64(38000000), result.Accumulation.TotalCurrentNestEggCents)
	assert.Greater(t, result.Accumulation.TotalProjectedNestEggCents, int64(38000000+150000*48),
		"growth must beat linear accumulation")
	assert.Positive(t, result.Accumulation.ProjectedHomeValueCents)

	require.NotNil(t, result.Hecm)
	assert.Equal(t, int64(9250000), result.Hecm.AvailableProceedsCents, "principal limit less the mortgage payoff")
	assert.Equal(t, int64(180000), result.Hecm.MonthlyFreedCents)
	assert.Equal(t, int64(9250000), result.Hecm.LOCStartBalanceCents)
	assert.NotEmpty(t, result.Hecm.LOCProjections)

	assert.True(t, result.BridgePeriod.HasBridgePeriod)
	assert.Equal(t, 62, result.BridgePeriod.BridgeStartAge)
	assert.Equal(t, 67, result.BridgePeriod.BridgeEndAge)

	assert.Equal(t, int64(500000), result.Dashboard.TotalMonthlyIncomeCents)
	assert.Equal(t, int64(700), result.Dashboard.Bucket2BlendedRateBps)
	assert.Equal(t, int64(700000), result.Dashboard.GrossTargetCents)
	assert.Equal(t, int64(200000), result.Dashboard.ShortfallCents)
	assert.Equal(t, int64(0), result.Dashboard.SurplusCents)

	require.NotEmpty(t, result.LongevityProjection)
	assert.Equal(t, 62, result.LongevityProjection[0].Age)
	assert.Equal(t, 90, result.LongevityProjection[len(result.LongevityProjection)-1].Age)
}

func TestRunFullCalculationDeterministic(t *testing.T) {
	engine := NewCalculationEngine()
	first := engine.RunFullCalculation(demoClient(), demoSettings())
	second := engine.RunFullCalculation(demoClient(), demoSettings())
	require.Equal(t, first, second)
}

func TestRunFullCalculationNoHomeEquity(t *testing.T) {
	client := demoClient()
	client.HomeEquity = nil

	engine := NewCalculationEngine()
	result := engine.RunFullCalculation(client, demoSettings())

	assert.Nil(t, result.Hecm)
	assert.Equal(t, int64(0), result.Accumulation.ProjectedHomeValueCents)
	assert.Equal(t, int64(0), result.Dashboard.MortgageFreedCents)
	assert.Equal(t, client.Scenario.Bucket3DrawCents, result.Dashboard.Bucket3MonthlyCents)
	for _, snap := range result.LongevityProjection {
		assert.Equal(t, int64(0), snap.Bucket3BalanceCents)
	}
}

func TestRunFullCalculationAdjustedTarget(t *testing.T) {
	client := demoClient()
	client.HomeEquity.PayoutType = domain.PayoutLumpSum

	engine := NewCalculationEngine()
	result := engine.RunFullCalculation(client, demoSettings())

	// Paying off the mortgage with the lump sum removes the 180,000 payment
	// from the income the buckets must produce.
	assert.Equal(t, int64(700000), result.Dashboard.GrossTargetCents)
	assert.Equal(t, int64(520000), result.Dashboard.AdjustedTargetCents)
	assert.Equal(t, int64(20000), result.Dashboard.ShortfallCents)
}

func TestRunFullCalculationCashToCloseFundedFromBucket2(t *testing.T) {
	// The payoff exceeds the principal limit by 5,000,000, which is deducted
	// from the projected nest egg before the simulation starts.
	client := &domain.Client{
		Profile: domain.ClientProfile{
			PrimaryAge:    65,
			RetirementAge: 65,
			MaritalStatus: domain.MaritalSingle,
		},
		NestEggAccounts: []domain.NestEggAccount{
			{Label: "IRA", AccountType: domain.AccountQualified, CurrentBalanceCents: 6000000},
		},
		HomeEquity: &domain.HomeEquityProfile{
			CurrentHomeValueCents:        30000000,
			ExistingMortgageBalanceCents: 6000000,
			PayoutType:                   domain.PayoutLumpSum,
			PayoffMortgage:               true,
			PrincipalLimitCents:          1000000,
		},
		Scenario: domain.Scenario{
			PlanningHorizonAge: 70,
		},
	}

	engine := NewCalculationEngine()
	result := engine.RunFullCalculation(client, demoSettings())

	require.NotNil(t, result.Hecm)
	assert.Equal(t, int64(-5000000), result.Hecm.AvailableProceedsCents)
	assert.Equal(t, int64(5000000), result.Hecm.CashToCloseCents())

	require.NotEmpty(t, result.LongevityProjection)
	assert.Equal(t, int64(1000000), result.LongevityProjection[0].Bucket2BalanceCents,
		"cash to close comes off the nest egg before year one")
}

func TestRunFullCalculationTenureOverridesDashboardDraw(t *testing.T) {
	client := demoClient()
	client.HomeEquity.PayoutType = domain.PayoutTenure
	client.HomeEquity.PayoffMortgage = false
	client.HomeEquity.TenureMonthlyCents = 150000
	client.Scenario.Bucket3DrawCents = 50000

	engine := NewCalculationEngine()
	result := engine.RunFullCalculation(client, demoSettings())

	assert.Equal(t, int64(150000), result.Dashboard.Bucket3MonthlyCents)
	assert.Equal(t, int64(100000+200000+150000), result.Dashboard.TotalMonthlyIncomeCents)
}

func TestRunFullCalculationRetirementAgePassedClamps(t *testing.T) {
	client := demoClient()
	client.Profile.PrimaryAge = 70
	client.Profile.RetirementAge = 62

	engine := NewCalculationEngine()
	result := engine.RunFullCalculation(client, demoSettings())

	assert.Equal(t, 0, result.Accumulation.MonthsToRetirement)
	assert.Equal(t, int64(38000000), result.Accumulation.TotalProjectedNestEggCents,
		"no accumulation months means no growth")
}

func TestRunFullCalculationSurvivorMode(t *testing.T) {
	client := demoClient()
	client.Profile.SurvivorEvent = &domain.SurvivorEvent{Survivor: domain.OwnerSpouse, EventAge: 70}
	client.Scenario.SurvivorMode = true

	engine := NewCalculationEngine()
	result := engine.RunFullCalculation(client, demoSettings())

	byAge := make(map[int]domain.YearlySnapshot)
	for _, snap := range result.LongevityProjection {
		byAge[snap.Age] = snap
	}

	// Before the event: both benefits (claimed at 67) plus the wage.
	assert.Equal(t, int64(210000+145000+200000), byAge[67].Bucket1IncomeCents)
	// After the event: the survivor keeps the higher benefit only, and the
	// primary's wage is gone.
	assert.Equal(t, int64(210000), byAge[70].Bucket1IncomeCents)
	assert.Equal(t, int64(210000), byAge[90].Bucket1IncomeCents)
}

func TestBlendedRateBps(t *testing.T) {
	tests := []struct {
		name     string
		rates    []int64
		expected int64
	}{
		{name: "no accounts uses the default", rates: nil, expected: 600},
		{name: "single account", rates: []int64{700}, expected: 700},
		{name: "simple average", rates: []int64{700, 800}, expected: 750},
		{name: "average floors to whole bps", rates: []int64{700, 701}, expected: 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := make([]domain.NestEggAccount, len(tt.rates))
			for i, rate := range tt.rates {
				accounts[i] = domain.NestEggAccount{RateOfReturnBps: rate}
			}
			assert.Equal(t, tt.expected, blendedRateBps(accounts))
		})
	}
}

func TestResolveLOCGrowthRate(t *testing.T) {
	withRate := &domain.HomeEquityProfile{LOCGrowthRateBps: int64Ptr(450)}
	withoutRate := &domain.HomeEquityProfile{}

	assert.Equal(t, int64(450), resolveLOCGrowthRate(withRate, domain.GlobalSettings{DefaultLOCGrowthRateBps: 550}))
	assert.Equal(t, int64(550), resolveLOCGrowthRate(withoutRate, domain.GlobalSettings{DefaultLOCGrowthRateBps: 550}))
	assert.Equal(t, domain.DefaultLOCGrowthRateBps, resolveLOCGrowthRate(withoutRate, domain.GlobalSettings{}))
	assert.Equal(t, domain.DefaultLOCGrowthRateBps, resolveLOCGrowthRate(nil, domain.GlobalSettings{}))
}
