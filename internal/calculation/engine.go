package calculation

import (
	"github.com/accolaben-a11y/three-buckets/internal/domain"
)

// defaultBucket2RateBps is assumed for the simulation when the client has no
// nest egg accounts to average.
const defaultBucket2RateBps int64 = 600

// CalculationEngine composes the bucket calculators into a single
// request/response cycle. It holds no state; every call is pure computation
// over the supplied client snapshot, so one engine may serve concurrent
// requests without synchronization.
type CalculationEngine struct{}

// NewCalculationEngine creates a new calculation engine.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{}
}

// RunFullCalculation runs every bucket calculation for one client snapshot
// and assembles the unified result. The input is assumed to have passed
// boundary validation; the engine is total over its documented domain and
// clamps anomalous magnitudes rather than failing.
func (ce *CalculationEngine) RunFullCalculation(client *domain.Client, settings domain.GlobalSettings) *domain.FullCalculationResult {
	profile := client.Profile
	scenario := client.Scenario

	yearsToRetirement := profile.RetirementAge - profile.PrimaryAge
	if yearsToRetirement < 0 {
		yearsToRetirement = 0
	}
	monthsToRetirement := yearsToRetirement * 12

	youngestAge := profile.PrimaryAge
	if profile.SpouseAge != nil && *profile.SpouseAge < youngestAge {
		youngestAge = *profile.SpouseAge
	}

	accumulation := ce.projectAccumulation(client, monthsToRetirement, yearsToRetirement)

	var hecm *domain.HecmResult
	locGrowthRateBps := resolveLOCGrowthRate(client.HomeEquity, settings)
	if client.HomeEquity != nil {
		he := client.HomeEquity
		result := CalculateHecm(HecmInput{
			CurrentHomeValueCents:        he.CurrentHomeValueCents,
			ExistingMortgageBalanceCents: he.ExistingMortgageBalanceCents,
			ExistingMortgagePaymentCents: he.ExistingMortgagePaymentCents,
			HomeAppreciationRateBps:      he.HomeAppreciationRateBps,
			HECMExpectedRateBps:          he.HECMExpectedRateBps,
			PayoutType:                   he.PayoutType,
			TenureMonthlyCents:           he.TenureMonthlyCents,
			LOCGrowthRateBps:             locGrowthRateBps,
			PayoffMortgage:               he.PayoffMortgage,
			PrincipalLimitCents:          he.PrincipalLimitCents,
			AdditionalLumpSumCents:       he.AdditionalLumpSumCents,
			YoungestBorrowerAge:          youngestAge,
			YearsToRetirement:            yearsToRetirement,
			LendingLimitCents:            settings.LendingLimitCents,
		})
		hecm = &result
	}

	adjustedTarget := adjustedTargetCents(scenario.TargetMonthlyIncomeCents, client.HomeEquity)

	incomeByAge := BuildIncomeByAge(
		client.IncomeItems,
		profile.RetirementAge,
		scenario.PlanningHorizonAge,
		scenario.SSPrimaryClaimAge,
		scenario.SSSpouseClaimAge,
	)

	var survivorIncomeByAge map[int]int64
	var survivorEventAge *int
	if scenario.SurvivorMode && profile.SurvivorEvent != nil {
		event := *profile.SurvivorEvent
		survivorIncomeByAge = BuildSurvivorIncomeByAge(
			client.IncomeItems,
			profile.RetirementAge,
			scenario.PlanningHorizonAge,
			scenario.SSPrimaryClaimAge,
			scenario.SSSpouseClaimAge,
			event,
		)
		survivorEventAge = &event.EventAge
	}

	bridge := CalculateBridgePeriod(
		client.IncomeItems,
		profile.RetirementAge,
		scenario.SSPrimaryClaimAge,
		scenario.SSSpouseClaimAge,
	)

	blendedRate := blendedRateBps(client.NestEggAccounts)

	dashboard := ce.buildDashboard(client, hecm, adjustedTarget, blendedRate)

	// Cash to close must be funded from Bucket 2 before the simulation begins.
	bucket2Start := accumulation.TotalProjectedNestEggCents - hecm.CashToCloseCents()
	if bucket2Start < 0 {
		bucket2Start = 0
	}

	var bucket3Start int64
	bucket3Type := domain.PayoutNone
	if hecm != nil {
		bucket3Start = hecm.LOCStartBalanceCents
		bucket3Type = client.HomeEquity.PayoutType
	}

	snapshots := ProjectRetirementPhase(RetirementPhaseInput{
		RetirementAge:       profile.RetirementAge,
		PlanningHorizonAge:  scenario.PlanningHorizonAge,
		Bucket1MonthlyByAge: incomeByAge,

		Bucket2StartBalanceCents:   bucket2Start,
		Bucket2MonthlyDrawCents:    scenario.Bucket2DrawCents,
		Bucket2AnnualRateBps:       blendedRate,
		Bucket2MonthlyDepositCents: scenario.Bucket2DepositCents,

		Bucket3Type:                  bucket3Type,
		Bucket3StartBalanceCents:     bucket3Start,
		Bucket3MonthlyDrawCents:      scenario.Bucket3DrawCents,
		Bucket3LOCGrowthRateBps:      locGrowthRateBps,
		Bucket3MonthlyRepaymentCents: scenario.Bucket3RepaymentCents,

		TargetMonthlyIncomeCents: adjustedTarget,
		InflationRateBps:         scenario.InflationRateBps,

		SurvivorEventAge:            survivorEventAge,
		SurvivorBucket1MonthlyByAge: survivorIncomeByAge,
	})

	return &domain.FullCalculationResult{
		Accumulation:        accumulation,
		Hecm:                hecm,
		BridgePeriod:        bridge,
		Dashboard:           dashboard,
		LongevityProjection: snapshots,
		DepletionAges:       FindDepletionAges(snapshots),
	}
}

// projectAccumulation grows every nest egg account to the retirement date and
// projects the home value.
func (ce *CalculationEngine) projectAccumulation(client *domain.Client, monthsToRetirement, yearsToRetirement int) domain.AccumulationResult {
	result := domain.AccumulationResult{
		MonthsToRetirement: monthsToRetirement,
		NestEggProjections: make([]domain.AccountProjection, 0, len(client.NestEggAccounts)),
	}

	for _, account := range client.NestEggAccounts {
		projected := ProjectAccountBalance(
			account.CurrentBalanceCents,
			account.MonthlyContributionCents,
			account.RateOfReturnBps,
			monthsToRetirement,
		)
		result.NestEggProjections = append(result.NestEggProjections, domain.AccountProjection{
			ID:                    account.ID,
			Label:                 account.Label,
			AccountType:           account.AccountType,
			CurrentBalanceCents:   account.CurrentBalanceCents,
			ProjectedBalanceCents: projected,
		})
		result.TotalCurrentNestEggCents += account.CurrentBalanceCents
		result.TotalProjectedNestEggCents += projected
	}

	if client.HomeEquity != nil {
		result.ProjectedHomeValueCents = ProjectHomeValue(
			client.HomeEquity.CurrentHomeValueCents,
			client.HomeEquity.HomeAppreciationRateBps,
			yearsToRetirement,
		)
	}

	return result
}

// adjustedTargetCents reduces the target by the existing mortgage payment
// when a lump-sum HECM pays that mortgage off: the cost no longer needs to be
// sourced from any bucket.
func adjustedTargetCents(targetCents int64, homeEquity *domain.HomeEquityProfile) int64 {
	if homeEquity == nil || !homeEquity.PayoffMortgage || homeEquity.PayoutType != domain.PayoutLumpSum {
		return targetCents
	}
	if homeEquity.ExistingMortgagePaymentCents <= 0 {
		return targetCents
	}
	adjusted := targetCents - homeEquity.ExistingMortgagePaymentCents
	if adjusted < 0 {
		adjusted = 0
	}
	return adjusted
}

// buildDashboard assembles the headline monthly figures. The effective
// Bucket 3 draw is the tenure payment for a tenure payout, the scenario's
// configured draw otherwise.
func (ce *CalculationEngine) buildDashboard(client *domain.Client, hecm *domain.HecmResult, adjustedTarget, blendedRate int64) domain.Dashboard {
	scenario := client.Scenario

	bucket3Monthly := scenario.Bucket3DrawCents
	if client.HomeEquity != nil && client.HomeEquity.PayoutType == domain.PayoutTenure && hecm != nil {
		bucket3Monthly = hecm.TenureMonthlyCents
	}

	var mortgageFreed int64
	if hecm != nil {
		mortgageFreed = hecm.MonthlyFreedCents
	}

	total := scenario.Bucket1DrawCents + scenario.Bucket2DrawCents + bucket3Monthly

	shortfall := adjustedTarget - total
	if shortfall < 0 {
		shortfall = 0
	}
	surplus := total - adjustedTarget
	if surplus < 0 {
		surplus = 0
	}

	return domain.Dashboard{
		MortgageFreedCents:      mortgageFreed,
		TotalMonthlyIncomeCents: total,
		ShortfallCents:          shortfall,
		SurplusCents:            surplus,
		Bucket1MonthlyCents:     scenario.Bucket1DrawCents,
		Bucket2MonthlyCents:     scenario.Bucket2DrawCents,
		Bucket3MonthlyCents:     bucket3Monthly,
		Bucket2BlendedRateBps:   blendedRate,
		GrossTargetCents:        scenario.TargetMonthlyIncomeCents,
		AdjustedTargetCents:     adjustedTarget,
	}
}

// blendedRateBps is the simple average of the accounts' rates of return,
// floored to whole basis points, used as the single Bucket 2 rate in the
// simulation. Defaults when there are no accounts.
func blendedRateBps(accounts []domain.NestEggAccount) int64 {
	if len(accounts) == 0 {
		return defaultBucket2RateBps
	}
	var sum int64
	for _, account := range accounts {
		sum += account.RateOfReturnBps
	}
	return sum / int64(len(accounts))
}

// resolveLOCGrowthRate picks the LOC growth rate: the home-equity profile's
// own rate when set, the advisor-wide default otherwise, and the built-in
// default when the settings carry none.
func resolveLOCGrowthRate(homeEquity *domain.HomeEquityProfile, settings domain.GlobalSettings) int64 {
	if homeEquity != nil && homeEquity.LOCGrowthRateBps != nil {
		return *homeEquity.LOCGrowthRateBps
	}
	if settings.DefaultLOCGrowthRateBps > 0 {
		return settings.DefaultLOCGrowthRateBps
	}
	return domain.DefaultLOCGrowthRateBps
}
