package calculation

import (
	"github.com/accolaben-a11y/three-buckets/internal/domain"
	"github.com/shopspring/decimal"
)

// locProjectionAges are the fixed target ages for the no-draw LOC growth
// reference table.
var locProjectionAges = []int{70, 75, 80, 85}

// HecmInput carries everything the HECM calculator needs. The principal
// limit is the lender-supplied figure entered by the advisor; no PLF table
// lookup happens here. LendingLimitCents is carried for boundary validation
// and is not consulted in manual-principal-limit mode.
type HecmInput struct {
	CurrentHomeValueCents        int64
	ExistingMortgageBalanceCents int64
	ExistingMortgagePaymentCents int64
	HomeAppreciationRateBps      int64
	HECMExpectedRateBps          int64
	PayoutType                   domain.PayoutType
	TenureMonthlyCents           int64
	LOCGrowthRateBps             int64
	PayoffMortgage               bool
	PrincipalLimitCents          int64
	AdditionalLumpSumCents       int64
	YoungestBorrowerAge          int
	YearsToRetirement            int
	LendingLimitCents            int64
}

// CalculateHecm derives every reverse-mortgage figure for one client. A
// payout type of none still produces a populated result; callers only see a
// nil HECM result when the client has no home-equity profile at all.
//
// AvailableProceedsCents goes negative when the mortgage payoff exceeds the
// principal limit. That is the "cash to close" state, surfaced as-is for the
// orchestrator to fund from Bucket 2.
func CalculateHecm(input HecmInput) domain.HecmResult {
	projectedHomeValue := ProjectHomeValue(
		input.CurrentHomeValueCents,
		input.HomeAppreciationRateBps,
		input.YearsToRetirement,
	)

	retirementAge := input.YoungestBorrowerAge + input.YearsToRetirement

	var mortgagePayoffCents int64
	if input.PayoffMortgage && input.ExistingMortgageBalanceCents > 0 {
		mortgagePayoffCents = input.ExistingMortgageBalanceCents
	}

	var monthlyFreedCents int64
	if input.PayoffMortgage && input.ExistingMortgagePaymentCents > 0 {
		monthlyFreedCents = input.ExistingMortgagePaymentCents
	}

	availableProceeds := input.PrincipalLimitCents - mortgagePayoffCents

	// First-year 60% draw restriction is waived when the draw pays off an
	// existing mortgage.
	var lumpSumAvailable int64
	if input.PayoffMortgage && input.ExistingMortgageBalanceCents > 0 {
		lumpSumAvailable = availableProceeds
	} else {
		firstYearCap := decimal.NewFromInt(input.PrincipalLimitCents).Mul(sixtyPercent).Floor().IntPart()
		lumpSumAvailable = availableProceeds
		if firstYearCap < lumpSumAvailable {
			lumpSumAvailable = firstYearCap
		}
	}

	locStartBalance := locStartBalanceCents(input.PayoutType, availableProceeds, input.AdditionalLumpSumCents)

	result := domain.HecmResult{
		ProjectedHomeValueCents: projectedHomeValue,
		PrincipalLimitCents:     input.PrincipalLimitCents,
		AvailableProceedsCents:  availableProceeds,
		MonthlyFreedCents:       monthlyFreedCents,
		LumpSumAvailableCents:   lumpSumAvailable,
		LOCStartBalanceCents:    locStartBalance,
		LOCGrowthRateBps:        input.LOCGrowthRateBps,
	}

	if locStartBalance > 0 {
		result.LOCProjections = projectLOCGrowth(locStartBalance, input.LOCGrowthRateBps, retirementAge)
	}

	if input.PayoutType == domain.PayoutTenure {
		result.TenureMonthlyCents = input.TenureMonthlyCents
	}

	return result
}

// locStartBalanceCents determines the credit line opened at closing. A loc
// payout parks all positive proceeds; a lump_sum payout parks whatever
// remains after the additional voluntary draw (the take-some-cash,
// grow-the-rest hybrid). Tenure and none open no line.
func locStartBalanceCents(payoutType domain.PayoutType, availableProceedsCents, additionalLumpSumCents int64) int64 {
	switch payoutType {
	case domain.PayoutLOC:
		if availableProceedsCents > 0 {
			return availableProceedsCents
		}
	case domain.PayoutLumpSum:
		remainder := availableProceedsCents - additionalLumpSumCents
		if remainder > 0 {
			return remainder
		}
	}
	return 0
}

// projectLOCGrowth builds the no-draw reference table: the starting line
// compounded annually at the LOC growth rate out to each fixed age beyond
// the retirement age. Distinct from the live simulation, which applies draws.
func projectLOCGrowth(startBalanceCents, locGrowthRateBps int64, retirementAge int) []domain.LOCProjection {
	factor := annualFactor(locGrowthRateBps)

	var projections []domain.LOCProjection
	for _, age := range locProjectionAges {
		if age <= retirementAge {
			continue
		}
		balance := startBalanceCents
		for y := 0; y < age-retirementAge; y++ {
			balance = growCents(balance, factor)
		}
		projections = append(projections, domain.LOCProjection{Age: age, BalanceCents: balance})
	}
	return projections
}
