package calculation

import (
	"github.com/accolaben-a11y/three-buckets/internal/domain"
)

// RetirementPhaseInput feeds the year-by-year depletion simulation. Bucket 1
// is supplied as the pre-built income-by-age maps; buckets 2 and 3 are
// balance-tracked here.
type RetirementPhaseInput struct {
	RetirementAge      int
	PlanningHorizonAge int

	Bucket1MonthlyByAge map[int]int64

	Bucket2StartBalanceCents   int64
	Bucket2MonthlyDrawCents    int64
	Bucket2AnnualRateBps       int64
	Bucket2MonthlyDepositCents int64

	// Bucket 3 is balance-tracked only for a loc payout. Tenure and lump-sum
	// draws are flat cash flows, not depleting principal.
	Bucket3Type                  domain.PayoutType
	Bucket3StartBalanceCents     int64
	Bucket3MonthlyDrawCents      int64
	Bucket3LOCGrowthRateBps      int64
	Bucket3MonthlyRepaymentCents int64

	TargetMonthlyIncomeCents int64
	InflationRateBps         int64

	// When set, ages at or past the event age read income from the survivor
	// map instead of the normal map.
	SurvivorEventAge            *int
	SurvivorBucket1MonthlyByAge map[int]int64
}

// ProjectRetirementPhase simulates each year from retirement to the planning
// horizon inclusive, stepping 12 months internally: balances compound
// monthly, then the monthly draw is taken, floored at zero. Draws against a
// depleted bucket simply stop; the balance never goes negative. The target
// inflates once per year starting from year 1.
//
// Snapshot total income reports the configured draw amounts even after a
// bucket depletes; the balance columns are the depletion signal. This mirrors
// the dashboard's bucket sliders, which show the plan as configured.
func ProjectRetirementPhase(input RetirementPhaseInput) []domain.YearlySnapshot {
	years := input.PlanningHorizonAge - input.RetirementAge
	if years < 0 {
		return nil
	}

	b2Factor := monthlyFactor(input.Bucket2AnnualRateBps)
	b3Factor := monthlyFactor(input.Bucket3LOCGrowthRateBps)
	inflationFactor := annualFactor(input.InflationRateBps)
	locTracked := input.Bucket3Type == domain.PayoutLOC

	b2Balance := input.Bucket2StartBalanceCents
	var b3Balance int64
	if locTracked {
		b3Balance = input.Bucket3StartBalanceCents
	}
	targetMonthly := input.TargetMonthlyIncomeCents

	snapshots := make([]domain.YearlySnapshot, 0, years+1)

	for year := 0; year <= years; year++ {
		age := input.RetirementAge + year

		if year > 0 {
			targetMonthly = growCents(targetMonthly, inflationFactor)
		}

		b1Income := incomeForAge(input, age)

		for m := 0; m < 12; m++ {
			if b2Balance > 0 {
				b2Balance = growCents(b2Balance, b2Factor) - input.Bucket2MonthlyDrawCents
				if b2Balance < 0 {
					b2Balance = 0
				}
			}
			b2Balance += input.Bucket2MonthlyDepositCents

			if locTracked {
				if b3Balance > 0 {
					b3Balance = growCents(b3Balance, b3Factor) - input.Bucket3MonthlyDrawCents
					if b3Balance < 0 {
						b3Balance = 0
					}
				}
				b3Balance += input.Bucket3MonthlyRepaymentCents
			}
		}

		snapshots = append(snapshots, domain.YearlySnapshot{
			Age:                 age,
			Bucket1IncomeCents:  b1Income,
			Bucket2BalanceCents: b2Balance,
			Bucket3BalanceCents: b3Balance,
			TotalIncomeCents:    b1Income + input.Bucket2MonthlyDrawCents + input.Bucket3MonthlyDrawCents,
			TargetIncomeCents:   targetMonthly,
		})
	}

	return snapshots
}

// incomeForAge looks up Bucket 1 income from whichever map is active for the
// age. A missing age contributes zero.
func incomeForAge(input RetirementPhaseInput, age int) int64 {
	if input.SurvivorEventAge != nil && age >= *input.SurvivorEventAge && input.SurvivorBucket1MonthlyByAge != nil {
		return input.SurvivorBucket1MonthlyByAge[age]
	}
	return input.Bucket1MonthlyByAge[age]
}

// FindDepletionAges scans the snapshots in order and records the first age at
// which each balance-tracked bucket reads zero. Nil means the bucket outlives
// the horizon.
func FindDepletionAges(snapshots []domain.YearlySnapshot) domain.DepletionAges {
	var ages domain.DepletionAges
	for _, snap := range snapshots {
		if ages.Bucket2DepletionAge == nil && snap.Bucket2BalanceCents <= 0 {
			age := snap.Age
			ages.Bucket2DepletionAge = &age
		}
		if ages.Bucket3DepletionAge == nil && snap.Bucket3BalanceCents <= 0 {
			age := snap.Age
			ages.Bucket3DepletionAge = &age
		}
	}
	return ages
}
