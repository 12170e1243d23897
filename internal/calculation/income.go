package calculation

import (
	"github.com/accolaben-a11y/three-buckets/internal/domain"
)

// GetSSMonthlyAmount resolves the effective monthly amount of an income item
// for the given claim age. Social Security items pay their claim-age tier
// amount, falling back to the flat monthly amount when the tier is unset and
// to the age-67 tier when the claim age is not exactly 62, 67 or 70. Any
// other kind pays its flat monthly amount.
func GetSSMonthlyAmount(item domain.IncomeItem, claimAge int) int64 {
	if item.Kind != domain.IncomeSocialSecurity {
		return item.MonthlyAmountCents
	}

	switch claimAge {
	case 62:
		return tierOrFlat(item.SSAge62Cents, item.MonthlyAmountCents)
	case 70:
		return tierOrFlat(item.SSAge70Cents, item.MonthlyAmountCents)
	default:
		return tierOrFlat(item.SSAge67Cents, item.MonthlyAmountCents)
	}
}

func tierOrFlat(tier *int64, flatCents int64) int64 {
	if tier != nil {
		return *tier
	}
	return flatCents
}

// claimAgeFor picks the claim age governing an item's Social Security
// eligibility: spouse-owned items follow the spouse's claim age, everything
// else follows the primary's.
func claimAgeFor(item domain.IncomeItem, ssPrimaryClaimAge, ssSpouseClaimAge int) int {
	if item.Owner == domain.OwnerSpouse {
		return ssSpouseClaimAge
	}
	return ssPrimaryClaimAge
}

// BuildIncomeByAge sums the household's monthly income for every whole age
// from retirementAge to horizonAge inclusive. An item contributes where the
// age falls inside [max(startAge, retirementAge), endAge ?? horizonAge].
// Social Security items are excluded before the owner's claim age and pay the
// claim-age tier amount from then on.
func BuildIncomeByAge(items []domain.IncomeItem, retirementAge, horizonAge, ssPrimaryClaimAge, ssSpouseClaimAge int) map[int]int64 {
	incomeByAge := make(map[int]int64, horizonAge-retirementAge+1)

	for age := retirementAge; age <= horizonAge; age++ {
		var total int64
		for _, item := range items {
			effectiveStart := item.StartAge
			if retirementAge > effectiveStart {
				effectiveStart = retirementAge
			}
			effectiveEnd := horizonAge
			if item.EndAge != nil {
				effectiveEnd = *item.EndAge
			}
			if age < effectiveStart || age > effectiveEnd {
				continue
			}

			if item.Kind == domain.IncomeSocialSecurity {
				claimAge := claimAgeFor(item, ssPrimaryClaimAge, ssSpouseClaimAge)
				if age < claimAge {
					continue
				}
				total += GetSSMonthlyAmount(item, claimAge)
				continue
			}

			total += item.MonthlyAmountCents
		}
		incomeByAge[age] = total
	}

	return incomeByAge
}

// BuildSurvivorIncomeByAge builds the income map that applies from the
// survivor event onward. Non-SS income belonging to the deceased spouse is
// dropped, except pensions which pay the elected survivor percentage of the
// original amount. Income owned by the survivor or marked joint continues
// unchanged. Social Security substitutes: the survivor receives the higher of
// the two spouses' own claimed benefits, not the sum, with a spouse
// contributing nothing at ages before their claim age.
func BuildSurvivorIncomeByAge(items []domain.IncomeItem, retirementAge, horizonAge, ssPrimaryClaimAge, ssSpouseClaimAge int, event domain.SurvivorEvent) map[int]int64 {
	incomeByAge := make(map[int]int64)

	deceased := domain.OwnerPrimary
	if event.Survivor == domain.OwnerPrimary {
		deceased = domain.OwnerSpouse
	}

	for age := event.EventAge; age <= horizonAge; age++ {
		var total int64

		for _, item := range items {
			if item.Kind == domain.IncomeSocialSecurity {
				continue
			}

			effectiveEnd := horizonAge
			if item.EndAge != nil {
				effectiveEnd = *item.EndAge
			}
			if age < item.StartAge || age > effectiveEnd {
				continue
			}

			if item.Owner == deceased {
				if item.Kind == domain.IncomePension {
					total += survivorPensionCents(item)
				}
				continue
			}

			total += item.MonthlyAmountCents
		}

		total += survivorSSCents(items, age, ssPrimaryClaimAge, ssSpouseClaimAge)
		incomeByAge[age] = total
	}

	return incomeByAge
}

// survivorPensionCents is the survivor's share of a pension item:
// floor(monthly amount x survivor pct / 10000). An item without an elected
// percentage pays nothing to the survivor.
func survivorPensionCents(item domain.IncomeItem) int64 {
	if item.PensionSurvivorPctBps == nil {
		return 0
	}
	return item.MonthlyAmountCents * *item.PensionSurvivorPctBps / 10000
}

// survivorSSCents applies the Social Security survivor-benefit substitution:
// each spouse's claimed benefit is totaled at their own claim age, and the
// survivor receives the higher of the two.
func survivorSSCents(items []domain.IncomeItem, age, ssPrimaryClaimAge, ssSpouseClaimAge int) int64 {
	var primarySS, spouseSS int64
	for _, item := range items {
		if item.Kind != domain.IncomeSocialSecurity {
			continue
		}
		switch item.Owner {
		case domain.OwnerSpouse:
			if age >= ssSpouseClaimAge {
				spouseSS += GetSSMonthlyAmount(item, ssSpouseClaimAge)
			}
		default:
			if age >= ssPrimaryClaimAge {
				primarySS += GetSSMonthlyAmount(item, ssPrimaryClaimAge)
			}
		}
	}
	if spouseSS > primarySS {
		return spouseSS
	}
	return primarySS
}

// CalculateBridgePeriod costs out the Social Security deferral window. A
// bridge exists when either spouse claims later than the retirement age; the
// monthly gap is the claimed benefit of every deferred SS item, and the total
// cost runs from retirement to the latest claim age.
func CalculateBridgePeriod(items []domain.IncomeItem, retirementAge, ssPrimaryClaimAge, ssSpouseClaimAge int) domain.BridgePeriodResult {
	latestClaimAge := ssPrimaryClaimAge
	if ssSpouseClaimAge > latestClaimAge {
		latestClaimAge = ssSpouseClaimAge
	}

	if latestClaimAge <= retirementAge {
		return domain.BridgePeriodResult{
			BridgeStartAge: retirementAge,
			BridgeEndAge:   retirementAge,
		}
	}

	var monthlyGap int64
	for _, item := range items {
		if item.Kind != domain.IncomeSocialSecurity {
			continue
		}
		claimAge := claimAgeFor(item, ssPrimaryClaimAge, ssSpouseClaimAge)
		if claimAge > retirementAge {
			monthlyGap += GetSSMonthlyAmount(item, claimAge)
		}
	}

	bridgeMonths := int64(latestClaimAge-retirementAge) * 12

	return domain.BridgePeriodResult{
		HasBridgePeriod:      true,
		BridgeStartAge:       retirementAge,
		BridgeEndAge:         latestClaimAge,
		MonthlyGapCents:      monthlyGap,
		TotalBridgeCostCents: monthlyGap * bridgeMonths,
	}
}
