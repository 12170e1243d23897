package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
	sixtyPercent  = decimal.New(6, -1)
)

// annualFactor returns 1 + rateBps/10000 as an exact decimal.
func annualFactor(rateBps int64) decimal.Decimal {
	return decimalOne.Add(decimal.New(rateBps, -4))
}

// monthlyFactor returns 1 + (rateBps/10000)/12. The division runs at the
// decimal library's fixed precision, so the factor is identical on every call
// with the same rate.
func monthlyFactor(rateBps int64) decimal.Decimal {
	return decimalOne.Add(decimal.New(rateBps, -4).Div(decimalTwelve))
}

// growCents applies a single compounding step, flooring to whole cents.
// Rounding happens at every step, never deferred, so results are
// bit-reproducible.
func growCents(balanceCents int64, factor decimal.Decimal) int64 {
	return decimal.NewFromInt(balanceCents).Mul(factor).Floor().IntPart()
}

// ProjectAccountBalance carries a nest egg account forward to retirement:
// the balance compounds monthly at annualRateBps/12 with the contribution
// added at the end of each month (ordinary annuity). A non-positive month
// count returns the balance unchanged; a zero rate degrades to linear
// accumulation.
func ProjectAccountBalance(currentBalanceCents, monthlyContributionCents, annualRateBps int64, monthsToRetirement int) int64 {
	if monthsToRetirement <= 0 {
		return currentBalanceCents
	}
	if annualRateBps == 0 {
		return currentBalanceCents + monthlyContributionCents*int64(monthsToRetirement)
	}

	factor := monthlyFactor(annualRateBps)
	balance := currentBalanceCents
	for m := 0; m < monthsToRetirement; m++ {
		balance = growCents(balance, factor) + monthlyContributionCents
	}
	return balance
}

// ProjectHomeValue compounds the home value annually at the appreciation
// rate. A non-positive year count returns the value unchanged.
func ProjectHomeValue(currentValueCents, appreciationRateBps int64, years int) int64 {
	if years <= 0 {
		return currentValueCents
	}

	factor := annualFactor(appreciationRateBps)
	value := currentValueCents
	for y := 0; y < years; y++ {
		value = growCents(value, factor)
	}
	return value
}
