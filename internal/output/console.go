package output

import (
	"fmt"
	"strings"

	"github.com/accolaben-a11y/three-buckets/internal/domain"
)

// ConsoleFormatter renders the result as the advisor-facing plain-text
// report: dashboard figures, bucket summaries, bridge period, and the
// longevity table with depletion warnings.
type ConsoleFormatter struct{}

// Format renders the full report.
func (cf *ConsoleFormatter) Format(result *domain.FullCalculationResult) ([]byte, error) {
	var sb strings.Builder

	rule := strings.Repeat("=", 72)
	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb, "THREE-BUCKETS RETIREMENT CASH FLOW ANALYSIS")
	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb)

	cf.writeDashboard(&sb, &result.Dashboard)
	cf.writeAccumulation(&sb, &result.Accumulation)
	cf.writeHecm(&sb, result.Hecm)
	cf.writeBridge(&sb, &result.BridgePeriod)
	cf.writeLongevity(&sb, result)

	return []byte(sb.String()), nil
}

func (cf *ConsoleFormatter) writeDashboard(sb *strings.Builder, dashboard *domain.Dashboard) {
	fmt.Fprintln(sb, "MONTHLY CASH FLOW")
	fmt.Fprintln(sb, strings.Repeat("-", 40))
	fmt.Fprintf(sb, "  Bucket 1 (income):      %s\n", FormatCurrency(dashboard.Bucket1MonthlyCents))
	fmt.Fprintf(sb, "  Bucket 2 (nest egg):    %s\n", FormatCurrency(dashboard.Bucket2MonthlyCents))
	fmt.Fprintf(sb, "  Bucket 3 (home equity): %s\n", FormatCurrency(dashboard.Bucket3MonthlyCents))
	fmt.Fprintf(sb, "  Nest egg blended rate:  %s\n", FormatBps(dashboard.Bucket2BlendedRateBps))
	fmt.Fprintf(sb, "  Total monthly income:   %s\n", FormatCurrency(dashboard.TotalMonthlyIncomeCents))
	fmt.Fprintf(sb, "  Gross target:           %s\n", FormatCurrency(dashboard.GrossTargetCents))
	if dashboard.AdjustedTargetCents != dashboard.GrossTargetCents {
		fmt.Fprintf(sb, "  Adjusted target:        %s (mortgage payment eliminated)\n", FormatCurrency(dashboard.AdjustedTargetCents))
	}
	if dashboard.MortgageFreedCents > 0 {
		fmt.Fprintf(sb, "  Mortgage payment freed: %s\n", FormatCurrency(dashboard.MortgageFreedCents))
	}
	switch {
	case dashboard.ShortfallCents > 0:
		fmt.Fprintf(sb, "  SHORTFALL:              %s/mo\n", FormatCurrency(dashboard.ShortfallCents))
	case dashboard.SurplusCents > 0:
		fmt.Fprintf(sb, "  Surplus:                %s/mo\n", FormatCurrency(dashboard.SurplusCents))
	default:
		fmt.Fprintln(sb, "  Target met exactly")
	}
	fmt.Fprintln(sb)
}

func (cf *ConsoleFormatter) writeAccumulation(sb *strings.Builder, accumulation *domain.AccumulationResult) {
	fmt.Fprintln(sb, "ACCUMULATION TO RETIREMENT")
	fmt.Fprintln(sb, strings.Repeat("-", 40))
	fmt.Fprintf(sb, "  Months to retirement: %d\n", accumulation.MonthsToRetirement)
	for _, account := range accumulation.NestEggProjections {
		fmt.Fprintf(sb, "  %-24s %s -> %s\n", account.Label+":",
			FormatCurrency(account.CurrentBalanceCents),
			FormatCurrency(account.ProjectedBalanceCents))
	}
	fmt.Fprintf(sb, "  Total nest egg:       %s -> %s\n",
		FormatCurrency(accumulation.TotalCurrentNestEggCents),
		FormatCurrency(accumulation.TotalProjectedNestEggCents))
	if accumulation.ProjectedHomeValueCents > 0 {
		fmt.Fprintf(sb, "  Projected home value: %s\n", FormatCurrency(accumulation.ProjectedHomeValueCents))
	}
	fmt.Fprintln(sb)
}

func (cf *ConsoleFormatter) writeHecm(sb *strings.Builder, hecm *domain.HecmResult) {
	if hecm == nil {
		return
	}
	fmt.Fprintln(sb, "REVERSE MORTGAGE (HECM)")
	fmt.Fprintln(sb, strings.Repeat("-", 40))
	fmt.Fprintf(sb, "  Principal limit:    %s\n", FormatCurrency(hecm.PrincipalLimitCents))
	fmt.Fprintf(sb, "  Available proceeds: %s\n", FormatCurrency(hecm.AvailableProceedsCents))
	if cashToClose := hecm.CashToCloseCents(); cashToClose > 0 {
		fmt.Fprintf(sb, "  CASH TO CLOSE REQUIRED: %s (funded from Bucket 2)\n", FormatCurrency(cashToClose))
	}
	fmt.Fprintf(sb, "  Lump sum available: %s\n", FormatCurrency(hecm.LumpSumAvailableCents))
	if hecm.MonthlyFreedCents > 0 {
		fmt.Fprintf(sb, "  Monthly freed:      %s\n", FormatCurrency(hecm.MonthlyFreedCents))
	}
	if hecm.TenureMonthlyCents > 0 {
		fmt.Fprintf(sb, "  Tenure payment:     %s/mo\n", FormatCurrency(hecm.TenureMonthlyCents))
	}
	if hecm.LOCStartBalanceCents > 0 {
		fmt.Fprintf(sb, "  LOC start balance:  %s\n", FormatCurrency(hecm.LOCStartBalanceCents))
		fmt.Fprintf(sb, "  LOC growth rate:    %s\n", FormatBps(hecm.LOCGrowthRateBps))
		for _, projection := range hecm.LOCProjections {
			fmt.Fprintf(sb, "    at age %d: %s\n", projection.Age, FormatCurrency(projection.BalanceCents))
		}
	}
	fmt.Fprintln(sb)
}

func (cf *ConsoleFormatter) writeBridge(sb *strings.Builder, bridge *domain.BridgePeriodResult) {
	if !bridge.HasBridgePeriod {
		return
	}
	fmt.Fprintln(sb, "SOCIAL SECURITY BRIDGE PERIOD")
	fmt.Fprintln(sb, strings.Repeat("-", 40))
	fmt.Fprintf(sb, "  Ages %d to %d\n", bridge.BridgeStartAge, bridge.BridgeEndAge)
	fmt.Fprintf(sb, "  Monthly gap:  %s\n", FormatCurrency(bridge.MonthlyGapCents))
	fmt.Fprintf(sb, "  Total bridge cost: %s\n", FormatCurrency(bridge.TotalBridgeCostCents))
	fmt.Fprintln(sb)
}

func (cf *ConsoleFormatter) writeLongevity(sb *strings.Builder, result *domain.FullCalculationResult) {
	snapshots := result.LongevityProjection
	if len(snapshots) == 0 {
		return
	}
	fmt.Fprintln(sb, "LONGEVITY PROJECTION")
	fmt.Fprintln(sb, strings.Repeat("-", 72))
	fmt.Fprintf(sb, "  %-5s %12s %14s %14s %12s %12s\n",
		"Age", "Bucket 1", "Bucket 2 Bal", "Bucket 3 Bal", "Income", "Target")
	for _, snap := range snapshots {
		fmt.Fprintf(sb, "  %-5d %12s %14s %14s %12s %12s\n",
			snap.Age,
			FormatCurrency(snap.Bucket1IncomeCents),
			FormatCurrency(snap.Bucket2BalanceCents),
			FormatCurrency(snap.Bucket3BalanceCents),
			FormatCurrency(snap.TotalIncomeCents),
			FormatCurrency(snap.TargetIncomeCents))
	}
	fmt.Fprintln(sb)

	// The depletion scan reports age-at-first-zero for buckets that were never
	// funded at all, so the warnings only apply where a balance was tracked:
	// a nest egg that started with money, and an open credit line.
	depletion := &result.DepletionAges
	bucket2Funded := result.Accumulation.TotalProjectedNestEggCents-result.Hecm.CashToCloseCents() > 0
	locOpen := result.Hecm != nil && result.Hecm.LOCStartBalanceCents > 0

	if bucket2Funded {
		if depletion.Bucket2DepletionAge != nil {
			fmt.Fprintf(sb, "  WARNING: nest egg depletes at age %d\n", *depletion.Bucket2DepletionAge)
		} else {
			fmt.Fprintln(sb, "  Nest egg lasts the full planning horizon")
		}
	}
	if locOpen && depletion.Bucket3DepletionAge != nil {
		fmt.Fprintf(sb, "  WARNING: line of credit depletes at age %d\n", *depletion.Bucket3DepletionAge)
	}
}
