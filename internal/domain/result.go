package domain

// AccountProjection is one nest egg account carried forward to retirement.
type AccountProjection struct {
	ID                    string      `json:"id,omitempty"`
	Label                 string      `json:"label"`
	AccountType           AccountType `json:"accountType"`
	CurrentBalanceCents   int64       `json:"currentBalanceCents"`
	ProjectedBalanceCents int64       `json:"projectedBalanceCents"`
}

// AccumulationResult summarizes the pre-retirement growth of Bucket 2 and the
// home value.
type AccumulationResult struct {
	MonthsToRetirement         int                 `json:"monthsToRetirement"`
	NestEggProjections         []AccountProjection `json:"nestEggProjections"`
	TotalCurrentNestEggCents   int64               `json:"totalCurrentNestEggCents"`
	TotalProjectedNestEggCents int64               `json:"totalProjectedNestEggCents"`
	ProjectedHomeValueCents    int64               `json:"projectedHomeValueCents"`
}

// LOCProjection is one row of the no-draw LOC growth reference table.
type LOCProjection struct {
	Age          int   `json:"age"`
	BalanceCents int64 `json:"balanceCents"`
}

// HecmResult holds every figure derived from the reverse-mortgage election.
// AvailableProceedsCents may be negative: the shortfall is "cash to close"
// the borrower must fund externally, not an error.
type HecmResult struct {
	ProjectedHomeValueCents int64           `json:"projectedHomeValueCents"`
	PrincipalLimitCents     int64           `json:"principalLimitCents"`
	AvailableProceedsCents  int64           `json:"availableProceedsCents"`
	MonthlyFreedCents       int64           `json:"monthlyFreedCents"`
	LumpSumAvailableCents   int64           `json:"lumpSumAvailableCents"`
	LOCStartBalanceCents    int64           `json:"locStartBalanceCents"`
	LOCGrowthRateBps        int64           `json:"locGrowthRateBps"`
	LOCProjections          []LOCProjection `json:"locProjections"`
	TenureMonthlyCents      int64           `json:"tenureMonthlyCents"`
}

// CashToCloseCents is the out-of-pocket amount required when the mortgage
// payoff exceeds the principal limit. Zero when proceeds are non-negative.
func (h *HecmResult) CashToCloseCents() int64 {
	if h == nil || h.AvailableProceedsCents >= 0 {
		return 0
	}
	return -h.AvailableProceedsCents
}

// BridgePeriodResult costs out the gap between retirement and the latest
// Social Security claim age.
type BridgePeriodResult struct {
	HasBridgePeriod      bool  `json:"hasBridgePeriod"`
	BridgeStartAge       int   `json:"bridgeStartAge"`
	BridgeEndAge         int   `json:"bridgeEndAge"`
	MonthlyGapCents      int64 `json:"monthlyGapCents"`
	TotalBridgeCostCents int64 `json:"totalBridgeCostCents"`
}

// YearlySnapshot is one year of the retirement phase simulation. Balances are
// end-of-year; income figures are monthly. TotalIncomeCents sums the
// configured draw amounts even after a bucket depletes (the balance columns
// are the depletion signal).
type YearlySnapshot struct {
	Age                 int   `json:"age"`
	Bucket1IncomeCents  int64 `json:"bucket1IncomeCents"`
	Bucket2BalanceCents int64 `json:"bucket2BalanceCents"`
	Bucket3BalanceCents int64 `json:"bucket3BalanceCents"`
	TotalIncomeCents    int64 `json:"totalIncomeCents"`
	TargetIncomeCents   int64 `json:"targetIncomeCents"`
}

// DepletionAges records the first simulated age at which each balance-tracked
// bucket reaches zero. Nil means the bucket outlives the planning horizon.
type DepletionAges struct {
	Bucket2DepletionAge *int `json:"bucket2DepletionAge"`
	Bucket3DepletionAge *int `json:"bucket3DepletionAge"`
}

// Dashboard holds the headline monthly figures rendered above the bucket
// panels.
type Dashboard struct {
	MortgageFreedCents      int64 `json:"mortgageFreedCents"`
	TotalMonthlyIncomeCents int64 `json:"totalMonthlyIncomeCents"`
	ShortfallCents          int64 `json:"shortfallCents"`
	SurplusCents            int64 `json:"surplusCents"`
	Bucket1MonthlyCents     int64 `json:"bucket1MonthlyCents"`
	Bucket2MonthlyCents     int64 `json:"bucket2MonthlyCents"`
	Bucket3MonthlyCents     int64 `json:"bucket3MonthlyCents"`
	Bucket2BlendedRateBps   int64 `json:"bucket2BlendedRateBps"`
	GrossTargetCents        int64 `json:"grossTargetCents"`
	AdjustedTargetCents     int64 `json:"adjustedTargetCents"`
}

// FullCalculationResult is the unified result assembled by the orchestrator.
// It is produced fresh on every call and owned entirely by the caller; the
// presentation layers read it without mutating it.
type FullCalculationResult struct {
	Accumulation        AccumulationResult `json:"accumulationPhase"`
	Hecm                *HecmResult        `json:"hecm"` // nil when the client has no home-equity profile
	BridgePeriod        BridgePeriodResult `json:"bridgePeriod"`
	Dashboard           Dashboard          `json:"dashboard"`
	LongevityProjection []YearlySnapshot   `json:"longevityProjection"`
	DepletionAges       DepletionAges      `json:"depletionAges"`
}
