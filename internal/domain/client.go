package domain

// Owner identifies which member of the household an income item belongs to.
type Owner string

const (
	OwnerPrimary Owner = "primary"
	OwnerSpouse  Owner = "spouse"
	OwnerJoint   Owner = "joint"
)

// Valid reports whether the owner tag is one of the recognized values.
func (o Owner) Valid() bool {
	switch o {
	case OwnerPrimary, OwnerSpouse, OwnerJoint:
		return true
	}
	return false
}

// IncomeKind classifies an income item. Social Security items carry claim-age
// tier amounts and are gated on the scenario's chosen claim age; all other
// kinds contribute their flat monthly amount within their active window.
type IncomeKind string

const (
	IncomeSocialSecurity IncomeKind = "social_security"
	IncomeWage           IncomeKind = "wage"
	IncomeCommission     IncomeKind = "commission"
	IncomeBusiness       IncomeKind = "business"
	IncomePension        IncomeKind = "pension"
	IncomeOther          IncomeKind = "other"
)

// Valid reports whether the income kind is one of the recognized values.
func (k IncomeKind) Valid() bool {
	switch k {
	case IncomeSocialSecurity, IncomeWage, IncomeCommission, IncomeBusiness, IncomePension, IncomeOther:
		return true
	}
	return false
}

// PayoutType selects how HECM proceeds are taken.
type PayoutType string

const (
	PayoutNone    PayoutType = "none"
	PayoutLumpSum PayoutType = "lump_sum"
	PayoutLOC     PayoutType = "loc"
	PayoutTenure  PayoutType = "tenure"
)

// Valid reports whether the payout type is one of the recognized values.
func (p PayoutType) Valid() bool {
	switch p {
	case PayoutNone, PayoutLumpSum, PayoutLOC, PayoutTenure:
		return true
	}
	return false
}

// AccountType is the tax characterization of a nest egg account. It is
// informational to the engine; qualified and non-qualified accounts compound
// identically here.
type AccountType string

const (
	AccountQualified    AccountType = "qualified"
	AccountNonQualified AccountType = "non_qualified"
)

// Valid reports whether the account type is one of the recognized values.
func (a AccountType) Valid() bool {
	return a == AccountQualified || a == AccountNonQualified
}

// MaritalStatus of the primary client.
type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "single"
	MaritalMarried MaritalStatus = "married"
	MaritalWidowed MaritalStatus = "widowed"
)

// Valid reports whether the marital status is one of the recognized values.
func (m MaritalStatus) Valid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalWidowed:
		return true
	}
	return false
}

// BridgeFunding names the bucket that funds the Social Security deferral gap.
// The choice is carried through to presentation; it does not change the math.
type BridgeFunding string

const (
	BridgeFromBucket1 BridgeFunding = "bucket1"
	BridgeFromBucket2 BridgeFunding = "bucket2"
	BridgeFromBucket3 BridgeFunding = "bucket3"
)

// Valid reports whether the bridge funding choice is one of the recognized values.
func (b BridgeFunding) Valid() bool {
	switch b {
	case BridgeFromBucket1, BridgeFromBucket2, BridgeFromBucket3:
		return true
	}
	return false
}

// IncomeItem is a single recurring income stream (Bucket 1). All amounts are
// integer cents; rates are integer basis points.
type IncomeItem struct {
	ID    string     `yaml:"id,omitempty" json:"id,omitempty"`
	Owner Owner      `yaml:"owner" json:"owner"`
	Kind  IncomeKind `yaml:"kind" json:"kind"`
	Label string     `yaml:"label" json:"label"`

	MonthlyAmountCents int64 `yaml:"monthly_amount_cents" json:"monthlyAmountCents"`
	StartAge           int   `yaml:"start_age" json:"startAge"`
	EndAge             *int  `yaml:"end_age,omitempty" json:"endAge,omitempty"` // nil = continues to horizon

	// Social Security claim-age tier amounts. The effective monthly amount of
	// a social_security item is selected by the scenario's claim age for the
	// owning spouse, not by MonthlyAmountCents.
	SSAge62Cents *int64 `yaml:"ss_age62_cents,omitempty" json:"ssAge62Cents,omitempty"`
	SSAge67Cents *int64 `yaml:"ss_age67_cents,omitempty" json:"ssAge67Cents,omitempty"`
	SSAge70Cents *int64 `yaml:"ss_age70_cents,omitempty" json:"ssAge70Cents,omitempty"`
	SSClaimAge   *int   `yaml:"ss_claim_age,omitempty" json:"ssClaimAge,omitempty"`

	// PensionSurvivorPctBps is the share of a pension item paid to the
	// surviving spouse, in basis points of the original amount.
	PensionSurvivorPctBps *int64 `yaml:"pension_survivor_pct_bps,omitempty" json:"pensionSurvivorPctBps,omitempty"`
}

// NestEggAccount is a single investment account (Bucket 2).
type NestEggAccount struct {
	ID                       string      `yaml:"id,omitempty" json:"id,omitempty"`
	Label                    string      `yaml:"label" json:"label"`
	AccountType              AccountType `yaml:"account_type" json:"accountType"`
	CurrentBalanceCents      int64       `yaml:"current_balance_cents" json:"currentBalanceCents"`
	MonthlyContributionCents int64       `yaml:"monthly_contribution_cents" json:"monthlyContributionCents"` // pre-retirement only
	RateOfReturnBps          int64       `yaml:"rate_of_return_bps" json:"rateOfReturnBps"`
	MonthlyDrawCents         int64       `yaml:"monthly_draw_cents" json:"monthlyDrawCents"` // post-retirement only
}

// HomeEquityProfile describes the client's home and reverse-mortgage election
// (Bucket 3). PrincipalLimitCents is the lender-supplied figure entered by the
// advisor; the engine performs no PLF table lookup.
type HomeEquityProfile struct {
	CurrentHomeValueCents        int64      `yaml:"current_home_value_cents" json:"currentHomeValueCents"`
	ExistingMortgageBalanceCents int64      `yaml:"existing_mortgage_balance_cents" json:"existingMortgageBalanceCents"`
	ExistingMortgagePaymentCents int64      `yaml:"existing_mortgage_payment_cents" json:"existingMortgagePaymentCents"`
	HomeAppreciationRateBps      int64      `yaml:"home_appreciation_rate_bps" json:"homeAppreciationRateBps"`
	HECMExpectedRateBps          int64      `yaml:"hecm_expected_rate_bps" json:"hecmExpectedRateBps"` // informational
	PayoutType                   PayoutType `yaml:"payout_type" json:"payoutType"`
	TenureMonthlyCents           int64      `yaml:"tenure_monthly_cents" json:"tenureMonthlyCents"`
	LOCGrowthRateBps             *int64     `yaml:"loc_growth_rate_bps,omitempty" json:"locGrowthRateBps,omitempty"` // nil = use global default
	PayoffMortgage               bool       `yaml:"payoff_mortgage" json:"payoffMortgage"`
	PrincipalLimitCents          int64      `yaml:"principal_limit_cents" json:"principalLimitCents"`
	AdditionalLumpSumCents       int64      `yaml:"additional_lump_sum_cents" json:"additionalLumpSumCents"`
}

// SurvivorEvent configures the survivor-mode variant: Survivor names the
// spouse who remains after the event, EventAge is the survivor's age at which
// the event is modeled.
type SurvivorEvent struct {
	Survivor Owner `yaml:"survivor" json:"survivor"` // primary or spouse
	EventAge int   `yaml:"event_age" json:"eventAge"`
}

// ClientProfile holds the household facts the engine needs.
type ClientProfile struct {
	PrimaryAge    int            `yaml:"primary_age" json:"primaryAge"`
	SpouseAge     *int           `yaml:"spouse_age,omitempty" json:"spouseAge,omitempty"`
	RetirementAge int            `yaml:"retirement_age" json:"retirementAge"`
	MaritalStatus MaritalStatus  `yaml:"marital_status" json:"maritalStatus"`
	SurvivorEvent *SurvivorEvent `yaml:"survivor_event,omitempty" json:"survivorEvent,omitempty"`
}

// Scenario is the advisor's adjustable model settings for one calculation.
type Scenario struct {
	TargetMonthlyIncomeCents int64         `yaml:"target_monthly_income_cents" json:"targetMonthlyIncomeCents"`
	Bucket1DrawCents         int64         `yaml:"bucket1_draw_cents" json:"bucket1DrawCents"`
	Bucket2DrawCents         int64         `yaml:"bucket2_draw_cents" json:"bucket2DrawCents"`
	Bucket3DrawCents         int64         `yaml:"bucket3_draw_cents" json:"bucket3DrawCents"`
	BridgeFundingSource      BridgeFunding `yaml:"bridge_funding_source" json:"bridgeFundingSource"`
	SSPrimaryClaimAge        int           `yaml:"ss_primary_claim_age" json:"ssPrimaryClaimAge"`
	SSSpouseClaimAge         int           `yaml:"ss_spouse_claim_age" json:"ssSpouseClaimAge"`
	InflationRateBps         int64         `yaml:"inflation_rate_bps" json:"inflationRateBps"`
	PlanningHorizonAge       int           `yaml:"planning_horizon_age" json:"planningHorizonAge"`
	SurvivorMode             bool          `yaml:"survivor_mode" json:"survivorMode"`
	Bucket2DepositCents      int64         `yaml:"bucket2_deposit_cents,omitempty" json:"bucket2DepositCents,omitempty"`
	Bucket3RepaymentCents    int64         `yaml:"bucket3_repayment_cents,omitempty" json:"bucket3RepaymentCents,omitempty"`
}

// GlobalSettings are the advisor-wide figures resolved by the caller before
// invoking the engine. They are explicit parameters, never ambient state.
type GlobalSettings struct {
	LendingLimitCents         int64 `yaml:"lending_limit_cents" json:"lendingLimitCents"`
	DefaultLOCGrowthRateBps   int64 `yaml:"default_loc_growth_rate_bps" json:"defaultLocGrowthRateBps"`
	DefaultInflationRateBps   int64 `yaml:"default_inflation_rate_bps,omitempty" json:"defaultInflationRateBps,omitempty"`
	DefaultPlanningHorizonAge int   `yaml:"default_planning_horizon_age,omitempty" json:"defaultPlanningHorizonAge,omitempty"`
}

// DefaultLOCGrowthRateBps is the fallback LOC growth rate applied when neither
// the home-equity profile nor the settings supply one.
const DefaultLOCGrowthRateBps int64 = 600

// Client is the fully-loaded client record consumed by the engine.
type Client struct {
	Profile         ClientProfile      `yaml:"profile" json:"profile"`
	IncomeItems     []IncomeItem       `yaml:"income_items" json:"incomeItems"`
	NestEggAccounts []NestEggAccount   `yaml:"nest_egg_accounts" json:"nestEggAccounts"`
	HomeEquity      *HomeEquityProfile `yaml:"home_equity,omitempty" json:"homeEquity,omitempty"`
	Scenario        Scenario           `yaml:"scenario" json:"scenario"`
}
