package config

import (
	"fmt"
	"os"

	"github.com/accolaben-a11y/three-buckets/internal/domain"
	"gopkg.in/yaml.v3"
)

// earliestSSClaimAge is the earliest age Social Security can be claimed.
const earliestSSClaimAge = 62

// latestSSClaimAge is the latest age at which deferral still increases the
// benefit.
const latestSSClaimAge = 70

// ClientDocument is one advisor input file: the fully-loaded client record
// plus the advisor-wide settings resolved for this calculation.
type ClientDocument struct {
	Client   domain.Client         `yaml:"client" json:"client"`
	Settings domain.GlobalSettings `yaml:"settings" json:"settings"`
}

// InputParser handles parsing of client input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a client document from a YAML file, applies defaults and
// validates it. The engine assumes validated input; everything malformed is
// rejected here.
func (ip *InputParser) LoadFromFile(filename string) (*ClientDocument, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc ClientDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&doc)

	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("client document validation failed: %w", err)
	}

	return &doc, nil
}

// ApplyDefaults fills unset scenario fields from the advisor-wide settings.
func (ip *InputParser) ApplyDefaults(doc *ClientDocument) {
	scenario := &doc.Client.Scenario
	if scenario.BridgeFundingSource == "" {
		scenario.BridgeFundingSource = domain.BridgeFromBucket2
	}
	if scenario.PlanningHorizonAge == 0 && doc.Settings.DefaultPlanningHorizonAge > 0 {
		scenario.PlanningHorizonAge = doc.Settings.DefaultPlanningHorizonAge
	}
	if scenario.InflationRateBps == 0 && doc.Settings.DefaultInflationRateBps > 0 {
		scenario.InflationRateBps = doc.Settings.DefaultInflationRateBps
	}
	if doc.Client.Profile.MaritalStatus == "" {
		doc.Client.Profile.MaritalStatus = domain.MaritalSingle
	}
}

// ValidateDocument validates the loaded document: enum tags must be
// recognized, monetary magnitudes must be non-negative, and the age windows
// must be coherent. The engine never sees input that fails here.
func (ip *InputParser) ValidateDocument(doc *ClientDocument) error {
	if err := ip.validateProfile(&doc.Client.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	for i, item := range doc.Client.IncomeItems {
		if err := ip.validateIncomeItem(&item); err != nil {
			return fmt.Errorf("income item %d (%s) validation failed: %w", i, item.Label, err)
		}
	}
	for i, account := range doc.Client.NestEggAccounts {
		if err := ip.validateNestEggAccount(&account); err != nil {
			return fmt.Errorf("nest egg account %d (%s) validation failed: %w", i, account.Label, err)
		}
	}
	if doc.Client.HomeEquity != nil {
		if err := ip.validateHomeEquity(doc.Client.HomeEquity, &doc.Settings); err != nil {
			return fmt.Errorf("home equity validation failed: %w", err)
		}
	}
	if err := ip.validateScenario(&doc.Client.Scenario, &doc.Client.Profile); err != nil {
		return fmt.Errorf("scenario validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateProfile(profile *domain.ClientProfile) error {
	if profile.PrimaryAge <= 0 {
		return fmt.Errorf("primary age must be positive")
	}
	if profile.SpouseAge != nil && *profile.SpouseAge <= 0 {
		return fmt.Errorf("spouse age must be positive")
	}
	if profile.RetirementAge <= 0 {
		return fmt.Errorf("retirement age must be positive")
	}
	if !profile.MaritalStatus.Valid() {
		return fmt.Errorf("unknown marital status %q", profile.MaritalStatus)
	}
	if profile.SurvivorEvent != nil {
		event := profile.SurvivorEvent
		if event.Survivor != domain.OwnerPrimary && event.Survivor != domain.OwnerSpouse {
			return fmt.Errorf("survivor must be primary or spouse, got %q", event.Survivor)
		}
		if event.EventAge <= 0 {
			return fmt.Errorf("survivor event age must be positive")
		}
	}
	return nil
}

func (ip *InputParser) validateIncomeItem(item *domain.IncomeItem) error {
	if !item.Owner.Valid() {
		return fmt.Errorf("unknown owner %q", item.Owner)
	}
	if !item.Kind.Valid() {
		return fmt.Errorf("unknown income kind %q", item.Kind)
	}
	if item.MonthlyAmountCents < 0 {
		return fmt.Errorf("monthly amount cannot be negative")
	}
	if item.StartAge < 0 {
		return fmt.Errorf("start age cannot be negative")
	}
	if item.EndAge != nil && *item.EndAge < item.StartAge {
		return fmt.Errorf("end age %d precedes start age %d", *item.EndAge, item.StartAge)
	}
	if item.Kind == domain.IncomeSocialSecurity {
		if item.StartAge < earliestSSClaimAge {
			return fmt.Errorf("social security start age %d precedes earliest claim age %d", item.StartAge, earliestSSClaimAge)
		}
		if item.SSClaimAge != nil && (*item.SSClaimAge < earliestSSClaimAge || *item.SSClaimAge > latestSSClaimAge) {
			return fmt.Errorf("social security claim age %d outside [%d, %d]", *item.SSClaimAge, earliestSSClaimAge, latestSSClaimAge)
		}
		for _, tier := range []*int64{item.SSAge62Cents, item.SSAge67Cents, item.SSAge70Cents} {
			if tier != nil && *tier < 0 {
				return fmt.Errorf("social security tier amount cannot be negative")
			}
		}
	}
	if item.PensionSurvivorPctBps != nil {
		pct := *item.PensionSurvivorPctBps
		if pct < 0 || pct > 10000 {
			return fmt.Errorf("pension survivor percentage %d bps outside [0, 10000]", pct)
		}
	}
	return nil
}

func (ip *InputParser) validateNestEggAccount(account *domain.NestEggAccount) error {
	if !account.AccountType.Valid() {
		return fmt.Errorf("unknown account type %q", account.AccountType)
	}
	if account.CurrentBalanceCents < 0 {
		return fmt.Errorf("current balance cannot be negative")
	}
	if account.MonthlyContributionCents < 0 {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if account.MonthlyDrawCents < 0 {
		return fmt.Errorf("monthly draw cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateHomeEquity(homeEquity *domain.HomeEquityProfile, settings *domain.GlobalSettings) error {
	if !homeEquity.PayoutType.Valid() {
		return fmt.Errorf("unknown payout type %q", homeEquity.PayoutType)
	}
	if homeEquity.CurrentHomeValueCents < 0 {
		return fmt.Errorf("home value cannot be negative")
	}
	if homeEquity.ExistingMortgageBalanceCents < 0 {
		return fmt.Errorf("mortgage balance cannot be negative")
	}
	if homeEquity.ExistingMortgagePaymentCents < 0 {
		return fmt.Errorf("mortgage payment cannot be negative")
	}
	if homeEquity.PrincipalLimitCents < 0 {
		return fmt.Errorf("principal limit cannot be negative")
	}
	if homeEquity.AdditionalLumpSumCents < 0 {
		return fmt.Errorf("additional lump sum cannot be negative")
	}
	if homeEquity.TenureMonthlyCents < 0 {
		return fmt.Errorf("tenure payment cannot be negative")
	}
	// The manual principal limit is a lender figure; it cannot exceed the
	// advisor-wide lending limit when one is configured.
	if settings.LendingLimitCents > 0 && homeEquity.PrincipalLimitCents > settings.LendingLimitCents {
		return fmt.Errorf("principal limit %d exceeds lending limit %d", homeEquity.PrincipalLimitCents, settings.LendingLimitCents)
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario, profile *domain.ClientProfile) error {
	if scenario.TargetMonthlyIncomeCents < 0 {
		return fmt.Errorf("target monthly income cannot be negative")
	}
	if scenario.Bucket1DrawCents < 0 || scenario.Bucket2DrawCents < 0 || scenario.Bucket3DrawCents < 0 {
		return fmt.Errorf("bucket draws cannot be negative")
	}
	if scenario.Bucket2DepositCents < 0 || scenario.Bucket3RepaymentCents < 0 {
		return fmt.Errorf("bucket deposit and repayment cannot be negative")
	}
	if !scenario.BridgeFundingSource.Valid() {
		return fmt.Errorf("unknown bridge funding source %q", scenario.BridgeFundingSource)
	}
	for _, claimAge := range []int{scenario.SSPrimaryClaimAge, scenario.SSSpouseClaimAge} {
		if claimAge != 0 && (claimAge < earliestSSClaimAge || claimAge > latestSSClaimAge) {
			return fmt.Errorf("claim age %d outside [%d, %d]", claimAge, earliestSSClaimAge, latestSSClaimAge)
		}
	}
	if scenario.PlanningHorizonAge < profile.RetirementAge {
		return fmt.Errorf("planning horizon age %d precedes retirement age %d", scenario.PlanningHorizonAge, profile.RetirementAge)
	}
	if scenario.SurvivorMode && profile.SurvivorEvent == nil {
		return fmt.Errorf("survivor mode requires a survivor event on the profile")
	}
	return nil
}
