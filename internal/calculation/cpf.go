package calculation

import (
	"github.com/shopspring/decimal"
)

// CPF RATE ASSUMPTIONS:
//
// 1. Contribution rates are the combined employer+employee statutory step
//    function by age band, applied to ordinary wages capped at the monthly
//    ceiling. No additional-wage ceiling modeling.
//
// 2. Account allocation shifts toward Medisave with age, following the CPF
//    allocation schedule. The Medisave share is derived as the remainder so
//    the three shares always sum to exactly 1.
//
// 3. Base interest: OA 2.5% p.a., SA/MA 4% p.a., compounded annually. The
//    extra interest on the first $60k of combined balances (+1%, and +2% on
//    the first $30k from age 55) is available behind an engine option.

// CPFBand is one age band of the contribution and allocation schedule.
// MaxAge is inclusive; the last band uses a sentinel.
type CPFBand struct {
	MaxAge           int
	ContributionRate decimal.Decimal // combined employer+employee, fraction of wage
	OAShare          decimal.Decimal // fraction of the total contribution
	SAShare          decimal.Decimal
}

// CPFRates bundles the full CPF schedule used by the projection engine.
type CPFRates struct {
	Bands []CPFBand

	// OrdinaryWageCeiling caps the monthly salary subject to contribution.
	OrdinaryWageCeiling decimal.Decimal

	InterestOA decimal.Decimal // per annum
	InterestSA decimal.Decimal
	InterestMA decimal.Decimal

	// Extra-interest tiers, applied only with the bonus-interest option.
	ExtraInterestFirst60K         decimal.Decimal
	ExtraInterestFirst30KFrom55   decimal.Decimal
	ExtraInterestBalanceCap       decimal.Decimal
	ExtraInterestSeniorTierCap    decimal.Decimal
	ExtraInterestSeniorMinimumAge int
}

// NewCPFRates returns the statutory CPF schedule.
func NewCPFRates() *CPFRates {
	return &CPFRates{
		Bands: []CPFBand{
			{MaxAge: 35, ContributionRate: decimal.NewFromFloat(0.37), OAShare: decimal.NewFromFloat(0.6217), SAShare: decimal.NewFromFloat(0.1622)},
			{MaxAge: 45, ContributionRate: decimal.NewFromFloat(0.37), OAShare: decimal.NewFromFloat(0.5676), SAShare: decimal.NewFromFloat(0.1892)},
			{MaxAge: 50, ContributionRate: decimal.NewFromFloat(0.37), OAShare: decimal.NewFromFloat(0.5135), SAShare: decimal.NewFromFloat(0.2162)},
			{MaxAge: 55, ContributionRate: decimal.NewFromFloat(0.35), OAShare: decimal.NewFromFloat(0.5135), SAShare: decimal.NewFromFloat(0.3108)},
			{MaxAge: 60, ContributionRate: decimal.NewFromFloat(0.28), OAShare: decimal.NewFromFloat(0.3514), SAShare: decimal.NewFromFloat(0.3514)},
			{MaxAge: 65, ContributionRate: decimal.NewFromFloat(0.165), OAShare: decimal.NewFromFloat(0.3514), SAShare: decimal.NewFromFloat(0.3514)},
			{MaxAge: maxBandAge, ContributionRate: decimal.NewFromFloat(0.05), OAShare: decimal.NewFromFloat(0.3514), SAShare: decimal.NewFromFloat(0.3514)},
		},
		OrdinaryWageCeiling: decimal.NewFromInt(6800),

		InterestOA: decimal.NewFromFloat(0.025),
		InterestSA: decimal.NewFromFloat(0.04),
		InterestMA: decimal.NewFromFloat(0.04),

		ExtraInterestFirst60K:         decimal.NewFromFloat(0.01),
		ExtraInterestFirst30KFrom55:   decimal.NewFromFloat(0.02),
		ExtraInterestBalanceCap:       decimal.NewFromInt(60000),
		ExtraInterestSeniorTierCap:    decimal.NewFromInt(30000),
		ExtraInterestSeniorMinimumAge: 55,
	}
}

// maxBandAge is the sentinel for the open-ended final band.
const maxBandAge = 200

// band returns the schedule band covering the given age.
func (r *CPFRates) band(age int) CPFBand {
	for _, b := range r.Bands {
		if age <= b.MaxAge {
			return b
		}
	}
	return r.Bands[len(r.Bands)-1]
}

// ContributionRate returns the combined employer+employee contribution rate
// for the given age.
func (r *CPFRates) ContributionRate(age int) decimal.Decimal {
	return r.band(age).ContributionRate
}

// AnnualContribution computes the total CPF contribution for a year of the
// given monthly income, capped at the ordinary wage ceiling.
func (r *CPFRates) AnnualContribution(age int, monthlyIncome decimal.Decimal) decimal.Decimal {
	capped := decimal.Min(monthlyIncome, r.OrdinaryWageCeiling)
	return capped.Mul(r.ContributionRate(age)).Mul(decimal.NewFromInt(12))
}

// Allocate splits a total contribution into OA, SA and MA shares for the
// given age. The MA share is the remainder, so the parts sum exactly to the
// input.
func (r *CPFRates) Allocate(age int, contribution decimal.Decimal) (oa, sa, ma decimal.Decimal) {
	b := r.band(age)
	oa = contribution.Mul(b.OAShare)
	sa = contribution.Mul(b.SAShare)
	ma = contribution.Sub(oa).Sub(sa)
	return oa, sa, ma
}

// ApplyInterest compounds one year of base interest on the three balances.
func (r *CPFRates) ApplyInterest(oa, sa, ma decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	one := decimal.NewFromInt(1)
	return oa.Mul(one.Add(r.InterestOA)),
		sa.Mul(one.Add(r.InterestSA)),
		ma.Mul(one.Add(r.InterestMA))
}

// BonusInterest computes the extra interest earned on the first $60k of
// combined balances (+1% p.a.), with a further +1% on the first $30k for
// members aged 55 and above (for a total of +2% on that tier).
func (r *CPFRates) BonusInterest(age int, oa, sa, ma decimal.Decimal) decimal.Decimal {
	combined := oa.Add(sa).Add(ma)
	if combined.IsNegative() {
		return decimal.Zero
	}
	eligible := decimal.Min(combined, r.ExtraInterestBalanceCap)
	bonus := eligible.Mul(r.ExtraInterestFirst60K)
	if age >= r.ExtraInterestSeniorMinimumAge {
		seniorTier := decimal.Min(combined, r.ExtraInterestSeniorTierCap)
		// The senior tier earns +2% in total; +1% is already covered above.
		bonus = bonus.Add(seniorTier.Mul(r.ExtraInterestFirst30KFrom55.Sub(r.ExtraInterestFirst60K)))
	}
	return bonus
}
