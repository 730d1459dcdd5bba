package tax

import "github.com/shopspring/decimal"

func rule(code string, timing Timing, rate string, downPayment bool) StateTaxRule {
	return StateTaxRule{
		StateCode:            code,
		Timing:               timing,
		Rate:                 decimal.RequireFromString(rate),
		AppliesToDownPayment: downPayment,
	}
}

// defaultRules are state-level rates only; county and city overlays are not modelled.
func defaultRules() []StateTaxRule {
	return []StateTaxRule{
		rule("AK", TimingNone, "0", false),
		rule("AL", TimingMonthly, "0.02", true),
		rule("AR", TimingMonthly, "0.065", true),
		rule("AZ", TimingMonthly, "0.056", true),
		rule("CA", TimingMonthly, "0.0725", true),
		rule("CO", TimingMonthly, "0.029", true),
		rule("CT", TimingMonthly, "0.0635", true),
		rule("DC", TimingMonthly, "0.06", true),
		rule("DE", TimingNone, "0", false),
		rule("FL", TimingMonthly, "0.06", true),
		rule("GA", TimingUpfront, "0.07", false),
		rule("HI", TimingMonthly, "0.04", true),
		rule("IA", TimingMonthly, "0.05", true),
		rule("ID", TimingMonthly, "0.06", true),
		rule("IL", TimingMonthly, "0.0625", true),
		rule("IN", TimingMonthly, "0.07", true),
		rule("KS", TimingMonthly, "0.065", true),
		rule("KY", TimingMonthly, "0.06", true),
		rule("LA", TimingMonthly, "0.0445", true),
		rule("MA", TimingMonthly, "0.0625", true),
		rule("MD", TimingUpfront, "0.065", false),
		rule("ME", TimingMonthly, "0.055", true),
		rule("MI", TimingMonthly, "0.06", true),
		rule("MN", TimingUpfront, "0.06875", false),
		rule("MO", TimingMonthly, "0.04225", true),
		rule("MS", TimingMonthly, "0.05", true),
		rule("MT", TimingNone, "0", false),
		rule("NC", TimingMonthly, "0.03", true),
		rule("ND", TimingMonthly, "0.05", true),
		rule("NE", TimingMonthly, "0.055", true),
		rule("NH", TimingNone, "0", false),
		rule("NJ", TimingUpfront, "0.06625", false),
		rule("NM", TimingMonthly, "0.04", true),
		rule("NV", TimingMonthly, "0.0685", true),
		rule("NY", TimingUpfront, "0.04", false),
		rule("OH", TimingUpfront, "0.0575", false),
		rule("OK", TimingMonthly, "0.0325", true),
		rule("OR", TimingNone, "0", false),
		rule("PA", TimingMonthly, "0.06", true),
		rule("RI", TimingMonthly, "0.07", true),
		rule("SC", TimingMonthly, "0.05", true),
		rule("SD", TimingMonthly, "0.04", true),
		rule("TN", TimingMonthly, "0.07", true),
		rule("TX", TimingUpfront, "0.0625", false),
		rule("UT", TimingMonthly, "0.0485", true),
		rule("VA", TimingUpfront, "0.0415", false),
		rule("VT", TimingMonthly, "0.06", true),
		rule("WA", TimingMonthly, "0.065", true),
		rule("WI", TimingMonthly, "0.05", true),
		rule("WV", TimingUpfront, "0.06", false),
		rule("WY", TimingMonthly, "0.04", true),
	}
}
