package planner

import "fjacquet/paydown/internal/models"

// interestBpsDivisor converts an annual basis-point rate to a monthly charge:
// cents * bps / 10_000 gives the annual interest, divided by 12 months.
const interestBpsDivisor = 120000

// monthlyInterest returns the interest accrued on a pre-payment balance for
// one month at the given effective annual rate. A promotional month passes an
// effective rate of zero and therefore always yields zero interest.
func monthlyInterest(balanceCents, effectiveAPRBps int64) int64 {
	if balanceCents <= 0 || effectiveAPRBps <= 0 {
		return 0
	}
	return mulDivRoundHalfEven(balanceCents, effectiveAPRBps, interestBpsDivisor)
}

// minimumPayment returns the floor payment the rule requires for the month:
// the greater of the fixed component and the percentage-of-balance component,
// plus the month's interest when the rule includes it. The result is clamped
// to the total owed (balance plus interest) so a floor can never force an
// overpayment.
//
// A rule whose fixed and percentage components are both zero yields a zero
// floor. That is a legal policy value, not a defect; the planner never
// invents an implicit minimum.
func minimumPayment(balanceCents, interestCents int64, rule models.MinPaymentRule) int64 {
	if balanceCents <= 0 {
		return 0
	}

	var percentage int64
	if rule.PercentageBps > 0 {
		percentage = mulDivRoundHalfEven(balanceCents, rule.PercentageBps, 10000)
	}

	floor := maxInt64(rule.FixedCents, percentage)
	if rule.IncludesInterest {
		floor += interestCents
	}

	return minInt64(floor, balanceCents+interestCents)
}
