package planner

import (
	"time"

	"fjacquet/paydown/internal/dateutils"
	"fjacquet/paydown/internal/models"
)

// promoMonthsFor returns the number of plan months, counted from month 1, for
// which the account's promotional 0% rate applies. Zero means no promotional
// window remains at plan start.
//
// A duration-based promo runs from the account's activation: when the account
// was opened before the plan starts, the months already elapsed are deducted.
// A date-based promo covers every plan month up to and including the month of
// the end date.
func promoMonthsFor(acc *models.Account, planStart time.Time) int {
	switch {
	case acc.PromoDurationMonths != nil:
		months := *acc.PromoDurationMonths
		if acc.AccountOpenDate != nil {
			if elapsed := dateutils.MonthsBetween(*acc.AccountOpenDate, planStart); elapsed > 0 {
				months -= elapsed
			}
		}
		if months < 0 {
			return 0
		}
		return months

	case acc.PromoEndDate != nil:
		months := dateutils.MonthsBetween(planStart, *acc.PromoEndDate) + 1
		if months < 0 {
			return 0
		}
		return months
	}
	return 0
}

// promoActive reports whether the promotional rate applies in the given
// 1-based plan month.
func promoActive(promoMonths, month int) bool {
	return month <= promoMonths
}
