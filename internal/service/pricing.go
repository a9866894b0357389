// SPDX-License-Identifier: Apache-2.0

package service

import (
	"math"
	"time"
)

// Pricing rule constants. The uplift multipliers compound in a fixed order
// (age, then vehicle year, then vehicle value); each one multiplies the
// already-adjusted running total. Reordering them changes the result.
const (
	baseQuoteAmount = 100.0

	youngDriverUplift = 1.20 // age strictly under 25
	oldVehicleUplift  = 1.15 // manufacture year strictly before 2010
	highValueUplift   = 1.10 // declared value strictly above 30000

	youngDriverAgeLimit = 25
	oldVehicleYearLimit = 2010
	highValueLimit      = 30000.0
)

// CalculateQuote prices a quote for a customer born on dateOfBirth driving a
// vehicle of the given manufacture year and declared value, as of now.
//
// The result is rounded to 2 decimal places, half away from zero.
// The function is pure: identical inputs always produce identical output.
func CalculateQuote(dateOfBirth time.Time, vehicleYear int, vehicleValue float64, now time.Time) float64 {
	quote := baseQuoteAmount

	if ageInYears(dateOfBirth, now) < youngDriverAgeLimit {
		quote *= youngDriverUplift
	}

	if vehicleYear < oldVehicleYearLimit {
		quote *= oldVehicleUplift
	}

	if vehicleValue > highValueLimit {
		quote *= highValueUplift
	}

	return math.Round(quote*100) / 100
}

// ageInYears returns the whole number of years between born and now,
// i.e. the floor of the elapsed time expressed in calendar years.
func ageInYears(born, now time.Time) int {
	years := now.Year() - born.Year()

	// step back one year if this year's anniversary has not happened yet
	if born.AddDate(years, 0, 0).After(now) {
		years--
	}

	return years
}
