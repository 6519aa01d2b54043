// Package dateutil holds the age/year arithmetic shared by the timeline
// layers. The plan anchors everything to (currentYear, currentAge); calendar
// years are always derived, never stored independently.
package dateutil

import (
	"time"
)

// Age calculates the age at a given date.
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// YearForAge maps a target age onto a calendar year given the plan anchor.
func YearForAge(currentYear, currentAge, targetAge int) int {
	return currentYear + (targetAge - currentAge)
}

// AgeForYear is the inverse of YearForAge.
func AgeForYear(currentYear, currentAge, year int) int {
	return currentAge + (year - currentYear)
}
