package tycoon

import "time"

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

func SeasonOf(month time.Month) Season {
	switch month {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// SeasonMultiplier is a deterministic function of the calendar month.
// December carries an extra festival bump on top of winter.
func SeasonMultiplier(month time.Month) float64 {
	if month == time.December {
		return 1.20
	}
	switch SeasonOf(month) {
	case SeasonSpring:
		return 1.0
	case SeasonSummer:
		return 1.10
	case SeasonAutumn:
		return 1.05
	default:
		return 0.90
	}
}
