package catalog

import (
	"fmt"
	"strings"
)

// Period is the unit a scenario's frequency is expressed in.
type Period string

// Supported periods.
const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

var periodDays = map[Period]int{
	PeriodDay:   1,
	PeriodWeek:  7,
	PeriodMonth: 30,
}

// ParsePeriod accepts day, week or month (also daily, weekly, monthly).
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily":
		return PeriodDay, nil
	case "", "week", "weekly":
		return PeriodWeek, nil
	case "month", "monthly":
		return PeriodMonth, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownPeriod)
	}
}

// Frequency is how often a scenario happens, e.g. 5 times per week.
type Frequency struct {
	Count  int    `json:"count"`
	Period Period `json:"period"`
}

// Target converts the frequency into the number of outfits needed over the
// planning period, rounding up: 5 per week over a month is ceil(5*30/7) = 22.
func (f Frequency) Target(planning Period) int {
	if f.Count <= 0 {
		return 0
	}
	per, ok := periodDays[f.Period]
	if !ok {
		per = periodDays[PeriodWeek]
	}
	plan, ok := periodDays[planning]
	if !ok {
		plan = periodDays[PeriodWeek]
	}
	return (f.Count*plan + per - 1) / per
}
