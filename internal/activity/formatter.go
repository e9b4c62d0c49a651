package activity

import (
	"fmt"
	"time"
)

const (
	secondsPerDayConstant                 = int64(24 * 60 * 60)
	secondsPerHourConstant                = int64(60 * 60)
	secondsPerMinuteConstant              = int64(60)
	recentDaysLimitConstant               = 365
	onDemandRecentDaysLimitConstant       = 31
	monthDayLayoutConstant                = "Jan 2"
	numericDateLayoutConstant             = "1/2/2006"
	monthDayYearLayoutConstant            = "Jan 2 2006"
	hoursAgoTemplateConstant              = "%d hours ago"
	minutesAgoTemplateConstant            = "%d minutes ago"
	secondsAgoTemplateConstant            = "%d seconds ago"
	daysAgoTemplateConstant               = "%d days ago"
	activeTemplateConstant                = "Active: %s"
	activeYesterdayConstant               = "Active: yesterday"
	activeDaysAgoWithDateTemplateConstant = "Active: %d days ago (%s)"
	onDemandLineTemplateConstant          = "%sOnDemand %s: %s"
	onDemandYesterdayConstant             = "(yesterday)"
)

// Elapsed splits a duration into whole days and the remaining seconds of the last day.
type Elapsed struct {
	Days    int64
	Seconds int64
}

// NewElapsed floors the wall-clock interval between modified and now into days and seconds, keeping Seconds in [0, 86400).
// Both instants are read on the clock of now's location, so daylight saving shifts do not change the result.
func NewElapsed(modified time.Time, now time.Time) Elapsed {
	totalSeconds := floorDivide(int64(wallClock(now).Sub(wallClock(modified.In(now.Location())))), int64(time.Second))
	days := floorDivide(totalSeconds, secondsPerDayConstant)
	return Elapsed{Days: days, Seconds: totalSeconds - days*secondsPerDayConstant}
}

// Hours counts whole hours within the last day.
func (elapsed Elapsed) Hours() int64 {
	return elapsed.Seconds / secondsPerHourConstant
}

// Minutes counts whole minutes within the last day; it is not the remainder after Hours.
func (elapsed Elapsed) Minutes() int64 {
	return elapsed.Seconds / secondsPerMinuteConstant
}

func (elapsed Elapsed) sameDayDescription() string {
	switch {
	case elapsed.Hours() > 1:
		return fmt.Sprintf(hoursAgoTemplateConstant, elapsed.Hours())
	case elapsed.Minutes() > 1:
		return fmt.Sprintf(minutesAgoTemplateConstant, elapsed.Minutes())
	default:
		return fmt.Sprintf(secondsAgoTemplateConstant, elapsed.Seconds)
	}
}

// FormatLastActive renders the "Active: ..." line for a modification time observed at now.
func FormatLastActive(modified time.Time, now time.Time) string {
	elapsed := NewElapsed(modified, now)
	localModified := modified.In(now.Location())

	switch {
	case elapsed.Days == 0:
		return fmt.Sprintf(activeTemplateConstant, elapsed.sameDayDescription())
	case elapsed.Days == 1:
		return activeYesterdayConstant
	case elapsed.Days <= recentDaysLimitConstant:
		return fmt.Sprintf(activeDaysAgoWithDateTemplateConstant, elapsed.Days, localModified.Format(monthDayLayoutConstant))
	default:
		return fmt.Sprintf(activeDaysAgoWithDateTemplateConstant, elapsed.Days, localModified.Format(numericDateLayoutConstant))
	}
}

// FormatOnDemandLastUsed renders the On-Demand line for application, prefixed with gutter.
func FormatOnDemandLastUsed(application string, gutter string, modified time.Time, now time.Time) string {
	elapsed := NewElapsed(modified, now)
	localModified := modified.In(now.Location())

	var description string
	switch {
	case elapsed.Days == 0:
		description = elapsed.sameDayDescription()
	case elapsed.Days == 1:
		description = onDemandYesterdayConstant
	case elapsed.Days <= onDemandRecentDaysLimitConstant:
		description = fmt.Sprintf(daysAgoTemplateConstant, elapsed.Days)
	case elapsed.Days <= recentDaysLimitConstant:
		description = localModified.Format(monthDayLayoutConstant)
	default:
		description = localModified.Format(monthDayYearLayoutConstant)
	}

	return fmt.Sprintf(onDemandLineTemplateConstant, gutter, application, description)
}

func wallClock(instant time.Time) time.Time {
	return time.Date(instant.Year(), instant.Month(), instant.Day(), instant.Hour(), instant.Minute(), instant.Second(), instant.Nanosecond(), time.UTC)
}

func floorDivide(dividend int64, divisor int64) int64 {
	quotient := dividend / divisor
	if (dividend%divisor != 0) && ((dividend < 0) != (divisor < 0)) {
		quotient--
	}
	return quotient
}
