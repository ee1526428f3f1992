// Package dates holds the calendar helpers shared by the stats routes.
// Day boundaries are fixed UTC strings; nothing here is timezone aware.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const layout = "2006-01-02"

var dateStringRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var dayNames = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Clock returns the current time. Tests inject a fixed one.
type Clock func() time.Time

type Range struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Dates binds the "now" dependent helpers to a clock.
type Dates struct {
	now Clock
}

func New(now Clock) *Dates {
	if now == nil {
		now = time.Now
	}
	return &Dates{
		now: now,
	}
}

var wallClock = New(time.Now)

// FormatDateString returns YYYY-MM-DD in the date's own location.
func FormatDateString(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

func (d *Dates) Now() time.Time {
	return d.now()
}

func (d *Dates) TodayString() string {
	return FormatDateString(d.now())
}

func TodayString() string {
	return wallClock.TodayString()
}

func StartOfDay(dateStr string) string {
	return dateStr + "T00:00:00.000Z"
}

func EndOfDay(dateStr string) string {
	return dateStr + "T23:59:59.999Z"
}

// DateRange ends today and starts the given number of days before it.
func (d *Dates) DateRange(days int) Range {
	now := d.now()
	return Range{
		StartDate: FormatDateString(now.AddDate(0, 0, -days)),
		EndDate:   FormatDateString(now),
	}
}

func DateRange(days int) Range {
	return wallClock.DateRange(days)
}

// StartOfWeek returns midnight of the Sunday that starts t's week,
// in t's location.
func StartOfWeek(t time.Time) time.Time {
	sunday := t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDateOrToday returns input when it looks like YYYY-MM-DD. Only the
// shape is checked, not the calendar.
func (d *Dates) ParseDateOrToday(input string) string {
	if dateStringRegex.MatchString(input) {
		return input
	}
	return d.TodayString()
}

func ParseDateOrToday(input string) string {
	return wallClock.ParseDateOrToday(input)
}

// IsValidDateString accepts any YYYY-MM-DD with month 1..12 and day 1..31.
// Day overflow such as 2024-02-30 is accepted on purpose, callers relying
// on it get the same lenient answer the mobile client gets.
func IsValidDateString(s string) bool {
	if !dateStringRegex.MatchString(s) {
		return false
	}
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// ParseDate parses a YYYY-MM-DD string as UTC midnight. Overflowing days
// are normalized forward, 2024-02-30 becomes 2024-03-01.
func ParseDate(s string) (time.Time, error) {
	if !IsValidDateString(s) {
		return time.Time{}, fmt.Errorf("invalid date string: %q", s)
	}
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// IsCalendarDate is the strict counterpart of IsValidDateString: the day
// must exist in that month. Values stored in DATE columns go through it.
func IsCalendarDate(s string) bool {
	t, err := ParseDate(s)
	if err != nil {
		return false
	}
	return FormatDateString(t) == s
}

func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}

// DaysInRange lists every date string from start to end, both included.
// An inverted range yields nil.
func DaysInRange(start, end time.Time) []string {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDateString(d))
	}
	return days
}
