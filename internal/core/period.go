package core

import (
	"fmt"
	"time"
)

const (
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

type (
	Granularity string

	// Period is an inclusive date window with a human-readable label.
	Period struct {
		Start, End time.Time
		Label      string
	}
)

// monthNames holds Indonesian month names, indexed by time.Month.
var monthNames = [...]string{
	"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// dayNames holds Indonesian day names, indexed by time.Weekday.
var dayNames = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

func (g Granularity) Valid() bool {
	return g == Weekly || g == Monthly || g == Yearly
}

// MonthName returns the Indonesian name of m.
func MonthName(m time.Month) string {
	return monthNames[m]
}

// FormatDate renders a date as "2 Januari 2024".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()], t.Year())
}

// FormatDateShort renders a date as "02/01/2006".
func FormatDateShort(t time.Time) string {
	return t.Format("02/01/2006")
}

// WeekOfMonth returns the bucket index ceil(day/7) for t, in 1..5. Weeks
// are anchored to the month: they never cross a month boundary and the
// last bucket may be shorter than seven days. This intentionally differs
// from ISO weeks.
func WeekOfMonth(t time.Time) int {
	return (t.Day() + 6) / 7
}

// Resolve computes the inclusive boundaries and label of the period at
// granularity g that contains ref.
func Resolve(ref time.Time, g Granularity) Period {
	year, month, _ := ref.Date()
	loc := ref.Location()

	switch g {
	case Weekly:
		week := WeekOfMonth(ref)
		startDay := (week-1)*7 + 1
		endDay := week * 7
		if last := lastDayOfMonth(year, month); endDay > last {
			endDay = last
		}
		return Period{
			Start: time.Date(year, month, startDay, 0, 0, 0, 0, loc),
			End:   endOfDay(year, month, endDay, loc),
			Label: fmt.Sprintf("Minggu %d, %s %d", week, monthNames[month], year),
		}
	case Monthly:
		return Period{
			Start: time.Date(year, month, 1, 0, 0, 0, 0, loc),
			End:   endOfDay(year, month, lastDayOfMonth(year, month), loc),
			Label: fmt.Sprintf("%s %d", monthNames[month], year),
		}
	case Yearly:
		return Period{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
			End:   endOfDay(year, time.December, 31, loc),
			Label: fmt.Sprintf("%d", year),
		}
	default:
		// Granularity is validated at the API boundary; an unknown value
		// here is a programming error.
		panic("core: unknown granularity " + string(g))
	}
}

// Contains reports whether t falls inside the period, inclusive on both
// ends.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Navigate moves the reference date by one unit of g. direction is +1 for
// forward, -1 for back. Month and year steps use time.AddDate, which rolls
// day-of-month overflow into the next month (Jan 31 + 1 month lands in
// early March) exactly like the source application's native date
// arithmetic.
func Navigate(ref time.Time, g Granularity, direction int) time.Time {
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}
	switch g {
	case Weekly:
		return ref.AddDate(0, 0, 7*direction)
	case Monthly:
		return ref.AddDate(0, direction, 0)
	case Yearly:
		return ref.AddDate(direction, 0, 0)
	default:
		panic("core: unknown granularity " + string(g))
	}
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func endOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}
