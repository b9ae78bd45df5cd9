// Package sales rolls delivered-sale records up into dashboard figures.
package sales

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	DailyPoints  = 30
	WeeklyPoints = 7

	rollingWindow = 7 * 24 * time.Hour
)

type Bucket struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type DailyTotal struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Report struct {
	Day   Bucket `json:"day"`
	Week  Bucket `json:"week"`
	Month Bucket `json:"month"`
	Year  Bucket `json:"year"`

	// Daily holds one total per calendar day, oldest first, ending today.
	Daily []DailyTotal `json:"daily"`
	// Weekly holds one sale count per calendar day, oldest first, ending today.
	Weekly []DailyCount `json:"weekly"`
}

type accumulator struct {
	total decimal.Decimal
	count int
}

func (a *accumulator) add(amount decimal.Decimal) {
	a.total = a.total.Add(amount)
	a.count++
}

func (a accumulator) bucket() Bucket {
	return Bucket{Total: a.total.InexactFloat64(), Count: a.count}
}

// Summarize computes day, rolling week, month and year figures relative to
// now, with calendar boundaries taken in loc. Sales whose deliveredAt does
// not parse are left out of every figure.
func Summarize(sales []entities.Sale, now time.Time, loc *time.Location) Report {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	weekStart := now.Add(-rollingWindow)

	var day, week, month, year accumulator
	byDate := make(map[string]*accumulator)

	for _, s := range sales {
		delivered, err := entities.ParseTime(s.DeliveredAt)
		if err != nil {
			continue
		}
		delivered = delivered.In(loc)
		amount := s.Total.Number()

		key := DateKey(delivered)
		acc, ok := byDate[key]
		if !ok {
			acc = &accumulator{}
			byDate[key] = acc
		}
		acc.add(amount)

		if sameDay(delivered, now) {
			day.add(amount)
		}
		if !delivered.Before(weekStart) {
			week.add(amount)
		}
		if delivered.Year() == now.Year() && delivered.Month() == now.Month() {
			month.add(amount)
		}
		if delivered.Year() == now.Year() {
			year.add(amount)
		}
	}

	report := Report{
		Day:    day.bucket(),
		Week:   week.bucket(),
		Month:  month.bucket(),
		Year:   year.bucket(),
		Daily:  make([]DailyTotal, 0, DailyPoints),
		Weekly: make([]DailyCount, 0, WeeklyPoints),
	}

	for _, d := range lastDays(now, DailyPoints) {
		p := DailyTotal{Date: DateKey(d), Label: Label(d)}
		if acc, ok := byDate[p.Date]; ok {
			p.Total = acc.total.InexactFloat64()
		}
		report.Daily = append(report.Daily, p)
	}
	for _, d := range lastDays(now, WeeklyPoints) {
		p := DailyCount{Date: DateKey(d), Label: Label(d)}
		if acc, ok := byDate[p.Date]; ok {
			p.Count = acc.count
		}
		report.Weekly = append(report.Weekly, p)
	}

	return report
}

// DateKey formats t as YYYY-MM-DD in t's own location.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Label is the short chart label, M/D.
func Label(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// lastDays returns midnight of the n calendar days ending on now's day.
func lastDays(now time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, time.Date(now.Year(), now.Month(), now.Day()-i, 0, 0, 0, 0, now.Location()))
	}
	return days
}
