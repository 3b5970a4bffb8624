// Package pipeline aggregates ledger contents into per-month metrics.
package pipeline

import (
	"sort"

	"github.com/theirongolddev/paycal/internal/datekey"
	"github.com/theirongolddev/paycal/internal/model"
)

// DaySource yields the transactions recorded on a day.
type DaySource interface {
	Day(k datekey.Key) []model.Transaction
}

// AggregateMonth computes summary statistics for one calendar month.
// month0 is zero-based.
func AggregateMonth(src DaySource, year, month0 int) model.MonthSummary {
	n := datekey.DaysInMonth(year, month0)
	stats := model.MonthSummary{
		Year:        year,
		Month0:      month0,
		DaysInMonth: n,
		Days:        make([]model.DailyStats, n),
	}

	methodMap := make(map[string]*model.MethodStats)
	var largest float64

	for day := 1; day <= n; day++ {
		k := datekey.Encode(year, month0, day)
		ds := &stats.Days[day-1]
		ds.Day = day
		ds.Key = k

		if src == nil {
			continue
		}
		for _, t := range src.Day(k) {
			ds.Transactions++
			ds.Total += t.Amount

			ms, ok := methodMap[t.Method]
			if !ok {
				ms = &model.MethodStats{Method: t.Method}
				methodMap[t.Method] = ms
			}
			ms.Transactions++
			ms.Total += t.Amount
		}

		if ds.Transactions == 0 {
			continue
		}
		stats.ActiveDays++
		stats.Transactions += ds.Transactions
		stats.Total += ds.Total
		if stats.LargestDay == "" || ds.Total > largest {
			largest = ds.Total
			stats.LargestDay = k
		}
	}

	if stats.ActiveDays > 0 {
		stats.PerActiveDay = stats.Total / float64(stats.ActiveDays)
	}

	// Share by amount; by count when every amount is zero
	methods := make([]model.MethodStats, 0, len(methodMap))
	for _, ms := range methodMap {
		switch {
		case stats.Total > 0:
			ms.SharePercent = ms.Total / stats.Total * 100
		case stats.Transactions > 0:
			ms.SharePercent = float64(ms.Transactions) / float64(stats.Transactions) * 100
		}
		methods = append(methods, *ms)
	}
	sort.Slice(methods, func(i, j int) bool {
		if methods[i].Total != methods[j].Total {
			return methods[i].Total > methods[j].Total
		}
		return methods[i].Method < methods[j].Method
	})
	stats.Methods = methods

	return stats
}

// TopDays returns up to limit active days ordered by total descending.
func TopDays(s model.MonthSummary, limit int) []model.DailyStats {
	days := make([]model.DailyStats, 0, s.ActiveDays)
	for _, d := range s.Days {
		if d.Transactions > 0 {
			days = append(days, d)
		}
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Total > days[j].Total
	})
	if limit > 0 && len(days) > limit {
		days = days[:limit]
	}
	return days
}

// DailyTotals returns the per-day totals, day 1 first, for charts.
func DailyTotals(s model.MonthSummary) []float64 {
	out := make([]float64, len(s.Days))
	for i, d := range s.Days {
		out[i] = d.Total
	}
	return out
}
