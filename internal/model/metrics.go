package model

import "github.com/theirongolddev/paycal/internal/datekey"

// MonthSummary holds the aggregate over one calendar month.
type MonthSummary struct {
	Year   int
	Month0 int

	Transactions int
	ActiveDays   int
	DaysInMonth  int
	Total        float64
	PerActiveDay float64
	LargestDay   datekey.Key

	Methods []MethodStats
	Days    []DailyStats // one entry per day of the month, day 1 first
}

// DailyStats holds totals for a single calendar day.
type DailyStats struct {
	Day          int
	Key          datekey.Key
	Transactions int
	Total        float64
}

// MethodStats holds aggregated totals for a single payment method.
type MethodStats struct {
	Method       string
	Transactions int
	Total        float64
	SharePercent float64
}
