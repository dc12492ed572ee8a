// Package aggregator turns persisted classification rows into the series and
// summaries the site snapshots are built from. Everything here is a pure fold
// over already-loaded rows; amounts leave as ARRR floats only at this edge.
package aggregator

import (
	"sort"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// Timeframe names a trailing window of days; Days zero means the full range.
type Timeframe struct {
	Name string
	Days int
}

// Timeframes are the windows every snapshot export covers.
var Timeframes = []Timeframe{
	{Name: "7d", Days: 7},
	{Name: "30d", Days: 30},
	{Name: "60d", Days: 60},
	{Name: "90d", Days: 90},
	{Name: "180d", Days: 180},
	{Name: "365d", Days: 365},
	{Name: "all", Days: 0},
}

// CategoryDay is one bucket's per-category slice.
type CategoryDay struct {
	Count  uint64  `json:"count"`
	Fee    float64 `json:"fee"`
	Amount float64 `json:"amount"`
}

// Day is the folded activity of one UTC day.
type Day struct {
	Date       string                 `json:"date"`
	TotalTx    uint64                 `json:"total_tx"`
	TotalFee   float64                `json:"total_fee"`
	Categories map[string]CategoryDay `json:"categories"`
}

// Fold collapses (date, tx_type) rows into one entry per day, ordered by
// date. Days with no activity between first and last are absent, matching
// the chain: a day without rows had no transactions.
func Fold(stats []model.DailyStat) []Day {
	byDate := make(map[string]*Day)
	for _, stat := range stats {
		day, ok := byDate[stat.Date]
		if !ok {
			day = &Day{Date: stat.Date, Categories: make(map[string]CategoryDay)}
			byDate[stat.Date] = day
		}
		day.TotalTx += stat.TxCount
		day.TotalFee += stat.TotalFee.ToBTC()
		day.Categories[string(stat.TxType)] = CategoryDay{
			Count:  stat.TxCount,
			Fee:    stat.TotalFee.ToBTC(),
			Amount: stat.TotalAmount.ToBTC(),
		}
	}

	days := make([]Day, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// SliceDays returns the trailing window of days relative to the newest date
// present. A window of zero or less returns everything.
func SliceDays(days []Day, window int) []Day {
	if window <= 0 || len(days) == 0 {
		return days
	}

	last, err := time.Parse("2006-01-02", days[len(days)-1].Date)
	if err != nil {
		return days
	}
	cutoff := last.AddDate(0, 0, -(window - 1)).Format("2006-01-02")

	idx := sort.Search(len(days), func(i int) bool { return days[i].Date >= cutoff })
	return days[idx:]
}

// Bucket is a run of consecutive days merged into one chart point.
type Bucket struct {
	Date       string                 `json:"date"`
	StartDate  string                 `json:"start_date"`
	EndDate    string                 `json:"end_date"`
	TotalTx    uint64                 `json:"total_tx"`
	TotalFee   float64                `json:"total_fee"`
	Categories map[string]CategoryDay `json:"categories"`
}

// BucketActivity merges days so the series carries at most maxPoints points.
// Short series come back one bucket per day.
func BucketActivity(days []Day, maxPoints int) []Bucket {
	if maxPoints <= 0 {
		maxPoints = 180
	}
	if len(days) == 0 {
		return []Bucket{}
	}

	size := (len(days) + maxPoints - 1) / maxPoints
	buckets := make([]Bucket, 0, (len(days)+size-1)/size)
	for start := 0; start < len(days); start += size {
		end := start + size
		if end > len(days) {
			end = len(days)
		}
		chunk := days[start:end]

		bucket := Bucket{
			Date:       chunk[0].Date,
			StartDate:  chunk[0].Date,
			EndDate:    chunk[len(chunk)-1].Date,
			Categories: make(map[string]CategoryDay),
		}
		for _, day := range chunk {
			bucket.TotalTx += day.TotalTx
			bucket.TotalFee += day.TotalFee
			for name, cat := range day.Categories {
				merged := bucket.Categories[name]
				merged.Count += cat.Count
				merged.Fee += cat.Fee
				merged.Amount += cat.Amount
				bucket.Categories[name] = merged
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}
