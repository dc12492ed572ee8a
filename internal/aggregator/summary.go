package aggregator

import "sort"

// ExtremeDay marks the day a metric peaked. Date is null in empty ranges.
type ExtremeDay struct {
	Date  *string `json:"date"`
	Value float64 `json:"value"`
}

// CategoryTotals is one bucket's share of the whole window.
type CategoryTotals struct {
	Count  uint64  `json:"count"`
	Fee    float64 `json:"fee"`
	Amount float64 `json:"amount"`
}

// Summary condenses a window of daily activity.
type Summary struct {
	StartDate      *string                   `json:"start_date"`
	EndDate        *string                   `json:"end_date"`
	Days           int                       `json:"days"`
	TotalTx        uint64                    `json:"total_tx"`
	TotalFees      float64                   `json:"total_fees"`
	AvgTxPerDay    float64                   `json:"avg_tx_per_day"`
	AvgFeesPerDay  float64                   `json:"avg_fees_per_day"`
	MedianTxPerDay float64                   `json:"median_tx_per_day"`
	MaxTxDay       ExtremeDay                `json:"max_tx_day"`
	MaxFeeDay      ExtremeDay                `json:"max_fee_day"`
	PerCategory    map[string]CategoryTotals `json:"per_category"`
}

// Summarize folds a day window into its summary. An empty window yields
// zeroes with null dates.
func Summarize(days []Day) Summary {
	summary := Summary{PerCategory: make(map[string]CategoryTotals)}
	if len(days) == 0 {
		return summary
	}

	summary.StartDate = &days[0].Date
	summary.EndDate = &days[len(days)-1].Date
	summary.Days = len(days)

	txCounts := make([]float64, 0, len(days))
	for i := range days {
		day := &days[i]
		summary.TotalTx += day.TotalTx
		summary.TotalFees += day.TotalFee
		txCounts = append(txCounts, float64(day.TotalTx))

		if float64(day.TotalTx) > summary.MaxTxDay.Value || summary.MaxTxDay.Date == nil {
			summary.MaxTxDay = ExtremeDay{Date: &day.Date, Value: float64(day.TotalTx)}
		}
		if day.TotalFee > summary.MaxFeeDay.Value || summary.MaxFeeDay.Date == nil {
			summary.MaxFeeDay = ExtremeDay{Date: &day.Date, Value: day.TotalFee}
		}

		for name, cat := range day.Categories {
			totals := summary.PerCategory[name]
			totals.Count += cat.Count
			totals.Fee += cat.Fee
			totals.Amount += cat.Amount
			summary.PerCategory[name] = totals
		}
	}

	summary.AvgTxPerDay = float64(summary.TotalTx) / float64(len(days))
	summary.AvgFeesPerDay = summary.TotalFees / float64(len(days))
	summary.MedianTxPerDay = median(txCounts)

	return summary
}

// median is the 50th percentile with linear interpolation between ranks.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
