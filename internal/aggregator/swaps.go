package aggregator

import (
	"sort"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// Swap is one atomic swap on the timeline, matched with its completing spend
// when one exists.
type Swap struct {
	StartTxID    string  `json:"start_txid"`
	CompleteTxID *string `json:"complete_txid"`
	SwapAddr     string  `json:"swap_addr"`
	Date         string  `json:"date"`
	CompleteDate *string `json:"complete_date"`
	Amount       float64 `json:"amount"`
	Fee          float64 `json:"fee"`
	Completed    bool    `json:"completed"`
}

// PairSwaps links start and complete rows by swap address. Rows must be in
// time order; a complete claims the oldest unclaimed start for its address,
// and completes without a start are dropped.
func PairSwaps(rows []model.SwapRow) []Swap {
	swaps := make([]Swap, 0, len(rows))
	open := make(map[string][]int)

	for _, row := range rows {
		switch row.Phase {
		case model.SwapPhaseStart:
			open[row.SwapAddr] = append(open[row.SwapAddr], len(swaps))
			swaps = append(swaps, Swap{
				StartTxID: row.TxID,
				SwapAddr:  row.SwapAddr,
				Date:      row.Date,
				Amount:    row.TotalOut.ToBTC(),
				Fee:       row.Fee.ToBTC(),
			})
		case model.SwapPhaseComplete:
			queue := open[row.SwapAddr]
			if len(queue) == 0 {
				continue
			}
			idx := queue[0]
			open[row.SwapAddr] = queue[1:]

			txid := row.TxID
			date := row.Date
			swaps[idx].CompleteTxID = &txid
			swaps[idx].CompleteDate = &date
			swaps[idx].Fee += row.Fee.ToBTC()
			swaps[idx].Completed = true
		}
	}

	return swaps
}

// SwapSummary condenses a window of the swap timeline.
type SwapSummary struct {
	TotalSwaps       uint64     `json:"total_swaps"`
	CompletedSwaps   uint64     `json:"completed_swaps"`
	TotalAmount      float64    `json:"total_amount"`
	TotalFees        float64    `json:"total_fees"`
	AvgSwapAmount    float64    `json:"avg_swap_amount"`
	AvgSwapsPerDay   float64    `json:"avg_swaps_per_day"`
	AvgFeePerSwap    float64    `json:"avg_fee_per_swap"`
	MaxSwapsDay      ExtremeDay `json:"max_swaps_day"`
	MaxAmountDay     ExtremeDay `json:"max_amount_day"`
	MaxSingleSwap    float64    `json:"max_single_swap"`
	MedianSwapAmount float64    `json:"median_swap_amount"`
}

// SliceSwaps returns swaps whose start date falls inside the trailing window
// relative to the newest start date.
func SliceSwaps(swaps []Swap, window int) []Swap {
	if window <= 0 || len(swaps) == 0 {
		return swaps
	}

	days := make([]Day, len(swaps))
	for i, swap := range swaps {
		days[i] = Day{Date: swap.Date}
	}
	kept := SliceDays(days, window)
	return swaps[len(swaps)-len(kept):]
}

// SummarizeSwaps folds a swap window into its summary.
func SummarizeSwaps(swaps []Swap) SwapSummary {
	var summary SwapSummary
	if len(swaps) == 0 {
		return summary
	}

	perDayCount := make(map[string]float64)
	perDayAmount := make(map[string]float64)
	amounts := make([]float64, 0, len(swaps))

	for _, swap := range swaps {
		summary.TotalSwaps++
		if swap.Completed {
			summary.CompletedSwaps++
		}
		summary.TotalAmount += swap.Amount
		summary.TotalFees += swap.Fee
		if swap.Amount > summary.MaxSingleSwap {
			summary.MaxSingleSwap = swap.Amount
		}
		perDayCount[swap.Date]++
		perDayAmount[swap.Date] += swap.Amount
		amounts = append(amounts, swap.Amount)
	}

	dates := make([]string, 0, len(perDayCount))
	for date := range perDayCount {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		date := date
		if perDayCount[date] > summary.MaxSwapsDay.Value || summary.MaxSwapsDay.Date == nil {
			summary.MaxSwapsDay = ExtremeDay{Date: &date, Value: perDayCount[date]}
		}
		if perDayAmount[date] > summary.MaxAmountDay.Value || summary.MaxAmountDay.Date == nil {
			summary.MaxAmountDay = ExtremeDay{Date: &date, Value: perDayAmount[date]}
		}
	}

	summary.AvgSwapAmount = summary.TotalAmount / float64(len(swaps))
	summary.AvgFeePerSwap = summary.TotalFees / float64(len(swaps))
	summary.AvgSwapsPerDay = float64(len(swaps)) / float64(len(dates))
	summary.MedianSwapAmount = median(amounts)

	return summary
}
