package ledger

import (
	"biowallet/internal/repository"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Period selects the calendar truncation used by the rollup queries.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

var ErrUnknownPeriod error = errors.New("unknown rollup period")

func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(raw), nil
	case "":
		return PeriodMonth, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, raw)
}

type DayStat struct {
	Date         string  `json:"date"`
	NewUsers     int64   `json:"newUsers"`
	Transactions int64   `json:"transactions"`
	Volume       float64 `json:"volume"`
	Fees         float64 `json:"fees"`
}

type GrowthPoint struct {
	Bucket string `json:"date"`
	Count  int64  `json:"count"`
}

type VolumePoint struct {
	Bucket string  `json:"date"`
	Volume float64 `json:"volume"`
	Fees   float64 `json:"fees"`
}

// DailyStats builds per-day counters for the last `days` days, oldest first.
// Volume and fees sum confirmed transfers only, matching the running totals.
func (a *Aggregator) DailyStats(ctx context.Context, days int) ([]DayStat, error) {
	userTimes, err := a.store.UserCreationTimes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user creation times: %w", err)
	}

	transactions, err := a.store.AllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	stats := make([]DayStat, 0, days)
	for i := days - 1; i >= 0; i-- {
		dayStart := truncateDay(timeNow().AddDate(0, 0, -i))
		dayEnd := dayStart.AddDate(0, 0, 1)

		stat := DayStat{Date: dayStart.Format("2006-01-02")}

		for _, created := range userTimes {
			if !created.Before(dayStart) && created.Before(dayEnd) {
				stat.NewUsers++
			}
		}

		for _, tx := range transactions {
			if tx.CreatedAt.Before(dayStart) || !tx.CreatedAt.Before(dayEnd) {
				continue
			}
			stat.Transactions++
			if tx.Status == repository.StatusConfirmed {
				stat.Volume += tx.Amount
				stat.Fees += tx.Fee
			}
		}

		stats = append(stats, stat)
	}

	return stats, nil
}

// UserGrowth groups user registrations into calendar buckets. An empty user
// set yields an empty series.
func (a *Aggregator) UserGrowth(ctx context.Context, period Period) ([]GrowthPoint, error) {
	userTimes, err := a.store.UserCreationTimes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user creation times: %w", err)
	}

	grouped := map[string]int64{}
	for _, created := range userTimes {
		grouped[bucketKey(created, period)]++
	}

	points := make([]GrowthPoint, 0, len(grouped))
	for bucket, count := range grouped {
		points = append(points, GrowthPoint{Bucket: bucket, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Bucket < points[j].Bucket })

	return points, nil
}

// VolumeSeries groups settled value into calendar buckets, counting confirmed
// transfers only.
func (a *Aggregator) VolumeSeries(ctx context.Context, period Period) ([]VolumePoint, error) {
	transactions, err := a.store.AllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	grouped := map[string]*VolumePoint{}
	for _, tx := range transactions {
		if tx.Status != repository.StatusConfirmed {
			continue
		}
		key := bucketKey(tx.CreatedAt, period)
		point, ok := grouped[key]
		if !ok {
			point = &VolumePoint{Bucket: key}
			grouped[key] = point
		}
		point.Volume += tx.Amount
		point.Fees += tx.Fee
	}

	points := make([]VolumePoint, 0, len(grouped))
	for _, point := range grouped {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Bucket < points[j].Bucket })

	return points, nil
}

func bucketKey(t time.Time, period Period) string {
	switch period {
	case PeriodDay:
		return t.Format("2006-01-02")
	case PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	default:
		return t.Format("2006-01")
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
