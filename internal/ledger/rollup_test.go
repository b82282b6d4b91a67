package ledger_test

import (
	"context"
	"fmt"
	"time"

	"biowallet/internal/ledger"
	"biowallet/internal/ledger/fake"
	"biowallet/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Rollups", func() {
	var (
		fakeStore  *fake.Store
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		aggregator *ledger.Aggregator

		now       time.Time
		yesterday time.Time
	)

	BeforeEach(func() {
		fakeStore = new(fake.Store)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		aggregator = ledger.NewAggregator(fakeLogger, fakeStore)

		now = time.Now()
		yesterday = now.AddDate(0, 0, -1)
	})

	Describe("ParsePeriod", func() {
		It("accepts the known periods", func() {
			for _, raw := range []string{"day", "week", "month"} {
				period, err := ledger.ParsePeriod(raw)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(period)).To(Equal(raw))
			}
		})

		It("defaults to month", func() {
			period, err := ledger.ParsePeriod("")
			Expect(err).NotTo(HaveOccurred())
			Expect(period).To(Equal(ledger.PeriodMonth))
		})

		It("rejects anything else", func() {
			_, err := ledger.ParsePeriod("hour")
			Expect(err).To(MatchError(ledger.ErrUnknownPeriod))
		})
	})

	Describe("DailyStats", func() {
		BeforeEach(func() {
			fakeStore.UserCreationTimesReturns([]time.Time{
				now,
				now.AddDate(0, 0, -2),
			}, nil)
			fakeStore.AllTransactionsReturns([]repository.Transaction{
				{Status: repository.StatusConfirmed, Amount: 2.0, Fee: 0.002, CreatedAt: now},
				{Status: repository.StatusPending, Amount: 5.0, Fee: 0.005, CreatedAt: now},
				{Status: repository.StatusFailed, Amount: 1.0, Fee: 0.001, CreatedAt: yesterday},
			}, nil)
		})

		It("builds one row per day, oldest first", func() {
			stats, err := aggregator.DailyStats(ctx, 3)

			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(HaveLen(3))
			Expect(stats[0].Date < stats[1].Date).To(BeTrue())
			Expect(stats[1].Date < stats[2].Date).To(BeTrue())
			Expect(stats[2].Date).To(Equal(now.Format("2006-01-02")))
		})

		It("sums volume from confirmed transfers only", func() {
			stats, err := aggregator.DailyStats(ctx, 3)

			Expect(err).NotTo(HaveOccurred())

			today := stats[2]
			Expect(today.NewUsers).To(Equal(int64(1)))
			Expect(today.Transactions).To(Equal(int64(2)))
			Expect(today.Volume).To(Equal(2.0))
			Expect(today.Fees).To(Equal(0.002))

			Expect(stats[1].Transactions).To(Equal(int64(1)))
			Expect(stats[1].Volume).To(BeZero())

			Expect(stats[0].NewUsers).To(Equal(int64(1)))
		})
	})

	Describe("UserGrowth", func() {
		It("returns an empty series when no users exist", func() {
			fakeStore.UserCreationTimesReturns(nil, nil)

			points, err := aggregator.UserGrowth(ctx, ledger.PeriodDay)

			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(BeEmpty())
		})

		It("groups users into sorted day buckets", func() {
			fakeStore.UserCreationTimesReturns([]time.Time{now, now, yesterday}, nil)

			points, err := aggregator.UserGrowth(ctx, ledger.PeriodDay)

			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(2))
			Expect(points[0].Bucket).To(Equal(yesterday.Format("2006-01-02")))
			Expect(points[0].Count).To(Equal(int64(1)))
			Expect(points[1].Bucket).To(Equal(now.Format("2006-01-02")))
			Expect(points[1].Count).To(Equal(int64(2)))
		})

		It("uses ISO week buckets for the week period", func() {
			fakeStore.UserCreationTimesReturns([]time.Time{now}, nil)

			points, err := aggregator.UserGrowth(ctx, ledger.PeriodWeek)

			Expect(err).NotTo(HaveOccurred())
			year, week := now.ISOWeek()
			Expect(points[0].Bucket).To(Equal(fmtWeek(year, week)))
		})
	})

	Describe("VolumeSeries", func() {
		It("groups settled value and skips unconfirmed transfers", func() {
			fakeStore.AllTransactionsReturns([]repository.Transaction{
				{Status: repository.StatusConfirmed, Amount: 2.0, Fee: 0.002, CreatedAt: now},
				{Status: repository.StatusConfirmed, Amount: 3.0, Fee: 0.003, CreatedAt: now},
				{Status: repository.StatusPending, Amount: 100.0, Fee: 0.1, CreatedAt: now},
				{Status: repository.StatusFailed, Amount: 50.0, Fee: 0.05, CreatedAt: now},
			}, nil)

			points, err := aggregator.VolumeSeries(ctx, ledger.PeriodMonth)

			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(1))
			Expect(points[0].Bucket).To(Equal(now.Format("2006-01")))
			Expect(points[0].Volume).To(BeNumerically("~", 5.0, 1e-9))
			Expect(points[0].Fees).To(BeNumerically("~", 0.005, 1e-9))
		})

		It("returns an empty series when nothing settled", func() {
			fakeStore.AllTransactionsReturns([]repository.Transaction{
				{Status: repository.StatusPending, Amount: 1.0, CreatedAt: now},
			}, nil)

			points, err := aggregator.VolumeSeries(ctx, ledger.PeriodMonth)

			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(BeEmpty())
		})
	})
})

func fmtWeek(year int, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}
