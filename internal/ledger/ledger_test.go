package ledger_test

import (
	"context"
	"errors"

	"biowallet/internal/ledger"
	"biowallet/internal/ledger/fake"
	"biowallet/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Aggregator", func() {
	var (
		fakeStore  *fake.Store
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		aggregator *ledger.Aggregator

		fakeErr error
	)

	BeforeEach(func() {
		fakeStore = new(fake.Store)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		aggregator = ledger.NewAggregator(fakeLogger, fakeStore)

		fakeErr = errors.New("fake error")
	})

	Describe("Apply increments", func() {
		It("counts a new user", func() {
			err := aggregator.ApplyUserCreated(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStore.IncrementStatsCallCount()).To(Equal(1))
			_, delta := fakeStore.IncrementStatsArgsForCall(0)
			Expect(delta).To(Equal(repository.StatsDelta{Users: 1}))
		})

		It("counts a submitted transaction without moving volume", func() {
			err := aggregator.ApplyTransactionSubmitted(ctx)

			Expect(err).NotTo(HaveOccurred())
			_, delta := fakeStore.IncrementStatsArgsForCall(0)
			Expect(delta).To(Equal(repository.StatsDelta{Transactions: 1}))
		})

		It("moves volume and fees on confirmation without recounting", func() {
			err := aggregator.ApplyTransactionConfirmed(ctx, 2.5, 0.0025)

			Expect(err).NotTo(HaveOccurred())
			_, delta := fakeStore.IncrementStatsArgsForCall(0)
			Expect(delta).To(Equal(repository.StatsDelta{Volume: 2.5, Fees: 0.0025}))
		})

		It("leaves the aggregates untouched on failure", func() {
			err := aggregator.ApplyTransactionFailed(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStore.IncrementStatsCallCount()).To(Equal(0))
		})

		It("propagates store errors", func() {
			fakeStore.IncrementStatsReturns(fakeErr)
			Expect(aggregator.ApplyUserCreated(ctx)).To(MatchError(fakeErr))
		})

		When("three transfers are submitted and only two confirm", func() {
			It("counts three attempts but sums two settlements", func() {
				stats := repository.Stats{ID: "1"}
				fakeStore.IncrementStatsStub = func(ctx context.Context, delta repository.StatsDelta) error {
					stats.TotalUsers += delta.Users
					stats.TotalTransactions += delta.Transactions
					stats.TotalVolume += delta.Volume
					stats.TotalFees += delta.Fees
					return nil
				}

				for range 3 {
					Expect(aggregator.ApplyTransactionSubmitted(ctx)).To(Succeed())
				}
				Expect(aggregator.ApplyTransactionConfirmed(ctx, 1.0, 0.001)).To(Succeed())
				Expect(aggregator.ApplyTransactionConfirmed(ctx, 2.0, 0.002)).To(Succeed())
				Expect(aggregator.ApplyTransactionFailed(ctx)).To(Succeed())

				Expect(stats.TotalTransactions).To(Equal(int64(3)))
				Expect(stats.TotalVolume).To(BeNumerically("~", 3.0, 1e-9))
				Expect(stats.TotalFees).To(BeNumerically("~", 0.003, 1e-9))
			})
		})
	})

	Describe("Totals", func() {
		BeforeEach(func() {
			fakeStore.GetStatsReturns(repository.Stats{
				ID:                "1",
				TotalUsers:        10,
				TotalTransactions: 42,
				TotalVolume:       12.5,
				TotalFees:         0.0125,
			}, nil)
			fakeStore.CountUsersSinceReturns(3, nil)
			fakeStore.CountTransactionsSinceReturns(7, nil)
		})

		It("combines the running totals with the 24h counters", func() {
			totals, err := aggregator.Totals(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(totals.Stats.TotalUsers).To(Equal(int64(10)))
			Expect(totals.Stats.TotalVolume).To(Equal(12.5))
			Expect(totals.NewUsers24h).To(Equal(int64(3)))
			Expect(totals.NewTransactions24h).To(Equal(int64(7)))
		})

		It("propagates stats read errors", func() {
			fakeStore.GetStatsReturns(repository.Stats{}, fakeErr)

			_, err := aggregator.Totals(ctx)
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
