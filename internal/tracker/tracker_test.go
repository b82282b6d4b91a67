package tracker_test

import (
	"context"
	"errors"
	"time"

	"biowallet/internal/ethereum"
	"biowallet/internal/repository"
	"biowallet/internal/tracker"
	"biowallet/internal/tracker/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tracker", func() {
	var (
		fakeRepo    *fake.Repository
		fakeLedger  *fake.Ledger
		fakeWatcher *fake.Watcher
		fakeLogger  *zap.SugaredLogger

		trk    *tracker.Tracker
		record repository.Transaction

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLedger = new(fake.Ledger)
		fakeWatcher = new(fake.Watcher)
		fakeLogger = zap.NewNop().Sugar()

		trk = tracker.NewTracker(fakeLogger, fakeRepo, fakeLedger, fakeWatcher)

		record = repository.Transaction{
			ID:     "tx-record-1",
			TxHash: "0xabc123",
			Amount: 2.5,
			Fee:    0.0025,
			Status: repository.StatusPending,
		}

		fakeErr = errors.New("fake error")
	})

	// deliver invokes the callback Track registered on the watcher.
	deliver := func(receipt ethereum.Receipt) {
		Expect(fakeWatcher.WatchOnceCallCount()).To(Equal(1))
		_, txHash, callback := fakeWatcher.WatchOnceArgsForCall(0)
		Expect(txHash).To(Equal(record.TxHash))
		callback(receipt)
	}

	Describe("Track", func() {
		JustBeforeEach(func() {
			trk.Track(record)
		})

		When("the receipt reports success", func() {
			BeforeEach(func() {
				fakeRepo.MarkConfirmedReturns(true, nil)
			})

			It("confirms the record and credits the ledger", func() {
				observed := time.Now()
				deliver(ethereum.Receipt{
					TxHash:      record.TxHash,
					Success:     true,
					BlockNumber: 123,
					ObservedAt:  observed,
				})

				Expect(fakeRepo.MarkConfirmedCallCount()).To(Equal(1))
				_, txHash, blockNumber, blockTimestamp := fakeRepo.MarkConfirmedArgsForCall(0)
				Expect(txHash).To(Equal(record.TxHash))
				Expect(blockNumber).To(Equal(uint64(123)))
				Expect(blockTimestamp).To(Equal(observed))

				Expect(fakeLedger.ApplyTransactionConfirmedCallCount()).To(Equal(1))
				_, amount, fee := fakeLedger.ApplyTransactionConfirmedArgsForCall(0)
				Expect(amount).To(Equal(record.Amount))
				Expect(fee).To(Equal(record.Fee))

				Expect(fakeRepo.MarkFailedCallCount()).To(Equal(0))
			})
		})

		When("the same confirmation is delivered twice", func() {
			BeforeEach(func() {
				fakeRepo.MarkConfirmedReturnsOnCall(0, true, nil)
				fakeRepo.MarkConfirmedReturnsOnCall(1, false, nil)
			})

			It("credits the ledger exactly once", func() {
				receipt := ethereum.Receipt{
					TxHash:      record.TxHash,
					Success:     true,
					BlockNumber: 123,
					ObservedAt:  time.Now(),
				}

				_, _, callback := fakeWatcher.WatchOnceArgsForCall(0)
				callback(receipt)
				callback(receipt)

				Expect(fakeRepo.MarkConfirmedCallCount()).To(Equal(2))
				Expect(fakeLedger.ApplyTransactionConfirmedCallCount()).To(Equal(1))
			})
		})

		When("the receipt reports failure", func() {
			BeforeEach(func() {
				fakeRepo.MarkFailedReturns(true, nil)
			})

			It("fails the record without touching volume", func() {
				deliver(ethereum.Receipt{
					TxHash:  record.TxHash,
					Success: false,
				})

				Expect(fakeRepo.MarkFailedCallCount()).To(Equal(1))
				_, txHash := fakeRepo.MarkFailedArgsForCall(0)
				Expect(txHash).To(Equal(record.TxHash))

				Expect(fakeRepo.MarkConfirmedCallCount()).To(Equal(0))
				Expect(fakeLedger.ApplyTransactionConfirmedCallCount()).To(Equal(0))
				Expect(fakeLedger.ApplyTransactionFailedCallCount()).To(Equal(1))
			})
		})

		When("the receipt carries a mismatched hash", func() {
			BeforeEach(func() {
				fakeRepo.MarkFailedReturns(true, nil)
			})

			It("treats the notification as malformed and fails the record", func() {
				deliver(ethereum.Receipt{
					TxHash:  "0xsomethingelse",
					Success: true,
				})

				Expect(fakeRepo.MarkConfirmedCallCount()).To(Equal(0))
				Expect(fakeRepo.MarkFailedCallCount()).To(Equal(1))
				Expect(fakeLedger.ApplyTransactionConfirmedCallCount()).To(Equal(0))
			})
		})

		When("marking the record confirmed errors", func() {
			BeforeEach(func() {
				fakeRepo.MarkConfirmedReturns(false, fakeErr)
			})

			It("does not credit the ledger", func() {
				deliver(ethereum.Receipt{
					TxHash:  record.TxHash,
					Success: true,
				})

				Expect(fakeLedger.ApplyTransactionConfirmedCallCount()).To(Equal(0))
			})
		})

		When("the ledger panics on a notification", func() {
			BeforeEach(func() {
				fakeRepo.MarkConfirmedReturns(true, nil)
				fakeLedger.ApplyTransactionConfirmedStub = func(ctx context.Context, amount float64, fee float64) error {
					panic("ledger exploded")
				}
			})

			It("survives the panic", func() {
				Expect(func() {
					deliver(ethereum.Receipt{
						TxHash:  record.TxHash,
						Success: true,
					})
				}).NotTo(Panic())
			})
		})
	})
})
