// Package tracker drives the PENDING -> CONFIRMED | FAILED transition of
// submitted transfers. Transitions are terminal and guarded by a
// compare-and-set on the record status, so replayed or duplicated finality
// notifications can never double-count into the ledger.
package tracker

import (
	"biowallet/internal/ethereum"
	"biowallet/internal/repository"
	"context"

	"go.uber.org/zap"
)

type Tracker struct {
	logs    *zap.SugaredLogger
	repo    Repository
	ledger  Ledger
	watcher Watcher
}

func NewTracker(logger *zap.SugaredLogger, repo Repository, ledger Ledger, watcher Watcher) *Tracker {
	return &Tracker{
		logs:    logger,
		repo:    repo,
		ledger:  ledger,
		watcher: watcher,
	}
}

// Track subscribes to the finality notification for the record's hash. It
// must be called before the submission returns to the caller so no
// confirmation can slip between submission and tracking start.
func (t *Tracker) Track(record repository.Transaction) {
	t.watcher.WatchOnce(context.Background(), record.TxHash, func(receipt ethereum.Receipt) {
		t.apply(record, receipt)
	})
}

func (t *Tracker) apply(record repository.Transaction, receipt ethereum.Receipt) {
	// a single bad notification must not take the tracker down
	defer func() {
		if r := recover(); r != nil {
			t.logs.Errorw("confirmation handler panicked", "txHash", record.TxHash, "panic", r)
		}
	}()

	ctx := context.Background()

	if receipt.TxHash != record.TxHash {
		t.logs.Errorw("malformed receipt, failing transaction",
			"txHash", record.TxHash,
			"receiptHash", receipt.TxHash)
		t.fail(ctx, record)
		return
	}

	if !receipt.Success {
		t.fail(ctx, record)
		return
	}

	changed, err := t.repo.MarkConfirmed(ctx, record.TxHash, receipt.BlockNumber, receipt.ObservedAt)
	if err != nil {
		t.logs.Errorw("failed to mark transaction confirmed", "txHash", record.TxHash, "error", err)
		return
	}
	if !changed {
		t.logs.Infow("duplicate confirmation ignored", "txHash", record.TxHash)
		return
	}

	if err := t.ledger.ApplyTransactionConfirmed(ctx, record.Amount, record.Fee); err != nil {
		t.logs.Errorw("failed to apply confirmed transaction to ledger", "txHash", record.TxHash, "error", err)
		return
	}

	t.logs.Infow("transaction confirmed",
		"txHash", record.TxHash,
		"blockNumber", receipt.BlockNumber,
		"amount", record.Amount,
		"fee", record.Fee)
}

func (t *Tracker) fail(ctx context.Context, record repository.Transaction) {
	changed, err := t.repo.MarkFailed(ctx, record.TxHash)
	if err != nil {
		t.logs.Errorw("failed to mark transaction failed", "txHash", record.TxHash, "error", err)
		return
	}
	if !changed {
		t.logs.Infow("duplicate failure notification ignored", "txHash", record.TxHash)
		return
	}

	if err := t.ledger.ApplyTransactionFailed(ctx); err != nil {
		t.logs.Errorw("failed to apply failed transaction to ledger", "txHash", record.TxHash, "error", err)
	}

	t.logs.Infow("transaction failed", "txHash", record.TxHash)
}
