// Package ledger maintains the process-wide running totals and the read-side
// rollups over them. The transaction counter moves at submission time while
// volume and fees move only at confirmation time: attempts are counted,
// settled value is summed. Keep that asymmetry; it is intentional.
package ledger

import (
	"biowallet/internal/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var timeNow = time.Now

type Aggregator struct {
	logs  *zap.SugaredLogger
	store Store
}

func NewAggregator(logger *zap.SugaredLogger, store Store) *Aggregator {
	return &Aggregator{
		logs:  logger,
		store: store,
	}
}

func (a *Aggregator) ApplyUserCreated(ctx context.Context) error {
	err := a.store.IncrementStats(ctx, repository.StatsDelta{Users: 1})
	if err != nil {
		return fmt.Errorf("apply user created: %w", err)
	}
	return nil
}

// ApplyTransactionSubmitted counts an attempt the moment a record enters
// PENDING state.
func (a *Aggregator) ApplyTransactionSubmitted(ctx context.Context) error {
	err := a.store.IncrementStats(ctx, repository.StatsDelta{Transactions: 1})
	if err != nil {
		return fmt.Errorf("apply transaction submitted: %w", err)
	}
	return nil
}

// ApplyTransactionConfirmed adds settled value. The caller guarantees at most
// one call per transaction via the record-level status guard.
func (a *Aggregator) ApplyTransactionConfirmed(ctx context.Context, amount float64, fee float64) error {
	err := a.store.IncrementStats(ctx, repository.StatsDelta{Volume: amount, Fees: fee})
	if err != nil {
		return fmt.Errorf("apply transaction confirmed: %w", err)
	}
	return nil
}

// ApplyTransactionFailed is a no-op for the aggregates: failed transfers do
// not count toward volume or fees.
func (a *Aggregator) ApplyTransactionFailed(ctx context.Context) error {
	a.logs.Infow("transaction failed, aggregates unchanged")
	return nil
}

type Totals struct {
	Stats              repository.Stats
	NewUsers24h        int64
	NewTransactions24h int64
}

func (a *Aggregator) Totals(ctx context.Context) (Totals, error) {
	stats, err := a.store.GetStats(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("get stats: %w", err)
	}

	since := timeNow().Add(-24 * time.Hour)

	newUsers, err := a.store.CountUsersSince(ctx, since)
	if err != nil {
		return Totals{}, fmt.Errorf("count new users: %w", err)
	}

	newTransactions, err := a.store.CountTransactionsSince(ctx, since)
	if err != nil {
		return Totals{}, fmt.Errorf("count new transactions: %w", err)
	}

	return Totals{
		Stats:              stats,
		NewUsers24h:        newUsers,
		NewTransactions24h: newTransactions,
	}, nil
}
