package tracker

import (
	"biowallet/internal/ethereum"
	"context"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	MarkConfirmed(ctx context.Context, txHash string, blockNumber uint64, blockTimestamp time.Time) (bool, error)
	MarkFailed(ctx context.Context, txHash string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	ApplyTransactionConfirmed(ctx context.Context, amount float64, fee float64) error
	ApplyTransactionFailed(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name Watcher . Watcher
type Watcher interface {
	WatchOnce(ctx context.Context, txHash string, callback func(ethereum.Receipt))
}
