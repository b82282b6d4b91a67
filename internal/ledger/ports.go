package ledger

import (
	"biowallet/internal/repository"
	"context"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	IncrementStats(ctx context.Context, delta repository.StatsDelta) error
	GetStats(ctx context.Context) (repository.Stats, error)
	CountUsersSince(ctx context.Context, since time.Time) (int64, error)
	CountTransactionsSince(ctx context.Context, since time.Time) (int64, error)
	UserCreationTimes(ctx context.Context) ([]time.Time, error)
	AllTransactions(ctx context.Context) ([]repository.Transaction, error)
}
