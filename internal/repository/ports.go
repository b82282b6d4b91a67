package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, records any) error
	EnsureRow(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	Find(ctx context.Context, dest any, query string, args ...any) error
	FindPage(ctx context.Context, dest any, limit int, offset int, query string, args ...any) error
	UpdateWhere(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error)
	Count(ctx context.Context, model any, query string, args ...any) (int64, error)
}
